// Command deconv separates a stained brightfield image into one image per
// stain.
//
// Usage:
//
//	deconv -in slide.tif -stain "H DAB" -out slide
//
// writes slide-1.png, slide-2.png and slide-3.png, pseudo-coloured with the
// stain colours, and prints the stain matrix.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gogpu/deconv"
	imgbuf "github.com/gogpu/deconv/internal/image"
)

func main() {
	var (
		input    = flag.String("in", "", "input image (png, jpeg, tiff, bmp)")
		output   = flag.String("out", "", "output file prefix (default: input name without extension)")
		stain    = flag.String("stain", deconv.DefaultPreset, "preset or -stains entry name")
		vectors  = flag.String("vectors", "", "inline stain definition: name,R1,G1,B1,R2,G2,B2,R3,G3,B3")
		stains   = flag.String("stains", "", "file of extra stain definitions, one per line")
		workers  = flag.Int("workers", 0, "worker goroutines (0 = one per CPU)")
		format   = flag.String("format", "png", "output format: png or tiff")
		gray     = flag.Bool("gray", false, "write raw intensities instead of stain-coloured images")
		legend   = flag.String("legend", "", "write a legend image to this file")
		list     = flag.Bool("list", false, "list presets and exit")
		estimate = flag.String("estimate", "", "estimate stains from regions: x,y,w,h[;x,y,w,h...]")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	deconv.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	extra, err := loadStains(*stains)
	if err != nil {
		log.Fatalf("Failed to read stains: %v", err)
	}

	if *list {
		for _, name := range deconv.Presets() {
			fmt.Println(name)
		}
		for _, s := range extra {
			fmt.Println(s.Name)
		}
		return
	}

	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *format != "png" && *format != "tiff" {
		log.Fatalf("Unsupported output format %q", *format)
	}

	src, err := loadRGB(*input)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", *input, err)
	}

	seed, err := chooseSeed(*stain, *vectors, *estimate, extra, src)
	if err != nil {
		log.Fatal(err)
	}

	res, err := deconv.Run(src, seed, deconv.WithWorkers(*workers))
	if err != nil {
		log.Fatalf("Deconvolution failed: %v", err)
	}
	fmt.Print(res.Basis.Report(&res.Matrix))

	prefix := *output
	if prefix == "" {
		prefix = strings.TrimSuffix(*input, filepath.Ext(*input))
	}
	for i, ch := range res.Channels {
		var img image.Image = ch.Paletted()
		if *gray {
			img = ch.Gray()
		}
		path := fmt.Sprintf("%s-%d.%s", prefix, i+1, *format)
		if err := imgbuf.SaveImage(path, img); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		log.Printf("Stain %d saved to %s\n", i+1, path)
	}

	if *legend != "" {
		if err := imgbuf.SaveImage(*legend, deconv.Legend(res.Basis)); err != nil {
			log.Fatalf("Failed to save legend: %v", err)
		}
	}
}

func loadStains(path string) ([]deconv.Seed, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return deconv.ReadSeeds(f)
}

func loadRGB(path string) (*deconv.RGBImage, error) {
	buf, err := imgbuf.LoadImage(path)
	if err != nil {
		return nil, err
	}
	return deconv.RGBImageFromPacked(buf.Data(), buf.Width(), buf.Height())
}

// chooseSeed picks the stain definition in priority order: regions to
// estimate from, inline vectors, a -stains entry, then the preset catalog.
func chooseSeed(name, vectors, regions string, extra []deconv.Seed, src *deconv.RGBImage) (deconv.Seed, error) {
	if regions != "" {
		rects, err := parseRects(regions)
		if err != nil {
			return deconv.Seed{}, err
		}
		return deconv.EstimateSeed("From ROI", src, rects...)
	}
	if vectors != "" {
		s, ok := deconv.ParseSeed(vectors)
		if !ok {
			return deconv.Seed{}, fmt.Errorf("-vectors %q: %w", vectors, deconv.ErrMalformedSeed)
		}
		return s, nil
	}
	for _, s := range extra {
		if strings.EqualFold(s.Name, name) {
			return s, nil
		}
	}
	if _, ok := deconv.PresetByName(name); !ok {
		deconv.Logger().Warn("unknown stain, using default", "stain", name, "default", deconv.DefaultPreset)
	}
	return deconv.LookupPreset(name), nil
}

// parseRects parses "x,y,w,h;x,y,w,h".
func parseRects(s string) ([]image.Rectangle, error) {
	var rects []image.Rectangle
	for _, part := range strings.Split(s, ";") {
		fields := strings.Split(part, ",")
		if len(fields) != 4 {
			return nil, fmt.Errorf("region %q: want x,y,w,h", part)
		}
		var v [4]int
		for i, f := range fields {
			n, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return nil, fmt.Errorf("region %q: %w", part, err)
			}
			v[i] = n
		}
		rects = append(rects, image.Rect(v[0], v[1], v[0]+v[2], v[1]+v[3]))
	}
	return rects, nil
}
