package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"raycast-renderer/internal/batch"
	"raycast-renderer/internal/camera"
	"raycast-renderer/internal/config"
	"raycast-renderer/internal/encode"
	"raycast-renderer/internal/raster"
	"raycast-renderer/internal/texture"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	output := flag.String("output", "", "Output image path; format from extension (default: ./dist/image.jpg)")
	manifest := flag.String("manifest", "", "Manifest path (default: manifest.json next to the image)")
	background := flag.String("background", "", "Lat-long background image (JPEG/PNG/TGA) instead of the sky gradient")
	height := flag.Int("height", 0, "Image height in pixels (default: 720)")
	samples := flag.Int("samples", 0, "Samples per pixel (default: 1)")
	depth := flag.Int("depth", -1, "Max bounce depth (default: 50)")
	supersample := flag.Int("supersample", 0, "Render at N times the size and downsample (default: 1)")
	quality := flag.Int("quality", 0, "JPEG quality 1-100 (default: 90)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	seed := flag.Uint64("seed", 0, "Random seed (default: time based)")
	verbose := flag.Bool("v", false, "Verbose logging")

	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	raster.SetLogger(logger)

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	flags := config.Flags{
		Output:      *output,
		Manifest:    *manifest,
		Background:  *background,
		Height:      *height,
		Samples:     *samples,
		Supersample: *supersample,
		Quality:     *quality,
		Workers:     *workers,
		Seed:        *seed,
	}
	if *depth >= 0 {
		flags.Depth = depth
	}
	cfg.Resolve(flags)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	camOpts := cfg.CameraOptions()
	cam, err := camera.New(camOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating camera: %v\n", err)
		os.Exit(1)
	}

	// Background resolver
	horizon, zenith := cfg.Sky()
	var resolver raster.Resolver = raster.SkyGradient{Horizon: horizon, Zenith: zenith}
	if cfg.Background != "" {
		tex, err := texture.Load(cfg.Background)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading background: %v\n", err)
			os.Exit(1)
		}
		resolver = raster.EnvironmentMap{Tex: tex}
		logger.Debug("background loaded", "path", cfg.Background, "size", tex.Bounds().Size())
	}

	renderW := cfg.ImageWidth * cfg.Supersample
	renderH := cfg.ImageHeight * cfg.Supersample

	r, err := raster.New(raster.Options{
		Camera:          cam,
		ImageWidth:      renderW,
		ImageHeight:     renderH,
		SamplesPerPixel: cfg.SamplesPerPixel,
		MaxDepth:        *cfg.MaxDepth,
		Resolver:        resolver,
		Workers:         cfg.Workers,
		Seed:            cfg.Seed,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	encOpts := encode.Options{Quality: cfg.Quality}
	if cfg.Supersample > 1 {
		encOpts.TargetWidth = cfg.ImageWidth
		encOpts.TargetHeight = cfg.ImageHeight
	}
	enc := encode.New(cfg.Output, renderW, renderH, encOpts)

	// Print summary
	fmt.Printf("Ray caster → %s\n", cfg.Output)
	fmt.Printf("Image: %dx%d (x%d supersample), Samples: %d, Depth: %d\n",
		cfg.ImageWidth, cfg.ImageHeight, cfg.Supersample, cfg.SamplesPerPixel, *cfg.MaxDepth)
	fmt.Printf("Workers: %d, Seed: %d\n", cfg.Workers, cfg.Seed)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()
	stats := r.Render(enc)

	if err := enc.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving image: %v\n", err)
		os.Exit(1)
	}
	elapsed := time.Since(start)

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs (render %.1fs, %d samples)\n", elapsed.Seconds(), stats.Elapsed.Seconds(), stats.Samples)
	fmt.Printf("Image: %s\n", cfg.Output)

	// Write manifest
	m := batch.Manifest{
		Image:           cfg.Output,
		Width:           cfg.ImageWidth,
		Height:          cfg.ImageHeight,
		Supersample:     cfg.Supersample,
		SamplesPerPixel: cfg.SamplesPerPixel,
		MaxDepth:        *cfg.MaxDepth,
		Seed:            cfg.Seed,
		Background:      cfg.Background,
		Camera:          camOpts,
		ElapsedMS:       elapsed.Milliseconds(),
	}
	if err := batch.WriteManifest(cfg.Manifest, m); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", cfg.Manifest)
	}
}
