package main

import (
	"flag"
	"log"

	"ChartAnimator/internal/config"
	"ChartAnimator/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML settings file")
	speed := flag.Float64("speed", 0, "marker speed in px/s (20-300)")
	image := flag.String("image", "", "image file to show as backdrop")
	watch := flag.Bool("watch", false, "reload the backdrop when its file changes")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}

	// Flags given on the command line win over the file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "speed":
			cfg.Speed = *speed
		case "image":
			cfg.Image = *image
		case "watch":
			cfg.WatchBackdrop = *watch
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid settings: %v", err)
	}

	log.Printf("[CONFIG] speed=%.0f px/s capture_radius=%.0f px frame_rate=%d", cfg.Speed, cfg.CaptureRadius, cfg.FrameRate)
	ui.RunApp(cfg)
}
