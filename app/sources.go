package app

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/disintegration/imaging"

	"github.com/soocke/mask-painter-go/assets"
	"github.com/soocke/mask-painter-go/capture"
	"github.com/soocke/mask-painter-go/config"
	"github.com/soocke/mask-painter-go/ui/render"
)

// Scene sources selectable with the -source flag.
const (
	SourceSample = "sample"
	SourceFile   = "file"
	SourceScreen = "screen"
)

// loadScene resolves the base image the mask is painted over.
func loadScene(cfg *config.Config, opts Options, logger *slog.Logger) (*image.RGBA, error) {
	switch opts.Source {
	case SourceSample, "":
		img, err := assets.SampleScene()
		if err != nil {
			return nil, fmt.Errorf("decode sample scene: %w", err)
		}
		return render.ToRGBA(img), nil
	case SourceFile:
		if opts.ImagePath == "" {
			return nil, fmt.Errorf("source %q requires -image", SourceFile)
		}
		img, err := imaging.Open(opts.ImagePath)
		if err != nil {
			return nil, fmt.Errorf("open image %s: %w", opts.ImagePath, err)
		}
		logger.Info("Loaded scene from file", slog.String("path", opts.ImagePath))
		return render.ToRGBA(img), nil
	case SourceScreen:
		img, err := grabScreen(cfg)
		if err != nil {
			return nil, fmt.Errorf("grab screen: %w", err)
		}
		logger.Info("Grabbed scene from screen", slog.Int("width", img.Bounds().Dx()), slog.Int("height", img.Bounds().Dy()))
		return img, nil
	default:
		return nil, fmt.Errorf("unknown source %q", opts.Source)
	}
}

// grabScreen captures either the configured selection or the full screen.
func grabScreen(cfg *config.Config) (*image.RGBA, error) {
	if cfg.SelectionW > 0 && cfg.SelectionH > 0 {
		area := image.Rect(
			cfg.SelectionX,
			cfg.SelectionY,
			cfg.SelectionX+cfg.SelectionW,
			cfg.SelectionY+cfg.SelectionH,
		)
		return capture.GrabSelection(area)
	}
	return capture.Grab()
}
