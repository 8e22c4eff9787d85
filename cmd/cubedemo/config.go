// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// rowAlign is the byte alignment of texture-to-buffer copy rows.
const rowAlign = 256

// Preview modes. Auto paints the CPU preview only on backends whose frame
// is not read back, so a rasterized cube is never blended twice.
const (
	previewAuto = "auto"
	previewOn   = "on"
	previewOff  = "off"
)

// config holds the demo settings. Flags fill it first; a YAML file named
// by -config replaces every field it mentions, and flags given explicitly
// on the command line win over the file.
type config struct {
	Backend  string     `yaml:"backend"`
	Frames   int        `yaml:"frames"`
	Width    int        `yaml:"width"`
	Height   int        `yaml:"height"`
	ReverseZ bool       `yaml:"reverse_z"`
	Output   string     `yaml:"output"`
	Verbose  bool       `yaml:"verbose"`
	Quiet    bool       `yaml:"quiet"`
	YawStep  float32    `yaml:"yaw_step"`
	Clear    [4]float64 `yaml:"clear"`
	Preview  string     `yaml:"preview"`
	Caption  bool       `yaml:"caption"`

	// path is the -config value; never read from YAML.
	path string
}

func defaultConfig() config {
	return config{
		Backend: "noop",
		Frames:  120,
		Width:   640,
		Height:  480,
		YawStep: 3,
		Clear:   [4]float64{0.08, 0.09, 0.12, 1},
		Preview: previewAuto,
		Caption: true,
	}
}

var (
	errUnknownBackend = errors.New("unknown backend")
	errBadFrames      = errors.New("frames must be positive")
	errBadSize        = errors.New("width and height must be positive")
	errUnalignedWidth = fmt.Errorf("width must be a multiple of %d", rowAlign/4)
	errBadPreview     = errors.New("preview must be auto, on, or off")
)

// parseConfig registers the demo flags on fs, parses args, and applies
// the optional YAML file.
func parseConfig(fs *flag.FlagSet, args []string) (config, error) {
	cfg := defaultConfig()
	fs.StringVar(&cfg.Backend, "backend", cfg.Backend, "HAL backend: noop or software")
	fs.IntVar(&cfg.Frames, "frames", cfg.Frames, "number of frames to render")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "target width in pixels")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "target height in pixels")
	fs.BoolVar(&cfg.ReverseZ, "reverse-z", cfg.ReverseZ, "use a reversed depth buffer")
	fs.StringVar(&cfg.Output, "output", cfg.Output, "write the last frame to this PNG file")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "enable debug logging")
	fs.BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "hide the progress bar")
	fs.StringVar(&cfg.Preview, "preview", cfg.Preview, "CPU cube preview in the snapshot: auto, on, or off")
	fs.StringVar(&cfg.path, "config", "", "YAML config file")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	if cfg.path != "" {
		fileCfg, err := loadConfigFile(cfg.path, defaultConfig())
		if err != nil {
			return config{}, err
		}
		set := make(map[string]bool)
		fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
		cfg = overlayFlags(fileCfg, cfg, set)
	}
	return cfg, cfg.validate()
}

// loadConfigFile reads path as YAML on top of base.
func loadConfigFile(path string, base config) (config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return config{}, fmt.Errorf("read config: %w", err)
	}
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.path = path
	return cfg, nil
}

// overlayFlags copies the explicitly set flag values from flags into cfg.
func overlayFlags(cfg, flags config, set map[string]bool) config {
	for name := range set {
		switch name {
		case "backend":
			cfg.Backend = flags.Backend
		case "frames":
			cfg.Frames = flags.Frames
		case "width":
			cfg.Width = flags.Width
		case "height":
			cfg.Height = flags.Height
		case "reverse-z":
			cfg.ReverseZ = flags.ReverseZ
		case "output":
			cfg.Output = flags.Output
		case "v":
			cfg.Verbose = flags.Verbose
		case "quiet":
			cfg.Quiet = flags.Quiet
		case "preview":
			cfg.Preview = flags.Preview
		}
	}
	return cfg
}

func (c config) validate() error {
	switch c.Backend {
	case "noop", "software":
	default:
		return fmt.Errorf("%w: %q", errUnknownBackend, c.Backend)
	}
	switch c.Preview {
	case previewAuto, previewOn, previewOff:
	default:
		return fmt.Errorf("%w: %q", errBadPreview, c.Preview)
	}
	if c.Frames <= 0 {
		return errBadFrames
	}
	if c.Width <= 0 || c.Height <= 0 {
		return errBadSize
	}
	// Rows are copied without padding, so they must already be aligned.
	if (c.Width*4)%rowAlign != 0 {
		return errUnalignedWidth
	}
	return nil
}

// readsBack reports whether the backend's snapshot comes from the rendered
// color target rather than a cleared image.
func (c config) readsBack() bool {
	return c.Backend == "software"
}

// previewEnabled resolves the preview mode for the configured backend.
func (c config) previewEnabled() bool {
	switch c.Preview {
	case previewOn:
		return true
	case previewOff:
		return false
	}
	return !c.readsBack()
}
