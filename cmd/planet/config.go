package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/Carmen-Shannon/oxy-planet/engine/loader"
)

// config is the viewer configuration. Values come from the defaults, then the optional JSON file,
// then any flag given on the command line.
type config struct {
	Assets     string  `json:"assets"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	Title      string  `json:"title"`
	FPSCap     float64 `json:"fpsCap"`
	TickRate   float64 `json:"tickRate"`
	SunModel   string  `json:"sunModel"`
	Profile    bool    `json:"profile"`
	MaxTexture int     `json:"maxTexture"`
}

func defaultConfig() config {
	return config{
		Assets:     "assets",
		Width:      1280,
		Height:     720,
		Title:      "Planet",
		FPSCap:     48,
		TickRate:   60,
		SunModel:   "approximate",
		MaxTexture: loader.DefaultMaxTextureSize,
	}
}

type flags struct {
	config *string

	assets     *string
	width      *int
	height     *int
	title      *string
	fpsCap     *float64
	tickRate   *float64
	sunModel   *string
	profile    *bool
	maxTexture *int

	showHelp *bool
}

func defineFlags(fs *flag.FlagSet) flags {
	d := defaultConfig()
	return flags{
		config: fs.String("config", "", "Optional JSON config file, applied before the other flags"),

		assets:     fs.String("assets", d.Assets, "Directory holding the planet textures"),
		width:      fs.Int("width", d.Width, "Window width in pixels"),
		height:     fs.Int("height", d.Height, "Window height in pixels"),
		title:      fs.String("title", d.Title, "Window title"),
		fpsCap:     fs.Float64("fps-cap", d.FPSCap, "Maximum frames per second (0 disables the cap)"),
		tickRate:   fs.Float64("tick-rate", d.TickRate, "Loop iterations per second while active"),
		sunModel:   fs.String("sun-model", d.SunModel, "Sun position model: approximate or ephemeris"),
		profile:    fs.Bool("profile", d.Profile, "Log tick and draw rates once per second"),
		maxTexture: fs.Int("max-texture", d.MaxTexture, "Largest texture edge in pixels; bigger images are downscaled"),

		showHelp: fs.Bool("h", false, "Show this help message"),
	}
}

// resolve builds the final config from the parsed flag set.
func (f flags) resolve(fs *flag.FlagSet) (config, error) {
	cfg := defaultConfig()
	if *f.config != "" {
		if err := loadConfig(*f.config, &cfg); err != nil {
			return cfg, err
		}
	}

	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "assets":
			cfg.Assets = *f.assets
		case "width":
			cfg.Width = *f.width
		case "height":
			cfg.Height = *f.height
		case "title":
			cfg.Title = *f.title
		case "fps-cap":
			cfg.FPSCap = *f.fpsCap
		case "tick-rate":
			cfg.TickRate = *f.tickRate
		case "sun-model":
			cfg.SunModel = *f.sunModel
		case "profile":
			cfg.Profile = *f.profile
		case "max-texture":
			cfg.MaxTexture = *f.maxTexture
		}
	})

	return cfg, cfg.validate()
}

// loadConfig overlays the JSON file at path onto cfg. Fields absent from the file keep their values.
func loadConfig(path string, cfg *config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

func (c config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Width, c.Height)
	}
	if c.FPSCap < 0 {
		return fmt.Errorf("invalid fps cap %v", c.FPSCap)
	}
	if c.Assets == "" {
		return fmt.Errorf("no asset directory")
	}
	return nil
}
