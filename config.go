package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/olivierh59500/nbody-trails/physics"
	"github.com/olivierh59500/nbody-trails/simulation"
	"github.com/olivierh59500/nbody-trails/telemetry"
)

// appConfig is everything read from the config file and environment.
type appConfig struct {
	Width, Height int
	TPS           int
	ShowTrails    bool
	ScreenshotDir string
	LogLevel      string

	Sim simulation.Config

	Redis telemetry.RedisOptions

	HeadlessInterval time.Duration
	HeadlessTicks    uint64
}

func setDefaults(v *viper.Viper) {
	def := simulation.DefaultConfig()
	v.SetDefault("window.width", 800)
	v.SetDefault("window.height", 600)
	v.SetDefault("window.tps", 60)
	v.SetDefault("log.level", "info")
	v.SetDefault("physics.g", def.G)
	v.SetDefault("physics.max_dt", def.MaxDt)
	v.SetDefault("physics.min_distance", def.Params.MinDistance)
	v.SetDefault("physics.planet_multiplier", def.Params.PlanetMultiplier)
	v.SetDefault("physics.orbit_speed_scale", def.Params.OrbitSpeedScale)
	v.SetDefault("trail.max_points", def.MaxTrailPoints)
	v.SetDefault("trail.spacing", def.TrailSpacing)
	v.SetDefault("trail.visible", true)
	v.SetDefault("seed", 0)
	v.SetDefault("screenshot.dir", ".")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.channel", telemetry.DefaultChannel)
	v.SetDefault("redis.every", 1)
	v.SetDefault("redis.trails", false)
	v.SetDefault("headless.interval", time.Second/60)
	v.SetDefault("headless.ticks", 0)
	v.SetDefault("preset.sun_mass", def.Preset.SunMass)
}

// loadConfig reads nbody.toml (or the file at path) and NBODY_* environment
// variables on top of the defaults. A missing default config file is fine;
// a missing explicit one is not.
func loadConfig(path string) (appConfig, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("nbody")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("nbody")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return appConfig{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := appConfig{
		Width:         v.GetInt("window.width"),
		Height:        v.GetInt("window.height"),
		TPS:           v.GetInt("window.tps"),
		ShowTrails:    v.GetBool("trail.visible"),
		ScreenshotDir: v.GetString("screenshot.dir"),
		LogLevel:      v.GetString("log.level"),
		Sim: simulation.Config{
			G:     v.GetFloat64("physics.g"),
			MaxDt: v.GetFloat64("physics.max_dt"),
			Params: physics.Params{
				MinDistance:      v.GetFloat64("physics.min_distance"),
				PlanetMultiplier: v.GetFloat64("physics.planet_multiplier"),
				OrbitSpeedScale:  v.GetFloat64("physics.orbit_speed_scale"),
			},
			MaxTrailPoints: v.GetInt("trail.max_points"),
			TrailSpacing:   v.GetFloat64("trail.spacing"),
			Seed:           v.GetInt64("seed"),
			Preset:         simulation.DefaultPreset(),
		},
		Redis: telemetry.RedisOptions{
			Addr:    v.GetString("redis.addr"),
			Channel: v.GetString("redis.channel"),
			Every:   uint64(max(v.GetInt("redis.every"), 0)),
			Trails:  v.GetBool("redis.trails"),
		},
		HeadlessInterval: v.GetDuration("headless.interval"),
		HeadlessTicks:    uint64(max(v.GetInt("headless.ticks"), 0)),
	}

	cfg.Sim.Preset.SunMass = v.GetFloat64("preset.sun_mass")
	if v.IsSet("preset.planets") {
		var planets []simulation.PlanetSpec
		if err := v.UnmarshalKey("preset.planets", &planets); err != nil {
			return appConfig{}, fmt.Errorf("decode preset.planets: %w", err)
		}
		cfg.Sim.Preset.Planets = planets
	}

	if cfg.Width <= 0 || cfg.Height <= 0 {
		return appConfig{}, fmt.Errorf("window size must be positive, got %dx%d", cfg.Width, cfg.Height)
	}
	if every := v.GetInt("redis.every"); every < 0 {
		return appConfig{}, fmt.Errorf("redis.every must not be negative, got %d", every)
	}
	if ticks := v.GetInt("headless.ticks"); ticks < 0 {
		return appConfig{}, fmt.Errorf("headless.ticks must not be negative, got %d", ticks)
	}
	if cfg.HeadlessInterval <= 0 {
		return appConfig{}, fmt.Errorf("headless.interval must be positive, got %s", cfg.HeadlessInterval)
	}
	if cfg.TPS <= 0 {
		return appConfig{}, fmt.Errorf("tps must be positive, got %d", cfg.TPS)
	}
	if err := cfg.Sim.Validate(); err != nil {
		return appConfig{}, err
	}
	return cfg, nil
}
