package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/olivierh59500/nbody-trails/physics"
	"github.com/olivierh59500/nbody-trails/simulation"
	"github.com/olivierh59500/nbody-trails/telemetry"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 800 || cfg.Height != 600 || cfg.TPS != 60 || !cfg.ShowTrails {
		t.Errorf("unexpected window config %+v", cfg)
	}
	if cfg.Sim.G != physics.DefaultG || cfg.Sim.MaxDt != simulation.DefaultMaxDt {
		t.Errorf("unexpected physics config %+v", cfg.Sim)
	}
	if cfg.Sim.Params != physics.DefaultParams() {
		t.Errorf("unexpected params %+v", cfg.Sim.Params)
	}
	if cfg.Sim.MaxTrailPoints != physics.DefaultMaxTrailPoints {
		t.Errorf("trail cap %d", cfg.Sim.MaxTrailPoints)
	}
	if len(cfg.Sim.Preset.Planets) != len(simulation.DefaultPreset().Planets) {
		t.Errorf("preset has %d planets", len(cfg.Sim.Preset.Planets))
	}
	if cfg.Redis.Addr != "" || cfg.Redis.Channel != telemetry.DefaultChannel {
		t.Errorf("unexpected redis config %+v", cfg.Redis)
	}
	if cfg.HeadlessInterval != time.Second/60 {
		t.Errorf("headless interval %s", cfg.HeadlessInterval)
	}
}

func TestLoadConfigEnv(t *testing.T) {
	t.Setenv("NBODY_PHYSICS_G", "250")
	t.Setenv("NBODY_TRAIL_MAX_POINTS", "42")
	t.Setenv("NBODY_REDIS_ADDR", "localhost:6379")
	t.Setenv("NBODY_HEADLESS_INTERVAL", "50ms")

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Sim.G != 250 || cfg.Sim.MaxTrailPoints != 42 {
		t.Errorf("env not applied: %+v", cfg.Sim)
	}
	if cfg.Redis.Addr != "localhost:6379" || cfg.HeadlessInterval != 50*time.Millisecond {
		t.Errorf("env not applied: %+v %s", cfg.Redis, cfg.HeadlessInterval)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.toml")
	const body = `
[window]
width = 1024

[physics]
g = 5000
planet_multiplier = 2

[preset]
sun_mass = 40

[[preset.planets]]
name = "inner"
mass = 3
radius = 90
rate_factor = 2
angle = 1.5

[[preset.planets]]
name = "outer"
mass = 8
radius = 200
rate_factor = 1
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 1024 || cfg.Height != 600 {
		t.Errorf("window %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Sim.G != 5000 || cfg.Sim.Params.PlanetMultiplier != 2 || cfg.Sim.Params.MinDistance != physics.DefaultMinDistance {
		t.Errorf("physics %+v", cfg.Sim)
	}
	p := cfg.Sim.Preset
	if p.SunMass != 40 || len(p.Planets) != 2 {
		t.Fatalf("preset %+v", p)
	}
	if p.Planets[0].Angle == nil || *p.Planets[0].Angle != 1.5 || p.Planets[0].RateFactor != 2 {
		t.Errorf("inner planet %+v", p.Planets[0])
	}
	if p.Planets[1].Angle != nil || p.Planets[1].Radius != 200 {
		t.Errorf("outer planet %+v", p.Planets[1])
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected an error for a missing explicit config file")
	}

	tests := []struct {
		name, key, value string
	}{
		{"negative G", "NBODY_PHYSICS_G", "-1"},
		{"negative orbit speed scale", "NBODY_PHYSICS_ORBIT_SPEED_SCALE", "-1"},
		{"zero orbit speed scale", "NBODY_PHYSICS_ORBIT_SPEED_SCALE", "0"},
		{"negative planet multiplier", "NBODY_PHYSICS_PLANET_MULTIPLIER", "-5"},
		{"zero headless interval", "NBODY_HEADLESS_INTERVAL", "0s"},
		{"negative headless interval", "NBODY_HEADLESS_INTERVAL", "-10ms"},
		{"negative headless ticks", "NBODY_HEADLESS_TICKS", "-1"},
		{"negative redis cadence", "NBODY_REDIS_EVERY", "-3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := loadConfig(""); err == nil {
				t.Errorf("expected an error for %s=%s", tt.key, tt.value)
			}
		})
	}
}
