package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/hajimehoshi/ebiten/v2"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/olivierh59500/nbody-trails/simulation"
	"github.com/olivierh59500/nbody-trails/telemetry"
)

func main() {
	var (
		configPath string
		headless   bool
	)
	flag.StringVar(&configPath, "config", "", "path to a config file (default ./nbody.toml if present)")
	flag.BoolVar(&headless, "headless", false, "run the solar system preset without a window")
	flag.Parse()

	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	cfg, err := loadConfig(configPath)
	if err != nil {
		level.Error(logger).Log("msg", "invalid configuration", "err", err)
		os.Exit(1)
	}
	logger = level.NewFilter(logger, levelOption(cfg.LogLevel))

	if err := run(cfg, headless, logger); err != nil && !errors.Is(err, context.Canceled) {
		level.Error(logger).Log("err", err)
		os.Exit(1)
	}
}

func levelOption(name string) level.Option {
	switch name {
	case "debug":
		return level.AllowDebug()
	case "warn":
		return level.AllowWarn()
	case "error":
		return level.AllowError()
	default:
		return level.AllowInfo()
	}
}

func run(cfg appConfig, headless bool, logger log.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pub, err := newPublisher(ctx, cfg.Redis, logger)
	if err != nil {
		return err
	}
	defer pub.Close()

	world := simulation.NewWorld(cfg.Sim, logger)
	level.Info(logger).Log("msg", "starting", "headless", headless, "g", cfg.Sim.G,
		"max_dt", cfg.Sim.MaxDt, "trail_points", cfg.Sim.MaxTrailPoints, "planets", len(cfg.Sim.Preset.Planets))

	if headless {
		world.LoadSolarSystem(r2.Vec{X: float64(cfg.Width) / 2, Y: float64(cfg.Height) / 2})
		return simulation.Run(ctx, world, cfg.HeadlessInterval, cfg.HeadlessTicks, pub.Publish)
	}

	game := NewGame(cfg, world, pub, logger)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("N-Body Gravity Trails")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)

	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

func newPublisher(ctx context.Context, opts telemetry.RedisOptions, logger log.Logger) (telemetry.Publisher, error) {
	if opts.Addr == "" {
		return telemetry.Nop{}, nil
	}
	pub, err := telemetry.NewRedisPublisher(ctx, opts, logger)
	if err != nil {
		return nil, err
	}
	level.Info(logger).Log("msg", "publishing snapshots", "addr", opts.Addr, "channel", opts.Channel, "every", opts.Every)
	return pub, nil
}
