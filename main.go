package main

import (
	"context"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/session"
	"github.com/sheikhrachel/go-life/utils"
)

const defaultConfigFile = "config.json"

func main() {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	if err := newApp(logger, os.Stdout).Run(os.Args); err != nil {
		level.Error(logger).Log("msg", "exiting", "err", err)
		os.Exit(1)
	}
}

func newApp(logger log.Logger, out io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "go-life"
	app.Usage = "play Conway's Game of Life on a bounded board"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "config, c", Value: defaultConfigFile, Usage: "JSON configuration file"},
		cli.IntFlag{Name: "width", Usage: "board width"},
		cli.IntFlag{Name: "height", Usage: "board height"},
		cli.StringFlag{Name: "pattern, p", Usage: "seed pattern: random, blinker, block or glider"},
		cli.StringFlag{Name: "seed-file", Usage: "read the seed from a text grid"},
		cli.IntFlag{Name: "generations, n", Usage: "stop after this many generations (0 runs forever)"},
		cli.DurationFlag{Name: "interval", Usage: "time between generations"},
		cli.Float64Flag{Name: "density", Usage: "living cell density for random seeds"},
		cli.Int64Flag{Name: "random-seed", Usage: "seed for the random pattern generator"},
		cli.BoolFlag{Name: "no-restart", Usage: "stop instead of restarting on extinction or stagnation"},
		cli.BoolFlag{Name: "debug", Usage: "log every generation"},
	}
	app.Action = func(c *cli.Context) error {
		if c.Bool("debug") {
			logger = level.NewFilter(logger, level.AllowDebug())
		} else {
			logger = level.NewFilter(logger, level.AllowInfo())
		}

		config, err := loadConfig(c, logger)
		if err != nil {
			return err
		}
		applyFlags(c, &config)
		if err := config.Validate(); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return run(ctx, config, logger, out)
	}
	return app
}

// run plays one game until it is interrupted, reaches the generation
// limit, or dies out with restarts disabled
func run(ctx context.Context, config utils.Config, logger log.Logger, out io.Writer) error {
	randomSeed := config.RandomSeed
	if randomSeed == 0 {
		randomSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(randomSeed))

	seed, err := buildSeed(config, rng)
	if err != nil {
		return err
	}

	frames := make(chan session.Frame)
	sess, err := session.New(seed,
		session.WithLogger(logger),
		session.WithInterval(config.Interval()),
		session.WithTickObserver(func(ctx context.Context, frame session.Frame) {
			select {
			case frames <- frame:
			case <-ctx.Done():
			}
		}),
	)
	if err != nil {
		return errors.Wrap(err, "[run] failed to create session")
	}
	defer sess.Close()

	if err := sess.Play(); err != nil {
		return err
	}

	var (
		renderer      = &model.TerminalRenderer{Out: out}
		stats         = utils.NewStats()
		history       model.History
		generation    = 0
		stagnantCount = 0
		lastFrameTime = time.Now()
	)

	first := sess.Frame()
	epoch := first.Epoch
	history.Record(first.Hash)
	renderer.Clear()
	displayGameStatus(out, first, generation, "Active", stats)
	renderer.Display(first.Cells)

	if err := sess.SetAutoplay(true); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			level.Info(logger).Log(
				"msg", "shutting down",
				"generations", generation,
				"runtime", stats.Runtime(),
				"avg_population", stats.AveragePopulation,
			)
			return nil
		case frame := <-frames:
			if isStaleFrame(frame, epoch) {
				level.Debug(logger).Log("msg", "dropping frame from replaced board", "epoch", frame.Epoch)
				continue
			}
			generation++
			stats.Update(generation, frame.Living, time.Since(lastFrameTime))
			lastFrameTime = time.Now()

			isStagnant := history.IsStagnant(frame.Hash)
			history.Record(frame.Hash)
			if isStagnant {
				stagnantCount++
			} else {
				stagnantCount = 0
			}

			renderer.Clear()
			displayGameStatus(out, frame, generation, gameStatus(frame, isStagnant), stats)
			renderer.Display(frame.Cells)

			if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
				level.Info(logger).Log("msg", "reached generation limit", "generations", generation)
				return sess.SetAutoplay(false)
			}

			shouldRestart, reason := checkRestartConditions(frame.Living, stagnantCount, frame.Generation, config)
			if !shouldRestart {
				continue
			}
			if !config.AutoRestart {
				level.Info(logger).Log("msg", "game over", "reason", reason, "generations", generation)
				return sess.SetAutoplay(false)
			}

			level.Info(logger).Log("msg", "restarting", "reason", reason)
			if err := sess.Load(restartSeed(frame.Cells, config, rng)); err != nil {
				return err
			}
			epoch = sess.Frame().Epoch
			history.Reset()
			stagnantCount = 0
			stats.Restarts++
		}
	}
}
