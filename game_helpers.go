package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/session"
	"github.com/sheikhrachel/go-life/utils"
)

const patternRandom = "random"

// loadConfig reads the config file, falling back to defaults when the
// default file is absent
func loadConfig(c *cli.Context, logger log.Logger) (utils.Config, error) {
	filename := c.String("config")
	config, err := utils.LoadConfig(filename)
	if err == nil {
		level.Info(logger).Log("msg", "loaded configuration", "file", filename)
		return config, nil
	}
	if !c.IsSet("config") && errors.Is(err, os.ErrNotExist) {
		level.Info(logger).Log("msg", "using default configuration", "file", filename)
		return utils.DefaultConfig(), nil
	}
	return config, err
}

// applyFlags overrides file configuration with flags set on the command line
func applyFlags(c *cli.Context, config *utils.Config) {
	if c.IsSet("width") {
		config.Width = c.Int("width")
	}
	if c.IsSet("height") {
		config.Height = c.Int("height")
	}
	if c.IsSet("pattern") {
		config.Pattern = c.String("pattern")
	}
	if c.IsSet("seed-file") {
		config.SeedFile = c.String("seed-file")
	}
	if c.IsSet("generations") {
		config.MaxGenerations = c.Int("generations")
	}
	if c.IsSet("interval") {
		config.FrameRateMs = int(c.Duration("interval").Milliseconds())
	}
	if c.IsSet("density") {
		config.RandomDensity = c.Float64("density")
	}
	if c.IsSet("random-seed") {
		config.RandomSeed = c.Int64("random-seed")
	}
	if c.Bool("no-restart") {
		config.AutoRestart = false
	}
}

// buildSeed returns the initial cells from a seed file, a named pattern,
// or a random fill
func buildSeed(config utils.Config, rng *rand.Rand) ([][]bool, error) {
	if config.SeedFile != "" {
		data, err := os.ReadFile(config.SeedFile)
		if err != nil {
			return nil, errors.Wrapf(err, "[buildSeed] failed to read seed file: %+v", config.SeedFile)
		}
		board, err := model.ParseBoard(string(data))
		if err != nil {
			return nil, errors.Wrapf(err, "[buildSeed] failed to parse seed file: %+v", config.SeedFile)
		}
		return model.ToBools(board.Current()), nil
	}

	if config.Pattern == "" || config.Pattern == patternRandom {
		return model.RandomSeed(config.Width, config.Height, config.RandomDensity, rng), nil
	}
	return model.PatternSeed(config.Pattern, config.Width, config.Height)
}

// restartSeed builds a fresh random board the size of cells with a glider
// and a blinker so the new game does not die out at once
func restartSeed(cells [][]bool, config utils.Config, rng *rand.Rand) [][]bool {
	height, width := len(cells), len(cells[0])
	seed := model.RandomSeed(width, height, config.RandomDensity, rng)
	if width >= 10 && height >= 10 {
		model.PlacePattern(seed, model.Glider, 1, 1)
		model.PlacePattern(seed, model.Blinker, width/2, height/2)
	}
	return seed
}

// gameStatus describes a frame for the status line
func gameStatus(frame session.Frame, isStagnant bool) string {
	switch {
	case frame.Living == 0:
		return "Extinct"
	case isStagnant:
		return fmt.Sprintf("Stagnant (%d)", frame.Generation)
	}
	return "Active"
}

// isStaleFrame reports whether frame was produced by a board the session
// has since replaced
func isStaleFrame(frame session.Frame, epoch int) bool {
	return frame.Epoch != epoch
}

// displayGameStatus shows the current game status
func displayGameStatus(out io.Writer, frame session.Frame, generation int, status string, stats *utils.Stats) {
	height := len(frame.Cells)
	width := 0
	if height > 0 {
		width = len(frame.Cells[0])
	}
	density := 0.0
	if width*height > 0 {
		density = float64(frame.Living) / float64(width*height) * 100
	}

	fmt.Fprintf(out, "Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		generation, frame.Living, density, status)
	fmt.Fprintf(out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs | Restarts: %d\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime().Seconds(), stats.Restarts)

	// Show time since last restart
	if stats.Restarts > 0 {
		fmt.Fprintf(out, "Generations since restart: %d\n", frame.Generation)
	}
	fmt.Fprintln(out)
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(livingCells, stagnantCount, sinceRestart int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if config.RefreshGenerations > 0 && sinceRestart >= config.RefreshGenerations {
		return true, "periodic refresh"
	}
	return false, ""
}
