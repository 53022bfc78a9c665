// Command mazetrace generates a maze and replays one of its algorithms as
// ASCII frames on stdout: construction, a breadth- or depth-first search,
// a scripted walk, or a distance gradient.
//
// Every flag can also be set through the environment (MAZE_WIDTH, MAZE_SEED,
// ...), and a .env file in the working directory is loaded first if present.
//
//	mazetrace --width 12 --height 8 --mode dfs
//	mazetrace --mode walk --moves ddrrdd --hide-visited
//	MAZE_BIAS=horizontal mazetrace --mode gradient-end
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/lvlath-maze/gridgraph"
	"github.com/katalvlaran/lvlath-maze/maze"
)

// AppName is reported by --help.
const AppName = "mazetrace"

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(errors.Cause(err)) {
		fmt.Fprintf(os.Stderr, "warning: loading .env: %v\n", err)
	}

	cmd := &cli.Command{
		Name:  AppName,
		Usage: "generate a maze and replay its algorithms as ASCII frames",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "width", Value: 10, Usage: "maze width in cells", Sources: cli.EnvVars("MAZE_WIDTH")},
			&cli.IntFlag{Name: "height", Value: 10, Usage: "maze height in cells", Sources: cli.EnvVars("MAZE_HEIGHT")},
			&cli.IntFlag{Name: "seed", Value: 1, Usage: "random seed", Sources: cli.EnvVars("MAZE_SEED")},
			&cli.StringFlag{Name: "bias", Value: "none", Usage: "corridor bias: none, horizontal or vertical", Sources: cli.EnvVars("MAZE_BIAS")},
			&cli.StringFlag{Name: "mode", Value: "dfs", Usage: "bfs, dfs, walk, gradient-start or gradient-end", Sources: cli.EnvVars("MAZE_MODE")},
			&cli.StringFlag{Name: "moves", Usage: "walk script, one letter per move (u/d/l/r or n/e/s/w)", Sources: cli.EnvVars("MAZE_MOVES")},
			&cli.BoolFlag{Name: "hide-visited", Usage: "do not replay or show visited cells", Sources: cli.EnvVars("MAZE_HIDE_VISITED")},
			&cli.BoolFlag{Name: "frames", Usage: "print a frame after every step", Sources: cli.EnvVars("MAZE_FRAMES")},
			&cli.IntFlag{Name: "v", Value: 0, Usage: "log verbosity (2: transitions, 4: every step)", Sources: cli.EnvVars("MAZE_V")},
		},
		Action: run,
	}

	err := cmd.Run(context.Background(), os.Args)
	klog.Flush()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", AppName, err)
		os.Exit(1)
	}
}

// initLogging routes klog to stderr at the requested verbosity.
func initLogging(verbosity int) {
	fset := flag.NewFlagSet(AppName, flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	fset.Set("v", strconv.Itoa(verbosity))
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})
}

// config is the validated flag set.
type config struct {
	width, height int
	seed          int64
	bias          gridgraph.Bias
	mode          runMode
	moves         []gridgraph.Direction
	hideVisited   bool
	frames        bool
}

func run(ctx context.Context, cmd *cli.Command) error {
	initLogging(int(cmd.Int("v")))

	cfg, err := parseConfig(cmd)
	if err != nil {
		return err
	}
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	return trace(ctx, out, cfg)
}

func parseConfig(cmd *cli.Command) (*config, error) {
	cfg := &config{
		width:       int(cmd.Int("width")),
		height:      int(cmd.Int("height")),
		seed:        int64(cmd.Int("seed")),
		hideVisited: cmd.Bool("hide-visited"),
		frames:      cmd.Bool("frames"),
	}
	if cfg.width < 1 || cfg.height < 1 {
		return nil, errors.Errorf("width and height must be at least 1, got %dx%d", cfg.width, cfg.height)
	}

	var err error
	if cfg.bias, err = gridgraph.ParseBias(cmd.String("bias")); err != nil {
		return nil, errors.Wrap(err, "--bias")
	}
	if cfg.mode, err = parseRunMode(cmd.String("mode")); err != nil {
		return nil, errors.Wrap(err, "--mode")
	}
	if cfg.moves, err = parseMoves(cmd.String("moves")); err != nil {
		return nil, errors.Wrap(err, "--moves")
	}
	if cfg.mode == runWalk && len(cfg.moves) == 0 {
		return nil, errors.New("--mode walk needs --moves")
	}

	return cfg, nil
}

// trace generates the maze and drives it through the selected mode.
func trace(ctx context.Context, w io.Writer, cfg *config) error {
	m := maze.New(maze.WithSeed(cfg.seed), maze.WithShowVisited(!cfg.hideVisited))
	snap := m.Regenerate(cfg.width, cfg.height, cfg.bias, nil)
	klog.Infof("maze %s: %dx%d seed=%d bias=%s mode=%s", snap.ID, snap.Width, snap.Height, cfg.seed, cfg.bias, cfg.mode)

	step := func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		m.Advance()
		if cfg.frames {
			return Frame(w, m)
		}

		return nil
	}

	for m.Mode() == maze.ModeMazeBuild {
		if err := step(); err != nil {
			return err
		}
	}

	switch cfg.mode {
	case runBFS:
		m.SetMode(maze.ModeSearchBFS)
	case runDFS:
		m.SetMode(maze.ModeSearchDFS)
	case runGradientStart:
		m.ShowGradient(snap.Start)
	case runGradientEnd:
		m.ShowGradient(snap.End)
	case runWalk:
		for i, d := range cfg.moves {
			if m.Mode() != maze.ModeUserTraversal {
				klog.Warningf("end reached after %d of %d moves", i, len(cfg.moves))
				break
			}
			res := m.RequestMove(d)
			if !res.Moved {
				klog.V(2).Infof("move %d (%s) blocked at %v", i, d, res.From)
			}
			if cfg.frames && res.Moved {
				if err := Frame(w, m); err != nil {
					return err
				}
			}
		}
	}

	for m.Mode().Searching() || (m.Mode() == maze.ModePathReplay && !m.Finished()) {
		if err := step(); err != nil {
			return err
		}
	}
	if cfg.frames {
		return nil
	}

	return Frame(w, m)
}
