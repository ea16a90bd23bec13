/*
gridpath reads a grid of '.' (passable) and '#' (impassable) cells and prints
how many passable cells are left off a shortest path from the top-left to the
bottom-right cell, or -1 when no such path exists.

Input may start with an "H W" header line. If an argument is given it is the
path of the input file, otherwise the grid is read from standard input.

Configuration comes from GRIDPATH_* environment variables, an optional .env
file and an optional YAML file named by GRIDPATH_CONFIG.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/gridpath/gridpath"
	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/internal/log"
	"github.com/katalvlaran/gridpath/search"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := log.NewLogger(cfg)

	in := io.Reader(os.Stdin)
	if len(os.Args) > 1 {
		f, err := os.Open(os.Args[1])
		if err != nil {
			logger.Error().Err(err).Msg("open input")
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	if err := run(cfg, logger, in, os.Stdout); err != nil {
		logger.Error().Err(err).Msg("gridpath failed")
		os.Exit(1)
	}
}

// run parses one grid from in and writes the answer to out.
func run(cfg config.Config, logger log.Logger, in io.Reader, out io.Writer) error {
	g, err := gridpath.ParseReader(in, cfg.GridOptions())
	if err != nil {
		return err
	}
	logger.Debug().
		Int("height", g.Height).
		Int("width", g.Width).
		Int("white", g.WhiteCount()).
		Str("conn", g.Conn.String()).
		Msg("grid loaded")

	opts := []search.Option[gridpath.Cell]{search.WithLogger[gridpath.Cell](logger)}
	if cfg.Search.MaxCost > 0 {
		opts = append(opts, search.WithMaxCost[gridpath.Cell](cfg.Search.MaxCost))
	}

	answer, found, err := gridpath.Solve(g, opts...)
	if err != nil {
		return err
	}
	if !found {
		logger.Info().Msg("no path")
		answer = -1
	}
	_, err = fmt.Fprintln(out, answer)
	return err
}
