// Command searchctl runs graph-search strategies on a road map from the
// command line.
//
//	searchctl -algo astar -start Arad -goal Bucharest
//	searchctl -all -start Timisoara -goal Eforie
//	searchctl -map mymap.hcl -algo ids -limit 6 -format json
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/lvsearch/builder"
	"github.com/katalvlaran/lvsearch/internal/cli"
	"github.com/katalvlaran/lvsearch/mapfile"
	"github.com/katalvlaran/lvsearch/search"
	"github.com/katalvlaran/lvsearch/strategy"
	"github.com/katalvlaran/lvsearch/uninformed"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitFailure)
	}
}

type config struct {
	mapPath   string
	algo      string
	start     string
	goal      string
	limit     int
	format    string
	all       bool
	list      bool
	dump      bool
	logLevel  string
	logFormat string
}

// parse processes the arguments. It reports shouldExit for -h.
func parse(args []string, out io.Writer) (*config, bool, error) {
	fs := flag.NewFlagSet("searchctl", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprint(out, `
searchctl - run uninformed and informed graph searches on a road map.

Usage:
  searchctl [options]

Algorithms:
  `+strings.Join(strategy.Names(), ", ")+`

Options:
`)
		fs.PrintDefaults()
	}

	cfg := &config{}
	fs.StringVar(&cfg.mapPath, "map", "", "HCL map file; empty uses the built-in Romania map.")
	fs.StringVar(&cfg.algo, "algo", "bfs", "Algorithm name or title.")
	fs.StringVar(&cfg.start, "start", "Arad", "Start city.")
	fs.StringVar(&cfg.goal, "goal", "Bucharest", "Goal city.")
	fs.IntVar(&cfg.limit, "limit", strategy.DefaultLimit, "Depth limit for dls, maximum limit for ids.")
	fs.StringVar(&cfg.format, "format", "text", "Output format. Options: 'text' or 'json'.")
	fs.BoolVar(&cfg.all, "all", false, "Run every algorithm and print a comparison.")
	fs.BoolVar(&cfg.list, "list", false, "List the algorithms and exit.")
	fs.BoolVar(&cfg.dump, "dump-map", false, "Print the map as HCL and exit.")
	fs.StringVar(&cfg.logLevel, "log-level", "warn", "Logging level. Options: 'debug', 'info', 'warn', 'error'.")
	fs.StringVar(&cfg.logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, cli.Usagef("%s", err)
	}
	if fs.NArg() > 0 {
		return nil, false, cli.Usagef("unexpected arguments: %v", fs.Args())
	}

	cfg.format = strings.ToLower(cfg.format)
	if cfg.format != "text" && cfg.format != "json" {
		return nil, false, cli.Usagef("invalid format %q: must be 'text' or 'json'", cfg.format)
	}
	if cfg.limit < 0 {
		return nil, false, cli.Usagef("invalid limit %d: must be non-negative", cfg.limit)
	}

	return cfg, false, nil
}

// run is main without the process exit, for tests.
func run(stdout, stderr io.Writer, args []string) error {
	cfg, shouldExit, err := parse(args, stdout)
	if err != nil || shouldExit {
		return err
	}

	logger, err := cli.NewLogger(stderr, cfg.logFormat, cfg.logLevel)
	if err != nil {
		return err
	}
	opts := []search.Option{search.WithLogger(logger)}

	if cfg.list {
		for _, k := range []strategy.Kind{strategy.Uninformed, strategy.Informed} {
			for _, name := range strategy.NamesOf(k) {
				fmt.Fprintf(stdout, "%-14s %-14s %s\n", name, strategy.Title(name), k)
			}
		}
		return nil
	}

	ds, err := cli.LoadDataset(cfg.mapPath)
	if err != nil {
		return err
	}
	logger.Debug("map loaded", "name", ds.Name, "cities", ds.Graph.VertexCount(), "roads", ds.Graph.EdgeCount())

	if cfg.dump {
		return mapfile.Encode(stdout, ds)
	}
	if cfg.all {
		return runAll(stdout, ds, cfg, opts)
	}

	r, err := strategy.Run(ds, strategy.Request{
		Algorithm: cfg.algo,
		Start:     cfg.start,
		Goal:      cfg.goal,
		Limit:     cfg.limit,
	}, opts...)
	if err != nil {
		return asUsage(err)
	}

	if cfg.format == "json" {
		return writeJSON(stdout, cli.NewView(ds.Graph, r))
	}

	return cli.WriteText(stdout, ds.Graph, r)
}

func runAll(stdout io.Writer, ds builder.Dataset, cfg *config, opts []search.Option) error {
	reports, err := strategy.RunAll(ds, cfg.start, cfg.goal, cfg.limit, opts...)
	if err != nil {
		return asUsage(err)
	}

	if cfg.format == "json" {
		views := make([]cli.View, len(reports))
		for i, r := range reports {
			views[i] = cli.NewView(ds.Graph, r)
		}
		return writeJSON(stdout, views)
	}

	return cli.WriteTable(stdout, reports)
}

// asUsage maps input errors to the usage exit code.
func asUsage(err error) error {
	switch {
	case errors.Is(err, strategy.ErrUnknownAlgorithm),
		errors.Is(err, strategy.ErrNoHeuristic),
		errors.Is(err, search.ErrInvalidState),
		errors.Is(err, uninformed.ErrNegativeLimit):
		return cli.Usagef("%s", err)
	}

	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
