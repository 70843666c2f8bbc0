// Command searchd serves the search engine over HTTP for map renderers.
//
//	GET  /healthz          liveness
//	GET  /api/algorithms   strategy names grouped by kind
//	GET  /api/graph        cities, roads, layout and heuristic
//	POST /api/search       run one strategy
//
// Every flag defaults to a SEARCHD_<FLAG> environment variable, which may
// be set in a .env file in the working directory.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvsearch/internal/cli"
)

const shutdownGrace = 5 * time.Second

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("cannot read .env file", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stderr, os.Args[1:]); err != nil {
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
	addr        string
	mapPath     string
	logLevel    string
	logFormat   string
	corsOrigins []string
}

// envOr returns $SEARCHD_<NAME> or def.
func envOr(name, def string) string {
	key := "SEARCHD_" + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
	if v, ok := os.LookupEnv(key); ok {
		return v
	}

	return def
}

// parse processes the arguments. It reports shouldExit for -h.
func parse(args []string, out io.Writer) (*config, bool, error) {
	flagSet := flag.NewFlagSet("searchd", flag.ContinueOnError)
	flagSet.SetOutput(out)

	cfg := &config{}
	var origins string
	flagSet.StringVar(&cfg.addr, "addr", envOr("addr", ":8080"), "Listen address.")
	flagSet.StringVar(&cfg.mapPath, "map", envOr("map", ""), "HCL map file; empty uses the built-in Romania map.")
	flagSet.StringVar(&cfg.logLevel, "log-level", envOr("log-level", "info"), "Logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flagSet.StringVar(&cfg.logFormat, "log-format", envOr("log-format", "json"), "Log output format. Options: 'text' or 'json'.")
	flagSet.StringVar(&origins, "cors-origin", envOr("cors-origin", "*"), "Comma-separated allowed CORS origins; '*' allows all.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, cli.Usagef("%s", err)
	}
	if flagSet.NArg() > 0 {
		return nil, false, cli.Usagef("unexpected arguments: %v", flagSet.Args())
	}

	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.corsOrigins = append(cfg.corsOrigins, o)
		}
	}

	return cfg, false, nil
}

// run serves until ctx is cancelled, then shuts down gracefully.
func run(ctx context.Context, logW io.Writer, args []string) error {
	cfg, shouldExit, err := parse(args, logW)
	if err != nil || shouldExit {
		return err
	}

	logger, err := cli.NewLogger(logW, cfg.logFormat, cfg.logLevel)
	if err != nil {
		return err
	}

	ds, err := cli.LoadDataset(cfg.mapPath)
	if err != nil {
		return err
	}
	logger.Info("map loaded", "name", ds.Name, "cities", ds.Graph.VertexCount(), "roads", ds.Graph.EdgeCount())

	gin.SetMode(gin.ReleaseMode)
	srv := &http.Server{
		Addr:              cfg.addr,
		Handler:           newRouter(ds, logger, cfg.corsOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("searchd listening", "addr", cfg.addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("searchd shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		return srv.Shutdown(sctx)
	})

	return g.Wait()
}
