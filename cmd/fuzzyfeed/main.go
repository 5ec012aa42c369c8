// Package main is the entry point for the fuzzyfeed filter.
//
// fuzzyfeed wraps a producer command that emits a JSON feedback document,
// caches the document for the length of an interactive search session, and
// filters its items against the current query with fuzzy matching. One
// invocation handles one keystroke: load (or generate) the session's items,
// filter, write the result document to stdout.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dshills/fuzzyfeed/internal/config"
	"github.com/dshills/fuzzyfeed/internal/feedback"
	"github.com/dshills/fuzzyfeed/internal/fuzzy"
	"github.com/dshills/fuzzyfeed/internal/log"
	"github.com/dshills/fuzzyfeed/internal/session"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

// options holds the parsed command line.
type options struct {
	ConfigPath string
	CacheDir   string
	Query      string
	LogLevel   string
	Clear      bool
	Command    []string
}

func main() {
	os.Exit(run())
}

func run() int {
	start := time.Now()
	opts := parseFlags()

	logger := log.New(log.Config{Level: log.ParseLevel(opts.LogLevel)})
	log.SetDefault(logger)

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if opts.Query != "" {
		cfg.Query = opts.Query
	}
	if opts.CacheDir != "" {
		cfg.CacheRoot = opts.CacheDir
	}

	if cfg.CacheRoot == "" {
		fmt.Fprintf(os.Stderr, "Error: cache directory not set (use -cache-dir or the %s channel)\n", config.EnvCacheDir)
		return 1
	}

	store := session.NewStore(filepath.Join(cfg.CacheRoot, "_fuzzy"))

	if opts.Clear {
		if err := store.Clear(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		logger.Info("cleared session cache")
		return 0
	}

	if len(opts.Command) == 0 {
		fmt.Fprintf(os.Stderr, "Error: no producer command given\n")
		flag.Usage()
		return 1
	}

	cache := session.NewCache(session.Options{
		Command: opts.Command,
		Store:   store,
		Var:     cfg.SessionVar,
		Token:   cfg.SessionID,
		Logger:  logger,
	})
	logger.Debug("cmd=%q query=%q session_id=%q", opts.Command, cfg.Query, cfg.SessionID)

	doc, err := cache.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	filter := feedback.NewFilter(fuzzy.New(cfg.Weights))
	if err := filter.Apply(doc, cfg.Query); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	logger.Debug("%d item(s) match %q", doc.Len(), cfg.Query)

	if _, err := os.Stdout.Write(doc.JSON()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: writing output: %v\n", err)
		return 1
	}
	logger.Debug("filtered in %s", time.Since(start))

	return 0
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to TOML configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to TOML configuration file (shorthand)")
	flag.StringVar(&opts.CacheDir, "cache-dir", "", "Base directory for the session cache")
	flag.StringVar(&opts.Query, "query", "", "Query to filter against (overrides the query channel)")
	flag.StringVar(&opts.Query, "q", "", "Query to filter against (shorthand)")
	flag.StringVar(&opts.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&opts.Clear, "clear", false, "Delete all cached session files and exit")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "fuzzyfeed - fuzzy filter for script feedback documents\n\n")
		fmt.Fprintf(os.Stderr, "Usage: fuzzyfeed [options] <producer command> [args...]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  query=fire fuzzyfeed ./list-items.sh      Filter producer output against \"fire\"\n")
		fmt.Fprintf(os.Stderr, "  fuzzyfeed -q fire -cache-dir /tmp ./gen   Same, via flags\n")
		fmt.Fprintf(os.Stderr, "  fuzzyfeed -cache-dir /tmp -clear          Delete cached sessions\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("fuzzyfeed %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		os.Exit(0)
	}

	switch opts.LogLevel {
	case "debug", "info", "warn", "error":
		// Valid
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
		os.Exit(1)
	}

	// Remaining arguments are the producer command vector.
	opts.Command = flag.Args()

	return opts
}
