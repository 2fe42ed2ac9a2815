package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	jsonhandler "github.com/apex/log/handlers/json"
	"github.com/apex/log/handlers/text"
)

type config struct {
	level     string
	logFormat string
	games     int
	workers   int
	maxPlies  int
	json      bool
}

func lookupString(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func lookupInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

// parseConfig reads flags from args, using CHESSVAR_* environment variables
// as defaults. It returns the remaining positional arguments.
func parseConfig(args []string, output io.Writer) (*config, []string, error) {
	games, err := lookupInt("CHESSVAR_GAMES", 10)
	if err != nil {
		return nil, nil, err
	}
	workers, err := lookupInt("CHESSVAR_WORKERS", 4)
	if err != nil {
		return nil, nil, err
	}

	cfg := &config{}
	flags := flag.NewFlagSet("chessvar", flag.ContinueOnError)
	flags.SetOutput(output)
	flags.Usage = func() {
		fmt.Fprintln(output, "usage: chessvar [flags] play [file] | selfplay")
		flags.PrintDefaults()
	}
	flags.StringVar(&cfg.level, "level", lookupString("CHESSVAR_LOG_LEVEL", "info"), "log level")
	flags.StringVar(&cfg.logFormat, "log-format", "cli", "log format: cli, text or json")
	flags.IntVar(&cfg.games, "games", games, "self-play games to run")
	flags.IntVar(&cfg.workers, "workers", workers, "concurrent self-play games")
	flags.IntVar(&cfg.maxPlies, "max-plies", 400, "abandon a self-play game after this many moves")
	flags.BoolVar(&cfg.json, "json", false, "print self-play results as JSON")
	if err := flags.Parse(args); err != nil {
		return nil, nil, err
	}
	if cfg.games < 1 || cfg.workers < 1 || cfg.maxPlies < 1 {
		return nil, nil, errors.New("games, workers and max-plies must be positive")
	}
	return cfg, flags.Args(), nil
}

func setupLogging(cfg *config, w io.Writer) error {
	level, err := log.ParseLevel(cfg.level)
	if err != nil {
		return err
	}
	switch cfg.logFormat {
	case "cli":
		log.SetHandler(cli.New(w))
	case "text":
		log.SetHandler(text.New(w))
	case "json":
		log.SetHandler(jsonhandler.New(w))
	default:
		return fmt.Errorf("unknown log format %q", cfg.logFormat)
	}
	log.SetLevel(level)
	return nil
}
