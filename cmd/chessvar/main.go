package main

import (
	"errors"
	"flag"
	"io"
	"os"
	"os/signal"

	"github.com/apex/log"
	"github.com/maplefeline/chessvar"
)

var sigint chan os.Signal

// waitShutdown closes stop on the first interrupt.
func waitShutdown(stop chan<- struct{}, done <-chan struct{}) {
	defer close(stop)

	sigint = make(chan os.Signal, 1)
	signal.Notify(sigint, os.Interrupt)
	defer signal.Stop(sigint)

	select {
	case <-sigint:
		log.Info("received shutdown signal")
	case <-done:
	}
}

func runPlay(args []string, stdin io.Reader, stdout io.Writer) error {
	input := stdin
	if len(args) > 0 && args[0] != "-" {
		file, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer file.Close()
		input = file
	}
	game := chessvar.New()
	log.WithField("game", game.ID.String()).Info("game started")
	return play(input, stdout, game)
}

func runSelfplay(cfg *config, stdout io.Writer) error {
	stop := make(chan struct{})
	done := make(chan struct{})
	defer close(done)
	go waitShutdown(stop, done)

	sum, err := selfplay(cfg, stop)
	if err != nil {
		return err
	}
	return sum.write(stdout, cfg.json)
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, rest, err := parseConfig(args, stderr)
	if err != nil {
		return err
	}
	if err := setupLogging(cfg, stderr); err != nil {
		return err
	}
	if len(rest) == 0 {
		return errors.New("missing command: play or selfplay")
	}
	switch rest[0] {
	case "play":
		return runPlay(rest[1:], stdin, stdout)
	case "selfplay":
		return runSelfplay(cfg, stdout)
	}
	return errors.New("unknown command " + rest[0])
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.WithError(err).Fatal("chessvar")
	}
}
