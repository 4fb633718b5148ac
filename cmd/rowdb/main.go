package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/nbroyles/rowdb/internal/config"
	"github.com/nbroyles/rowdb/internal/repl"
	"github.com/nbroyles/rowdb/pkg"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Default()
	if level, ok := os.LookupEnv(config.LogLevelEnv); ok {
		cfg.LogLevel = level
	}

	flag.StringVar(&cfg.Prompt, "prompt", cfg.Prompt, "prompt printed before each command")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (panic, fatal, error, warn, info, debug, trace)")
	flag.Parse()

	level, err := cfg.Level()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log.SetOutput(os.Stderr)
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	if err := repl.New(pkg.New(), os.Stdin, os.Stdout, cfg).Run(); err != nil {
		if errors.Is(err, repl.ErrInputClosed) {
			fmt.Println()
			fmt.Println("Error reading input")
		}
		log.Errorf("session ended: %v", err)
		os.Exit(1)
	}
}
