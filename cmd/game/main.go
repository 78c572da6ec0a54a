package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/tomz197/electroblast/internal/audio"
	"github.com/tomz197/electroblast/internal/config"
	"github.com/tomz197/electroblast/internal/loop"
)

// Log to a file by default; stderr shares the raw terminal with the game.
const defaultLogFile = "electroblast.log"

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(config.Path())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if cfg.Logging.File == "" {
		cfg.Logging.File = defaultLogFile
	}
	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	var player audio.Player = audio.Nop{}
	if cfg.Audio.Enabled {
		synth, err := audio.NewSynth(cfg.Audio)
		if err != nil {
			logger.Warn("audio disabled", zap.Error(err))
		} else {
			defer synth.Close()
			player = synth
		}
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reader := bufio.NewReader(os.Stdin)
	err = loop.Run(ctx, reader, os.Stdout, loop.Options{
		Rules:   cfg.Rules,
		Audio:   player,
		Logger:  logger,
		Session: "local",
	})
	if err != nil {
		logger.Error("game error", zap.Error(err))
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
