package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/moby/term"
	"github.com/ryanmoran/dockman/internal"
	"github.com/ryanmoran/dockman/internal/command"
	"github.com/ryanmoran/dockman/internal/docker"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			log.Error("panic occurred", "panic", r)
			os.Exit(1)
		}
	}()

	if err := run(os.Args, os.Environ()); err != nil {
		var usage *command.UsageError
		if !errors.As(err, &usage) {
			log.Error(err)
		}
		os.Exit(1)
	}
}

func run(args, env []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Abandon the in-flight daemon call on interrupt
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	_, stdout, stderr := term.StdStreams()
	w := internal.NewCustomWriter(stdout, stderr)

	dispatcher := command.NewDispatcher(connect, w, env)
	return dispatcher.Execute(ctx, args[1:])
}

func connect(config internal.Config, w internal.Writer) (command.Engine, error) {
	client, err := docker.NewDefaultClient(config.Host, w)
	if err != nil {
		return nil, err
	}
	return client, nil
}
