package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/ryanmoran/dockman/internal"
	"github.com/ryanmoran/dockman/internal/docker"
	"github.com/spf13/cobra"
)

// Engine is the container engine the dispatcher forwards commands to.
// docker.Client implements it.
type Engine interface {
	ListImages(ctx context.Context) ([]docker.Image, error)
	ListContainers(ctx context.Context) ([]docker.ContainerSummary, error)
	RunContainer(ctx context.Context, request internal.RunRequest) (docker.Container, error)
	Close() error
}

// EngineFactory connects to the container engine described by config. It is
// only invoked once a command has been fully parsed and validated.
type EngineFactory func(config internal.Config, w internal.Writer) (Engine, error)

var errNoCommand = errors.New("no command given")

// UsageError reports a command line that could not be dispatched. The help
// text has already been printed when it is returned.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("usage error: %v", e.Err)
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// commandError marks failures raised while executing a parsed command, as
// opposed to cobra's own parsing and validation errors.
type commandError struct {
	err error
}

func (e *commandError) Error() string {
	return e.err.Error()
}

type Dispatcher struct {
	newEngine   EngineFactory
	writer      internal.Writer
	environment []string

	config internal.Config
	logger *log.Logger
}

// NewDispatcher creates a Dispatcher. The environment is consulted for
// DOCKMAN_* configuration variables.
func NewDispatcher(newEngine EngineFactory, w internal.Writer, environment []string) *Dispatcher {
	return &Dispatcher{
		newEngine:   newEngine,
		writer:      w,
		environment: environment,
		logger:      log.NewWithOptions(w.Err(), log.Options{Prefix: "dockman", Level: log.WarnLevel}),
	}
}

// Execute parses args (without the program name) and runs the selected
// command. When args do not name a valid command, or required flags are
// missing, the help text is written to the output stream and a *UsageError is
// returned. Failures of the command itself are returned unchanged.
func (d *Dispatcher) Execute(ctx context.Context, args []string) error {
	if args == nil {
		args = []string{}
	}

	root := d.rootCommand()
	root.SetArgs(args)
	root.SetOut(d.writer.Out())
	root.SetErr(d.writer.Err())

	cmd, err := root.ExecuteContextC(ctx)
	if err == nil {
		return nil
	}

	var failure *commandError
	if errors.As(err, &failure) {
		return failure.err
	}

	if cmd == nil {
		cmd = root
	}
	if !errors.Is(err, errNoCommand) {
		fmt.Fprintf(d.writer.Err(), "Error: %v\n", err)
	}
	_ = cmd.Help()

	return &UsageError{Err: err}
}

func (d *Dispatcher) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "dockman",
		Short: "Docker management script",
		Long: `dockman lists the images and containers known to the Docker daemon and
starts new containers in detached mode.

The daemon is located through DOCKER_HOST (or --host) and the platform
default socket otherwise.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return wrap(d.configure(cmd))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return errNoCommand
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	internal.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		d.listImagesCommand(),
		d.listContainersCommand(),
		d.runCommand(),
	)

	return root
}

func (d *Dispatcher) configure(cmd *cobra.Command) error {
	config, err := internal.LoadConfig(cmd.Flags(), d.environment)
	if err != nil {
		return err
	}

	d.config = config
	d.logger = config.NewLogger(d.writer.Err())
	return nil
}

// withEngine connects to the engine, runs fn, and closes the connection.
func (d *Dispatcher) withEngine(fn func(engine Engine) error) error {
	d.logger.Debug("connecting to container engine", "host", d.config.Host)

	engine, err := d.newEngine(d.config, d.writer)
	if err != nil {
		return wrap(err)
	}
	defer func() {
		if err := engine.Close(); err != nil {
			d.logger.Warn("failed to close engine connection", "err", err)
		}
	}()

	return wrap(fn(engine))
}

func wrap(err error) error {
	if err == nil {
		return nil
	}
	return &commandError{err: err}
}
