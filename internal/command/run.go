package command

import (
	"github.com/ryanmoran/dockman/internal"
	"github.com/spf13/cobra"
)

type runFlags struct {
	image      string
	name       string
	env        string
	volume     string
	ports      string
	entrypoint string
	command    string
}

func (d *Dispatcher) runCommand() *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:   "run --image IMAGE --name NAME [flags]",
		Short: "Run a Docker container",
		Long: `Create a container from IMAGE and start it in detached mode.

The image is pulled first when it is not present locally.`,
		Example: `  dockman run --image nginx --name web --ports 8080:80
  dockman run --image alpine --name job --env A=1,B=2 --command "sleep 60"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			request, err := flags.request()
			if err != nil {
				return wrap(err)
			}

			return d.withEngine(func(engine Engine) error {
				d.logger.Debug("running container", "image", request.Image, "name", request.Name)

				container, err := engine.RunContainer(cmd.Context(), request)
				if err != nil {
					return err
				}

				d.writer.Printf("Container %s started.\n", container.ID)
				return nil
			})
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&flags.image, "image", "", "Image for running a container")
	fs.StringVar(&flags.name, "name", "", "Name of the container")
	fs.StringVar(&flags.env, "env", "", "Comma-separated list of environment variables (e.g., VAR1=value1,VAR2=value2)")
	fs.StringVar(&flags.volume, "volume", "", "Comma-separated list of volumes to mount (e.g., /host/path:/container/path)")
	fs.StringVar(&flags.entrypoint, "entrypoint", "", "Override the default ENTRYPOINT of the image")
	fs.StringVar(&flags.command, "command", "", "Command to run in the container")
	fs.StringVar(&flags.ports, "ports", "", "Comma-separated list of port mappings HOSTPORT:CONTAINERPORT (e.g., 80:8000,443:8443)")
	_ = cmd.MarkFlagRequired("image")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

// request parses the delimited flags into a RunRequest. Mapping flags that
// were not given stay nil.
func (f runFlags) request() (internal.RunRequest, error) {
	env, err := internal.ParseEnvironment(f.env)
	if err != nil {
		return internal.RunRequest{}, err
	}

	volumes, err := internal.ParseVolumes(f.volume)
	if err != nil {
		return internal.RunRequest{}, err
	}

	ports, err := internal.ParsePortBindings(f.ports)
	if err != nil {
		return internal.RunRequest{}, err
	}

	return internal.RunRequest{
		Image:      internal.ImageName(f.image),
		Name:       internal.ContainerName(f.name),
		Env:        env,
		Volumes:    volumes,
		Ports:      ports,
		Entrypoint: f.entrypoint,
		Command:    f.command,
	}, nil
}
