package command

import (
	"github.com/spf13/cobra"
)

func (d *Dispatcher) listImagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list-images",
		Short: "List all Docker images",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return d.withEngine(func(engine Engine) error {
				images, err := engine.ListImages(cmd.Context())
				if err != nil {
					return err
				}

				d.logger.Debug("listed images", "count", len(images))
				for _, image := range images {
					d.writer.Println(image.ID)
				}
				return nil
			})
		},
	}
}

func (d *Dispatcher) listContainersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list-containers",
		Short: "List all Docker containers, including stopped ones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return d.withEngine(func(engine Engine) error {
				containers, err := engine.ListContainers(cmd.Context())
				if err != nil {
					return err
				}

				d.logger.Debug("listed containers", "count", len(containers))
				for _, container := range containers {
					d.writer.Printf("%s %s\n", container.ID, container.Status)
				}
				return nil
			})
		},
	}
}
