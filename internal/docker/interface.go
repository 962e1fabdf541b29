package docker

import (
	"context"

	"github.com/moby/moby/client"
)

// DockerClient is the subset of the Docker API used by dockman.
// The real Docker client (*client.Client from moby/moby/client) implements
// this interface; tests inject a mock instead.
//
// Usage:
//
//	dockerClient, err := client.New(client.FromEnv, client.WithAPIVersionNegotiation())
//	if err != nil {
//	    return err
//	}
//	c := docker.NewClient(dockerClient, w)
//
//	// Or use the convenience function:
//	c, err := docker.NewDefaultClient(config, w)
type DockerClient interface {
	ImageList(ctx context.Context, options client.ImageListOptions) (client.ImageListResult, error)
	ImagePull(ctx context.Context, ref string, options client.ImagePullOptions) (client.ImagePullResponse, error)
	ContainerList(ctx context.Context, options client.ContainerListOptions) (client.ContainerListResult, error)
	ContainerCreate(ctx context.Context, options client.ContainerCreateOptions) (client.ContainerCreateResult, error)
	ContainerStart(ctx context.Context, containerID string, options client.ContainerStartOptions) (client.ContainerStartResult, error)
	Close() error
}
