package docker

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/anmitsu/go-shlex"
	"github.com/moby/moby/api/types/container"
	"github.com/moby/moby/api/types/network"
	"github.com/moby/moby/client"
	"github.com/ryanmoran/dockman/internal"
)

type Container struct {
	client DockerClient

	ID   string
	Name string
}

// Start starts the container. Returns an error if the container fails to start,
// which may indicate a misconfiguration such as a host port already in use.
func (c Container) Start(ctx context.Context) error {
	_, err := c.client.ContainerStart(ctx, c.ID, client.ContainerStartOptions{})
	if err != nil {
		return fmt.Errorf("failed to start container %q: %w\nContainer may be misconfigured or a host port may already be in use", c.Name, err)
	}

	return nil
}

// createOptions translates a run request into the options for a detached
// container: no TTY and no attached streams. Optional settings left unset in
// the request stay unset so the image defaults apply.
func createOptions(request internal.RunRequest) (client.ContainerCreateOptions, error) {
	config := &container.Config{
		Image: string(request.Image),
	}
	hostConfig := &container.HostConfig{}

	if request.Env != nil {
		for _, key := range slices.Sorted(maps.Keys(request.Env)) {
			config.Env = append(config.Env, key+"="+request.Env[key])
		}
	}

	if request.Volumes != nil {
		for _, hostPath := range slices.Sorted(maps.Keys(request.Volumes)) {
			hostConfig.Binds = append(hostConfig.Binds, hostPath+":"+request.Volumes[hostPath])
		}
	}

	if request.Ports != nil {
		config.ExposedPorts = network.PortSet{}
		hostConfig.PortBindings = network.PortMap{}
		for _, hostPort := range slices.Sorted(maps.Keys(request.Ports)) {
			port, err := network.ParsePort(request.Ports[hostPort])
			if err != nil {
				return client.ContainerCreateOptions{}, fmt.Errorf("invalid container port %q for host port %q: %w", request.Ports[hostPort], hostPort, err)
			}
			config.ExposedPorts[port] = struct{}{}
			hostConfig.PortBindings[port] = append(hostConfig.PortBindings[port], network.PortBinding{HostPort: hostPort})
		}
	}

	entrypoint, err := splitCommand(request.Entrypoint)
	if err != nil {
		return client.ContainerCreateOptions{}, fmt.Errorf("failed to parse entrypoint %q: %w", request.Entrypoint, err)
	}
	if entrypoint != nil {
		config.Entrypoint = entrypoint
	}

	cmd, err := splitCommand(request.Command)
	if err != nil {
		return client.ContainerCreateOptions{}, fmt.Errorf("failed to parse command %q: %w", request.Command, err)
	}
	if cmd != nil {
		config.Cmd = cmd
	}

	return client.ContainerCreateOptions{
		Config:     config,
		HostConfig: hostConfig,
		Name:       string(request.Name),
	}, nil
}

// splitCommand splits s into words using POSIX shell quoting rules. An empty
// or blank s yields nil.
func splitCommand(s string) ([]string, error) {
	if s == "" {
		return nil, nil
	}

	words, err := shlex.Split(s, true)
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, nil
	}
	return words, nil
}
