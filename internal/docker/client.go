package docker

import (
	"context"
	"fmt"

	cerrdefs "github.com/containerd/errdefs"
	"github.com/docker/cli/cli/streams"
	"github.com/moby/moby/client"
	"github.com/moby/moby/client/pkg/jsonmessage"
	"github.com/ryanmoran/dockman/internal"
)

type Image struct {
	ID string
}

type ContainerSummary struct {
	ID     string
	Status string
}

type Client struct {
	client DockerClient
	writer internal.Writer
}

// NewClient creates a Client that wraps the provided Docker client interface.
// Pull progress and daemon warnings are written to w.
func NewClient(dockerClient DockerClient, w internal.Writer) Client {
	return Client{
		client: dockerClient,
		writer: w,
	}
}

// NewDefaultClient creates a Client with a real Docker client configured from
// the environment (DOCKER_HOST, DOCKER_API_VERSION, DOCKER_CERT_PATH,
// DOCKER_TLS_VERIFY). A non-empty host overrides DOCKER_HOST.
func NewDefaultClient(host string, w internal.Writer) (Client, error) {
	opts := []client.Opt{client.FromEnv, client.WithAPIVersionNegotiation()}
	if host != "" {
		opts = append(opts, client.WithHost(host))
	}

	cli, err := client.New(opts...)
	if err != nil {
		return Client{}, fmt.Errorf("failed to create docker client: %w\nEnsure Docker is running and DOCKER_HOST is set correctly", err)
	}

	return NewClient(cli, w), nil
}

// Close closes the underlying Docker client connection.
func (c Client) Close() error {
	return c.client.Close()
}

// ListImages returns the images known to the daemon, in the order the daemon
// reports them.
func (c Client) ListImages(ctx context.Context) ([]Image, error) {
	result, err := c.client.ImageList(ctx, client.ImageListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w%s", err, hint(err))
	}

	images := make([]Image, 0, len(result.Items))
	for _, item := range result.Items {
		images = append(images, Image{ID: item.ID})
	}
	return images, nil
}

// ListContainers returns every container, including stopped ones, together
// with its state as reported by the daemon.
func (c Client) ListContainers(ctx context.Context) ([]ContainerSummary, error) {
	result, err := c.client.ContainerList(ctx, client.ContainerListOptions{All: true})
	if err != nil {
		return nil, fmt.Errorf("failed to list containers: %w%s", err, hint(err))
	}

	containers := make([]ContainerSummary, 0, len(result.Items))
	for _, item := range result.Items {
		containers = append(containers, ContainerSummary{
			ID:     item.ID,
			Status: string(item.State),
		})
	}
	return containers, nil
}

// RunContainer creates a container from the request and starts it detached.
// When the image is not present locally it is pulled once and the create is
// retried. Any other daemon error is returned as is.
func (c Client) RunContainer(ctx context.Context, request internal.RunRequest) (Container, error) {
	options, err := createOptions(request)
	if err != nil {
		return Container{}, err
	}

	response, err := c.client.ContainerCreate(ctx, options)
	if err != nil && cerrdefs.IsNotFound(err) {
		if err := c.PullImage(ctx, request.Image); err != nil {
			return Container{}, err
		}
		response, err = c.client.ContainerCreate(ctx, options)
	}
	if err != nil {
		return Container{}, fmt.Errorf("failed to create container %q from image %q: %w%s", request.Name, request.Image, err, hint(err))
	}

	for _, warning := range response.Warnings {
		c.writer.Warningf("%s", warning)
	}

	container := Container{
		ID:     response.ID,
		Name:   string(request.Name),
		client: c.client,
	}

	err = container.Start(ctx)
	if err != nil {
		return Container{}, err
	}

	return container, nil
}

// PullImage pulls image from its registry and renders the daemon's progress
// messages on the error stream.
func (c Client) PullImage(ctx context.Context, image internal.ImageName) error {
	response, err := c.client.ImagePull(ctx, string(image), client.ImagePullOptions{})
	if err != nil {
		return fmt.Errorf("failed to pull image %q: %w%s", image, err, hint(err))
	}
	defer response.Close()

	out := streams.NewOut(c.writer.Err())
	messages := jsonmessage.JSONMessagesStream(response.JSONMessages(ctx))
	err = jsonmessage.DisplayJSONMessages(messages, out, out.FD(), out.IsTerminal(), nil)
	if err != nil {
		return fmt.Errorf("failed to pull image %q: %w\nCheck the image reference and your registry credentials", image, err)
	}

	return nil
}

func hint(err error) string {
	switch {
	case client.IsErrConnectionFailed(err):
		return "\nMake sure Docker is installed and running (try 'docker ps')"
	case cerrdefs.IsConflict(err):
		return "\nA container with that name may already exist - remove it or choose another name"
	case cerrdefs.IsNotFound(err):
		return "\nCheck that the image reference is spelled correctly"
	default:
		return ""
	}
}
