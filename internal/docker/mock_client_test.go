package docker_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"iter"
	"strings"

	"github.com/moby/moby/api/types/jsonstream"
	"github.com/moby/moby/client"
)

// mockDockerClient is a mock implementation of docker.DockerClient for testing
type mockDockerClient struct {
	imageListFunc       func(ctx context.Context, options client.ImageListOptions) (client.ImageListResult, error)
	imagePullFunc       func(ctx context.Context, ref string, options client.ImagePullOptions) (client.ImagePullResponse, error)
	containerListFunc   func(ctx context.Context, options client.ContainerListOptions) (client.ContainerListResult, error)
	containerCreateFunc func(ctx context.Context, options client.ContainerCreateOptions) (client.ContainerCreateResult, error)
	containerStartFunc  func(ctx context.Context, containerID string, options client.ContainerStartOptions) (client.ContainerStartResult, error)
	closeFunc           func() error
}

func (m *mockDockerClient) ImageList(ctx context.Context, options client.ImageListOptions) (client.ImageListResult, error) {
	if m.imageListFunc != nil {
		return m.imageListFunc(ctx, options)
	}
	return client.ImageListResult{}, errors.New("not implemented")
}

func (m *mockDockerClient) ImagePull(ctx context.Context, ref string, options client.ImagePullOptions) (client.ImagePullResponse, error) {
	if m.imagePullFunc != nil {
		return m.imagePullFunc(ctx, ref, options)
	}
	return nil, errors.New("not implemented")
}

func (m *mockDockerClient) ContainerList(ctx context.Context, options client.ContainerListOptions) (client.ContainerListResult, error) {
	if m.containerListFunc != nil {
		return m.containerListFunc(ctx, options)
	}
	return client.ContainerListResult{}, errors.New("not implemented")
}

func (m *mockDockerClient) ContainerCreate(ctx context.Context, options client.ContainerCreateOptions) (client.ContainerCreateResult, error) {
	if m.containerCreateFunc != nil {
		return m.containerCreateFunc(ctx, options)
	}
	return client.ContainerCreateResult{}, errors.New("not implemented")
}

func (m *mockDockerClient) ContainerStart(ctx context.Context, containerID string, options client.ContainerStartOptions) (client.ContainerStartResult, error) {
	if m.containerStartFunc != nil {
		return m.containerStartFunc(ctx, containerID, options)
	}
	return client.ContainerStartResult{}, errors.New("not implemented")
}

func (m *mockDockerClient) Close() error {
	if m.closeFunc != nil {
		return m.closeFunc()
	}
	return nil
}

// pullResponse replays a canned stream of newline-delimited JSON messages.
type pullResponse struct {
	io.Reader
	closed bool
}

func newPullResponse(lines ...string) *pullResponse {
	return &pullResponse{Reader: strings.NewReader(strings.Join(lines, "\n"))}
}

func (r *pullResponse) Close() error {
	r.closed = true
	return nil
}

func (r *pullResponse) JSONMessages(ctx context.Context) iter.Seq2[jsonstream.Message, error] {
	dec := json.NewDecoder(r)
	return func(yield func(jsonstream.Message, error) bool) {
		for {
			var jm jsonstream.Message
			err := dec.Decode(&jm)
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(jm, err) {
				return
			}
		}
	}
}

func (r *pullResponse) Wait(ctx context.Context) error {
	for _, err := range r.JSONMessages(ctx) {
		if err != nil {
			return err
		}
	}
	return nil
}

func newBuffers() (*bytes.Buffer, *bytes.Buffer) {
	return bytes.NewBuffer(nil), bytes.NewBuffer(nil)
}
