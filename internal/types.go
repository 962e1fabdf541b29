package internal

// ImageName is an image reference such as "nginx" or "nginx:1.27".
type ImageName string

// ContainerName is the name assigned to a newly created container.
type ContainerName string

// Environment maps environment variable names to their values.
type Environment map[string]string

// Volumes maps host paths to the paths they are mounted at inside the container.
type Volumes map[string]string

// PortBindings maps host ports to container ports.
type PortBindings map[string]string

// RunRequest describes a container to create and start in detached mode.
//
// The optional mappings are nil when the corresponding flag was not given, so
// the engine applies the image defaults. Entrypoint and Command are likewise
// empty when not overridden.
type RunRequest struct {
	Image      ImageName
	Name       ContainerName
	Env        Environment
	Volumes    Volumes
	Ports      PortBindings
	Entrypoint string
	Command    string
}
