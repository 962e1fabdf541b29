// Package docker forwards dockman commands to the Docker daemon.
//
// The Client type wraps the moby API client and translates the parsed run
// request into container create options. It never retries: every daemon
// failure is wrapped with a hint and returned to the caller.
package docker
