// Package command dispatches the dockman command line to the container engine.
//
// It defines the list-images, list-containers and run subcommands, turns their
// flags into requests, and makes exactly one engine call per invocation.
package command
