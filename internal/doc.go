// Package internal contains shared types and utilities for dockman.
//
// It provides the run request model, parsing of the comma-delimited mapping
// flags, configuration loading, and the output Writer used by the command and
// docker packages.
package internal
