// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, client services, the local post cache and the
// background workers into a single process lifecycle.
package client
