package main

import (
	"io"
	"os"
	"time"

	"github.com/spf13/afero"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, filesystem and process environment.
type Environment struct {
	Now     func() time.Time
	Stdout  io.Writer
	Stderr  io.Writer
	Fs      afero.Fs
	Getenv  func(string) string
	Environ func() []string
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:     time.Now,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Fs:      afero.NewOsFs(),
		Getenv:  os.Getenv,
		Environ: os.Environ,
	}
}
