package main

import (
	"io"
	"os"

	jj "github.com/cloudfoundry/jibber_jabber"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdin        io.Reader
	Stdout       io.Writer
	Stderr       io.Writer
	DetectLocale func() (string, error)
}

// DefaultEnv returns the production environment. Locale detection asks
// the operating system for the user's IETF language tag.
func DefaultEnv() *Environment {
	return &Environment{
		Stdin:        os.Stdin,
		Stdout:       os.Stdout,
		Stderr:       os.Stderr,
		DetectLocale: jj.DetectIETF,
	}
}
