package internal

import (
	"io"

	"github.com/starford/quill/internal/authors"
)

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config   *Config
	workdir  string
	in       io.Reader
	out      io.Writer
	logOut   io.Writer
	prompter authors.Prompter
	progress bool
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithWorkdir sets the directory the project is resolved from.
func WithWorkdir(dir string) Option {
	return func(a *application) {
		a.workdir = dir
	}
}

// WithIO sets the terminal streams: keys are read from in, console output
// goes to out and structured logs to logOut.
func WithIO(in io.Reader, out, logOut io.Writer) Option {
	return func(a *application) {
		a.in = in
		a.out = out
		a.logOut = logOut
	}
}

// WithPrompter replaces the interactive terminal prompter.
func WithPrompter(p authors.Prompter) Option {
	return func(a *application) {
		a.prompter = p
	}
}

// WithProgress prints intermediate status updates to the console.
func WithProgress(enabled bool) Option {
	return func(a *application) {
		a.progress = enabled
	}
}
