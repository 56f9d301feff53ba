// Package internal provides the application initialization and command logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/starford/quill/internal/authors"
	"github.com/starford/quill/internal/models"
	"github.com/starford/quill/internal/project"
	"github.com/starford/quill/internal/prompt"
	"github.com/starford/quill/internal/status"
)

// ErrOperationFailed is returned when a command ends in a fault; the details
// have already been reported on the console.
var ErrOperationFailed = errors.New("operation failed")

func newApplication(opts []Option) (*application, error) {
	app := &application{}
	for _, opt := range opts {
		opt(app)
	}
	if app.config == nil {
		return nil, fmt.Errorf("config is required")
	}
	if app.workdir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
		app.workdir = wd
	}
	if app.out == nil {
		app.out = os.Stdout
	}
	if app.logOut == nil {
		app.logOut = os.Stderr
	}
	if app.prompter == nil {
		app.prompter = prompt.New(app.in, app.out)
	}
	return app, nil
}

func (a *application) logger() *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(a.logOut, &slog.HandlerOptions{
		Level: a.config.App.LogLevel,
	}))
	slog.SetDefault(logger)
	return logger
}

func (a *application) workspace() project.Workspace {
	return project.Workspace{Cwd: a.workdir, Layout: a.config.Project.Layout()}
}

func (a *application) catalog(logger *slog.Logger) (*authors.Catalog, error) {
	match, err := authors.NewMatcher(a.config.Delete.Match)
	if err != nil {
		return nil, err
	}
	paths, store, err := a.workspace().Open()
	if err != nil {
		return nil, err
	}
	return authors.NewCatalog(paths, store, a.config.Project.Extension, match, logger), nil
}

// RunDeleteAuthor deletes an author after checking article references.
func RunDeleteAuthor(ctx context.Context, del authors.Options, opts ...Option) error {
	app, err := newApplication(opts)
	if err != nil {
		return err
	}
	cfg := app.config
	logger := app.logger()

	logger.Debug("Configuration loaded",
		slog.String("workdir", app.workdir),
		slog.String("authors_dir", cfg.Project.AuthorsDir),
		slog.String("articles_dir", cfg.Project.ArticlesDir),
		slog.String("match", cfg.Delete.Match),
		slog.Bool("confirm_without_articles", cfg.Delete.ConfirmWithoutArticles))

	match, err := authors.NewMatcher(cfg.Delete.Match)
	if err != nil {
		return err
	}

	reporter := status.NewConsole(app.out, logger, app.progress)
	deleter := authors.NewDeleter(app.workspace(), app.prompter, reporter, authors.Settings{
		Extension:              cfg.Project.Extension,
		Match:                  match,
		ConfirmWithoutArticles: cfg.Delete.ConfirmWithoutArticles,
	}, logger)

	outcome := deleter.Delete(ctx, del)
	logger.Debug("author deletion finished", slog.String("outcome", string(outcome)))
	if outcome.Failed() {
		return ErrOperationFailed
	}
	return nil
}

// RunListAuthors prints every author id in the project.
func RunListAuthors(_ context.Context, opts ...Option) error {
	app, err := newApplication(opts)
	if err != nil {
		return err
	}
	catalog, err := app.catalog(app.logger())
	if err != nil {
		return err
	}
	ids, err := catalog.Authors()
	if err != nil {
		return fmt.Errorf("list authors: %w", err)
	}
	for _, id := range ids {
		fmt.Fprintln(app.out, id)
	}
	return nil
}

// RunAuthorReferences prints the articles that reference author id.
func RunAuthorReferences(_ context.Context, id string, opts ...Option) error {
	app, err := newApplication(opts)
	if err != nil {
		return err
	}
	if err := authors.ValidateID(id); err != nil {
		return err
	}
	logger := app.logger()
	catalog, err := app.catalog(logger)
	if err != nil {
		return err
	}
	refs, scanned, err := catalog.References(models.AuthorID(id))
	if err != nil {
		return fmt.Errorf("scan articles: %w", err)
	}
	if !scanned {
		logger.Debug("no articles collection", slog.String("author", id))
	}
	for _, name := range refs {
		fmt.Fprintln(app.out, name)
	}
	return nil
}
