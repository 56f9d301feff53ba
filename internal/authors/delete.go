package authors

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/starford/quill/internal/apperr"
	"github.com/starford/quill/internal/models"
	"github.com/starford/quill/internal/project"
	"github.com/starford/quill/internal/storage"
)

// Workspace locates the project and opens storage over it.
type Workspace interface {
	Open() (project.Paths, storage.Provider, error)
}

// Prompter asks the user questions.
type Prompter interface {
	// Select returns the chosen value, or "" when the user cancels.
	Select(ctx context.Context, message string, choices []string) (string, error)
	// Confirm shows details above a yes/no question and returns the answer.
	Confirm(ctx context.Context, message string, details []string, initial bool) (bool, error)
}

// Reporter receives status updates and exactly one terminal outcome.
type Reporter interface {
	Status(msg string)
	Success(msg string)
	Warn(msg string)
	Error(msg string)
}

// Options are the caller-supplied arguments of a delete.
type Options struct {
	// ID is the author to delete; when empty the user picks one.
	ID string
	// Force skips confirmation, but only when no article references the author.
	Force bool
}

// Settings tune the deletion pipeline.
type Settings struct {
	Extension string
	Match     Matcher
	// ConfirmWithoutArticles applies the confirmation gate even when the
	// project has no articles collection. When false, such projects delete
	// without any prompt.
	ConfirmWithoutArticles bool
}

// Deleter removes author entities after checking article references.
type Deleter struct {
	workspace Workspace
	prompter  Prompter
	reporter  Reporter
	settings  Settings
	logger    *slog.Logger
}

// NewDeleter creates a Deleter.
func NewDeleter(ws Workspace, prompter Prompter, reporter Reporter, settings Settings, logger *slog.Logger) *Deleter {
	if settings.Extension == "" {
		settings.Extension = ".md"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Deleter{
		workspace: ws,
		prompter:  prompter,
		reporter:  reporter,
		settings:  settings,
		logger:    logger,
	}
}

// request carries state between pipeline stages.
type request struct {
	opts    Options
	catalog *Catalog
	store   storage.Provider
	id      models.AuthorID
	path    string
	refs    models.ReferenceSet
	scanned bool
}

type stage struct {
	name string
	run  func(context.Context, *request) error
}

// Delete runs the pipeline and reports its outcome through the Reporter.
// No error is returned; the outcome is for callers that map it to an exit code.
func (d *Deleter) Delete(ctx context.Context, opts Options) models.Outcome {
	req := &request{opts: opts}
	d.reporter.Status("Initializing author deletion")

	stages := []stage{
		{"open", d.open},
		{"resolve", d.resolve},
		{"exists", d.checkExists},
		{"scan", d.scanReferences},
		{"gate", d.gate},
		{"execute", d.execute},
	}
	for _, st := range stages {
		if err := st.run(ctx, req); err != nil {
			level := slog.LevelWarn
			if apperr.Expected(err) {
				level = slog.LevelDebug
			}
			d.logger.Log(ctx, level, "delete: stage stopped",
				slog.String("stage", st.name),
				slog.String("author", req.id.String()),
				slog.String("error", err.Error()))
			return d.finish(req, err)
		}
	}

	d.reporter.Success(fmt.Sprintf("Author '%s' deleted.", req.id))
	return models.OutcomeDeleted
}

func (d *Deleter) open(_ context.Context, req *request) error {
	paths, store, err := d.workspace.Open()
	if err != nil {
		return fault("Project validation failed", err)
	}
	req.store = store
	req.catalog = NewCatalog(paths, store, d.settings.Extension, d.settings.Match, d.logger)
	d.reporter.Status("Validating project structure")
	return nil
}

func (d *Deleter) resolve(ctx context.Context, req *request) error {
	if req.opts.ID != "" {
		req.id = models.AuthorID(req.opts.ID)
		return nil
	}

	d.reporter.Status("Reading author files")
	ids, err := req.catalog.Authors()
	if err != nil {
		if errors.Is(err, apperr.ErrConfig) {
			return err
		}
		return fault("Failed to read authors directory", err)
	}
	if len(ids) == 0 {
		return apperr.ErrNothingToDelete
	}

	choices := make([]string, len(ids))
	for i, id := range ids {
		choices[i] = id.String()
	}
	choice, err := d.prompter.Select(ctx, "Select an author to delete:", choices)
	if err != nil {
		return fault("Author selection failed", err)
	}
	if choice == "" {
		return apperr.ErrNoSelection
	}
	req.id = models.AuthorID(choice)
	d.reporter.Status("Preparing to delete selected author")
	return nil
}

func (d *Deleter) checkExists(_ context.Context, req *request) error {
	// Ids that could name a file outside the authors collection cannot exist in it.
	if err := ValidateID(req.id.String()); err != nil {
		d.logger.Debug("delete: invalid author id",
			slog.String("author", req.id.String()),
			slog.String("error", err.Error()))
		return apperr.ErrNotFound
	}
	path, ok, err := req.catalog.Exists(req.id)
	if err != nil {
		if errors.Is(err, apperr.ErrConfig) {
			return err
		}
		return fault("Failed to check author", err)
	}
	if !ok {
		return apperr.ErrNotFound
	}
	req.path = path
	return nil
}

func (d *Deleter) scanReferences(_ context.Context, req *request) error {
	d.reporter.Status("Checking for article references")
	refs, scanned, err := req.catalog.References(req.id)
	if err != nil {
		return fault("Failed to scan articles", err)
	}
	req.refs, req.scanned = refs, scanned
	d.logger.Debug("delete: reference scan finished",
		slog.String("author", req.id.String()),
		slog.Bool("articles", scanned),
		slog.Int("references", len(refs)))
	return nil
}

func (d *Deleter) gate(ctx context.Context, req *request) error {
	if !req.scanned && !d.settings.ConfirmWithoutArticles {
		return nil
	}

	var (
		message string
		details []string
	)
	switch {
	case !req.refs.Empty():
		// Force never bypasses this branch.
		details = make([]string, 0, len(req.refs)+1)
		details = append(details, fmt.Sprintf("Author '%s' is referenced in %d article(s):", req.id, len(req.refs)))
		for _, name := range req.refs {
			details = append(details, "  - "+name)
		}
		message = "Are you sure you want to delete this author? This will invalidate the referencing articles."
	case !req.opts.Force:
		message = fmt.Sprintf("Are you sure you want to delete author '%s'?", req.id)
	default:
		return nil
	}

	ok, err := d.prompter.Confirm(ctx, message, details, false)
	if err != nil {
		return fault("Confirmation failed", err)
	}
	if !ok {
		return apperr.ErrCancelled
	}
	return nil
}

func (d *Deleter) execute(_ context.Context, req *request) error {
	d.reporter.Status(fmt.Sprintf("Deleting author %s", req.id.FileName(d.settings.Extension)))
	if err := req.store.Delete(req.path); err != nil {
		return fault("Failed to delete author", err)
	}
	d.logger.Info("author deleted",
		slog.String("author", req.id.String()),
		slog.String("path", req.path),
		slog.Int("references", len(req.refs)))
	return nil
}

// finish converts the error that stopped the pipeline into a terminal report.
func (d *Deleter) finish(req *request, err error) models.Outcome {
	switch {
	case errors.Is(err, apperr.ErrNothingToDelete):
		d.reporter.Warn("No authors to delete.")
		return models.OutcomeNothingToDelete
	case errors.Is(err, apperr.ErrNoSelection):
		d.reporter.Warn("No author selected for deletion.")
		return models.OutcomeNoSelection
	case errors.Is(err, apperr.ErrNotFound):
		d.reporter.Warn(fmt.Sprintf("Author '%s' does not exist.", req.id))
		return models.OutcomeNotFound
	case errors.Is(err, apperr.ErrCancelled):
		d.reporter.Warn("Delete cancelled.")
		return models.OutcomeCancelled
	case errors.Is(err, apperr.ErrConfig):
		d.reporter.Error("Authors directory path is not defined.")
		return models.OutcomeFailed
	default:
		d.reporter.Error(err.Error())
		return models.OutcomeFailed
	}
}

// stageFault is an unexpected failure with a user-facing summary.
type stageFault struct {
	summary string
	err     error
}

func fault(summary string, err error) error {
	return &stageFault{summary: summary, err: err}
}

func (e *stageFault) Error() string { return e.summary + ": " + e.err.Error() }

func (e *stageFault) Unwrap() error { return e.err }
