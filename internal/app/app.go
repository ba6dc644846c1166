// Package app sequences one rename run: enumerate names, ask the AI service
// for suggestions, show the plan, and perform the moves behind confirmation
// prompts. Exit codes: 0 for success, no-op, dry run or user cancellation;
// 1 for any fatal error or one-or-more failed moves.
package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/laipz8200/anime-librarian/internal/config"
	"github.com/laipz8200/anime-librarian/internal/console"
	"github.com/laipz8200/anime-librarian/internal/fsops"
	"github.com/laipz8200/anime-librarian/internal/media"
	"github.com/laipz8200/anime-librarian/internal/plan"
)

// Resolver obtains rename suggestions for the given source file names and
// target directory names.
type Resolver interface {
	Resolve(ctx context.Context, files, dirs []string) ([]plan.NamePair, error)
}

// Options are the per-run behavior switches from the command line.
type Options struct {
	DryRun      bool
	AutoConfirm bool
	Format      console.Format
}

// App wires the run's collaborators together.
type App struct {
	fs       afero.Fs
	cfg      *config.Config
	resolver Resolver
	writer   console.Writer
	confirm  console.Confirmer
	logger   *zap.SugaredLogger
	styles   console.Styles
	opts     Options
}

// New returns an App operating on fsys with the given collaborators.
func New(fsys afero.Fs, cfg *config.Config, resolver Resolver, writer console.Writer, confirm console.Confirmer, styles console.Styles, logger *zap.SugaredLogger, opts Options) *App {
	return &App{
		fs:       fsys,
		cfg:      cfg,
		resolver: resolver,
		writer:   writer,
		confirm:  confirm,
		logger:   logger,
		styles:   styles,
		opts:     opts,
	}
}

// Run executes the whole flow and returns the process exit code.
func (a *App) Run(ctx context.Context) int {
	pairs, ok := a.resolvePairs(ctx)
	if !ok {
		return 1
	}
	if pairs == nil {
		return 0
	}

	filePairs, err := plan.MapPairs(pairs, a.cfg.SourcePath, a.cfg.TargetPath)
	if err != nil {
		a.logger.Errorw("rejected AI suggestions", "error", err)
		a.writer.Notice(fmt.Sprintf("Error: %s", err))
		return 1
	}

	listing, err := console.RenderPlan(pairs, a.opts.Format, a.styles)
	if err != nil {
		a.writer.Notice(fmt.Sprintf("Error: %s", err))
		return 1
	}
	a.writer.Message("\nPlanned file moves:")
	a.writer.Message(listing)

	if a.opts.DryRun {
		a.writer.Message("\nDry run completed. No files were renamed.")
		return 0
	}

	if !a.opts.AutoConfirm {
		ok, err := a.confirm.Confirm("Continue with the file moves?")
		if err != nil {
			a.writer.Notice(fmt.Sprintf("Error: %s", err))
			return 1
		}
		if !ok {
			a.writer.Message("Operation cancelled by user.")
			return 0
		}
	}

	if code, done := a.checkConflicts(filePairs); done {
		return code
	}
	if code, done := a.ensureDirectories(filePairs); done {
		return code
	}

	return a.moveFiles(filePairs)
}

// resolvePairs lists both directories and asks the resolver for suggestions.
// It returns (nil, true) for the informational no-op exits.
func (a *App) resolvePairs(ctx context.Context) ([]plan.NamePair, bool) {
	files, err := media.ListMediaFiles(a.fs, a.cfg.SourcePath)
	if err != nil {
		a.logger.Errorw("cannot list source directory", "path", a.cfg.SourcePath, "error", err)
		a.writer.Notice(fmt.Sprintf("Error: %s", err))
		return nil, false
	}
	if len(files) == 0 {
		a.writer.Message(fmt.Sprintf("No media files found in %s", a.cfg.SourcePath))
		a.logger.Debugw("no media files", "path", a.cfg.SourcePath)
		return nil, true
	}

	dirs, err := media.ListDirectories(a.fs, a.cfg.TargetPath)
	if err != nil {
		a.logger.Errorw("cannot list target directory", "path", a.cfg.TargetPath, "error", err)
		a.writer.Notice(fmt.Sprintf("Error: %s", err))
		return nil, false
	}
	if len(dirs) == 0 {
		a.writer.Message(fmt.Sprintf("No target directories found in %s", a.cfg.TargetPath))
		a.logger.Debugw("no target directories", "path", a.cfg.TargetPath)
		return nil, true
	}

	pairs, err := a.resolver.Resolve(ctx, files, dirs)
	if err != nil {
		a.logger.Errorw("resolving name pairs failed", "error", err)
		a.writer.Notice(fmt.Sprintf("Error: %s", err))
		return nil, false
	}
	if len(pairs) == 0 {
		a.writer.Message("No files to rename. Exiting.")
		return nil, true
	}
	return pairs, true
}

// checkConflicts warns about targets that would be overwritten and asks for
// confirmation unless auto-confirm is on. done is true when Run should stop
// with the returned code.
func (a *App) checkConflicts(filePairs []plan.FilePair) (code int, done bool) {
	conflicts := plan.FindConflicts(a.fs, filePairs)
	if len(conflicts) == 0 || a.opts.AutoConfirm {
		return 0, false
	}

	a.writer.Notice("\nWarning: the following files will be overwritten:")
	for _, c := range conflicts {
		a.writer.Notice(fmt.Sprintf("  %s", c))
	}
	ok, err := a.confirm.Confirm("Do you want to continue?")
	if err != nil {
		a.writer.Notice(fmt.Sprintf("Error: %s", err))
		return 1, true
	}
	if !ok {
		a.writer.Message("Operation cancelled by user.")
		return 0, true
	}
	return 0, false
}

// ensureDirectories creates missing target parent directories, prompting
// first unless auto-confirm is on.
func (a *App) ensureDirectories(filePairs []plan.FilePair) (code int, done bool) {
	missing := plan.FindMissingDirs(a.fs, filePairs)
	if len(missing) == 0 {
		return 0, false
	}

	a.writer.List("\nThe following directories need to be created:", missing)
	if !a.opts.AutoConfirm {
		ok, err := a.confirm.Confirm("Create these directories?")
		if err != nil {
			a.writer.Notice(fmt.Sprintf("Error: %s", err))
			return 1, true
		}
		if !ok {
			a.writer.Message("Operation cancelled by user.")
			return 0, true
		}
	}

	if err := fsops.CreateDirs(a.fs, a.logger, missing); err != nil {
		a.writer.Notice("Failed to create directories. Operation cancelled.")
		return 1, true
	}
	return 0, false
}

// moveFiles performs the batch and reports every per-file error.
func (a *App) moveFiles(filePairs []plan.FilePair) int {
	errs := fsops.MoveFiles(a.fs, a.logger, filePairs, func(p plan.FilePair) {
		a.writer.Message(fmt.Sprintf("Moving %s -> %s", filepath.Base(p.Source), p.Target))
	})

	if len(errs) > 0 {
		a.writer.Notice("\nThe following errors occurred during file renaming:")
		for _, e := range errs {
			a.writer.Notice(fmt.Sprintf("  Error %s", e.Error()))
		}
		a.writer.Notice(fmt.Sprintf("\nCompleted with %d errors.", len(errs)))
		return 1
	}

	a.writer.Message("\nFile renaming completed successfully.")
	return 0
}
