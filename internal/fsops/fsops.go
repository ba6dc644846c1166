// Package fsops performs the mutating filesystem half of the rename flow:
// creating missing target directories and moving files. Moves are attempted
// pair by pair and failures are collected, never raised mid-batch.
package fsops

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/laipz8200/anime-librarian/internal/plan"
)

// MoveError records a single failed move. The batch result is the list of
// all such errors; an empty list means full success.
type MoveError struct {
	Source  string `json:"source"`
	Target  string `json:"target"`
	Message string `json:"message"`
}

func (e MoveError) Error() string {
	return fmt.Sprintf("moving %s to %s: %s", e.Source, e.Target, e.Message)
}

// CreateDirs creates each directory and its missing ancestors. Creating an
// already-existing directory is not an error. It stops and returns the error
// on the first failure; directories already created are not rolled back.
func CreateDirs(fsys afero.Fs, logger *zap.SugaredLogger, dirs []string) error {
	for _, dir := range dirs {
		if err := fsys.MkdirAll(dir, 0o755); err != nil {
			logger.Errorw("cannot create directory", "path", dir, "error", err)
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
		logger.Debugw("created directory", "path", dir)
	}
	return nil
}

// MoveFiles moves each pair's source to its target. A rename is attempted
// first; when the filesystem refuses it (typically a cross-device move) the
// file is copied and the source removed. Failures are recorded and the
// remaining pairs are still attempted.
//
// progress, when non-nil, is invoked before each move for display purposes.
func MoveFiles(fsys afero.Fs, logger *zap.SugaredLogger, pairs []plan.FilePair, progress func(plan.FilePair)) []MoveError {
	var errs []MoveError
	for _, p := range pairs {
		if progress != nil {
			progress(p)
		}
		logger.Debugw("moving file", "source", p.Source, "target", p.Target)
		if err := moveFile(fsys, p.Source, p.Target); err != nil {
			logger.Errorw("move failed", "source", p.Source, "error", err)
			errs = append(errs, MoveError{Source: p.Source, Target: p.Target, Message: err.Error()})
		}
	}
	return errs
}

func moveFile(fsys afero.Fs, source, target string) error {
	renameErr := fsys.Rename(source, target)
	if renameErr == nil {
		return nil
	}
	// A missing source can never be recovered by the copy fallback.
	if _, err := fsys.Stat(source); err != nil {
		return renameErr
	}
	if err := copyFile(fsys, source, target); err != nil {
		return renameErr
	}
	return fsys.Remove(source)
}

func copyFile(fsys afero.Fs, source, target string) error {
	in, err := fsys.Open(source)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := fsys.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
