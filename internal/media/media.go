// Package media classifies file names by extension and enumerates the two
// directory listings the rename flow works from: media files in the source
// directory and candidate directories in the target directory.
package media

import (
	"regexp"

	"github.com/spf13/afero"
)

var (
	// videoRe matches video file extensions accepted for renaming.
	videoRe = regexp.MustCompile(`(?i)\.(mp4|mkv|avi|mov|wmv|flv|webm)$`)

	// subtitleRe matches subtitle file extensions (case-insensitive).
	subtitleRe = regexp.MustCompile(`(?i)\.(srt|ass|ssa|sub|vtt)$`)
)

// IsVideo reports whether filename has a recognized video extension.
func IsVideo(filename string) bool {
	return videoRe.MatchString(filename)
}

// IsSubtitle reports whether filename has a recognized subtitle extension.
func IsSubtitle(filename string) bool {
	return subtitleRe.MatchString(filename)
}

// IsMedia reports whether filename is a video or subtitle file.
func IsMedia(filename string) bool {
	return IsVideo(filename) || IsSubtitle(filename)
}

// ListMediaFiles returns the names of regular files in dir with a media
// extension, in lexical order.
func ListMediaFiles(fsys afero.Fs, dir string) ([]string, error) {
	entries, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !IsMedia(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// ListDirectories returns the names of subdirectories of dir, in lexical
// order.
func ListDirectories(fsys afero.Fs, dir string) ([]string, error) {
	entries, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}
