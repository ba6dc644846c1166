package fsops

import (
	"testing"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/laipz8200/anime-librarian/internal/plan"
)

func nopLogger() *zap.SugaredLogger { return zap.NewNop().Sugar() }

func TestCreateDirs(t *testing.T) {
	t.Parallel()
	fsys := afero.NewMemMapFs()
	if err := fsys.MkdirAll("/dst/Existing", 0o755); err != nil {
		t.Fatal(err)
	}

	// Creating an already-existing directory is not an error.
	err := CreateDirs(fsys, nopLogger(), []string{"/dst/Existing", "/dst/New/Nested"})
	if err != nil {
		t.Fatalf("CreateDirs() error = %v", err)
	}
	if ok, _ := afero.DirExists(fsys, "/dst/New/Nested"); !ok {
		t.Error("CreateDirs() did not create /dst/New/Nested")
	}
}

func TestCreateDirsStopsOnFailure(t *testing.T) {
	t.Parallel()
	fsys := afero.NewReadOnlyFs(afero.NewMemMapFs())
	if err := CreateDirs(fsys, nopLogger(), []string{"/dst/New"}); err == nil {
		t.Error("CreateDirs() on read-only fs expected error, got nil")
	}
}

func TestMoveFiles(t *testing.T) {
	t.Parallel()
	fsys := afero.NewMemMapFs()
	if err := afero.WriteFile(fsys, "/src/a.mkv", []byte("a"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := fsys.MkdirAll("/dst/Show", 0o755); err != nil {
		t.Fatal(err)
	}

	var progressed []string
	errs := MoveFiles(fsys, nopLogger(), []plan.FilePair{
		{Source: "/src/a.mkv", Target: "/dst/Show/a.mkv"},
	}, func(p plan.FilePair) { progressed = append(progressed, p.Source) })

	if len(errs) != 0 {
		t.Fatalf("MoveFiles() errors = %v, want none", errs)
	}
	if ok, _ := afero.Exists(fsys, "/dst/Show/a.mkv"); !ok {
		t.Error("target file was not created")
	}
	if ok, _ := afero.Exists(fsys, "/src/a.mkv"); ok {
		t.Error("source file still exists after move")
	}
	if len(progressed) != 1 || progressed[0] != "/src/a.mkv" {
		t.Errorf("progress calls = %v, want [/src/a.mkv]", progressed)
	}
}

func TestMoveFilesCollectsErrorsAndContinues(t *testing.T) {
	t.Parallel()
	fsys := afero.NewMemMapFs()
	if err := afero.WriteFile(fsys, "/src/a.mkv", []byte("a"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fsys, "/src/c.mkv", []byte("c"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := fsys.MkdirAll("/dst", 0o755); err != nil {
		t.Fatal(err)
	}

	pairs := []plan.FilePair{
		{Source: "/src/a.mkv", Target: "/dst/a.mkv"},
		{Source: "/src/missing.mkv", Target: "/dst/b.mkv"}, // will fail
		{Source: "/src/c.mkv", Target: "/dst/c.mkv"},
	}
	errs := MoveFiles(fsys, nopLogger(), pairs, nil)

	if len(errs) != 1 {
		t.Fatalf("MoveFiles() errors = %v, want exactly one", errs)
	}
	if errs[0].Source != "/src/missing.mkv" {
		t.Errorf("error source = %q, want /src/missing.mkv", errs[0].Source)
	}
	if errs[0].Message == "" {
		t.Error("error message is empty")
	}
	for _, target := range []string{"/dst/a.mkv", "/dst/c.mkv"} {
		if ok, _ := afero.Exists(fsys, target); !ok {
			t.Errorf("pair with target %s was not moved", target)
		}
	}
}
