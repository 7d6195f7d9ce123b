package fileutil_test

// Notes:
// - All tests run on afero.NewMemMapFs; OS-specific permission failures are
//   not exercised.

import (
	"errors"
	"path/filepath"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"

	"github.com/alnah/go-sitegen/internal/fileutil"
)

func writeFiles(t *testing.T, fsys afero.Fs, files map[string]string) {
	t.Helper()
	for path, content := range files {
		if err := fileutil.WriteFile(fsys, path, []byte(content)); err != nil {
			t.Fatalf("WriteFile(%s): %v", path, err)
		}
	}
}

// ---------------------------------------------------------------------------
// TestFileExists / TestDirExists
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	writeFiles(t, fsys, map[string]string{"/site/index.md": "# x"})

	tests := []struct {
		path     string
		wantFile bool
		wantDir  bool
	}{
		{"/site/index.md", true, false},
		{"/site", false, true},
		{"/missing", false, false},
	}

	for _, tt := range tests {
		if got := fileutil.FileExists(fsys, tt.path); got != tt.wantFile {
			t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.wantFile)
		}
		if got := fileutil.DirExists(fsys, tt.path); got != tt.wantDir {
			t.Errorf("DirExists(%q) = %v, want %v", tt.path, got, tt.wantDir)
		}
	}
}

// ---------------------------------------------------------------------------
// TestIsFilePath / TestIsURL
// ---------------------------------------------------------------------------

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"default":         false,
		"my-style":        false,
		"./site.css":      true,
		"../shared/a.css": true,
		"/abs/site.yaml":  true,
		`C:\dir\a.yaml`:   true,
	}
	for in, want := range tests {
		if got := fileutil.IsFilePath(in); got != want {
			t.Errorf("IsFilePath(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestIsURL(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"https://boot.dev": true,
		"http://x":         true,
		"/local":           false,
		"ftp://x":          false,
	}
	for in, want := range tests {
		if got := fileutil.IsURL(in); got != want {
			t.Errorf("IsURL(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestIsCSS(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"body { color: red; }": true,
		"dark":                 false,
		"./site.css":           false,
	}
	for in, want := range tests {
		if got := fileutil.IsCSS(in); got != want {
			t.Errorf("IsCSS(%q) = %v, want %v", in, got, want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestWriteFile
// ---------------------------------------------------------------------------

func TestWriteFile(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	path := "/public/blog/post/index.html"
	if err := fileutil.WriteFile(fsys, path, []byte("<p>x</p>")); err != nil {
		t.Fatalf("WriteFile() unexpected error: %v", err)
	}

	got, err := afero.ReadFile(fsys, path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if string(got) != "<p>x</p>" {
		t.Errorf("content = %q, want %q", got, "<p>x</p>")
	}
}

// ---------------------------------------------------------------------------
// TestCleanDir
// ---------------------------------------------------------------------------

func TestCleanDir(t *testing.T) {
	t.Parallel()

	t.Run("removes existing content", func(t *testing.T) {
		t.Parallel()

		fsys := afero.NewMemMapFs()
		writeFiles(t, fsys, map[string]string{
			"/public/old.html":     "old",
			"/public/sub/old.html": "old",
		})

		if err := fileutil.CleanDir(fsys, "/public"); err != nil {
			t.Fatalf("CleanDir() unexpected error: %v", err)
		}
		entries, err := afero.ReadDir(fsys, "/public")
		if err != nil {
			t.Fatalf("ReadDir() error: %v", err)
		}
		if len(entries) != 0 {
			t.Errorf("CleanDir() left %d entries", len(entries))
		}
	})

	t.Run("creates missing directory", func(t *testing.T) {
		t.Parallel()

		fsys := afero.NewMemMapFs()
		if err := fileutil.CleanDir(fsys, "/public"); err != nil {
			t.Fatalf("CleanDir() unexpected error: %v", err)
		}
		if !fileutil.DirExists(fsys, "/public") {
			t.Error("CleanDir() did not create directory")
		}
	})

	for _, dir := range []string{"", ".", "/"} {
		dir := dir
		t.Run("refuses "+dir, func(t *testing.T) {
			t.Parallel()

			err := fileutil.CleanDir(afero.NewMemMapFs(), dir)
			if !errors.Is(err, fileutil.ErrUnsafeClean) {
				t.Errorf("CleanDir(%q) error = %v, want ErrUnsafeClean", dir, err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestCopyDir
// ---------------------------------------------------------------------------

func TestCopyDir(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	writeFiles(t, fsys, map[string]string{
		"/static/index.css":          "body{}",
		"/static/images/tolkien.png": "PNG",
		"/static/images/deep/x.txt":  "xyz",
	})

	var copied []string
	stats, err := fileutil.CopyDir(fsys, "/static", "/public", func(path string, _ int64) {
		copied = append(copied, path)
	})
	if err != nil {
		t.Fatalf("CopyDir() unexpected error: %v", err)
	}

	if stats.Files != 3 {
		t.Errorf("stats.Files = %d, want 3", stats.Files)
	}
	if stats.Bytes != int64(len("body{}")+len("PNG")+len("xyz")) {
		t.Errorf("stats.Bytes = %d", stats.Bytes)
	}

	sort.Strings(copied)
	want := []string{
		filepath.Join("/public", "images", "deep", "x.txt"),
		filepath.Join("/public", "images", "tolkien.png"),
		filepath.Join("/public", "index.css"),
	}
	if diff := cmp.Diff(want, copied); diff != "" {
		t.Errorf("copied files mismatch (-want +got):\n%s", diff)
	}

	got, err := afero.ReadFile(fsys, "/public/images/tolkien.png")
	if err != nil || string(got) != "PNG" {
		t.Errorf("copied content = %q, %v", got, err)
	}
}

func TestCopyDir_MissingSource(t *testing.T) {
	t.Parallel()

	_, err := fileutil.CopyDir(afero.NewMemMapFs(), "/static", "/public", nil)
	if !errors.Is(err, fileutil.ErrNotDirectory) {
		t.Errorf("CopyDir() error = %v, want ErrNotDirectory", err)
	}
}
