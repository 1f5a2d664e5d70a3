package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteFile(t *testing.T) {
	t.Parallel()

	t.Run("creates parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "public", "site", "index.html")
		if err := WriteFile(path, []byte("<html></html>")); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if string(got) != "<html></html>" {
			t.Errorf("content = %q", got)
		}
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "index.html")
		if err := os.WriteFile(path, []byte("old content that is longer"), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := WriteFile(path, []byte("new")); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
		got, _ := os.ReadFile(path)
		if string(got) != "new" {
			t.Errorf("content = %q, want %q", got, "new")
		}
	})

	t.Run("empty path", func(t *testing.T) {
		t.Parallel()

		if err := WriteFile("", nil); !errors.Is(err, ErrEmptyPath) {
			t.Errorf("WriteFile(\"\") error = %v, want ErrEmptyPath", err)
		}
	})

	t.Run("parent is a file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		blocker := filepath.Join(dir, "blocker")
		if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := WriteFile(filepath.Join(blocker, "index.html"), []byte("x")); err == nil {
			t.Error("WriteFile() should fail when the parent is a regular file")
		}
	})
}

func TestWriteTempFile(t *testing.T) {
	t.Parallel()

	path, cleanup, err := WriteTempFile("<html></html>", "html")
	if err != nil {
		t.Fatalf("WriteTempFile() error = %v", err)
	}

	if !strings.HasSuffix(path, ".html") {
		t.Errorf("path = %q, want .html suffix", path)
	}
	if !strings.HasPrefix(filepath.Base(path), "bibpage-") {
		t.Errorf("path = %q, want bibpage- prefix", path)
	}
	if got, _ := os.ReadFile(path); string(got) != "<html></html>" {
		t.Errorf("content = %q", got)
	}

	cleanup()
	if FileExists(path) {
		t.Error("cleanup() should remove the file")
	}
}

func TestValidateExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ext     string
		wantErr error
	}{
		{ext: "html", wantErr: nil},
		{ext: "tar.gz", wantErr: nil},
		{ext: "", wantErr: ErrExtensionEmpty},
		{ext: "../x", wantErr: ErrExtensionPathTraversal},
		{ext: "a\\b", wantErr: ErrExtensionPathTraversal},
		{ext: "x\x00", wantErr: ErrExtensionPathTraversal},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			t.Parallel()

			err := ValidateExtension(tt.ext)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateExtension(%q) = %v, want %v", tt.ext, err, tt.wantErr)
			}
		})
	}
}

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "bibtex.bib")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	if !FileExists(file) {
		t.Error("FileExists(file) = false")
	}
	if FileExists(dir) {
		t.Error("FileExists(dir) = true, directories are not files")
	}
	if FileExists(filepath.Join(dir, "missing.bib")) {
		t.Error("FileExists(missing) = true")
	}
}

func TestDirWritable(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if !DirWritable(dir) {
		t.Error("DirWritable(tempdir) = false")
	}
	if DirWritable(filepath.Join(dir, "missing")) {
		t.Error("DirWritable(missing) = true")
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("scratch file left behind: %v", entries)
	}
}

func TestIsFilePathAndIsURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		wantPath bool
		wantURL  bool
	}{
		{input: "minimal", wantPath: false, wantURL: false},
		{input: "./styles/lab.css", wantPath: true, wantURL: false},
		{input: `C:\site\lab.css`, wantPath: true, wantURL: false},
		{input: "https://example.org/me.jpg", wantPath: true, wantURL: true},
		{input: "http://example.org", wantPath: true, wantURL: true},
		{input: "ftp-style", wantPath: false, wantURL: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := IsFilePath(tt.input); got != tt.wantPath {
				t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.wantPath)
			}
			if got := IsURL(tt.input); got != tt.wantURL {
				t.Errorf("IsURL(%q) = %v, want %v", tt.input, got, tt.wantURL)
			}
		})
	}
}
