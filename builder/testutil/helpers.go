// Package testutil provides filesystem fixtures and assertions for tests.
package testutil

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

// CreateTestFilesystem creates source and destination filesystems for testing
func CreateTestFilesystem() (afero.Fs, afero.Fs) {
	return afero.NewMemMapFs(), afero.NewMemMapFs()
}

// CreateTestFilesystemWithContent creates filesystems with initial content
func CreateTestFilesystemWithContent(files map[string]string) (afero.Fs, afero.Fs) {
	sourceFs, destFs := CreateTestFilesystem()
	WriteFiles(sourceFs, files)
	return sourceFs, destFs
}

// WriteFiles writes every path/content pair, creating parent directories.
func WriteFiles(fs afero.Fs, files map[string]string) {
	for path, content := range files {
		if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
			panic(err)
		}
		if err := afero.WriteFile(fs, path, []byte(content), 0644); err != nil {
			panic(err)
		}
	}
}

// AssertFileExists checks if a file exists in the filesystem
func AssertFileExists(t *testing.T, fs afero.Fs, path string) {
	t.Helper()
	exists, err := afero.Exists(fs, path)
	if err != nil {
		t.Fatalf("Error checking file existence: %v", err)
	}
	if !exists {
		t.Errorf("Expected file to exist: %s", path)
	}
}

// AssertFileNotExists checks if a file does not exist
func AssertFileNotExists(t *testing.T, fs afero.Fs, path string) {
	t.Helper()
	exists, err := afero.Exists(fs, path)
	if err != nil {
		t.Fatalf("Error checking file existence: %v", err)
	}
	if exists {
		t.Errorf("Expected file to not exist: %s", path)
	}
}

// AssertFileContent checks if a file has the expected content
func AssertFileContent(t *testing.T, fs afero.Fs, path string, expected []byte) {
	t.Helper()
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	if string(content) != string(expected) {
		t.Errorf("File %s content mismatch:\nexpected: %s\ngot: %s", path, expected, content)
	}
}

// AssertFileContains checks that a file contains every fragment.
func AssertFileContains(t *testing.T, fs afero.Fs, path string, fragments ...string) {
	t.Helper()
	content := ReadFile(t, fs, path)
	for _, f := range fragments {
		if !strings.Contains(content, f) {
			t.Errorf("File %s missing %q:\n%s", path, f, content)
		}
	}
}

// ReadFile reads a file or fails the test.
func ReadFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

// Templates is a minimal template set covering every page kind.
var Templates = map[string]string{
	"include_header.html": `<html><head><title>{{.Title}}</title><link href="{{.RootPath}}style.css"></head><body>`,
	"include_footer.html": `</body></html>`,
	"page_blogpost.html": `{{template "include_header.html" .}}<article>{{.Document.Body}}</article>` +
		`{{range .Document.Categories}}<a class="category" href="{{$.RootPath}}{{categoryPath .}}">{{.}}</a>{{end}}` +
		`{{if .Document.HasPrevious}}<a class="prev" href="{{.Document.PreviousLink}}">prev</a>{{end}}` +
		`{{if .Document.HasNext}}<a class="next" href="{{.Document.NextLink}}">next</a>{{end}}` +
		`{{template "include_footer.html" .}}`,
	"page_page.html": `{{template "include_header.html" .}}<main>{{.Document.Body}}</main>{{template "include_footer.html" .}}`,
	"page_index.html": `{{template "include_header.html" .}}<ul>{{range .Posts}}` +
		`<li><a href="{{.OutputPath}}">{{.Title}}</a></li>{{end}}</ul>{{template "include_footer.html" .}}`,
	"page_category.html": `{{template "include_header.html" .}}<h1>{{.Category.Title}}</h1><ul>{{range .Category.Posts}}` +
		`<li><a href="{{$.RootPath}}{{.OutputPath}}">{{.Title}}</a></li>{{end}}</ul>{{template "include_footer.html" .}}`,
}

// WriteTemplates writes Templates into dir.
func WriteTemplates(fs afero.Fs, dir string) {
	files := make(map[string]string, len(Templates))
	for name, content := range Templates {
		files[filepath.Join(dir, name)] = content
	}
	WriteFiles(fs, files)
}
