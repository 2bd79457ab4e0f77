package utils

import (
	"testing"

	"github.com/spf13/afero"
)

func TestHashDirs(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeTestFile(t, fs, "content/a.md", "a")
	writeTestFile(t, fs, "templates/page.html", "page")
	dirs := []string{"content", "templates", "resources"}

	first, err := HashDirs(fs, dirs)
	if err != nil {
		t.Fatalf("HashDirs() error = %v", err)
	}
	again, _ := HashDirs(fs, dirs)
	if first != again {
		t.Error("HashDirs() differs for unchanged directories")
	}

	writeTestFile(t, fs, "content/a.md", "a longer body")
	changed, _ := HashDirs(fs, dirs)
	if changed == first {
		t.Error("HashDirs() did not notice a changed file")
	}

	writeTestFile(t, fs, "resources/style.css", "css")
	added, _ := HashDirs(fs, dirs)
	if added == changed {
		t.Error("HashDirs() did not notice a new file")
	}
}
