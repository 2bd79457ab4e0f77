package utils

import (
	"bytes"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/spf13/afero"
)

// Files smaller than this are served faster uncompressed.
const minPrecompressSize = 512

// Precompress writes a gzip sibling (<name>.gz) next to every file below
// outputDir that match accepts, for servers that deliver precompressed
// files directly. Returns the number of files written.
func Precompress(fsys afero.Fs, outputDir string, match func(rel string) bool) (int, error) {
	var buf bytes.Buffer
	zw, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return 0, fmt.Errorf("failed to create gzip writer: %w", err)
	}

	written := 0
	err = afero.Walk(fsys, outputDir, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || info.Size() < minPrecompressSize || strings.HasSuffix(path, ".gz") {
			return nil
		}
		rel, err := SafeRel(outputDir, path)
		if err != nil || !match(rel) {
			return err
		}

		data, err := afero.ReadFile(fsys, path)
		if err != nil {
			return err
		}

		buf.Reset()
		zw.Reset(&buf)
		if _, err := zw.Write(data); err != nil {
			return fmt.Errorf("failed to compress %s: %w", path, err)
		}
		if err := zw.Close(); err != nil {
			return fmt.Errorf("failed to compress %s: %w", path, err)
		}

		if err := WriteFileVFS(fsys, path+".gz", buf.Bytes()); err != nil {
			return err
		}
		written++
		return nil
	})
	if err != nil {
		return 0, err
	}
	return written, nil
}

// IsCompressible matches the text formats a build generates.
func IsCompressible(rel string) bool {
	switch strings.ToLower(filepath.Ext(rel)) {
	case ".html", ".xml", ".css", ".js", ".svg", ".txt":
		return true
	}
	return false
}
