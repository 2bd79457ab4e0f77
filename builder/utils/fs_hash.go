package utils

import (
	"encoding/hex"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/afero"
	"github.com/zeebo/blake3"
)

// HashDirs fingerprints the names, sizes and modification times of every
// file below dirs. Missing directories hash as empty.
func HashDirs(fsys afero.Fs, dirs []string) (string, error) {
	h := blake3.New()
	for _, dir := range dirs {
		err := afero.Walk(fsys, dir, func(path string, info fs.FileInfo, err error) error {
			if err != nil {
				if path == dir && os.IsNotExist(err) {
					return nil
				}
				return err
			}
			if info.IsDir() {
				return nil
			}
			if _, err := fmt.Fprintf(h, "%s:%d:%d;", path, info.Size(), info.ModTime().UnixNano()); err != nil {
				return fmt.Errorf("failed to write to hash: %w", err)
			}
			return nil
		})
		if err != nil {
			return "", err
		}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
