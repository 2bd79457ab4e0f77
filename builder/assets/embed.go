package assets

import (
	"embed"
	"io/fs"
)

// URLMarker is replaced by the generated redirect cases in goto.php.
const URLMarker = "$$URLS$$"

//go:embed goto.php
var gotoTemplate []byte

//go:embed all:scaffold
var scaffoldFS embed.FS

// GotoTemplate returns the PHP URL shortener template.
func GotoTemplate() []byte {
	return gotoTemplate
}

// Scaffold returns the sample project written by the init command, rooted at
// the project directory.
func Scaffold() fs.FS {
	sub, err := fs.Sub(scaffoldFS, "scaffold")
	if err != nil {
		panic(err) // the directory is embedded at compile time
	}
	return sub
}
