// Handles template loading and file creation
package renderer

import (
	"fmt"
	"html/template"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/tdewolff/minify/v2"

	"github.com/Kush-Singh-26/blogbuilder/builder/config"
	"github.com/Kush-Singh-26/blogbuilder/builder/models"
	"github.com/Kush-Singh-26/blogbuilder/builder/utils"
)

// RenderError is fatal for a build: a template is missing, fails to execute
// or its output cannot be written.
type RenderError struct {
	Template string
	Path     string
	Err      error
}

func (e *RenderError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("template %s: %v", e.Template, e.Err)
	}
	return fmt.Sprintf("render %s with %s: %v", e.Path, e.Template, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

type Renderer struct {
	DestFs    afero.Fs
	OutputDir string

	cfg       *config.Config
	templates *template.Template
	minifier  *minify.M // nil unless compress is on
	buffers   *utils.BufferPool
	buildTime time.Time
	written   int
	logger    *slog.Logger

	categoryPaths map[string]string // Folded category name to page path
}

var funcMap = template.FuncMap{
	"lower":     strings.ToLower,
	"hasPrefix": strings.HasPrefix,
	"now":       time.Now,
	"slug":      Slug,
	"date": func(layout string, t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format(layout)
	},
}

// New parses every *.html file of templateDir (read from srcFs) into one
// template set, so partials can be included by file name.
func New(srcFs, destFs afero.Fs, templateDir, outputDir string, cfg *config.Config, logger *slog.Logger) (*Renderer, error) {
	if logger == nil {
		logger = slog.Default()
	}

	r := &Renderer{
		DestFs:    destFs,
		OutputDir: outputDir,
		cfg:       cfg,
		buffers:   utils.NewBufferPool(),
		buildTime: time.Now(),
		logger:    logger,
	}

	tmplFs := afero.NewIOFS(afero.NewBasePathFs(srcFs, templateDir))
	tmpl, err := template.New("").
		Funcs(funcMap).
		Funcs(template.FuncMap{"categoryPath": r.categoryPath}).
		Option("missingkey=error").
		ParseFS(tmplFs, "*.html")
	if err != nil {
		return nil, &RenderError{Template: templateDir, Err: err}
	}
	r.templates = tmpl

	if cfg.Compress {
		r.minifier = utils.NewMinifier()
	}
	return r, nil
}

// Written returns the number of pages written so far.
func (r *Renderer) Written() int {
	return r.written
}

// render executes the named template into a pooled buffer and writes the
// result to outputPath below the output directory.
func (r *Renderer) render(name, outputPath string, data models.PageData) error {
	tmpl := r.templates.Lookup(name)
	if tmpl == nil {
		return &RenderError{Template: name, Path: outputPath, Err: fmt.Errorf("template not found")}
	}

	data.Site = r.cfg
	data.BuildTime = r.buildTime

	buf := r.buffers.Get()
	defer r.buffers.Put(buf)

	if err := tmpl.Execute(buf, data); err != nil {
		return &RenderError{Template: name, Path: outputPath, Err: err}
	}

	out := buf.Bytes()
	if r.minifier != nil {
		minified, err := r.minifier.Bytes("text/html", out)
		if err != nil {
			return &RenderError{Template: name, Path: outputPath, Err: fmt.Errorf("minify: %w", err)}
		}
		out = minified
	}

	dest := filepath.Join(r.OutputDir, filepath.FromSlash(outputPath))
	if err := utils.WriteFileVFS(r.DestFs, dest, out); err != nil {
		return &RenderError{Template: name, Path: outputPath, Err: err}
	}

	r.written++
	r.logger.Debug("Rendered page", "path", outputPath, "template", name)
	return nil
}
