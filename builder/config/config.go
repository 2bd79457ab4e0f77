// Loads and validates the project configuration (blog.yaml)
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file expected at the project root.
const FileName = "blog.yaml"

// TemplatesConfig names the template used for each logical page type.
type TemplatesConfig struct {
	Post     string `yaml:"post"`
	Page     string `yaml:"page"`
	Index    string `yaml:"index"`
	Category string `yaml:"category"`
}

type Config struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Author      string `yaml:"author"`
	Language    string `yaml:"language"`
	BaseURL     string `yaml:"baseURL"`

	// Directories, relative to the project root
	OutputDir    string `yaml:"outputDir"`
	ContentDir   string `yaml:"contentDir"`
	ResourcesDir string `yaml:"resourcesDir"`
	TemplatesDir string `yaml:"templatesDir"`

	FeedPosts    int  `yaml:"feedPosts"`  // Number of posts in feed.xml
	IndexPosts   int  `yaml:"indexPosts"` // 0 lists every post on the index page
	URLShortener bool `yaml:"urlShortener"`
	Compress     bool `yaml:"compress"`    // Minify rendered HTML
	Precompress  bool `yaml:"precompress"` // Write .gz siblings of generated files

	Templates TemplatesConfig `yaml:"templates"`
}

// Default returns the configuration used for every key blog.yaml leaves out.
func Default() *Config {
	return &Config{
		Title:        "My Blog",
		Language:     "en",
		BaseURL:      "http://localhost/",
		OutputDir:    "blog",
		ContentDir:   "content",
		ResourcesDir: "resources",
		TemplatesDir: "templates",
		FeedPosts:    10,
		IndexPosts:   0,
		Templates: TemplatesConfig{
			Post:     "page_blogpost.html",
			Page:     "page_page.html",
			Index:    "page_index.html",
			Category: "page_category.html",
		},
	}
}

// Load reads blog.yaml from the project directory.
func Load(projectDir string) (*Config, error) {
	path := filepath.Join(projectDir, FileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("no %s found in %s: %w", FileName, projectDir, err)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML configuration on top of the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate normalizes values and clamps them to sane bounds
func (c *Config) validate() error {
	c.BaseURL = strings.TrimSpace(c.BaseURL)
	if c.BaseURL == "" {
		return errors.New("baseURL must not be empty")
	}
	if !strings.HasSuffix(c.BaseURL, "/") {
		c.BaseURL += "/"
	}

	if c.FeedPosts < 1 {
		c.FeedPosts = 1
	}
	if c.IndexPosts < 0 {
		c.IndexPosts = 0
	}

	dirs := map[string]*string{
		"outputDir":    &c.OutputDir,
		"contentDir":   &c.ContentDir,
		"resourcesDir": &c.ResourcesDir,
		"templatesDir": &c.TemplatesDir,
	}
	for key, dir := range dirs {
		*dir = filepath.Clean(strings.TrimSpace(*dir))
		if *dir == "." || *dir == "" {
			return fmt.Errorf("%s must name a directory below the project root", key)
		}
	}
	if c.OutputDir == c.ContentDir || c.OutputDir == c.ResourcesDir || c.OutputDir == c.TemplatesDir {
		return fmt.Errorf("outputDir %q must differ from the input directories", c.OutputDir)
	}

	def := Default().Templates
	if c.Templates.Post == "" {
		c.Templates.Post = def.Post
	}
	if c.Templates.Page == "" {
		c.Templates.Page = def.Page
	}
	if c.Templates.Index == "" {
		c.Templates.Index = def.Index
	}
	if c.Templates.Category == "" {
		c.Templates.Category = def.Category
	}
	return nil
}

// OutputPath returns the absolute-or-project-relative output directory.
func (c *Config) OutputPath(projectDir string) string {
	return filepath.Join(projectDir, c.OutputDir)
}

func (c *Config) ContentPath(projectDir string) string {
	return filepath.Join(projectDir, c.ContentDir)
}

func (c *Config) ResourcesPath(projectDir string) string {
	return filepath.Join(projectDir, c.ResourcesDir)
}

func (c *Config) TemplatesPath(projectDir string) string {
	return filepath.Join(projectDir, c.TemplatesDir)
}
