package internal

import (
	"log/slog"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/quill/internal/authors"
	"github.com/starford/quill/internal/project"
)

// Config represents the application configuration.
type Config struct {
	App     ApplicationConfig `yaml:"app"`
	Project ProjectConfig     `yaml:"project"`
	Delete  DeleteConfig      `yaml:"delete"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Project.Validate(); err != nil {
		return err
	}
	return c.Delete.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
}

// ProjectConfig describes where the content collections live.
//
// Root defaults to the working directory. An empty AuthorsDir leaves the
// authors collection undefined; an empty ArticlesDir means the project has
// no articles and therefore no references to check.
type ProjectConfig struct {
	Root        string `yaml:"root"`
	AuthorsDir  string `yaml:"authors_dir"`
	ArticlesDir string `yaml:"articles_dir"`
	Extension   string `yaml:"extension"`
}

// Validate validates the project configuration.
func (c *ProjectConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Extension,
			validation.Required,
			validation.By(func(v any) error {
				if s, _ := v.(string); !strings.HasPrefix(s, ".") || len(s) < 2 {
					return validation.NewError("validation_extension", "must start with a dot")
				}
				return nil
			})),
	)
}

// Layout converts the configuration into a project layout.
func (c *ProjectConfig) Layout() project.Layout {
	return project.Layout{
		Root:        c.Root,
		AuthorsDir:  c.AuthorsDir,
		ArticlesDir: c.ArticlesDir,
	}
}

// DeleteConfig tunes the author deletion safety checks.
//
// Match selects how article references are detected:
//   - "substring" (default): raw `author: <id>` text anywhere in the file.
//   - "frontmatter": the parsed front-matter author field.
type DeleteConfig struct {
	Match                  string `yaml:"match"`
	ConfirmWithoutArticles bool   `yaml:"confirm_without_articles"`
}

// Validate validates the delete configuration.
func (c *DeleteConfig) Validate() error {
	if c.Match == "" {
		c.Match = authors.MatchSubstring
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.Match, validation.In(authors.MatchSubstring, authors.MatchFrontmatter)),
	)
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
		},
		Project: ProjectConfig{
			AuthorsDir:  "src/content/authors",
			ArticlesDir: "src/content/articles",
			Extension:   ".md",
		},
		Delete: DeleteConfig{
			Match:                  authors.MatchSubstring,
			ConfirmWithoutArticles: true,
		},
	}
}
