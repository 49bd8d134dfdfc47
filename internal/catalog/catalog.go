// Package catalog holds the read-only content of the portfolio: profile,
// navigation, projects, services and skills.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultContent []byte

var ErrNotFound = errors.New("catalog: not found")

// Category is the platform a project targets.
type Category string

const (
	Web    Category = "web"
	Mobile Category = "mobile"
)

// Label is the display name of the category.
func (c Category) Label() string {
	if c == Mobile {
		return "Mobile App"
	}
	return "Web App"
}

type Contact struct {
	Label string `yaml:"label" json:"label"`
	Value string `yaml:"value" json:"value"`
	Href  string `yaml:"href,omitempty" json:"href,omitempty"`
}

type Profile struct {
	Name         string    `yaml:"name" json:"name"`
	Brand        string    `yaml:"brand" json:"brand"`
	Roles        []string  `yaml:"roles" json:"roles"`
	About        string    `yaml:"about" json:"about"`
	Availability string    `yaml:"availability" json:"availability"`
	Contacts     []Contact `yaml:"contacts" json:"contacts"`
	GitHub       string    `yaml:"github" json:"github"`
}

// NavLink points at an in-page section.
type NavLink struct {
	Label   string `yaml:"label" json:"label"`
	Section string `yaml:"section" json:"section"`
}

type Project struct {
	ID          string   `yaml:"id" json:"id"`
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Category    Category `yaml:"category" json:"category"`
	Tech        []string `yaml:"tech" json:"tech"`
	GitHub      string   `yaml:"github" json:"github"`
	Live        string   `yaml:"live,omitempty" json:"live,omitempty"`
	Screenshots []string `yaml:"screenshots" json:"screenshots"`
	Featured    bool     `yaml:"featured,omitempty" json:"featured,omitempty"`
}

type Service struct {
	ID          string   `yaml:"id" json:"id"`
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Features    []string `yaml:"features" json:"features"`
}

// SkillGroup is one column of the tech stack section.
type SkillGroup struct {
	ID    string   `yaml:"id" json:"id"`
	Label string   `yaml:"label" json:"label"`
	Techs []string `yaml:"techs" json:"techs"`
}

// Content is the whole site.
type Content struct {
	Profile  Profile      `yaml:"profile"`
	Nav      []NavLink    `yaml:"nav"`
	Projects []Project    `yaml:"projects"`
	Services []Service    `yaml:"services"`
	Skills   []SkillGroup `yaml:"skills"`
}

// Default returns the embedded content.
func Default() (*Content, error) {
	return Parse(defaultContent)
}

// Load reads content from path, or the embedded content when path is empty.
func Load(path string) (*Content, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading content: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates YAML content.
func Parse(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing content: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the invariants the pages rely on.
func (c *Content) Validate() error {
	seen := make(map[string]bool, len(c.Projects))
	for i, p := range c.Projects {
		if p.ID == "" {
			return fmt.Errorf("project %d: missing id", i)
		}
		if seen[p.ID] {
			return fmt.Errorf("project %q: duplicate id", p.ID)
		}
		seen[p.ID] = true
		if p.Title == "" {
			return fmt.Errorf("project %q: missing title", p.ID)
		}
		if p.Category != Web && p.Category != Mobile {
			return fmt.Errorf("project %q: unknown category %q", p.ID, p.Category)
		}
	}
	return nil
}
