package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// Filter selects the projects shown by the filter tabs.
type Filter string

const (
	All        Filter = "all"
	WebOnly    Filter = "web"
	MobileOnly Filter = "mobile"
)

// Filters lists the tabs in display order.
var Filters = []Filter{All, WebOnly, MobileOnly}

// ParseFilter accepts "all", "web" or "mobile". An empty string means All.
func ParseFilter(s string) (Filter, error) {
	switch Filter(s) {
	case "", All:
		return All, nil
	case WebOnly, MobileOnly:
		return Filter(s), nil
	}
	return "", fmt.Errorf("unknown filter %q", s)
}

func (f Filter) Label() string {
	switch f {
	case WebOnly:
		return "Web"
	case MobileOnly:
		return "Mobile"
	}
	return "All Projects"
}

const schema = `
CREATE TABLE projects (
	id          TEXT PRIMARY KEY,
	position    INTEGER NOT NULL,
	title       TEXT NOT NULL,
	description TEXT NOT NULL,
	category    TEXT NOT NULL,
	github      TEXT NOT NULL,
	live        TEXT NOT NULL,
	featured    INTEGER NOT NULL
);
CREATE TABLE project_tech (
	project_id TEXT NOT NULL REFERENCES projects(id),
	position   INTEGER NOT NULL,
	name       TEXT NOT NULL
);
CREATE TABLE screenshots (
	project_id TEXT NOT NULL REFERENCES projects(id),
	position   INTEGER NOT NULL,
	path       TEXT NOT NULL
);
CREATE INDEX idx_projects_category ON projects(category, position);`

// Store indexes the projects of a Content in an in-memory SQLite database.
// Nothing is written to disk.
type Store struct {
	db *sql.DB
}

// Open builds the index for c.
func Open(ctx context.Context, c *Content) (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.load(ctx, c); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) load(ctx context.Context, c *Content) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating catalog schema: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i, p := range c.Projects {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO projects (id, position, title, description, category, github, live, featured)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, i, p.Title, p.Description, string(p.Category), p.GitHub, p.Live, p.Featured)
		if err != nil {
			return fmt.Errorf("indexing project %q: %w", p.ID, err)
		}
		for j, name := range p.Tech {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO project_tech (project_id, position, name) VALUES (?, ?, ?)`, p.ID, j, name); err != nil {
				return fmt.Errorf("indexing tech of %q: %w", p.ID, err)
			}
		}
		for j, path := range p.Screenshots {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO screenshots (project_id, position, path) VALUES (?, ?, ?)`, p.ID, j, path); err != nil {
				return fmt.Errorf("indexing screenshots of %q: %w", p.ID, err)
			}
		}
	}
	return tx.Commit()
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Projects returns the projects matching f in declaration order.
func (s *Store) Projects(ctx context.Context, f Filter) ([]Project, error) {
	query := `SELECT id, title, description, category, github, live, featured FROM projects`
	var args []any
	if f != All {
		query += ` WHERE category = ?`
		args = append(args, string(f))
	}
	query += ` ORDER BY position`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying projects: %w", err)
	}
	var projects []Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	for i := range projects {
		if err := s.fillLists(ctx, &projects[i]); err != nil {
			return nil, err
		}
	}
	return projects, nil
}

// Project returns the project with the given id or ErrNotFound.
func (s *Store) Project(ctx context.Context, id string) (Project, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, description, category, github, live, featured FROM projects WHERE id = ?`, id)
	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Project{}, fmt.Errorf("project %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return Project{}, err
	}
	if err := s.fillLists(ctx, &p); err != nil {
		return Project{}, err
	}
	return p, nil
}

// Counts returns the number of projects behind each filter tab.
func (s *Store) Counts(ctx context.Context) (map[Filter]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT category, COUNT(*) FROM projects GROUP BY category`)
	if err != nil {
		return nil, fmt.Errorf("counting projects: %w", err)
	}
	defer rows.Close()

	counts := map[Filter]int{All: 0, WebOnly: 0, MobileOnly: 0}
	for rows.Next() {
		var category string
		var n int
		if err := rows.Scan(&category, &n); err != nil {
			return nil, err
		}
		counts[Filter(category)] = n
		counts[All] += n
	}
	return counts, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProject(sc scanner) (Project, error) {
	var p Project
	var category string
	if err := sc.Scan(&p.ID, &p.Title, &p.Description, &category, &p.GitHub, &p.Live, &p.Featured); err != nil {
		return Project{}, err
	}
	p.Category = Category(category)
	return p, nil
}

func (s *Store) fillLists(ctx context.Context, p *Project) error {
	var err error
	p.Tech, err = s.strings(ctx, `SELECT name FROM project_tech WHERE project_id = ? ORDER BY position`, p.ID)
	if err != nil {
		return fmt.Errorf("loading tech of %q: %w", p.ID, err)
	}
	p.Screenshots, err = s.strings(ctx, `SELECT path FROM screenshots WHERE project_id = ? ORDER BY position`, p.ID)
	if err != nil {
		return fmt.Errorf("loading screenshots of %q: %w", p.ID, err)
	}
	return nil
}

func (s *Store) strings(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
