package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openDefault(t *testing.T) (*Content, *Store) {
	t.Helper()
	c, err := Default()
	require.NoError(t, err)
	s, err := Open(context.Background(), c)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return c, s
}

func TestDefaultContent(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Len(t, c.Profile.Roles, 5)
	assert.Equal(t, "Full Stack Developer", c.Profile.Roles[0])
	assert.Len(t, c.Projects, 6)
	assert.Len(t, c.Services, 6)
	assert.Len(t, c.Skills, 4)
	require.Len(t, c.Nav, 5)
	assert.Equal(t, "tech-stack", c.Nav[1].Section)
	assert.Equal(t, "FitTrack — Fitness App", c.Projects[3].Title)
}

func TestParseRejectsInvalidContent(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing id", "projects:\n  - title: x\n    category: web\n"},
		{"duplicate id", "projects:\n  - {id: a, title: x, category: web}\n  - {id: a, title: y, category: web}\n"},
		{"missing title", "projects:\n  - {id: a, category: web}\n"},
		{"bad category", "projects:\n  - {id: a, title: x, category: desktop}\n"},
		{"bad yaml", "projects: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profile:\n  name: Test\n  roles: [Gopher]\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Test", c.Profile.Name)
	assert.Equal(t, []string{"Gopher"}, c.Profile.Roles)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestStoreFilters(t *testing.T) {
	_, s := openDefault(t)
	ctx := context.Background()

	all, err := s.Projects(ctx, All)
	require.NoError(t, err)
	require.Len(t, all, 6)
	assert.Equal(t, "ecommerce-platform", all[0].ID)
	assert.Equal(t, "rest-api-boilerplate", all[5].ID)

	web, err := s.Projects(ctx, WebOnly)
	require.NoError(t, err)
	assert.Len(t, web, 4)
	for _, p := range web {
		assert.Equal(t, Web, p.Category)
	}

	mobile, err := s.Projects(ctx, MobileOnly)
	require.NoError(t, err)
	require.Len(t, mobile, 2)
	assert.Equal(t, "fitness-tracker", mobile[0].ID)
	assert.Equal(t, "food-delivery", mobile[1].ID)
}

func TestStoreProject(t *testing.T) {
	content, s := openDefault(t)

	p, err := s.Project(context.Background(), "ecommerce-platform")
	require.NoError(t, err)
	assert.Equal(t, content.Projects[0], p)
	assert.True(t, p.Featured)
	assert.Equal(t, []string{"React", "Node.js", "Express", "MongoDB", "Redux", "JWT"}, p.Tech)
	assert.Len(t, p.Screenshots, 3)

	_, err = s.Project(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreCounts(t *testing.T) {
	_, s := openDefault(t)

	counts, err := s.Counts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[Filter]int{All: 6, WebOnly: 4, MobileOnly: 2}, counts)
}

func TestStoreEmptyCategory(t *testing.T) {
	c, err := Parse([]byte("projects:\n  - {id: a, title: x, category: web}\n"))
	require.NoError(t, err)
	s, err := Open(context.Background(), c)
	require.NoError(t, err)
	defer s.Close()

	mobile, err := s.Projects(context.Background(), MobileOnly)
	require.NoError(t, err)
	assert.Empty(t, mobile)

	counts, err := s.Counts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, counts[MobileOnly])
}

func TestParseFilter(t *testing.T) {
	for in, want := range map[string]Filter{"": All, "all": All, "web": WebOnly, "mobile": MobileOnly} {
		got, err := ParseFilter(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseFilter("desktop")
	assert.Error(t, err)
}
