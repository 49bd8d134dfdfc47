package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGalleryKeepsViewsInSync(t *testing.T) {
	g, err := NewGallery(shots, 0)
	require.NoError(t, err)
	require.True(t, g.Slider().Controlled())

	g.Next()
	assert.Equal(t, 1, g.Index())
	assert.Equal(t, 1, g.Slider().CurrentDisplayIndex())
	assert.Equal(t, Forward, g.Direction())

	require.NoError(t, g.Select(0))
	assert.Equal(t, 0, g.Index())
	assert.Equal(t, Backward, g.Direction())

	// The slider's own arrows go through the owner too.
	g.Slider().Previous()
	assert.Equal(t, 2, g.Index())
	assert.Equal(t, 2, g.Slider().CurrentDisplayIndex())

	thumbs := g.Thumbnails()
	require.Len(t, thumbs, 3)
	for i, th := range thumbs {
		assert.Equal(t, i == 2, th.Active, "thumb %d", i)
	}
	assert.Equal(t, "3 of 3", g.Counter())
}

func TestGalleryKeys(t *testing.T) {
	g, err := NewGallery(shots, 1)
	require.NoError(t, err)

	assert.False(t, g.HandleKey("right"))
	assert.Equal(t, 2, g.Index())
	assert.False(t, g.HandleKey("ArrowRight"))
	assert.Equal(t, 0, g.Index())
	assert.False(t, g.HandleKey("left"))
	assert.Equal(t, 2, g.Index())
	assert.False(t, g.HandleKey("x"))
	assert.Equal(t, 2, g.Index())

	assert.True(t, g.HandleKey("Escape"))
	assert.True(t, g.Closed())

	g.Next()
	assert.Equal(t, 2, g.Index(), "closed galleries ignore navigation")
}

func TestGallerySelectOutOfRange(t *testing.T) {
	g, err := NewGallery(shots, 0)
	require.NoError(t, err)

	assert.ErrorIs(t, g.Select(5), ErrIndexOutOfRange)
	assert.Equal(t, 0, g.Index())
}

func TestGalleryBadStart(t *testing.T) {
	_, err := NewGallery(shots, 3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestGalleryEmpty(t *testing.T) {
	g, err := NewGallery(nil, 0)
	require.NoError(t, err)

	g.Next()
	assert.Equal(t, "", g.Counter())
	assert.Empty(t, g.Thumbnails())
}

func TestGalleryLoadErrorsReachThumbnails(t *testing.T) {
	g, err := NewGallery(shots, 0)
	require.NoError(t, err)

	g.ReportLoadError(1)
	thumbs := g.Thumbnails()
	assert.True(t, thumbs[1].Placeholder)
	assert.False(t, thumbs[0].Placeholder)

	g.Next()
	assert.True(t, g.Slider().Current().Placeholder)
}
