package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginationParams_Validate(t *testing.T) {
	p := &PaginationParams{Page: 0, PerPage: 500}
	p.Validate()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 100, p.PerPage)
	assert.Equal(t, 0, p.Offset())

	p = &PaginationParams{Page: 3, PerPage: 10}
	p.Validate()
	assert.Equal(t, 20, p.Offset())
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 10, 25)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	p = NewPagination(1, 10, 0)
	assert.Equal(t, 0, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
}

func TestCursorRoundTrip(t *testing.T) {
	at := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	params := &CursorParams{Cursor: EncodeCursor("abc", at)}

	c, err := params.DecodeCursor()
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "abc", c.ID)
	assert.True(t, at.Equal(c.At))
}

func TestDecodeCursor_Invalid(t *testing.T) {
	params := &CursorParams{Cursor: "%%%"}
	_, err := params.DecodeCursor()
	assert.Error(t, err)

	empty := &CursorParams{}
	c, err := empty.DecodeCursor()
	assert.NoError(t, err)
	assert.Nil(t, c)
}

func TestNewCursorPagination(t *testing.T) {
	now := time.Now()
	items := []int{1, 2, 3, 4}
	id := func(i int) string { return string(rune('a' + i)) }
	at := func(int) time.Time { return now }

	p, trimmed := NewCursorPagination(items, 3, id, at)
	assert.Equal(t, []int{1, 2, 3}, trimmed)
	assert.True(t, p.HasNext)
	require.NotNil(t, p.NextCursor)

	p, trimmed = NewCursorPagination(items[:2], 3, id, at)
	assert.Len(t, trimmed, 2)
	assert.False(t, p.HasNext)
	assert.Nil(t, p.NextCursor)
}

func TestDecodeCursor_MissingPosition(t *testing.T) {
	params := &CursorParams{Cursor: EncodeCursor("", time.Time{})}
	_, err := params.DecodeCursor()
	assert.Error(t, err)
}

func TestNewPage(t *testing.T) {
	page := NewPage[string](nil, Params(2, 0), 16)
	assert.NotNil(t, page.Items)
	assert.Equal(t, 2, page.Pagination.CurrentPage)
	assert.Equal(t, DefaultPerPage, page.Pagination.PerPage)
	assert.Equal(t, 2, page.Pagination.TotalPages)
	assert.False(t, page.Pagination.HasNext)
}
