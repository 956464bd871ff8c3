package paginate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		count, size, want int
	}{
		{0, 25, 1},
		{1, 25, 1},
		{25, 25, 1},
		{26, 25, 2},
		{100, 25, 4},
		{101, 25, 5},
		{7, 1, 7},
		{10, 0, 10}, // size below 1 treated as 1
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.count, tt.size), "TotalPages(%d, %d)", tt.count, tt.size)
	}
}

func TestClampInRange(t *testing.T) {
	p := Clamp(2, 60, 25)
	assert.Equal(t, 2, p.Number)
	assert.Equal(t, 3, p.TotalPages)
}

func TestClampOutOfRange(t *testing.T) {
	// Past the end clamps to the last page.
	p := Clamp(99, 60, 25)
	assert.Equal(t, 3, p.Number)

	// Below 1 clamps to 1.
	p = Clamp(-5, 60, 25)
	assert.Equal(t, 1, p.Number)

	p = Clamp(0, 60, 25)
	assert.Equal(t, 1, p.Number)
}

func TestClampEmptySet(t *testing.T) {
	p := Clamp(3, 0, 25)
	assert.Equal(t, 1, p.Number)
	assert.Equal(t, 1, p.TotalPages)
	assert.Equal(t, "Page 0 of 0", p.Label())
	assert.False(t, p.HasPrev())
	assert.False(t, p.HasNext())
}

func TestSliceWindows(t *testing.T) {
	rows := []int{0, 1, 2, 3, 4, 5, 6}

	p := Clamp(1, len(rows), 3)
	assert.Equal(t, []int{0, 1, 2}, Slice(rows, p))

	p = Clamp(2, len(rows), 3)
	assert.Equal(t, []int{3, 4, 5}, Slice(rows, p))

	// Last page is short.
	p = Clamp(3, len(rows), 3)
	assert.Equal(t, []int{6}, Slice(rows, p))

	// Clamped past the end lands on the last page, not out of bounds.
	p = Clamp(50, len(rows), 3)
	assert.Equal(t, []int{6}, Slice(rows, p))
}

func TestSliceEmpty(t *testing.T) {
	p := Clamp(1, 0, 25)
	assert.Empty(t, Slice([]string{}, p))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Page 2 of 4", Clamp(2, 100, 25).Label())
	assert.Equal(t, "Page 1 of 1", Clamp(1, 5, 25).Label())
}

func TestPrevNextBoundaries(t *testing.T) {
	first := Clamp(1, 100, 25)
	assert.False(t, first.HasPrev())
	assert.True(t, first.HasNext())

	last := Clamp(4, 100, 25)
	assert.True(t, last.HasPrev())
	assert.False(t, last.HasNext())

	only := Clamp(1, 10, 25)
	assert.False(t, only.HasPrev())
	assert.False(t, only.HasNext())
}
