// ABOUTME: Tests for Rect and Position geometry helpers
// ABOUTME: Verifies saturating math and clipping behavior
package screen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp0(t *testing.T) {
	assert.Equal(t, 3, Clamp0(5, 2))
	assert.Equal(t, 0, Clamp0(2, 2))
	assert.Equal(t, 0, Clamp0(1, 5))
}

func TestRect_Empty(t *testing.T) {
	assert.True(t, Rect{Width: 0, Height: 5}.Empty())
	assert.True(t, Rect{Width: 5, Height: 0}.Empty())
	assert.True(t, Rect{Width: -1, Height: -1}.Empty())
	assert.False(t, Rect{Width: 1, Height: 1}.Empty())
}

func TestRect_Bottom(t *testing.T) {
	assert.Equal(t, 7, Rect{Y: 3, Height: 4}.Bottom())
}

func TestRect_Row(t *testing.T) {
	r := Rect{X: 2, Y: 3, Width: 10, Height: 4}

	assert.Equal(t, Rect{X: 2, Y: 4, Width: 10, Height: 1}, r.Row(1))
	assert.True(t, r.Row(-1).Empty())
	assert.True(t, r.Row(4).Empty())
}

func TestRect_Inset(t *testing.T) {
	r := Rect{X: 1, Y: 1, Width: 10, Height: 5}

	assert.Equal(t, Rect{X: 3, Y: 2, Width: 8, Height: 4}, r.Inset(2, 1))
	// Insetting past the rect saturates at zero size.
	assert.True(t, r.Inset(20, 20).Empty())
}

func TestRect_WithHeight(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 5}

	assert.Equal(t, 3, r.WithHeight(3).Height)
	assert.Equal(t, 5, r.WithHeight(9).Height)
	assert.Equal(t, 0, r.WithHeight(-1).Height)
}
