package slotscreen_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/slotmine/slotscreen"
)

// TestRender_Full renders without a mask: every symbol prints, rows are
// space-separated, and a blank line terminates the screen.
func TestRender_Full(t *testing.T) {
	var buf bytes.Buffer
	err := slotscreen.Render(&buf, slotscreen.Screen{
		{'A', 'B'},
		{'C', 'D'},
	}, nil)
	assert.NoError(t, err)
	assert.Equal(t, "A B\nC D\n\n", buf.String())
}

// TestRender_Masked hides every cell the keep predicate rejects.
func TestRender_Masked(t *testing.T) {
	var buf bytes.Buffer
	err := slotscreen.Render(&buf, slotscreen.Screen{
		{'A', 'B'},
		{'C', 'D'},
	}, func(x, y int, sym rune) bool {
		return sym == 'A' || sym == 'D'
	})
	assert.NoError(t, err)
	assert.Equal(t, "A -\n- D\n\n", buf.String())
}

// TestRender_EmptyScreen prints just the terminating blank line.
func TestRender_EmptyScreen(t *testing.T) {
	var buf bytes.Buffer
	err := slotscreen.Render(&buf, nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, "\n", buf.String())
}
