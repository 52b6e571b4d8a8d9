package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_Save(t *testing.T) {
	t.Run("SkipsEqualEntry", func(t *testing.T) {
		h := NewHistory("a")

		assert.False(t, h.Save("a"))
		assert.True(t, h.Save("b"))
		assert.False(t, h.Save("b"))

		assert.Equal(t, []string{"a", "b"}, h.Entries())
		assert.Equal(t, 1, h.Position())
	})

	t.Run("TruncatesRedoBranch", func(t *testing.T) {
		h := NewHistory(0)
		h.Save(1)
		h.Save(2)
		h.Save(3)
		_, ok := h.Undo()
		require.True(t, ok)
		_, ok = h.Undo()
		require.True(t, ok)

		require.True(t, h.Save(9))

		assert.Equal(t, []int{0, 1, 9}, h.Entries())
		_, ok = h.Redo()
		assert.False(t, ok)
	})

	t.Run("ComparesWithCursorEntry", func(t *testing.T) {
		h := NewHistory("a")
		h.Save("b")
		h.Undo()

		// "a" is under the cursor, so nothing changes.
		assert.False(t, h.Save("a"))
		assert.Equal(t, []string{"a", "b"}, h.Entries())
		assert.Equal(t, 0, h.Position())
	})
}

func TestHistory_UndoRedo(t *testing.T) {
	h := NewHistory("a")
	h.Save("b")
	h.Save("c")

	v, ok := h.Undo()
	require.True(t, ok)
	assert.Equal(t, "b", v)

	v, ok = h.Undo()
	require.True(t, ok)
	assert.Equal(t, "a", v)

	_, ok = h.Undo()
	assert.False(t, ok)
	assert.Equal(t, "a", h.Current())

	v, ok = h.Redo()
	require.True(t, ok)
	assert.Equal(t, "b", v)

	v, ok = h.Redo()
	require.True(t, ok)
	assert.Equal(t, "c", v)

	_, ok = h.Redo()
	assert.False(t, ok)
	assert.Equal(t, 2, h.Position())
}

func TestHistory_Limit(t *testing.T) {
	t.Run("DropsOldest", func(t *testing.T) {
		h := NewHistory(0)
		h.SetLimit(3)

		for i := 1; i <= 5; i++ {
			h.Save(i)
		}

		assert.Equal(t, []int{3, 4, 5}, h.Entries())
		assert.Equal(t, 2, h.Position())
		assert.Equal(t, 5, h.Current())
	})

	t.Run("SetLimitTrimsExisting", func(t *testing.T) {
		h := NewHistory(0)
		h.Save(1)
		h.Save(2)
		h.Undo()

		h.SetLimit(2)

		assert.Equal(t, []int{1, 2}, h.Entries())
		assert.Equal(t, 0, h.Position())
		assert.Equal(t, 1, h.Current())
	})

	t.Run("Unlimited", func(t *testing.T) {
		h := NewHistory(0)
		h.SetLimit(0)

		for i := 1; i <= 50; i++ {
			h.Save(i)
		}

		assert.Equal(t, 51, h.Len())
	})
}

func TestHistory_EntriesIsACopy(t *testing.T) {
	h := NewHistory("a")
	entries := h.Entries()
	entries[0] = "changed"

	assert.Equal(t, "a", h.Current())
}
