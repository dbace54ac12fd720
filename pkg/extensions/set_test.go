package extensions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	s := NewSet("b", "a", "b")
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has("a"))
	assert.False(t, s.Has("c"))

	s.Add("c")
	assert.True(t, s.Has("c"))
	assert.Equal(t, []string{"a", "b", "c"}, Sorted(s))
}

func TestSetDiff(t *testing.T) {
	a := NewSet("a.one", "b.two", "c.three")
	b := NewSet("b.two", "d.four")

	assert.Equal(t, []string{"a.one", "c.three"}, Sorted(a.Diff(b)))
	assert.Equal(t, []string{"d.four"}, Sorted(b.Diff(a)))
	assert.Empty(t, Sorted(a.Diff(a)))
}

func TestSortedNeverNil(t *testing.T) {
	got := Sorted(NewSet[string]())
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
