package extensions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func containerDoc(ids ...any) map[string]any {
	return map[string]any{
		"customizations": map[string]any{
			"vscode": map[string]any{
				"extensions": ids,
			},
		},
	}
}

func recommendationsDoc(ids ...any) map[string]any {
	return map[string]any{"recommendations": ids}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name                           string
		container                      any
		recommended                    any
		wantMissingFromContainer       []string
		wantMissingFromRecommendations []string
		wantInSync                     bool
	}{
		{
			name:                           "in sync regardless of order",
			container:                      containerDoc("ms-python.python", "rust-lang.rust-analyzer"),
			recommended:                    recommendationsDoc("rust-lang.rust-analyzer", "ms-python.python"),
			wantMissingFromContainer:       []string{},
			wantMissingFromRecommendations: []string{},
			wantInSync:                     true,
		},
		{
			name:                           "recommendation not in container",
			container:                      containerDoc("ms-python.python"),
			recommended:                    recommendationsDoc("ms-python.python", "golang.go"),
			wantMissingFromContainer:       []string{"golang.go"},
			wantMissingFromRecommendations: []string{},
		},
		{
			name:                           "container has extra",
			container:                      containerDoc("ms-python.python", "foo.bar"),
			recommended:                    recommendationsDoc("ms-python.python"),
			wantMissingFromContainer:       []string{},
			wantMissingFromRecommendations: []string{"foo.bar"},
		},
		{
			name:                           "both differ",
			container:                      containerDoc("a.one"),
			recommended:                    recommendationsDoc("b.two"),
			wantMissingFromContainer:       []string{"b.two"},
			wantMissingFromRecommendations: []string{"a.one"},
		},
		{
			name:                           "duplicates collapse",
			container:                      containerDoc("a.one", "a.one"),
			recommended:                    recommendationsDoc("a.one"),
			wantMissingFromContainer:       []string{},
			wantMissingFromRecommendations: []string{},
			wantInSync:                     true,
		},
		{
			name:                           "missing container path is empty",
			container:                      map[string]any{"name": "dev"},
			recommended:                    recommendationsDoc("z.last", "a.first"),
			wantMissingFromContainer:       []string{"a.first", "z.last"},
			wantMissingFromRecommendations: []string{},
		},
		{
			name:                           "both empty",
			container:                      map[string]any{},
			recommended:                    map[string]any{},
			wantMissingFromContainer:       []string{},
			wantMissingFromRecommendations: []string{},
			wantInSync:                     true,
		},
		{
			name:                           "sorted output independent of input order",
			container:                      containerDoc(),
			recommended:                    recommendationsDoc("c.c", "a.a", "b.b", "a.a"),
			wantMissingFromContainer:       []string{"a.a", "b.b", "c.c"},
			wantMissingFromRecommendations: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compare(tt.container, tt.recommended)
			assert.Equal(t, tt.wantMissingFromContainer, got.MissingFromContainer)
			assert.Equal(t, tt.wantMissingFromRecommendations, got.MissingFromRecommendations)
			assert.Equal(t, tt.wantInSync, got.InSync())
		})
	}
}

func TestCompareSetsSymmetry(t *testing.T) {
	a := NewSet("shared", "only.a", "also.a")
	b := NewSet("shared", "only.b")

	got := CompareSets(a, b)
	assert.Equal(t, Sorted(b.Diff(a)), got.MissingFromContainer)
	assert.Equal(t, Sorted(a.Diff(b)), got.MissingFromRecommendations)

	missing := NewSet(got.MissingFromContainer...)
	for _, id := range got.MissingFromRecommendations {
		assert.False(t, missing.Has(id), "%s reported on both sides", id)
	}

	swapped := CompareSets(b, a)
	assert.Equal(t, got.MissingFromContainer, swapped.MissingFromRecommendations)
	assert.Equal(t, got.MissingFromRecommendations, swapped.MissingFromContainer)
}
