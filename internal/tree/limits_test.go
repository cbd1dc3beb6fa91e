package tree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllowExpand(t *testing.T) {
	lim := Limits{MaxChildren: 3, MaxLevels: 2}

	kids := func(count int) []*Node {
		out := make([]*Node, count)
		for i := range out {
			out[i] = &Node{ID: i + 1}
		}
		return out
	}

	tests := []struct {
		name     string
		level    int
		children []*Node
		want     bool
	}{
		{"room on both axes", 0, nil, true},
		{"one child slot left", 1, kids(2), true},
		{"children at the cap", 1, kids(3), false},
		{"level at the cap", 2, kids(1), false},
		{"both at the cap", 2, kids(3), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, AllowExpand(lim, tt.level, tt.children))
		})
	}
}

func TestDefaultLimits(t *testing.T) {
	lim := DefaultLimits()

	require.Equal(t, 100000, lim.GlobalQty)
	require.Equal(t, 3000, lim.MinNodeQty)
	require.Equal(t, 5, lim.MaxChildren)
	require.Equal(t, 1000000, lim.MaxGlobalQty)
	require.Equal(t, 4, lim.MaxLevels)
}
