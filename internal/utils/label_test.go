package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCleanLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple label passes through",
			input:    "Web",
			expected: "Web",
		},
		{
			name:     "inner whitespace collapses",
			input:    "Search   Ads",
			expected: "Search Ads",
		},
		{
			name:     "tabs and newlines become spaces",
			input:    "Paid\tSocial\nCampaigns",
			expected: "Paid Social Campaigns",
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "  Partner  ",
			expected: "Partner",
		},
		{
			name:     "empty stays empty",
			input:    "",
			expected: "",
		},
		{
			name:     "whitespace only collapses to empty",
			input:    " \t\n ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, CleanLabel(tt.input))
		})
	}

	t.Run("long labels are cut at the limit", func(t *testing.T) {
		t.Parallel()
		long := strings.Repeat("x", MaxLabelLength) + " overflow"
		got := CleanLabel(long)
		require.Len(t, got, MaxLabelLength)
		require.False(t, strings.HasSuffix(got, " "))
	})
}
