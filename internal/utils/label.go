package utils

import (
	"regexp"
	"strings"
)

const (
	// MaxLabelLength is the maximum byte length kept for a category label
	MaxLabelLength = 80
)

// whitespaceRegex matches runs of whitespace inside a label
var whitespaceRegex = regexp.MustCompile(`\s+`)

// CleanLabel normalizes a category label by collapsing whitespace runs
// into single spaces and trimming the result to MaxLabelLength.
func CleanLabel(label string) string {
	label = whitespaceRegex.ReplaceAllString(label, " ")
	label = strings.TrimSpace(label)

	// Limit length
	if len(label) > MaxLabelLength {
		label = label[:MaxLabelLength]
		label = strings.TrimRight(label, " ")
	}

	return label
}
