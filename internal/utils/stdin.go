package utils

import (
	"io"
	"os"
	"strings"
)

// ReadFromStdin reads piped content from standard input. It returns an
// empty string when stdin is an interactive terminal so callers never
// block waiting for input.
func ReadFromStdin() (string, error) {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return "", err
	}

	if (stat.Mode() & os.ModeCharDevice) != 0 {
		return "", nil
	}

	// An empty regular file would also block on read
	if stat.Mode().IsRegular() && stat.Size() == 0 {
		return "", nil
	}

	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(b)), nil
}
