// Package utils provides shared utility functions.
//
// These utilities are used across multiple packages and include:
//   - Label normalization
//   - Terminal and stdin detection
package utils
