// Package actions provides high-level business logic for CLI commands.
//
// Each action corresponds to a classtree command (create, distribute,
// normalize, etc.) and orchestrates operations across the tree, config,
// and treefile packages.
//
// Key patterns:
//   - Actions accept runtime.Context which provides the working tree, settings and console
//   - Tree operations are copy-on-write; actions install results with Context.Swap
//   - Actions handle user interaction through survey prompts
package actions
