// Package runtime provides the execution context for classtree commands.
//
// It encapsulates shared dependencies and configuration needed by actions,
// such as the working tree, the settings and the document paths.
package runtime
