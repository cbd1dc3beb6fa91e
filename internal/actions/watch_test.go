package actions_test

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"classtree.dev/classtree/internal/actions"
	"classtree.dev/classtree/internal/output"
	"classtree.dev/classtree/internal/treefile"
)

// syncBuffer guards the console buffer against the watcher goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatchAction(t *testing.T) {
	ctx, _ := newTestContext(t, sampleTree())

	var buf syncBuffer
	ctx.Console = output.NewConsoleTo(&buf)

	watchCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- actions.WatchAction(watchCtx, ctx, actions.WatchOptions{Debounce: 50 * time.Millisecond})
	}()

	// The initial render appears before any file event
	require.Eventually(t, func() bool {
		return strings.Contains(buf.String(), "Watching")
	}, 3*time.Second, 20*time.Millisecond)

	// Rewrite the document with a renamed root
	renamed := sampleTree().DistributeQty(0)
	renamed = renamed.UpdateLabel(0, "Inbound")
	require.NoError(t, treefile.Save(ctx.TreePath, renamed))

	require.Eventually(t, func() bool {
		return strings.Contains(buf.String(), "changed on disk") &&
			strings.Contains(buf.String(), "Inbound")
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}
