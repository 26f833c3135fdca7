package pos

import (
	"context"
	"sync"
)

var (
	tableLocksMu sync.Mutex
	tableLocks   = map[string]chan struct{}{}
)

// lockTable serializes load and submit cycles for one table across every
// reconciler in the process. Waiting gives up when ctx is done.
func lockTable(ctx context.Context, tableID string) (func(), error) {
	tableLocksMu.Lock()
	ch, ok := tableLocks[tableID]
	if !ok {
		ch = make(chan struct{}, 1)
		tableLocks[tableID] = ch
	}
	tableLocksMu.Unlock()

	select {
	case ch <- struct{}{}:
		return func() { <-ch }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
