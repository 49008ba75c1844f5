package boundary

import (
	"errors"
	"fmt"
	"sync"

	"github.com/cwbudde/algo-arith/internal/buffer"
)

// ErrUnknownHandle is returned for handles that were never issued or have
// already been released.
var ErrUnknownHandle = errors.New("boundary: unknown handle")

// Handle names a live result. The zero Handle is never issued.
type Handle uint32

// Arena holds results on behalf of a host. It is safe for concurrent use.
type Arena struct {
	mu   sync.Mutex
	next Handle
	live map[Handle]*buffer.Buffer
	pool *buffer.Pool
}

// NewArena returns an empty Arena that recycles released buffers into pool.
// A nil pool disables recycling.
func NewArena(pool *buffer.Pool) *Arena {
	return &Arena{
		live: make(map[Handle]*buffer.Buffer),
		pool: pool,
	}
}

// Put stores b and returns its handle.
func (a *Arena) Put(b *buffer.Buffer) Handle {
	a.mu.Lock()
	defer a.mu.Unlock()

	for {
		a.next++
		if a.next == 0 {
			continue
		}
		if _, taken := a.live[a.next]; !taken {
			break
		}
	}
	a.live[a.next] = b
	return a.next
}

// Get returns the buffer behind h. The buffer stays owned by the arena.
func (a *Arena) Get(h Handle) (*buffer.Buffer, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	b, ok := a.live[h]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownHandle, h)
	}
	return b, nil
}

// Release drops h and recycles its buffer. Releasing a handle twice is
// reported as ErrUnknownHandle.
func (a *Arena) Release(h Handle) error {
	a.mu.Lock()
	b, ok := a.live[h]
	delete(a.live, h)
	a.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownHandle, h)
	}
	if a.pool != nil {
		a.pool.Put(b)
	}
	return nil
}

// Live returns the number of unreleased handles.
func (a *Arena) Live() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.live)
}
