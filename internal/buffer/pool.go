package buffer

import "sync"

// Pool recycles released result buffers.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return &Buffer{}
			},
		},
	}
}

// Get returns a zeroed vector Buffer of n elements.
// Callers must return it via Put when done.
func (p *Pool) Get(n int) *Buffer {
	b := p.pool.Get().(*Buffer)
	b.Reshape(n)
	b.Zero()
	return b
}

// GetMatrix returns a zeroed rows × cols Buffer.
func (p *Pool) GetMatrix(rows, cols int) *Buffer {
	b := p.pool.Get().(*Buffer)
	b.ReshapeMatrix(rows, cols)
	b.Zero()
	return b
}

// Put returns a Buffer to the pool for reuse.
// The caller must not use the buffer after calling Put.
func (p *Pool) Put(b *Buffer) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}
