// Package registry holds the block kernel implementations available to the
// arith engine and selects among them by CPU features.
//
// Implementation packages register an OpEntry from init(). An entry does not
// have to provide every kernel: Resolve walks compatible entries from the
// highest priority down and takes each kernel from the first entry that has
// it, so a partial accelerated entry is completed by the generic one.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-arith/op"
)

// BinaryBlockFn writes f(a[i], b[i]) to dst[i]. All slices have equal length.
type BinaryBlockFn func(dst, a, b []float64)

// ScalarBlockFn writes f(src[i], s) to dst[i], or f(s, src[i]) when reverse is set.
type ScalarBlockFn func(dst, src []float64, s float64, reverse bool)

// UnaryBlockFn writes g(src[i]) to dst[i].
type UnaryBlockFn func(dst, src []float64)

// OpEntry is one registered kernel implementation.
type OpEntry struct {
	// Name identifies the implementation (e.g. "generic", "vecmath").
	Name string

	// SIMDLevel is the instruction set the implementation requires.
	SIMDLevel cpu.SIMDLevel

	// Priority orders compatible entries. Generic is 0.
	Priority int

	AddBlock BinaryBlockFn
	SubBlock BinaryBlockFn
	MulBlock BinaryBlockFn
	DivBlock BinaryBlockFn

	AddScalarBlock ScalarBlockFn
	SubScalarBlock ScalarBlockFn
	MulScalarBlock ScalarBlockFn
	DivScalarBlock ScalarBlockFn

	ExpBlock UnaryBlockFn
}

// Kernels is a fully resolved kernel set, indexed by operation code.
type Kernels struct {
	binary      [op.Count]BinaryBlockFn
	scalar      [op.Count]ScalarBlockFn
	unary       [op.Count]UnaryBlockFn
	binaryNames [op.Count]string
	scalarNames [op.Count]string
	unaryNames  [op.Count]string
}

// Binary returns the vector kernel for c, or nil if c has no binary kernel.
func (k *Kernels) Binary(c op.Code) BinaryBlockFn {
	if !c.IsBinary() {
		return nil
	}
	return k.binary[c]
}

// Scalar returns the vector-with-scalar kernel for c, or nil.
func (k *Kernels) Scalar(c op.Code) ScalarBlockFn {
	if !c.IsBinary() {
		return nil
	}
	return k.scalar[c]
}

// Unary returns the unary kernel for c, or nil.
func (k *Kernels) Unary(c op.Code) UnaryBlockFn {
	if !c.IsUnary() {
		return nil
	}
	return k.unary[c]
}

// Source reports which entry supplied the binary, scalar and unary kernel for c.
// Empty strings mean no kernel.
func (k *Kernels) Source(c op.Code) (binary, scalar, unary string) {
	if !c.Valid() {
		return "", "", ""
	}
	return k.binaryNames[c], k.scalarNames[c], k.unaryNames[c]
}

// Complete reports whether every binary and unary slot is filled.
func (k *Kernels) Complete() bool {
	for _, c := range op.Codes() {
		if c.IsBinary() && (k.binary[c] == nil || k.scalar[c] == nil) {
			return false
		}
		if c.IsUnary() && k.unary[c] == nil {
			return false
		}
	}
	return true
}

func (k *Kernels) fill(e *OpEntry) {
	setBinary := func(c op.Code, fn BinaryBlockFn) {
		if k.binary[c] == nil && fn != nil {
			k.binary[c] = fn
			k.binaryNames[c] = e.Name
		}
	}
	setScalar := func(c op.Code, fn ScalarBlockFn) {
		if k.scalar[c] == nil && fn != nil {
			k.scalar[c] = fn
			k.scalarNames[c] = e.Name
		}
	}

	setBinary(op.Add, e.AddBlock)
	setBinary(op.Subtract, e.SubBlock)
	setBinary(op.Multiply, e.MulBlock)
	setBinary(op.Divide, e.DivBlock)

	setScalar(op.Add, e.AddScalarBlock)
	setScalar(op.Subtract, e.SubScalarBlock)
	setScalar(op.Multiply, e.MulScalarBlock)
	setScalar(op.Divide, e.DivScalarBlock)

	if k.unary[op.Exp] == nil && e.ExpBlock != nil {
		k.unary[op.Exp] = e.ExpBlock
		k.unaryNames[op.Exp] = e.Name
	}
}

// OpRegistry stores available implementations.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the default kernel registry.
var Global = &OpRegistry{}

// Register adds an implementation entry.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority implementation supported by features.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// Resolve merges all entries supported by features into one kernel set,
// preferring higher priority entries slot by slot.
func (r *OpRegistry) Resolve(features cpu.Features) Kernels {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	var k Kernels
	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			k.fill(entry)
		}
	}
	return k
}

func (r *OpRegistry) ensureSorted() {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()
}

func (r *OpRegistry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of entries for tests/debugging.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}
