package arith

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-arith/arith/internal/arch/registry"
	"github.com/cwbudde/algo-arith/op"
)

var (
	selectedKernels registry.Kernels
	genericKernels  registry.Kernels
	kernelsInitOnce sync.Once
)

func initKernels() {
	genericKernels = registry.Global.Resolve(cpu.Features{ForceGeneric: true})
	if !genericKernels.Complete() {
		panic("arith: generic kernels incomplete (missing generic registration?)")
	}

	selectedKernels = registry.Global.Resolve(cpu.DetectFeatures())
	if !selectedKernels.Complete() {
		panic("arith: selected kernels incomplete")
	}
}

// kernels returns the accelerated set for operands of at least threshold
// elements and the generic set otherwise.
func kernels(n, threshold int) *registry.Kernels {
	kernelsInitOnce.Do(initKernels)
	if n >= threshold {
		return &selectedKernels
	}
	return &genericKernels
}

// KernelSource names the implementations serving one operation code.
type KernelSource struct {
	Op     op.Code
	Binary string
	Scalar string
	Unary  string
}

// Kernels reports, per operation code, which registered implementation the
// engine uses for operands at or above the acceleration threshold.
func Kernels() []KernelSource {
	kernelsInitOnce.Do(initKernels)

	out := make([]KernelSource, 0, op.Count)
	for _, c := range op.Codes() {
		b, s, u := selectedKernels.Source(c)
		out = append(out, KernelSource{Op: c, Binary: b, Scalar: s, Unary: u})
	}
	return out
}

// Preferred returns the name of the highest-priority kernel implementation the
// current CPU can run. Operations it leaves out are served by lower entries.
func Preferred() string {
	if e := registry.Global.Lookup(cpu.DetectFeatures()); e != nil {
		return e.Name
	}
	return ""
}

// Implementations lists the registered kernel implementations, highest
// priority first, including ones the current CPU cannot run.
func Implementations() []string {
	entries := registry.Global.ListEntries()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}
