//go:build !purego && (amd64 || arm64)

package accel

import "github.com/cwbudde/algo-arith/arith/internal/arch/registry"

// init registers the vecmath kernels. Priority 10 places them above generic;
// slots left nil here are resolved from the generic entry.
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "vecmath",
		SIMDLevel: simdLevel,
		Priority:  10,

		AddBlock: AddBlock,
		MulBlock: MulBlock,

		MulScalarBlock: MulScalarBlock,
	})
}
