package generic

import (
	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-arith/arith/internal/arch/registry"
	"github.com/cwbudde/algo-arith/op"
)

// init registers the pure Go kernels. They are the baseline every other
// entry is checked against and fill any slot an accelerated entry leaves empty.
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,

		AddBlock: BinaryBlock(op.Add),
		SubBlock: BinaryBlock(op.Subtract),
		MulBlock: BinaryBlock(op.Multiply),
		DivBlock: BinaryBlock(op.Divide),

		AddScalarBlock: ScalarBlock(op.Add),
		SubScalarBlock: ScalarBlock(op.Subtract),
		MulScalarBlock: ScalarBlock(op.Multiply),
		DivScalarBlock: ScalarBlock(op.Divide),

		ExpBlock: UnaryBlock(op.Exp),
	})
}
