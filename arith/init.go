package arith

// Generic kernels are registered on every platform.
import _ "github.com/cwbudde/algo-arith/arith/internal/arch/generic"
