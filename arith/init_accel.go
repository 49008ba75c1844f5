//go:build !purego && (amd64 || arm64)

package arith

// Accelerated kernels register themselves where algo-vecmath has a fast path.
import _ "github.com/cwbudde/algo-arith/arith/internal/arch/accel"
