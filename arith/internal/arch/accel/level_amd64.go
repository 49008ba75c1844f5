//go:build !purego && amd64

package accel

import "github.com/cwbudde/algo-vecmath/cpu"

const simdLevel = cpu.SIMDSSE2
