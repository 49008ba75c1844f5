//go:build !purego && arm64

package accel

import "github.com/cwbudde/algo-vecmath/cpu"

const simdLevel = cpu.SIMDNEON
