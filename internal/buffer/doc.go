// Package buffer provides the shaped float64 blocks handed out across the
// host boundary, and a pool that recycles them once the host releases a
// result. Engine entry points fill a Buffer through their ...To variants.
package buffer
