// Package boundary adapts the arith engine to hosts that speak in flat
// buffers, integer status codes and opaque handles: the C ABI and the
// WebAssembly module share it.
//
// Results handed to a host are owned by the host until it releases them.
// A Session keeps each result in an Arena under a non-zero Handle; released
// buffers go back to a pool and are reused by later calls.
package boundary
