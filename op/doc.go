// Package op defines the closed set of elementwise operation codes and the
// scalar primitive every higher-shape operation reduces to.
//
// Codes travel across the host boundary as small integers:
//
//	0 Add, 1 Divide, 2 Multiply, 3 Subtract, 4 Exp
//
// The numbering is part of the boundary contract and must not be reordered.
//
// Binary evaluates the four arithmetic codes and treats every other code as
// Subtract. Unary evaluates Exp and passes the operand through unchanged for
// every other code. Callers that prefer an error over the fallback check
// Code.IsBinary or Code.Valid first (the arith engine does this in strict mode).
package op
