//go:build js && wasm

package main

import (
	"fmt"
	"syscall/js"

	"github.com/cwbudde/algo-arith/arith"
	"github.com/cwbudde/algo-arith/internal/boundary"
)

var (
	session = boundary.NewSession()
	funcs   []js.Func
)

func main() {
	api := js.Global().Get("Object").New()

	api.Set("operateOnScalars", export(3, func(args []js.Value) any {
		r, err := session.Scalars(args[0].Float(), args[1].Float(), args[2].Int())
		if err != nil {
			return err.Error()
		}
		return r
	}))

	api.Set("operateUnaryScalar", export(2, func(args []js.Value) any {
		r, err := session.UnaryScalar(args[0].Float(), args[1].Int())
		if err != nil {
			return err.Error()
		}
		return r
	}))

	api.Set("operateOnVectors", export(3, func(args []js.Value) any {
		return handle(session.Vectors(toVector(args[0]), toVector(args[1]), args[2].Int()))
	}))

	api.Set("operateOnVectorAndScalar", export(4, func(args []js.Value) any {
		return handle(session.VectorScalar(toVector(args[0]), args[1].Float(), args[2].Int(), args[3].Truthy()))
	}))

	api.Set("operateUnaryVector", export(2, func(args []js.Value) any {
		return handle(session.UnaryVector(toVector(args[0]), args[1].Int()))
	}))

	api.Set("operateOnMatrixAndScalar", export(4, func(args []js.Value) any {
		m, err := toMatrix(args[0])
		if err != nil {
			return err.Error()
		}
		return handle(session.MatrixScalar(m, args[1].Float(), args[2].Int(), args[3].Truthy()))
	}))

	api.Set("operateOnMatrices", export(3, func(args []js.Value) any {
		a, err := toMatrix(args[0])
		if err != nil {
			return err.Error()
		}
		b, err := toMatrix(args[1])
		if err != nil {
			return err.Error()
		}
		return handle(session.Matrices(a, b, args[2].Int()))
	}))

	api.Set("operateUnaryMatrix", export(2, func(args []js.Value) any {
		m, err := toMatrix(args[0])
		if err != nil {
			return err.Error()
		}
		return handle(session.UnaryMatrix(m, args[1].Int()))
	}))

	api.Set("shape", export(1, func(args []js.Value) any {
		rows, cols, _, err := session.Shape(boundary.Handle(args[0].Int()))
		if err != nil {
			return err.Error()
		}
		return []any{rows, cols}
	}))

	api.Set("read", export(1, func(args []js.Value) any {
		data, err := session.Read(boundary.Handle(args[0].Int()))
		if err != nil {
			return err.Error()
		}
		arr := js.Global().Get("Float64Array").New(len(data))
		for i, x := range data {
			arr.SetIndex(i, x)
		}
		return arr
	}))

	api.Set("release", export(1, func(args []js.Value) any {
		if err := session.Release(boundary.Handle(args[0].Int())); err != nil {
			return err.Error()
		}
		return js.Null()
	}))

	api.Set("live", export(0, func([]js.Value) any {
		return session.Live()
	}))

	api.Set("setStrict", export(1, func(args []js.Value) any {
		session.SetStrict(args[0].Truthy())
		return js.Null()
	}))

	api.Set("kernel", export(0, func([]js.Value) any {
		ks := arith.Kernels()
		out := make([]any, len(ks))
		for i, k := range ks {
			out[i] = map[string]any{
				"op":     k.Op.String(),
				"binary": k.Binary,
				"scalar": k.Scalar,
				"unary":  k.Unary,
			}
		}
		return out
	}))

	js.Global().Set("AlgoArith", api)
	select {}
}

// export wraps fn as a JS function that reports an error string when called
// with fewer than nargs arguments.
func export(nargs int, fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) < nargs {
			return fmt.Sprintf("AlgoArith: expected %d arguments, got %d", nargs, len(args))
		}
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}

func handle(h boundary.Handle, err error) any {
	if err != nil {
		return err.Error()
	}
	return int(h)
}

// toVector copies an array-like of numbers.
func toVector(v js.Value) []float64 {
	n := v.Length()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = v.Index(i).Float()
	}
	return out
}

// toMatrix copies an array of equally long rows.
func toMatrix(v js.Value) (arith.Matrix, error) {
	rows := make([][]float64, v.Length())
	for i := range rows {
		rows[i] = toVector(v.Index(i))
	}
	return arith.MatrixFromRows(rows)
}
