// Command arithcalc evaluates one elementwise operation on scalars, vectors
// or matrices given on the command line.
//
// Usage:
//
//	arithcalc [flags] A [B]
//
// Operands are written as 3.5 (scalar), 1,2,3 (vector) or 1,2;3,4 (matrix,
// rows separated by semicolons). With one operand the unary form of the
// operation is applied.
//
// Examples:
//
//	arithcalc -op add '1,2;3,4' 10
//	arithcalc -op subtract -reverse '1,2;3,4' 10
//	arithcalc -op exp 0,1,2
//	arithcalc -list
//	arithcalc -kernels
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-arith/arith"
	"github.com/cwbudde/algo-arith/op"
)

type options struct {
	op      string
	code    int
	reverse bool
	strict  bool
}

func main() {
	var opts options
	flag.StringVar(&opts.op, "op", "add", "operation name, symbol or code (see -list)")
	flag.IntVar(&opts.code, "code", -1, "raw operation code, overrides -op (unknown codes use the fallback)")
	flag.BoolVar(&opts.reverse, "reverse", false, "swap the operands")
	flag.BoolVar(&opts.strict, "strict", false, "reject operation codes without a meaning of their own")
	list := flag.Bool("list", false, "list operations")
	kernels := flag.Bool("kernels", false, "list kernel implementations and the ones selected for this CPU")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: arithcalc [flags] A [B]\n\n")
		fmt.Fprintf(os.Stderr, "Evaluates an elementwise operation. Operands: 3.5, 1,2,3 or 1,2;3,4.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  arithcalc -op add '1,2;3,4' 10\n")
		fmt.Fprintf(os.Stderr, "  arithcalc -op subtract -reverse '1,2;3,4' 10\n")
		fmt.Fprintf(os.Stderr, "  arithcalc -op exp 0,1,2\n")
	}
	flag.Parse()

	if *list {
		if err := printOps(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}
	if *kernels {
		if err := printKernels(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(opts, flag.Args(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run evaluates the operands in args and writes the result to w.
func run(opts options, args []string, w io.Writer) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("expected 1 or 2 operands, got %d", len(args))
	}

	code, err := resolveCode(opts)
	if err != nil {
		return err
	}

	values := make([]arith.Value, len(args))
	for i, arg := range args {
		v, err := parseOperand(arg)
		if err != nil {
			return fmt.Errorf("operand %d: %w", i+1, err)
		}
		values[i] = v
	}

	engine := arith.New(arith.WithStrictOps(opts.strict))

	var result arith.Value
	if len(values) == 1 {
		result, err = engine.ApplyUnary(values[0], code)
	} else {
		a, b := values[0], values[1]
		if opts.reverse {
			a, b = b, a
		}
		result, err = engine.Apply(a, b, code)
	}
	if err != nil {
		return err
	}
	return writeValue(w, result)
}

func resolveCode(opts options) (op.Code, error) {
	if opts.code >= 0 {
		return op.Code(opts.code), nil
	}
	return op.Parse(opts.op)
}

func printOps(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Code\tName\tBinary\tUnary\tCommutative\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "----\t----\t------\t-----\t-----------\n"); err != nil {
		return err
	}
	for _, c := range op.Codes() {
		binary, unary := "a - b", "a"
		if c.IsBinary() {
			binary = binaryForm(c)
		}
		if c.IsUnary() {
			unary = "exp(a)"
		}
		if _, err := fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%t\n", int(c), c, binary, unary, c.Commutative()); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func binaryForm(c op.Code) string {
	switch c {
	case op.Add:
		return "a + b"
	case op.Divide:
		return "a / b"
	case op.Multiply:
		return "a * b"
	default:
		return "a - b"
	}
}

func printKernels(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Registered: %v\nPreferred:  %s\n\n", arith.Implementations(), arith.Preferred()); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Op\tBinary\tScalar\tUnary\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "--\t------\t------\t-----\n"); err != nil {
		return err
	}
	for _, k := range arith.Kernels() {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", k.Op, dash(k.Binary), dash(k.Scalar), dash(k.Unary)); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
