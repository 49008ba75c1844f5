package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-arith/arith"
)

// parseOperand reads a scalar ("3.5"), a vector ("1,2,3") or a matrix
// ("1,2;3,4"). A trailing separator is not allowed.
func parseOperand(s string) (arith.Value, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return arith.Value{}, fmt.Errorf("empty operand")
	}

	if strings.Contains(s, ";") {
		var rows [][]float64
		for _, part := range strings.Split(s, ";") {
			row, err := parseList(part)
			if err != nil {
				return arith.Value{}, err
			}
			rows = append(rows, row)
		}
		m, err := arith.MatrixFromRows(rows)
		if err != nil {
			return arith.Value{}, err
		}
		return arith.Mat(m), nil
	}

	if strings.Contains(s, ",") {
		v, err := parseList(s)
		if err != nil {
			return arith.Value{}, err
		}
		return arith.Vec(v), nil
	}

	x, err := parseNumber(s)
	if err != nil {
		return arith.Value{}, err
	}
	return arith.Scalar(x), nil
}

func parseList(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	out := make([]float64, len(fields))
	for i, f := range fields {
		x, err := parseNumber(f)
		if err != nil {
			return nil, err
		}
		out[i] = x
	}
	return out, nil
}

func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return x, nil
}

func formatNumber(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// writeValue prints scalars plainly, vectors space separated and matrices as
// aligned rows.
func writeValue(w io.Writer, v arith.Value) error {
	switch v.Kind() {
	case arith.KindVector:
		parts := make([]string, len(v.Vector()))
		for i, x := range v.Vector() {
			parts[i] = formatNumber(x)
		}
		_, err := fmt.Fprintln(w, strings.Join(parts, " "))
		return err

	case arith.KindMatrix:
		m := v.Matrix()
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
		for i := 0; i < m.Rows; i++ {
			for _, x := range m.Row(i) {
				if _, err := fmt.Fprintf(tw, "%s\t", formatNumber(x)); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintln(tw); err != nil {
				return err
			}
		}
		return tw.Flush()

	default:
		_, err := fmt.Fprintln(w, formatNumber(v.Scalar()))
		return err
	}
}
