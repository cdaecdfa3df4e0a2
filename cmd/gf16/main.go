package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	logging "github.com/ipfs/go-log/v2"

	"github.com/01-00-11-00/gf-16-elliptic-curve-operations/curve"
	"github.com/01-00-11-00/gf-16-elliptic-curve-operations/field"
)

var log = logging.Logger("gf16")

// maxTableBits keeps the printed tables readable
const maxTableBits = 6

type config struct {
	a, b   uint64
	poly   uint64
	point  string
	scalar int
	tables bool
	json   bool
}

// PointReport describes one affine point and its order
type PointReport struct {
	X     uint64 `json:"x"`
	Y     uint64 `json:"y"`
	Order int    `json:"order"`
}

// MultipleReport stores the result of a scalar multiplication
type MultipleReport struct {
	Point  string `json:"point"`
	Scalar int    `json:"scalar"`
	Result string `json:"result"`
}

// Report is everything the command prints
type Report struct {
	Field      string          `json:"field"`
	Curve      string          `json:"curve"`
	A          uint64          `json:"a"`
	B          uint64          `json:"b"`
	GroupOrder int             `json:"group_order,omitempty"` // 0 when points were not enumerated
	Points     []PointReport   `json:"points,omitempty"`
	Multiple   *MultipleReport `json:"multiple,omitempty"`
	MulTable   [][]uint64      `json:"mul_table,omitempty"`
	InvTable   []uint64        `json:"inv_table,omitempty"` // InvTable[0] is 0 by convention
}

func main() {
	var (
		a        = flag.String("a", "8", "Curve coefficient a (decimal or 0x-hex)")
		b        = flag.String("b", "9", "Curve coefficient b used to enumerate points")
		poly     = flag.String("poly", "0x13", "Minimal polynomial of the field (0x13 is x^4 + x + 1)")
		point    = flag.String("point", "", "Point x,y to multiply by -scalar")
		scalar   = flag.Int("scalar", 0, "Scalar for -point (must be positive)")
		tables   = flag.Bool("tables", false, "Print the multiplication and inverse tables")
		jsonOut  = flag.Bool("json", false, "Emit JSON instead of text")
		logLevel = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	)
	flag.Parse()

	level, err := logging.LevelFromString(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid log level %q, using info\n", *logLevel)
		level = logging.LevelInfo
	}
	logging.SetAllLoggers(level)

	cfg := config{
		point:  *point,
		scalar: *scalar,
		tables: *tables,
		json:   *jsonOut,
	}
	for _, v := range []struct {
		name string
		src  string
		dst  *uint64
	}{{"a", *a, &cfg.a}, {"b", *b, &cfg.b}, {"poly", *poly, &cfg.poly}} {
		if *v.dst, err = parseUint(v.src); err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid -%s: %v\n", v.name, err)
			os.Exit(1)
		}
	}

	if err := run(cfg, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config, w io.Writer) error {
	report, err := buildReport(cfg)
	if err != nil {
		return err
	}

	if cfg.json {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	}

	writeText(w, report)
	return nil
}

// newField returns GF16 for x^4 + x + 1 and a generic binary field otherwise
func newField(poly uint64) (field.Field, error) {
	if poly == field.MinimalPolynomial {
		return field.NewGF16(), nil
	}
	return field.NewBinaryField(field.Degree(poly), poly)
}

func buildReport(cfg config) (*Report, error) {
	f, err := newField(cfg.poly)
	if err != nil {
		return nil, err
	}
	c := curve.New(f, f.FromUint64(cfg.a))
	b := f.FromUint64(cfg.b)

	report := &Report{
		Field: f.String(),
		Curve: c.String(),
		A:     c.A().Uint64(),
		B:     b.Uint64(),
	}

	if b.IsZero() {
		log.Warnf("b = 0 gives a singular curve")
	}

	points, err := c.Points(b)
	switch {
	case errors.Is(err, curve.ErrFieldTooLarge):
		log.Infof("skipping point enumeration: %v", err)
	case err != nil:
		return nil, err
	default:
		report.GroupOrder = len(points) + 1
		for _, p := range points {
			order, err := c.Order(p)
			if err != nil {
				return nil, err
			}
			report.Points = append(report.Points, PointReport{
				X:     p.X().Uint64(),
				Y:     p.Y().Uint64(),
				Order: order,
			})
		}
	}

	if cfg.point != "" {
		x, y, err := parsePoint(cfg.point)
		if err != nil {
			return nil, err
		}
		p := curve.NewPoint(f.FromUint64(x), f.FromUint64(y))
		if !c.Contains(p, b) {
			log.Warnf("point %s is not on the curve with b=%s", p, b)
		}

		result, err := c.ScalarMult(p, cfg.scalar)
		if err != nil {
			return nil, err
		}
		report.Multiple = &MultipleReport{
			Point:  p.String(),
			Scalar: cfg.scalar,
			Result: result.String(),
		}
	}

	if cfg.tables {
		if f.BitsPerElement() > maxTableBits {
			return nil, fmt.Errorf("tables are limited to fields of at most %d bits", maxTableBits)
		}
		report.MulTable, report.InvTable = buildTables(f)
	}

	return report, nil
}

func buildTables(f field.Field) ([][]uint64, []uint64) {
	elements := f.Elements()
	mul := make([][]uint64, len(elements))
	inv := make([]uint64, len(elements))

	for i, a := range elements {
		mul[i] = make([]uint64, len(elements))
		for j, b := range elements {
			mul[i][j] = a.Mul(b).Uint64()
		}
		if ai, err := a.Inv(); err == nil {
			inv[i] = ai.Uint64()
		}
	}

	return mul, inv
}

func writeText(w io.Writer, r *Report) {
	fmt.Fprintf(w, "Field: %s\n", r.Field)
	fmt.Fprintf(w, "Curve: %s (b = 0x%x)\n", r.Curve, r.B)

	if r.MulTable != nil {
		fmt.Fprintf(w, "\nMultiplication table:\n")
		for _, row := range r.MulTable {
			cells := make([]string, len(row))
			for j, v := range row {
				cells[j] = fmt.Sprintf("%2x", v)
			}
			fmt.Fprintf(w, "  %s\n", strings.Join(cells, " "))
		}
		fmt.Fprintf(w, "\nInverses:\n")
		for i, v := range r.InvTable[1:] {
			fmt.Fprintf(w, "  0x%x^-1 = 0x%x\n", i+1, v)
		}
	}

	if r.GroupOrder > 0 {
		fmt.Fprintf(w, "\nGroup order: %d (%d affine points + O)\n", r.GroupOrder, len(r.Points))
		for _, p := range r.Points {
			fmt.Fprintf(w, "  (0x%x, 0x%x)  order %d\n", p.X, p.Y, p.Order)
		}
	}

	if r.Multiple != nil {
		fmt.Fprintf(w, "\n%d * %s = %s\n", r.Multiple.Scalar, r.Multiple.Point, r.Multiple.Result)
	}
}

func parseUint(s string) (uint64, error) {
	return strconv.ParseUint(strings.TrimSpace(s), 0, 64)
}

func parsePoint(s string) (uint64, uint64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("point %q must have the form x,y", s)
	}
	x, err := parseUint(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid x in %q: %w", s, err)
	}
	y, err := parseUint(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid y in %q: %w", s, err)
	}
	return x, y, nil
}
