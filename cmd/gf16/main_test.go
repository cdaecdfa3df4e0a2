package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/01-00-11-00/gf-16-elliptic-curve-operations/curve"
	"github.com/01-00-11-00/gf-16-elliptic-curve-operations/field"
)

func defaultConfig() config {
	return config{a: 8, b: 9, poly: field.MinimalPolynomial}
}

func TestParsePoint(t *testing.T) {
	x, y, err := parsePoint("1,0")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), x)
	assert.Equal(t, uint64(0), y)

	x, y, err = parsePoint(" 0xf , 0xb ")
	require.NoError(t, err)
	assert.Equal(t, uint64(15), x)
	assert.Equal(t, uint64(11), y)

	for _, bad := range []string{"", "1", "1,2,3", "x,1", "1,-2"} {
		_, _, err := parsePoint(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestBuildReportGF16(t *testing.T) {
	report, err := buildReport(defaultConfig())
	require.NoError(t, err)

	assert.Equal(t, "GF(2^4) mod 0x13", report.Field)
	assert.Equal(t, 22, report.GroupOrder)
	require.Len(t, report.Points, 21)
	assert.Equal(t, PointReport{X: 0, Y: 11, Order: 2}, report.Points[0])
	assert.Equal(t, PointReport{X: 1, Y: 0, Order: 22}, report.Points[1])
	assert.Nil(t, report.Multiple)
	assert.Nil(t, report.MulTable)
}

func TestBuildReportMultiple(t *testing.T) {
	cfg := defaultConfig()
	cfg.point = "1,0"
	cfg.scalar = 11

	report, err := buildReport(cfg)
	require.NoError(t, err)
	require.NotNil(t, report.Multiple)
	assert.Equal(t, "(0x1, 0x0)", report.Multiple.Point)
	assert.Equal(t, "(0x0, 0xb)", report.Multiple.Result)

	cfg.scalar = 22
	report, err = buildReport(cfg)
	require.NoError(t, err)
	assert.Equal(t, "O", report.Multiple.Result)

	cfg.scalar = 0
	_, err = buildReport(cfg)
	assert.True(t, errors.Is(err, curve.ErrInvalidScalar))
}

func TestBuildReportTables(t *testing.T) {
	cfg := defaultConfig()
	cfg.tables = true

	report, err := buildReport(cfg)
	require.NoError(t, err)
	require.Len(t, report.MulTable, 16)
	assert.Equal(t, uint64(4), report.MulTable[2][2])
	assert.Equal(t, uint64(3), report.MulTable[8][2])
	assert.Equal(t, []uint64{0, 1, 9, 14, 13, 11, 7, 6, 15, 2, 12, 5, 10, 4, 3, 8}, report.InvTable)
}

func TestBuildReportOtherFields(t *testing.T) {
	// GF(2^3) with x^3 + x + 1
	cfg := config{a: 1, b: 1, poly: 0xB, tables: true}
	report, err := buildReport(cfg)
	require.NoError(t, err)
	assert.Equal(t, "GF(2^3) mod 0xb", report.Field)
	assert.Equal(t, len(report.Points)+1, report.GroupOrder)
	assert.Len(t, report.MulTable, 8)

	// GF(2^32) is too large to enumerate but still multiplies points
	cfg = config{a: 1, b: 1, poly: 0x10000008D, point: "2,3", scalar: 5}
	report, err = buildReport(cfg)
	require.NoError(t, err)
	assert.Zero(t, report.GroupOrder)
	assert.Empty(t, report.Points)
	require.NotNil(t, report.Multiple)

	cfg.tables = true
	_, err = buildReport(cfg)
	assert.Error(t, err)

	_, err = buildReport(config{poly: 1})
	assert.True(t, errors.Is(err, field.ErrInvalidField))
}

func TestRunJSON(t *testing.T) {
	cfg := defaultConfig()
	cfg.json = true

	var buf bytes.Buffer
	require.NoError(t, run(cfg, &buf))

	var report Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))
	assert.Equal(t, 22, report.GroupOrder)
	assert.Len(t, report.Points, 21)
}

func TestRunText(t *testing.T) {
	cfg := defaultConfig()
	cfg.point = "1,0"
	cfg.scalar = 2
	cfg.tables = true

	var buf bytes.Buffer
	require.NoError(t, run(cfg, &buf))

	out := buf.String()
	assert.Contains(t, out, "Field: GF(2^4) mod 0x13")
	assert.Contains(t, out, "Group order: 22 (21 affine points + O)")
	assert.Contains(t, out, "(0x1, 0x0)  order 22")
	assert.Contains(t, out, "0x2^-1 = 0x9")
	assert.Contains(t, out, "2 * (0x1, 0x0) = (0x8, 0x1)")
}
