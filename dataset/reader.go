// Package dataset loads two-column numeric tables from spreadsheet and CSV
// files into the point slices the regression operations consume.
//
// Lab data for standard curves and van't Hoff analysis usually lives in a
// spreadsheet with an x column and a y column: (concentration, absorbance)
// for Beer-Lambert standard curves, (temperature, equilibrium constant) for
// van't Hoff analysis. Read parses such a file and hands back caller-owned
// points; nothing is cached or persisted, and the calculation engines never
// see the file.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/lumoslab/physchem/beerlambert"
	"github.com/lumoslab/physchem/regression"
	"github.com/lumoslab/physchem/thermo"
)

// Read loads a two-column numeric table from path, dispatching on the file
// extension (.csv or .xlsx).
//
// The first two non-empty cells of each row become one (x, y) point. A
// leading header row is skipped when its cells do not parse as numbers;
// blank rows are ignored anywhere. Any other non-numeric cell is an error
// naming the row.
func Read(path string) ([]regression.Point, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return readCSV(path)
	case ".xlsx":
		return readXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported file type %q: want .csv or .xlsx", ext)
	}
}

func readCSV(path string) ([]regression.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}

	return parseRows(rows)
}

func readXLSX(path string) ([]regression.Point, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	// First sheet, whatever its name.
	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, errors.New("workbook has no sheets")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}

	return parseRows(rows)
}

// parseRows converts raw string rows into points. The header row, when
// present, is recognized by failing to parse as numbers before any data row
// was seen.
func parseRows(rows [][]string) ([]regression.Point, error) {
	points := make([]regression.Point, 0, len(rows))

	for i, row := range rows {
		cells := trimmed(row)
		if len(cells) == 0 {
			continue
		}
		if len(cells) < 2 {
			return nil, fmt.Errorf("row %d: need two numeric columns, got %d", i+1, len(cells))
		}

		x, errX := strconv.ParseFloat(cells[0], 64)
		y, errY := strconv.ParseFloat(cells[1], 64)
		if errX != nil || errY != nil {
			if len(points) == 0 {
				// Header row.
				continue
			}
			col := cells[0]
			if errX == nil {
				col = cells[1]
			}

			return nil, fmt.Errorf("row %d: %q is not a number", i+1, col)
		}

		points = append(points, regression.Point{X: x, Y: y})
	}

	if len(points) == 0 {
		return nil, errors.New("no data rows found")
	}

	return points, nil
}

// trimmed returns the row's cells with surrounding whitespace removed and
// trailing empty cells dropped; a row of only empty cells comes back empty.
func trimmed(row []string) []string {
	cells := make([]string, 0, len(row))
	for _, cell := range row {
		cells = append(cells, strings.TrimSpace(cell))
	}
	for len(cells) > 0 && cells[len(cells)-1] == "" {
		cells = cells[:len(cells)-1]
	}

	return cells
}

// StandardCurve reinterprets generic points as Beer-Lambert standard-curve
// measurements: x is concentration (M), y is absorbance.
func StandardCurve(points []regression.Point) []beerlambert.DataPoint {
	out := make([]beerlambert.DataPoint, len(points))
	for i, p := range points {
		out[i] = beerlambert.DataPoint{Concentration: p.X, Absorbance: p.Y}
	}

	return out
}

// Observations reinterprets generic points as van't Hoff measurements:
// x is temperature (K), y is the equilibrium constant.
func Observations(points []regression.Point) []thermo.Observation {
	out := make([]thermo.Observation, len(points))
	for i, p := range points {
		out[i] = thermo.Observation{Temperature: p.X, K: p.Y}
	}

	return out
}
