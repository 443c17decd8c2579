// Package lcio reads light curves from CSV, XLSX, or a JSON array-of-triples
// document into (t, m, w) arrays. A light curve has a fixed three-column
// (t, m, w) schema, so this has no need for the column-type-inference
// machinery a general tabular-dataset reader would carry.
package lcio

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"github.com/xuri/excelize/v2"
)

// LightCurve is a light curve read from disk, plus a free-form metadata
// blob (e.g. an object identifier) sourced from a sidecar JSON file, not
// used numerically.
type LightCurve struct {
	T, M, W  []float64
	Metadata map[string]string
}

// Reader reads a light curve file, dispatching on file extension.
type Reader struct {
	path   string
	format string // "csv", "xlsx", or "json"
}

// NewReader builds a Reader for path, inferring its format from the file
// extension (.csv, .xlsx/.xls, .json).
func NewReader(path string) *Reader {
	ext := strings.ToLower(filepath.Ext(path))
	format := "csv"
	switch ext {
	case ".xlsx", ".xls":
		format = "xlsx"
	case ".json":
		format = "json"
	}
	return &Reader{path: path, format: format}
}

// Read loads the light curve, expecting three numeric columns per row
// (time, magnitude, weight) with a header row for CSV/XLSX. The weight
// column is optional: if no data row carries a weight the light curve is
// unweighted; otherwise every row gets a weight, and a row without one
// gets weight 0.
func (r *Reader) Read() (*LightCurve, error) {
	log.Printf("[lcio] reading %s light curve: %s", r.format, r.path)
	if _, err := os.Stat(r.path); os.IsNotExist(err) {
		return nil, fmt.Errorf("light curve file not found: %s", r.path)
	}

	switch r.format {
	case "csv":
		return r.readCSV()
	case "xlsx":
		return r.readXLSX()
	case "json":
		return r.readJSON()
	default:
		return nil, fmt.Errorf("unsupported light curve format: %s", r.format)
	}
}

func (r *Reader) readCSV() (*LightCurve, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("opening CSV light curve: %w", err)
	}
	defer f.Close()

	start := time.Now()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV light curve: %w", err)
	}
	log.Printf("[lcio] CSV read in %.2fms (%d rows)", float64(time.Since(start).Nanoseconds())/1e6, len(rows))
	return rowsToLightCurve(rows)
}

func (r *Reader) readXLSX() (*LightCurve, error) {
	start := time.Now()
	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("opening XLSX light curve: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		return nil, fmt.Errorf("reading XLSX light curve Sheet1: %w", err)
	}
	log.Printf("[lcio] XLSX read in %.2fms (%d rows)", float64(time.Since(start).Nanoseconds())/1e6, len(rows))
	return rowsToLightCurve(rows)
}

func rowsToLightCurve(rows [][]string) (*LightCurve, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("light curve file must have a header row and at least one data row")
	}
	dataRows := rows[1:]
	lc := &LightCurve{
		T: make([]float64, 0, len(dataRows)),
		M: make([]float64, 0, len(dataRows)),
	}
	hasWeights := false
	for _, row := range dataRows {
		if len(row) >= 3 && strings.TrimSpace(row[2]) != "" {
			hasWeights = true
			break
		}
	}
	if hasWeights {
		lc.W = make([]float64, 0, len(dataRows))
	}
	for i, row := range dataRows {
		if len(row) < 2 {
			return nil, fmt.Errorf("light curve row %d: expected at least 2 columns (t, m)", i+2)
		}
		t, err := strconv.ParseFloat(strings.TrimSpace(row[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("light curve row %d: invalid time value %q: %w", i+2, row[0], err)
		}
		m, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("light curve row %d: invalid magnitude value %q: %w", i+2, row[1], err)
		}
		lc.T = append(lc.T, t)
		lc.M = append(lc.M, m)
		if hasWeights {
			var w float64
			if len(row) >= 3 && strings.TrimSpace(row[2]) != "" {
				w, err = strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
				if err != nil {
					return nil, fmt.Errorf("light curve row %d: invalid weight value %q: %w", i+2, row[2], err)
				}
			}
			lc.W = append(lc.W, w)
		}
	}
	return lc, nil
}

func (r *Reader) readJSON() (*LightCurve, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("reading JSON light curve: %w", err)
	}
	result := gjson.ParseBytes(raw)
	triples := result.Get("observations")
	if !triples.Exists() {
		triples = result
	}
	if !triples.IsArray() {
		return nil, fmt.Errorf("JSON light curve: expected an array of [t, m, w?] triples")
	}

	lc := &LightCurve{}
	triples.ForEach(func(_, entry gjson.Result) bool {
		values := entry.Array()
		if len(values) < 2 {
			return true
		}
		lc.T = append(lc.T, values[0].Float())
		lc.M = append(lc.M, values[1].Float())
		if len(values) >= 3 {
			lc.W = append(lc.W, values[2].Float())
		}
		return true
	})
	return lc, nil
}

// LoadSidecarMetadata reads a free-form JSON metadata file alongside a
// light curve and extracts a single field (e.g. "object_id") using a
// gjson path expression, for inclusion in a report without being used
// numerically.
func LoadSidecarMetadata(path, field string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading sidecar metadata: %w", err)
	}
	value := gjson.GetBytes(raw, field)
	if !value.Exists() {
		return "", fmt.Errorf("sidecar metadata: field %q not found", field)
	}
	return value.String(), nil
}
