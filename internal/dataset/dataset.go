// SPDX-License-Identifier: MIT

// Package dataset loads observation tables for the lvfit command.
//
// Accepted format: CSV with three numeric columns x, y, dy. An optional first
// row of non-numeric labels is skipped; lines starting with '#' are comments;
// surrounding blanks are ignored.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvfit/chisq"
)

// ErrMalformed indicates a row that is not three numeric fields.
var ErrMalformed = errors.New("dataset: malformed row")

// Load reads x,y,dy rows from r and returns validated observations.
//
// Errors: ErrMalformed (with the 1-based line number), chisq validation
// errors (ErrEmptyObservations, ErrNonPositiveSigma, …), or read errors.
func Load(r io.Reader) (chisq.Observations, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	var (
		x, y, dy []float64
		row      int
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return chisq.Observations{}, fmt.Errorf("dataset: read: %w", err)
		}
		row++
		line, _ := cr.FieldPos(0)

		vals, err := parseRecord(rec)
		if err != nil {
			if row == 1 && isHeader(rec) {
				continue
			}
			return chisq.Observations{}, fmt.Errorf("%w: line %d: %w", ErrMalformed, line, err)
		}
		x = append(x, vals[0])
		y = append(y, vals[1])
		dy = append(dy, vals[2])
	}

	return chisq.NewObservations(x, y, dy)
}

// LoadFile opens path and calls Load.
func LoadFile(path string) (chisq.Observations, error) {
	f, err := os.Open(path)
	if err != nil {
		return chisq.Observations{}, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	return Load(f)
}

func parseRecord(rec []string) ([3]float64, error) {
	var out [3]float64
	if len(rec) != 3 {
		return out, fmt.Errorf("want 3 fields, got %d", len(rec))
	}
	for i, field := range rec {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return out, fmt.Errorf("field %d: %w", i+1, err)
		}
		out[i] = v
	}

	return out, nil
}

// isHeader reports whether every field is a non-numeric label.
func isHeader(rec []string) bool {
	if len(rec) != 3 {
		return false
	}
	for _, field := range rec {
		if _, err := strconv.ParseFloat(strings.TrimSpace(field), 64); err == nil {
			return false
		}
	}

	return true
}
