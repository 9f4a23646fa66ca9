package geom

import (
	"encoding/csv"
	"errors"
	"os"
	"strconv"
	"strings"
)

// LoadCSV reads a CSV with a, b and c columns and groups every four rows
// into a set. Column detection is case-insensitive.
func LoadCSV(path string) ([]LineSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	recs, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, errors.New("empty csv")
	}
	idx := [coeffsPerLine]int{-1, -1, -1}
	for i, h := range recs[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "a":
			if idx[0] == -1 {
				idx[0] = i
			}
		case "b":
			if idx[1] == -1 {
				idx[1] = i
			}
		case "c":
			if idx[2] == -1 {
				idx[2] = i
			}
		}
	}
	if idx[0] == -1 || idx[1] == -1 || idx[2] == -1 {
		return nil, errors.New("csv: a/b/c columns not found")
	}
	var vals []float64
	for n, row := range recs[1:] {
		for _, col := range idx {
			if col >= len(row) {
				return nil, errors.New("csv: row " + strconv.Itoa(n+2) + " is short")
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(row[col]), 64)
			if err != nil {
				return nil, err
			}
			vals = append(vals, v)
		}
	}
	return groupSets(vals)
}
