package geom

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	coeffsPerLine = 3
	linesPerSet   = 4
	coeffsPerSet  = coeffsPerLine * linesPerSet
)

// LoadLineSets reads line sets from path. ".csv" files go through LoadCSV;
// everything else is read as whitespace-separated coefficients.
func LoadLineSets(path string) ([]LineSet, error) {
	if strings.ToLower(filepath.Ext(path)) == ".csv" {
		return LoadCSV(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseLineSets(f)
}

// ParseLineSets reads a1 b1 c1 ... a4 b4 c4 groups of twelve numbers until
// EOF. A trailing group shorter than twelve numbers is ErrIncompleteSet.
func ParseLineSets(r io.Reader) ([]LineSet, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	var vals []float64
	for sc.Scan() {
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("geom: value %d: %w", len(vals)+1, err)
		}
		vals = append(vals, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return groupSets(vals)
}

func groupSets(vals []float64) ([]LineSet, error) {
	if len(vals) == 0 {
		return nil, ErrNoData
	}
	if rem := len(vals) % coeffsPerSet; rem != 0 {
		return nil, fmt.Errorf("set %d has %d of %d values: %w",
			len(vals)/coeffsPerSet+1, rem, coeffsPerSet, ErrIncompleteSet)
	}
	sets := make([]LineSet, 0, len(vals)/coeffsPerSet)
	for s := 0; s < len(vals); s += coeffsPerSet {
		set := make(LineSet, 0, linesPerSet)
		for i := s; i < s+coeffsPerSet; i += coeffsPerLine {
			l, err := NewLine(vals[i], vals[i+1], vals[i+2])
			if err != nil {
				return nil, fmt.Errorf("set %d line %d: %w", s/coeffsPerSet+1, len(set)+1, err)
			}
			set = append(set, l)
		}
		sets = append(sets, set)
	}
	return sets, nil
}

// ParseLines reads one "a b c" line per row of text, as typed by a user.
// Blank rows are skipped; commas may separate the coefficients.
func ParseLines(text string) ([]Line, error) {
	var lines []Line
	for n, row := range strings.Split(text, "\n") {
		fields := strings.Fields(strings.ReplaceAll(row, ",", " "))
		if len(fields) == 0 {
			continue
		}
		if len(fields) != coeffsPerLine {
			return nil, fmt.Errorf("row %d: want 3 coefficients, got %d", n+1, len(fields))
		}
		var abc [coeffsPerLine]float64
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", n+1, err)
			}
			abc[i] = v
		}
		l, err := NewLine(abc[0], abc[1], abc[2])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", n+1, err)
		}
		lines = append(lines, l)
	}
	return lines, nil
}
