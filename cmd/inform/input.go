package main

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/gonum/matrix/mat64"
)

// readObservations reads whitespace-separated non-negative integers from
// the named file, or from stdin when args is empty.
func readObservations(args []string) ([]int, error) {
	var r io.Reader = os.Stdin
	name := "stdin"
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, errors.Wrap(err, "opening observations")
		}
		defer f.Close()
		r = f
		name = args[0]
	}

	var obs []int
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		o, err := strconv.Atoi(sc.Text())
		if err != nil {
			return nil, errors.Wrapf(err, "%s: observation %d", name, len(obs))
		}
		obs = append(obs, o)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	return obs, nil
}

// readMatrix reads a CSV file of floats into a dense matrix. Every row must
// have the same number of columns.
func readMatrix(path string) (*mat64.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening matrix")
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	if len(records) == 0 {
		return nil, errors.Errorf("%s: empty matrix", path)
	}

	rows, cols := len(records), len(records[0])
	data := make([]float64, 0, rows*cols)
	for i, rec := range records {
		if len(rec) != cols {
			return nil, errors.Errorf("%s: row %d has %d columns, want %d", path, i, len(rec), cols)
		}
		for j, field := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, errors.Wrapf(err, "%s: entry (%d,%d)", path, i, j)
			}
			data = append(data, v)
		}
	}
	return mat64.NewDense(rows, cols, data), nil
}

// parseWeights parses a comma-separated list of floats.
func parseWeights(s string) ([]float64, error) {
	if s == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	ws := make([]float64, len(fields))
	for i, field := range fields {
		w, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "weight %d", i)
		}
		ws[i] = w
	}
	return ws, nil
}
