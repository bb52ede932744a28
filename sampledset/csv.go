package sampledset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

/*
ReadCSV takes an io.Reader for a CSV stream and the number of classes
K, and returns a Slice parsed from it or an error. Each row must have
either 1+K columns (bin, residual_0..residual_{K-1}) or 1+2K columns
(bin, residual_0..residual_{K-1}, denominator_0..denominator_{K-1}).
There is no header row, unlike pbanos/botanic/set/csv.ReadSet, since a
sampled set has no named features to align against — only positional
residual/denominator columns.
*/
func ReadCSV(reader io.Reader, numClasses int) (Slice, error) {
	r := csv.NewReader(reader)
	var instances Slice
	for line := 1; ; line++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading sampled set CSV: line %d: %v", line, err)
		}
		inst, err := parseRow(row, numClasses)
		if err != nil {
			return nil, fmt.Errorf("reading sampled set CSV: line %d: %w", line, err)
		}
		instances = append(instances, inst)
	}
	return instances, nil
}

// ReadCSVFromFilePath opens filepath (or reads os.Stdin if filepath is
// "") and parses it with ReadCSV.
func ReadCSVFromFilePath(filepath string, numClasses int) (Slice, error) {
	var f *os.File
	var err error
	if filepath == "" {
		f = os.Stdin
	} else {
		f, err = os.Open(filepath)
		if err != nil {
			return nil, fmt.Errorf("reading sampled set: %v", err)
		}
		defer f.Close()
	}
	return ReadCSV(f, numClasses)
}

func parseRow(row []string, numClasses int) (Instance, error) {
	switch len(row) {
	case 1 + numClasses, 1 + 2*numClasses:
	default:
		return Instance{}, fmt.Errorf("expected %d or %d columns, got %d", 1+numClasses, 1+2*numClasses, len(row))
	}
	bin, err := strconv.Atoi(row[0])
	if err != nil {
		return Instance{}, fmt.Errorf("parsing bin %q: %v", row[0], err)
	}
	if bin < 0 {
		return Instance{}, fmt.Errorf("negative bin %d", bin)
	}
	residuals := make([]float64, numClasses)
	for k := 0; k < numClasses; k++ {
		v, err := strconv.ParseFloat(row[1+k], 64)
		if err != nil {
			return Instance{}, fmt.Errorf("parsing residual %q for class %d: %v", row[1+k], k, err)
		}
		residuals[k] = v
	}
	var denominators []float64
	if len(row) == 1+2*numClasses {
		denominators = make([]float64, numClasses)
		for k := 0; k < numClasses; k++ {
			v, err := strconv.ParseFloat(row[1+numClasses+k], 64)
			if err != nil {
				return Instance{}, fmt.Errorf("parsing denominator %q for class %d: %v", row[1+numClasses+k], k, err)
			}
			denominators[k] = v
		}
	}
	return Instance{Bin: bin, Residuals: residuals, Denominators: denominators}, nil
}
