// SPDX-License-Identifier: MIT

// Package distance - loaders for JSON and TSPLIB distance data.

package distance

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Load decodes a JSON object of objects, {"A": {"B": 3, ...}, ...}, into a
// Table. Non-integer or negative weights are rejected, and so is anything
// after the object.
func Load(r io.Reader) (*Table, error) {
	var m map[string]map[string]int64
	dec := json.NewDecoder(r)
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataLoad, err)
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after the distance object", ErrDataLoad)
	}

	return New(m)
}

// LoadFile opens path and decodes it with Load.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataLoad, err)
	}
	defer f.Close()

	return Load(f)
}

// LoadTSPLIB parses an explicit TSPLIB instance (TSP or ATSP) whose
// EDGE_WEIGHT_SECTION is a FULL_MATRIX of integers. Nodes are named "1".."n"
// following the TSPLIB numbering. Diagonal values are ignored. Only the
// "DIMENSION" header and the weight section are interpreted.
//
// Complexity: O(n²).
func LoadTSPLIB(r io.Reader) (*Table, error) {
	var (
		scanner   = bufio.NewScanner(r)
		dimension int
		reading   bool
		values    []int64
		err       error
	)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "EOF") {
			break
		}
		if reading {
			for _, field := range strings.Fields(line) {
				v, perr := strconv.ParseInt(field, 10, 64)
				if perr != nil {
					return nil, fmt.Errorf("%w: weight %q: %v", ErrDataLoad, field, perr)
				}
				values = append(values, v)
			}
			continue
		}
		if strings.HasPrefix(line, "DIMENSION") {
			parts := strings.SplitN(line, ":", 2)
			if len(parts) != 2 {
				return nil, fmt.Errorf("%w: malformed DIMENSION line %q", ErrDataLoad, line)
			}
			if dimension, err = strconv.Atoi(strings.TrimSpace(parts[1])); err != nil {
				return nil, fmt.Errorf("%w: dimension: %v", ErrDataLoad, err)
			}
		}
		if strings.HasPrefix(line, "EDGE_WEIGHT_FORMAT") && !strings.Contains(line, "FULL_MATRIX") {
			return nil, fmt.Errorf("%w: unsupported %s", ErrDataLoad, line)
		}
		if strings.HasPrefix(line, "EDGE_WEIGHT_SECTION") {
			reading = true
		}
	}
	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataLoad, err)
	}
	if dimension <= 0 {
		return nil, fmt.Errorf("%w: missing or non-positive DIMENSION", ErrDataLoad)
	}
	if len(values)%dimension != 0 || len(values)/dimension != dimension {
		return nil, fmt.Errorf("%w: matrix holds %d values, want %d x %d", ErrDataLoad, len(values), dimension, dimension)
	}

	m := make(map[string]map[string]int64, dimension)
	var i, j int
	for i = 0; i < dimension; i++ {
		row := make(map[string]int64, dimension-1)
		for j = 0; j < dimension; j++ {
			if i == j {
				continue
			}
			row[strconv.Itoa(j+1)] = values[i*dimension+j]
		}
		m[strconv.Itoa(i+1)] = row
	}

	return New(m)
}
