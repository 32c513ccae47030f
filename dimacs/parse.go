package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads a DIMACS edge-list document (as produced by Emit) and
// returns its declared vertex count and edge list, supporting round-trip
// verification: Parse(Emit(g, name)) reconstructs the same vertex count
// and edge set g was built with.
//
// Comment lines (`c ...`) are skipped. The problem line (`p edge V E`) sets
// the returned vertex count; E is read but not otherwise validated against
// the number of `e` lines that follow. ErrMalformedDocument is returned for
// any line that is not a comment, the problem line, or a two-endpoint edge
// line.
func Parse(r io.Reader) (int, [][2]int, error) {
	scanner := bufio.NewScanner(r)

	vertexCount := -1
	var edges [][2]int

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}

		fields := strings.Fields(line)

		switch fields[0] {
		case "p":
			if len(fields) != 4 || fields[1] != "edge" {
				return 0, nil, ErrMalformedDocument
			}
			v, err := strconv.Atoi(fields[2])
			if err != nil {
				return 0, nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
			}
			vertexCount = v

		case "e":
			if len(fields) != 3 {
				return 0, nil, ErrMalformedDocument
			}
			u, err := strconv.Atoi(fields[1])
			if err != nil {
				return 0, nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
			}
			v, err := strconv.Atoi(fields[2])
			if err != nil {
				return 0, nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
			}
			edges = append(edges, [2]int{u, v})

		default:
			return 0, nil, ErrMalformedDocument
		}
	}

	if err := scanner.Err(); err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	if vertexCount < 0 {
		return 0, nil, ErrMalformedDocument
	}

	return vertexCount, edges, nil
}
