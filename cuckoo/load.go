package cuckoo

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Load inserts every line of r into t, in order. A trailing "\r" is
// stripped and blank lines are skipped. fn, if non-nil, receives the line
// number (1-based) and Placement of each insertion, including a failed one.
//
// Load stops at the first error: a key longer than MaxKeyLen, a placement
// failure, or a read error. It returns the number of strings placed.
func (t *Table) Load(r io.Reader, fn func(line int, p Placement)) (int, error) {
	sc := bufio.NewScanner(r)
	placed, line := 0, 0
	for sc.Scan() {
		line++
		key := strings.TrimSuffix(sc.Text(), "\r")
		if key == "" {
			continue
		}
		p, err := t.Insert(key)
		if fn != nil && (err == nil || p.Homeless != "") {
			fn(line, p)
		}
		if err != nil {
			return placed, fmt.Errorf("line %d: %w", line, err)
		}
		placed++
	}
	if err := sc.Err(); err != nil {
		return placed, fmt.Errorf("line %d: %w", line+1, err)
	}

	return placed, nil
}
