// core/motif/loader.go
package motif

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var ErrNoMotifs = errors.New("no motifs")

// LoadFile reads a motif list from path. See Load.
func LoadFile(path string) ([]*Rule, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	return load(fh, path)
}

// Load reads one motif per line. Blank lines and '#' comments are skipped,
// motifs are uppercased and duplicates collapse to the first occurrence.
// Every motif is compiled; the first invalid one aborts the load.
func Load(r io.Reader) ([]*Rule, error) { return load(r, "motifs") }

func load(r io.Reader, name string) ([]*Rule, error) {
	var (
		list []*Rule
		seen = map[string]bool{}
	)
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		rule, err := Compile(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, ln, err)
		}
		if seen[rule.String()] {
			continue
		}
		seen[rule.String()] = true
		list = append(list, rule)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrNoMotifs)
	}
	return list, nil
}

// Specs returns the normalized text of each rule, in order.
func Specs(rules []*Rule) []string {
	out := make([]string, len(rules))
	for i, r := range rules {
		out[i] = r.String()
	}
	return out
}
