// core/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
)

// ErrEmptyOrMalformed is returned when sequence data precedes the first
// header or when the input holds no records at all.
var ErrEmptyOrMalformed = errors.New("empty or malformed FASTA input")

// Record is one FASTA entry. ID is the header line without the leading '>'
// (description included); Seq keeps the input's case.
type Record struct {
	ID  string
	Seq []byte
}

// ReadFile parses every record in path (see Open for "-" and gzip).
func ReadFile(ctx context.Context, path string) ([]Record, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	recs, err := Read(ctx, rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}

// Read parses FASTA from r. Sequence lines are trimmed and concatenated until
// the next header; blank lines are skipped. Cancellation via ctx is checked
// between lines.
func Read(ctx context.Context, r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		out    []Record
		cur    *Record
		lineNo int
	)
	for sc.Scan() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		lineNo++
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			out = append(out, Record{ID: string(bytes.TrimSpace(line[1:]))})
			cur = &out[len(out)-1]
			continue
		}
		if cur == nil {
			return nil, fmt.Errorf("line %d: sequence data before first header: %w", lineNo, ErrEmptyOrMalformed)
		}
		cur.Seq = append(cur.Seq, line...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fasta scan: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no records: %w", ErrEmptyOrMalformed)
	}
	return out, nil
}
