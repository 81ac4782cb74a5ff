// internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "motifmark/...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	// The core never reaches into app plumbing; the renderer only consumes
	// layout geometry.
	bans := map[string][]string{
		"motifmark/core/": {"motifmark/internal/", "motifmark/cmd/"},
		"motifmark/core/layout": {
			"motifmark/core/fasta", "motifmark/core/record", "motifmark/core/motif",
		},
		"motifmark/internal/render": {
			"motifmark/internal/app", "motifmark/internal/cli", "motifmark/internal/pipeline",
			"motifmark/core/fasta", "motifmark/core/motif", "motifmark/cmd/",
		},
		"motifmark/internal/gffout": {
			"motifmark/internal/app", "motifmark/internal/cli", "motifmark/internal/pipeline", "motifmark/cmd/",
		},
		"motifmark/internal/pipeline": {
			"motifmark/internal/app", "motifmark/internal/cli", "motifmark/internal/clibase", "motifmark/cmd/",
		},
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, "motifmark/") {
			continue
		}
		for prefix, forbidden := range bans {
			if !strings.HasPrefix(p.ImportPath, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, p.ImportPath+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
