package integration

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"motifmark/internal/app"
)

func TestRunContext_CanceledBeforeStart(t *testing.T) {
	dir := t.TempDir()
	motifs := write(t, dir, "motifs.txt", "ACGT\n")
	fa := write(t, dir, "s.fa", ">s\nacgtACGT\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out, errBuf bytes.Buffer
	if code := app.RunContext(ctx, []string{"-m", motifs, fa}, &out, &errBuf); code != 130 {
		t.Fatalf("exit %d, want 130 (stderr %s)", code, errBuf.String())
	}
	if _, err := os.Stat(filepath.Join(dir, "s.png")); !os.IsNotExist(err) {
		t.Fatalf("canceled run wrote an image")
	}
}
