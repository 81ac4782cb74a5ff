package motif

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestLoad_DedupesAndNormalizes(t *testing.T) {
	in := "ygcy\n\n# comment\nGCAUG\nYGCY\ncatag\n  GCAUG  \n"
	rules, err := Load(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []string{"YGCY", "GCAUG", "CATAG"}
	if got := Specs(rules); !reflect.DeepEqual(got, want) {
		t.Fatalf("Specs = %v, want %v", got, want)
	}
}

func TestLoad_InvalidMotifNamesLine(t *testing.T) {
	_, err := Load(strings.NewReader("ACGT\nAXG\n"))
	if !errors.Is(err, ErrInvalidMotifSymbol) {
		t.Fatalf("want ErrInvalidMotifSymbol, got %v", err)
	}
	if !strings.Contains(err.Error(), "motifs:2") {
		t.Fatalf("error should name the line: %v", err)
	}
}

func TestLoad_Empty(t *testing.T) {
	if _, err := Load(strings.NewReader("\n# none\n")); !errors.Is(err, ErrNoMotifs) {
		t.Fatalf("want ErrNoMotifs, got %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "motifs.txt")
	if err := os.WriteFile(fn, []byte("GCAUG\nCATAG\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	rules, err := LoadFile(fn)
	if err != nil || len(rules) != 2 {
		t.Fatalf("LoadFile: %v %v", rules, err)
	}
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatalf("expected open error")
	}
}
