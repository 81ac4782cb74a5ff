package motif

import (
	"errors"
	"testing"
)

func TestCompile_BaseSets(t *testing.T) {
	tests := []struct {
		sym  string
		want string
	}{
		{"A", "A"}, {"C", "C"}, {"G", "G"}, {"T", "T"},
		{"U", "T"}, // RNA normalizes to T
		{"M", "AC"}, {"R", "AG"}, {"W", "AT"}, {"S", "CG"},
		{"Y", "CT"}, {"K", "GT"}, {"V", "ACG"}, {"H", "ACT"},
		{"D", "AGT"}, {"B", "CGT"}, {"N", "ACGT"},
		{"n", "ACGT"}, // case-insensitive
		{"r", "AG"},
	}
	for _, tt := range tests {
		r, err := Compile(tt.sym)
		if err != nil {
			t.Fatalf("Compile(%q): %v", tt.sym, err)
		}
		if r.Len() != 1 {
			t.Fatalf("Compile(%q).Len() = %d, want 1", tt.sym, r.Len())
		}
		if got := r.Bases(0); got != tt.want {
			t.Errorf("Compile(%q).Bases(0) = %q, want %q", tt.sym, got, tt.want)
		}
	}
}

func TestCompile_LengthAndNormalization(t *testing.T) {
	r := MustCompile("gcaug")
	if r.Len() != 5 {
		t.Fatalf("len = %d, want 5", r.Len())
	}
	if r.String() != "GCAUG" {
		t.Fatalf("String() = %q, want GCAUG", r.String())
	}
	if string(r.literal()) != "GCATG" {
		t.Fatalf("literal = %q, want GCATG", r.literal())
	}
	if !r.exact {
		t.Fatalf("GCAUG should compile to an exact rule")
	}
	if MustCompile("GAK").exact {
		t.Fatalf("GAK must not be exact")
	}
}

func TestCompile_InvalidSymbol(t *testing.T) {
	for _, spec := range []string{"GAX", "AC-G", "AC GT", "Z", "ACGTÉ", "ſ"} {
		_, err := Compile(spec)
		if !errors.Is(err, ErrInvalidMotifSymbol) {
			t.Errorf("Compile(%q) err = %v, want ErrInvalidMotifSymbol", spec, err)
		}
	}
	_, err := Compile("GAX")
	var se *SymbolError
	if !errors.As(err, &se) || se.Pos != 3 || se.Symbol != 'X' {
		t.Fatalf("want SymbolError at 3 for X, got %#v", err)
	}
}

func TestCompile_Empty(t *testing.T) {
	if _, err := Compile(""); !errors.Is(err, ErrEmptyMotif) {
		t.Fatalf("want ErrEmptyMotif, got %v", err)
	}
}

func TestIUPACMask_Snapshot(t *testing.T) {
	if iupacMask['A'] != 1 || iupacMask['C'] != 2 || iupacMask['G'] != 4 || iupacMask['T'] != 8 {
		t.Fatalf("canonical masks corrupted: A=%d C=%d G=%d T=%d", iupacMask['A'], iupacMask['C'], iupacMask['G'], iupacMask['T'])
	}
	if iupacMask['U'] != iupacMask['T'] || iupacMask['u'] != iupacMask['t'] {
		t.Fatalf("U/u must equal T/t")
	}
	if iupacMask['R'] != (1|4) || iupacMask['Y'] != (2|8) || iupacMask['N'] != (1|2|4|8) {
		t.Fatalf("ambiguity masks corrupted: R=%d Y=%d N=%d", iupacMask['R'], iupacMask['Y'], iupacMask['N'])
	}
	if iupacMask['r'] != iupacMask['R'] || iupacMask['n'] != iupacMask['N'] {
		t.Fatalf("lowercase masks must mirror uppercase")
	}
	if iupacMask['X'] != 0 || iupacMask['-'] != 0 {
		t.Fatalf("unknown symbols must have empty masks")
	}
}
