package tagparse

import (
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestParse_Instrumentation(t *testing.T) {
	tests := []struct {
		tag       string
		variable  string
		functions string
		number    string
		suffix    string
	}{
		{"TIC-101", "T", "IC", "101", ""},
		{"TT-101", "T", "T", "101", ""},
		{"TV-101", "T", "V", "101", ""},
		{"PT-2003A", "P", "T", "2003", "A"},
		{"FIC205", "F", "IC", "205", ""},
		{"lt_0042", "L", "T", "0042", ""},
		{"AIT 300B", "A", "IT", "300", "B"},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			id := Parse(tt.tag)
			if id == nil {
				t.Fatalf("Parse(%q) = nil, want match", tt.tag)
			}
			if id.Equipment {
				t.Errorf("Parse(%q) matched equipment grammar, want instrumentation", tt.tag)
			}
			if id.Variable != tt.variable || id.Functions != tt.functions ||
				id.Number != tt.number || id.Suffix != tt.suffix {
				t.Errorf("Parse(%q) = %+v, want {%s %s %s %s}",
					tt.tag, *id, tt.variable, tt.functions, tt.number, tt.suffix)
			}
		})
	}
}

func TestParse_EquipmentFallback(t *testing.T) {
	tests := []struct {
		tag      string
		variable string
		number   string
		suffix   string
	}{
		{"PUMP-3A", "PUMP", "3", "A"},
		{"VALVE-12", "VALVE", "12", ""},
		{"comp_204", "COMP", "204", ""},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			id := Parse(tt.tag)
			if id == nil {
				t.Fatalf("Parse(%q) = nil, want equipment match", tt.tag)
			}
			if !id.Equipment {
				t.Fatalf("Parse(%q) matched instrumentation grammar, want equipment fallback", tt.tag)
			}
			if id.Variable != tt.variable || id.Number != tt.number || id.Suffix != tt.suffix {
				t.Errorf("Parse(%q) = %+v, want {%s %s %s}", tt.tag, *id, tt.variable, tt.number, tt.suffix)
			}
			if id.Functions != "" {
				t.Errorf("equipment tag carries function letters: %q", id.Functions)
			}
		})
	}
}

func TestParse_NoMatch(t *testing.T) {
	for _, tag := range []string{"", "101", "!!!", "TT-", "-101", "TT-101-5"} {
		if id := Parse(tag); id != nil {
			t.Errorf("Parse(%q) = %+v, want nil", tag, id)
		}
	}
}

func TestParse_LeadingZerosPreserved(t *testing.T) {
	id := Parse("LT-0042")
	if id == nil {
		t.Fatal("Parse(LT-0042) = nil")
	}
	if id.Number != "0042" {
		t.Errorf("Number = %q, want 0042", id.Number)
	}
}

func TestLoopKey_SuffixIgnored(t *testing.T) {
	a := Parse("TT-101A")
	b := Parse("TT-101B")
	if a.LoopKey() != b.LoopKey() {
		t.Errorf("redundant instruments grouped apart: %q vs %q", a.LoopKey(), b.LoopKey())
	}
	if a.LoopKey() != "T-101" {
		t.Errorf("LoopKey = %q, want T-101", a.LoopKey())
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct{ in, want string }{
		{"tt-101", "TT-101"},
		{"tt_101", "TT-101"},
		{"TT  101", "TT-101"},
		{" tic-101 ", "TIC-101"},
		{"FIC205", "FIC-205"},
		{"fic205a", "FIC-205A"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// TestReconstruct_RoundTrip verifies that decomposing and reassembling
// any parseable tag reproduces its normalized form, dashed or not.
func TestReconstruct_RoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	letter := gen.RuneRange('A', 'Z').Map(func(r rune) string { return string(r) })
	functions := gen.SliceOfN(2, gen.RuneRange('A', 'Z')).Map(func(rs []rune) string { return string(rs) })
	digits := gen.IntRange(1, 9999).Map(func(n int) string { return strconv.Itoa(n) })

	properties.Property("parse then reconstruct equals normalize", prop.ForAll(
		func(variable, funcs, number string, withDash, withSuffix bool) bool {
			tag := variable + funcs
			if withDash {
				tag += "-"
			}
			tag += number
			if withSuffix {
				tag += "A"
			}
			id := Parse(tag)
			if id == nil {
				return false
			}
			return id.Reconstruct() == Normalize(tag)
		},
		letter,
		functions,
		digits,
		gen.Bool(),
		gen.Bool(),
	))

	properties.TestingRun(t)
}
