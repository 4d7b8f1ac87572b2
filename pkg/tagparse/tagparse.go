// Package tagparse decomposes instrumentation and equipment tag strings
// into their semantic components (ISA-style measured variable, function
// letters, loop number, redundancy suffix).
//
// Parsing never fails loudly: a tag that matches neither grammar yields
// nil, which downstream classifiers treat as "the tag carries no
// structural information".
package tagparse

import (
	"regexp"
	"strings"
)

var (
	// Instrumentation grammar: variable letter, up to three function
	// letters, optional separator, loop digits, optional suffix letter.
	// e.g. TIC-101, TT101, PV-2003A. Longer letter runs are equipment
	// words (PUMP, VALVE), not ISA letter codes.
	instrumentRe = regexp.MustCompile(`^([A-Z])([A-Z]{0,2})-?([0-9]+)([A-Z])?$`)

	// Equipment grammar: looser fallback, one or more letters treated as
	// an opaque class. e.g. PUMP-3A, VALVE-12
	equipmentRe = regexp.MustCompile(`^([A-Z]+)-?([0-9]+)([A-Z])?$`)

	separatorRe = regexp.MustCompile(`[\s_]+`)

	// Inserts the canonical dash into separator-less tags (FIC205).
	undashedRe = regexp.MustCompile(`^([A-Z]+)([0-9])`)
)

// Identifier is the decomposed form of a tag string.
type Identifier struct {
	Variable  string // measured-variable letter, or the opaque letter group for equipment tags
	Functions string // ordered function-role letters (instrumentation grammar only)
	Number    string // loop number; kept as a string to preserve leading zeros
	Suffix    string // optional trailing letter distinguishing redundant instruments
	Equipment bool   // true when only the looser equipment grammar matched
}

// Normalize upper-cases a tag, collapses runs of whitespace and
// underscores into a single dash separator, and inserts the dash into
// separator-less tags (FIC205 becomes FIC-205). Normalized tags
// round-trip through Parse and Reconstruct unchanged.
func Normalize(tag string) string {
	tag = strings.ToUpper(strings.TrimSpace(tag))
	tag = separatorRe.ReplaceAllString(tag, "-")
	return undashedRe.ReplaceAllString(tag, "$1-$2")
}

// Parse decomposes a tag string. It tries the instrumentation grammar
// first and falls back to the equipment grammar. Returns nil when
// neither matches (including for empty input); it never returns an
// error because malformed tags are expected in real inventories.
func Parse(tag string) *Identifier {
	if tag == "" {
		return nil
	}
	norm := Normalize(tag)

	if m := instrumentRe.FindStringSubmatch(norm); m != nil {
		return &Identifier{
			Variable:  m[1],
			Functions: m[2],
			Number:    m[3],
			Suffix:    m[4],
		}
	}
	if m := equipmentRe.FindStringSubmatch(norm); m != nil {
		return &Identifier{
			Variable:  m[1],
			Number:    m[2],
			Suffix:    m[3],
			Equipment: true,
		}
	}
	return nil
}

// LoopKey returns the loop grouping key: variable code plus loop number.
// Two assets are in the same loop iff their keys are equal; the suffix
// is deliberately excluded so redundant instruments group together.
func (id *Identifier) LoopKey() string {
	return id.Variable + "-" + id.Number
}

// HasFunction reports whether the tag carries the given function letter.
func (id *Identifier) HasFunction(letter byte) bool {
	return strings.IndexByte(id.Functions, letter) >= 0
}

// Reconstruct reassembles the canonical dashed tag from the decomposed
// components; it equals Normalize of the original input.
func (id *Identifier) Reconstruct() string {
	return id.Variable + id.Functions + "-" + id.Number + id.Suffix
}

// VariableName maps a measured-variable letter to its usual process
// meaning. Unknown letters map to a generic name so loop records always
// carry something displayable.
func VariableName(code string) string {
	switch code {
	case "T":
		return "Temperature"
	case "P":
		return "Pressure"
	case "F":
		return "Flow"
	case "L":
		return "Level"
	case "A":
		return "Analysis"
	case "S":
		return "Speed"
	case "V":
		return "Vibration"
	case "H":
		return "Hand"
	case "J":
		return "Power"
	case "E":
		return "Voltage"
	case "I":
		return "Current"
	case "W":
		return "Weight"
	case "D":
		return "Density"
	default:
		return "Process Variable"
	}
}
