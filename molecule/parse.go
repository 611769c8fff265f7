package molecule

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInput is returned, wrapped, for malformed puzzle input.
var ErrInput = errors.New("invalid input")

// Replacement is a single forward rewrite rule: any occurrence of
// From may be replaced by Into.
type Replacement struct {
	From string
	Into string
}

// Input holds a parsed puzzle: a list of replacements and the
// molecule that must be produced.
type Input struct {
	Replacements []Replacement
	Target       string
}

// Parse parses puzzle text of the form
//
//	H => HO
//	e => H
//
//	HOH
//
// that is, one replacement per line, a blank line, and the target
// molecule.
func Parse(text string) (*Input, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	var in Input
	i := 0
	for ; ; i++ {
		if i >= len(lines) {
			return nil, fmt.Errorf("%w: unexpected end of input", ErrInput)
		}
		line := lines[i]
		if line == "" {
			break
		}
		from, into, ok := strings.Cut(line, " => ")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: expected \"X => Y\", got %q", ErrInput, i+1, line)
		}
		if from == "" || into == "" || strings.Contains(into, " => ") {
			return nil, fmt.Errorf("%w: line %d: malformed replacement %q", ErrInput, i+1, line)
		}
		in.Replacements = append(in.Replacements, Replacement{From: from, Into: into})
	}
	i++
	if i >= len(lines) || lines[i] == "" {
		return nil, fmt.Errorf("%w: missing target molecule", ErrInput)
	}
	in.Target = lines[i]
	if i+1 < len(lines) {
		return nil, fmt.Errorf("%w: line %d: unexpected text after target molecule", ErrInput, i+2)
	}
	return &in, nil
}

// Calibrate returns the number of distinct molecules that can be
// made from the target by applying exactly one replacement once.
func Calibrate(in *Input) (int, error) {
	sys, err := Compile(in.Replacements)
	if err != nil {
		return 0, err
	}
	target, err := sys.Encode(in.Target)
	if err != nil {
		return 0, err
	}
	seen := make(map[string]bool)
	for _, r := range sys.forward {
		for i, a := range target {
			if a != r.from {
				continue
			}
			m := make(Molecule, 0, len(target)-1+len(r.into))
			m = append(m, target[:i]...)
			m = append(m, r.into...)
			m = append(m, target[i+1:]...)
			seen[string(m)] = true
		}
	}
	return len(seen), nil
}
