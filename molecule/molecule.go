// Package molecule finds the fewest replacement steps needed to
// build a molecule from a single electron.
//
// Molecules are sequences of atoms, each written as an uppercase
// letter followed by any number of lowercase letters. The electron
// "e" may only appear as a molecule on its own.
//
// Rather than growing molecules forward from "e", the search runs
// the replacements in reverse, shrinking the target molecule until
// only the electron is left.
package molecule

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"slices"
	"strings"

	"github.com/rogpeppe/bestfirst/anyhash"
	"github.com/rogpeppe/bestfirst/astar"
)

// ErrNoSolution is returned when the target cannot be
// produced from the electron.
var ErrNoSolution = errors.New("no solution found")

// Atom identifies an atom within a System. The electron is always 0.
type Atom = byte

// Molecule is a compact encoding of a molecule as a sequence of atoms.
type Molecule []Atom

const (
	electron     Atom = 0
	electronName      = "e"
	maxAtoms          = 256
)

// System holds a set of replacements compiled to operate on
// encoded molecules.
type System struct {
	atoms map[string]Atom
	names []string

	// forward holds the replacements in input order.
	forward []rule
	// reverse holds the replacements ordered by decreasing
	// length of Into, so that the biggest reductions are
	// tried first.
	reverse []rule
	// maxShrink holds the largest number of atoms removed
	// by a single reverse replacement.
	maxShrink int
}

type rule struct {
	from Atom
	into Molecule
}

// Compile compiles a set of replacements. Each replacement must
// replace a single atom; nothing may be replaced by the electron.
func Compile(replacements []Replacement) (*System, error) {
	sys := &System{
		atoms: map[string]Atom{electronName: electron},
		names: []string{electronName},
	}
	for _, r := range replacements {
		from, err := sys.intern(r.From)
		if err != nil {
			return nil, fmt.Errorf("replacement %q: %w", r.From+" => "+r.Into, err)
		}
		if len(from) != 1 {
			return nil, fmt.Errorf("%w: replacement %q: can only replace a single atom", ErrInput, r.From+" => "+r.Into)
		}
		into, err := sys.intern(r.Into)
		if err != nil {
			return nil, fmt.Errorf("replacement %q: %w", r.From+" => "+r.Into, err)
		}
		if slices.Contains(into, electron) {
			return nil, fmt.Errorf("%w: replacement %q: cannot produce an electron", ErrInput, r.From+" => "+r.Into)
		}
		sys.forward = append(sys.forward, rule{from: from[0], into: into})
		if shrink := len(into) - 1; shrink > sys.maxShrink {
			sys.maxShrink = shrink
		}
	}
	sys.reverse = slices.Clone(sys.forward)
	slices.SortStableFunc(sys.reverse, func(a, b rule) int {
		return cmp.Compare(len(b.into), len(a.into))
	})
	return sys, nil
}

// Encode returns the encoding of the molecule s. Atoms that no
// replacement mentions are given new codes; they can never be
// reduced.
func (sys *System) Encode(s string) (Molecule, error) {
	return sys.intern(s)
}

// Decode returns the textual form of m.
func (sys *System) Decode(m Molecule) string {
	var sb strings.Builder
	for _, a := range m {
		sb.WriteString(sys.names[a])
	}
	return sb.String()
}

// intern encodes s, allocating new atoms as needed.
func (sys *System) intern(s string) (Molecule, error) {
	names, err := splitAtoms(s)
	if err != nil {
		return nil, err
	}
	m := make(Molecule, len(names))
	for i, name := range names {
		a, ok := sys.atoms[name]
		if !ok {
			if len(sys.names) == maxAtoms {
				return nil, fmt.Errorf("%w: too many distinct atoms", ErrInput)
			}
			a = Atom(len(sys.names))
			sys.atoms[name] = a
			sys.names = append(sys.names, name)
		}
		m[i] = a
	}
	return m, nil
}

// splitAtoms splits s into its atom names.
func splitAtoms(s string) ([]string, error) {
	if s == electronName {
		return []string{electronName}, nil
	}
	if s == "" {
		return nil, fmt.Errorf("%w: empty molecule", ErrInput)
	}
	var names []string
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == 'e':
			return nil, fmt.Errorf("%w: electron inside molecule %q", ErrInput, s)
		case c < 'A' || c > 'Z':
			return nil, fmt.Errorf("%w: molecule %q: expected uppercase letter at offset %d", ErrInput, s, i)
		}
		j := i + 1
		for j < len(s) && s[j] >= 'a' && s[j] <= 'z' {
			j++
		}
		names = append(names, s[i:j])
		i = j
	}
	return names, nil
}

// Options configures a search.
type Options struct {
	// Exact makes the search consider every position at which each
	// replacement can be undone and use a heuristic that never
	// overestimates. The result is then guaranteed minimal, at the
	// cost of a much larger search.
	//
	// By default only the leftmost match of each replacement is
	// undone and the remaining length is used as the estimate, which
	// is fast on real puzzle inputs.
	Exact bool

	// Logger receives a summary of the search at debug level.
	Logger *slog.Logger
}

// Search is an astar.Problem over encoded molecules.
type Search struct {
	sys   *System
	exact bool
}

var _ astar.Problem[Molecule, int] = (*Search)(nil)

// NewSearch returns a search over the replacements in sys.
func NewSearch(sys *System, exact bool) *Search {
	return &Search{
		sys:   sys,
		exact: exact,
	}
}

// Successors implements astar.Problem.Successors by undoing one
// replacement. A molecule is only reduced to the electron when the
// whole molecule matches, because the electron never appears inside
// a larger molecule.
func (s *Search) Successors(m Molecule) iter.Seq2[Molecule, int] {
	return func(yield func(Molecule, int) bool) {
		for _, r := range s.sys.reverse {
			if r.from == electron {
				if bytes.Equal(m, r.into) && !yield(Molecule{electron}, 1) {
					return
				}
				continue
			}
			for off := 0; off+len(r.into) <= len(m); {
				i := bytes.Index(m[off:], r.into)
				if i < 0 {
					break
				}
				i += off
				next := make(Molecule, 0, len(m)-len(r.into)+1)
				next = append(next, m[:i]...)
				next = append(next, r.from)
				next = append(next, m[i+len(r.into):]...)
				if !yield(next, 1) {
					return
				}
				if !s.exact {
					break
				}
				off = i + 1
			}
		}
	}
}

// Heuristic implements astar.Problem.Heuristic.
func (s *Search) Heuristic(m Molecule) int {
	remaining := len(m) - 1
	if !s.exact || s.sys.maxShrink <= 1 {
		return remaining
	}
	return (remaining + s.sys.maxShrink - 1) / s.sys.maxShrink
}

// IsGoal implements astar.Problem.IsGoal.
func (s *Search) IsGoal(m Molecule) bool {
	return len(m) == 1 && m[0] == electron
}

// MinSteps returns the shortest sequence of molecules leading from
// the electron to the target, along with the system used to encode
// them. The number of steps is the cost of the returned path.
//
// The path is in search order, from the target down to the electron.
func MinSteps(in *Input, opts Options) (astar.Path[Molecule, int], *System, error) {
	sys, err := Compile(in.Replacements)
	if err != nil {
		return nil, nil, err
	}
	target, err := sys.Encode(in.Target)
	if err != nil {
		return nil, nil, err
	}
	var engineOpts []astar.Option
	if opts.Logger != nil {
		engineOpts = append(engineOpts, astar.WithLogger(opts.Logger))
	}
	e := astar.NewHashed[Molecule, int](anyhash.SliceHasher[Molecule, Atom]{}, engineOpts...)
	path, ok := e.Solve(target, NewSearch(sys, opts.Exact))
	if !ok {
		return nil, nil, fmt.Errorf("molecule %q: %w", in.Target, ErrNoSolution)
	}
	return path, sys, nil
}
