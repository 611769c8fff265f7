// Package wizard finds the cheapest way, in mana, for a spell-casting
// player to defeat a boss in a turn-based fight.
//
// The player moves first. On each player turn, active effects are
// applied, then the player casts exactly one affordable spell. On each
// boss turn, effects are applied again and the boss, if still alive,
// attacks. The player loses if their hit points drop to zero or below
// or if no spell can be cast.
package wizard

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"math"

	"github.com/rogpeppe/bestfirst/astar"
)

// ErrNoSolution is returned when the player cannot win.
var ErrNoSolution = errors.New("no solution found")

// Player holds the player's resources.
type Player struct {
	HP   int16 `yaml:"hp"`
	Mana int16 `yaml:"mana"`
}

// Boss holds the boss's statistics.
type Boss struct {
	HP     int16
	Damage int16
}

// Effects holds the number of turns remaining for each timed
// effect. Zero means the effect is inactive.
type Effects struct {
	Shield   uint8
	Poison   uint8
	Recharge uint8
}

// State is a snapshot of the fight at the start of a player turn.
type State struct {
	Player  Player
	Boss    Boss
	Effects Effects
}

func (s State) String() string {
	return fmt.Sprintf("player hp=%d mana=%d; boss hp=%d; shield=%d poison=%d recharge=%d",
		s.Player.HP, s.Player.Mana, s.Boss.HP,
		s.Effects.Shield, s.Effects.Poison, s.Effects.Recharge)
}

// Spell describes one spell. Instant spells (those with zero Turns)
// deal Damage and restore Heal hit points when cast. Timed spells
// take effect at the start of each of the following Turns turns:
// Shield gives the player Armor, Poison deals Damage to the boss and
// Recharge gives the player Mana.
type Spell struct {
	Name   string `yaml:"name"`
	Cost   int16  `yaml:"cost"`
	Damage int16  `yaml:"damage"`
	Heal   int16  `yaml:"heal"`
	Armor  int16  `yaml:"armor"`
	Mana   int16  `yaml:"mana"`
	Turns  uint8  `yaml:"turns"`
}

// Rules holds the spell book. The order in which spells are tried
// is fixed: missile, shield, poison, recharge, drain.
type Rules struct {
	Missile  Spell `yaml:"missile"`
	Shield   Spell `yaml:"shield"`
	Poison   Spell `yaml:"poison"`
	Recharge Spell `yaml:"recharge"`
	Drain    Spell `yaml:"drain"`
}

// DefaultRules holds the standard spell book.
var DefaultRules = Rules{
	Missile:  Spell{Name: "Magic Missile", Cost: 53, Damage: 4},
	Shield:   Spell{Name: "Shield", Cost: 113, Armor: 7, Turns: 6},
	Poison:   Spell{Name: "Poison", Cost: 173, Damage: 3, Turns: 6},
	Recharge: Spell{Name: "Recharge", Cost: 229, Mana: 101, Turns: 5},
	Drain:    Spell{Name: "Drain", Cost: 73, Damage: 2, Heal: 2},
}

// Spells returns all the spells in casting order.
func (r *Rules) Spells() []Spell {
	return []Spell{r.Missile, r.Shield, r.Poison, r.Recharge, r.Drain}
}

// SpellByCost returns the spell costing the given amount of mana.
// Validate guarantees that costs identify spells uniquely. A
// transition with zero cost is the boss dying to an effect before the
// player casts anything, and has no spell.
func (r *Rules) SpellByCost(cost int) (Spell, bool) {
	for _, sp := range r.Spells() {
		if int(sp.Cost) == cost {
			return sp, true
		}
	}
	return Spell{}, false
}

// MaxStat bounds every hit point, mana and spell value accepted by
// Validate, so that fight arithmetic stays well within int16.
const MaxStat = 10000

// Validate checks that every spell has a positive cost within MaxStat,
// that no two spells cost the same, and that all other spell values
// lie between zero and MaxStat.
func (r *Rules) Validate() error {
	costs := make(map[int16]string)
	for _, sp := range r.Spells() {
		if sp.Cost <= 0 || sp.Cost > MaxStat {
			return fmt.Errorf("%w: spell %q: cost %d out of range [1, %d]", ErrInput, sp.Name, sp.Cost, MaxStat)
		}
		if other, ok := costs[sp.Cost]; ok {
			return fmt.Errorf("%w: spells %q and %q both cost %d", ErrInput, other, sp.Name, sp.Cost)
		}
		costs[sp.Cost] = sp.Name
		for _, v := range []int16{sp.Damage, sp.Heal, sp.Armor, sp.Mana} {
			if v < 0 || v > MaxStat {
				return fmt.Errorf("%w: spell %q: value %d out of range [0, %d]", ErrInput, sp.Name, v, MaxStat)
			}
		}
	}
	return nil
}

// Validate checks that the player starts alive and that both hit
// points and mana are within MaxStat.
func (p Player) Validate() error {
	if p.HP <= 0 || p.HP > MaxStat {
		return fmt.Errorf("%w: player hit points %d out of range [1, %d]", ErrInput, p.HP, MaxStat)
	}
	if p.Mana < 0 || p.Mana > MaxStat {
		return fmt.Errorf("%w: player mana %d out of range [0, %d]", ErrInput, p.Mana, MaxStat)
	}
	return nil
}

// Game is an astar.Problem over fight states. The cost of each
// transition is the mana spent on it.
type Game struct {
	// Rules holds the spell book. If it is nil, DefaultRules is used.
	Rules *Rules

	// Hard makes the player lose one hit point at the start of
	// every player turn, before any effects apply.
	Hard bool
}

var _ astar.Problem[State, int] = (*Game)(nil)

func (g *Game) rules() *Rules {
	if g.Rules != nil {
		return g.Rules
	}
	return &DefaultRules
}

// Successors implements astar.Problem.Successors.
func (g *Game) Successors(s State) iter.Seq2[State, int] {
	return func(yield func(State, int) bool) {
		r := g.rules()
		if g.Hard {
			s.Player.HP--
			if s.Player.HP <= 0 {
				return
			}
		}
		if !r.applyEffects(&s) {
			// The boss died before the player could cast anything.
			yield(s, 0)
			return
		}
		for i, sp := range r.Spells() {
			if s.Player.Mana < sp.Cost {
				continue
			}
			next := s
			next.Player.Mana -= sp.Cost
			if timer := next.Effects.timer(i); timer != nil {
				if *timer != 0 {
					continue
				}
				*timer = sp.Turns
			} else {
				next.Boss.HP -= sp.Damage
				next.Player.HP = addStat(next.Player.HP, sp.Heal)
			}
			r.bossTurn(&next)
			if next.Player.HP <= 0 {
				continue
			}
			if !yield(next, int(sp.Cost)) {
				return
			}
		}
	}
}

// Heuristic implements astar.Problem.Heuristic. No useful lower
// bound on the remaining mana is known, so the search is a uniform
// cost search.
func (g *Game) Heuristic(State) int {
	return 0
}

// IsGoal implements astar.Problem.IsGoal.
func (g *Game) IsGoal(s State) bool {
	return s.Boss.HP <= 0
}

// spell indexes, in casting order.
const (
	missile = iota
	shield
	poison
	recharge
	drain
)

// timer returns the timer for the spell with the given index,
// or nil if the spell is not a timed one.
func (e *Effects) timer(spell int) *uint8 {
	switch spell {
	case shield:
		return &e.Shield
	case poison:
		return &e.Poison
	case recharge:
		return &e.Recharge
	}
	return nil
}

// applyEffects applies the active effects to s and counts them down.
// It reports false, leaving the remaining effects unapplied, if the
// boss is killed by poison.
func (r *Rules) applyEffects(s *State) bool {
	if s.Effects.Poison != 0 {
		s.Boss.HP -= r.Poison.Damage
		if s.Boss.HP <= 0 {
			return false
		}
	}
	if s.Effects.Recharge != 0 {
		s.Player.Mana = addStat(s.Player.Mana, r.Recharge.Mana)
	}
	countDown(&s.Effects.Shield)
	countDown(&s.Effects.Poison)
	countDown(&s.Effects.Recharge)
	return true
}

// addStat returns a+b, saturating at math.MaxInt16 so that repeated
// healing or recharging cannot wrap around.
func addStat(a, b int16) int16 {
	return int16(min(int32(a)+int32(b), math.MaxInt16))
}

func countDown(t *uint8) {
	if *t != 0 {
		*t--
	}
}

// bossTurn plays the boss's turn.
func (r *Rules) bossTurn(s *State) {
	if !r.applyEffects(s) || s.Boss.HP <= 0 {
		return
	}
	damage := s.Boss.Damage
	if s.Effects.Shield != 0 {
		damage = max(damage-r.Shield.Armor, 1)
	}
	s.Player.HP -= damage
}

// Options configures a fight.
type Options struct {
	// Rules holds the spell book. If it is nil, DefaultRules is used.
	Rules *Rules

	// Hard selects hard mode. See Game.Hard.
	Hard bool

	// Logger receives a summary of the search at debug level.
	Logger *slog.Logger
}

// MinMana returns the cheapest winning sequence of states for a fight
// between the given player and boss. The mana spent is the cost of the
// returned path. The player and the rules must pass Validate.
func MinMana(player Player, boss Boss, opts Options) (astar.Path[State, int], error) {
	if err := player.Validate(); err != nil {
		return nil, err
	}
	if opts.Rules != nil {
		if err := opts.Rules.Validate(); err != nil {
			return nil, err
		}
	}
	var engineOpts []astar.Option
	if opts.Logger != nil {
		engineOpts = append(engineOpts, astar.WithLogger(opts.Logger))
	}
	e := astar.New[State, int](engineOpts...)
	start := State{
		Player: player,
		Boss:   boss,
	}
	path, ok := e.Solve(start, &Game{
		Rules: opts.Rules,
		Hard:  opts.Hard,
	})
	if !ok {
		return nil, fmt.Errorf("player %d/%d against boss %d/%d: %w",
			player.HP, player.Mana, boss.HP, boss.Damage, ErrNoSolution)
	}
	return path, nil
}
