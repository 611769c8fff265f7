package wizard_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/rogpeppe/bestfirst/wizard"
)

var minManaTests = []struct {
	player wizard.Player
	boss   wizard.Boss
	hard   bool
	want   int
	spells []string
}{{
	player: wizard.Player{HP: 10, Mana: 250},
	boss:   wizard.Boss{HP: 13, Damage: 8},
	want:   226,
	spells: []string{"Poison", "Magic Missile"},
}, {
	player: wizard.Player{HP: 10, Mana: 250},
	boss:   wizard.Boss{HP: 14, Damage: 8},
	want:   641,
	spells: []string{"Recharge", "Shield", "Drain", "Poison", "Magic Missile"},
}, {
	player: wizard.Player{HP: 10, Mana: 250},
	boss:   wizard.Boss{HP: 4, Damage: 8},
	want:   53,
	spells: []string{"Magic Missile"},
}, {
	player: wizard.Player{HP: 2, Mana: 250},
	boss:   wizard.Boss{HP: 4, Damage: 8},
	hard:   true,
	want:   53,
	spells: []string{"Magic Missile"},
}}

func TestMinMana(t *testing.T) {
	for _, test := range minManaTests {
		t.Run(fmt.Sprintf("%v-%v-hard=%v", test.player, test.boss, test.hard), func(t *testing.T) {
			path, err := wizard.MinMana(test.player, test.boss, wizard.Options{Hard: test.hard})
			qt.Assert(t, qt.IsNil(err))
			qt.Assert(t, qt.Equals(path.Cost(), test.want))
			qt.Assert(t, qt.IsTrue(path.Last().State.Boss.HP <= 0))
			var spells []string
			for _, cost := range path.StepCosts() {
				sp, ok := wizard.DefaultRules.SpellByCost(cost)
				qt.Assert(t, qt.IsTrue(ok))
				spells = append(spells, sp.Name)
			}
			qt.Assert(t, qt.DeepEquals(spells, test.spells))
		})
	}
}

func TestMinManaNoSolution(t *testing.T) {
	for _, test := range []struct {
		player wizard.Player
		boss   wizard.Boss
		hard   bool
	}{
		{wizard.Player{HP: 10, Mana: 250}, wizard.Boss{HP: 13, Damage: 8}, true},
		{wizard.Player{HP: 1, Mana: 250}, wizard.Boss{HP: 4, Damage: 8}, true},
		{wizard.Player{HP: 10, Mana: 52}, wizard.Boss{HP: 4, Damage: 8}, false},
	} {
		_, err := wizard.MinMana(test.player, test.boss, wizard.Options{Hard: test.hard})
		qt.Assert(t, qt.ErrorIs(err, wizard.ErrNoSolution))
	}
}

func TestPoisonKillCostsNothing(t *testing.T) {
	g := &wizard.Game{}
	s := wizard.State{
		Player:  wizard.Player{HP: 10, Mana: 500},
		Boss:    wizard.Boss{HP: 3, Damage: 8},
		Effects: wizard.Effects{Poison: 2, Recharge: 3},
	}
	var next []wizard.State
	var costs []int
	for s1, cost := range g.Successors(s) {
		next = append(next, s1)
		costs = append(costs, cost)
	}
	qt.Assert(t, qt.DeepEquals(costs, []int{0}))
	qt.Assert(t, qt.Equals(next[0].Boss.HP, 0))
	qt.Assert(t, qt.IsTrue(g.IsGoal(next[0])))
}

func TestSuccessors(t *testing.T) {
	g := &wizard.Game{}
	s := wizard.State{
		Player:  wizard.Player{HP: 10, Mana: 250},
		Boss:    wizard.Boss{HP: 20, Damage: 8},
		Effects: wizard.Effects{Shield: 1, Poison: 2},
	}
	got := make(map[int]wizard.State)
	for s1, cost := range g.Successors(s) {
		got[cost] = s1
	}
	// The shield wears off during the player's turn, so it can be
	// cast again, but poison is still active and cannot.
	qt.Assert(t, qt.DeepEquals(got, map[int]wizard.State{
		53: {
			Player: wizard.Player{HP: 2, Mana: 197},
			Boss:   wizard.Boss{HP: 10, Damage: 8},
		},
		113: {
			Player:  wizard.Player{HP: 9, Mana: 137},
			Boss:    wizard.Boss{HP: 14, Damage: 8},
			Effects: wizard.Effects{Shield: 5},
		},
		229: {
			Player:  wizard.Player{HP: 2, Mana: 122},
			Boss:    wizard.Boss{HP: 14, Damage: 8},
			Effects: wizard.Effects{Recharge: 4},
		},
		73: {
			Player: wizard.Player{HP: 4, Mana: 177},
			Boss:   wizard.Boss{HP: 12, Damage: 8},
		},
	}))
}

func TestSuccessorsDropLosingMoves(t *testing.T) {
	g := &wizard.Game{}
	s := wizard.State{
		Player: wizard.Player{HP: 8, Mana: 100},
		Boss:   wizard.Boss{HP: 20, Damage: 8},
	}
	var costs []int
	for _, cost := range g.Successors(s) {
		costs = append(costs, cost)
	}
	// A missile leaves the player dead; drain heals enough to survive.
	qt.Assert(t, qt.DeepEquals(costs, []int{73}))
}

func TestHardModeDrainsHitPoints(t *testing.T) {
	g := &wizard.Game{Hard: true}
	s := wizard.State{
		Player: wizard.Player{HP: 20, Mana: 53},
		Boss:   wizard.Boss{HP: 20, Damage: 8},
	}
	for s1 := range g.Successors(s) {
		qt.Assert(t, qt.Equals(s1.Player.HP, 11))
	}
	s.Player.HP = 1
	for range g.Successors(s) {
		t.Fatalf("unexpected successor with no hit points left")
	}
}

func TestCustomRules(t *testing.T) {
	rules := wizard.DefaultRules
	rules.Missile.Damage = 20
	path, err := wizard.MinMana(
		wizard.Player{HP: 10, Mana: 250},
		wizard.Boss{HP: 14, Damage: 8},
		wizard.Options{Rules: &rules},
	)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(path.Cost(), 53))
	// The default rules are not affected.
	qt.Assert(t, qt.Equals(wizard.DefaultRules.Missile.Damage, 4))
}

func TestValidateRules(t *testing.T) {
	qt.Assert(t, qt.IsNil(wizard.DefaultRules.Validate()))

	for _, test := range []struct {
		change func(r *wizard.Rules)
		err    string
	}{{
		change: func(r *wizard.Rules) { r.Missile.Cost = -10 },
		err:    `invalid input: spell "Magic Missile": cost -10 out of range \[1, 10000\]`,
	}, {
		change: func(r *wizard.Rules) { r.Poison.Cost = 0 },
		err:    `invalid input: spell "Poison": cost 0 out of range \[1, 10000\]`,
	}, {
		change: func(r *wizard.Rules) { r.Shield.Cost = 229 },
		err:    `invalid input: spells "Shield" and "Recharge" both cost 229`,
	}, {
		change: func(r *wizard.Rules) { r.Drain.Heal = -2 },
		err:    `invalid input: spell "Drain": value -2 out of range \[0, 10000\]`,
	}, {
		change: func(r *wizard.Rules) { r.Recharge.Mana = 10001 },
		err:    `invalid input: spell "Recharge": value 10001 out of range \[0, 10000\]`,
	}} {
		rules := wizard.DefaultRules
		test.change(&rules)
		err := rules.Validate()
		qt.Assert(t, qt.ErrorMatches(err, test.err))
		qt.Assert(t, qt.ErrorIs(err, wizard.ErrInput))

		// MinMana refuses to search with rules that break the
		// non-negative cost contract.
		_, err = wizard.MinMana(
			wizard.Player{HP: 10, Mana: 250},
			wizard.Boss{HP: 13, Damage: 8},
			wizard.Options{Rules: &rules},
		)
		qt.Assert(t, qt.ErrorMatches(err, test.err))
	}
}

func TestValidatePlayer(t *testing.T) {
	for _, test := range []struct {
		player wizard.Player
		err    string
	}{
		{wizard.Player{HP: 0, Mana: 250}, `invalid input: player hit points 0 out of range \[1, 10000\]`},
		{wizard.Player{HP: 10001, Mana: 250}, `invalid input: player hit points 10001 out of range \[1, 10000\]`},
		{wizard.Player{HP: 10, Mana: -1}, `invalid input: player mana -1 out of range \[0, 10000\]`},
		{wizard.Player{HP: 10, Mana: 32700}, `invalid input: player mana 32700 out of range \[0, 10000\]`},
	} {
		_, err := wizard.MinMana(test.player, wizard.Boss{HP: 13, Damage: 8}, wizard.Options{})
		qt.Assert(t, qt.ErrorMatches(err, test.err))
		qt.Assert(t, qt.ErrorIs(err, wizard.ErrInput))
	}
}

func TestRechargeSaturates(t *testing.T) {
	g := &wizard.Game{}
	s := wizard.State{
		Player:  wizard.Player{HP: 50, Mana: 32700},
		Boss:    wizard.Boss{HP: 20, Damage: 8},
		Effects: wizard.Effects{Recharge: 2},
	}
	found := false
	for s1, cost := range g.Successors(s) {
		qt.Assert(t, qt.IsTrue(s1.Player.Mana > 0), qt.Commentf("cost %d", cost))
		if cost == 53 {
			found = true
			qt.Assert(t, qt.Equals(s1.Player.Mana, math.MaxInt16))
		}
	}
	qt.Assert(t, qt.IsTrue(found))
}

// cheapest returns the least mana needed to win from s by trying
// every sequence of moves costing less than limit, or -1.
func cheapest(g *wizard.Game, s wizard.State, limit int) int {
	if g.IsGoal(s) {
		return 0
	}
	best := -1
	for s1, cost := range g.Successors(s) {
		if cost >= limit {
			continue
		}
		rest := cheapest(g, s1, limit-cost)
		if rest < 0 {
			continue
		}
		if total := cost + rest; best < 0 || total < best {
			best = total
			limit = total
		}
	}
	return best
}

func TestMatchesExhaustiveSearch(t *testing.T) {
	for _, hard := range []bool{false, true} {
		for bossHP := int16(1); bossHP <= 16; bossHP++ {
			for _, damage := range []int16{3, 8} {
				player := wizard.Player{HP: 10, Mana: 250}
				boss := wizard.Boss{HP: bossHP, Damage: damage}
				path, err := wizard.MinMana(player, boss, wizard.Options{Hard: hard})
				limit := 1000
				if err == nil {
					limit = path.Cost() + 1
				}
				want := cheapest(&wizard.Game{Hard: hard}, wizard.State{Player: player, Boss: boss}, limit)
				if want < 0 {
					qt.Assert(t, qt.ErrorIs(err, wizard.ErrNoSolution), qt.Commentf("boss %v hard %v", boss, hard))
					continue
				}
				qt.Assert(t, qt.IsNil(err))
				qt.Assert(t, qt.Equals(path.Cost(), want), qt.Commentf("boss %v hard %v", boss, hard))
			}
		}
	}
}

func TestParseBoss(t *testing.T) {
	boss, err := wizard.ParseBoss("Hit Points: 51\nDamage: 9\n")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(boss, wizard.Boss{HP: 51, Damage: 9}))

	boss, err = wizard.ParseBoss("Hit Points: 13\r\nDamage: 8")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(boss, wizard.Boss{HP: 13, Damage: 8}))
}

func TestParseBossErrors(t *testing.T) {
	for _, test := range []struct {
		input string
		err   string
	}{
		{"", `invalid input: expected "Hit Points: N" and "Damage: N" lines`},
		{"Damage: 9\nHit Points: 51", `invalid input: expected .*`},
		{"Hit Points: 51\nDamage: 9\nArmor: 2", `invalid input: expected .*`},
		{"Hit Points: 99999\nDamage: 9", `invalid input: hit points: strconv.ParseInt: parsing "99999": value out of range`},
	} {
		_, err := wizard.ParseBoss(test.input)
		qt.Assert(t, qt.ErrorMatches(err, test.err), qt.Commentf("input %q", test.input))
		qt.Assert(t, qt.ErrorIs(err, wizard.ErrInput))
	}
}

func TestStateString(t *testing.T) {
	s := wizard.State{
		Player:  wizard.Player{HP: 10, Mana: 250},
		Boss:    wizard.Boss{HP: 13, Damage: 8},
		Effects: wizard.Effects{Poison: 3},
	}
	qt.Assert(t, qt.Equals(s.String(), "player hp=10 mana=250; boss hp=13; shield=0 poison=3 recharge=0"))
}

func TestSpellByCost(t *testing.T) {
	sp, ok := wizard.DefaultRules.SpellByCost(173)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(sp.Name, "Poison"))
	_, ok = wizard.DefaultRules.SpellByCost(0)
	qt.Assert(t, qt.IsFalse(ok))
}
