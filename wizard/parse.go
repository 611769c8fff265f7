package wizard

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInput is returned, wrapped, for malformed boss descriptions.
var ErrInput = errors.New("invalid input")

var bossPattern = regexp.MustCompile(`^Hit Points: (\d+)\nDamage: (\d+)$`)

// ParseBoss parses a boss description of the form
//
//	Hit Points: 51
//	Damage: 9
func ParseBoss(text string) (Boss, error) {
	text = strings.TrimRight(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	m := bossPattern.FindStringSubmatch(text)
	if m == nil {
		return Boss{}, fmt.Errorf("%w: expected \"Hit Points: N\" and \"Damage: N\" lines", ErrInput)
	}
	hp, err := parseStat(m[1])
	if err != nil {
		return Boss{}, fmt.Errorf("%w: hit points: %v", ErrInput, err)
	}
	damage, err := parseStat(m[2])
	if err != nil {
		return Boss{}, fmt.Errorf("%w: damage: %v", ErrInput, err)
	}
	return Boss{
		HP:     hp,
		Damage: damage,
	}, nil
}

func parseStat(s string) (int16, error) {
	n, err := strconv.ParseInt(s, 10, 16)
	if err != nil {
		return 0, err
	}
	return int16(n), nil
}
