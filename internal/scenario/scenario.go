// Package scenario loads the battle description file: who is fighting,
// how many projectiles the attacker may fire, and the city skyline.
//
// The format is line-oriented text. Lines starting with '#' are comments.
// The first three content lines are the defender name, the attacker name,
// and the projectile budget (0 = unlimited). Every following line holds
// whitespace-separated column heights, left to right; tokens that are not
// non-negative integers are skipped.
package scenario

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// MaxNameLen bounds the stored length of participant names.
const MaxNameLen = 80

// Parse errors. All of them are fatal before a battle starts.
var (
	ErrMissingDefender = errors.New("scenario: missing defender name")
	ErrMissingAttacker = errors.New("scenario: missing attacker name")
	ErrMissingBudget   = errors.New("scenario: missing projectile specification")
	ErrNegativeBudget  = errors.New("scenario: projectile specification < 0")
	ErrMissingLayout   = errors.New("scenario: missing city layout")
)

// Scenario is the immutable parsed battle description.
type Scenario struct {
	DefenderName string
	AttackerName string

	// Budget is the total projectile count; 0 means unlimited.
	Budget int

	// Layout holds the initial column heights, index = column.
	Layout []int

	// Tallest is the maximum height in Layout, computed once at load.
	Tallest int
}

// Unlimited reports whether the attacker has no projectile budget.
func (s *Scenario) Unlimited() bool {
	return s.Budget == 0
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a scenario from r.
func Parse(r io.Reader) (*Scenario, error) {
	sc := &Scenario{}

	line := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		text := scanner.Text()
		if strings.HasPrefix(text, "#") {
			continue
		}

		switch line {
		case 0:
			sc.DefenderName = truncate(text, MaxNameLen)
		case 1:
			sc.AttackerName = truncate(text, MaxNameLen)
		case 2:
			budget, err := strconv.Atoi(strings.TrimSpace(text))
			if err != nil {
				return nil, ErrMissingBudget
			}
			if budget < 0 {
				return nil, ErrNegativeBudget
			}
			sc.Budget = budget
		default:
			for _, token := range strings.Fields(text) {
				h, err := strconv.Atoi(token)
				if err != nil || h < 0 {
					continue
				}
				sc.Layout = append(sc.Layout, h)
				if h > sc.Tallest {
					sc.Tallest = h
				}
			}
		}
		line++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}

	switch {
	case line == 0:
		return nil, ErrMissingDefender
	case line == 1:
		return nil, ErrMissingAttacker
	case line == 2:
		return nil, ErrMissingBudget
	case line == 3:
		return nil, ErrMissingLayout
	}

	return sc, nil
}

// Default returns the built-in scenario used when no file is given,
// such as for SSH sessions.
func Default() *Scenario {
	layout := []int{3, 5, 7, 5, 3, 2, 4, 6, 8, 6, 4, 2, 3, 5, 7, 5, 3}
	tallest := 0
	for _, h := range layout {
		if h > tallest {
			tallest = h
		}
	}
	return &Scenario{
		DefenderName: "the city",
		AttackerName: "the horde",
		Budget:       40,
		Layout:       layout,
		Tallest:      tallest,
	}
}

// truncate bounds s to max bytes.
func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
