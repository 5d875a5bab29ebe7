package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/they4kman/termsweep/director/constraint"
	"github.com/they4kman/termsweep/director/random"
	"github.com/they4kman/termsweep/game"
)

var directors = map[string]func(seed int64) game.Director{
	"random":     func(seed int64) game.Director { return random.New(seed) },
	"constraint": func(seed int64) game.Director { return constraint.New(seed) },
}

func directorNames() string {
	names := make([]string, 0, len(directors))
	for name := range directors {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// newDirector returns nil when the player plays alone
func newDirector(name string, seed int64) game.Director {
	newFunc, ok := directors[name]
	if !ok {
		return nil
	}
	return newFunc(seed)
}

type directorValue string

func newDirectorValue(val string, p *string) *directorValue {
	*p = val
	return (*directorValue)(p)
}

func (dirVal *directorValue) String() string {
	return string(*dirVal)
}

func (dirVal *directorValue) Set(value string) error {
	if _, isValid := directors[value]; !isValid {
		return fmt.Errorf("invalid director %q (expected one of %s)", value, directorNames())
	}
	*dirVal = directorValue(value)
	return nil
}

func (dirVal *directorValue) Type() string {
	return "director"
}
