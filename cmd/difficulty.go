package cmd

import (
	"fmt"
	"sort"
	"strings"
)

type Difficulty struct {
	Width, Height, NumMines int
}

var difficulties = map[string]Difficulty{
	"easy":   {Width: 8, Height: 8, NumMines: 10},
	"medium": {Width: 16, Height: 16, NumMines: 40},
	"hard":   {Width: 30, Height: 16, NumMines: 99},
}

func difficultyNames() string {
	names := make([]string, 0, len(difficulties))
	for name := range difficulties {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// difficultyValue is a pflag.Value accepting the names of the presets
type difficultyValue string

func newDifficultyValue(val string, p *string) *difficultyValue {
	*p = val
	return (*difficultyValue)(p)
}

func (diffVal *difficultyValue) String() string {
	return string(*diffVal)
}

func (diffVal *difficultyValue) Set(value string) error {
	if _, isValid := difficulties[value]; !isValid {
		return fmt.Errorf("invalid difficulty %q (expected one of %s)", value, difficultyNames())
	}
	*diffVal = difficultyValue(value)
	return nil
}

func (diffVal *difficultyValue) Type() string {
	return "difficulty"
}
