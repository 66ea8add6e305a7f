package training

import (
	"fmt"
	"strings"

	"training/internal/pkg/errs"
)

// Level is the difficulty of a training.
type Level int

const (
	// UnknownLevel is the zero value and is never valid.
	UnknownLevel Level = iota
	Beginner
	Intermediate
	Advanced
)

func getLevelStrings() map[Level]string {
	//nolint:exhaustive // UnknownLevel has no name
	return map[Level]string{
		Beginner:     "BEGINNER",
		Intermediate: "INTERMEDIATE",
		Advanced:     "ADVANCED",
	}
}

// String returns BEGINNER, INTERMEDIATE or ADVANCED, and UNKNOWN otherwise.
func (l Level) String() string {
	if str, ok := getLevelStrings()[l]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate rejects UnknownLevel and out-of-range values.
func (l Level) Validate() error {
	if _, ok := getLevelStrings()[l]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("level", fmt.Errorf("%d is not a valid level", l))
	}
	return nil
}

// ParseLevel maps a level name, in any letter case, to its Level.
func ParseLevel(s string) (Level, error) {
	for level, name := range getLevelStrings() {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return level, nil
		}
	}
	return UnknownLevel, errs.NewValueIsInvalidErrorWithCause("level", fmt.Errorf("%q is not a valid level", s))
}
