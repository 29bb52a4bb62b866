package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Level is the ordinal authority level of an account.
type Level int

const (
	LevelNull       Level = -1
	LevelUser       Level = 0
	LevelFoodEditor Level = 1
	LevelModerator  Level = 2
	LevelAdmin      Level = 3
)

var levelNames = map[Level]string{
	LevelNull:       "Null",
	LevelUser:       "User",
	LevelFoodEditor: "FoodEditor",
	LevelModerator:  "Moderator",
	LevelAdmin:      "Admin",
}

// Valid reports whether l is one of the defined levels.
func (l Level) Valid() bool {
	_, ok := levelNames[l]
	return ok
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// ParseLevel accepts either the numeric value ("2") or the name ("moderator").
func ParseLevel(s string) (Level, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		l := Level(n)
		if !l.Valid() {
			return 0, fmt.Errorf("unknown level %d", n)
		}
		return l, nil
	}
	for l, name := range levelNames {
		if strings.EqualFold(name, s) {
			return l, nil
		}
	}
	return 0, fmt.Errorf("unknown level %q", s)
}

// UnmarshalJSON accepts both numbers and level names.
func (l *Level) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*l = Level(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("level must be a number or a name: %w", err)
	}
	parsed, err := ParseLevel(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
