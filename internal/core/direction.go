package core

import (
	"fmt"
	"strings"
)

// Direction is a horizontal side of the screen.
type Direction int

const (
	Left Direction = iota
	Right
)

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == Left {
		return Right
	}
	return Left
}

// Sign maps the direction to a signed horizontal unit: Left is -1, Right is +1.
func (d Direction) Sign() float64 {
	if d == Left {
		return -1
	}
	return 1
}

// String returns "left" or "right".
func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// ParseDirection parses "left" or "right" (case-insensitive).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	}
	return Left, fmt.Errorf("core: unknown direction %q", s)
}

// MarshalText implements encoding.TextMarshaler so directions round-trip through YAML.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
