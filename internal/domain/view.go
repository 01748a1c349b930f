package domain

import (
	"errors"
	"strings"
)

// View calendar granularity
type View string

const (
	ViewDay   View = "day"
	ViewWeek  View = "week"
	ViewMonth View = "month"
	ViewYear  View = "year"
)

// DefaultView used when the requested view is missing or unknown
const DefaultView = ViewMonth

// Views all supported views, finest first
var Views = []View{ViewDay, ViewWeek, ViewMonth, ViewYear}

// IsValid returns true if v is one of Views
func (v View) IsValid() bool {
	switch v {
	case ViewDay, ViewWeek, ViewMonth, ViewYear:
		return true
	default:
		return false
	}
}

func (v View) String() string {
	return string(v)
}

// ParseView parses a view name. Unknown values fall back to DefaultView with ok=false.
func ParseView(s string) (view View, ok bool) {
	v := View(strings.ToLower(strings.TrimSpace(s)))
	if !v.IsValid() {
		return DefaultView, false
	}
	return v, true
}

// Direction navigation direction
type Direction string

const (
	DirectionNext Direction = "next"
	DirectionPrev Direction = "prev"
)

// ErrInvalidDirection returned for anything other than next/prev
var ErrInvalidDirection = errors.New("invalid navigation direction")

// ParseDirection parses "next" or "prev"
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(strings.ToLower(strings.TrimSpace(s))); d {
	case DirectionNext, DirectionPrev:
		return d, nil
	default:
		return "", ErrInvalidDirection
	}
}

// Sign +1 for next, -1 for prev
func (d Direction) Sign() int {
	if d == DirectionPrev {
		return -1
	}
	return 1
}
