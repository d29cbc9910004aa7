package types

import (
	"strings"
	"unicode/utf8"
)

// Field length limits, counted in characters.
const (
	MaxNameLength               = 64
	MaxDescriptionLength        = 128
	MaxDisplayNameLength        = 64
	MaxUpdatedDisplayNameLength = 128
)

// MaxTeamUsers caps the membership list of a team.
const MaxTeamUsers = 50

// TooLong reports whether s has more than max characters.
func TooLong(s string, max int) bool {
	return utf8.RuneCountInString(s) > max
}

// SameName reports whether two names collide. Names and titles are unique
// case-insensitively.
func SameName(a, b string) bool {
	return strings.EqualFold(a, b)
}
