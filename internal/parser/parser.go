// Package parser extracts the puzzle day and result token from a shared
// Wordle result message.
package parser

import (
	"regexp"
	"strconv"
	"strings"
)

// Result is the part of a Wordle share message the bot cares about.
type Result struct {
	Day   int
	Token string
}

// Thousands separators appear in newer share texts ("Wordle 1,234 3/6").
var resultPattern = regexp.MustCompile(`^Wordle ([0-9]{1,3}(?:,[0-9]{3})+|[0-9]+) ([1-6]|X)/6`)

// Parse reads the day and token from the start of text. Anything after the
// "n/6" part, such as the emoji grid or a hard mode marker, is ignored.
func Parse(text string) (Result, bool) {
	m := resultPattern.FindStringSubmatch(text)
	if m == nil {
		return Result{}, false
	}
	day, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
	if err != nil || day <= 0 {
		return Result{}, false
	}
	return Result{Day: day, Token: m[2]}, true
}
