package prompt

import (
	"fmt"
	"strings"
)

// Answer is the result of a yes/no question.
type Answer string

const (
	Yes Answer = "y"
	No  Answer = "n"
)

// YesNo asks a (Y)es/(N)o question. Empty input means Yes.
func YesNo(e *Engine, text string) (Answer, error) {
	return Ask(e, text, Yes, func(raw string) (Answer, error) {
		switch strings.ToLower(raw) {
		case "y":
			return Yes, nil
		case "n":
			return No, nil
		}
		return "", Invalid(fmt.Sprintf("Please answer y or n (got %q)", raw))
	})
}

// OneOf asks for one of options, matched case-insensitively. Empty input
// selects def.
func OneOf(e *Engine, text, def string, options ...string) (string, error) {
	return Ask(e, text, def, func(raw string) (string, error) {
		answer := strings.ToLower(raw)
		for _, o := range options {
			if answer == o {
				return o, nil
			}
		}
		return "", Invalid(fmt.Sprintf("Please choose one of: %s", strings.Join(options, ", ")))
	})
}

// Line asks for free text. Any non-empty line is accepted verbatim.
func Line(e *Engine, text, def string) (string, error) {
	return Ask(e, text, def, func(raw string) (string, error) {
		return raw, nil
	})
}

// Acknowledge prints text and waits for the user to press enter.
func Acknowledge(e *Engine, text string) error {
	_, err := Line(e, text, "")
	return err
}
