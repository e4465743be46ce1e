// Package renderer defines the drawing surface the engine renders into and
// the message markup shared by every frontend.
package renderer

import (
	"regexp"
)

var regexpStringFunctions = regexp.MustCompile(`([A-Z_]*){([^{}]+)}`)

// markupStyles maps markup function names to text styles
var markupStyles = map[string]TextStyle{
	"ITEM":   StyleItem,
	"TOKEN":  StyleToken,
	"CELL":   StyleCell,
	"DENIED": StyleDenied,
	"WIN":    StyleWin,
	"SUBTLE": StyleSubtle,
}

// ExpandMarkup replaces FUNC{operand} sequences using style. ACTION{...}
// highlights its first character separately (as a key hint). Unknown functions
// are left as plain operands.
func ExpandMarkup(msg string, style func(text string, s TextStyle) string) string {
	if style == nil {
		style = func(text string, _ TextStyle) string { return text }
	}
	return regexpStringFunctions.ReplaceAllStringFunc(msg, func(m string) string {
		match := regexpStringFunctions.FindStringSubmatch(m)
		function, operand := match[1], match[2]

		switch function {
		case "ACTION":
			return style(operand[0:1], StyleActionShort) + style(operand[1:], StyleAction)
		case "":
			return m
		}
		if s, ok := markupStyles[function]; ok {
			return style(operand, s)
		}
		return operand
	})
}

// StripMarkup removes markup, leaving the operands
func StripMarkup(msg string) string {
	return ExpandMarkup(msg, nil)
}

// PlainWidth returns the printed width of msg once markup is removed
func PlainWidth(msg string) int {
	return len([]rune(StripMarkup(msg)))
}
