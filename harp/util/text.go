package util

import (
	"fmt"
	"regexp"
	"strings"
)

var indentRe = regexp.MustCompile("(?m)^")

func Indent(text string, indent string) string {
	if text == "" {
		return text
	}
	return indentRe.ReplaceAllString(text, indent)
}

func Hex(stream []uint8) string {
	if len(stream) == 0 {
		return "[]"
	}
	s := ""
	for _, b := range stream {
		s += fmt.Sprintf(" %02X", b)
	}
	return "[" + s[1:] + "]"
}

// JoinLines appends s to a newline separated list, skipping empty items.
func JoinLines(list, s string) string {
	if s == "" {
		return list
	}
	if list == "" {
		return s
	}
	return list + "\n" + s
}

// Fields splits on whitespace and commas.
func Fields(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}
