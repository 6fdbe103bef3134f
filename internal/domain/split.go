package domain

import (
	"regexp"
	"strings"
)

// Bulk input is split on full-width semicolons, ASCII semicolons, and
// newlines; each surviving part becomes its own record.
func isDelimiter(r rune) bool {
	return r == '；' || r == ';' || r == '\n'
}

// enumPrefix matches a leading numeric enumeration such as "2. " or "3：".
var enumPrefix = regexp.MustCompile(`^\d+[.。:：；;]\s*`)

// trailingPunct lists the single trailing marks stripped by auto-clean.
const trailingPunct = "；;。."

// SplitContent splits bulk input into trimmed, non-empty parts.
// Content with no delimiter yields a single part.
func SplitContent(content string) []string {
	var parts []string
	for _, part := range strings.FieldsFunc(content, isDelimiter) {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

// CleanPart applies the auto-clean rules to one split part: strip one
// trailing mark from trailingPunct, then strip a leading numeric
// enumeration prefix. May return the empty string.
func CleanPart(part string) string {
	part = strings.TrimSpace(part)
	if part != "" {
		runes := []rune(part)
		if strings.ContainsRune(trailingPunct, runes[len(runes)-1]) {
			part = strings.TrimSpace(string(runes[:len(runes)-1]))
		}
	}
	if part != "" {
		part = enumPrefix.ReplaceAllString(part, "")
	}
	return strings.TrimSpace(part)
}

// CleanParts cleans every part and drops those that come out empty.
func CleanParts(parts []string) []string {
	var cleaned []string
	for _, part := range parts {
		if c := CleanPart(part); c != "" {
			cleaned = append(cleaned, c)
		}
	}
	return cleaned
}
