package payee

import (
	"strings"
	"unicode"
)

// Small string predicates shared by the heuristics. The heuristics care
// about token shape (letters, digits, casing), not meaning.

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func asciiAlpha(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z') {
			return false
		}
	}
	return true
}

func hasLetter(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' {
			return true
		}
	}
	return false
}

func hasDigit(s string) bool {
	for i := 0; i < len(s); i++ {
		if '0' <= s[i] && s[i] <= '9' {
			return true
		}
	}
	return false
}

// isUpperToken reports whether s has at least one cased rune and no
// lowercase ones, so "J&O'S" counts but "1234" does not.
func isUpperToken(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

// isTitleToken reports whether s is title-cased: every run of cased
// runes starts upper and continues lower. "Smith" and "Smith," qualify;
// "SMITH" and "sMith" do not.
func isTitleToken(s string) bool {
	cased := false
	prevCased := false
	for _, r := range s {
		switch {
		case unicode.IsUpper(r) || unicode.IsTitle(r):
			if prevCased {
				return false
			}
			prevCased = true
			cased = true
		case unicode.IsLower(r):
			if !prevCased {
				return false
			}
			prevCased = true
		default:
			prevCased = false
		}
	}
	return cased
}

// isSuffixToken reports whether the token, minus trailing punctuation,
// is an organizational suffix.
func isSuffixToken(s string) bool {
	_, ok := suffixes[strings.ToUpper(strings.TrimRight(s, ".,"))]
	return ok
}
