package payee

import (
	"regexp"
	"strings"
)

// Each heuristic proposes one boundary index: tokens before the index
// are payee, tokens from it on are description. A heuristic abstains by
// returning ok == false. Proposals outside 1..len-1 are discarded by
// the voting loop, so heuristics do not bounds-check their answer.

var (
	yearPat        = regexp.MustCompile(`^\d{4}$`)
	datePat        = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{2,4}$`)
	doubleSpacePat = regexp.MustCompile(`\s{2,}`)
)

// columnGuess is the character position where the description column
// tends to start in the flattened row text.
const columnGuess = 45

type heuristic struct {
	name   string
	weight int
	fn     func(toks []string, text string) (int, bool)
}

var heuristics = []heuristic{
	{"known_prefix", 5, hKnownPrefix},
	{"fd_number", 4, hFdNumber},
	{"middle_initial", 4, hMiddleInitial},
	{"comma_pair", 4, hCommaPair},
	{"last_first", 6, hLastFirst},
	{"year", 4, hYear},
	{"date_or_month", 4, hDateOrMonth},
	{"alphanum", 5, hAlphanum},
	{"hash_follow", 6, hHashFollow},
	{"two_title", 3, hTwoTitle},
	{"stopword", 4, hStopword},
	{"column_alignment", 2, hColumnAlignment},
	{"last_comma", 2, hLastComma},
	{"city_of", 5, hCityOf},
	{"double_space", 1, hDoubleSpace},
	{"suffix", 5, hSuffix},
	{"default", 1, hDefault},
}

// hKnownPrefix cuts right after a payee we know token-for-token.
func hKnownPrefix(toks []string, _ string) (int, bool) {
	upper := make([]string, len(toks))
	for i, t := range toks {
		upper[i] = strings.ToUpper(strings.TrimRight(t, ".,"))
	}
	for _, prefix := range knownPrefixes {
		parts := strings.Fields(prefix)
		if len(parts) > len(upper) {
			continue
		}
		match := true
		for i, p := range parts {
			if upper[i] != p {
				match = false
				break
			}
		}
		if match {
			return len(parts), true
		}
	}
	return 0, false
}

// hFdNumber treats "FD <digits>" as the start of a fund reference.
func hFdNumber(toks []string, _ string) (int, bool) {
	for i := 0; i+1 < len(toks); i++ {
		if strings.ToUpper(toks[i]) == "FD" && isDigits(toks[i+1]) {
			return i, true
		}
	}
	return 0, false
}

// hMiddleInitial matches person names shaped "First M. Last".
func hMiddleInitial(toks []string, _ string) (int, bool) {
	if len(toks) < 3 {
		return 0, false
	}
	first := strings.TrimRight(toks[0], ".,")
	middle := strings.TrimRight(toks[1], ",")
	last := strings.TrimRight(toks[2], ".,")
	if asciiAlpha(first) && isInitial(middle) && asciiAlpha(last) {
		return 3, true
	}
	return 0, false
}

func isInitial(s string) bool {
	switch len(s) {
	case 1:
		return asciiAlpha(s)
	case 2:
		return asciiAlpha(s[:1]) && s[1] == '.'
	}
	return false
}

// hCommaPair matches mixed-case "Last, First" pairs.
func hCommaPair(toks []string, _ string) (int, bool) {
	if len(toks) < 2 || !strings.HasSuffix(toks[0], ",") || !isAlpha(strings.TrimRight(toks[1], ".,")) {
		return 0, false
	}
	if isUpperToken(strings.TrimRight(toks[0], ",")) && isUpperToken(toks[1]) {
		return 0, false
	}
	return 2, true
}

// hLastFirst matches all-caps "LAST, FIRST" pairs, keeping a short
// third token such as "JR" with the name.
func hLastFirst(toks []string, _ string) (int, bool) {
	if len(toks) < 2 || !strings.HasSuffix(toks[0], ",") || !isAlpha(strings.TrimRight(toks[1], ".,")) {
		return 0, false
	}
	if !isUpperToken(strings.TrimRight(toks[0], ",")) || !isUpperToken(toks[1]) {
		return 0, false
	}
	if len(toks) >= 3 && isAlpha(toks[2]) && isUpperToken(toks[2]) && len(toks[2]) <= 3 {
		return 3, true
	}
	return 2, true
}

// hYear cuts before a bare 4-digit year, unless the payee side already
// looks like an organization or the year ends the block.
func hYear(toks []string, _ string) (int, bool) {
	for i := 1; i < len(toks); i++ {
		if !yearPat.MatchString(toks[i]) {
			continue
		}
		seenSuffix := false
		for _, t := range toks[:i] {
			if isSuffixToken(t) {
				seenSuffix = true
				break
			}
		}
		if seenSuffix || i == len(toks)-1 {
			continue
		}
		return i, true
	}
	return 0, false
}

// hDateOrMonth cuts before the first date or month name.
func hDateOrMonth(toks []string, _ string) (int, bool) {
	for i := 1; i < len(toks); i++ {
		tok := strings.TrimRight(toks[i], ",.")
		if datePat.MatchString(tok) {
			return i, true
		}
		if _, ok := months[strings.ToUpper(tok)]; ok {
			return i, true
		}
	}
	return 0, false
}

// hAlphanum cuts before the first token mixing letters and digits,
// invoice numbers mostly. Tokens led by "#" belong to hHashFollow.
func hAlphanum(toks []string, _ string) (int, bool) {
	for i := 1; i < len(toks); i++ {
		tok := strings.TrimRight(toks[i], ",.")
		if strings.HasPrefix(tok, "#") {
			continue
		}
		if hasLetter(tok) && hasDigit(tok) {
			return i, true
		}
	}
	return 0, false
}

// hHashFollow keeps a "#ref" token and the word after it with the
// payee, cutting beyond them.
func hHashFollow(toks []string, _ string) (int, bool) {
	for i := 1; i+1 < len(toks); i++ {
		if strings.HasPrefix(toks[i], "#") && isAlpha(toks[i+1]) {
			return i + 2, true
		}
	}
	return 0, false
}

// hTwoTitle matches a leading pair of Title-case words.
func hTwoTitle(toks []string, _ string) (int, bool) {
	if len(toks) >= 2 && isTitleToken(toks[0]) && isTitleToken(toks[1]) {
		return 2, true
	}
	return 0, false
}

// hStopword cuts before the first description stopword. A trailing
// comma or a following organizational suffix means the word is still
// part of the name.
func hStopword(toks []string, _ string) (int, bool) {
	for i := 1; i < len(toks); i++ {
		tok := toks[i]
		if _, ok := stopwords[strings.ToUpper(strings.Trim(tok, ","))]; !ok {
			continue
		}
		if strings.HasSuffix(tok, ",") {
			continue
		}
		if i+1 < len(toks) && isSuffixToken(toks[i+1]) {
			continue
		}
		return i, true
	}
	return 0, false
}

// hColumnAlignment cuts at the token that crosses the usual
// description column position.
func hColumnAlignment(toks []string, _ string) (int, bool) {
	pos := 0
	for i, tok := range toks {
		pos += len(tok) + 1
		if pos >= columnGuess {
			return i + 1, true
		}
	}
	return 0, false
}

// hLastComma cuts after the last comma-terminated token.
func hLastComma(toks []string, _ string) (int, bool) {
	last, found := 0, false
	for i, tok := range toks {
		if strings.HasSuffix(tok, ",") {
			last, found = i+1, true
		}
	}
	return last, found
}

// hCityOf keeps "CITY OF X" (or "CITY OF SAN X") together as a payee.
func hCityOf(toks []string, _ string) (int, bool) {
	if len(toks) >= 3 && strings.EqualFold(toks[0], "CITY") && strings.EqualFold(toks[1], "OF") {
		if len(toks) >= 4 && strings.EqualFold(toks[2], "SAN") {
			return 4, true
		}
		return 3, true
	}
	return 0, false
}

// hDoubleSpace cuts at a run of two or more spaces, a surviving column
// gap. It counts words in the raw text, so its proposal is discarded
// when letter-merging changed the token count.
func hDoubleSpace(_ []string, text string) (int, bool) {
	loc := doubleSpacePat.FindStringIndex(text)
	if loc == nil {
		return 0, false
	}
	return len(strings.Fields(text[:loc[0]])), true
}

// hSuffix cuts right after the last organizational suffix.
func hSuffix(toks []string, _ string) (int, bool) {
	for i := len(toks) - 1; i >= 0; i-- {
		if isSuffixToken(toks[i]) {
			return i + 1, true
		}
	}
	return 0, false
}

// hDefault leans on the first token being the whole payee.
func hDefault(_ []string, _ string) (int, bool) {
	return 1, true
}
