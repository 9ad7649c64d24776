package payee

import (
	"regexp"
	"strings"
)

// commaLetterPat restores the space after commas that text extraction
// swallowed, so "SMITH,JOHN" tokenizes as two words.
var commaLetterPat = regexp.MustCompile(`,([A-Za-z])`)

// lexicalSplit runs the weighted vote over the block's tokens. ok
// reports whether the winning score reached floor; the Result is only
// meaningful when it did.
func lexicalSplit(block string, floor int) (Result, bool) {
	tokens, text := tokenize(block)
	if len(tokens) == 0 {
		return Result{}, false
	}
	if len(tokens) == 1 {
		return Result{Payee: tokens[0], Confident: true, Method: MethodLexical}, true
	}

	scores := make([]int, len(tokens))
	for _, h := range heuristics {
		if idx, ok := h.fn(tokens, text); ok && idx >= 1 && idx < len(tokens) {
			scores[idx] += h.weight
		}
	}

	// Highest score wins; ties go to the earliest boundary.
	bestIdx, bestScore := 1, scores[1]
	for i := 2; i < len(scores); i++ {
		if scores[i] > bestScore {
			bestIdx, bestScore = i, scores[i]
		}
	}

	// Never cut deep into the description when the payee visibly ended
	// at an organizational suffix. A "#ref" token right after the
	// suffix still belongs to the payee side.
	suffixPos := -1
	for i, tok := range tokens {
		if isSuffixToken(tok) {
			suffixPos = i
		}
	}
	if suffixPos >= 0 && bestIdx > suffixPos+1 && !strings.HasPrefix(tokens[suffixPos+1], "#") {
		bestIdx = suffixPos + 1
	}

	payee := strings.TrimSpace(strings.TrimRight(strings.Join(tokens[:bestIdx], " "), ","))
	desc := strings.TrimSpace(strings.Join(tokens[bestIdx:], " "))

	payee = upperNamePair(payee)

	if desc == "" && len(tokens) > 3 {
		payee = strings.TrimRight(strings.TrimSpace(strings.Join(tokens[:3], " ")), ",")
		desc = strings.TrimSpace(strings.Join(tokens[3:], " "))
	}
	// A lone year is a fiscal-year tag on the payee, not a description.
	if yearPat.MatchString(desc) {
		payee = strings.TrimRight(strings.TrimSpace(payee+" "+desc), ",")
		desc = ""
	}

	// Repair pass: when a stopword, date, or numbered token leaked into
	// the payee, re-split the whole block at the first such token.
	repair := false
	payeeToks := tokens[:bestIdx]
	for i := 1; i < len(payeeToks); i++ {
		if repairTrigger(payeeToks, i) {
			repair = true
			break
		}
	}
	if repair {
		for i := 1; i < len(tokens); i++ {
			if repairTrigger(tokens, i) {
				payee = strings.TrimRight(strings.TrimSpace(strings.Join(tokens[:i], " ")), ",")
				desc = strings.TrimSpace(strings.Join(tokens[i:], " "))
				break
			}
		}
	}

	return Result{
		Payee:       payee,
		Description: desc,
		Confident:   true,
		Method:      MethodLexical,
	}, bestScore >= floor
}

// tokenize normalizes the block and splits it into tokens, reuniting a
// leading run of single letters when they spell a known payee. The
// normalized text comes back too, for heuristics that need character
// positions.
func tokenize(block string) ([]string, string) {
	s := strings.ReplaceAll(block, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, " ,", ",")
	s = strings.TrimSpace(s)
	s = commaLetterPat.ReplaceAllString(s, ", $1")
	if s == "" {
		return nil, ""
	}
	return mergeLetterPrefix(strings.Fields(s)), s
}

func mergeLetterPrefix(tokens []string) []string {
	i := 0
	var letters []string
	for i < len(tokens) {
		stripped := strings.TrimRight(tokens[i], ".,")
		if len(stripped) != 1 || !isAlpha(stripped) {
			break
		}
		letters = append(letters, strings.ToUpper(stripped))
		i++
	}
	if len(letters) > 1 {
		joined := strings.Join(letters, "")
		if _, ok := prefixSet[joined]; ok {
			return append([]string{joined}, tokens[i:]...)
		}
	}
	return tokens
}

// repairTrigger reports whether toks[i] should force a re-split at i:
// a bare stopword, a month, a date, or a digit-bearing token that is
// not a "#ref".
func repairTrigger(toks []string, i int) bool {
	tok := toks[i]
	stripped := strings.TrimRight(tok, ",.")
	if _, ok := stopwords[strings.ToUpper(stripped)]; ok {
		if strings.HasSuffix(tok, ",") {
			return false
		}
		if i+1 < len(toks) && isSuffixToken(toks[i+1]) {
			return false
		}
		return true
	}
	if _, ok := months[strings.ToUpper(stripped)]; ok {
		return true
	}
	if datePat.MatchString(stripped) {
		return true
	}
	return hasDigit(stripped) && !strings.HasPrefix(stripped, "#")
}

// upperNamePair turns a Title-case "Last, First" payee into the
// report's usual all-caps "LAST FIRST" form.
func upperNamePair(payee string) string {
	if !strings.Contains(payee, ",") {
		return payee
	}
	parts := strings.Split(payee, ",")
	if len(parts) != 2 {
		return payee
	}
	last, first := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if isTitleToken(last) && isTitleToken(first) {
		return strings.ToUpper(last + " " + first)
	}
	return payee
}
