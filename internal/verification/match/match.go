// Package match scores how closely two free-text person names agree.
//
// Scores are integers in [0,100]. The matcher is pure and safe for
// concurrent use.
package match

import (
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Method names the strategy that produced a score.
type Method string

const (
	MethodExact       Method = "exact"
	MethodToken       Method = "token"
	MethodLevenshtein Method = "levenshtein"
)

// Result is the outcome of comparing two names.
type Result struct {
	Score  int    `json:"score"`
	Method Method `json:"method"`
}

// maxTokenDistance is the edit distance under which two tokens count as the same.
const maxTokenDistance = 2

var upper = cases.Upper(language.Und)

// Normalize canonicalizes a name: NFKC, upper case, letters and spaces only,
// single spaces, trimmed.
func Normalize(name string) string {
	s := upper.String(norm.NFKC.String(name))
	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
			b.WriteRune(r)
		case unicode.IsSpace(r):
			space = true
		}
	}
	return b.String()
}

// Score compares two names. Either side empty after normalization scores 0.
func Score(a, b string) Result {
	na, nb := Normalize(a), Normalize(b)
	if na == "" || nb == "" {
		return Result{Score: 0, Method: MethodLevenshtein}
	}
	if na == nb {
		return Result{Score: 100, Method: MethodExact}
	}

	token := tokenScore(strings.Fields(na), strings.Fields(nb))
	lev := levenshteinScore([]rune(na), []rune(nb))
	if token >= lev {
		return Result{Score: round(token), Method: MethodToken}
	}
	return Result{Score: round(lev), Method: MethodLevenshtein}
}

func tokenScore(ta, tb []string) float64 {
	matched := 0
	for _, x := range ta {
		for _, y := range tb {
			if tokensMatch(x, y) {
				matched++
				break
			}
		}
	}
	denom := max(len(ta), len(tb))
	return 100 * float64(matched) / float64(denom)
}

func tokensMatch(x, y string) bool {
	if x == y || strings.Contains(x, y) || strings.Contains(y, x) {
		return true
	}
	return Distance(x, y) <= maxTokenDistance
}

func levenshteinScore(a, b []rune) float64 {
	maxLen := max(len(a), len(b))
	d := distance(a, b)
	return 100 * float64(maxLen-d) / float64(maxLen)
}

// Distance is the edit distance between a and b counted in runes, with unit
// cost for insertion, deletion and substitution.
func Distance(a, b string) int {
	return distance([]rune(a), []rune(b))
}

func distance(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func round(v float64) int {
	r := int(math.Round(v))
	return min(max(r, 0), 100)
}
