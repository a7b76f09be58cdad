// Package vader implements a lexicon-based compound sentiment scorer
// following the VADER heuristics: per-word valence, negation flipping,
// intensifier scaling, capitalization and punctuation emphasis, and
// square-root normalization into [-1, 1].
package vader

import (
	"math"
	"strings"
	"unicode"
)

const (
	// normAlpha approximates the maximum expected valence sum.
	normAlpha = 15.0
	// negationFactor flips and dampens a negated valence.
	negationFactor = -0.74
	// capsBoost is added to a valence when the word is shouted in
	// an otherwise mixed-case text.
	capsBoost = 0.733
	// exclamationBoost is the per-"!" emphasis, capped at 4.
	exclamationBoost = 0.292
	maxExclamations  = 4
	// questionBoost is the per-"?" emphasis for 2-3 question marks.
	questionBoost    = 0.18
	questionBoostCap = 0.96
	// negationLookback is how many preceding words are checked for
	// negations and boosters.
	negationLookback = 3
)

// booster damping by distance from the rated word.
var boosterDamping = [negationLookback]float64{1.0, 0.95, 0.9}

// Analyzer scores free text. It is stateless, pure and safe for
// concurrent use; identical input always yields an identical score.
type Analyzer struct{}

// New returns a ready-to-use analyzer.
func New() *Analyzer {
	return &Analyzer{}
}

// Compound returns the compound polarity score of text in [-1, 1].
// Empty or unscoreable text yields 0. It never fails.
func (a *Analyzer) Compound(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0
	}

	words := tokenize(text)
	mixedCase := hasMixedCase(words)

	var sum float64
	for i, w := range words {
		valence, ok := lexicon[w.normalized]
		if !ok {
			continue
		}
		if w.allCaps && mixedCase {
			valence += math.Copysign(capsBoost, valence)
		}
		valence = applyContext(words, i, valence, mixedCase)
		sum += valence
	}

	if sum != 0 {
		sum += math.Copysign(punctuationEmphasis(text), sum)
	}

	return normalize(sum)
}

type token struct {
	normalized string
	allCaps    bool
}

// tokenize splits text into words, stripping surrounding punctuation and
// inner apostrophes so "don't" matches the negation list as "dont".
func tokenize(text string) []token {
	fields := strings.Fields(text)
	tokens := make([]token, 0, len(fields))
	for _, f := range fields {
		stripped := strings.TrimFunc(f, func(r rune) bool {
			return unicode.IsPunct(r) || unicode.IsSymbol(r)
		})
		if stripped == "" {
			continue
		}
		normalized := strings.ToLower(strings.Map(dropApostrophe, stripped))
		tokens = append(tokens, token{
			normalized: normalized,
			allCaps:    isAllCaps(stripped),
		})
	}
	return tokens
}

func dropApostrophe(r rune) rune {
	if r == '\'' || r == '’' {
		return -1
	}
	return r
}

func isAllCaps(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter && len([]rune(s)) > 1
}

// hasMixedCase reports whether the text shouts some words but not all.
// Uniformly upper-cased text carries no emphasis signal.
func hasMixedCase(words []token) bool {
	caps, lower := 0, 0
	for _, w := range words {
		if w.allCaps {
			caps++
		} else {
			lower++
		}
	}
	return caps > 0 && lower > 0
}

// applyContext adjusts valence for boosters and negations in the
// preceding window, nearest word first.
func applyContext(words []token, idx int, valence float64, mixedCase bool) float64 {
	for dist := 1; dist <= negationLookback; dist++ {
		i := idx - dist
		if i < 0 {
			break
		}
		prev := words[i]
		if scalar, ok := boosters[prev.normalized]; ok {
			// The scalar keeps its own sign (dampeners are negative) and
			// points along the rated valence.
			boost := scalar
			if valence < 0 {
				boost = -scalar
			}
			boost *= boosterDamping[dist-1]
			if prev.allCaps && mixedCase {
				boost += math.Copysign(capsBoost, valence) * boosterDamping[dist-1]
			}
			valence += boost
		}
		if _, ok := negations[prev.normalized]; ok {
			valence *= negationFactor
		}
	}
	return valence
}

func punctuationEmphasis(text string) float64 {
	excl := strings.Count(text, "!")
	if excl > maxExclamations {
		excl = maxExclamations
	}
	emphasis := float64(excl) * exclamationBoost

	if qm := strings.Count(text, "?"); qm > 1 {
		if qm <= 3 {
			emphasis += float64(qm) * questionBoost
		} else {
			emphasis += questionBoostCap
		}
	}
	return emphasis
}

func normalize(sum float64) float64 {
	score := sum / math.Sqrt(sum*sum+normAlpha)
	switch {
	case score > 1:
		return 1
	case score < -1:
		return -1
	default:
		return score
	}
}
