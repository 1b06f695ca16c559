//
// Tencent is pleased to support the open source community by making evalkit available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evalkit is licensed under the Apache License Version 2.0.
//
//

package rouge

import (
	"regexp"
	"strings"
)

var (
	nonAlphaNumRE = regexp.MustCompile(`[^a-z0-9]+`)
	validTokenRE  = regexp.MustCompile(`^[a-z0-9]+$`)
)

// wordTokenizer replicates the tokenization used by
// google-research/rouge: lowercase, strip punctuation, split on
// whitespace, optionally Porter-stem tokens longer than 3 characters.
type wordTokenizer struct {
	useStemmer bool
}

func newWordTokenizer(useStemmer bool) *wordTokenizer {
	return &wordTokenizer{useStemmer: useStemmer}
}

func (t *wordTokenizer) tokenize(text string) []string {
	text = nonAlphaNumRE.ReplaceAllString(strings.ToLower(text), " ")
	parts := strings.Fields(text)
	tokens := make([]string, 0, len(parts))
	for _, token := range parts {
		if !validTokenRE.MatchString(token) {
			continue
		}
		if t.useStemmer && len(token) > 3 {
			token = porterStem(token)
		}
		if token == "" || !validTokenRE.MatchString(token) {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// porterStem applies the Porter stemming algorithm with the
// NLTK_EXTENSIONS variants, matching nltk.stem.PorterStemmer.
func porterStem(word string) string {
	word = strings.ToLower(word)
	if len(word) <= 2 {
		return word
	}
	if base, ok := porterIrregular[word]; ok {
		return base
	}
	for _, step := range []func(string) string{
		porterStep1a, porterStep1b, porterStep1c,
		porterStep2, porterStep3, porterStep4,
		porterStep5a, porterStep5b,
	} {
		word = step(word)
	}
	return word
}

// porterIrregular lists the NLTK_EXTENSIONS irregular forms.
var porterIrregular = map[string]string{
	"sky":      "sky",
	"skies":    "sky",
	"dying":    "die",
	"lying":    "lie",
	"tying":    "tie",
	"news":     "news",
	"inning":   "inning",
	"innings":  "inning",
	"outing":   "outing",
	"outings":  "outing",
	"canning":  "canning",
	"cannings": "canning",
	"howe":     "howe",
	"proceed":  "proceed",
	"exceed":   "exceed",
	"succeed":  "succeed",
}

func isConsonant(word string, i int) bool {
	if i < 0 || i >= len(word) {
		return false
	}
	switch word[i] {
	case 'a', 'e', 'i', 'o', 'u':
		return false
	case 'y':
		if i == 0 {
			return true
		}
		return !isConsonant(word, i-1)
	default:
		return true
	}
}

func containsVowel(stem string) bool {
	for i := range stem {
		if !isConsonant(stem, i) {
			return true
		}
	}
	return false
}

// porterMeasure computes the Porter "m" measure, the count of
// vowel-consonant transitions.
func porterMeasure(stem string) int {
	m := 0
	prevWasVowel := false
	for i := range stem {
		if isConsonant(stem, i) {
			if prevWasVowel {
				m++
			}
			prevWasVowel = false
		} else {
			prevWasVowel = true
		}
	}
	return m
}

func positiveMeasure(stem string) bool {
	return porterMeasure(stem) > 0
}

func measureGT1(stem string) bool {
	return porterMeasure(stem) > 1
}

func endsDoubleConsonant(word string) bool {
	n := len(word)
	return n >= 2 && word[n-1] == word[n-2] && isConsonant(word, n-1)
}

func endsCVC(word string) bool {
	n := len(word)
	if n >= 3 {
		last := word[n-1]
		if isConsonant(word, n-3) && !isConsonant(word, n-2) && isConsonant(word, n-1) &&
			last != 'w' && last != 'x' && last != 'y' {
			return true
		}
	}
	return n == 2 && !isConsonant(word, 0) && isConsonant(word, 1)
}

func replaceSuffix(word, suffix, replacement string) string {
	if suffix == "" {
		return word + replacement
	}
	if !strings.HasSuffix(word, suffix) {
		return word
	}
	return word[:len(word)-len(suffix)] + replacement
}

// suffixRule rewrites a suffix when the remaining stem satisfies the
// condition. The special suffix "*d" matches a trailing double
// consonant.
type suffixRule struct {
	suffix      string
	replacement string
	condition   func(stem string) bool
}

// applyFirstRule applies the first rule whose suffix matches. When the
// condition of the matched rule fails, the word is returned unchanged.
func applyFirstRule(word string, rules []suffixRule) string {
	for _, rule := range rules {
		if rule.suffix == "*d" {
			if !endsDoubleConsonant(word) {
				continue
			}
			stem := word[:len(word)-2]
			if rule.condition == nil || rule.condition(stem) {
				return stem + rule.replacement
			}
			return word
		}
		if !strings.HasSuffix(word, rule.suffix) {
			continue
		}
		stem := replaceSuffix(word, rule.suffix, "")
		if rule.condition == nil || rule.condition(stem) {
			return stem + rule.replacement
		}
		return word
	}
	return word
}

func porterStep1a(word string) string {
	if strings.HasSuffix(word, "ies") && len(word) == 4 {
		return replaceSuffix(word, "ies", "ie")
	}
	return applyFirstRule(word, []suffixRule{
		{suffix: "sses", replacement: "ss"},
		{suffix: "ies", replacement: "i"},
		{suffix: "ss", replacement: "ss"},
		{suffix: "s", replacement: ""},
	})
}

func porterStep1b(word string) string {
	if strings.HasSuffix(word, "ied") {
		if len(word) == 4 {
			return replaceSuffix(word, "ied", "ie")
		}
		return replaceSuffix(word, "ied", "i")
	}
	if strings.HasSuffix(word, "eed") {
		stem := replaceSuffix(word, "eed", "")
		if positiveMeasure(stem) {
			return stem + "ee"
		}
		return word
	}

	intermediate := ""
	matched := false
	for _, suffix := range []string{"ed", "ing"} {
		if !strings.HasSuffix(word, suffix) {
			continue
		}
		candidate := replaceSuffix(word, suffix, "")
		if containsVowel(candidate) {
			intermediate = candidate
			matched = true
			break
		}
	}
	if !matched {
		return word
	}

	last := intermediate[len(intermediate)-1:]
	return applyFirstRule(intermediate, []suffixRule{
		{suffix: "at", replacement: "ate"},
		{suffix: "bl", replacement: "ble"},
		{suffix: "iz", replacement: "ize"},
		{
			suffix:      "*d",
			replacement: last,
			condition: func(string) bool {
				ch := intermediate[len(intermediate)-1]
				return ch != 'l' && ch != 's' && ch != 'z'
			},
		},
		{
			suffix:      "",
			replacement: "e",
			condition: func(stem string) bool {
				return porterMeasure(stem) == 1 && endsCVC(stem)
			},
		},
	})
}

func porterStep1c(word string) string {
	return applyFirstRule(word, []suffixRule{
		{
			suffix:      "y",
			replacement: "i",
			condition: func(stem string) bool {
				return len(stem) > 1 && isConsonant(stem, len(stem)-1)
			},
		},
	})
}

func porterStep2(word string) string {
	if strings.HasSuffix(word, "alli") && positiveMeasure(replaceSuffix(word, "alli", "")) {
		return porterStep2(replaceSuffix(word, "alli", "al"))
	}
	return applyFirstRule(word, []suffixRule{
		{suffix: "ational", replacement: "ate", condition: positiveMeasure},
		{suffix: "tional", replacement: "tion", condition: positiveMeasure},
		{suffix: "enci", replacement: "ence", condition: positiveMeasure},
		{suffix: "anci", replacement: "ance", condition: positiveMeasure},
		{suffix: "izer", replacement: "ize", condition: positiveMeasure},
		{suffix: "bli", replacement: "ble", condition: positiveMeasure},
		{suffix: "alli", replacement: "al", condition: positiveMeasure},
		{suffix: "entli", replacement: "ent", condition: positiveMeasure},
		{suffix: "eli", replacement: "e", condition: positiveMeasure},
		{suffix: "ousli", replacement: "ous", condition: positiveMeasure},
		{suffix: "ization", replacement: "ize", condition: positiveMeasure},
		{suffix: "ation", replacement: "ate", condition: positiveMeasure},
		{suffix: "ator", replacement: "ate", condition: positiveMeasure},
		{suffix: "alism", replacement: "al", condition: positiveMeasure},
		{suffix: "iveness", replacement: "ive", condition: positiveMeasure},
		{suffix: "fulness", replacement: "ful", condition: positiveMeasure},
		{suffix: "ousness", replacement: "ous", condition: positiveMeasure},
		{suffix: "aliti", replacement: "al", condition: positiveMeasure},
		{suffix: "iviti", replacement: "ive", condition: positiveMeasure},
		{suffix: "biliti", replacement: "ble", condition: positiveMeasure},
		{suffix: "fulli", replacement: "ful", condition: positiveMeasure},
		{
			suffix:      "logi",
			replacement: "log",
			condition: func(string) bool {
				return positiveMeasure(word[:len(word)-3])
			},
		},
	})
}

func porterStep3(word string) string {
	return applyFirstRule(word, []suffixRule{
		{suffix: "icate", replacement: "ic", condition: positiveMeasure},
		{suffix: "ative", replacement: "", condition: positiveMeasure},
		{suffix: "alize", replacement: "al", condition: positiveMeasure},
		{suffix: "iciti", replacement: "ic", condition: positiveMeasure},
		{suffix: "ical", replacement: "ic", condition: positiveMeasure},
		{suffix: "ful", replacement: "", condition: positiveMeasure},
		{suffix: "ness", replacement: "", condition: positiveMeasure},
	})
}

func porterStep4(word string) string {
	return applyFirstRule(word, []suffixRule{
		{suffix: "al", replacement: "", condition: measureGT1},
		{suffix: "ance", replacement: "", condition: measureGT1},
		{suffix: "ence", replacement: "", condition: measureGT1},
		{suffix: "er", replacement: "", condition: measureGT1},
		{suffix: "ic", replacement: "", condition: measureGT1},
		{suffix: "able", replacement: "", condition: measureGT1},
		{suffix: "ible", replacement: "", condition: measureGT1},
		{suffix: "ant", replacement: "", condition: measureGT1},
		{suffix: "ement", replacement: "", condition: measureGT1},
		{suffix: "ment", replacement: "", condition: measureGT1},
		{suffix: "ent", replacement: "", condition: measureGT1},
		{
			suffix:      "ion",
			replacement: "",
			condition: func(stem string) bool {
				if !measureGT1(stem) || len(stem) == 0 {
					return false
				}
				last := stem[len(stem)-1]
				return last == 's' || last == 't'
			},
		},
		{suffix: "ou", replacement: "", condition: measureGT1},
		{suffix: "ism", replacement: "", condition: measureGT1},
		{suffix: "ate", replacement: "", condition: measureGT1},
		{suffix: "iti", replacement: "", condition: measureGT1},
		{suffix: "ous", replacement: "", condition: measureGT1},
		{suffix: "ive", replacement: "", condition: measureGT1},
		{suffix: "ize", replacement: "", condition: measureGT1},
	})
}

func porterStep5a(word string) string {
	if strings.HasSuffix(word, "e") {
		stem := replaceSuffix(word, "e", "")
		m := porterMeasure(stem)
		if m > 1 || (m == 1 && !endsCVC(stem)) {
			return stem
		}
	}
	return word
}

func porterStep5b(word string) string {
	return applyFirstRule(word, []suffixRule{
		{
			suffix:      "ll",
			replacement: "l",
			condition: func(string) bool {
				return measureGT1(word[:len(word)-1])
			},
		},
	})
}
