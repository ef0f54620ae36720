// Package numword converts spoken-style number words embedded in free text
// into digit strings. Speech recognizers routinely emit "chay pieces pandrah
// sou" or "two five zero" where the bill needs digits; everything that is not
// a recognized number word passes through untouched.
package numword

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Language selects the number-word vocabulary.
type Language string

const (
	English Language = "English"
	Urdu    Language = "Urdu"
)

// phoneLike matches text that is already a digit sequence (with the usual
// phone separators). Such input is returned verbatim so leading zeros and
// formatting survive.
var phoneLike = regexp.MustCompile(`^[\d\s+\-]+$`)

// englishWords covers single-token cardinals. Tokens are converted
// independently: "twenty five" becomes "20 5", never "25". That mirrors the
// recognizer output we actually see and keeps the transformation reversible
// per word.
var englishWords = map[string]int{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4,
	"five": 5, "six": 6, "seven": 7, "eight": 8, "nine": 9,
	"ten": 10, "eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14,
	"fifteen": 15, "sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19,
	"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
	"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
	"hundred": 100, "thousand": 1000, "million": 1000000,
}

// urduWords maps Urdu cardinals 0-20, tens to 90 and 100 onto digits.
var urduWords = map[string]string{
	"ایک": "1", "دو": "2", "تین": "3", "چار": "4", "پانچ": "5",
	"چھے": "6", "سات": "7", "آٹھ": "8", "نو": "9", "دس": "10",
	"گیارہ": "11", "بارہ": "12", "تیرہ": "13", "چودہ": "14",
	"پندرہ": "15", "سولہ": "16", "سترہ": "17", "اٹھارہ": "18",
	"انیس": "19", "بیس": "20",
	"تیس": "30", "چالیس": "40", "پچاس": "50", "ساٹھ": "60",
	"ستر": "70", "اسّی": "80", "نوے": "90", "سو": "100",
	"صفر": "0",
}

// Normalize replaces recognized number words in text with digits. Unknown
// words are kept verbatim and an unknown language is the identity; this never
// fails.
func Normalize(text string, lang Language) string {
	switch lang {
	case English:
		return normalizeEnglish(text)
	case Urdu:
		return normalizeUrdu(text)
	default:
		return text
	}
}

func normalizeEnglish(text string) string {
	if phoneLike.MatchString(text) {
		return text
	}
	words := strings.Fields(text)
	for i, w := range words {
		if n, ok := wordToNum(w); ok {
			words[i] = strconv.Itoa(n)
		}
	}
	return strings.Join(words, " ")
}

// wordToNum converts a single English token. Hyphenated compounds like
// "twenty-five" are one recognizer token, so they are combined here; anything
// spanning multiple whitespace-separated tokens is not.
func wordToNum(w string) (int, bool) {
	w = strings.ToLower(w)
	if n, ok := englishWords[w]; ok {
		return n, true
	}
	tens, unit, ok := strings.Cut(w, "-")
	if !ok {
		return 0, false
	}
	t, okT := englishWords[tens]
	u, okU := englishWords[unit]
	if !okT || !okU || t < 20 || t > 90 || t%10 != 0 || u < 1 || u > 9 {
		return 0, false
	}
	return t + u, true
}

func normalizeUrdu(text string) string {
	if phoneLike.MatchString(text) {
		return text
	}
	return replaceWholeWords(text, urduWords)
}

// replaceWholeWords substitutes table entries on whole words only. The text
// is scanned once, against the original word boundaries, so a substituted
// digit can never be corrupted by a later replacement.
func replaceWholeWords(text string, table map[string]string) string {
	var b strings.Builder
	b.Grow(len(text))

	runes := []rune(text)
	for i := 0; i < len(runes); {
		if !isWordRune(runes[i]) {
			b.WriteRune(runes[i])
			i++
			continue
		}
		j := i
		for j < len(runes) && isWordRune(runes[j]) {
			j++
		}
		word := string(runes[i:j])
		if digits, ok := table[word]; ok {
			b.WriteString(digits)
		} else {
			b.WriteString(word)
		}
		i = j
	}
	return b.String()
}

// Combining marks count as word runes: Urdu spellings like اسّی carry a
// shadda that must not split the word.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}
