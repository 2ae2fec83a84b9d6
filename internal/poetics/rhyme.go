package poetics

import (
	"regexp"
	"strings"
)

var (
	lineCommentTail  = regexp.MustCompile(`//.*$`)
	inlineComment    = regexp.MustCompile(`/\*.*\*/`)
	parameterList    = regexp.MustCompile(`\([^)]*\)`)
	codePunctuation  = regexp.MustCompile(`[{};(),\[\]]`)
	leadingMarkers   = regexp.MustCompile(`^[#/;-]+`)
	trailingPunct    = regexp.MustCompile(`[{}();,\[\]]+$`)
	leadingSlashes   = regexp.MustCompile(`//\s*`)
	returnAnnotation = regexp.MustCompile(`\s*->\s*\w+\s*:?$`)
	trailingColon    = regexp.MustCompile(`\s*:\s*$`)
)

// EndWord returns the rhyme-bearing word of a line: the last token once
// comments, parameter lists, punctuation and arrows are removed. For
// snake_case tokens only the part after the last underscore is kept.
func EndWord(line string) string {
	cleaned := lineCommentTail.ReplaceAllString(line, "")
	cleaned = inlineComment.ReplaceAllString(cleaned, "")
	cleaned = parameterList.ReplaceAllString(cleaned, "")
	cleaned = codePunctuation.ReplaceAllString(cleaned, "")
	cleaned = strings.ReplaceAll(cleaned, "->", " ")

	words := strings.Fields(cleaned)
	if len(words) == 0 {
		return ""
	}
	last := words[len(words)-1]
	if i := strings.LastIndexByte(last, '_'); i >= 0 {
		return last[i+1:]
	}
	return last
}

// QuatrainEndWord is EndWord with extra cleanup for quatrain lines: a
// first // marker, a trailing "-> Type:" annotation and a trailing colon
// are dropped first.
func QuatrainEndWord(content string, commentLine bool) string {
	if commentLine || strings.Contains(content, "//") {
		if loc := leadingSlashes.FindStringIndex(content); loc != nil {
			content = content[:loc[0]] + content[loc[1]:]
		}
	}
	content = codePunctuation.ReplaceAllString(content, "")
	content = returnAnnotation.ReplaceAllString(content, "")
	content = trailingColon.ReplaceAllString(content, "")
	return EndWord(strings.TrimSpace(content))
}

// CleanLine strips leading comment markers and trailing punctuation.
func CleanLine(line string) string {
	line = leadingMarkers.ReplaceAllString(line, "")
	line = trailingPunct.ReplaceAllString(line, "")
	return strings.TrimSpace(line)
}

// RhymesWith reports whether two words rhyme: they are equal ignoring case,
// or their endings from the last vowel onward are equal. A word without a
// vowel only rhymes with itself.
func RhymesWith(a, b string) bool {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	if a == b {
		return true
	}
	ia := lastVowel(a)
	ib := lastVowel(b)
	if ia < 0 || ib < 0 {
		return false
	}
	return a[ia:] == b[ib:]
}

func lastVowel(word string) int {
	return strings.LastIndexAny(word, "aeiouy")
}
