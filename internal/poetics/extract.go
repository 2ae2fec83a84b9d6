package poetics

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/eykd/poetic-source-go/internal/domain"
)

var punctuationOnly = regexp.MustCompile(`^[{}();,\[\]]+$`)

// ExtractPoeticLines scans content line by line and returns the lines that
// carry poetic meaning: comments, string literals, code with trailing
// comments, and meaningful code. It fails only when lang has no lexicon.
func ExtractPoeticLines(content string, lang domain.Language) ([]domain.PoeticLine, error) {
	lex, err := LexiconFor(lang)
	if err != nil {
		return nil, err
	}

	var (
		out     []domain.PoeticLine
		inBlock bool
		block   strings.Builder
	)

	emit := func(text string, lineNumber int, typ domain.LineType) {
		out = append(out, domain.PoeticLine{Content: text, LineNumber: lineNumber, Type: typ})
	}
	flushBlock := func(lineNumber int) {
		if text := strings.TrimSpace(block.String()); text != "" {
			emit(text, lineNumber, domain.LineComment)
		}
		block.Reset()
	}

	for i, raw := range strings.Split(content, "\n") {
		lineNumber := i + 1
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if mc := lex.MultiLineComment; mc != nil {
			if inBlock {
				if before, _, found := strings.Cut(line, mc.End); found {
					inBlock = false
					appendBlock(&block, before)
					flushBlock(lineNumber)
				} else {
					appendBlock(&block, line)
				}
				continue
			}
			if _, after, found := strings.Cut(line, mc.Start); found {
				if inner, _, closed := strings.Cut(after, mc.End); closed {
					appendBlock(&block, inner)
					flushBlock(lineNumber)
				} else {
					inBlock = true
					appendBlock(&block, after)
				}
				continue
			}
			// A stray closer still ends whatever precedes it as a comment.
			if before, _, found := strings.Cut(line, mc.End); found {
				appendBlock(&block, before)
				flushBlock(lineNumber)
				continue
			}
		}

		if handled := extractComment(lex, line, lineNumber, emit); handled {
			continue
		}

		if inner, found := lex.firstString(line); found {
			if strings.TrimSpace(inner) != "" {
				emit(inner, lineNumber, domain.LineString)
				continue
			}
		}

		if utf8.RuneCountInString(line) > 1 && !punctuationOnly.MatchString(line) {
			emit(line, lineNumber, domain.LineCode)
		}
	}

	return out, nil
}

// extractComment applies the first single-line comment marker found in line.
// It reports whether a marker matched, even when nothing was emitted.
func extractComment(lex *Lexicon, line string, lineNumber int, emit func(string, int, domain.LineType)) bool {
	for _, marker := range lex.SingleLineComment {
		before, after, found := strings.Cut(line, marker)
		if !found {
			continue
		}
		// Text after a repeated marker is not part of the comment.
		if j := strings.Index(after, marker); j >= 0 {
			after = after[:j]
		}
		code := strings.TrimSpace(before)
		comment := strings.TrimSpace(after)
		switch {
		case code != "" && comment != "":
			emit(code+" "+comment, lineNumber, domain.LineMixed)
		case comment != "":
			emit(comment, lineNumber, domain.LineComment)
		}
		return true
	}
	return false
}

func appendBlock(b *strings.Builder, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	b.WriteByte(' ')
	b.WriteString(text)
}
