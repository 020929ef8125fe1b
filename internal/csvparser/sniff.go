package csvparser

import (
	"errors"
	"sort"
	"strings"
	"unicode"

	"github.com/ginjaninja78/homebank-converter/internal/config"
)

// ErrCannotSniff is returned when no delimiter can be inferred from a sample.
var ErrCannotSniff = errors.New("could not determine delimiter")

// candidateDelimiters in order of preference when counts tie.
var candidateDelimiters = []rune{';', ',', '\t', '|', ':'}

// Sniff infers the dialect of a text sample.
//
// DETECTION:
//  1. Quoted fields: a double-quoted value directly followed by a
//     non-word character votes for that character as delimiter.
//  2. Otherwise each candidate delimiter scores the number of sample lines
//     it appears in; ties go to the earlier candidate.
//
// Only '"' is recognised as quote character since encoding/csv cannot read
// anything else.
func Sniff(sample string) (config.Dialect, error) {
	dialect := config.Dialect{
		QuoteChar:      `"`,
		Quoting:        config.QuoteMinimal,
		LineTerminator: "\r\n",
	}

	delim, ok := sniffQuoted(sample)
	if !ok {
		delim, ok = sniffUnquoted(sample)
	}
	if !ok {
		return config.Dialect{}, ErrCannotSniff
	}

	dialect.Delimiter = string(delim)
	dialect.SkipInitialSpace = followedBySpace(sample, delim)
	return dialect, nil
}

// sniffQuoted votes on the character that follows each closing quote.
func sniffQuoted(sample string) (rune, bool) {
	votes := make(map[rune]int)
	runes := []rune(sample)

	for i := 0; i < len(runes); i++ {
		if runes[i] != '"' {
			continue
		}
		// Opening quote must start a field.
		if i > 0 && isWordRune(runes[i-1]) {
			continue
		}
		end := i + 1
		for end < len(runes) && runes[end] != '"' && runes[end] != '\n' {
			end++
		}
		if end >= len(runes) || runes[end] != '"' {
			break
		}
		if end+1 < len(runes) {
			next := runes[end+1]
			if !isWordRune(next) && next != '\n' && next != '\r' && next != '"' && next != ' ' {
				votes[next]++
			}
		}
		i = end
	}

	return bestVote(votes)
}

// sniffUnquoted scores candidates by the number of lines they occur in.
func sniffUnquoted(sample string) (rune, bool) {
	votes := make(map[rune]int)
	for _, line := range strings.Split(sample, "\n") {
		for _, d := range candidateDelimiters {
			if strings.ContainsRune(line, d) {
				votes[d]++
			}
		}
	}
	return bestVote(votes)
}

func bestVote(votes map[rune]int) (rune, bool) {
	var best rune
	bestCount := 0
	// Candidates first, in preference order, so ties resolve predictably.
	for _, d := range candidateDelimiters {
		if votes[d] > bestCount {
			best, bestCount = d, votes[d]
		}
	}
	others := make([]rune, 0, len(votes))
	for d := range votes {
		others = append(others, d)
	}
	sort.Slice(others, func(i, j int) bool { return others[i] < others[j] })
	for _, d := range others {
		if votes[d] > bestCount {
			best, bestCount = d, votes[d]
		}
	}
	return best, bestCount > 0
}

// followedBySpace reports whether every delimiter on the first line that has
// one is followed by a space.
func followedBySpace(sample string, delim rune) bool {
	for _, line := range strings.Split(sample, "\n") {
		if !strings.ContainsRune(line, delim) {
			continue
		}
		parts := strings.Split(line, string(delim))
		for _, p := range parts[1:] {
			if p != "" && p != "\r" && !strings.HasPrefix(p, " ") {
				return false
			}
		}
		return true
	}
	return false
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Sample returns the part of content used for sniffing: the first line when
// n is zero, otherwise the first n characters.
func Sample(content string, n int) string {
	if n <= 0 {
		if i := strings.IndexByte(content, '\n'); i >= 0 {
			return content[:i+1]
		}
		return content
	}
	runes := []rune(content)
	if len(runes) <= n {
		return content
	}
	return string(runes[:n])
}
