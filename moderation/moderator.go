// Package moderation censors forbidden words in message content before
// it reaches the domain layer. Matching is resilient to casing, leet
// speak, and punctuation noise inserted between letters.
package moderation

import (
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

type Moderator struct {
	matcher     *goahocorasick.Machine
	maskingChar rune
}

// normalizedText is the searchable form of an input plus the mapping
// from normalized rune positions back to the original ones.
type normalizedText struct {
	runes   []rune
	origIdx []int
}

// NewModerator builds the Aho-Corasick automaton from the normalized
// forbidden-word list.
func NewModerator(forbiddenWords []string, maskingChar rune) (*Moderator, error) {
	patterns := make([][]rune, len(forbiddenWords))
	for i, word := range forbiddenWords {
		patterns[i] = normalize(word).runes
	}

	machine := new(goahocorasick.Machine)
	if err := machine.Build(patterns); err != nil {
		return nil, err
	}
	return &Moderator{matcher: machine, maskingChar: maskingChar}, nil
}

// Censor masks every forbidden pattern in content, preserving the
// original spacing and punctuation around the match.
func (m *Moderator) Censor(content string) string {
	mapping := normalize(content)
	if len(mapping.runes) == 0 {
		return content
	}

	spans := m.matcher.MultiPatternSearch(mapping.runes, false)
	if len(spans) == 0 {
		return content
	}

	origRunes := []rune(content)
	for _, span := range spans {
		normStart := span.Pos
		normEnd := normStart + len(span.Word)
		if normStart < 0 || normEnd > len(mapping.origIdx) {
			continue
		}
		// Mask the original range covered by the normalized match,
		// including any noise characters inside it.
		for i := mapping.origIdx[normStart]; i <= mapping.origIdx[normEnd-1]; i++ {
			origRunes[i] = m.maskingChar
		}
	}
	return string(origRunes)
}

// normalize lowercases, undoes common leet substitutions, strips noise
// runes, and records where each surviving rune came from.
func normalize(input string) normalizedText {
	origRunes := []rune(input)
	out := normalizedText{
		runes:   make([]rune, 0, len(origRunes)),
		origIdx: make([]int, 0, len(origRunes)),
	}
	for i, r := range origRunes {
		clean := simplifyRune(r)
		if isNoise(clean) {
			continue
		}
		out.runes = append(out.runes, unicode.ToLower(clean))
		out.origIdx = append(out.origIdx, i)
	}
	return out
}

// simplifyRune maps common leet speak characters back to their
// standard alphabet counterparts.
func simplifyRune(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}

// isNoise identifies characters ignored during the matching phase.
func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}
