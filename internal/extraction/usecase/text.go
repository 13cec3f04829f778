package usecase

import (
	"regexp"
	"strings"
)

var reWord = regexp.MustCompile(`[a-z0-9]+(?:'[a-z]+)?`)

// words returns the lowercased word tokens of s.
func words(s string) []string {
	return reWord.FindAllString(strings.ToLower(s), -1)
}

// features is a tokenized view of a text used by every keyword lookup.
type features struct {
	words  []string
	set    map[string]struct{}
	padded string
}

func newFeatures(s string) features {
	ws := words(s)
	set := make(map[string]struct{}, len(ws))
	for _, w := range ws {
		set[w] = struct{}{}
	}
	return features{
		words:  ws,
		set:    set,
		padded: " " + strings.Join(ws, " ") + " ",
	}
}

// has reports whether term occurs as a whole word or, for multi-word terms,
// as a whole phrase.
func (f features) has(term string) bool {
	if strings.Contains(term, " ") {
		return strings.Contains(f.padded, " "+term+" ")
	}
	_, ok := f.set[term]
	return ok
}

func (f features) hasAny(terms []string) bool {
	for _, t := range terms {
		if f.has(t) {
			return true
		}
	}
	return false
}

func (f features) startsWithAny(terms []string) bool {
	for _, t := range terms {
		if strings.HasPrefix(f.padded, " "+t+" ") {
			return true
		}
	}
	return false
}

// wordSet returns the distinct words of s.
func wordSet(s string) map[string]struct{} {
	return newFeatures(s).set
}
