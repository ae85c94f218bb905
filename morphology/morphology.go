// Package morphology supplies word-level facts (adjective, verb and
// linking-verb status) to the tokenizer and to rules. Harper's real dictionary is a
// large curated word list; since no such list ships anywhere in the
// retrieved corpus and fabricating one would mean inventing a dependency
// that doesn't exist, this package instead combines a small static
// override list with a conservative suffix heuristic (see DESIGN.md).
package morphology

import (
	"strings"
	"sync"
)

// Store answers morphological questions about a lowercased word.
type Store interface {
	IsAdjective(word string) bool
	IsVerb(word string) bool
	IsLinkingVerb(word string) bool
}

type staticStore struct {
	adjectives map[string]bool
	notAdj     map[string]bool
	suffixes   []string
	verbs      map[string]bool
	linking    map[string]bool
}

// knownAdjectives lists common adjectives, including the comparatives the
// ThenThan rule's test corpus exercises directly ("shorter", "longer",
// "stronger", "crazier", "less", "more"), so those do not depend on the
// suffix heuristic ("less" and "more" match no listed suffix).
var knownAdjectives = []string{
	"good", "bad", "better", "worse", "best", "worst",
	"shorter", "longer", "stronger", "weaker", "crazier", "happier",
	"gross", "sharp", "tiny", "dirty", "proper", "major",
	"less", "more", "least", "most",
}

// stopList names words IsAdjective never reports as adjectives, whatever
// the known list or the suffix heuristic says: the words ThenThan excludes
// as anchors ("back", "this", "so", "but"), and "other", which the "-er"
// suffix would otherwise match (ThenThan matches it through its explicit
// WordSet instead).
var stopList = []string{
	"back", "this", "so", "but", "other",
}

// adjectiveSuffixes is the conservative suffix list behind the fallback
// heuristic: comparative/superlative and common adjectival endings.
var adjectiveSuffixes = []string{"er", "est", "ous", "ful", "ive", "al", "ic"}

// linkingVerbs are the copula forms of "to be"; ItsIts and similar rules
// treat them as a distinct, smaller verb family from action verbs.
var linkingVerbs = []string{"is", "are", "was", "were", "be", "been", "being", "am"}

// knownVerbs lists common action verbs the supplemental rules consult.
// Like knownAdjectives, this stands in for a real dictionary lookup the
// corpus does not ship (see the package doc comment).
var knownVerbs = []string{
	"is", "are", "was", "were", "be", "been", "being", "am",
	"go", "goes", "going", "went", "gone",
	"do", "does", "did", "done", "doing",
	"have", "has", "had", "having",
	"make", "makes", "made", "making",
	"run", "runs", "ran", "running",
	"work", "works", "worked", "working",
	"need", "needs", "needed", "needing",
	"want", "wants", "wanted", "wanting",
	"seem", "seems", "seemed", "seeming",
	"lack", "lacks", "lacked", "lacking",
	"define", "defines", "defined", "defining",
}

func newStaticStore() *staticStore {
	adj := make(map[string]bool, len(knownAdjectives))
	for _, w := range knownAdjectives {
		adj[w] = true
	}
	notAdj := make(map[string]bool, len(stopList))
	for _, w := range stopList {
		notAdj[w] = true
	}
	verbs := make(map[string]bool, len(knownVerbs))
	for _, w := range knownVerbs {
		verbs[w] = true
	}
	linking := make(map[string]bool, len(linkingVerbs))
	for _, w := range linkingVerbs {
		linking[w] = true
	}
	return &staticStore{adjectives: adj, notAdj: notAdj, suffixes: adjectiveSuffixes, verbs: verbs, linking: linking}
}

// IsAdjective reports whether word (assumed already lowercased) is known
// or heuristically guessed to be an adjective.
func (s *staticStore) IsAdjective(word string) bool {
	if s.notAdj[word] {
		return false
	}
	if s.adjectives[word] {
		return true
	}
	if len(word) < 4 {
		return false
	}
	for _, suf := range s.suffixes {
		if strings.HasSuffix(word, suf) && len(word) > len(suf)+2 {
			return true
		}
	}
	return false
}

// IsVerb reports whether word (assumed already lowercased) is a known verb.
func (s *staticStore) IsVerb(word string) bool {
	return s.verbs[word]
}

// IsLinkingVerb reports whether word is a copula form of "to be".
func (s *staticStore) IsLinkingVerb(word string) bool {
	return s.linking[word]
}

// Default returns the process-wide static Store, built once on first use.
var Default = sync.OnceValue(func() Store {
	return newStaticStore()
})
