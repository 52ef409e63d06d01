package glossary

import (
	"slices"
	"strings"
)

// Entry is a single word::pos::definition record.
type Entry struct {
	Word         string
	PartOfSpeech PartOfSpeech
	Definition   string
}

// Stats summarizes a glossary for display.
type Stats struct {
	Words              int
	Definitions        int
	DefinitionsPerWord float64
	PartsOfSpeech      int
	First              string
	Last               string
}

// Glossary is an ordered collection of terms keyed by word.
type Glossary struct {
	terms       map[string]*Term
	words       []string // sorted keys of terms
	posCounts   map[PartOfSpeech]int
	definitions int
}

// New returns an empty glossary.
func New() *Glossary {
	return &Glossary{
		terms:     make(map[string]*Term),
		posCounts: make(map[PartOfSpeech]int),
	}
}

// Size returns the number of distinct words.
func (g *Glossary) Size() int {
	return len(g.words)
}

// DefinitionCount returns the number of definitions across all words.
func (g *Glossary) DefinitionCount() int {
	return g.definitions
}

// PartOfSpeechCount returns the number of distinct parts of speech in use.
func (g *Glossary) PartOfSpeechCount() int {
	return len(g.posCounts)
}

// PartOfSpeechUsage returns how many definitions are tagged with pos.
func (g *Glossary) PartOfSpeechUsage(pos PartOfSpeech) int {
	return g.posCounts[pos]
}

// PartsOfSpeechInUse returns the tags with at least one definition, in display order.
func (g *Glossary) PartsOfSpeechInUse() []PartOfSpeech {
	return orderedTags(g.posCounts)
}

// Add inserts def for word under pos, creating the word if needed.
// It reports false when the exact definition was already present.
func (g *Glossary) Add(word string, pos PartOfSpeech, def string) bool {
	term, ok := g.terms[word]
	if !ok {
		g.insertTerm(NewTerm(word, pos, def))
	} else if !term.Add(pos, def) {
		return false
	}

	g.definitions++
	g.posCounts[pos]++
	return true
}

func (g *Glossary) insertTerm(term *Term) {
	i, _ := slices.BinarySearch(g.words, term.Word())
	g.words = slices.Insert(g.words, i, term.Word())
	g.terms[term.Word()] = term
}

func (g *Glossary) removeTerm(word string) {
	if i, found := slices.BinarySearch(g.words, word); found {
		g.words = slices.Delete(g.words, i, i+1)
	}
	delete(g.terms, word)
}

// adjust applies a change in the number of definitions tagged pos to the
// aggregate counters.
func (g *Glossary) adjust(pos PartOfSpeech, delta int) {
	if delta == 0 {
		return
	}
	g.definitions += delta
	g.posCounts[pos] += delta
	if g.posCounts[pos] <= 0 {
		delete(g.posCounts, pos)
	}
}

// First returns the smallest word, or "" when the glossary is empty.
func (g *Glossary) First() string {
	if len(g.words) == 0 {
		return ""
	}
	return g.words[0]
}

// Last returns the largest word, or "" when the glossary is empty.
func (g *Glossary) Last() string {
	if len(g.words) == 0 {
		return ""
	}
	return g.words[len(g.words)-1]
}

// Range returns the words w with start <= w <= end in order.
//
// Bounds are not validated or swapped: start > end yields an empty result.
// Front ends that want to reject reversed bounds must check them first.
func (g *Glossary) Range(start, end string) []string {
	if start > end {
		return []string{}
	}
	lo, _ := slices.BinarySearch(g.words, start)
	hi, found := slices.BinarySearch(g.words, end)
	if found {
		hi++
	}
	if lo >= hi {
		return []string{}
	}
	return slices.Clone(g.words[lo:hi])
}

// Words returns every word in order.
func (g *Glossary) Words() []string {
	return slices.Clone(g.words)
}

func (g *Glossary) ContainsWord(word string) bool {
	_, ok := g.terms[word]
	return ok
}

// Merged returns the display lines of word. See Term.Merged.
func (g *Glossary) Merged(word string) ([]string, bool) {
	term, ok := g.terms[word]
	if !ok {
		return nil, false
	}
	return term.Merged(), true
}

// PartsOfSpeech returns word followed by its parts of speech. See Term.PartsOfSpeech.
func (g *Glossary) PartsOfSpeech(word string) ([]string, bool) {
	term, ok := g.terms[word]
	if !ok {
		return nil, false
	}
	return term.PartsOfSpeech(), true
}

// Split returns the definitions of word in canonical order.
func (g *Glossary) Split(word string) ([]Sense, bool) {
	term, ok := g.terms[word]
	if !ok {
		return nil, false
	}
	return term.Split(), true
}

// UpdateDef replaces oldDef with newDef for word. The replacement is not
// atomic: see Term.UpdateDef. Counters follow whatever the term ended up with.
func (g *Glossary) UpdateDef(word string, pos PartOfSpeech, oldDef, newDef string) bool {
	term, ok := g.terms[word]
	if !ok {
		return false
	}
	before := term.Size()
	updated := term.UpdateDef(pos, oldDef, newDef)
	g.adjust(pos, term.Size()-before)
	return updated
}

// DeleteDef removes one definition of word. wordRemoved is true when it was
// the word's last definition and the word itself was dropped.
func (g *Glossary) DeleteDef(word string, pos PartOfSpeech, def string) (removed, wordRemoved bool) {
	term, ok := g.terms[word]
	if !ok {
		return false, false
	}
	if !term.DeleteDef(pos, def) {
		return false, false
	}
	g.adjust(pos, -1)

	if term.Size() == 0 {
		g.removeTerm(word)
		return true, true
	}
	return true, false
}

// Entries returns every record in canonical order.
func (g *Glossary) Entries() []Entry {
	entries := make([]Entry, 0, g.definitions)
	for _, word := range g.words {
		for _, sense := range g.terms[word].Split() {
			entries = append(entries, Entry{
				Word:         word,
				PartOfSpeech: sense.PartOfSpeech,
				Definition:   sense.Definition,
			})
		}
	}
	return entries
}

func (g *Glossary) Stats() Stats {
	s := Stats{
		Words:         g.Size(),
		Definitions:   g.DefinitionCount(),
		PartsOfSpeech: g.PartOfSpeechCount(),
		First:         g.First(),
		Last:          g.Last(),
	}
	if s.Words > 0 {
		s.DefinitionsPerWord = float64(s.Definitions) / float64(s.Words)
	}
	return s
}

// String renders the glossary in file format.
func (g *Glossary) String() string {
	var sb strings.Builder
	_, _ = g.WriteTo(&sb)
	return sb.String()
}
