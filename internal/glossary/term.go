package glossary

import "slices"

// Sense is a single definition of a term together with its part of speech.
type Sense struct {
	PartOfSpeech PartOfSpeech
	Definition   string
}

// Term holds every definition of one word, grouped by part of speech.
// Definitions within a part of speech form a sorted set.
type Term struct {
	word        string
	definitions map[PartOfSpeech][]string
	size        int
}

// NewTerm creates a term with its first definition.
func NewTerm(word string, pos PartOfSpeech, def string) *Term {
	t := &Term{
		word:        word,
		definitions: make(map[PartOfSpeech][]string),
	}
	t.Add(pos, def)
	return t
}

func (t *Term) Word() string {
	return t.word
}

// Size returns the number of definitions across all parts of speech.
func (t *Term) Size() int {
	return t.size
}

// Add inserts def under pos. It reports false if the pair was already present.
func (t *Term) Add(pos PartOfSpeech, def string) bool {
	defs := t.definitions[pos]
	i, found := slices.BinarySearch(defs, def)
	if found {
		return false
	}
	t.definitions[pos] = slices.Insert(defs, i, def)
	t.size++
	return true
}

// Merged returns the word followed by one display line per definition,
// formatted as "\t<pos>.\t<definition>".
func (t *Term) Merged() []string {
	lines := make([]string, 0, t.size+1)
	lines = append(lines, t.word)
	for _, sense := range t.Split() {
		lines = append(lines, "\t"+string(sense.PartOfSpeech)+".\t"+sense.Definition)
	}
	return lines
}

// Split returns the definitions in canonical order: parts of speech in display
// order, definitions sorted within each.
func (t *Term) Split() []Sense {
	senses := make([]Sense, 0, t.size)
	for _, pos := range orderedTags(t.definitions) {
		for _, def := range t.definitions[pos] {
			senses = append(senses, Sense{PartOfSpeech: pos, Definition: def})
		}
	}
	return senses
}

// PartsOfSpeech returns the word followed by "\t<pos>" for every part of speech in use.
func (t *Term) PartsOfSpeech() []string {
	tags := orderedTags(t.definitions)
	lines := make([]string, 0, len(tags)+1)
	lines = append(lines, t.word)
	for _, pos := range tags {
		lines = append(lines, "\t"+string(pos))
	}
	return lines
}

// UpdateDef replaces oldDef with newDef under pos. It returns false without
// changes when oldDef is absent. Otherwise oldDef is removed and the result of
// inserting newDef is returned: if newDef already existed, oldDef stays removed
// and false is returned.
func (t *Term) UpdateDef(pos PartOfSpeech, oldDef, newDef string) bool {
	defs := t.definitions[pos]
	i, found := slices.BinarySearch(defs, oldDef)
	if !found {
		return false
	}
	t.definitions[pos] = slices.Delete(defs, i, i+1)
	t.size--
	return t.Add(pos, newDef)
}

// DeleteDef removes def from pos, dropping the part of speech once it has no
// definitions left.
func (t *Term) DeleteDef(pos PartOfSpeech, def string) bool {
	defs := t.definitions[pos]
	i, found := slices.BinarySearch(defs, def)
	if !found {
		return false
	}
	defs = slices.Delete(defs, i, i+1)
	if len(defs) == 0 {
		delete(t.definitions, pos)
	} else {
		t.definitions[pos] = defs
	}
	t.size--
	return true
}
