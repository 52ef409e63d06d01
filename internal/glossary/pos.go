package glossary

import "slices"

// PartOfSpeech is the tag attached to every definition.
type PartOfSpeech string

const (
	Adjective    PartOfSpeech = "adj"
	Adverb       PartOfSpeech = "adv"
	Conjunction  PartOfSpeech = "conj"
	Interjection PartOfSpeech = "interj"
	Noun         PartOfSpeech = "noun"
	Preposition  PartOfSpeech = "prep"
	Pronoun      PartOfSpeech = "pron"
	Verb         PartOfSpeech = "verb"
)

// posOrder is the display order of parts of speech, independent of insertion order.
var posOrder = [...]PartOfSpeech{
	Adjective,
	Adverb,
	Conjunction,
	Interjection,
	Noun,
	Preposition,
	Pronoun,
	Verb,
}

// PartsOfSpeech returns the recognized tags in display order.
func PartsOfSpeech() []PartOfSpeech {
	return slices.Clone(posOrder[:])
}

// ParsePartOfSpeech returns the tag matching s exactly.
func ParsePartOfSpeech(s string) (PartOfSpeech, bool) {
	pos := PartOfSpeech(s)
	return pos, pos.Valid()
}

func (p PartOfSpeech) Valid() bool {
	return slices.Contains(posOrder[:], p)
}

func (p PartOfSpeech) String() string {
	return string(p)
}

// orderedTags returns the tags present in used, known tags first in display order,
// followed by any unrecognized tags in byte order.
func orderedTags[V any](used map[PartOfSpeech]V) []PartOfSpeech {
	tags := make([]PartOfSpeech, 0, len(used))
	for _, pos := range posOrder {
		if _, ok := used[pos]; ok {
			tags = append(tags, pos)
		}
	}
	if len(tags) == len(used) {
		return tags
	}

	var extra []PartOfSpeech
	for pos := range used {
		if !pos.Valid() {
			extra = append(extra, pos)
		}
	}
	slices.Sort(extra)
	return append(tags, extra...)
}
