// Package glossary implements an in-memory, word-ordered dictionary of
// definitions grouped by part of speech.
//
// # Data Model
//
// A Glossary owns one Term per word. A Term owns, for each part of speech in
// use, a sorted set of definition strings. The glossary keeps aggregate
// counters (total definitions, definitions per part of speech) in step with
// every mutation it forwards to a Term:
//
//   - DefinitionCount equals the sum of Size over all terms.
//   - PartOfSpeechCount equals the number of tags with at least one definition.
//   - A word is present iff it has at least one definition.
//
// # Canonical Order
//
// Words are ordered by byte comparison. Within a term, parts of speech follow
// the fixed order adj, adv, conj, interj, noun, prep, pron, verb, and
// definitions are sorted within each. Display, Split and SaveFile all use this
// order.
//
// # File Format
//
// One record per line, fields separated by "::":
//
//	word::pos::definition
//
// The last record is not followed by a newline. There is no escaping; a word
// or tag containing "::" cannot be represented.
//
// # Concurrency
//
// A Glossary is not safe for concurrent use. Callers sharing one must
// serialize access themselves.
package glossary
