package console

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/glossary/internal/audit"
	"github.com/mrlokans/glossary/internal/entities"
	"github.com/mrlokans/glossary/internal/glossary"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func newTestGlossary() *glossary.Glossary {
	g := glossary.New()
	g.Add("cat", glossary.Noun, "a feline")
	g.Add("cat", glossary.Verb, "to catch")
	g.Add("apple", glossary.Noun, "a fruit")
	g.Add("run", glossary.Verb, "to move quickly")
	return g
}

// runScript feeds lines to a console and returns everything it printed.
func runScript(t *testing.T, g *glossary.Glossary, lines ...string) string {
	t.Helper()
	var out strings.Builder
	err := New(g, strings.NewReader(strings.Join(lines, "\n")+"\n"), &out).Run()
	require.NoError(t, err)
	return out.String()
}

func TestConsole_MenuAndQuit(t *testing.T) {
	out := runScript(t, newTestGlossary(), "11")

	assert.Contains(t, out, "Main menu")
	assert.Contains(t, out, "1.\tGet metadata\n")
	assert.Contains(t, out, "10.\tSave dictionary\n")
	assert.Contains(t, out, "11.\tQuit\n")
	assert.Equal(t, 1, strings.Count(out, "Main menu"))
}

func TestConsole_EndOfInputQuits(t *testing.T) {
	var out strings.Builder
	err := New(newTestGlossary(), strings.NewReader("3\n"), &out).Run()

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Select a word: ")
}

func TestConsole_InvalidSelection(t *testing.T) {
	out := runScript(t, newTestGlossary(), "abc", "42", "0", "11")

	assert.Equal(t, 3, strings.Count(out, "Invalid selection"))
	assert.Equal(t, 4, strings.Count(out, "Main menu"))
}

func TestConsole_Metadata(t *testing.T) {
	out := runScript(t, newTestGlossary(), "1", "11")

	assert.Contains(t, out, "\nwords: 3\ndefinitions: 4\ndefinitions per word: 1.333\nparts of speech: 2\nfirst word: apple\nlast word: run\n")
}

func TestConsole_MetadataEmpty(t *testing.T) {
	out := runScript(t, glossary.New(), "1", "11")

	assert.Contains(t, out, "words: 0\ndefinitions: 0\ndefinitions per word: 0.000\n")
}

func TestConsole_Range(t *testing.T) {
	out := runScript(t, newTestGlossary(), "2", "a", "d", "11")

	assert.Contains(t, out, "The words between a and d are: \n\tapple\n\tcat\n")
	assert.NotContains(t, out, "\trun\n")
}

func TestConsole_RangeRejectsReversedBounds(t *testing.T) {
	out := runScript(t, newTestGlossary(), "2", "z", "a", "11")

	assert.Contains(t, out, "Invalid selection")
	assert.NotContains(t, out, "The words between")
}

func TestConsole_GetWord(t *testing.T) {
	out := runScript(t, newTestGlossary(), "3", "cat", "3", "dog", "11")

	assert.Contains(t, out, "cat\n\tnoun.\ta feline\n\tverb.\tto catch\n")
	assert.Contains(t, out, "dog not found")
}

func TestConsole_FirstAndLast(t *testing.T) {
	out := runScript(t, newTestGlossary(), "4", "5", "11")

	assert.Contains(t, out, "apple\n\tnoun.\ta fruit\n")
	assert.Contains(t, out, "run\n\tverb.\tto move quickly\n")
}

func TestConsole_FirstOnEmpty(t *testing.T) {
	out := runScript(t, glossary.New(), "4", "5", "6", "7", "8", "11")

	assert.Equal(t, 5, strings.Count(out, emptyGlossaryMsg))
}

func TestConsole_PartsOfSpeechRepromptsUntilFound(t *testing.T) {
	out := runScript(t, newTestGlossary(), "6", "dog", "cat", "11")

	assert.Contains(t, out, "dog not found")
	assert.Contains(t, out, "cat\n\tnoun\n\tverb\n")
}

func TestConsole_UpdateDefinition(t *testing.T) {
	g := newTestGlossary()

	out := runScript(t, g, "7", "dog", "cat", "9", "1", "a small domesticated mammal", "11")

	assert.Contains(t, out, "Definitions for cat\n1. noun. \ta feline\n2. verb. \tto catch\n3. Back to main menu\n")
	assert.Contains(t, out, "Definition updated")

	senses, _ := g.Split("cat")
	assert.Contains(t, senses, glossary.Sense{PartOfSpeech: glossary.Noun, Definition: "a small domesticated mammal"})
	assert.NotContains(t, senses, glossary.Sense{PartOfSpeech: glossary.Noun, Definition: "a feline"})
}

func TestConsole_UpdateDefinitionBack(t *testing.T) {
	g := newTestGlossary()

	out := runScript(t, g, "7", "cat", "3", "11")

	assert.NotContains(t, out, "Type a new definition")
	assert.Equal(t, 4, g.DefinitionCount())
}

func TestConsole_UpdateToExistingDefinition(t *testing.T) {
	g := newTestGlossary()
	g.Add("cat", glossary.Noun, "a pet")

	out := runScript(t, g, "7", "cat", "1", "a pet", "11")

	assert.Contains(t, out, "Definition not updated")
	assert.Equal(t, 4, g.DefinitionCount())
}

func TestConsole_DeleteDefinition(t *testing.T) {
	g := newTestGlossary()

	out := runScript(t, g, "8", "apple", "1", "11")

	assert.Contains(t, out, "Definition removed")
	assert.Contains(t, out, "apple removed")
	assert.False(t, g.ContainsWord("apple"))
	assert.Equal(t, "cat", g.First())
}

func TestConsole_DeleteKeepsWordWithOtherDefinitions(t *testing.T) {
	g := newTestGlossary()

	out := runScript(t, g, "8", "cat", "2", "11")

	assert.Contains(t, out, "Definition removed")
	assert.NotContains(t, out, "cat removed")
	assert.True(t, g.ContainsWord("cat"))
}

func TestConsole_AddDefinition(t *testing.T) {
	g := newTestGlossary()

	out := runScript(t, g, "9", "dog", "animal", "Noun", "noun", "a canine", "11")

	assert.Contains(t, out, "Valid parts of speech: [adj, adv, conj, interj, noun, prep, pron, verb]")
	assert.Equal(t, 3, strings.Count(out, "Type a valid part of speech: "))
	assert.Contains(t, out, "Successfully added!")

	senses, ok := g.Split("dog")
	require.True(t, ok)
	assert.Equal(t, []glossary.Sense{{PartOfSpeech: glossary.Noun, Definition: "a canine"}}, senses)
}

func TestConsole_AddDuplicate(t *testing.T) {
	g := newTestGlossary()

	out := runScript(t, g, "9", "cat", "noun", "a feline", "11")

	assert.Contains(t, out, "This definition was already added.")
	assert.Equal(t, 4, g.DefinitionCount())
}

func TestConsole_Save(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.txt")

	out := runScript(t, newTestGlossary(), "10", path, "11")

	assert.Contains(t, out, "Successfully saved dictionary to "+path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "apple::noun::a fruit\ncat::noun::a feline\ncat::verb::to catch\nrun::verb::to move quickly", string(data))
}

func TestConsole_SaveFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "saved.txt")

	out := runScript(t, newTestGlossary(), "10", path, "11")

	assert.Contains(t, out, "Could not save dictionary")
}

func TestConsole_AuditsChanges(t *testing.T) {
	auditDir := t.TempDir()
	auditor := audit.NewAuditor(auditDir)
	g := newTestGlossary()
	savePath := filepath.Join(t.TempDir(), "saved.txt")

	script := strings.Join([]string{
		"9", "dog", "noun", "a canine",
		"9", "dog", "noun", "a canine",
		"8", "run", "1",
		"10", savePath,
		"11",
	}, "\n") + "\n"

	var out strings.Builder
	require.NoError(t, New(g, strings.NewReader(script), &out).WithAuditor(auditor).Run())

	events := auditor.Events()
	require.Len(t, events, 4)
	assert.Equal(t, entities.AuditEventAdd, events[0].EventType)
	assert.Equal(t, entities.AuditStatusSuccess, events[0].Status)
	assert.Equal(t, entities.AuditStatusNoop, events[1].Status)
	assert.Equal(t, entities.AuditEventDelete, events[2].EventType)
	assert.Equal(t, "run", events[2].Word)
	assert.Equal(t, entities.AuditEventSave, events[3].EventType)

	data, err := os.ReadFile(filepath.Join(auditDir, auditor.SessionID.String()+".json"))
	require.NoError(t, err)
	var session audit.Session
	require.NoError(t, json.Unmarshal(data, &session))
	assert.Len(t, session.Events, 4)
}
