package console

import (
	"fmt"
	"strings"

	"github.com/mrlokans/glossary/internal/entities"
	"github.com/mrlokans/glossary/internal/glossary"
)

const emptyGlossaryMsg = "This dictionary is empty"

func (c *Console) showMetadata() error {
	stats := c.glossary.Stats()

	var sb strings.Builder
	fmt.Fprintf(&sb, "\nwords: %d", stats.Words)
	fmt.Fprintf(&sb, "\ndefinitions: %d", stats.Definitions)
	fmt.Fprintf(&sb, "\ndefinitions per word: %.3f", stats.DefinitionsPerWord)
	fmt.Fprintf(&sb, "\nparts of speech: %d", stats.PartsOfSpeech)
	fmt.Fprintf(&sb, "\nfirst word: %s", stats.First)
	fmt.Fprintf(&sb, "\nlast word: %s", stats.Last)

	c.println(sb.String())
	return nil
}

// showRange rejects reversed bounds itself; Glossary.Range would silently
// return nothing for them.
func (c *Console) showRange() error {
	start, err := c.ask("Starting word: ")
	if err != nil {
		return err
	}
	end, err := c.ask("Ending word: ")
	if err != nil {
		return err
	}
	c.println("")

	if start > end {
		c.println(ErrorStyle.Render("Invalid selection"))
		return nil
	}

	c.println(fmt.Sprintf("The words between %s and %s are: ", start, end))
	for _, word := range c.glossary.Range(start, end) {
		c.println("\t" + word)
	}
	return nil
}

func (c *Console) showWord() error {
	word, err := c.ask("Select a word: ")
	if err != nil {
		return err
	}

	lines, ok := c.glossary.Merged(word)
	if !ok {
		c.println("\n" + ErrorStyle.Render(word+" not found"))
		return nil
	}
	c.println("")
	c.printTerm(lines)
	return nil
}

func (c *Console) showFirst() error {
	return c.showBoundary(c.glossary.First())
}

func (c *Console) showLast() error {
	return c.showBoundary(c.glossary.Last())
}

func (c *Console) showBoundary(word string) error {
	c.println("")
	lines, ok := c.glossary.Merged(word)
	if !ok {
		c.println(emptyGlossaryMsg)
		return nil
	}
	c.printTerm(lines)
	return nil
}

func (c *Console) showPartsOfSpeech() error {
	if c.glossary.Size() == 0 {
		c.println(emptyGlossaryMsg)
		return nil
	}

	for {
		word, err := c.ask("Select a word: ")
		if err != nil {
			return err
		}
		lines, ok := c.glossary.PartsOfSpeech(word)
		if ok {
			c.println("")
			c.printTerm(lines)
			return nil
		}
		c.println("\n" + ErrorStyle.Render(word+" not found") + "\n")
	}
}

// printTerm prints a word header in bold followed by its indented lines.
func (c *Console) printTerm(lines []string) {
	if len(lines) == 0 {
		return
	}
	c.println(WordStyle.Render(lines[0]))
	c.printLines(lines[1:])
}

// selectWord prompts until an existing word is entered.
func (c *Console) selectWord() (string, []glossary.Sense, error) {
	for {
		word, err := c.ask("Select a word: ")
		if err != nil {
			return "", nil, err
		}
		if senses, ok := c.glossary.Split(word); ok {
			return word, senses, nil
		}
		c.println(ErrorStyle.Render("Invalid selection") + "\n")
	}
}

// selectSense lists the senses of word and prompts for one of them. ok is
// false when the user picks "Back to main menu".
func (c *Console) selectSense(word string, senses []glossary.Sense, action string) (glossary.Sense, bool, error) {
	c.println("\nDefinitions for " + word)
	for i, sense := range senses {
		c.printf("%d. %s. \t%s\n", i+1, sense.PartOfSpeech, sense.Definition)
	}
	back := len(senses) + 1
	c.printf("%d. Back to main menu\n", back)

	for {
		c.prompt(fmt.Sprintf("\nSelect a definition to %s: ", action))
		choice, err := c.readInt()
		if err != nil {
			return glossary.Sense{}, false, err
		}
		if choice == back {
			return glossary.Sense{}, false, nil
		}
		if choice >= 1 && choice < back {
			return senses[choice-1], true, nil
		}
		c.println(ErrorStyle.Render("Invalid selection"))
	}
}

func (c *Console) updateDefinition() error {
	if c.glossary.Size() == 0 {
		c.println("\n" + emptyGlossaryMsg)
		return nil
	}

	word, senses, err := c.selectWord()
	if err != nil {
		return err
	}
	sense, ok, err := c.selectSense(word, senses, "update")
	if err != nil || !ok {
		return err
	}

	newDef, err := c.ask("Type a new definition: ")
	if err != nil {
		return err
	}
	c.println("")

	updated := c.glossary.UpdateDef(word, sense.PartOfSpeech, sense.Definition, newDef)
	c.recordChange(entities.AuditEventUpdate, word, sense.PartOfSpeech,
		fmt.Sprintf("%q -> %q", sense.Definition, newDef), updated)

	if updated {
		c.println(SuccessStyle.Render("Definition updated"))
	} else {
		c.println(ErrorStyle.Render("Definition not updated"))
	}
	return nil
}

func (c *Console) deleteDefinition() error {
	if c.glossary.Size() == 0 {
		c.println("\n" + emptyGlossaryMsg)
		return nil
	}

	word, senses, err := c.selectWord()
	if err != nil {
		return err
	}
	sense, ok, err := c.selectSense(word, senses, "remove")
	if err != nil || !ok {
		return err
	}
	c.println("")

	removed, wordRemoved := c.glossary.DeleteDef(word, sense.PartOfSpeech, sense.Definition)
	c.recordChange(entities.AuditEventDelete, word, sense.PartOfSpeech, sense.Definition, removed)

	if removed {
		c.println(SuccessStyle.Render("Definition removed"))
	} else {
		c.println(ErrorStyle.Render("Definition not removed"))
	}
	if wordRemoved {
		c.println(word + " removed")
	}
	return nil
}

func (c *Console) addDefinition() error {
	word, err := c.ask("Type a word: ")
	if err != nil {
		return err
	}

	tags := glossary.PartsOfSpeech()
	names := make([]string, len(tags))
	for i, pos := range tags {
		names[i] = string(pos)
	}
	c.println("Valid parts of speech: [" + strings.Join(names, ", ") + "]")

	var pos glossary.PartOfSpeech
	for {
		input, err := c.ask("Type a valid part of speech: ")
		if err != nil {
			return err
		}
		var valid bool
		if pos, valid = glossary.ParsePartOfSpeech(input); valid {
			break
		}
	}

	def, err := c.ask("Type a definition: ")
	if err != nil {
		return err
	}

	added := c.glossary.Add(word, pos, def)
	c.recordChange(entities.AuditEventAdd, word, pos, def, added)

	if added {
		c.println("\n" + SuccessStyle.Render("Successfully added!"))
	} else {
		c.println("\n" + ErrorStyle.Render("This definition was already added."))
	}
	return nil
}

func (c *Console) save() error {
	path, err := c.ask("Type a filename with path: ")
	if err != nil {
		return err
	}
	c.println("")

	saveErr := c.glossary.SaveFile(path)
	if c.auditor != nil {
		c.auditor.RecordResult(entities.AuditEventSave, "save to "+path, saveErr)
	}

	if saveErr != nil {
		c.println(ErrorStyle.Render("Could not save dictionary: " + saveErr.Error()))
		return nil
	}
	c.println(SuccessStyle.Render("Successfully saved dictionary to " + path))
	return nil
}

func (c *Console) recordChange(eventType entities.AuditEventType, word string, pos glossary.PartOfSpeech, description string, changed bool) {
	if c.auditor == nil {
		return
	}
	c.auditor.RecordChange(eventType, word, string(pos), description, changed)
}
