package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/dayboard/internal/model"
	"github.com/sandeepkv93/dayboard/internal/state"
)

func (m Model) currentNote() (model.Note, bool) {
	notes := m.State.NotesByRecent()
	if len(notes) == 0 || m.Notes.Cursor < 0 || m.Notes.Cursor >= len(notes) {
		return model.Note{}, false
	}
	return notes[m.Notes.Cursor], true
}

func (m Model) handleNotesKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.Notes.Editing {
		return m.handleNoteEditorKey(msg)
	}
	switch msg.String() {
	case "up", "k":
		if m.Notes.Cursor > 0 {
			m.Notes.Cursor--
		}
	case "down", "j":
		if m.Notes.Cursor < len(m.State.Notes)-1 {
			m.Notes.Cursor++
		}
	case "e", "enter":
		note, ok := m.currentNote()
		if !ok {
			return m, nil
		}
		m.Notes.Editing = true
		m.noteEditor.SetValue(note.Content)
		return m, m.noteEditor.Focus()
	case "d":
		note, ok := m.currentNote()
		if !ok {
			return m, nil
		}
		next, keys := m.State.DeleteNote(note.ID)
		if m.apply(next, keys, nil) {
			m.Status = StatusBar{Text: fmt.Sprintf("deleted note: %s", note.Title)}
		}
	}
	m.Notes.Cursor = clampCursor(m.Notes.Cursor, len(m.State.Notes))
	return m, nil
}

func (m Model) handleNoteEditorKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Notes.Editing = false
		m.noteEditor.Blur()
		m.Status = StatusBar{Text: "edit cancelled"}
		return m, nil
	case "ctrl+s":
		note, ok := m.currentNote()
		m.Notes.Editing = false
		m.noteEditor.Blur()
		if !ok {
			return m, nil
		}
		content := m.noteEditor.Value()
		next, keys, err := m.State.UpdateNote(note.ID, state.NoteEdit{Content: &content}, m.clock.Now())
		if m.apply(next, keys, err) {
			// The saved note is now the most recent one.
			m.Notes.Cursor = 0
			m.Status = StatusBar{Text: fmt.Sprintf("saved note: %s", note.Title)}
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.noteEditor, cmd = m.noteEditor.Update(msg)
	return m, cmd
}
