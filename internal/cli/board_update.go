package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case reloadMsg:
		if err := m.store.Reload(); err != nil {
			m.footerMsg = err.Error()
			return m, nil
		}
		return m.refresh(), nil
	case tea.KeyMsg:
		if m.mode == boardConfirmDelete {
			return m.updateConfirm(msg)
		}
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "down", "j":
			if m.cursor < len(m.habits)-1 {
				m.cursor++
			}
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case " ", "enter", "x":
			return m.toggle(), nil
		case "d", "delete":
			if h, ok := m.selected(); ok {
				m.mode = boardConfirmDelete
				m.footerMsg = fmt.Sprintf("Delete %s? (y/n)", h.Name)
			}
		case "r":
			return m.Update(reloadMsg{})
		}
	}
	return m, nil
}

// updateConfirm handles the y/n answer to a pending delete.
func (m boardModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		h, ok := m.selected()
		m.mode = boardNormal
		if !ok {
			m.footerMsg = ""
			return m, nil
		}
		if err := m.store.Delete(h.ID); err != nil {
			m.footerMsg = err.Error()
			return m, nil
		}
		m.footerMsg = fmt.Sprintf("removed %s", h.Name)
		return m.refresh(), nil
	case "n", "N", "esc", "q":
		m.mode = boardNormal
		m.footerMsg = "cancelled"
	}
	return m, nil
}

// toggle marks the selected habit done for today, or undoes today's mark.
func (m boardModel) toggle() boardModel {
	h, ok := m.selected()
	if !ok {
		return m
	}

	today := m.store.Today()
	if h.Has(today) {
		updated, err := m.store.Undo(h.ID)
		if err != nil {
			m.footerMsg = err.Error()
			return m
		}
		m.footerMsg = fmt.Sprintf("undid today for %s", updated.Name)
		return m.refresh()
	}

	updated, err := m.store.Mark(h.ID)
	if err != nil {
		m.footerMsg = err.Error()
		return m
	}
	switch {
	case updated.Withered && !h.Withered:
		m.footerMsg = fmt.Sprintf("%s withered after missed days", updated.Name)
	case h.Withered && !updated.Withered:
		m.footerMsg = fmt.Sprintf("%s revived", updated.Name)
	default:
		m.footerMsg = fmt.Sprintf("watered %s, streak %d", updated.Name, updated.Streak())
	}
	return m.refresh()
}
