package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func sized(t *testing.T, m ViewerModel) ViewerModel {
	t.Helper()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(ViewerModel)
}

func TestViewerModel_LoadingBeforeSize(t *testing.T) {
	m := NewViewerModel("plan", "stack")
	if m.View() != "Loading..." {
		t.Errorf("Expected loading view, got %q", m.View())
	}
}

func TestViewerModel_ShowsPlanFirst(t *testing.T) {
	m := sized(t, NewViewerModel("PLAN BODY", "STACK BODY"))

	view := m.View()
	if !strings.Contains(view, "PLAN BODY") {
		t.Error("Expected plan content in view")
	}
	if !strings.Contains(view, "Migration Plan") {
		t.Error("Expected plan title in header")
	}
	if strings.Contains(view, "STACK BODY") {
		t.Error("Stack content should not be visible yet")
	}
	if m.viewport.Height != 22 {
		t.Errorf("Expected viewport height 22, got %d", m.viewport.Height)
	}
}

func TestViewerModel_TabSwitchesPage(t *testing.T) {
	m := sized(t, NewViewerModel("PLAN BODY", "STACK BODY"))

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(ViewerModel)
	if m.page != stackPage {
		t.Fatalf("Expected stack page, got %v", m.page)
	}
	if !strings.Contains(m.View(), "STACK BODY") {
		t.Error("Expected stack content after tab")
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(ViewerModel)
	if m.page != planPage {
		t.Errorf("Expected plan page after second tab, got %v", m.page)
	}
}

func TestViewerModel_QuitKeys(t *testing.T) {
	keys := []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	}

	for _, key := range keys {
		m := sized(t, NewViewerModel("plan", "stack"))
		_, cmd := m.Update(key)
		if cmd == nil {
			t.Fatalf("Expected quit command for %q", key.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("Expected QuitMsg for %q", key.String())
		}
	}
}

func TestViewerModel_Scrolls(t *testing.T) {
	lines := make([]string, 100)
	for i := range lines {
		lines[i] = "line"
	}
	m := sized(t, NewViewerModel(strings.Join(lines, "\n"), "stack"))

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(ViewerModel)
	if m.viewport.YOffset != 1 {
		t.Errorf("Expected offset 1 after scrolling down, got %d", m.viewport.YOffset)
	}
}
