// ABOUTME: Book list screen as a bubbletea model
// ABOUTME: Renders the collection snapshot and routes row-level actions

package booklist

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rantiputri/booktrack/internal/api"
	"github.com/rantiputri/booktrack/internal/tui/styles"
)

// EditMsg asks the app to open the edit form for a record
type EditMsg struct {
	ID string
}

// DeleteMsg asks the app to delete a record
type DeleteMsg struct {
	ID string
}

// AddMsg asks the app to open the create form
type AddMsg struct{}

// RefreshMsg asks the app to reload the collection
type RefreshMsg struct{}

// ProfileMsg asks the app to open the profile screen
type ProfileMsg struct{}

// List is the book list model
type List struct {
	books    []api.Book
	cursor   int
	confirm  bool // pending delete confirmation for the row under the cursor
	errMsg   string
	deleting map[string]bool
}

// New creates a list over the given collection snapshot
func New(books []api.Book) *List {
	return &List{books: books, deleting: make(map[string]bool)}
}

// SetBooks replaces the rendered snapshot, clamping the cursor
func (l *List) SetBooks(books []api.Book) {
	l.books = books
	if l.cursor >= len(books) {
		l.cursor = len(books) - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
	l.confirm = false
}

// SetError shows an error line under the list
func (l *List) SetError(msg string) {
	l.errMsg = msg
}

// MarkDeleting disables the delete action for an in-flight id
func (l *List) MarkDeleting(id string, pending bool) {
	if pending {
		l.deleting[id] = true
	} else {
		delete(l.deleting, id)
	}
}

// Init implements tea.Model
func (l *List) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (l *List) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	switch key.String() {
	case "up", "k":
		l.confirm = false
		if l.cursor > 0 {
			l.cursor--
		}
	case "down", "j":
		l.confirm = false
		if l.cursor < len(l.books)-1 {
			l.cursor++
		}
	case "enter", "e":
		if b, ok := l.selected(); ok {
			id := b.ID
			return l, func() tea.Msg { return EditMsg{ID: id} }
		}
	case "d":
		b, ok := l.selected()
		if !ok || l.deleting[b.ID] {
			return l, nil
		}
		if !l.confirm {
			l.confirm = true
			return l, nil
		}
		l.confirm = false
		id := b.ID
		return l, func() tea.Msg { return DeleteMsg{ID: id} }
	case "a":
		return l, func() tea.Msg { return AddMsg{} }
	case "r":
		return l, func() tea.Msg { return RefreshMsg{} }
	case "p":
		return l, func() tea.Msg { return ProfileMsg{} }
	case "esc":
		l.confirm = false
	}

	return l, nil
}

// View implements tea.Model
func (l *List) View() string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render("Your Books"))
	sb.WriteString("\n")

	if len(l.books) == 0 {
		sb.WriteString(styles.Subtitle.Render("No books yet. Press a to add one."))
	}

	for i, b := range l.books {
		line := fmt.Sprintf("%s by %s", b.Title, b.Author)
		if b.Genre != "" {
			line += fmt.Sprintf(" [%s]", b.Genre)
		}
		if b.TotalPages > 0 {
			line += fmt.Sprintf(" (%d pages)", b.TotalPages)
		}
		if l.deleting[b.ID] {
			line += " deleting..."
		}

		if i == l.cursor {
			marker := "> "
			if l.confirm {
				marker = "d "
				line += "  press d again to delete"
			}
			sb.WriteString(styles.SelectedRow.Render(marker + line))
		} else {
			sb.WriteString(styles.Row.Render("  " + line))
		}
		sb.WriteString("\n")
	}

	if l.errMsg != "" {
		sb.WriteString("\n")
		sb.WriteString(styles.ErrorText.Render(l.errMsg))
	}

	sb.WriteString("\n")
	sb.WriteString(styles.Help.Render("enter Edit  d Delete  a Add  r Refresh  p Profile  q Quit"))
	return sb.String()
}

func (l *List) selected() (api.Book, bool) {
	if l.cursor < 0 || l.cursor >= len(l.books) {
		return api.Book{}, false
	}
	return l.books[l.cursor], true
}
