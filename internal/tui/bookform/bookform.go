// ABOUTME: Book create/edit form as a bubbletea model
// ABOUTME: Collects the five editable fields with a huh form

package bookform

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/rantiputri/booktrack/internal/api"
	"github.com/rantiputri/booktrack/internal/books"
	"github.com/rantiputri/booktrack/internal/tui/styles"
)

// SaveMsg is sent when the form is submitted. An empty ID means create.
type SaveMsg struct {
	ID    string
	Draft api.Draft
}

// CancelledMsg is sent when the user backs out of the form
type CancelledMsg struct{}

// Form is the book form model
type Form struct {
	form      *huh.Form
	id        string
	submitted bool

	title       string
	author      string
	genre       string
	description string
	pages       string

	errMsg string
}

// New creates an empty form for a new book
func New() *Form {
	f := &Form{pages: "0"}
	f.form = f.createForm(f.heading())
	return f
}

// NewEdit creates a form prefilled from an existing record
func NewEdit(book *api.Book) *Form {
	f := &Form{
		id:          book.ID,
		title:       book.Title,
		author:      book.Author,
		genre:       book.Genre,
		description: book.Description,
		pages:       strconv.Itoa(book.TotalPages),
	}
	f.form = f.createForm(f.heading())
	return f
}

// heading names the form after the operation it performs
func (f *Form) heading() string {
	if f.id != "" {
		return "Edit Book"
	}
	return "Add Book"
}

func (f *Form) createForm(heading string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("Title").
				Value(&f.title),
			huh.NewInput().
				Title("Author").
				Placeholder("Author").
				Value(&f.author),
			huh.NewInput().
				Title("Genre").
				Placeholder("Genre").
				Value(&f.genre),
			huh.NewInput().
				Title("Description").
				Placeholder("Description").
				Value(&f.description),
			huh.NewInput().
				Title("Total Pages").
				Placeholder("e.g., 412").
				CharLimit(6).
				Value(&f.pages).
				Validate(validatePages),
		).Title(heading),
	).WithTheme(styles.FormTheme())
}

func validatePages(s string) error {
	_, err := books.ParsePages(s)
	return err
}

// SetError displays a failure message and reopens the form so the user can
// adjust the fields and resubmit
func (f *Form) SetError(msg string) {
	f.errMsg = msg
	f.submitted = false
	f.form = f.createForm(f.heading())
}

// Init implements tea.Model
func (f *Form) Init() tea.Cmd {
	return f.form.Init()
}

// Update implements tea.Model
func (f *Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Once submitted, input is ignored until the save resolves
	if f.submitted {
		return f, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		return f, func() tea.Msg { return CancelledMsg{} }
	}

	form, cmd := f.form.Update(msg)
	if hf, ok := form.(*huh.Form); ok {
		f.form = hf
	}

	if f.form.State == huh.StateCompleted {
		totalPages, err := books.ParsePages(f.pages)
		if err != nil {
			f.errMsg = err.Error()
			f.form = f.createForm(f.heading())
			return f, f.form.Init()
		}

		f.submitted = true
		saved := SaveMsg{
			ID: f.id,
			Draft: api.Draft{
				Title:       f.title,
				Author:      f.author,
				Genre:       f.genre,
				Description: f.description,
				TotalPages:  totalPages,
			},
		}
		return f, func() tea.Msg { return saved }
	}

	return f, cmd
}

// View implements tea.Model
func (f *Form) View() string {
	view := f.form.View()
	if f.errMsg != "" {
		view += "\n" + styles.ErrorText.Render(f.errMsg)
	}
	return view
}
