// ABOUTME: Login form as a bubbletea model
// ABOUTME: Collects credentials with a huh form and reports submission

package loginform

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/rantiputri/booktrack/internal/tui/styles"
)

// SubmitMsg is sent when the user submits credentials
type SubmitMsg struct {
	Username string
	Password string
}

// CancelledMsg is sent when the user backs out of the form
type CancelledMsg struct{}

// Form is the login form model
type Form struct {
	form      *huh.Form
	submitted bool
	username  string
	password  string
	errMsg    string
}

// New creates a fresh login form
func New() *Form {
	f := &Form{}
	f.form = f.createForm()
	return f
}

func (f *Form) createForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Placeholder("Username").
				Value(&f.username),
			huh.NewInput().
				Title("Password").
				Placeholder("Password").
				EchoMode(huh.EchoModePassword).
				Value(&f.password),
		).Title("Login").
			Description("Sign in to your library"),
	).WithTheme(styles.FormTheme())
}

// SetError displays a failure message under the form and resets it for retry
func (f *Form) SetError(msg string) {
	f.errMsg = msg
	f.password = ""
	f.submitted = false
	f.form = f.createForm()
}

// Init implements tea.Model
func (f *Form) Init() tea.Cmd {
	return f.form.Init()
}

// Update implements tea.Model
func (f *Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Once submitted, input is ignored until the attempt resolves
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
		f.submitted = true
		username, password := f.username, f.password
		return f, func() tea.Msg {
			return SubmitMsg{Username: username, Password: password}
		}
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
