// ABOUTME: Profile screen as a bubbletea model
// ABOUTME: Shows the user profile with an inline edit form and logout action

package profileview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/rantiputri/booktrack/internal/api"
	"github.com/rantiputri/booktrack/internal/tui/styles"
)

// SaveMsg is sent when the edit form is submitted
type SaveMsg struct {
	Username string
	Email    string
}

// LogoutMsg is sent when the user logs out
type LogoutMsg struct{}

// BackMsg is sent when the user returns to the book list
type BackMsg struct{}

// View is the profile screen model
type View struct {
	user    *api.User
	editing bool
	form    *huh.Form

	username string
	email    string
	errMsg   string
	infoMsg  string
}

// New creates a profile screen for the given user (nil when not loaded)
func New(user *api.User) *View {
	return &View{user: user}
}

// SetUser replaces the displayed profile
func (v *View) SetUser(user *api.User) {
	v.user = user
	v.editing = false
	v.form = nil
}

// SetError shows an error line on the screen
func (v *View) SetError(msg string) {
	v.errMsg = msg
	v.editing = false
	v.form = nil
}

// SetInfo shows a confirmation line on the screen
func (v *View) SetInfo(msg string) {
	v.infoMsg = msg
}

func (v *View) createForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Placeholder("Username").
				Value(&v.username),
			huh.NewInput().
				Title("Email").
				Placeholder("Email").
				Value(&v.email),
		).Title("Edit Profile"),
	).WithTheme(styles.FormTheme())
}

// Init implements tea.Model
func (v *View) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (v *View) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if v.editing {
		return v.updateForm(msg)
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch key.String() {
	case "e":
		if v.user != nil {
			v.username = v.user.Username
			v.email = v.user.Email
			v.errMsg = ""
			v.infoMsg = ""
			v.editing = true
			v.form = v.createForm()
			return v, v.form.Init()
		}
	case "l":
		return v, func() tea.Msg { return LogoutMsg{} }
	case "b", "esc":
		return v, func() tea.Msg { return BackMsg{} }
	}

	return v, nil
}

func (v *View) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		v.editing = false
		v.form = nil
		return v, nil
	}

	form, cmd := v.form.Update(msg)
	if hf, ok := form.(*huh.Form); ok {
		v.form = hf
	}

	if v.form.State == huh.StateCompleted {
		v.editing = false
		v.form = nil
		username, email := v.username, v.email
		return v, func() tea.Msg {
			return SaveMsg{Username: username, Email: email}
		}
	}

	return v, cmd
}

// View implements tea.Model
func (v *View) View() string {
	if v.editing && v.form != nil {
		return v.form.View()
	}

	var sb strings.Builder
	if v.user == nil {
		sb.WriteString(styles.Subtitle.Render("No user data available."))
	} else {
		sb.WriteString(styles.Title.Render("Welcome, " + v.user.Username + "!"))
		sb.WriteString("\n")
		sb.WriteString(styles.Label.Render("Username: "))
		sb.WriteString(styles.Value.Render(v.user.Username))
		sb.WriteString("\n")
		sb.WriteString(styles.Label.Render("Email:    "))
		sb.WriteString(styles.Value.Render(v.user.Email))
		sb.WriteString("\n")
	}

	if v.errMsg != "" {
		sb.WriteString("\n")
		sb.WriteString(styles.ErrorText.Render(v.errMsg))
	}
	if v.infoMsg != "" {
		sb.WriteString("\n")
		sb.WriteString(styles.SuccessText.Render(v.infoMsg))
	}

	sb.WriteString("\n")
	sb.WriteString(styles.Help.Render("e Edit  l Logout  b Back  q Quit"))
	return sb.String()
}
