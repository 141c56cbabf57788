// ABOUTME: Root bubbletea model for the TUI application
// ABOUTME: Manages screen state and routes keyboard input to child components

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rantiputri/booktrack/internal/api"
	"github.com/rantiputri/booktrack/internal/books"
	"github.com/rantiputri/booktrack/internal/debuglog"
	"github.com/rantiputri/booktrack/internal/profile"
	"github.com/rantiputri/booktrack/internal/session"
	"github.com/rantiputri/booktrack/internal/tui/bookform"
	"github.com/rantiputri/booktrack/internal/tui/booklist"
	"github.com/rantiputri/booktrack/internal/tui/loginform"
	"github.com/rantiputri/booktrack/internal/tui/profileview"
	"github.com/rantiputri/booktrack/internal/tui/styles"
)

// Screen represents the current TUI screen
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenList
	ScreenForm
	ScreenProfile
)

// Layout constants
const (
	minTerminalWidth = 60 // Minimum width before the frame stops shrinking
)

// loginDoneMsg is sent when a login attempt completes
type loginDoneMsg struct {
	err error
}

// booksLoadedMsg is sent when the collection has been fetched
type booksLoadedMsg struct {
	books []api.Book
	err   error
}

// bookLoadedMsg is sent when a single record has been fetched for editing
type bookLoadedMsg struct {
	book *api.Book
	err  error
}

// bookSavedMsg is sent when a create or update completes
type bookSavedMsg struct {
	err error
}

// bookDeletedMsg is sent when a delete completes
type bookDeletedMsg struct {
	id  string
	err error
}

// profileLoadedMsg is sent when the profile has been fetched
type profileLoadedMsg struct {
	user *api.User
	err  error
}

// profileSavedMsg is sent when a profile update completes
type profileSavedMsg struct {
	user *api.User
	err  error
}

// logoutDoneMsg is sent when logout completes
type logoutDoneMsg struct {
	err error
}

// App is the root model for the TUI
type App struct {
	sess     *session.Manager
	store    *books.Store
	profiles *profile.Manager

	screen     Screen
	width      int
	height     int
	loading    bool
	spin       spinner.Model
	lastUpdate time.Time

	// Child models
	login      *loginform.Form
	list       *booklist.List
	form       *bookform.Form
	profScreen *profileview.View
}

// New creates a new TUI application
func New(sess *session.Manager, store *books.Store, profiles *profile.Manager) *App {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Primary)

	a := &App{
		sess:     sess,
		store:    store,
		profiles: profiles,
		spin:     s,
		list:     booklist.New(nil),
	}

	if sess.Token() != "" {
		a.screen = ScreenList
		a.loading = true
	} else {
		a.screen = ScreenLogin
		a.login = loginform.New()
	}
	return a
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	if a.screen == ScreenLogin {
		return a.login.Init()
	}
	return tea.Batch(a.spin.Tick, a.loadBooks())
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case spinner.TickMsg:
		if !a.loading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a.routeKey(msg)

	case loginform.SubmitMsg:
		a.loading = true
		return a, tea.Batch(a.spin.Tick, a.doLogin(msg.Username, msg.Password))

	case loginform.CancelledMsg:
		return a, tea.Quit

	case loginDoneMsg:
		return a.handleLoginDone(msg)

	case booklist.EditMsg:
		a.loading = true
		return a, tea.Batch(a.spin.Tick, a.loadBook(msg.ID))

	case booklist.AddMsg:
		a.form = bookform.New()
		a.screen = ScreenForm
		return a, a.form.Init()

	case booklist.DeleteMsg:
		a.list.MarkDeleting(msg.ID, true)
		return a, a.deleteBook(msg.ID)

	case booklist.RefreshMsg:
		a.loading = true
		return a, tea.Batch(a.spin.Tick, a.loadBooks())

	case booklist.ProfileMsg:
		a.screen = ScreenProfile
		a.profScreen = profileview.New(a.profiles.Current())
		a.loading = true
		return a, tea.Batch(a.spin.Tick, a.loadProfile())

	case booksLoadedMsg:
		return a.handleBooksLoaded(msg)

	case bookLoadedMsg:
		return a.handleBookLoaded(msg)

	case bookform.SaveMsg:
		a.loading = true
		return a, tea.Batch(a.spin.Tick, a.saveBook(msg.ID, msg.Draft))

	case bookform.CancelledMsg:
		a.form = nil
		a.screen = ScreenList
		return a, nil

	case bookSavedMsg:
		return a.handleBookSaved(msg)

	case bookDeletedMsg:
		return a.handleBookDeleted(msg)

	case profileview.SaveMsg:
		a.loading = true
		return a, tea.Batch(a.spin.Tick, a.saveProfile(msg.Username, msg.Email))

	case profileview.LogoutMsg:
		return a, a.doLogout()

	case profileview.BackMsg:
		a.screen = ScreenList
		return a, nil

	case profileLoadedMsg:
		return a.handleProfileLoaded(msg)

	case profileSavedMsg:
		return a.handleProfileSaved(msg)

	case logoutDoneMsg:
		return a.handleLogoutDone(msg)

	default:
		// Forward unknown messages to active huh forms (needed for form internals)
		switch a.screen {
		case ScreenLogin:
			return a.updateLogin(msg)
		case ScreenForm:
			return a.updateForm(msg)
		case ScreenProfile:
			return a.updateProfile(msg)
		}
	}

	return a, nil
}

// routeKey sends a key press to the model owning the current screen
func (a *App) routeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.screen {
	case ScreenLogin:
		return a.updateLogin(msg)
	case ScreenList:
		if msg.String() == "q" {
			return a, tea.Quit
		}
		return a.updateList(msg)
	case ScreenForm:
		return a.updateForm(msg)
	case ScreenProfile:
		if msg.String() == "q" {
			return a, tea.Quit
		}
		return a.updateProfile(msg)
	}
	return a, nil
}

func (a *App) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.login == nil {
		return a, nil
	}
	model, cmd := a.login.Update(msg)
	a.login = model.(*loginform.Form)
	return a, cmd
}

func (a *App) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.list == nil {
		return a, nil
	}
	model, cmd := a.list.Update(msg)
	a.list = model.(*booklist.List)
	return a, cmd
}

func (a *App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.form == nil {
		return a, nil
	}
	model, cmd := a.form.Update(msg)
	a.form = model.(*bookform.Form)
	return a, cmd
}

func (a *App) updateProfile(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.profScreen == nil {
		return a, nil
	}
	model, cmd := a.profScreen.Update(msg)
	a.profScreen = model.(*profileview.View)
	return a, cmd
}

func (a *App) handleLoginDone(msg loginDoneMsg) (tea.Model, tea.Cmd) {
	a.loading = false
	if msg.err != nil {
		debuglog.Error("login", msg.err)
		if a.login == nil {
			a.login = loginform.New()
		}
		a.login.SetError(msg.err.Error())
		a.screen = ScreenLogin
		return a, a.login.Init()
	}

	a.login = nil
	a.screen = ScreenList
	a.loading = true
	return a, tea.Batch(a.spin.Tick, a.loadBooks())
}

func (a *App) handleBooksLoaded(msg booksLoadedMsg) (tea.Model, tea.Cmd) {
	a.loading = false
	if msg.err != nil {
		return a.handleGatewayError("load books", msg.err)
	}
	a.lastUpdate = time.Now()
	a.list.SetBooks(msg.books)
	a.list.SetError("")
	return a, nil
}

func (a *App) handleBookLoaded(msg bookLoadedMsg) (tea.Model, tea.Cmd) {
	a.loading = false
	if msg.err != nil {
		return a.handleGatewayError("load book", msg.err)
	}
	a.form = bookform.NewEdit(msg.book)
	a.screen = ScreenForm
	return a, a.form.Init()
}

func (a *App) handleBookSaved(msg bookSavedMsg) (tea.Model, tea.Cmd) {
	a.loading = false
	if msg.err != nil {
		debuglog.Error("save book", msg.err)
		if a.sess.InvalidateOn(msg.err) {
			return a.resetToLogin("Session expired. Please log in again.")
		}
		if a.form != nil {
			a.form.SetError(msg.err.Error())
			return a, a.form.Init()
		}
		return a, nil
	}

	a.form = nil
	a.screen = ScreenList
	a.loading = true
	return a, tea.Batch(a.spin.Tick, a.loadBooks())
}

func (a *App) handleBookDeleted(msg bookDeletedMsg) (tea.Model, tea.Cmd) {
	a.list.MarkDeleting(msg.id, false)
	if msg.err != nil {
		return a.handleGatewayError("delete book", msg.err)
	}
	a.lastUpdate = time.Now()
	a.list.SetBooks(a.store.Books())
	a.list.SetError("")
	return a, nil
}

func (a *App) handleProfileLoaded(msg profileLoadedMsg) (tea.Model, tea.Cmd) {
	a.loading = false
	if msg.err != nil {
		return a.handleGatewayError("load profile", msg.err)
	}
	if a.profScreen != nil {
		a.profScreen.SetUser(msg.user)
	}
	return a, nil
}

func (a *App) handleProfileSaved(msg profileSavedMsg) (tea.Model, tea.Cmd) {
	a.loading = false
	if msg.err != nil {
		debuglog.Error("save profile", msg.err)
		if a.sess.InvalidateOn(msg.err) {
			return a.resetToLogin("Session expired. Please log in again.")
		}
		if a.profScreen != nil {
			a.profScreen.SetError(msg.err.Error())
		}
		return a, nil
	}
	if a.profScreen != nil {
		a.profScreen.SetUser(msg.user)
		a.profScreen.SetInfo("Profile updated successfully.")
	}
	return a, nil
}

func (a *App) handleLogoutDone(msg logoutDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		debuglog.Error("logout", msg.err)
	}
	return a.resetToLogin("")
}

// handleGatewayError logs a failed fetch and either drops back to the login
// screen when the session is no longer valid or surfaces the error inline
func (a *App) handleGatewayError(op string, err error) (tea.Model, tea.Cmd) {
	a.loading = false
	debuglog.Error(op, err)
	if a.sess.InvalidateOn(err) {
		return a.resetToLogin("Session expired. Please log in again.")
	}

	switch a.screen {
	case ScreenProfile:
		if a.profScreen != nil {
			a.profScreen.SetError(err.Error())
		}
	default:
		a.list.SetError(err.Error() + " (press r to retry)")
		a.screen = ScreenList
	}
	return a, nil
}

// resetToLogin drops all screen state and returns to the login form
func (a *App) resetToLogin(errMsg string) (tea.Model, tea.Cmd) {
	a.loading = false
	a.form = nil
	a.profScreen = nil
	a.profiles.Clear()
	a.list = booklist.New(nil)
	a.lastUpdate = time.Time{}
	a.login = loginform.New()
	if errMsg != "" {
		a.login.SetError(errMsg)
	}
	a.screen = ScreenLogin
	return a, a.login.Init()
}

// View implements tea.Model
func (a *App) View() string {
	var content string

	switch a.screen {
	case ScreenLogin:
		content = a.viewLogin()
	case ScreenList:
		content = a.viewList()
	case ScreenForm:
		content = a.viewForm()
	case ScreenProfile:
		content = a.viewProfile()
	default:
		content = a.viewLogin()
	}

	return a.wrapWithFrame(content)
}

// viewLogin renders the login screen
func (a *App) viewLogin() string {
	if a.loading {
		return a.spin.View() + " Signing in..."
	}
	if a.login != nil {
		return a.login.View()
	}
	return ""
}

// viewList renders the book list screen
func (a *App) viewList() string {
	if a.loading {
		return a.spin.View() + " Loading books..."
	}
	if a.list != nil {
		return a.list.View()
	}
	return ""
}

// viewForm renders the create/edit form screen
func (a *App) viewForm() string {
	if a.loading {
		return a.spin.View() + " Saving..."
	}
	if a.form != nil {
		return a.form.View()
	}
	return ""
}

// viewProfile renders the profile screen
func (a *App) viewProfile() string {
	if a.loading {
		return a.spin.View() + " Loading profile..."
	}
	if a.profScreen != nil {
		return a.profScreen.View()
	}
	return ""
}

// renderHeader creates the header bar with app branding and context
func (a *App) renderHeader() string {
	width := a.width
	if width < minTerminalWidth {
		width = minTerminalWidth
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
	contextStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	leftText := " " + titleStyle.Render("Booktrack")

	rightText := ""
	if user := a.profiles.Current(); user != nil && a.screen != ScreenLogin {
		rightText = contextStyle.Render(user.Username) + " "
	}

	leftWidth := lipgloss.Width(leftText)
	rightWidth := lipgloss.Width(rightText)
	fillWidth := width - 4 - leftWidth - rightWidth
	if fillWidth < 0 {
		fillWidth = 0
	}

	fill := strings.Repeat("─", fillWidth)
	return borderStyle.Render("╭─"+leftText) + fill + rightText + borderStyle.Render("─╮")
}

// renderFooter creates the footer with keyboard shortcuts and status
func (a *App) renderFooter() string {
	width := a.width
	if width < minTerminalWidth {
		width = minTerminalWidth
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	statusStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	var shortcuts []string
	switch a.screen {
	case ScreenLogin:
		shortcuts = []string{"Enter Submit", "Esc Quit"}
	case ScreenList:
		shortcuts = []string{"↑↓ Navigate", "enter Edit", "q Quit"}
	case ScreenForm:
		shortcuts = []string{"Enter Next", "Esc Cancel"}
	case ScreenProfile:
		shortcuts = []string{"e Edit", "l Logout", "b Back", "q Quit"}
	}

	var styledShortcuts []string
	for _, s := range shortcuts {
		parts := strings.SplitN(s, " ", 2)
		if len(parts) == 2 {
			styledShortcuts = append(styledShortcuts, styles.KeyStyle.Render(parts[0])+" "+borderStyle.Render(parts[1]))
		} else {
			styledShortcuts = append(styledShortcuts, s)
		}
	}

	leftText := " " + strings.Join(styledShortcuts, "  ")
	leftPlainText := " " + strings.Join(shortcuts, "  ")

	rightText := ""
	rightPlainText := ""
	if !a.lastUpdate.IsZero() && a.screen == ScreenList {
		elapsed := a.formatTimeSince(a.lastUpdate)
		rightText = statusStyle.Render("Updated "+elapsed) + " "
		rightPlainText = "Updated " + elapsed + " "
	}

	leftWidth := lipgloss.Width(leftPlainText)
	rightWidth := lipgloss.Width(rightPlainText)
	fillWidth := width - 4 - leftWidth - rightWidth
	if fillWidth < 0 {
		fillWidth = 0
	}

	fill := strings.Repeat("─", fillWidth)
	return borderStyle.Render("╰─") + leftText + borderStyle.Render(fill) + rightText + borderStyle.Render("─╯")
}

// formatTimeSince formats a duration since the given time in human-readable form
func (a *App) formatTimeSince(t time.Time) string {
	d := time.Since(t)

	if d < time.Minute {
		secs := int(d.Seconds())
		if secs < 5 {
			return "just now"
		}
		return fmt.Sprintf("%ds ago", secs)
	}

	if d < time.Hour {
		mins := int(d.Minutes())
		if mins == 1 {
			return "1m ago"
		}
		return fmt.Sprintf("%dm ago", mins)
	}

	hours := int(d.Hours())
	if hours == 1 {
		return "1h ago"
	}
	return fmt.Sprintf("%dh ago", hours)
}

// wrapWithFrame wraps content with header and footer
func (a *App) wrapWithFrame(content string) string {
	var sb strings.Builder

	sb.WriteString(a.renderHeader())
	sb.WriteString("\n")
	sb.WriteString(content)
	sb.WriteString("\n")
	sb.WriteString(a.renderFooter())

	return sb.String()
}

// doLogin creates a command that signs in and persists the session
func (a *App) doLogin(username, password string) tea.Cmd {
	return func() tea.Msg {
		err := a.sess.Login(context.Background(), username, password)
		return loginDoneMsg{err: err}
	}
}

// loadBooks creates a command that fetches the full collection
func (a *App) loadBooks() tea.Cmd {
	return func() tea.Msg {
		list, err := a.store.LoadAll(context.Background())
		return booksLoadedMsg{books: list, err: err}
	}
}

// loadBook creates a command that fetches one record for editing
func (a *App) loadBook(id string) tea.Cmd {
	return func() tea.Msg {
		book, err := a.store.LoadOne(context.Background(), id)
		return bookLoadedMsg{book: book, err: err}
	}
}

// saveBook creates a command that creates or updates a record
func (a *App) saveBook(id string, draft api.Draft) tea.Cmd {
	return func() tea.Msg {
		var err error
		if id == "" {
			_, err = a.store.Create(context.Background(), &draft)
		} else {
			_, err = a.store.Update(context.Background(), id, &draft)
		}
		return bookSavedMsg{err: err}
	}
}

// deleteBook creates a command that deletes a record
func (a *App) deleteBook(id string) tea.Cmd {
	return func() tea.Msg {
		err := a.store.Delete(context.Background(), id)
		return bookDeletedMsg{id: id, err: err}
	}
}

// loadProfile creates a command that fetches the user profile
func (a *App) loadProfile() tea.Cmd {
	return func() tea.Msg {
		user, err := a.profiles.Load(context.Background())
		return profileLoadedMsg{user: user, err: err}
	}
}

// saveProfile creates a command that updates the user profile
func (a *App) saveProfile(username, email string) tea.Cmd {
	return func() tea.Msg {
		current := a.profiles.Current()
		if current == nil {
			return profileSavedMsg{err: fmt.Errorf("no profile loaded")}
		}
		user, err := a.profiles.Save(context.Background(), current.ID, username, email)
		return profileSavedMsg{user: user, err: err}
	}
}

// doLogout creates a command that clears the session
func (a *App) doLogout() tea.Cmd {
	return func() tea.Msg {
		return logoutDoneMsg{err: a.sess.Logout()}
	}
}

// Run starts the TUI
func Run(sess *session.Manager, store *books.Store, profiles *profile.Manager) error {
	app := New(sess, store, profiles)

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
