package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/pders01/quip/internal/config"
	"github.com/pders01/quip/internal/debuglog"
	"github.com/pders01/quip/internal/quotes"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	maxFormWidth  = 72
)

// App is the quote search screen: one field, one submit control and the
// results below them.
type App struct {
	config          *config.Config
	searcher        *quotes.Searcher
	keyHandler      *KeyHandler
	input           textinput.Model
	spinner         spinner.Model
	viewport        viewport.Model
	help            help.Model
	state           quotes.State
	validation      string
	topic           string
	focus           Focus
	width           int
	height          int
	glamourRenderer *glamour.TermRenderer
	rendererWidth   int
}

func NewApp(searcher *quotes.Searcher, cfg *config.Config) *App {
	ti := textinput.New()
	ti.Placeholder = PlaceholderTopic
	ti.CharLimit = 120
	ti.Prompt = ""
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(AccentColor)

	app := &App{
		config:   cfg,
		searcher: searcher,
		input:    ti,
		spinner:  sp,
		viewport: viewport.New(defaultWidth, defaultHeight),
		help:     help.New(),
		state:    quotes.State{},
		focus:    FocusInput,
		width:    defaultWidth,
		height:   defaultHeight,
	}
	app.keyHandler = NewKeyHandler(app, cfg)
	app.layout()

	return app
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout()
		if a.state.Phase() == quotes.PhaseSuccess {
			a.viewport.SetContent(a.renderQuotes(a.state.Records()))
		}
		return a, nil

	case tea.KeyMsg:
		return a.keyHandler.HandleKey(msg)

	case searchResultMsg:
		a.applyResult(msg)
		return a, nil

	case spinner.TickMsg:
		if !a.state.Busy() {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tea.MouseMsg:
		var cmd tea.Cmd
		a.viewport, cmd = a.viewport.Update(msg)
		return a, cmd
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// submit validates the field and starts a search. Submissions while a
// search is in flight are ignored. An invalid topic only sets the inline
// message; earlier results and errors stay on screen.
func (a *App) submit() tea.Cmd {
	if a.state.Busy() {
		return nil
	}
	topic, err := quotes.ValidateTopic(a.input.Value())
	if err != nil {
		a.validation = quotes.UserMessage(err)
		a.layout()
		return nil
	}

	a.validation = ""
	a.topic = topic
	a.state = a.state.Begin()
	a.layout()
	a.viewport.SetContent("")
	a.viewport.GotoTop()
	debuglog.Debugf("search started for %q", topic)

	return tea.Batch(a.search(topic), a.spinner.Tick)
}

func (a *App) applyResult(msg searchResultMsg) {
	a.state = a.state.Resolve(msg.records, msg.err)
	a.layout()
	if a.state.Phase() == quotes.PhaseSuccess {
		a.viewport.SetContent(a.renderQuotes(a.state.Records()))
		a.viewport.GotoTop()
		return
	}
	if a.focus == FocusResults {
		a.toggleFocus()
	}
}

func (a *App) toggleFocus() {
	if a.focus == FocusResults {
		a.focus = FocusInput
		a.input.Focus()
		return
	}
	if a.state.Phase() != quotes.PhaseSuccess {
		return
	}
	a.focus = FocusResults
	a.input.Blur()
}

func (a *App) formWidth() int {
	w := a.width - 4
	if w > maxFormWidth {
		w = maxFormWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}

// layout sizes the field and the results viewport from the window size.
func (a *App) layout() {
	a.input.Width = a.formWidth() - 4
	a.viewport.Width = a.width - 4
	if a.viewport.Width < 20 {
		a.viewport.Width = 20
	}
	h := a.height - lipgloss.Height(a.formView()) - 5
	if h < 3 {
		h = 3
	}
	a.viewport.Height = h
}

// State exposes the current search state.
func (a *App) State() quotes.State { return a.state }

// Validation returns the inline validation message, if any.
func (a *App) Validation() string { return a.validation }

// SubmitLabel is the text on the submit control.
func (a *App) SubmitLabel() string {
	if a.state.Busy() {
		return LabelSearching
	}
	return LabelSubmit
}

// SubmitEnabled reports whether a submission would be accepted.
func (a *App) SubmitEnabled() bool { return !a.state.Busy() }

func (a *App) formView() string {
	sections := []string{
		RenderHeading(),
		"",
		LabelStyle.Render(LabelTopic),
		renderInputFrame(a.input.View(), a.focus == FocusInput, a.formWidth()-4),
		HelpStyle.Render(DescriptionTopic),
	}
	if a.validation != "" {
		sections = append(sections, renderInline(StatusError, a.validation))
	}

	button := renderButton(a.SubmitLabel(), !a.SubmitEnabled())
	if a.state.Busy() {
		button = lipgloss.JoinHorizontal(lipgloss.Center, button, " ", a.spinner.View())
	}
	sections = append(sections, "", button)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *App) resultsView() string {
	switch a.state.Phase() {
	case quotes.PhaseError:
		return renderAlert(StatusError, a.state.Message(), a.formWidth())
	case quotes.PhaseSuccess:
		return lipgloss.JoinVertical(lipgloss.Left,
			renderInline(StatusSuccess, MsgResultsCount(a.topic, len(a.state.Records()))),
			a.viewport.View(),
		)
	default:
		return ""
	}
}

func (a *App) statusBar() string {
	location := ""
	if a.searcher != nil && a.searcher.Source() != nil {
		location = a.searcher.Source().Location()
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		renderInline(StatusInfo, truncate("source: "+location, a.width-4)),
		a.help.View(a.keyHandler.keys),
	)
}

func (a *App) View() string {
	sections := []string{a.formView()}
	if results := a.resultsView(); results != "" {
		sections = append(sections, "", results)
	}
	sections = append(sections, "", a.statusBar())

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
