package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/larder/internal/console"
	"github.com/five82/larder/internal/i18n"
	"github.com/five82/larder/internal/logtail"
	"github.com/five82/larder/internal/prefs"
	"github.com/five82/larder/internal/remote"
)

// View represents the current active view.
type View int

const (
	ViewProducts View = iota
	ViewBerries
	ViewActivity
)

var viewOrder = []View{ViewProducts, ViewBerries, ViewActivity}

// Options configures the UI.
type Options struct {
	Context   context.Context
	Console   *console.Console
	Logger    *zap.Logger
	LogPath   string
	ThemeName string
	Locale    string
	PrefsPath string
	Tick      time.Duration
	// SkipWarmUp leaves the remote loads to the caller.
	SkipWarmUp bool
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx        context.Context
	console    *console.Console
	log        *zap.Logger
	logPath    string
	prefsPath  string
	tick       time.Duration
	skipWarmUp bool

	// UI state
	theme       Theme
	locale      i18n.Locale
	keys        keyMap
	currentView View
	width       int
	height      int
	ready       bool
	revision    uint64

	// Lists
	productRow  int
	berryRow    int
	searching   bool
	searchInput textinput.Model

	// Overlays
	modal    Modal
	showHelp bool

	// Flash message under the header
	status      string
	statusError bool
	statusAt    time.Time

	// Activity
	activity        viewport.Model
	activityEntries []logtail.Entry
	activityErr     error
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	tick := opts.Tick
	if tick <= 0 {
		tick = DefaultUIInterval
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	cons := opts.Console
	if cons == nil {
		cons = console.New(console.Options{Logger: logger})
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.CharLimit = 80

	return Model{
		ctx:         ctx,
		console:     cons,
		log:         logger.Named("ui"),
		logPath:     opts.LogPath,
		prefsPath:   prefsPath,
		tick:        tick,
		skipWarmUp:  opts.SkipWarmUp,
		theme:       GetTheme(opts.ThemeName),
		locale:      i18n.Resolve(opts.Locale),
		keys:        DefaultKeyMap(),
		currentView: ViewProducts,
		searchInput: search,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.tick)}
	if !m.skipWarmUp {
		cmds = append(cmds, warmUpCmd(m.ctx, m.console))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.activity = viewport.New(m.width-2, m.contentHeight()-2)
		} else {
			m.activity.Width = m.width - 2
			m.activity.Height = m.contentHeight() - 2
		}
		m.ready = true
		m.updateActivityViewport()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case warmUpMsg:
		if msg.err != nil {
			m.setStatus(m.locale.T(i18n.KeyLoadFailed, shortError(msg.err)), true)
		}
		m.syncRevision()
		return m, nil

	case berryLookupMsg:
		if msg.err != nil && !errors.Is(msg.err, remote.ErrNotFound) {
			m.setStatus(m.locale.T(i18n.KeyLoadFailed, shortError(msg.err)), true)
		}
		return m, nil

	case activityMsg:
		m.activityEntries = msg.entries
		m.activityErr = msg.err
		m.updateActivityViewport()
		return m, nil

	case statusMsg:
		m.setStatus(msg.text, msg.isErr)
		m.syncRevision()
		return m, nil
	}

	if m.modal != nil {
		return m.updateModal(msg)
	}
	if m.searching {
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return m.locale.T(i18n.KeyLoading)
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if m.modal != nil {
		return m.updateModal(msg)
	}
	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil
	case key.Matches(msg, m.keys.ToggleLang):
		m.locale = i18n.Resolve(i18n.Next(m.locale.Code()))
		m.savePrefs()
		m.updateActivityViewport()
		return m, nil
	case key.Matches(msg, m.keys.Tab):
		return m.switchView(m.offsetView(1))
	case key.Matches(msg, m.keys.ShiftTab):
		return m.switchView(m.offsetView(-1))
	case key.Matches(msg, m.keys.ViewProduct):
		return m.switchView(ViewProducts)
	case key.Matches(msg, m.keys.ViewBerry):
		return m.switchView(ViewBerries)
	case key.Matches(msg, m.keys.ViewLog):
		return m.switchView(ViewActivity)
	}

	switch m.currentView {
	case ViewProducts:
		return m.handleProductsKey(msg)
	case ViewBerries:
		return m.handleBerriesKey(msg)
	case ViewActivity:
		return m.handleActivityKey(msg)
	}
	return m, nil
}

func (m Model) updateModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd, closed := m.modal.Update(msg, m.keys)
	if closed {
		m.modal = nil
	} else {
		m.modal = next
	}
	return m, cmd
}

func (m Model) offsetView(delta int) View {
	idx := 0
	for i, v := range viewOrder {
		if v == m.currentView {
			idx = i
		}
	}
	return viewOrder[(idx+delta+len(viewOrder))%len(viewOrder)]
}

func (m Model) switchView(v View) (tea.Model, tea.Cmd) {
	m.currentView = v
	m.searching = false
	m.searchInput.Blur()
	if v == ViewActivity {
		return m, readActivityCmd(m.logPath)
	}
	return m, nil
}

// handleTick refreshes whatever the stores changed since the last frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{tickCmd(m.tick)}
	m.syncRevision()
	if m.currentView == ViewActivity {
		cmds = append(cmds, readActivityCmd(m.logPath))
	}
	if m.status != "" && time.Since(m.statusAt) > statusTTL {
		m.status = ""
	}
	return m, tea.Batch(cmds...)
}

// syncRevision clamps the row selections after the data or view state moved.
func (m *Model) syncRevision() {
	rev := m.console.Revision()
	if rev == m.revision {
		return
	}
	m.revision = rev
	m.productRow = clampRow(m.productRow, len(m.console.ProductPage(m.locale.Tag()).Rows))
	m.berryRow = clampRow(m.berryRow, len(m.console.BerryPage(m.locale.Tag()).Rows))
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusError = isErr
	m.statusAt = time.Now()
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, Locale: m.locale.Code()}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.log.Warn("save prefs failed", zap.Error(err))
	}
}

func (m Model) contentHeight() int {
	h := m.height - 3 // header, command bar, status line
	if h < 4 {
		h = 4
	}
	return h
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderStatusLine())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	return b.String()
}

// renderContent renders the main content area based on current view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewProducts:
		return m.renderProducts()
	case ViewBerries:
		return m.renderBerries()
	case ViewActivity:
		return m.renderActivity()
	default:
		return ""
	}
}

func clampRow(row, count int) int {
	if count <= 0 || row < 0 {
		return 0
	}
	if row >= count {
		return count - 1
	}
	return row
}

func shortError(err error) string {
	return truncate(err.Error(), 80)
}

// Messages

type tickMsg time.Time

type warmUpMsg struct{ err error }

type berryLookupMsg struct {
	name string
	err  error
}

type activityMsg struct {
	entries []logtail.Entry
	err     error
}

type statusMsg struct {
	text  string
	isErr bool
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func warmUpCmd(ctx context.Context, c *console.Console) tea.Cmd {
	return func() tea.Msg {
		return warmUpMsg{err: c.WarmUp(ctx)}
	}
}

func lookupBerryCmd(ctx context.Context, c *console.Console, name string) tea.Cmd {
	return func() tea.Msg {
		return berryLookupMsg{name: name, err: c.LookupBerry(ctx, name)}
	}
}

func readActivityCmd(path string) tea.Cmd {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	return func() tea.Msg {
		entries, err := logtail.ReadEntries(path, ActivityLineLimit)
		return activityMsg{entries: entries, err: err}
	}
}

func statusCmd(text string, isErr bool) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{text: text, isErr: isErr}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
