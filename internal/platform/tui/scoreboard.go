package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dash-arena/internal/registry"
	"github.com/vovakirdan/dash-arena/internal/storage"
)

// boardRows is how many scores or matches one tab loads.
const boardRows = 100

var (
	boardTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTabStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveStyle = boardTabStyle.Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	boardPanelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardEmptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
	boardHelpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

var (
	runnerColumns = []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 12},
		{Title: "Date", Width: 18},
	}
	matchColumns = []table.Column{
		{Title: "#", Width: 4},
		{Title: "Winner", Width: 7},
		{Title: "HP", Width: 9},
		{Title: "Time", Width: 6},
		{Title: "Mode", Width: 7},
		{Title: "Date", Width: 14},
	}
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Scroll key.Binding
	Next   key.Binding
	Prev   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Next, k.Prev, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Scroll: key.NewBinding(key.WithKeys("up", "k", "down", "j"), key.WithHelp("up/down", "scroll")),
		Next:   key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next game")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev game")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows one tab per game: the best runs of a solo game or
// the recent matches and win tally of a versus game.
type ScoreboardModel struct {
	games      []registry.GameInfo
	gameCursor int
	store      *storage.Store

	scores  []storage.ScoreEntry
	matches []storage.MatchRecord
	summary storage.MatchSummary

	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	width  int
	height int

	quitting  bool
	goingBack bool
	embedded  bool // inside a session: leaving does not quit the program
}

// NewScoreboardModel creates a scoreboard. A nil store shows empty tabs.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	if len(m.games) > 0 {
		m.loadScores(m.games[0].ID)
	} else {
		m.table = m.newTable()
	}
	return m
}

// versus reports whether the selected game is a two-player game.
func (m ScoreboardModel) versus() bool {
	return len(m.games) > 0 && m.games[m.gameCursor].Players == 2
}

func (m ScoreboardModel) newTable() table.Model {
	cols := runnerColumns
	if m.versus() {
		cols = matchColumns
	}
	t := table.New(
		table.WithColumns(cols),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).BorderBottom(true).Bold(true)
	s.Selected = s.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Bold(false)
	t.SetStyles(s)
	return t
}

// loadScores fetches the selected tab's rows. Store errors leave it empty.
func (m *ScoreboardModel) loadScores(gameID string) {
	m.scores, m.matches, m.summary = nil, nil, storage.MatchSummary{}
	if m.store != nil {
		if m.versus() {
			m.matches, _ = m.store.RecentMatches(gameID, boardRows)
			m.summary, _ = m.store.MatchStats(gameID)
		} else {
			m.scores, _ = m.store.TopScores(gameID, boardRows)
		}
	}
	m.table = m.newTable()
	m.table.SetRows(m.rows())
}

func (m ScoreboardModel) rows() []table.Row {
	if m.versus() {
		rows := make([]table.Row, 0, len(m.matches))
		for i, r := range m.matches {
			mode := "2P"
			if r.VsCPU {
				mode = "vs CPU"
			}
			rows = append(rows, table.Row{
				strconv.Itoa(i + 1),
				strings.ToUpper(r.Winner),
				fmt.Sprintf("%d/%d", r.P1Health, r.P2Health),
				fmt.Sprintf("%ds", r.DurationSecs),
				mode,
				r.CreatedAt.Format("Jan 02 15:04"),
			})
		}
		return rows
	}

	rows := make([]table.Row, 0, len(m.scores))
	for i, s := range m.scores {
		rows = append(rows, table.Row{
			"#" + strconv.Itoa(i+1),
			strconv.Itoa(s.Score),
			s.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	return rows
}

func (m *ScoreboardModel) switchGame(step int) {
	if len(m.games) == 0 {
		return
	}
	m.gameCursor = (m.gameCursor + step + len(m.games)) % len(m.games)
	m.loadScores(m.games[m.gameCursor].ID)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.embedded {
				return m, nil
			}
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.switchGame(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.switchGame(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table.SetHeight(max(m.height-10, 3))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "SCOREBOARD"
	if m.versus() {
		title = "MATCHES"
	} else if len(m.games) > 0 {
		title = "HIGH SCORES"
	}

	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.gameCursor {
			tabs[i] = boardActiveStyle.Render(g.Title)
		} else {
			tabs[i] = boardTabStyle.Render(g.Title)
		}
	}

	var b strings.Builder
	b.WriteString(centerText(boardTitleStyle.Render(title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(strings.Join(tabs, " "), m.width))
	b.WriteString("\n\n")
	b.WriteString(boardPanelStyle.Render(m.renderTableContent()))
	b.WriteString("\n")
	b.WriteString(boardHelpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// renderTableContent renders the table, the tally of a versus game, or a
// hint when nothing was recorded yet.
func (m ScoreboardModel) renderTableContent() string {
	if m.versus() {
		if len(m.matches) == 0 {
			return boardEmptyStyle.Render("No matches recorded yet.\nFight one to fill the table!")
		}
		tally := fmt.Sprintf("P1 %d  |  P2 %d  |  Draws %d  |  Total %d",
			m.summary.P1Wins, m.summary.P2Wins, m.summary.Draws, m.summary.Total)
		return tally + "\n\n" + m.table.View()
	}
	if len(m.scores) == 0 {
		return boardEmptyStyle.Render("No scores recorded yet.\nPlay a run to set a high score!")
	}
	return m.table.View()
}

// IsGoingBack reports whether the user asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool { return m.goingBack }

// IsQuitting reports whether the user asked to quit.
func (m ScoreboardModel) IsQuitting() bool { return m.quitting }

// RunScoreboard runs the scoreboard screen on its own program.
// It returns true if the user wants to go back to the menu.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
