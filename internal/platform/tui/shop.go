package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dash-arena/internal/config"
	"github.com/vovakirdan/dash-arena/internal/games/dino"
)

// ShopKeyMap defines the key bindings for the upgrade shop.
type ShopKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Buy  key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ShopKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Buy, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ShopKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Buy}, {k.Back, k.Quit}}
}

// DefaultShopKeyMap returns default key bindings.
func DefaultShopKeyMap() ShopKeyMap {
	return ShopKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "move down"),
		),
		Buy: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "buy / change"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// shopRow is one line of the shop: an upgrade, the theme or the skin.
type shopRow int

const (
	rowTheme shopRow = -1 - iota
	rowSkin
)

// ShopModel is the Bubble Tea model for the runner's upgrade shop.
type ShopModel struct {
	store    dino.ProgressionStore
	prices   config.DinoUpgrades
	progress dino.Progression
	rows     []shopRow
	cursor   int
	theme    dino.Theme
	skin     dino.Skin
	status   string
	err      error

	keys      ShopKeyMap
	help      help.Model
	width     int
	height    int
	quitting  bool
	goingBack bool
	embedded  bool
}

// NewShopModel creates a shop over a progression store. A nil store
// shows the shop read-only.
func NewShopModel(store dino.ProgressionStore, width, height int) ShopModel {
	m := ShopModel{
		store:  store,
		prices: dino.ShopPrices(),
		keys:   DefaultShopKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	for _, k := range dino.UpgradeKinds() {
		m.rows = append(m.rows, shopRow(k))
	}
	m.rows = append(m.rows, rowTheme, rowSkin)
	m.theme, m.skin = dino.CurrentLook()

	if store != nil {
		m.progress, m.err = dino.LoadProgression(store)
	}
	return m
}

// Init initializes the shop.
func (m ShopModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the shop.
func (m ShopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Buy):
			m.activate()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

// activate buys the selected upgrade or cycles the selected look.
func (m *ShopModel) activate() {
	row := m.rows[m.cursor]
	switch row {
	case rowTheme:
		m.theme = nextTheme(m.theme.ID)
		dino.SetTheme(m.theme.ID)
		m.status = "Theme: " + m.theme.Name
		return
	case rowSkin:
		m.skin = nextSkin(m.skin.ID)
		dino.SetSkin(m.skin.ID)
		m.status = "Skin: " + m.skin.Name
		return
	}

	kind := dino.UpgradeKind(row)
	if m.store == nil {
		m.status = "No save file: purchases are disabled"
		return
	}

	next, ok, err := dino.Buy(m.store, m.prices, kind)
	if err != nil {
		m.status = "Purchase failed: " + err.Error()
		return
	}
	// The wallet may have moved since the shop opened
	m.progress = next
	if !ok {
		m.status = fmt.Sprintf("Not enough coins for %s", upgradeLabel(m.prices, kind))
		return
	}
	m.status = fmt.Sprintf("%s upgraded to level %d", upgradeLabel(m.prices, kind), next.Level(kind))
}

// upgradeLabel is the display name of an upgrade.
func upgradeLabel(prices config.DinoUpgrades, k dino.UpgradeKind) string {
	if name := dino.UpgradeConfig(prices, k).Name; name != "" {
		return name
	}
	return k.String()
}

func nextTheme(id string) dino.Theme {
	all := dino.Themes()
	for i, t := range all {
		if t.ID == id {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}

func nextSkin(id string) dino.Skin {
	all := dino.Skins()
	for i, s := range all {
		if s.ID == id {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}

// View renders the shop.
func (m ShopModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	coinStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	selStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 2)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("UPGRADE SHOP"), m.width))
	b.WriteString("\n\n")

	var body strings.Builder
	body.WriteString(coinStyle.Render(fmt.Sprintf("Wallet: %d coins", m.progress.Coins)))
	body.WriteString("\n\n")

	for i, row := range m.rows {
		var line string
		switch row {
		case rowTheme:
			line = fmt.Sprintf("%-16s %s", "Theme", m.theme.Name)
		case rowSkin:
			line = fmt.Sprintf("%-16s %s", "Skin", m.skin.Name)
		default:
			kind := dino.UpgradeKind(row)
			line = fmt.Sprintf("%-16s Lv %-3d next %d", upgradeLabel(m.prices, kind), m.progress.Level(kind), m.progress.NextCost(m.prices, kind))
		}
		if row == rowTheme {
			body.WriteString("\n")
		}
		if i == m.cursor {
			body.WriteString(selStyle.Render("> " + line))
		} else {
			body.WriteString("  " + line)
		}
		body.WriteString("\n")
	}

	b.WriteString(boxStyle.Render(body.String()))
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(dimStyle.Render("Could not load progression: " + m.err.Error()))
	case m.status != "":
		b.WriteString(m.status)
	}
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Progression returns the wallet and levels as last saved.
func (m ShopModel) Progression() dino.Progression {
	return m.progress
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ShopModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ShopModel) IsQuitting() bool {
	return m.quitting
}

// RunShop runs the shop screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunShop(store dino.ProgressionStore, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewShopModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ShopModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
