// Package tui provides the Bubble Tea key recovery inspector.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Yug-Shah/cryptoPals/internal/breaker"
	"github.com/Yug-Shah/cryptoPals/internal/model"
)

const rankTableWidth = 22

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	headerStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	textStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	controlStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	tableMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
	modalStyle      = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A")).
			Padding(1, 2)
)

// Model implements the Bubble Tea key recovery inspector.
type Model struct {
	breaker    *breaker.Breaker
	source     string
	ciphertext []byte

	candidates []model.KeySizeCandidate
	recoveries map[int]model.Recovery

	rankTable table.Model
	preview   viewport.Model

	width  int
	height int

	currentSize int
	current     model.Recovery

	inputMode  bool
	sizeInput  textinput.Model
	inputError string

	errMsg string
}

// NewModel ranks key sizes for the ciphertext, breaks the best candidate
// and constructs the inspector around the result.
func NewModel(b *breaker.Breaker, cfg model.BreakConfig, source string, ciphertext []byte) (*Model, error) {
	minSize := cfg.MinKeySize
	if minSize < 1 {
		minSize = breaker.MinKeySize
	}
	maxSize := cfg.MaxKeySize
	if maxSize < minSize {
		maxSize = breaker.MaxKeySize
	}
	candidates, err := b.KeySizes(ciphertext, minSize, maxSize)
	if err != nil {
		return nil, fmt.Errorf("failed to rank key sizes: %w", err)
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("failed to rank key sizes for %d bytes: %w", len(ciphertext), breaker.ErrInsufficientData)
	}

	m := &Model{
		breaker:    b,
		source:     source,
		ciphertext: ciphertext,
		candidates: candidates,
		recoveries: map[int]model.Recovery{},
	}
	m.initSizeInput()
	m.initRankTable()
	m.preview = viewport.New(0, 0)
	m.selectSize(candidates[0].KeySize)
	return m, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.refreshPreview()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
			return m, tea.Quit
		}
		if m.inputMode {
			return m.updateSizeInput(msg)
		}
		switch msg.String() {
		case "enter":
			return m.startSizeInput()
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.preview, cmd = m.preview.Update(msg)
			return m, cmd
		case "g", "home":
			m.preview.GotoTop()
			return m, nil
		case "G", "end":
			m.preview.GotoBottom()
			return m, nil
		default:
			var cmd tea.Cmd
			m.rankTable, cmd = m.rankTable.Update(msg)
			m.selectCursor()
			return m, cmd
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.inputMode {
		return fitLines(m.renderSizeModal(), m.width, m.height)
	}
	headerHeight, bodyHeight, footerHeight := m.layoutHeights()
	header := fitLines(m.renderHeader(), m.width, headerHeight)
	body := fitLines(m.renderBody(), m.width, bodyHeight)
	footer := fitLines(m.renderFooter(), m.width, footerHeight)
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) initSizeInput() {
	input := textinput.New()
	input.Prompt = "Key size: "
	input.Placeholder = "29"
	input.CharLimit = 4
	input.Cursor.SetMode(cursor.CursorBlink)
	m.sizeInput = input
}

func (m *Model) initRankTable() {
	columns := []table.Column{
		{Title: "Rank", Width: 4},
		{Title: "Size", Width: 4},
		{Title: "Distance", Width: 8},
	}
	rows := make([]table.Row, 0, len(m.candidates))
	for i, c := range m.candidates {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", c.KeySize),
			fmt.Sprintf("%.4f", c.Distance),
		})
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(1),
	)
	t.SetStyles(rankTableStyles())
	m.rankTable = t
}

func rankTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

func (m *Model) layoutHeights() (headerHeight, bodyHeight, footerHeight int) {
	headerHeight = 2
	footerHeight = 1
	if m.errMsg != "" {
		footerHeight++
	}
	bodyHeight = m.height - headerHeight - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	return headerHeight, bodyHeight, footerHeight
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	_, bodyHeight, _ := m.layoutHeights()
	tableWidth := rankTableWidth
	if tableWidth > m.width/2 {
		tableWidth = maxInt(10, m.width/2)
	}
	m.rankTable.SetWidth(tableWidth)
	m.rankTable.SetHeight(maxInt(1, bodyHeight-1))
	m.preview.Width = maxInt(10, m.width-tableWidth-1)
	m.preview.Height = bodyHeight
	promptWidth := lipgloss.Width(m.sizeInput.Prompt)
	m.sizeInput.Width = maxInt(10, modalInnerWidth(m.width)-promptWidth)
}

func (m *Model) selectCursor() {
	idx := m.rankTable.Cursor()
	if idx < 0 || idx >= len(m.candidates) {
		return
	}
	m.selectSize(m.candidates[idx].KeySize)
}

func (m *Model) selectSize(size int) {
	m.errMsg = ""
	rec, ok := m.recoveries[size]
	if !ok {
		var err error
		rec, err = m.breaker.RepeatingKey(size, m.ciphertext)
		if err != nil {
			m.errMsg = err.Error()
			return
		}
		m.recoveries[size] = rec
	}
	m.currentSize = size
	m.current = rec
	m.refreshPreview()
}

// syncCursor moves the table selection to size when it is a ranked
// candidate. Manual sizes outside the ranking leave the cursor alone.
func (m *Model) syncCursor(size int) {
	for i, c := range m.candidates {
		if c.KeySize == size {
			m.rankTable.SetCursor(i)
			return
		}
	}
}

func (m *Model) refreshPreview() {
	width := m.preview.Width
	if width <= 0 {
		width = 80
	}
	m.preview.SetContent(renderPlaintext(m.current.Plaintext, width))
}

func (m *Model) startSizeInput() (tea.Model, tea.Cmd) {
	m.inputMode = true
	m.inputError = ""
	m.sizeInput.SetValue(strconv.Itoa(m.currentSize))
	return m, m.sizeInput.Focus()
}

func (m *Model) updateSizeInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.inputMode = false
		m.inputError = ""
		return m, nil
	case tea.KeyEnter:
		size, err := parseKeySize(m.sizeInput.Value())
		if err != nil {
			m.inputError = err.Error()
			return m, nil
		}
		m.inputMode = false
		m.inputError = ""
		m.selectSize(size)
		m.syncCursor(size)
		return m, nil
	}
	var cmd tea.Cmd
	m.sizeInput, cmd = m.sizeInput.Update(msg)
	return m, cmd
}

func parseKeySize(value string) (int, error) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed < 1 {
		return 0, fmt.Errorf("invalid key size (use a positive integer)")
	}
	return parsed, nil
}

func (m *Model) renderHeader() string {
	title := padLines(titleStyle.Render("XOR Key Inspector"), m.width)
	status := padLines(m.renderStatus(), m.width)
	return title + "\n" + status
}

func (m *Model) renderStatus() string {
	status := fmt.Sprintf("Source: %s  Bytes: %d  Key size: %d  Score: %.2f",
		m.source, len(m.ciphertext), m.currentSize, m.current.Score)
	if dist, ok := m.distanceFor(m.currentSize); ok {
		status += fmt.Sprintf("  Distance: %.4f", dist)
	}
	status = truncateLine(status, m.width)
	return headerStyle.Render(status)
}

func (m *Model) renderBody() string {
	left := tableMutedStyle.Render(m.rankTable.View())
	right := m.preview.View()
	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

func (m *Model) renderHelp() string {
	return headerStyle.Render("Select: up/down  Scroll: pgup/pgdn  Top/Bottom: g/G  Key size: enter  Quit: q")
}

func (m *Model) renderFooter() string {
	if m.errMsg != "" {
		return m.renderHelp() + "\n" + errorStyle.Render(m.errMsg)
	}
	return m.renderHelp()
}

func (m *Model) renderSizeModal() string {
	body := []string{
		titleStyle.Render("Set Key Size"),
		m.sizeInput.View(),
		headerStyle.Render("Break again with an exact key length."),
		headerStyle.Render("Enter to apply / Esc to cancel"),
	}
	if m.inputError != "" {
		body = append(body, errorStyle.Render(m.inputError))
	}
	box := modalStyle.Width(modalWidth(m.width)).Render(strings.Join(body, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m *Model) distanceFor(size int) (float64, bool) {
	for _, c := range m.candidates {
		if c.KeySize == size {
			return c.Distance, true
		}
	}
	return 0, false
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func modalWidth(width int) int {
	return maxInt(40, minInt(width-4, 80))
}

func modalInnerWidth(width int) int {
	w := modalWidth(width)
	w -= 6 // 2 border + 4 padding
	if w < 10 {
		return 10
	}
	return w
}

func padLines(s string, width int) string {
	if width <= 0 || s == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	return strings.Join(lines, "\n")
}

func padLine(line string, width int) string {
	lineWidth := lipgloss.Width(line)
	if lineWidth < width {
		return line + strings.Repeat(" ", width-lineWidth)
	}
	return line
}

func fitLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

func truncateLine(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}
