package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"classtree.dev/classtree/internal/output"
	"classtree.dev/classtree/internal/runtime"
	"classtree.dev/classtree/internal/tree"
	"classtree.dev/classtree/internal/utils"
)

type editorKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Add        key.Binding
	Delete     key.Binding
	Rename     key.Binding
	Share      key.Binding
	Distribute key.Binding
	Normalize  key.Binding
	Quit       key.Binding
}

func (k editorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Add, k.Delete, k.Rename, k.Share, k.Quit}
}

func (k editorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Add, k.Delete, k.Rename, k.Share},
		{k.Distribute, k.Normalize, k.Quit},
	}
}

var defaultEditorKeys = editorKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add child"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Rename: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "rename"),
	),
	Share: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "share"),
	),
	Distribute: key.NewBinding(
		key.WithKeys("D"),
		key.WithHelp("D", "distribute qty"),
	),
	Normalize: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "normalize"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type editorMode int

const (
	modeBrowse editorMode = iota
	modeAdd
	modeRename
	modeShare
	modeDistribute
)

// editorModel is the bubbletea model for the interactive tree editor
type editorModel struct {
	rtx    *runtime.Context
	logger *zap.Logger

	cursor    int
	mode      editorMode
	prompt    string
	input     textinput.Model
	status    string
	statusBad bool
	saveErr   error
	quitting  bool

	keys   editorKeyMap
	help   help.Model
	styles editorStyles
}

type editorStyles struct {
	title    lipgloss.Style
	cursor   lipgloss.Style
	selected lipgloss.Style
	status   lipgloss.Style
	errText  lipgloss.Style
	dim      lipgloss.Style
}

func newEditorStyles() editorStyles {
	return editorStyles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginBottom(1),
		cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
		selected: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		status:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		errText:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// newEditorModel creates a new editor TUI model
func newEditorModel(rtx *runtime.Context, logger *zap.Logger) editorModel {
	ti := textinput.New()
	ti.CharLimit = utils.MaxLabelLength
	ti.Width = 40

	return editorModel{
		rtx:    rtx,
		logger: logger,
		input:  ti,
		keys:   defaultEditorKeys,
		help:   help.New(),
		styles: newEditorStyles(),
	}
}

// flatten lists the subtree in preorder, matching the renderer's line order.
func flatten(n *tree.Node) []*tree.Node {
	if n == nil {
		return nil
	}
	out := []*tree.Node{n}
	for _, c := range n.Children {
		out = append(out, flatten(c)...)
	}
	return out
}

func (m editorModel) rows() []*tree.Node {
	return flatten(m.rtx.Tree)
}

func (m editorModel) current() *tree.Node {
	rows := m.rows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return nil
	}
	return rows[m.cursor]
}

func (m editorModel) cursorTo(id int) editorModel {
	for i, n := range m.rows() {
		if n.ID == id {
			m.cursor = i
			break
		}
	}
	return m
}

func (m editorModel) Init() tea.Cmd {
	return nil
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.help.Width = size.Width
		return m, nil
	}

	if m.mode != modeBrowse {
		return m.updateInput(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.rows())-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Add):
			node := m.current()
			level := m.rtx.Tree.Depth(node.ID)
			if !tree.AllowExpand(m.rtx.Settings.Limits(), level, node.Children) {
				m.status = fmt.Sprintf("%s cannot take another child (limits: %d children, %d levels).",
					node.Label, m.rtx.Settings.MaxChildren, m.rtx.Settings.MaxLevels)
				m.statusBad = true
				return m, nil
			}
			return m.enterInput(modeAdd, "Name for the new category:", "")

		case key.Matches(msg, m.keys.Delete):
			node := m.current()
			if node == m.rtx.Tree {
				m.status = "The root category cannot be deleted."
				m.statusBad = true
				return m, nil
			}
			next := m.rtx.Tree.Delete(node.ID)
			m = m.apply(next, fmt.Sprintf("Deleted %s.", node.Label))
			return m, nil

		case key.Matches(msg, m.keys.Rename):
			return m.enterInput(modeRename, "New label:", m.current().Label)

		case key.Matches(msg, m.keys.Share):
			node := m.current()
			prompt := fmt.Sprintf("Share for %s (0-100):", node.Label)
			return m.enterInput(modeShare, prompt, strconv.Itoa(node.Share))

		case key.Matches(msg, m.keys.Distribute):
			return m.enterInput(modeDistribute, "Global qty to distribute:", strconv.Itoa(m.rtx.Tree.Qty))

		case key.Matches(msg, m.keys.Normalize):
			m = m.normalize()
			return m, nil
		}
	}

	return m, nil
}

func (m editorModel) enterInput(mode editorMode, prompt, value string) (tea.Model, tea.Cmd) {
	m.mode = mode
	m.prompt = prompt
	m.status = ""
	m.statusBad = false
	m.input.SetValue(value)
	m.input.Focus()
	return m, textinput.Blink
}

func (m editorModel) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEsc:
			m.mode = modeBrowse
			m.input.Blur()
			m.status = ""
			m.statusBad = false
			return m, nil
		case tea.KeyEnter:
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit applies the pending input. Invalid values keep the input open so
// the user can correct them.
func (m editorModel) submit() (tea.Model, tea.Cmd) {
	node := m.current()
	if node == nil {
		m.mode = modeBrowse
		m.input.Blur()
		return m, nil
	}

	value := strings.TrimSpace(m.input.Value())

	switch m.mode {
	case modeAdd:
		child := tree.NewLeaf(m.rtx.Tree)
		if label := utils.CleanLabel(value); label != "" {
			child.Label = label
		}
		next := m.rtx.Tree.AppendChild(node.ID, child)
		m = m.apply(next, fmt.Sprintf("Created %s under %s.", child.Label, node.Label))
		m = m.cursorTo(child.ID)

	case modeRename:
		label := utils.CleanLabel(value)
		if label == "" {
			m.status = "A label cannot be empty."
			m.statusBad = true
			return m, nil
		}
		next := m.rtx.Tree.UpdateLabel(node.ID, label)
		m = m.apply(next, fmt.Sprintf("Renamed to %s.", label))

	case modeShare:
		share, err := strconv.Atoi(value)
		if err != nil || share < 0 || share > 100 {
			m.status = "Share must be between 0 and 100."
			m.statusBad = true
			return m, nil
		}
		next := m.rtx.Tree.DistributeShare(node.ID, share)
		m = m.apply(next, fmt.Sprintf("Set share of %s to %d%%.", node.Label, share))

	case modeDistribute:
		qty, err := strconv.Atoi(value)
		if err != nil || qty < 0 {
			m.status = "Qty must be a non-negative number."
			m.statusBad = true
			return m, nil
		}
		if qty > m.rtx.Settings.MaxGlobalQty {
			m.status = fmt.Sprintf("Qty exceeds the configured maximum of %d.", m.rtx.Settings.MaxGlobalQty)
			m.statusBad = true
			return m, nil
		}
		next := m.rtx.Tree.DistributeQty(qty)
		m = m.apply(next, fmt.Sprintf("Distributed %d.", qty))
	}

	m.mode = modeBrowse
	m.input.Blur()
	return m, nil
}

// apply swaps in the next tree and saves it, reporting the outcome on the
// status line.
func (m editorModel) apply(next *tree.Node, status string) editorModel {
	if !m.rtx.Swap(next) {
		m.status = "Nothing changed."
		m.statusBad = false
		return m
	}

	if err := m.rtx.Save(); err != nil {
		m.saveErr = err
		m.status = fmt.Sprintf("Failed to save: %v", err)
		m.statusBad = true
		m.logger.Error("tree save failed", zap.Error(err))
		return m
	}

	m.saveErr = nil
	m.status = status
	m.statusBad = false
	m.logger.Debug("tree saved", zap.String("outcome", status))

	if rows := len(m.rows()); m.cursor >= rows {
		m.cursor = rows - 1
	}
	return m
}

func (m editorModel) normalize() editorModel {
	minQty := m.rtx.Settings.MinNodeQty

	next, err := m.rtx.Tree.Normalize(minQty)
	if err != nil {
		m.status = "Normalization gave up; categories with a share of 0 can never meet the minimum."
		m.statusBad = true
		m.logger.Warn("normalize failed", zap.Error(err))
		return m
	}

	if !m.rtx.Swap(next) {
		m.status = fmt.Sprintf("Every category already meets the minimum qty of %d.", minQty)
		m.statusBad = false
		return m
	}

	if err := m.rtx.Save(); err != nil {
		m.saveErr = err
		m.status = fmt.Sprintf("Failed to save: %v", err)
		m.statusBad = true
		m.logger.Error("tree save failed", zap.Error(err))
		return m
	}

	m.saveErr = nil
	m.status = fmt.Sprintf("Normalized to a global qty of %d.", next.Qty)
	m.statusBad = false
	if next.Qty > m.rtx.Settings.MaxGlobalQty {
		m.status = fmt.Sprintf("Normalized to %d, above the configured maximum of %d.", next.Qty, m.rtx.Settings.MaxGlobalQty)
		m.statusBad = true
	}
	return m
}

func (m editorModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.styles.title.Render("Classtree Editor"))
	b.WriteString("\n")

	renderer := output.NewTreeRenderer(output.RenderOptions{
		ShowIDs: true,
		MinQty:  m.rtx.Settings.MinNodeQty,
	})

	for i, line := range renderer.Render(m.rtx.Tree) {
		cursor := "  "
		if i == m.cursor {
			cursor = m.styles.cursor.Render("▸ ")
			line = m.styles.selected.Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}

	b.WriteString("\n")

	if m.status != "" {
		style := m.styles.status
		if m.statusBad {
			style = m.styles.errText
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}

	if m.mode != modeBrowse {
		b.WriteString("\n")
		b.WriteString(m.prompt)
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(m.styles.dim.Render("(Enter to apply, Esc to cancel)"))
		b.WriteString("\n")
	} else {
		b.WriteString("\n")
		b.WriteString(m.help.View(m.keys))
		b.WriteString("\n")
	}

	return b.String()
}
