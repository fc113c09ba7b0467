package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	spirvreflect "github.com/gpukit/spirv-reflect"
	"github.com/gpukit/spirv-reflect/reflection"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#87CEEB"))

	entryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// row is one selectable line in the browser: a descriptor or an
// interface variable, under its section heading.
type row struct {
	section string // "descriptor set 0", "Vertex main", ...
	label   string // "binding 1   ubo", "location 0  in  in_pos"
	typ     *reflection.Type
}

type browserModel struct {
	err      error
	filename string
	info     *reflection.ModuleInfo
	rows     []row
	visible  []int // indices into rows after filtering
	selected int
	filter   textinput.Model
	state    browserState
}

type browserState int

const (
	stateBrowse browserState = iota
	stateFilter
	stateDetail
)

type loadedMsg struct {
	err  error
	info *reflection.ModuleInfo
}

func newBrowserModel(filename string) *browserModel {
	filter := textinput.New()
	filter.Placeholder = "name filter"
	filter.Prompt = "/ "
	filter.Width = 30
	return &browserModel{filename: filename, filter: filter}
}

func (m *browserModel) Init() tea.Cmd {
	return m.load
}

func (m *browserModel) load() tea.Msg {
	data, err := os.ReadFile(m.filename)
	if err != nil {
		return loadedMsg{err: err}
	}
	info, err := spirvreflect.ReflectBytes(data)
	if err != nil {
		return loadedMsg{err: err}
	}
	return loadedMsg{info: info}
}

func (m *browserModel) buildRows() {
	for _, set := range m.info.DescriptorSets {
		section := fmt.Sprintf("descriptor set %d", set.Set)
		for _, d := range set.Descriptors {
			m.rows = append(m.rows, row{
				section: section,
				label:   fmt.Sprintf("binding %-3d %s", d.Index, d.Name),
				typ:     d.Type,
			})
		}
	}
	for _, ep := range m.info.EntryPoints {
		section := fmt.Sprintf("%s %s", ep.Stage, ep.Name)
		for _, in := range ep.Inputs {
			m.rows = append(m.rows, row{
				section: section,
				label:   fmt.Sprintf("location %-2d in  %s", in.Index, in.Name),
				typ:     in.Type,
			})
		}
		for _, out := range ep.Outputs {
			m.rows = append(m.rows, row{
				section: section,
				label:   fmt.Sprintf("location %-2d out %s", out.Index, out.Name),
				typ:     out.Type,
			})
		}
	}
	m.applyFilter()
}

func (m *browserModel) applyFilter() {
	needle := strings.ToLower(m.filter.Value())
	m.visible = m.visible[:0]
	for i, r := range m.rows {
		if needle == "" || strings.Contains(strings.ToLower(r.label), needle) {
			m.visible = append(m.visible, i)
		}
	}
	if m.selected >= len(m.visible) {
		m.selected = 0
	}
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.state == stateFilter {
			switch msg.String() {
			case "enter", "esc":
				m.filter.Blur()
				m.state = stateBrowse
			case "ctrl+c":
				return m, tea.Quit
			default:
				var cmd tea.Cmd
				m.filter, cmd = m.filter.Update(msg)
				m.applyFilter()
				return m, cmd
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateBrowse && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateBrowse && m.selected < len(m.visible)-1 {
				m.selected++
			}

		case "/":
			if m.state == stateBrowse {
				m.state = stateFilter
				m.filter.Focus()
			}

		case "enter":
			if m.state == stateBrowse && len(m.visible) > 0 {
				m.state = stateDetail
			}

		case "esc":
			if m.state == stateDetail {
				m.state = stateBrowse
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.info = msg.info
		m.buildRows()
	}

	return m, nil
}

func (m *browserModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}
	if m.info == nil {
		return "Loading module..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("SPIR-V Inspector"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")

	if m.state == stateDetail {
		r := m.rows[m.visible[m.selected]]
		b.WriteString(sectionStyle.Render(r.section))
		b.WriteString("\n")
		b.WriteString(entryStyle.Render(r.label))
		b.WriteString("\n\n")
		b.WriteString(glslType(r.typ))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("esc back • q quit"))
		return b.String()
	}

	if m.state == stateFilter || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
	}

	lastSection := ""
	for vi, ri := range m.visible {
		r := m.rows[ri]
		if r.section != lastSection {
			b.WriteString(sectionStyle.Render(r.section))
			b.WriteString("\n")
			lastSection = r.section
		}
		line := "  " + r.label
		if vi == m.selected {
			b.WriteString(selectedStyle.Render("> " + r.label))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	if len(m.visible) == 0 {
		b.WriteString(helpStyle.Render("no matches"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ select • enter detail • / filter • q quit"))
	return b.String()
}

func runInteractive(filename string) error {
	p := tea.NewProgram(newBrowserModel(filename), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
