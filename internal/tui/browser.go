package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bookloft/biblioctl/internal/catalog"
	"github.com/bookloft/biblioctl/internal/util"
)

// keyMap defines keyboard shortcuts
type keyMap struct {
	quit       key.Binding
	enter      key.Binding
	filter     key.Binding
	sortTitle  key.Binding
	sortAuthor key.Binding
	sortPub    key.Binding
	sortStatus key.Binding
}

var keys = keyMap{
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "details"),
	),
	filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	sortTitle: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "sort title"),
	),
	sortAuthor: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "sort author"),
	),
	sortPub: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "sort publisher"),
	),
	sortStatus: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sort status"),
	),
}

// model holds the state for the catalog browser.
type model struct {
	books []catalog.Book

	filter    catalog.Filter
	spec      catalog.SortSpec
	view      []catalog.Book
	input     textinput.Model
	filtering bool

	cursor   int
	width    int
	height   int
	quitting bool
	selected *catalog.Book
}

func newModel(books []catalog.Book) model {
	in := textinput.New()
	in.Placeholder = "title words, or author: publisher: isbn: status:"
	in.Prompt = "/ "
	m := model{books: books, input: in, width: 80, height: 24}
	m.view = catalog.View(m.books, m.filter, m.spec)
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.filtering {
			switch msg.String() {
			case "enter", "esc":
				m.filtering = false
				m.input.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			m.filter = parseQuery(m.input.Value())
			m.refresh()
			return m, cmd
		}

		switch {
		case key.Matches(msg, keys.quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.enter):
			if len(m.view) > 0 {
				b := m.view[m.cursor]
				m.selected = &b
				m.quitting = true
				return m, tea.Quit
			}

		case key.Matches(msg, keys.filter):
			m.filtering = true
			m.input.Focus()
			return m, textinput.Blink

		case key.Matches(msg, keys.sortTitle):
			m.toggleSort(catalog.FieldTitle)
		case key.Matches(msg, keys.sortAuthor):
			m.toggleSort(catalog.FieldAuthor)
		case key.Matches(msg, keys.sortPub):
			m.toggleSort(catalog.FieldPublisher)
		case key.Matches(msg, keys.sortStatus):
			m.toggleSort(catalog.FieldStatus)

		default:
			switch msg.String() {
			case "up", "k":
				if m.cursor > 0 {
					m.cursor--
				}
			case "down", "j":
				if m.cursor < len(m.view)-1 {
					m.cursor++
				}
			case "esc":
				m.quitting = true
				return m, tea.Quit
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// toggleSort cycles a sort key; sorting only reorders, so the
// filtered subset is kept and just re-sorted.
func (m *model) toggleSort(field string) {
	m.spec = m.spec.Toggle(field)
	m.refresh()
}

func (m *model) refresh() {
	m.view = catalog.View(m.books, m.filter, m.spec)
	if m.cursor >= len(m.view) {
		m.cursor = len(m.view) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(StyleHeader.Render(fmt.Sprintf("Library — %d/%d books", len(m.view), len(m.books))))
	if desc := describeSort(m.spec); desc != "" {
		b.WriteString("  " + StyleMeta.Render("sort: "+desc))
	}
	b.WriteString("\n")
	if m.filtering {
		b.WriteString(m.input.View() + "\n")
	} else if v := m.input.Value(); v != "" {
		b.WriteString(StyleMeta.Render("filter: "+v) + "\n")
	}

	rows := m.height - 5
	if rows < 1 {
		rows = 1
	}
	offset := 0
	if m.cursor >= rows {
		offset = m.cursor - rows + 1
	}

	titleW := 42
	authorW := 26
	if m.width < 90 {
		titleW = m.width * 2 / 5
		authorW = m.width / 4
	}

	for i := offset; i < len(m.view) && i < offset+rows; i++ {
		bk := m.view[i]
		line := fmt.Sprintf("%-*s  %-*s  %s",
			titleW, util.TruncateText(bk.Title, titleW),
			authorW, util.TruncateText(bk.Author, authorW),
			StyleStatus.Render(bk.Status.Label()))
		if i == m.cursor {
			b.WriteString(StyleHighlight.Render("› ") + StyleHighlight.Render(line) + "\n")
		} else {
			b.WriteString("  " + StyleNormal.Render(line) + "\n")
		}
	}
	if len(m.view) == 0 {
		b.WriteString(StyleHelp.Render("  no books match") + "\n")
	}

	b.WriteString("\n" + StyleHelp.Render("/ filter · t/a/p/s sort · enter details · q quit"))
	return b.String()
}

// describeSort renders the active sort keys, e.g. "author↑ title↓".
func describeSort(spec catalog.SortSpec) string {
	parts := make([]string, len(spec))
	for i, k := range spec {
		arrow := "↑"
		if k.Desc {
			arrow = "↓"
		}
		parts[i] = k.Field + arrow
	}
	return strings.Join(parts, " ")
}

// parseQuery turns "/"-entered text into filter criteria. Plain words
// match the title; field:value tokens target author, publisher, isbn,
// and status (by label).
func parseQuery(q string) catalog.Filter {
	var f catalog.Filter
	var titleWords []string
	for _, tok := range strings.Fields(q) {
		field, value, found := strings.Cut(tok, ":")
		if !found {
			titleWords = append(titleWords, tok)
			continue
		}
		switch strings.ToLower(field) {
		case "author":
			f.Author = value
		case "publisher":
			f.Publisher = value
		case "isbn":
			f.ISBN = value
		case "status":
			st := catalog.ParseStatus(strings.ToLower(value))
			f.Status = &st
		case "title":
			titleWords = append(titleWords, value)
		default:
			titleWords = append(titleWords, tok)
		}
	}
	f.Title = strings.Join(titleWords, " ")
	return f
}

// Run launches the interactive catalog browser. Returns the book the
// user selected for detail view, or nil if they just quit.
func Run(books []catalog.Book) (*catalog.Book, error) {
	p := tea.NewProgram(newModel(books), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("running TUI: %w", err)
	}
	if fm, ok := finalModel.(model); ok {
		return fm.selected, nil
	}
	return nil, nil
}
