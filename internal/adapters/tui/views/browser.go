package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"worklog/internal/adapters/tui/styles"
	"worklog/internal/application"
	"worklog/internal/application/commands"
	"worklog/internal/domain"
	"worklog/internal/ports"
)

// SwitchToHelpMsg asks the app to show the help view
type SwitchToHelpMsg struct{}

// SwitchToBrowserMsg asks the app to return to the browser view
type SwitchToBrowserMsg struct{}

// BrowserKeyMap defines key bindings for the log browser
type BrowserKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	MoveUp   key.Binding
	MoveDown key.Binding
	Delete   key.Binding
	CopyLog  key.Binding
	CopyDay  key.Binding
	Filter   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("h", "left", "pgup"),
		key.WithHelp("h/←", "prev page"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("l", "right", "pgdown"),
		key.WithHelp("l/→", "next page"),
	),
	MoveUp: key.NewBinding(
		key.WithKeys("K", "shift+up"),
		key.WithHelp("K", "move log up"),
	),
	MoveDown: key.NewBinding(
		key.WithKeys("J", "shift+down"),
		key.WithHelp("J", "move log down"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	CopyLog: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy log"),
	),
	CopyDay: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy day"),
	),
	Filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// BrowserModel is the model for the paginated log browser
type BrowserModel struct {
	store     *application.Store
	clipboard ports.Clipboard

	rows      []domain.LogRecord // display order, filter applied
	paginator *Paginator

	filter    textinput.Model
	filtering bool

	width      int
	height     int
	message    string
	messageErr bool
}

// NewBrowserModel creates a new browser model
func NewBrowserModel(store *application.Store, clipboard ports.Clipboard, pageSize int) *BrowserModel {
	filter := textinput.New()
	filter.Placeholder = "keyword"

	return &BrowserModel{
		store:     store,
		clipboard: clipboard,
		paginator: NewPaginator(pageSize),
		filter:    filter,
	}
}

// Init initializes the browser
func (m *BrowserModel) Init() tea.Cmd {
	m.reload()
	return nil
}

// Reload refreshes the rows after another view may have changed the store
func (m *BrowserModel) Reload() tea.Cmd {
	m.reload()
	return nil
}

// reload recomputes the display rows from the store and current filter
func (m *BrowserModel) reload() {
	records := m.store.Records()
	if keyword := strings.TrimSpace(m.filter.Value()); keyword != "" {
		records = domain.FilterRecords(records, domain.Filter{Keyword: keyword})
	}
	m.rows = domain.SortForDisplay(records)
	m.paginator.SetTotal(len(m.rows))
}

func (m *BrowserModel) selected() *domain.LogRecord {
	if len(m.rows) == 0 {
		return nil
	}
	return &m.rows[m.paginator.Cursor()]
}

// SetSize updates the view dimensions
func (m *BrowserModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the browser
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFiltering(msg)
		}
		return m.updateBrowsing(msg)
	}
	return m, nil
}

func (m *BrowserModel) updateFiltering(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.filtering = false
		m.filter.Blur()
		m.reload()
		return m, nil
	case "esc":
		m.filtering = false
		m.filter.SetValue("")
		m.filter.Blur()
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	return m, cmd
}

func (m *BrowserModel) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.message = ""

	switch {
	case key.Matches(msg, BrowserKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, BrowserKeys.Up):
		m.paginator.CursorUp()

	case key.Matches(msg, BrowserKeys.Down):
		m.paginator.CursorDown()

	case key.Matches(msg, BrowserKeys.PrevPage):
		m.paginator.PrevPage()

	case key.Matches(msg, BrowserKeys.NextPage):
		m.paginator.NextPage()

	case key.Matches(msg, BrowserKeys.Filter):
		m.filtering = true
		m.filter.Focus()
		return m, textinput.Blink

	case key.Matches(msg, BrowserKeys.Help):
		return m, func() tea.Msg { return SwitchToHelpMsg{} }

	case key.Matches(msg, BrowserKeys.Delete):
		m.deleteSelected()

	case key.Matches(msg, BrowserKeys.MoveUp):
		m.moveSelected(commands.MoveUp)

	case key.Matches(msg, BrowserKeys.MoveDown):
		m.moveSelected(commands.MoveDown)

	case key.Matches(msg, BrowserKeys.CopyLog):
		m.copySelected()

	case key.Matches(msg, BrowserKeys.CopyDay):
		m.copySelectedDay()
	}

	return m, nil
}

func (m *BrowserModel) deleteSelected() {
	record := m.selected()
	if record == nil {
		return
	}
	result, err := commands.NewDeleteLogCommand(m.store, record.ID).Execute(context.Background())
	m.finish(resultMessage(result), err)
}

func (m *BrowserModel) moveSelected(direction commands.MoveDirection) {
	record := m.selected()
	if record == nil {
		return
	}
	result, err := commands.NewMoveLogCommand(m.store, record.ID, direction).Execute(context.Background())
	if err != nil {
		m.finish("", err)
		return
	}
	m.finish(result.Message, nil)
}

func (m *BrowserModel) copySelected() {
	record := m.selected()
	if record == nil {
		return
	}
	result, err := commands.NewCopyLogCommand(m.store, m.clipboard, record.ID).Execute(context.Background())
	if err != nil {
		m.finish("", err)
		return
	}
	m.finish(result.Message, nil)
}

func (m *BrowserModel) copySelectedDay() {
	record := m.selected()
	if record == nil {
		return
	}
	result, err := commands.NewCopyDayCommand(m.store, m.clipboard, record.Date).Execute(context.Background())
	if err != nil {
		m.finish("", err)
		return
	}
	m.finish(result.Message, nil)
}

func (m *BrowserModel) finish(message string, err error) {
	if err != nil {
		m.message = err.Error()
		m.messageErr = true
	} else {
		m.message = message
		m.messageErr = false
	}
	m.reload()
}

func resultMessage(result *commands.DeleteResult) string {
	if result == nil {
		return ""
	}
	return result.Message
}

// View renders the browser
func (m *BrowserModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Work Log — " + m.store.CompanyName()))
	b.WriteString("\n")

	if m.filtering || m.filter.Value() != "" {
		b.WriteString(styles.InputLabel.Render("Filter: "))
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
	}

	if len(m.rows) == 0 {
		b.WriteString(styles.MutedText.Render("No logs."))
		b.WriteString("\n")
	} else {
		start, end := m.paginator.VisibleRange()
		previousDate := ""
		for i := start; i < end; i++ {
			r := m.rows[i]
			if r.Date != previousDate {
				b.WriteString(styles.DateHeader.Render(r.Date))
				b.WriteString("\n")
				previousDate = r.Date
			}
			b.WriteString(m.renderRow(r, i == m.paginator.Cursor()))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(styles.StatusText.Render(
			fmt.Sprintf("Page %d/%d — %d log(s)", m.paginator.CurrentPage(), m.paginator.TotalPages(), len(m.rows))))
		b.WriteString("\n")
	}

	if m.message != "" {
		b.WriteString("\n")
		if m.messageErr {
			b.WriteString(styles.ErrorMsg.Render(m.message))
		} else {
			b.WriteString(styles.Success.Render(m.message))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpDesc.Render("j/k move • h/l page • / filter • d delete • K/J reorder • y/c copy • ? help • q quit"))

	return styles.App.Render(b.String())
}

func (m *BrowserModel) renderRow(r domain.LogRecord, selected bool) string {
	line := fmt.Sprintf("  %s %s %s",
		styles.Sequence.Render(fmt.Sprintf("%d.", r.Seq())),
		r.Content,
		styles.Category.Render("["+r.Category+"]"))
	if len(r.Tags) > 0 {
		line += " " + styles.Tag.Render("#"+strings.Join(r.Tags, " #"))
	}
	if selected {
		return styles.RowSelected.Render("▸" + line[1:])
	}
	return styles.Row.Render(line)
}
