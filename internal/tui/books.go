package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-book-keeper/internal/service"
	"github.com/MKhiriev/go-book-keeper/models"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	titleColWidth  = 30
	authorColWidth = 20
	statusColWidth = 10
)

// BooksModel is the main page of a signed in user: the local collection,
// a status bar fed by the connection and sync streams, and the sync hotkeys.
type BooksModel struct {
	ctx      context.Context
	services *service.ClientServices

	books  []models.Book
	cursor int

	authState  models.AuthState
	connection models.ConnectionState
	lastResult models.SyncResult

	busy     bool
	spinning bool
	notice   string

	spinner spinner.Model
	help    help.Model
}

func NewBooksModel(ctx context.Context, services *service.ClientServices) *BooksModel {
	return &BooksModel{
		ctx:        ctx,
		services:   services,
		authState:  models.NotAuthenticated{},
		connection: models.Offline{},
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:       help.New(),
	}
}

func (m *BooksModel) Init() tea.Cmd {
	return nil
}

func (m *BooksModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case authStateMsg:
		m.authState = msg.state
		if _, ok := msg.state.(models.NotAuthenticated); ok {
			m.notice = ""
			m.busy = false
		}
		return m, nil

	case connectionStateMsg:
		m.connection = msg.state
		return m, m.startSpinner()

	case syncResultMsg:
		m.lastResult = msg.result
		return m, nil

	case booksMsg:
		m.books = msg.books
		if m.cursor >= len(m.books) {
			m.cursor = max(len(m.books)-1, 0)
		}
		return m, nil

	case syncDoneMsg:
		m.busy = false
		m.notice = ""
		return m, nil

	case probeDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.notice = msg.err.Error()
		} else {
			m.notice = ""
		}
		return m, nil

	case bookSyncedMsg:
		m.busy = false
		if msg.ok {
			m.notice = fmt.Sprintf("«%s» отправлена на сервер", msg.title)
		} else {
			m.notice = fmt.Sprintf("«%s» не удалось отправить, книга осталась локально", msg.title)
		}
		return m, nil

	case bookSavedMsg:
		switch {
		case msg.err != nil:
			m.notice = "Книга не сохранена: " + msg.err.Error()
		case msg.synced:
			m.notice = fmt.Sprintf("«%s» сохранена и отправлена на сервер", msg.book.Title)
		default:
			m.notice = fmt.Sprintf("«%s» сохранена локально", msg.book.Title)
		}
		return m, nil

	case spinner.TickMsg:
		if !m.showSpinner() {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *BooksModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.down):
		if m.cursor < len(m.books)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.newItem):
		return m, func() tea.Msg { return NavigateTo{Page: pageNewBook} }
	case key.Matches(msg, keys.logout):
		ctx, auth := m.ctx, m.services.Auth
		return m, func() tea.Msg {
			auth.Logout(ctx)
			return nil
		}
	case key.Matches(msg, keys.sync):
		return m.run(m.services.Sync.FullSync)
	case key.Matches(msg, keys.pull):
		return m.run(m.services.Sync.Pull)
	case key.Matches(msg, keys.push):
		return m.run(m.services.Sync.Push)
	case key.Matches(msg, keys.retry):
		if m.busy {
			return m, nil
		}
		m.busy = true
		ctx, connection := m.ctx, m.services.Connection
		return m, tea.Batch(m.startSpinner(), func() tea.Msg {
			return probeDoneMsg{err: connection.ProbeNow(ctx)}
		})
	case key.Matches(msg, keys.syncItem):
		if m.busy || len(m.books) == 0 {
			return m, nil
		}
		m.busy = true
		book := m.books[m.cursor]
		ctx, sync := m.ctx, m.services.Sync
		return m, tea.Batch(m.startSpinner(), func() tea.Msg {
			return bookSyncedMsg{title: book.Title, ok: sync.SyncSingleItem(ctx, book)}
		})
	}
	return m, nil
}

// run starts a sync operation unless one started from this page is still
// in flight.
func (m *BooksModel) run(op func(context.Context) models.SyncResult) (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	m.busy = true
	m.notice = ""
	ctx := m.ctx
	return m, tea.Batch(m.startSpinner(), func() tea.Msg {
		return syncDoneMsg{result: op(ctx)}
	})
}

func (m *BooksModel) showSpinner() bool {
	_, syncing := m.connection.(models.Syncing)
	return m.busy || syncing
}

func (m *BooksModel) startSpinner() tea.Cmd {
	if m.spinning || !m.showSpinner() {
		return nil
	}
	m.spinning = true
	return m.spinner.Tick
}

func (m *BooksModel) View() string {
	var b strings.Builder

	b.WriteString(m.renderStatusBar())
	b.WriteString("\n\n")
	b.WriteString(m.renderTable())

	if m.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(warnStyle.Render(m.notice))
	}

	if partial, ok := m.lastResult.(models.SyncPartial); ok && len(partial.Errors) > 0 {
		b.WriteString("\n\n")
		b.WriteString(mutedStyle.Render("Не отправлены:"))
		for _, e := range partial.Errors {
			b.WriteString("\n  ")
			b.WriteString(errorStyle.Render(e))
		}
	}

	return renderPage("МОИ КНИГИ", b.String(), m.help.View(booksKeyMap{}))
}

func (m *BooksModel) renderStatusBar() string {
	indicator := "●"
	if m.showSpinner() {
		indicator = m.spinner.View()
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		renderAuthState(m.authState),
		mutedStyle.Render("  │  "),
		renderConnectionState(m.connection, indicator),
		mutedStyle.Render("  │  "),
		renderSyncResult(m.lastResult),
	)
}

func (m *BooksModel) renderTable() string {
	if len(m.books) == 0 {
		return mutedStyle.Render("Коллекция пуста. n: добавить книгу")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %-*s │ %-*s │ %-*s │ %s\n",
		titleColWidth, "Название", authorColWidth, "Автор", statusColWidth, "Статус", "Сервер"))
	b.WriteString(strings.Repeat("─", titleColWidth+2))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", authorColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", statusColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", 8))

	for i, book := range m.books {
		cursor := " "
		if i == m.cursor {
			cursor = ">"
		}
		remote := mutedStyle.Render("черновик")
		if !book.IsNew() {
			remote = fmt.Sprintf("#%d", book.ID)
		}
		b.WriteString(fmt.Sprintf("\n%s %-*s │ %-*s │ %-*s │ %s",
			cursor,
			titleColWidth, fitText(book.Title, titleColWidth),
			authorColWidth, fitText(valueOrDash(book.Author), authorColWidth),
			statusColWidth, fitText(string(book.Status), statusColWidth),
			remote,
		))
	}
	return b.String()
}

func renderAuthState(st models.AuthState) string {
	switch st := st.(type) {
	case models.Authenticated:
		return "Пользователь: " + titleStyle.Render(st.User.Username)
	case models.Authenticating:
		return mutedStyle.Render("Вход...")
	case models.AuthError:
		return errorStyle.Render("Ошибка входа: " + st.Message)
	default:
		return mutedStyle.Render("Не авторизован")
	}
}

func renderConnectionState(st models.ConnectionState, indicator string) string {
	switch st := st.(type) {
	case models.Online:
		return okStyle.Render(indicator + " онлайн")
	case models.Syncing:
		return warnStyle.Render(indicator + " синхронизация")
	case models.ConnectionError:
		return errorStyle.Render(indicator + " " + st.Message)
	default:
		return mutedStyle.Render(indicator + " офлайн")
	}
}

func renderSyncResult(res models.SyncResult) string {
	switch res := res.(type) {
	case models.SyncSuccess:
		return okStyle.Render("Синхронизировано")
	case models.SyncError:
		return errorStyle.Render("Сбой синхронизации: " + res.Message)
	case models.SyncPartial:
		return warnStyle.Render(fmt.Sprintf("Частично: %d успешно, %d с ошибкой", res.Successful, res.Failed))
	default:
		return mutedStyle.Render("Синхронизации ещё не было")
	}
}
