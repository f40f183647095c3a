package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-book-keeper/internal/service"
	"github.com/MKhiriev/go-book-keeper/internal/store"
	"github.com/MKhiriev/go-book-keeper/internal/validators"
	"github.com/MKhiriev/go-book-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// BookFormModel adds a book to the local collection. The book is stored
// first and pushed right away only while the connection is online; offline
// it stays a draft until the next push.
type BookFormModel struct {
	ctx        context.Context
	books      store.LocalBookRepository
	sync       service.SyncOrchestrator
	connection service.ConnectionStateManager
	validator  validators.Validator

	inputs []textinput.Model
	focus  int
	saving bool
	errMsg string
}

func NewBookFormModel(
	ctx context.Context,
	books store.LocalBookRepository,
	sync service.SyncOrchestrator,
	connection service.ConnectionStateManager,
) *BookFormModel {
	fields := make([]textinput.Model, 3)

	fields[0] = textinput.New()
	fields[0].Placeholder = "title"
	fields[0].CharLimit = 256
	fields[0].Width = 40
	fields[0].Focus()

	fields[1] = textinput.New()
	fields[1].Placeholder = "author"
	fields[1].CharLimit = 256
	fields[1].Width = 40

	fields[2] = textinput.New()
	fields[2].Placeholder = "saga (optional)"
	fields[2].CharLimit = 256
	fields[2].Width = 40

	return &BookFormModel{
		ctx:        ctx,
		books:      books,
		sync:       sync,
		connection: connection,
		validator:  validators.NewBookValidator(),
		inputs:     fields,
	}
}

func (m *BookFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *BookFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if saved, ok := msg.(bookSavedMsg); ok {
		m.saving = false
		if saved.err != nil {
			m.errMsg = saved.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.resetForm()
		return m, func() tea.Msg { return NavigateTo{Page: pageBooks, Payload: saved} }
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.saving = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageBooks} }
		case key.Matches(keyMsg, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.saving {
				return m, nil
			}

			book := models.Book{
				Title:          strings.TrimSpace(m.inputs[0].Value()),
				Author:         strings.TrimSpace(m.inputs[1].Value()),
				Saga:           strings.TrimSpace(m.inputs[2].Value()),
				Status:         models.StatusToRead,
				WishlistStatus: models.WishlistNone,
			}
			if err := m.validator.Validate(m.ctx, book); err != nil {
				m.errMsg = validationText(err)
				return m, nil
			}

			m.errMsg = ""
			m.saving = true
			return m, m.cmdSave(book)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *BookFormModel) View() string {
	var b strings.Builder
	b.WriteString("Поле      │ Значение\n")
	b.WriteString("──────────┼──────────────────────────────────────────\n")
	b.WriteString("Название  │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Автор     │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")
	b.WriteString("Серия     │ [")
	b.WriteString(m.inputs[2].View())
	b.WriteString("]\n")

	if m.saving {
		b.WriteString("\n[Сохранить...]\n")
	} else {
		b.WriteString("\n[Сохранить]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("НОВАЯ КНИГА", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: сохранить")
}

func (m *BookFormModel) cmdSave(book models.Book) tea.Cmd {
	ctx := m.ctx
	books, sync, connection := m.books, m.sync, m.connection

	return func() tea.Msg {
		saved, err := books.Upsert(ctx, book)
		if err != nil {
			return bookSavedMsg{book: book, err: err}
		}
		if !connection.IsOnline() {
			return bookSavedMsg{book: saved}
		}
		return bookSavedMsg{book: saved, synced: sync.SyncSingleItem(ctx, saved)}
	}
}

func (m *BookFormModel) resetForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[m.focus].Focus()
}

func (m *BookFormModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *BookFormModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func validationText(err error) string {
	switch {
	case errors.Is(err, validators.ErrEmptyTitle):
		return "Название обязательно"
	case errors.Is(err, validators.ErrTitleTooLong):
		return "Название слишком длинное"
	default:
		return err.Error()
	}
}
