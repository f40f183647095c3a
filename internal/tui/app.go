package tui

import (
	"context"

	"github.com/MKhiriev/go-book-keeper/internal/service"
	"github.com/MKhiriev/go-book-keeper/internal/store"
	"github.com/MKhiriev/go-book-keeper/models"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"
	pageBooks    = "books"
	pageNewBook  = "new-book"
)

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit
// 3) follows the auth stream: signed in users land on the books page,
// signed out users on the menu
// 4) feeds connection, sync and book updates to the books page
// 5) delegates all other messages to the active page
type RootModel struct {
	pages   map[string]tea.Model
	current string

	authStates       <-chan models.AuthState
	connectionStates <-chan models.ConnectionState
	syncResults      <-chan models.SyncResult
	bookLists        <-chan []models.Book

	quitByUser    bool
	buildInfo     models.AppBuildInfo
	showBuildInfo bool
}

// NewRootModel registers all pages and subscribes to the service streams
// for the lifetime of ctx.
func NewRootModel(ctx context.Context, services *service.ClientServices, books store.LocalBookRepository, buildInfo models.AppBuildInfo) RootModel {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, services.Auth),
		pageRegister: NewRegisterModel(ctx, services.Auth),
		pageBooks:    NewBooksModel(ctx, services),
		pageNewBook:  NewBookFormModel(ctx, books, services.Sync, services.Connection),
	}

	return RootModel{
		pages:            pages,
		current:          pageMenu,
		authStates:       services.Auth.Subscribe(ctx),
		connectionStates: services.Connection.Subscribe(ctx),
		syncResults:      services.Sync.Subscribe(ctx),
		bookLists:        books.Watch(ctx),
		buildInfo:        buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	return tea.Batch(
		r.listenAuth(),
		r.listenConnection(),
		r.listenSync(),
		r.listenBooks(),
		r.pages[r.current].Init(),
	)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkey for every page.
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "v":
			if r.current == pageMenu || r.current == pageBooks {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch m := msg.(type) {
	case NavigateTo:
		return r.navigate(m)

	case authStateMsg:
		return r.onAuthState(m)

	case connectionStateMsg:
		return r, tea.Batch(r.updatePage(pageBooks, m), r.listenConnection())

	case syncResultMsg:
		return r, tea.Batch(r.updatePage(pageBooks, m), r.listenSync())

	case booksMsg:
		return r, tea.Batch(r.updatePage(pageBooks, m), r.listenBooks())

	case spinner.TickMsg:
		return r, r.updatePage(pageBooks, m)
	}

	return r, r.updatePage(r.current, msg)
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	page, ok := r.pages[r.current]
	if !ok {
		return renderPage("BOOKKEEPER", "", "")
	}
	return page.View()
}

func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, exists := r.pages[nav.Page]
	if !exists {
		return r, nil
	}

	r.showBuildInfo = false
	r.current = nav.Page

	if nav.Payload != nil {
		return r, func() tea.Msg { return nav.Payload }
	}
	return r, next.Init()
}

func (r RootModel) onAuthState(msg authStateMsg) (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{r.updatePage(pageBooks, msg), r.listenAuth()}

	switch msg.state.(type) {
	case models.Authenticated:
		if r.current != pageBooks && r.current != pageNewBook {
			r.current = pageBooks
			cmds = append(cmds, r.pages[pageBooks].Init())
		}
	case models.NotAuthenticated:
		if r.current == pageBooks || r.current == pageNewBook {
			r.current = pageMenu
		}
	}

	return r, tea.Batch(cmds...)
}

// updatePage forwards msg to the named page. Pages are pointers, so the
// map entry stays current.
func (r RootModel) updatePage(name string, msg tea.Msg) tea.Cmd {
	page, ok := r.pages[name]
	if !ok {
		return nil
	}
	updated, cmd := page.Update(msg)
	r.pages[name] = updated
	return cmd
}

func (r RootModel) listenAuth() tea.Cmd {
	return listen(r.authStates, func(st models.AuthState) tea.Msg { return authStateMsg{state: st} })
}

func (r RootModel) listenConnection() tea.Cmd {
	return listen(r.connectionStates, func(st models.ConnectionState) tea.Msg { return connectionStateMsg{state: st} })
}

func (r RootModel) listenSync() tea.Cmd {
	return listen(r.syncResults, func(res models.SyncResult) tea.Msg { return syncResultMsg{result: res} })
}

func (r RootModel) listenBooks() tea.Cmd {
	return listen(r.bookLists, func(books []models.Book) tea.Msg { return booksMsg{books: books} })
}
