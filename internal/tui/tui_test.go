package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-book-keeper/internal/mock"
	"github.com/MKhiriev/go-book-keeper/internal/service"
	"github.com/MKhiriev/go-book-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type tuiMocks struct {
	auth       *mock.MockAuthStateManager
	connection *mock.MockConnectionStateManager
	sync       *mock.MockSyncOrchestrator
	books      *mock.MockLocalBookRepository
}

func newTUIMocks(ctrl *gomock.Controller) tuiMocks {
	return tuiMocks{
		auth:       mock.NewMockAuthStateManager(ctrl),
		connection: mock.NewMockConnectionStateManager(ctrl),
		sync:       mock.NewMockSyncOrchestrator(ctrl),
		books:      mock.NewMockLocalBookRepository(ctrl),
	}
}

func (m tuiMocks) services() *service.ClientServices {
	return &service.ClientServices{Auth: m.auth, Connection: m.connection, Sync: m.sync}
}

// collect выполняет команду и все вложенные batch-команды, возвращая
// полученные сообщения
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func findMsg[T any](t *testing.T, msgs []tea.Msg) T {
	t.Helper()
	for _, m := range msgs {
		if v, ok := m.(T); ok {
			return v
		}
	}
	var zero T
	t.Fatalf("message %T not produced, got %v", zero, msgs)
	return zero
}

func enterKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestLoginModel_EmptyFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	mocks := newTUIMocks(ctrl)
	m := NewLoginModel(context.Background(), mocks.auth)

	_, cmd := m.Update(enterKey())

	assert.Nil(t, cmd)
	assert.Equal(t, "Логин и пароль обязательны", m.errMsg)
	assert.False(t, m.submitting)
}

func TestLoginModel_SubmitCallsAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	mocks := newTUIMocks(ctrl)
	m := NewLoginModel(context.Background(), mocks.auth)

	m.inputs[0].SetValue("  reader ")
	m.inputs[1].SetValue("secret")
	mocks.auth.EXPECT().Login(gomock.Any(), "reader", "secret").Return(nil)

	_, cmd := m.Update(enterKey())
	require.NotNil(t, cmd)
	assert.True(t, m.submitting)

	result := findMsg[LoginResult](t, collect(cmd))
	assert.NoError(t, result.Err)

	m.Update(result)
	assert.False(t, m.submitting)
	assert.Empty(t, m.inputs[1].Value(), "пароль очищается после входа")
}

func TestLoginModel_FailureShowsPublishedMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	mocks := newTUIMocks(ctrl)
	m := NewLoginModel(context.Background(), mocks.auth)
	m.submitting = true

	mocks.auth.EXPECT().State().Return(models.AuthError{Message: "Invalid credentials"})

	m.Update(LoginResult{Err: errors.New("login: unauthorized")})

	assert.False(t, m.submitting)
	assert.Equal(t, "Invalid credentials", m.errMsg)
	assert.Contains(t, m.View(), "Invalid credentials")
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestRegisterModel_PasswordsMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	mocks := newTUIMocks(ctrl)
	m := NewRegisterModel(context.Background(), mocks.auth)

	m.inputs[0].SetValue("reader")
	m.inputs[1].SetValue("reader@example.com")
	m.inputs[2].SetValue("one")
	m.inputs[3].SetValue("two")

	_, cmd := m.Update(enterKey())

	assert.Nil(t, cmd)
	assert.Equal(t, "Пароли не совпадают", m.errMsg)
}

func TestRegisterModel_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mocks := newTUIMocks(ctrl)
	m := NewRegisterModel(context.Background(), mocks.auth)

	m.inputs[0].SetValue("reader")
	m.inputs[1].SetValue("reader@example.com")
	m.inputs[2].SetValue("secret")
	m.inputs[3].SetValue("secret")
	mocks.auth.EXPECT().Register(gomock.Any(), "reader", "reader@example.com", "secret").Return(nil)

	_, cmd := m.Update(enterKey())
	result := findMsg[RegisterResult](t, collect(cmd))
	require.NoError(t, result.Err)

	m.Update(result)
	for _, in := range m.inputs {
		assert.Empty(t, in.Value())
	}
}

// ── Books ────────────────────────────────────────────────────────────────────

func TestBooksModel_FullSyncKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	mocks := newTUIMocks(ctrl)
	m := NewBooksModel(context.Background(), mocks.services())

	mocks.sync.EXPECT().FullSync(gomock.Any()).Return(models.SyncSuccess{})

	_, cmd := m.Update(runeKey('s'))
	assert.True(t, m.busy)

	// повторное нажатие во время синхронизации игнорируется
	_, again := m.Update(runeKey('s'))
	assert.Nil(t, again)

	done := findMsg[syncDoneMsg](t, collect(cmd))
	assert.Equal(t, models.SyncSuccess{}, done.result)

	m.Update(done)
	assert.False(t, m.busy)
}

func TestBooksModel_PullAndPushKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	mocks := newTUIMocks(ctrl)
	m := NewBooksModel(context.Background(), mocks.services())

	mocks.sync.EXPECT().Pull(gomock.Any()).Return(models.SyncSuccess{})
	_, cmd := m.Update(runeKey('p'))
	m.Update(findMsg[syncDoneMsg](t, collect(cmd)))

	partial := models.NewSyncPartial(1, 1, []string{"Dune: invalid book"})
	mocks.sync.EXPECT().Push(gomock.Any()).Return(partial)
	_, cmd = m.Update(runeKey('u'))
	done := findMsg[syncDoneMsg](t, collect(cmd))
	assert.Equal(t, partial, done.result)
}

func TestBooksModel_SyncSelectedItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	mocks := newTUIMocks(ctrl)
	m := NewBooksModel(context.Background(), mocks.services())

	books := []models.Book{
		{LocalID: 1, Title: "Dune"},
		{LocalID: 2, Title: "Solaris"},
	}
	m.Update(booksMsg{books: books})
	m.Update(runeKey('j'))

	mocks.sync.EXPECT().SyncSingleItem(gomock.Any(), books[1]).Return(false)

	_, cmd := m.Update(enterKey())
	synced := findMsg[bookSyncedMsg](t, collect(cmd))
	assert.Equal(t, bookSyncedMsg{title: "Solaris", ok: false}, synced)

	m.Update(synced)
	assert.Contains(t, m.notice, "Solaris")
}

func TestBooksModel_RetryProbe(t *testing.T) {
	ctrl := gomock.NewController(t)
	mocks := newTUIMocks(ctrl)
	m := NewBooksModel(context.Background(), mocks.services())

	mocks.connection.EXPECT().ProbeNow(gomock.Any()).Return(nil)

	_, cmd := m.Update(runeKey('r'))
	done := findMsg[probeDoneMsg](t, collect(cmd))
	assert.NoError(t, done.err)
}

func TestBooksModel_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	mocks := newTUIMocks(ctrl)
	m := NewBooksModel(context.Background(), mocks.services())

	mocks.auth.EXPECT().Logout(gomock.Any())

	_, cmd := m.Update(runeKey('l'))
	assert.Empty(t, collect(cmd))
}

func TestBooksModel_StatusBar(t *testing.T) {
	ctrl := gomock.NewController(t)
	mocks := newTUIMocks(ctrl)
	m := NewBooksModel(context.Background(), mocks.services())

	m.Update(authStateMsg{state: models.Authenticated{User: models.User{ID: 1, Username: "reader"}, Token: "tok"}})
	m.Update(connectionStateMsg{state: models.ConnectionError{Message: "Cannot reach the server"}})
	m.Update(syncResultMsg{result: models.NewSyncPartial(2, 1, []string{"Solaris: invalid book"})})
	m.Update(booksMsg{books: []models.Book{{LocalID: 1, Title: "Dune", Author: "Herbert"}}})

	view := m.View()
	assert.Contains(t, view, "reader")
	assert.Contains(t, view, "Cannot reach the server")
	assert.Contains(t, view, "Частично: 2 успешно, 1 с ошибкой")
	assert.Contains(t, view, "Solaris: invalid book")
	assert.Contains(t, view, "Dune")
	assert.Contains(t, view, "черновик")
}

// ── Book form ────────────────────────────────────────────────────────────────

func TestBookFormModel_TitleRequired(t *testing.T) {
	ctrl := gomock.NewController(t)
	mocks := newTUIMocks(ctrl)
	m := NewBookFormModel(context.Background(), mocks.books, mocks.sync, mocks.connection)

	_, cmd := m.Update(enterKey())
	assert.Nil(t, cmd)
	assert.Equal(t, "Название обязательно", m.errMsg)
}

func TestBookFormModel_SaveOffline(t *testing.T) {
	ctrl := gomock.NewController(t)
	mocks := newTUIMocks(ctrl)
	m := NewBookFormModel(context.Background(), mocks.books, mocks.sync, mocks.connection)

	m.inputs[0].SetValue("Dune")
	m.inputs[1].SetValue("Herbert")

	mocks.books.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b models.Book) (models.Book, error) {
			assert.Equal(t, models.StatusToRead, b.Status)
			b.LocalID = 7
			return b, nil
		})
	mocks.connection.EXPECT().IsOnline().Return(false)
	// офлайн книга не отправляется, SyncSingleItem не ожидается

	_, cmd := m.Update(enterKey())
	saved := findMsg[bookSavedMsg](t, collect(cmd))
	assert.False(t, saved.synced)
	assert.Equal(t, int64(7), saved.book.LocalID)

	_, cmd = m.Update(saved)
	nav := findMsg[NavigateTo](t, collect(cmd))
	assert.Equal(t, pageBooks, nav.Page)
	assert.Equal(t, saved, nav.Payload)
}

func TestBookFormModel_SaveOnlinePushes(t *testing.T) {
	ctrl := gomock.NewController(t)
	mocks := newTUIMocks(ctrl)
	m := NewBookFormModel(context.Background(), mocks.books, mocks.sync, mocks.connection)

	m.inputs[0].SetValue("Dune")

	stored := models.Book{LocalID: 3, Title: "Dune", Status: models.StatusToRead, WishlistStatus: models.WishlistNone}
	gomock.InOrder(
		mocks.books.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(stored, nil),
		mocks.connection.EXPECT().IsOnline().Return(true),
		mocks.sync.EXPECT().SyncSingleItem(gomock.Any(), stored).Return(true),
	)

	_, cmd := m.Update(enterKey())
	saved := findMsg[bookSavedMsg](t, collect(cmd))
	assert.True(t, saved.synced)
}

func TestBookFormModel_StoreFailureStaysOnForm(t *testing.T) {
	ctrl := gomock.NewController(t)
	mocks := newTUIMocks(ctrl)
	m := NewBookFormModel(context.Background(), mocks.books, mocks.sync, mocks.connection)

	m.inputs[0].SetValue("Dune")
	mocks.books.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(models.Book{}, errors.New("disk full"))

	_, cmd := m.Update(enterKey())
	saved := findMsg[bookSavedMsg](t, collect(cmd))

	_, cmd = m.Update(saved)
	assert.Nil(t, cmd)
	assert.Equal(t, "disk full", m.errMsg)
	assert.Equal(t, "Dune", m.inputs[0].Value())
}

// ── Root ─────────────────────────────────────────────────────────────────────

func newTestRoot(t *testing.T, ctrl *gomock.Controller) (RootModel, tuiMocks) {
	t.Helper()
	mocks := newTUIMocks(ctrl)

	mocks.auth.EXPECT().Subscribe(gomock.Any()).Return(make(chan models.AuthState))
	mocks.connection.EXPECT().Subscribe(gomock.Any()).Return(make(chan models.ConnectionState))
	mocks.sync.EXPECT().Subscribe(gomock.Any()).Return(make(chan models.SyncResult))
	mocks.books.EXPECT().Watch(gomock.Any()).Return(make(chan []models.Book))

	root := NewRootModel(context.Background(), mocks.services(), mocks.books, models.NewAppBuildInfo("1.0.0", "2026-10-18", "abc123"))
	return root, mocks
}

func TestRootModel_AuthStateDrivesNavigation(t *testing.T) {
	ctrl := gomock.NewController(t)
	root, _ := newTestRoot(t, ctrl)
	assert.Equal(t, pageMenu, root.current)

	updated, _ := root.Update(authStateMsg{state: models.Authenticated{User: models.User{ID: 1, Username: "reader"}}})
	root = updated.(RootModel)
	assert.Equal(t, pageBooks, root.current)

	updated, _ = root.Update(authStateMsg{state: models.NotAuthenticated{}})
	root = updated.(RootModel)
	assert.Equal(t, pageMenu, root.current)
}

func TestRootModel_AuthErrorStaysOnLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	root, _ := newTestRoot(t, ctrl)

	updated, _ := root.Update(NavigateTo{Page: pageLogin})
	root = updated.(RootModel)

	updated, _ = root.Update(authStateMsg{state: models.AuthError{Message: "Invalid credentials"}})
	root = updated.(RootModel)
	assert.Equal(t, pageLogin, root.current)
}

func TestRootModel_BuildInfoToggle(t *testing.T) {
	ctrl := gomock.NewController(t)
	root, _ := newTestRoot(t, ctrl)

	updated, _ := root.Update(runeKey('v'))
	root = updated.(RootModel)
	assert.True(t, root.showBuildInfo)
	assert.Contains(t, root.View(), "1.0.0")

	updated, _ = root.Update(tea.KeyMsg{Type: tea.KeyEsc})
	root = updated.(RootModel)
	assert.False(t, root.showBuildInfo)
}

func TestRenderBuildInfoWindow(t *testing.T) {
	view := renderBuildInfoWindow(models.NewAppBuildInfo("1.2.3", "", "deadbeef"))

	assert.Contains(t, view, "BookKeeper")
	assert.Contains(t, view, "1.2.3")
	assert.Contains(t, view, "deadbeef")
	assert.Contains(t, view, "N/A", "пустая дата сборки показывается как N/A")
}

func TestRootModel_CtrlCQuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	root, _ := newTestRoot(t, ctrl)

	updated, cmd := root.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	root = updated.(RootModel)
	assert.True(t, root.quitByUser)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestRootModel_UnknownPageIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	root, _ := newTestRoot(t, ctrl)

	updated, cmd := root.Update(NavigateTo{Page: "nowhere"})
	assert.Nil(t, cmd)
	assert.Equal(t, pageMenu, updated.(RootModel).current)
}
