package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	logout   key.Binding
	newItem  key.Binding
	sync     key.Binding
	pull     key.Binding
	push     key.Binding
	retry    key.Binding
	syncItem key.Binding
	version  key.Binding
	help     key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "вверх")),
	down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "вниз")),
	enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "выбрать")),
	esc:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "назад")),
	tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "след. поле")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "пред. поле")),
	quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "выход")),
	logout:   key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "выйти из аккаунта")),
	newItem:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "новая книга")),
	sync:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "полная синхронизация")),
	pull:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "загрузить с сервера")),
	push:     key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "отправить на сервер")),
	retry:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "проверить связь")),
	syncItem: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "отправить книгу")),
	version:  key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "версия")),
	help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "подсказки")),
}

// booksKeyMap is the help.KeyMap of the books page.
type booksKeyMap struct{}

func (booksKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{keys.sync, keys.newItem, keys.retry, keys.help, keys.quit}
}

func (booksKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{keys.up, keys.down, keys.syncItem, keys.newItem},
		{keys.sync, keys.pull, keys.push, keys.retry},
		{keys.logout, keys.version, keys.help, keys.quit},
	}
}
