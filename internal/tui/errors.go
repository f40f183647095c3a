package tui

import "errors"

var ErrUserQuit = errors.New("вышел из программы")
