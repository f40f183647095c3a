package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-book-keeper/internal/logger"
	"github.com/MKhiriev/go-book-keeper/internal/service"
	"github.com/MKhiriev/go-book-keeper/internal/store"
	"github.com/MKhiriev/go-book-keeper/internal/tui"
	"github.com/MKhiriev/go-book-keeper/internal/workers"
	"github.com/MKhiriev/go-book-keeper/models"
)

const usage = `usage: book-keeper [flags] [command]

commands:
  login <username|email> <password>
  register <username> <email> <password>
  logout
  pull | push | sync
  status

without a command the interactive UI is started`

type App struct {
	services *service.ClientServices
	workers  *workers.Workers
	books    store.LocalBookRepository
	ui       UI
	args     []string
	out      io.Writer
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, books store.LocalBookRepository, ui UI, args []string, logger *logger.Logger) *App {
	return &App{
		services: services,
		workers:  services.Workers(),
		books:    books,
		ui:       ui,
		args:     args,
		out:      os.Stdout,
		logger:   logger.WithComponent("app"),
	}
}

// Run starts the workers, runs the command from args (or the UI) and stops
// the workers on the way out. SIGINT, SIGTERM and SIGQUIT cancel ctx.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	a.workers.Start(ctx)
	defer a.workers.Stop()

	if len(a.args) == 0 {
		err := a.ui.Run(ctx)
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return err
	}

	return a.runCommand(ctx, a.args[0], a.args[1:])
}

func (a *App) runCommand(ctx context.Context, name string, args []string) error {
	a.logger.Debug().Str("func", "App.runCommand").Str("command", name).Msg("running command")

	switch name {
	case "login":
		if len(args) != 2 {
			return a.usageError(name)
		}
		if err := a.services.Auth.Login(ctx, args[0], args[1]); err != nil {
			return err
		}
		fmt.Fprintln(a.out, a.services.Auth.State())
		return nil

	case "register":
		if len(args) != 3 {
			return a.usageError(name)
		}
		if err := a.services.Auth.Register(ctx, args[0], args[1], args[2]); err != nil {
			return err
		}
		fmt.Fprintln(a.out, a.services.Auth.State())
		return nil

	case "logout":
		a.services.Auth.Logout(ctx)
		fmt.Fprintln(a.out, a.services.Auth.State())
		return nil

	case "pull":
		return a.printResult(a.services.Sync.Pull(ctx))
	case "push":
		return a.printResult(a.services.Sync.Push(ctx))
	case "sync":
		return a.printResult(a.services.Sync.FullSync(ctx))

	case "status":
		return a.status(ctx)

	case "help", "-h", "--help":
		fmt.Fprintln(a.out, usage)
		return nil
	}

	fmt.Fprintln(a.out, usage)
	return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
}

func (a *App) status(ctx context.Context) error {
	fmt.Fprintf(a.out, "auth: %s\n", a.services.Auth.State())

	if a.services.Auth.IsAuthenticated() {
		if err := a.services.Connection.ProbeNow(ctx); err != nil {
			a.logger.Err(err).Str("func", "App.status").Msg("probe failed")
		}
	}
	fmt.Fprintf(a.out, "connection: %s\n", a.services.Connection.State())

	count, err := a.books.Count(ctx)
	if err != nil {
		return fmt.Errorf("count books: %w", err)
	}
	fmt.Fprintf(a.out, "books: %d\n", count)

	if last := a.services.Sync.LastResult(); last != nil {
		fmt.Fprintf(a.out, "last sync: %s\n", last)
	}
	return nil
}

func (a *App) printResult(result models.SyncResult) error {
	fmt.Fprintln(a.out, result)

	switch r := result.(type) {
	case models.SyncPartial:
		for _, e := range r.Errors {
			fmt.Fprintf(a.out, "  %s\n", e)
		}
	case models.SyncError:
		return fmt.Errorf("%w: %s", ErrSyncFailed, r.Message)
	}
	return nil
}

func (a *App) usageError(name string) error {
	fmt.Fprintln(a.out, usage)
	return fmt.Errorf("%w for %s", ErrUsage, name)
}
