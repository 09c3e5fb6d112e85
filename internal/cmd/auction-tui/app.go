package main

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cricsim/auction-tui/internal/auction"
	"github.com/cricsim/auction-tui/internal/config"
	"github.com/cricsim/auction-tui/internal/ui"
	"github.com/cricsim/auction-tui/internal/ui/command"
	"github.com/cricsim/auction-tui/internal/ui/pages"
	"github.com/cricsim/auction-tui/internal/xi"
	"golang.org/x/sync/errgroup"
)

const healthProbeInterval = time.Second * 30

type UI interface {
	Send(msg tea.Msg)
	Run() error
}

// App is the main application container. Very little logic is contained within
// this struct. Its mostly responsible for routing messages between systems.
type App struct {
	ui            UI
	config        config.Config
	auction       *auction.Client
	xi            *xi.Client
	deps          pages.Deps
	uiUpdates     chan any
	configUpdates chan config.Config
}

// NewApp returns a new application instance. To actually start the app you
// must call Start().
func NewApp(conf config.Config, auctionClient *auction.Client, xiClient *xi.Client, deps pages.Deps,
	configUpdates chan config.Config,
) *App {
	return &App{
		config:        conf,
		auction:       auctionClient,
		xi:            xiClient,
		deps:          deps,
		configUpdates: configUpdates,
		uiUpdates:     make(chan any),
	}
}

// Start brings up the background goroutines and runs the main event loop.
func (app *App) Start(ctx context.Context, done <-chan any) {
	// Start probing backend health.
	go app.healthProber(ctx)

	// Start sending UI updates to the UI.
	go app.uiSender(ctx)

	for {
		select {
		case conf := <-app.configUpdates:
			app.config = conf
			app.uiUpdates <- conf
		case <-ctx.Done():
			return
		case <-done:
			return
		}
	}
}

// healthProber checks both backends on a fixed interval and pushes the result
// to the status bar.
func (app *App) healthProber(ctx context.Context) {
	ticker := time.NewTicker(healthProbeInterval)
	defer ticker.Stop()

	app.probeOnce(ctx)

	for {
		select {
		case <-ticker.C:
			app.probeOnce(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (app *App) probeOnce(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, config.DefaultHTTPTimeout)
	defer cancel()

	var (
		auctionOK bool
		xiOK      bool
	)

	group, groupCtx := errgroup.WithContext(probeCtx)
	group.Go(func() error {
		auctionOK = app.auction.Healthz(groupCtx) == nil

		return nil
	})
	group.Go(func() error {
		xiOK = app.xi.Healthz(groupCtx) == nil

		return nil
	})

	if err := group.Wait(); err != nil {
		slog.Error("Health probe failed", slog.String("error", err.Error()))

		return
	}

	app.uiUpdates <- command.HealthMsg{AuctionOK: auctionOK, XIOK: xiOK}
}

// uiSender handles forwarding all events to the UI.
func (app *App) uiSender(ctx context.Context) {
	for {
		select {
		case msg := <-app.uiUpdates:
			if app.ui != nil {
				app.ui.Send(msg)
			}
		case <-ctx.Done():
			return
		}
	}
}

func (app *App) createUI(ctx context.Context, loader config.Writer) UI {
	if app.ui == nil {
		app.ui = ui.New(
			ctx,
			app.config,
			false,
			BuildVersion,
			BuildDate,
			BuildCommit,
			loader,
			config.PathCache(config.CacheDirName),
			app.deps)
	}

	return app.ui
}
