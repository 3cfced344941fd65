package server

import (
	"context"
	"log/slog"
	"os"

	"github.com/gorilla/sessions"
	echosession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/afero"

	"github.com/horizonbank/horizon/internal/actions"
	"github.com/horizonbank/horizon/internal/api"
	"github.com/horizonbank/horizon/internal/config"
	"github.com/horizonbank/horizon/internal/events"
	"github.com/horizonbank/horizon/internal/export"
	"github.com/horizonbank/horizon/internal/handlers"
	"github.com/horizonbank/horizon/internal/hub"
	"github.com/horizonbank/horizon/internal/logging"
	"github.com/horizonbank/horizon/internal/middleware"
	"github.com/horizonbank/horizon/internal/pubsub"
	"github.com/horizonbank/horizon/internal/rendering"
	appsession "github.com/horizonbank/horizon/internal/session"
	"github.com/horizonbank/horizon/web"
	"github.com/horizonbank/horizon/web/src/templates/partials"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      config.Provider
	Bus      *pubsub.WatermillBridge
	sessions *appsession.Manager
	actions  *actions.Service
	renderer *rendering.GomponentsRenderer
	htmlHub  *hub.Hub

	authHandler         *handlers.AuthHandler
	homeHandler         *handlers.HomeHandler
	banksHandler        *handlers.BanksHandler
	transactionsHandler *handlers.TransactionsHandler
	transferHandler     *handlers.TransferHandler
	plaidHandler        *handlers.PlaidHandler

	// cancelSubscriptions stops the event bus consumers on shutdown.
	cancelSubscriptions context.CancelFunc
}

// New creates a new Server instance with all dependencies wired.
func New() *Server {
	// Config loads .env first so the logger sees LOG_FORMAT.
	cfg := config.New()
	logging.New()

	client := api.NewClient(cfg)
	svc := actions.New(client)
	sessionManager := appsession.NewManager(svc)

	bus := pubsub.NewWatermillBridge()
	renderer := rendering.New()

	// One hub serves every open dashboard; fragments pushed to it make
	// stale pages re-fetch their balance box.
	htmlHub := hub.NewHub()
	go htmlHub.Run()

	subCtx, cancel := context.WithCancel(context.Background())
	if err := events.RegisterAuditLog(subCtx, bus); err != nil {
		slog.Error("Failed to register audit log subscriber", "error", err)
		os.Exit(1)
	}
	if err := registerHubRefresh(subCtx, bus, htmlHub, renderer); err != nil {
		slog.Error("Failed to register hub refresh subscriber", "error", err)
		os.Exit(1)
	}

	exporter := export.NewExporter(afero.NewOsFs(), os.TempDir())

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(middleware.Logger)

	store := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400,
		HttpOnly: true,
	}
	e.Use(echosession.Middleware(store))

	e.Validator = handlers.NewValidator()
	e.Renderer = renderer

	e.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	return &Server{
		E:                   e,
		Cfg:                 cfg,
		Bus:                 bus,
		sessions:            sessionManager,
		actions:             svc,
		renderer:            renderer,
		htmlHub:             htmlHub,
		authHandler:         handlers.NewAuthHandler(sessionManager),
		homeHandler:         handlers.NewHomeHandler(svc, sessionManager, cfg, htmlHub),
		banksHandler:        handlers.NewBanksHandler(svc, sessionManager),
		transactionsHandler: handlers.NewTransactionsHandler(svc, sessionManager, exporter),
		transferHandler:     handlers.NewTransferHandler(svc, sessionManager, bus),
		plaidHandler:        handlers.NewPlaidHandler(svc, bus),
		cancelSubscriptions: cancel,
	}
}

// Sessions is a getter for the server's session manager, useful for testing.
func (s *Server) Sessions() *appsession.Manager {
	return s.sessions
}

// registerHubRefresh subscribes the dashboard hub to bank linking events.
// Every open dashboard gets an out-of-band fragment that triggers a
// re-fetch of the balance box, so totals never stay stale after a link.
func registerHubRefresh(ctx context.Context, sub pubsub.Subscriber, h *hub.Hub, renderer rendering.Renderer) error {
	return sub.Subscribe(ctx, events.TopicBankLinked, func(ctx context.Context, msg pubsub.Message) error {
		fragment, err := renderer.RenderComponent(partials.TotalBalanceRefresh())
		if err != nil {
			return err
		}
		h.Broadcast <- fragment
		return nil
	})
}
