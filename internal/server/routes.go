package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/horizonbank/horizon/internal/middleware"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	rateLimiter := middleware.RateLimiter()

	// Public routes.
	s.E.GET("/sign-in", s.authHandler.SignInGet)
	s.E.POST("/sign-in", s.authHandler.SignInPost, rateLimiter)

	s.E.GET("/sign-up", s.authHandler.SignUpGet)
	s.E.POST("/sign-up", s.authHandler.SignUpPost, rateLimiter)

	s.E.GET("/logout", s.authHandler.Logout)
	s.E.POST("/logout", s.authHandler.Logout)

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	// Everything else needs a verified session.
	protected := s.E.Group("", middleware.RequireSession(s.sessions))
	protected.GET("/", s.homeHandler.HomeGet)
	protected.GET("/my-banks", s.banksHandler.MyBanksGet)
	protected.GET("/transaction-history", s.transactionsHandler.HistoryGet)
	protected.GET("/transaction-history/export", s.transactionsHandler.ExportCSV)
	protected.GET("/payment-transfer", s.transferHandler.TransferGet)
	protected.POST("/payment-transfer", s.transferHandler.TransferPost)
	protected.POST("/plaid/exchange", s.plaidHandler.Exchange)
	protected.GET("/partials/total-balance", s.homeHandler.TotalBalancePartial)
	protected.GET("/ws/home", s.homeHandler.HomeWS)
}
