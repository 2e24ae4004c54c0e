package server

import (
	"net/http"

	"github.com/campusexchange/backend/internal/handler"
	"github.com/campusexchange/backend/internal/repository"
	"github.com/campusexchange/backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

type Server struct {
	e *echo.Echo
}

// New wires repositories, services and handlers around an already connected
// database handle. The handle is passed down explicitly; nothing here holds
// package-level state.
func New(db *gorm.DB) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{"Content-Type"},
	}))

	userRepo := repository.NewUserRepository(db)
	listingRepo := repository.NewListingRepository(db)
	txnRepo := repository.NewTransactionRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)

	userHandler := handler.NewUserHandler(service.NewUserService(userRepo))
	listingHandler := handler.NewListingHandler(service.NewListingService(listingRepo, userRepo))
	purchaseHandler := handler.NewPurchaseHandler(service.NewPurchaseService(txnRepo))
	feedbackHandler := handler.NewFeedbackHandler(service.NewFeedbackService(feedbackRepo, userRepo))

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Campus Exchange API running")
	})
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"ok": "true"})
	})

	e.POST("/add-user", userHandler.Register)
	e.POST("/login", userHandler.Login)
	e.GET("/listings", listingHandler.List)
	e.POST("/add-listing", listingHandler.Create)
	e.POST("/purchase", purchaseHandler.Purchase)
	e.POST("/feedback", feedbackHandler.Create)
	e.GET("/feedback/seller/:id", feedbackHandler.ListForSeller)
	e.GET("/rating/:id", feedbackHandler.Rating)

	return &Server{e: e}
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}
