package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"plantstore-admin/internal/apierr"
	"plantstore-admin/internal/handler"
	adminmw "plantstore-admin/internal/middleware"
	"plantstore-admin/internal/service"
	"plantstore-admin/internal/session"
	"plantstore-admin/internal/toast"
)

type Server struct {
	echo *echo.Echo

	authHandler      *handler.AuthHandler
	orderHandler     *handler.OrderHandler
	productHandler   *handler.ProductHandler
	attributeHandler *handler.AttributeHandler
	applicantHandler *handler.ApplicantHandler
	bannerHandler    *handler.BannerHandler
	toastHandler     *handler.ToastHandler
}

type Deps struct {
	Session    session.Store
	Toasts     *toast.Notifier
	Orders     *service.OrderList
	Products   *service.ProductList
	Attributes []*service.AttributeList
	Applicants []*service.ApplicantList
	Banners    *service.BannerBoard
}

func NewServer(deps Deps) *Server {
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.HTTPErrorHandler = errorHandler(deps.Session, e)

	s := &Server{
		echo:             e,
		authHandler:      handler.NewAuthHandler(deps.Session),
		orderHandler:     handler.NewOrderHandler(deps.Orders),
		productHandler:   handler.NewProductHandler(deps.Products),
		attributeHandler: handler.NewAttributeHandler(deps.Attributes...),
		applicantHandler: handler.NewApplicantHandler(deps.Applicants...),
		bannerHandler:    handler.NewBannerHandler(deps.Banners),
		toastHandler:     handler.NewToastHandler(deps.Toasts),
	}

	s.setupRoutes(deps.Session)
	return s
}

func (s *Server) setupRoutes(sess session.Store) {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	api.POST("/login", s.authHandler.Login)

	// everything below requires an operator session
	guarded := api.Group("", adminmw.RequireSession(sess))

	guarded.POST("/logout", s.authHandler.Logout)
	guarded.GET("/session", s.authHandler.Status)

	guarded.GET("/toasts", s.toastHandler.List)
	guarded.DELETE("/toasts/:id", s.toastHandler.Dismiss)

	// -------- orders --------
	orders := guarded.Group("/orders")
	orders.GET("", s.orderHandler.List)
	orders.PUT("/filters", s.orderHandler.Filters)
	orders.PUT("/:id/status", s.orderHandler.UpdateStatus)
	orders.DELETE("/:id", s.orderHandler.Delete)

	// -------- products --------
	products := guarded.Group("/products")
	products.GET("", s.productHandler.List)
	products.POST("", s.productHandler.Create)
	products.PUT("/:id", s.productHandler.Update)
	products.DELETE("/:id", s.productHandler.Delete)

	// -------- attributes (category, colortype, producttype, planttype) --------
	attributes := guarded.Group("/attributes/:kind")
	attributes.GET("", s.attributeHandler.List)
	attributes.POST("", s.attributeHandler.Create)
	attributes.DELETE("/:id", s.attributeHandler.Delete)

	// -------- retailers / suppliers / applications --------
	applicants := guarded.Group("/applicants/:kind")
	applicants.GET("", s.applicantHandler.List)
	applicants.PUT("/:id/status", s.applicantHandler.UpdateStatus)
	applicants.DELETE("/:id", s.applicantHandler.Delete)

	// -------- banners --------
	banners := guarded.Group("/banners")
	banners.GET("", s.bannerHandler.List)
	banners.PUT("/:type", s.bannerHandler.Save)
}

// errorHandler maps backend failures onto dashboard responses. A 401 from
// the backend means the stored token is no longer valid: the session is
// cleared and the caller is pointed back at login.
func errorHandler(sess session.Store, e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if errors.Is(err, apierr.ErrUnauthorized) {
			_ = sess.Logout(c.Request().Context())
			err = echo.NewHTTPError(http.StatusUnauthorized, "session expired, login again")
		} else {
			var apiErr *apierr.APIError
			if errors.As(err, &apiErr) {
				msg := apiErr.Message
				if msg == "" {
					msg = http.StatusText(apiErr.StatusCode)
				}
				err = echo.NewHTTPError(apiErr.StatusCode, msg)
			}
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
