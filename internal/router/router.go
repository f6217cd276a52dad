// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups, mapping
// specific paths to their corresponding handlers.
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/abidbilal/deskservice/internal/handler"
	"github.com/abidbilal/deskservice/internal/middleware"
	"github.com/abidbilal/deskservice/internal/server"
)

// New builds the Echo instance: global middleware in order, the error
// funnel, system routes, and the versioned API groups.
func New(s *server.Server, h *handler.Handlers, m *middleware.Middlewares) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = m.Global.GlobalErrorHandler

	// Order matters: the request ID must exist before tracing and the
	// context enhancer read it, and the enhancer must run before any
	// handler that logs.
	e.Use(m.Global.Recover())
	e.Use(middleware.RequestID())
	e.Use(m.Tracing.NewRelicMiddleware())
	e.Use(m.Tracing.EnhanceTracing())
	e.Use(m.ContextEnhancer.EnhanceContext())
	e.Use(m.Global.CORS())
	e.Use(m.Global.Secure())
	e.Use(m.Global.RequestLogger())

	registerSystemRoutes(e, h)
	registerAPIRoutes(e, h, m)

	return e
}

// registerAPIRoutes maps the versioned business endpoints. Everything
// except registration and login requires a bearer token.
func registerAPIRoutes(e *echo.Echo, h *handler.Handlers, m *middleware.Middlewares) {
	v1 := e.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/register", handler.Handle(h.Auth.Handler, h.Auth.Register, http.StatusCreated))
	auth.POST("/login", handler.Handle(h.Auth.Handler, h.Auth.Login, http.StatusOK))

	customers := v1.Group("/customers", m.Auth.RequireAuth)
	customers.POST("", handler.Handle(h.Customers.Handler, h.Customers.Create, http.StatusCreated))
	customers.GET("", handler.Handle(h.Customers.Handler, h.Customers.List, http.StatusOK))
	customers.PUT("/:id", handler.HandleNoContent(h.Customers.Handler, h.Customers.Update, http.StatusNoContent))
	customers.DELETE("/:id", handler.HandleNoContent(h.Customers.Handler, h.Customers.Delete, http.StatusNoContent))

	technicians := v1.Group("/technicians", m.Auth.RequireAuth)
	technicians.POST("", handler.Handle(h.Technicians.Handler, h.Technicians.Create, http.StatusCreated))
	technicians.GET("", handler.Handle(h.Technicians.Handler, h.Technicians.List, http.StatusOK))
	technicians.PATCH("/:id/active", handler.HandleNoContent(h.Technicians.Handler, h.Technicians.SetActive, http.StatusNoContent))

	orders := v1.Group("/orders", m.Auth.RequireAuth)
	orders.POST("", handler.Handle(h.Orders.Handler, h.Orders.Create, http.StatusCreated))
	orders.GET("", handler.Handle(h.Orders.Handler, h.Orders.List, http.StatusOK))
	orders.PATCH("/:id/technician", handler.HandleNoContent(h.Orders.Handler, h.Orders.AssignTechnician, http.StatusNoContent))
	orders.PATCH("/:id/status", handler.HandleNoContent(h.Orders.Handler, h.Orders.UpdateStatus, http.StatusNoContent))
	orders.DELETE("/:id", handler.HandleNoContent(h.Orders.Handler, h.Orders.Delete, http.StatusNoContent))
}
