package router

import (
	"net/http"

	"github.com/yogi-fashion/embroidery-service/internal/api"
	"github.com/yogi-fashion/embroidery-service/internal/api/handler"
	"github.com/yogi-fashion/embroidery-service/internal/app"
	"github.com/yogi-fashion/embroidery-service/internal/middleware"
)

// Router handles HTTP routing
type Router struct {
	mux *http.ServeMux
	app *app.App
}

// New creates a new router
func New(a *app.App) *Router {
	r := &Router{
		mux: http.NewServeMux(),
		app: a,
	}

	r.setupRoutes()

	return r
}

// ServeHTTP implements the http.Handler interface
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// setupRoutes sets up the routes for the router
func (r *Router) setupRoutes() {
	svcs := r.app.Services
	auth := middleware.Auth(svcs.Auth)
	authHandler := handler.NewAuthHandler(svcs.Auth)

	// Public routes
	r.mux.Handle("/healthz", http.HandlerFunc(r.handleHealth))
	r.mux.Handle("/api/auth/register", middleware.Logger(http.HandlerFunc(authHandler.Register)))
	r.mux.Handle("/api/auth/login", middleware.Logger(http.HandlerFunc(authHandler.Login)))
	r.mux.Handle("/ws", middleware.Logger(auth(handler.NewWebSocketHandler(r.app.Hub, r.app.Config.Server.AllowedOrigins))))

	// Protected routes
	apiHandler := http.NewServeMux()
	apiHandler.Handle("/auth/password", http.HandlerFunc(authHandler.ChangePassword))
	handleCollection(apiHandler, "/clients", handler.NewClientHandler(svcs.Client))
	handleCollection(apiHandler, "/employees", handler.NewEmployeeHandler(svcs.Employee))
	handleCollection(apiHandler, "/products", handler.NewProductHandler(svcs.Product))
	handleCollection(apiHandler, "/expenses", handler.NewExpenseHandler(svcs.Expense))
	apiHandler.Handle("/dashboard", handler.NewDashboardHandler(svcs.Dashboard))

	settingsHandler := handler.NewSettingsHandler(r.app.Settings)
	apiHandler.Handle("/settings/theme", http.HandlerFunc(settingsHandler.Theme))
	apiHandler.Handle("/settings/theme/toggle", http.HandlerFunc(settingsHandler.Toggle))

	// Apply middleware to protected routes
	apiChain := middleware.Logger(
		auth(
			apiHandler,
		),
	)

	r.mux.Handle("/api/", http.StripPrefix("/api", apiChain))
}

func handleCollection(mux *http.ServeMux, prefix string, h http.Handler) {
	mux.Handle(prefix, h)
	mux.Handle(prefix+"/", h)
}

func (r *Router) handleHealth(w http.ResponseWriter, req *http.Request) {
	if err := r.app.DB.HealthCheck(req.Context()); err != nil {
		api.RespondJSON(w, http.StatusServiceUnavailable, api.APIError{Detail: "storage unavailable"})
		return
	}
	api.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
