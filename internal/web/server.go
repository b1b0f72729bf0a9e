package web

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"restaurant/internal/config"
	"restaurant/internal/domain"
	"restaurant/internal/models"
	"restaurant/internal/session"

	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// Server wires the HTTP surface: routing, sessions, CSRF and the
// domain services behind each page.
type Server struct {
	cfg       *config.Config
	logger    *zerolog.Logger
	sessions  *session.Manager
	templates *TemplateCache

	menu     domain.MenuService
	cart     domain.CartService
	bookings domain.BookingService
	orders   domain.OrderService
	auth     domain.AuthService

	limiters sync.Map // map[string]*rate.Limiter, keyed by client IP
	server   *http.Server
}

func NewServer(
	cfg *config.Config,
	sessions *session.Manager,
	templates *TemplateCache,
	menu domain.MenuService,
	cart domain.CartService,
	bookings domain.BookingService,
	orders domain.OrderService,
	auth domain.AuthService,
	logger *zerolog.Logger,
) *Server {
	s := &Server{
		cfg:       cfg,
		logger:    logger,
		sessions:  sessions,
		templates: templates,
		menu:      menu,
		cart:      cart,
		bookings:  bookings,
		orders:    orders,
		auth:      auth,
	}

	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
	}

	return s
}

// Routes builds the router without the outer middleware stack. Tests
// exercise this directly to avoid the CSRF cookie dance.
func (s *Server) Routes() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	r.HandleFunc("/menu", s.handleMenu).Methods(http.MethodGet)
	r.HandleFunc("/add_to_cart/{id:[0-9]+}", s.handleAddToCart).Methods(http.MethodGet)
	r.HandleFunc("/remove_from_cart/{id:[0-9]+}", s.handleRemoveFromCart).Methods(http.MethodGet)
	r.HandleFunc("/cart", s.handleCart).Methods(http.MethodGet)
	r.HandleFunc("/place_order", s.rateLimited(s.handlePlaceOrder)).Methods(http.MethodPost)

	r.HandleFunc("/book", s.handleBookForm).Methods(http.MethodGet)
	r.HandleFunc("/book", s.rateLimited(s.handleBookSubmit)).Methods(http.MethodPost)

	r.HandleFunc("/register", s.handleRegisterForm).Methods(http.MethodGet)
	r.HandleFunc("/register", s.rateLimited(s.handleRegisterSubmit)).Methods(http.MethodPost)
	r.HandleFunc("/login", s.handleLoginForm).Methods(http.MethodGet)
	r.HandleFunc("/login", s.rateLimited(s.handleLoginSubmit)).Methods(http.MethodPost)
	r.HandleFunc("/profile", s.handleProfileForm).Methods(http.MethodGet)
	r.HandleFunc("/profile", s.handleProfileSubmit).Methods(http.MethodPost)
	r.HandleFunc("/logout", s.handleLogout).Methods(http.MethodGet)

	r.HandleFunc("/add_menu_item", s.handleAddMenuItemForm).Methods(http.MethodGet)
	r.HandleFunc("/add_menu_item", s.handleAddMenuItemSubmit).Methods(http.MethodPost)
	r.HandleFunc("/admin/export_bookings", s.handleExportBookings).Methods(http.MethodGet)

	fileServer := http.FileServer(http.Dir(s.cfg.HTTP.StaticDir))
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static", fileServer))

	r.NotFoundHandler = http.HandlerFunc(s.handleNotFound)

	return r
}

// Handler wraps the routes with logging, metrics and CSRF protection.
func (s *Server) Handler() http.Handler {
	protect := csrf.Protect(
		[]byte(s.cfg.Security.CSRFKey),
		csrf.Secure(s.cfg.Security.CookieSecure),
		csrf.Path("/"),
	)
	return s.loggingMiddleware(protect(s.Routes()))
}

func (s *Server) Start() error {
	s.logger.Info().Str("addr", s.server.Addr).Msg("HTTP server listening")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// render executes the template, injecting flashes, the session and the
// CSRF field. The session is saved first so popped flashes stay popped.
func (s *Server) render(w http.ResponseWriter, r *http.Request, sess *models.Session, name string, data map[string]interface{}) {
	tmpl := s.templates.Get(name)
	if tmpl == nil {
		s.logger.Error().Str("template", name).Msg("Template not found")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if data == nil {
		data = map[string]interface{}{}
	}
	data["Flashes"] = sess.PopFlashes()
	data["Session"] = sess
	data["CsrfField"] = csrf.TemplateField(r)

	if err := s.sessions.Save(r.Context(), w, sess); err != nil {
		s.logger.Error().Err(err).Msg("Failed to save session")
	}

	if err := tmpl.Execute(w, data); err != nil {
		s.logger.Error().Err(err).Str("template", name).Msg("Failed to execute template")
	}
}

// redirect saves the session (flashes survive the hop) and issues a
// 303 redirect.
func (s *Server) redirect(w http.ResponseWriter, r *http.Request, sess *models.Session, url string) {
	if err := s.sessions.Save(r.Context(), w, sess); err != nil {
		s.logger.Error().Err(err).Msg("Failed to save session")
	}
	http.Redirect(w, r, url, http.StatusSeeOther)
}
