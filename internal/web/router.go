package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/mihara/courseflow/internal/services/auth"
	"github.com/mihara/courseflow/internal/services/profile"
	"github.com/mihara/courseflow/internal/services/recommend"
	"github.com/mihara/courseflow/internal/web/handler"
	"github.com/mihara/courseflow/internal/web/middleware"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger           *slog.Logger
	AuthService      *auth.Service
	ProfileService   *profile.Service
	RecommendService *recommend.Service
	SessionSecret    []byte
	SessionTTL       time.Duration
	StaticDir        string // Path to static files directory
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	sessionTTL := cfg.SessionTTL
	if sessionTTL == 0 {
		sessionTTL = auth.DefaultConfig().SessionTTL
	}

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	flashMiddleware := middleware.Flash()
	authMiddleware := middleware.Auth(cfg.AuthService, cfg.SessionSecret)
	optionalAuthMiddleware := middleware.OptionalAuth(cfg.AuthService, cfg.SessionSecret)

	// Apply global middleware to all routes
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	// Create handlers
	homeHandler := handler.NewHomeHandler()
	recommendHandler := handler.NewRecommendHandler(cfg.RecommendService)
	courseHandler := handler.NewCourseHandler()
	registrationHandler := handler.NewRegistrationHandler(cfg.AuthService)
	authHandler := handler.NewAuthHandler(cfg.AuthService, cfg.SessionSecret, sessionTTL)
	profileHandler := handler.NewProfileHandler(cfg.ProfileService)
	cancelHandler := handler.NewCancelHandler(cfg.ProfileService)

	// Static files
	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.PathPrefix("/static/").Handler(staticHandler)
	}

	// Open routes (optional auth for the nav)
	public := r.NewRoute().Subrouter()
	public.Use(flashMiddleware)
	public.Use(optionalAuthMiddleware)
	public.HandleFunc("/", homeHandler.Home).Methods(http.MethodGet)
	public.HandleFunc("/new", homeHandler.New).Methods(http.MethodGet)
	public.HandleFunc("/course_recommendation", recommendHandler.Quiz).Methods(http.MethodGet)
	public.HandleFunc("/recommend_course", recommendHandler.Recommend).Methods(http.MethodPost)
	public.HandleFunc("/choose_course", courseHandler.Choose).Methods(http.MethodGet)
	public.HandleFunc("/confirm_course", courseHandler.Confirm).Methods(http.MethodGet)
	public.HandleFunc("/register_course", courseHandler.Register).Methods(http.MethodGet)
	public.HandleFunc("/user_registration", registrationHandler.Form).Methods(http.MethodGet, http.MethodPost)
	public.HandleFunc("/submit_registration", registrationHandler.Submit).Methods(http.MethodPost)
	public.HandleFunc("/thank_you_registration", registrationHandler.ThankYou).Methods(http.MethodGet)
	public.HandleFunc("/login", authHandler.LoginPage).Methods(http.MethodGet)
	public.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)
	// Logout clears the session unconditionally, so it needs no auth
	public.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodGet)

	// Protected routes (require a valid session)
	protected := r.NewRoute().Subrouter()
	protected.Use(flashMiddleware)
	protected.Use(authMiddleware)
	protected.HandleFunc("/menu", profileHandler.Menu).Methods(http.MethodGet)
	protected.HandleFunc("/edit_data", profileHandler.EditForm).Methods(http.MethodGet)
	protected.HandleFunc("/edit_data", profileHandler.EditSubmit).Methods(http.MethodPost)
	protected.HandleFunc("/thank_you_edit", profileHandler.ThankYouEdit).Methods(http.MethodGet)
	protected.HandleFunc("/reselect_course", profileHandler.Reselect).Methods(http.MethodGet)
	protected.HandleFunc("/confirm_course2", profileHandler.Confirm2).Methods(http.MethodGet)
	protected.HandleFunc("/register_course2", profileHandler.Register2).Methods(http.MethodPost)
	protected.HandleFunc("/cancel_course", cancelHandler.Cancel).Methods(http.MethodGet)
	protected.HandleFunc("/confirm_cancel", cancelHandler.Confirm).Methods(http.MethodGet)
	protected.HandleFunc("/handle_confirm_cancel", cancelHandler.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/thank_you_cancel", cancelHandler.ThankYou).Methods(http.MethodGet)

	return r
}
