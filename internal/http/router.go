package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/hbnb-web/internal/http/handlers"
	"github.com/pribylovaa/hbnb-web/internal/http/middleware"
	"github.com/pribylovaa/hbnb-web/internal/service"
	"github.com/pribylovaa/hbnb-web/internal/session"
	"github.com/pribylovaa/hbnb-web/internal/view"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	Sessions *session.Manager
	View     view.Renderer
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, opts Options) http.Handler {
	if opts.Sessions == nil {
		opts.Sessions = session.NewManager("", 0)
	}

	if opts.View == nil {
		opts.View = view.MustNew()
	}

	root := chi.NewRouter()

	// Статика — без сессии и логирования каждого файла, но с метриками.
	static := http.StripPrefix("/static/", http.FileServerFS(view.Static()))
	root.Handle("/static/*", middleware.Chain(static, middleware.Recover(), middleware.Metrics()))

	root.Group(func(r chi.Router) {
		// Middleware (внешний -> внутренний).
		r.Use(
			middleware.Recover(),            // безопасно ловим паники
			middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
			middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
			middleware.Metrics(),
			middleware.Session(opts.Sessions), // cookie -> session.State в контексте
		)
		if opts.Timeout > 0 {
			r.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
		}

		registerRoutes(r, handlers.New(svc, opts.Sessions, opts.View))
	})

	return root
}

// registerRoutes — единая точка регистрации страниц.
// Алиасы *.html сохраняют старые ссылки статического клиента.
func registerRoutes(r chi.Router, h *handlers.Handlers) {
	// places
	r.Get("/", h.Index)
	r.Get("/index.html", h.Index)
	r.Get("/place", h.Place)
	r.Get("/place.html", h.Place)

	// reviews
	r.Get("/add_review", h.AddReviewPage)
	r.Get("/add_review.html", h.AddReviewPage)
	r.Post("/add_review", h.SubmitReview)
	r.Post("/add_review.html", h.SubmitReview)
	r.Get("/fragments/add_review", h.ReviewFragment)

	// auth
	r.Get("/login", h.LoginPage)
	r.Get("/login.html", h.LoginPage)
	r.Post("/login", h.Login)
	r.Get("/logout", h.Logout)
	r.Post("/logout", h.Logout)
}
