package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"maori_dictionary/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// RouterConfig はルーターの組み立てに必要な依存をまとめます
type RouterConfig struct {
	Logger      *slog.Logger
	Auth        *AuthHandler
	Category    *CategoryHandler
	Word        *WordHandler
	Sessions    middleware.IdentityResolver
	CookieName  string
	CORS        cors.Options
	HealthCheck func(ctx context.Context) error
}

// NewRouter はAPIルートを登録した chi ルーターを返します。
// 更新系ルートの権限確認はハンドラから Guard を通して行う。
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(cfg.Logger))
	r.Use(cors.New(cfg.CORS).Handler)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.SessionMiddleware(cfg.Sessions, cfg.CookieName))

		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", cfg.Auth.Signup)
			r.Post("/login", cfg.Auth.Login)
			r.Post("/logout", cfg.Auth.Logout)
			r.Get("/me", cfg.Auth.Me)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", cfg.Category.GetCategories)
			r.Post("/", cfg.Category.PostCategory)
			r.Get("/{category_id}", cfg.Category.GetCategory)
			r.Delete("/{category_id}", cfg.Category.DeleteCategory)
		})

		r.Route("/words", func(r chi.Router) {
			r.Get("/", cfg.Word.GetWords)
			r.Post("/", cfg.Word.PostWord)
			r.Get("/{word_id}", cfg.Word.GetWord)
			r.Put("/{word_id}", cfg.Word.PutWord)
			r.Delete("/{word_id}", cfg.Word.DeleteWord)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if cfg.HealthCheck != nil {
			if err := cfg.HealthCheck(r.Context()); err != nil {
				middleware.GetLogger(r.Context()).Error("Health check failed", "error", err)
				http.Error(w, "Health check failed", http.StatusInternalServerError)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
