// Package httpapi serves the catalog as HTML pages and a JSON API.
//
// Every visitor gets a profile cookie; their read and highlight marks are
// stored under that profile's namespace in the shared key-value backend.
package httpapi

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"ArticlesExplorer/internal/interaction"
	"ArticlesExplorer/internal/ports"
	"ArticlesExplorer/internal/search"
	"ArticlesExplorer/internal/usecase"
)

//go:embed templates/*.html
var templateFS embed.FS

const shutdownTimeout = 5 * time.Second

// Deps wires the server's collaborators.
type Deps struct {
	Catalog    ports.ArticleCatalog
	Views      *usecase.Views
	State      ports.KeyValueStore
	Search     search.Options
	CookieName string
	// Namespace prefixes every profile's keys, e.g. per deployment.
	Namespace string
	Logger    *slog.Logger
}

// Server is the HTTP surface.
type Server struct {
	catalog    ports.ArticleCatalog
	views      *usecase.Views
	kv         ports.KeyValueStore
	searchOpts search.Options
	cookieName string
	namespace  string
	logger     *slog.Logger
	router     *gin.Engine
}

// New builds the server and its routes.
func New(deps Deps) (*Server, error) {
	if deps.Catalog == nil || deps.Views == nil || deps.State == nil {
		return nil, fmt.Errorf("httpapi: catalog, views and state are required")
	}

	tmpl, err := template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		catalog:    deps.Catalog,
		views:      deps.Views,
		kv:         deps.State,
		searchOpts: deps.Search.WithDefaults(),
		cookieName: deps.CookieName,
		namespace:  deps.Namespace,
		logger:     deps.Logger,
	}
	if s.cookieName == "" {
		s.cookieName = "articles_profile"
	}

	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger(), s.profile())
	router.SetHTMLTemplate(tmpl)
	s.routes(router)
	s.router = router

	return s, nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes(r *gin.Engine) {
	r.GET("/", s.index)
	r.GET("/search", s.searchPage)
	r.GET("/topic/:slug", s.topicPage)
	r.GET("/articles/:slug", s.articleListPage)
	r.GET("/article/:id", s.articlePage)
	r.POST("/article/:id/read", s.toggleReadForm)
	r.POST("/article/:id/highlight", s.toggleHighlightForm)

	api := r.Group("/api")
	api.GET("/search", s.apiSearch)
	api.GET("/articles", s.apiArticles)
	api.GET("/articles/:id", s.apiArticle)
	api.GET("/topics", s.apiTopics)
	api.GET("/topics/:slug/articles", s.apiTopicArticles)
	api.GET("/state", s.apiState)
	api.DELETE("/state", s.apiClearState)
	api.POST("/state/read/:id", s.apiToggleRead)
	api.PUT("/state/read/:id", s.apiMarkRead)
	api.POST("/state/highlight/:id", s.apiToggleHighlight)
}

// Run listens on addr until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.info("http server listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	s.info("http server stopped")
	return nil
}

// stateFor builds the interaction store of the requesting profile.
func (s *Server) stateFor(c *gin.Context) *interaction.Store {
	ns := "profile:" + profileID(c)
	if s.namespace != "" {
		ns = s.namespace + ":" + ns
	}
	return interaction.NewStore(s.kv, interaction.WithNamespace(ns), interaction.WithLogger(s.logger))
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.debug("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}

var templateFuncs = template.FuncMap{
	"join": strings.Join,
	"tag": func(keyword string) string {
		return "#" + strings.Join(strings.Fields(keyword), "")
	},
}

func (s *Server) debug(msg string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}

func (s *Server) info(msg string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Info(msg, args...)
	}
}

func (s *Server) logError(msg string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Error(msg, args...)
	}
}
