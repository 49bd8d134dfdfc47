// Package web serves the portfolio over HTTP with gin. Pages are rendered
// server side; interactive pieces are HTMX fragments and a server-sent
// event stream for the hero typewriter.
package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/assets"
	"github.com/Zachkp/portfolio/internal/catalog"
	"github.com/Zachkp/portfolio/internal/clock"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/typewriter"
)

//go:embed templates/*.html
var templateFS embed.FS

// Options configures a Server. Zero values fall back to production
// behaviour.
type Options struct {
	ImagesDir string
	StaticDir string
	Timing    typewriter.Timing
	Scheduler clock.Scheduler
	Images    assets.Checker
	Submitter contact.Submitter
}

// Server renders the site from a catalog.
type Server struct {
	content   *catalog.Content
	store     *catalog.Store
	opts      Options
	templates *template.Template
	visitors  visitorLog
	startTime time.Time
}

// New prepares a server. It does not listen until Run.
func New(content *catalog.Content, store *catalog.Store, opts Options) (*Server, error) {
	if opts.Scheduler == nil {
		opts.Scheduler = clock.Real{}
	}
	if opts.Timing == (typewriter.Timing{}) {
		opts.Timing = typewriter.DefaultTiming
	}
	if opts.Images == nil {
		opts.Images = assets.NewProbe(opts.ImagesDir)
	}
	if opts.Submitter == nil {
		opts.Submitter = contact.Simulated{Delay: contact.DefaultDelay}
	}

	tmpl, err := template.New("").Funcs(template.FuncMap{
		"inc": func(i int) int { return i + 1 },
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	return &Server{
		content:   content,
		store:     store,
		opts:      opts,
		templates: tmpl,
		visitors:  newVisitorLog(),
		startTime: time.Now(),
	}, nil
}

// Handler builds the gin engine with every route.
func (s *Server) Handler() *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(s.templates)
	r.Use(s.visitors.middleware())

	if s.opts.ImagesDir != "" {
		r.Static("/images", s.opts.ImagesDir)
	}
	if s.opts.StaticDir != "" {
		r.Static("/static", s.opts.StaticDir)
	}

	r.GET("/", s.handleIndex)
	r.GET("/healthz", s.handleHealth)

	r.GET("/projects", s.handleProjects)
	r.GET("/projects/:id/slider", s.handleSlider)
	r.GET("/projects/:id/modal", s.handleModal)

	r.GET("/typewriter/stream", s.handleTypewriter)

	r.GET("/contact-form", s.handleContactForm)
	r.POST("/contact", s.handleContact)

	api := r.Group("/api")
	api.GET("/projects", s.handleAPIProjects)
	api.GET("/projects/:id", s.handleAPIProject)

	return r
}

// Run serves on addr until ctx is done, then shuts down gracefully.
// Open event streams end when ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		BaseContext:       func(net.Listener) context.Context { return ctx },
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("level=info event=http_listen addr=%s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.Printf("level=info event=http_shutdown addr=%s", addr)
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	counts, err := s.store.Counts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read catalog"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"uptime":   time.Since(s.startTime).String(),
		"projects": counts[catalog.All],
	})
}
