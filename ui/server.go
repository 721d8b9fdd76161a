package ui

import (
	"embed"
	"fmt"
	"html/template"

	"sheetviz/adapters/render"
	"sheetviz/adapters/stats"
	"sheetviz/app"
	"sheetviz/internal"
	"sheetviz/internal/config"
	"sheetviz/internal/session"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/semaphore"
)

//go:embed templates/* help.md
var embeddedFiles embed.FS

// Server represents the web server for the chart studio UI
type Server struct {
	router     *gin.Engine
	config     *config.Config
	logger     *internal.Logger
	sessions   *session.Manager
	resolver   *app.ChartResolver
	renderer   *render.Renderer
	summarizer *stats.Summarizer
	templates  *template.Template

	// renderSem bounds simultaneous chart renders; PNG rasterization is
	// the only CPU-heavy thing this server does.
	renderSem *semaphore.Weighted
}

// NewServer creates and wires the web server
func NewServer(cfg *config.Config, sessions *session.Manager) (*Server, error) {
	gin.SetMode(cfg.Server.GinMode)

	templates, err := template.ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	s := &Server{
		router:   gin.Default(),
		config:   cfg,
		logger:   internal.DefaultLogger,
		sessions: sessions,
		resolver: app.NewChartResolver(),
		renderer: render.New(render.Config{
			Width:  cfg.Render.Width,
			Height: cfg.Render.Height,
		}),
		summarizer: stats.NewSummarizer(),
		templates:  templates,
		renderSem:  semaphore.NewWeighted(cfg.Render.MaxConcurrent),
	}

	s.setupRoutes()
	return s, nil
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.GET("/help", s.handleHelp)

	// Table lifecycle
	s.router.POST("/api/table/upload", s.handleUpload)
	s.router.POST("/api/table/sample", s.handleSample)

	// Table queries
	s.router.GET("/api/table/info", s.handleTableInfo)
	s.router.GET("/api/table/columns", s.handleColumns)
	s.router.GET("/api/table/preview", s.handlePreview)
	s.router.GET("/api/table/stats", s.handleStats)
	s.router.GET("/api/table/export", s.handleExport)

	// Chart generation
	s.router.POST("/api/charts", s.handleChart)
}

// Start starts the web server
func (s *Server) Start() error {
	addr := ":" + s.config.Server.Port
	s.logger.Info("Starting chart studio on http://localhost%s", addr)
	return s.router.Run(addr)
}

// Router exposes the underlying engine for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}
