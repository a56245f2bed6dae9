package api

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"SpliceSafari/core"
	"SpliceSafari/lib/sl"

	"github.com/gin-gonic/gin"
)

//go:embed static
var staticFiles embed.FS

const shutdownTimeout = 10 * time.Second

type Server struct {
	conf    *core.Config
	log     *slog.Logger
	service core.MashupService
	httpSrv *http.Server
}

func NewServer(conf *core.Config, service core.MashupService, log *slog.Logger) *Server {
	s := &Server{
		conf:    conf,
		log:     log.With(sl.Module("http")),
		service: service,
	}
	s.httpSrv = &http.Server{
		Addr:              conf.Addr(),
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Router builds the gin engine with all routes and middleware
func (s *Server) Router() *gin.Engine {
	if s.conf.Env != "local" && s.conf.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(requestID(), accessLog(s.log), gin.Recovery())

	assets, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}

	r.GET("/", s.index(assets))
	r.GET("/index.html", s.index(assets))
	r.StaticFS("/static", http.FS(assets))

	api := r.Group("/api")
	api.GET("/config", s.handleConfig)
	api.POST("/spin", s.handleSpin)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
	return r
}

// Start blocks until the server stops; http.ErrServerClosed is not an error
func (s *Server) Start() error {
	s.log.Info("serving Splice Safari", slog.String("addr", s.httpSrv.Addr))
	if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.httpSrv.Shutdown(ctx)
}

func (s *Server) index(assets fs.FS) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := fs.ReadFile(assets, "index.html")
		if err != nil {
			s.log.Error("reading index page", sl.Err(err))
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", page)
	}
}
