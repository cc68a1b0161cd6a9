package server

import (
	"lrukv/internal/shard"
	"lrukv/pkg/logger"

	"github.com/gin-gonic/gin"
)

type Server struct {
	router *gin.Engine
	store  *shard.Store
}

// New creates a new server instance
func New(store *shard.Store) *Server {
	s := &Server{
		store:  store,
		router: gin.Default(),
	}
	// route on the escaped path so an encoded "/" stays inside :key
	s.router.UseRawPath = true
	s.router.UnescapePathValues = true
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleHealthCheck())
	s.router.GET("/v1/stats", s.handleStats())

	s.router.GET("/v1/keys", s.handleListKeys())
	s.router.DELETE("/v1/keys", s.handlePurge())
	s.router.GET("/v1/keys/:key", s.handleGetKey())
	s.router.PUT("/v1/keys/:key", s.handlePutKey())
	s.router.DELETE("/v1/keys/:key", s.handleDeleteKey())
}

// Handler exposes the routes for embedding in another http.Server.
func (s *Server) Handler() *gin.Engine {
	return s.router
}

// Run listens on addr and blocks until the listener fails.
func (s *Server) Run(addr string) error {
	logger.Info("server listening", "addr", addr, "capacity", s.store.Cap())
	return s.router.Run(addr)
}
