package server

import (
	"net/http"

	"lrukv/pkg/errors"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleHealthCheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

func (s *Server) handleStats() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.store.Stats())
	}
}

func (s *Server) handleGetKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Param("key")
		value, ok := s.store.Get(key)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": errors.ErrKeyNotFound.Error()})
			return
		}

		c.JSON(http.StatusOK, KeyResponse{Key: key, Value: value})
	}
}

func (s *Server) handlePutKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Param("key")
		var req PutKeyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		s.store.Put(key, *req.Value)
		c.JSON(http.StatusOK, KeyResponse{Key: key, Value: *req.Value})
	}
}

func (s *Server) handleDeleteKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.store.Remove(c.Param("key")) {
			c.JSON(http.StatusNotFound, gin.H{"error": errors.ErrKeyNotFound.Error()})
			return
		}

		c.Status(http.StatusNoContent)
	}
}

func (s *Server) handleListKeys() gin.HandlerFunc {
	return func(c *gin.Context) {
		keys := s.store.Keys()
		if keys == nil {
			keys = []string{}
		}
		c.JSON(http.StatusOK, ListKeysResponse{Keys: keys})
	}
}

func (s *Server) handlePurge() gin.HandlerFunc {
	return func(c *gin.Context) {
		s.store.Purge()
		c.Status(http.StatusNoContent)
	}
}
