package main

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/tokviz/tokviz/internal/session"
)

// Server holds the session manager that binds HTTP clients to their own
// IncrementalTokenizer handles. Vocab lookups go through the tokviz facade,
// which owns the process-wide registry.
type Server struct {
	sessions *session.Manager
}

func (s *Server) routes() http.Handler {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Content-Type"}
	corsConfig.AllowMethods = []string{"GET", "POST", "DELETE"}

	r := gin.Default()
	r.Use(cors.New(corsConfig))

	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "tokviz is running") })

	r.GET("/vocabs", s.ListVocabsHandler)
	r.GET("/vocabs/:id", s.VocabInfoHandler)

	r.POST("/tokenize", s.TokenizeHandler)
	r.POST("/categorize", s.CategorizeHandler)
	r.GET("/categories/:name/color", s.CategoryColorHandler)

	r.POST("/sessions", s.CreateSessionHandler)
	r.POST("/sessions/:id/update", s.UpdateSessionHandler)
	r.POST("/sessions/:id/vocab", s.SetSessionVocabHandler)
	r.GET("/sessions/:id/vocab", s.GetSessionVocabHandler)
	r.POST("/sessions/:id/reset", s.ResetSessionHandler)
	r.DELETE("/sessions/:id", s.CloseSessionHandler)

	return r
}
