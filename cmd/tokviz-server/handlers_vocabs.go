package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tokviz/tokviz"
)

// ListVocabsHandler implements list_vocabs (spec §6).
func (s *Server) ListVocabsHandler(c *gin.Context) {
	ids, err := tokviz.ListVocabs()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"vocabs": ids})
}

// VocabInfoHandler implements vocab_info(id) (spec §6).
func (s *Server) VocabInfoHandler(c *gin.Context) {
	meta, ok, err := tokviz.VocabInfo(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown vocab id"})
		return
	}
	c.JSON(http.StatusOK, meta)
}
