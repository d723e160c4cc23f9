package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tokviz/tokviz"
)

type tokenizeRequest struct {
	Text    string `json:"text"`
	VocabID string `json:"vocab_id"`
}

// TokenizeHandler implements tokenize(text, vocab_id) (spec §6).
func (s *Server) TokenizeHandler(c *gin.Context) {
	var req tokenizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := tokviz.Tokenize(req.Text, req.VocabID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

type categorizeRequest struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

// CategorizeHandler implements token_category(id, text) (spec §6).
func (s *Server) CategorizeHandler(c *gin.Context) {
	var req categorizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": tokviz.TokenCategory(req.ID, req.Text)})
}

// CategoryColorHandler implements category_color(name) (spec §6).
func (s *Server) CategoryColorHandler(c *gin.Context) {
	color := tokviz.CategoryColor(c.Param("name"))
	c.JSON(http.StatusOK, gin.H{"color": color})
}
