package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type createSessionRequest struct {
	VocabID string `json:"vocab_id"`
}

// CreateSessionHandler implements `new IncrementalTokenizer(vocab_id)`
// (spec §6), returning the opaque session handle as a uuid.
func (s *Server) CreateSessionHandler(c *gin.Context) {
	var req createSessionRequest
	_ = c.ShouldBindJSON(&req)
	if req.VocabID == "" {
		req.VocabID = "cl100k_base"
	}

	id, err := s.sessions.Create(req.VocabID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session_id": id, "vocab_id": req.VocabID})
}

type updateSessionRequest struct {
	Text string `json:"text"`
}

// UpdateSessionHandler implements handle.update(text) (spec §6).
func (s *Server) UpdateSessionHandler(c *gin.Context) {
	h, ok := s.sessions.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown session"})
		return
	}

	var req updateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, start, end, changed := h.Update(req.Text)
	resp := gin.H{
		"tokens":       result.Tokens,
		"total_tokens": result.TotalTokens,
		"vocab_id":     result.VocabID,
	}
	if changed {
		resp["changed_range"] = []int{start, end}
	}
	c.JSON(http.StatusOK, resp)
}

type setVocabRequest struct {
	VocabID string `json:"vocab_id"`
}

// SetSessionVocabHandler implements handle.set_vocab(id) (spec §6).
func (s *Server) SetSessionVocabHandler(c *gin.Context) {
	h, ok := s.sessions.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown session"})
		return
	}

	var req setVocabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.SetVocab(req.VocabID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// GetSessionVocabHandler implements handle.get_vocab() (spec §6).
func (s *Server) GetSessionVocabHandler(c *gin.Context) {
	h, ok := s.sessions.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"vocab_id": h.GetVocab()})
}

// ResetSessionHandler implements handle.reset() (spec §6).
func (s *Server) ResetSessionHandler(c *gin.Context) {
	h, ok := s.sessions.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown session"})
		return
	}
	h.Reset()
	c.Status(http.StatusNoContent)
}

// CloseSessionHandler discards a session entirely (not part of spec §6's
// table, but necessary for a long-running server to avoid leaking sessions
// whose editing tab the client has closed).
func (s *Server) CloseSessionHandler(c *gin.Context) {
	s.sessions.Close(c.Param("id"))
	c.Status(http.StatusNoContent)
}
