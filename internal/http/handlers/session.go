package handlers

import (
	"errors"
	"net/http"

	"recycling_games/internal/domain"
	"recycling_games/internal/game"
	"recycling_games/internal/service"

	"github.com/gin-gonic/gin"
)

// StartSessionRequest selects which mini-game to mount.
type StartSessionRequest struct {
	Game string `json:"game" binding:"required"`
}

// StartSession mounts a fresh session of the requested game, replacing
// any session the player already has.
func (h *Handler) StartSession(c *gin.Context) {
	playerID, playerName, ok := getPlayer(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	sess, err := h.Sessions.Start(playerID, playerName, domain.GameType(req.Game))
	if err != nil {
		if errors.Is(err, service.ErrUnknownGame) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown game: " + req.Game})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start game"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"game":  string(sess.GameType),
		"state": sess.State(),
	})
}

// SessionState returns the current snapshot of the mounted session.
func (h *Handler) SessionState(c *gin.Context) {
	playerID, _, ok := getPlayer(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	sess, err := h.Sessions.Get(playerID)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"active": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"active": true,
		"game":   string(sess.GameType),
		"state":  sess.State(),
	})
}

// QuitSession unmounts the player's session without recording a score.
func (h *Handler) QuitSession(c *gin.Context) {
	playerID, _, ok := getPlayer(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	h.Sessions.Teardown(playerID)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// session resolves the caller's mounted session or writes the error
// response. Returns nil when a response was already written.
func (h *Handler) session(c *gin.Context) *service.Session {
	playerID, _, ok := getPlayer(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return nil
	}

	sess, err := h.Sessions.Get(playerID)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "no active session"})
		return nil
	}
	return sess
}

func writeActionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrWrongGame):
		c.JSON(http.StatusConflict, gin.H{"error": "operation does not apply to the mounted game"})
	case errors.Is(err, service.ErrNoSession):
		c.JSON(http.StatusConflict, gin.H{"error": "no active session"})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

// RevealRequest selects a memory card by board index.
type RevealRequest struct {
	Card *int `json:"card" binding:"required,min=0,max=15"`
}

// Reveal flips a memory card.
func (h *Handler) Reveal(c *gin.Context) {
	sess := h.session(c)
	if sess == nil {
		return
	}

	var req RevealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	result, err := sess.Reveal(*req.Card)
	if err != nil {
		writeActionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": result.String(),
		"state":  sess.State(),
	})
}

// ClassifyRequest drops the current sorting item into a bin.
type ClassifyRequest struct {
	Category string `json:"category" binding:"required"`
}

// Classify sorts the current item into the chosen bin.
func (h *Handler) Classify(c *gin.Context) {
	sess := h.session(c)
	if sess == nil {
		return
	}

	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	result, err := sess.Classify(req.Category)
	if err != nil {
		writeActionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": result.String(),
		"state":  sess.State(),
	})
}

// AnswerRequest picks a quiz option for the current question.
type AnswerRequest struct {
	Option *int `json:"option" binding:"required,min=0,max=3"`
}

// Answer submits the quiz answer for the current question.
func (h *Handler) Answer(c *gin.Context) {
	sess := h.session(c)
	if sess == nil {
		return
	}

	var req AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	result, err := sess.Answer(*req.Option)
	if err != nil {
		writeActionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": result.String(),
		"state":  sess.State(),
	})
}

// Advance moves the quiz to the next question after an answer.
func (h *Handler) Advance(c *gin.Context) {
	sess := h.session(c)
	if sess == nil {
		return
	}

	if err := sess.Advance(); err != nil {
		writeActionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"state": sess.State()})
}

// GuessRequest submits one number guess.
type GuessRequest struct {
	Number *int `json:"number" binding:"required"`
}

// Guess submits a number for the guessing game.
func (h *Handler) Guess(c *gin.Context) {
	sess := h.session(c)
	if sess == nil {
		return
	}

	var req GuessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	outcome, err := sess.Guess(*req.Number)
	if err != nil {
		writeActionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": outcome.String(),
		"state":  sess.State(),
	})
}

// PlaceRequest picks a tic-tac-toe cell.
type PlaceRequest struct {
	Cell *int `json:"cell" binding:"required,min=0,max=8"`
}

// Place puts the next mark on the tic-tac-toe board.
func (h *Handler) Place(c *gin.Context) {
	sess := h.session(c)
	if sess == nil {
		return
	}

	var req PlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	if err := sess.Place(*req.Cell); err != nil {
		switch {
		case errors.Is(err, game.ErrCellOccupied):
			c.JSON(http.StatusBadRequest, gin.H{"error": "cell already occupied"})
		case errors.Is(err, game.ErrGameDecided):
			c.JSON(http.StatusBadRequest, gin.H{"error": "game already decided"})
		case errors.Is(err, game.ErrBadCell):
			c.JSON(http.StatusBadRequest, gin.H{"error": "cell out of range"})
		default:
			writeActionError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"state": sess.State()})
}
