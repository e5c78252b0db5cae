package handlers

import (
	"net/http"

	"recycling_games/internal/domain"
	"recycling_games/internal/game"

	"github.com/gin-gonic/gin"
)

// GameInfo describes one mini-game in the catalog.
type GameInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Persisted   bool   `json:"persisted"`
	Description string `json:"description"`
}

var gameCatalog = []GameInfo{
	{ID: string(domain.GameTypeMemory), Name: "Jogo da Memória", Persisted: true,
		Description: "Encontre os pares de materiais recicláveis"},
	{ID: string(domain.GameTypeSorting), Name: "Separação de Resíduos", Persisted: true,
		Description: "Arraste cada item para a lixeira certa"},
	{ID: string(domain.GameTypeQuiz), Name: "Quiz da Reciclagem", Persisted: true,
		Description: "Teste seus conhecimentos sobre reciclagem"},
	{ID: string(domain.GameTypeGuess), Name: "Adivinhe o Número", Persisted: false,
		Description: "Adivinhe o número entre 1 e 100"},
	{ID: string(domain.GameTypeSnake), Name: "Jogo da Cobrinha", Persisted: false,
		Description: "Colete os recicláveis sem bater"},
	{ID: string(domain.GameTypeTicTacToe), Name: "Jogo da Velha", Persisted: false,
		Description: "Clássico jogo da velha para dois jogadores"},
}

// ListGames returns the fixed mini-game catalog.
func (h *Handler) ListGames(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"games": gameCatalog})
}

// SortingInfo returns the bin set and item pool for the sorting game,
// so the client can render drop targets before starting.
func (h *Handler) SortingInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"bins":         game.Bins(),
		"target_items": game.SortingTarget(),
		"lives":        game.SortingLivesTotal(),
	})
}
