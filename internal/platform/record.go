// Package platform holds what every frontend does around a game: storing
// finished results and releasing a game when the player leaves it.
package platform

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dash-arena/internal/core"
	"github.com/vovakirdan/dash-arena/internal/games/fighter"
	"github.com/vovakirdan/dash-arena/internal/registry"
	"github.com/vovakirdan/dash-arena/internal/storage"
)

// Record stores the score, match and progression of a finished game.
// Storage is best-effort; failures are logged and play continues.
func Record(game registry.Game, state core.GameState, store *storage.Store, tickRate int, logger *log.Logger) {
	id := game.ID()
	logger.Info("game over", "game", id, "score", state.Score)

	save(game, logger)

	if store == nil {
		return
	}
	if state.Score > 0 {
		if _, err := store.SaveScore(id, state.Score); err != nil {
			logger.Warn("could not save score", "game", id, "error", err)
		}
	}
	if f, ok := game.(*fighter.Game); ok {
		if rec, ok := MatchRecord(f, tickRate); ok {
			if _, err := store.SaveMatch(rec); err != nil {
				logger.Warn("could not save match", "error", err)
			}
		}
	}
}

// MatchRecord converts a decided match for storage.
func MatchRecord(g *fighter.Game, tickRate int) (storage.MatchRecord, bool) {
	r := g.Result()
	if r.Winner == fighter.OutcomeNone {
		return storage.MatchRecord{}, false
	}
	if tickRate <= 0 {
		tickRate = 60
	}
	return storage.MatchRecord{
		GameID:       g.ID(),
		Winner:       r.Winner.String(),
		P1Health:     r.P1Health,
		P2Health:     r.P2Health,
		DurationSecs: r.Ticks / tickRate,
		Ticks:        r.Ticks,
		VsCPU:        r.CPU,
	}, true
}

// Release persists progress and frees whatever the game holds.
func Release(game registry.Game, logger *log.Logger) {
	save(game, logger)
	if c, ok := game.(io.Closer); ok {
		if err := c.Close(); err != nil {
			logger.Warn("could not close game", "game", game.ID(), "error", err)
		}
	}
}

func save(game registry.Game, logger *log.Logger) {
	if s, ok := game.(registry.Saver); ok {
		if err := s.Save(); err != nil {
			logger.Warn("could not save progression", "game", game.ID(), "error", err)
		}
	}
}
