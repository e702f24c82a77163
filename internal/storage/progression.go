package storage

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
)

// queryer is the part of *sql.DB and *sql.Tx the progression queries use.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// LoadProgression returns a game's wallet and upgrade levels. A game that
// never saved has zero coins and no upgrades.
func (s *Store) LoadProgression(gameID string) (int, map[string]int, error) {
	return loadProgression(context.Background(), s.db, gameID)
}

// AddCoins credits coins to a game's wallet and returns the new balance.
// The increment happens in the database, so sessions sharing a wallet
// never overwrite each other's earnings.
func (s *Store) AddCoins(gameID string, delta int) (int, error) {
	if delta < 0 {
		return 0, fmt.Errorf("storage: negative coin delta %d", delta)
	}

	var coins int
	err := s.db.QueryRow(
		`INSERT INTO wallets (game_id, coins, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(game_id) DO UPDATE SET coins = coins + excluded.coins, updated_at = CURRENT_TIMESTAMP
		 RETURNING coins`,
		gameID, delta,
	).Scan(&coins)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot add coins: %w", err)
	}
	return coins, nil
}

// UpdateProgression reads a game's wallet and levels, hands them to fn and
// writes back what fn returns, all inside one transaction. When fn reports
// false nothing is written.
func (s *Store) UpdateProgression(gameID string, fn func(coins int, levels map[string]int) (int, map[string]int, bool)) error {
	ctx := context.Background()
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	coins, levels, err := loadProgression(ctx, tx, gameID)
	if err != nil {
		return err
	}
	coins, levels, ok := fn(coins, levels)
	if !ok {
		return nil
	}
	if err := saveProgression(ctx, tx, gameID, coins, levels); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit progression: %w", err)
	}
	return nil
}

// ResetProgression deletes a game's wallet and upgrades.
func (s *Store) ResetProgression(gameID string) error {
	ctx := context.Background()
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.ExecContext(ctx, "DELETE FROM upgrades WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot reset upgrades: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM wallets WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot reset wallet: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit reset: %w", err)
	}
	return nil
}

func loadProgression(ctx context.Context, q queryer, gameID string) (int, map[string]int, error) {
	var coins int
	err := q.QueryRowContext(ctx,
		"SELECT COALESCE((SELECT coins FROM wallets WHERE game_id = ?), 0)",
		gameID,
	).Scan(&coins)
	if err != nil {
		return 0, nil, fmt.Errorf("storage: cannot load wallet: %w", err)
	}

	rows, err := q.QueryContext(ctx,
		"SELECT kind, level FROM upgrades WHERE game_id = ?",
		gameID,
	)
	if err != nil {
		return 0, nil, fmt.Errorf("storage: cannot load upgrades: %w", err)
	}
	defer rows.Close()

	levels := make(map[string]int)
	for rows.Next() {
		var kind string
		var level int
		if err := rows.Scan(&kind, &level); err != nil {
			return 0, nil, fmt.Errorf("storage: cannot scan upgrade: %w", err)
		}
		levels[kind] = level
	}
	if err := rows.Err(); err != nil {
		return 0, nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return coins, levels, nil
}

// saveProgression writes the wallet and every given level. Levels not in
// the map keep their stored value.
func saveProgression(ctx context.Context, q queryer, gameID string, coins int, levels map[string]int) error {
	if coins < 0 {
		return fmt.Errorf("storage: negative wallet %d", coins)
	}

	_, err := q.ExecContext(ctx,
		`INSERT INTO wallets (game_id, coins, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(game_id) DO UPDATE SET coins = excluded.coins, updated_at = CURRENT_TIMESTAMP`,
		gameID, coins,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save wallet: %w", err)
	}

	// Stable order keeps the statement sequence deterministic
	kinds := make([]string, 0, len(levels))
	for k := range levels {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)

	for _, kind := range kinds {
		level := levels[kind]
		if level < 0 {
			return fmt.Errorf("storage: negative level %d for %s", level, kind)
		}
		_, err = q.ExecContext(ctx,
			`INSERT INTO upgrades (game_id, kind, level) VALUES (?, ?, ?)
			 ON CONFLICT(game_id, kind) DO UPDATE SET level = excluded.level`,
			gameID, kind, level,
		)
		if err != nil {
			return fmt.Errorf("storage: cannot save upgrade %s: %w", kind, err)
		}
	}
	return nil
}
