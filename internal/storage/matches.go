package storage

import (
	"fmt"
	"time"
)

// MatchRecord is the outcome of one local fighter match.
type MatchRecord struct {
	ID           int64
	GameID       string
	Winner       string // "p1", "p2" or "draw"
	P1Health     int
	P2Health     int
	DurationSecs int
	Ticks        int
	VsCPU        bool
	CreatedAt    time.Time
}

// MatchSummary counts outcomes across recorded matches.
type MatchSummary struct {
	Total  int
	P1Wins int
	P2Wins int
	Draws  int
}

// SaveMatch records a finished match. Returns the ID of the inserted record.
func (s *Store) SaveMatch(m MatchRecord) (int64, error) {
	switch m.Winner {
	case "p1", "p2", "draw":
	default:
		return 0, fmt.Errorf("storage: invalid match winner %q", m.Winner)
	}

	res, err := s.db.Exec(
		`INSERT INTO matches (game_id, winner, p1_health, p2_health, duration_secs, ticks, vs_cpu)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.GameID, m.Winner, m.P1Health, m.P2Health, m.DurationSecs, m.Ticks, m.VsCPU,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentMatches returns the newest matches for a game, newest first.
func (s *Store) RecentMatches(gameID string, limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, winner, p1_health, p2_health, duration_secs, ticks, vs_cpu, created_at
		 FROM matches
		 WHERE game_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var out []MatchRecord
	for rows.Next() {
		var m MatchRecord
		var createdAt any
		if err := rows.Scan(
			&m.ID,
			&m.GameID,
			&m.Winner,
			&m.P1Health,
			&m.P2Health,
			&m.DurationSecs,
			&m.Ticks,
			&m.VsCPU,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		m.CreatedAt = parseTime(createdAt)
		out = append(out, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// MatchStats tallies winners for a game.
func (s *Store) MatchStats(gameID string) (MatchSummary, error) {
	var sum MatchSummary
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(winner = 'p1'), 0),
		        COALESCE(SUM(winner = 'p2'), 0),
		        COALESCE(SUM(winner = 'draw'), 0)
		 FROM matches WHERE game_id = ?`,
		gameID,
	).Scan(&sum.Total, &sum.P1Wins, &sum.P2Wins, &sum.Draws)
	if err != nil {
		return sum, fmt.Errorf("storage: cannot get match stats: %w", err)
	}
	return sum, nil
}
