package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/cricsim/auction-tui/internal/player"
	_ "modernc.org/sqlite"
)

const selectionKey = "squad_selection"

var ErrQuery = errors.New("query error")

// Store persists small pieces of application state between sessions.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}

// SaveSelection replaces the persisted squad selection with players.
func (s *Store) SaveSelection(ctx context.Context, players []player.Player) error {
	body, errMarshal := json.Marshal(players)
	if errMarshal != nil {
		return errors.Join(errMarshal, ErrQuery)
	}

	const query = `
		INSERT INTO app_state (key, value, updated_on) VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_on = excluded.updated_on`

	if _, errExec := s.db.ExecContext(ctx, query, selectionKey, string(body), time.Now().Unix()); errExec != nil {
		return errors.Join(errExec, ErrQuery)
	}

	return nil
}

// LoadSelection returns the previously persisted squad selection. A missing or
// unreadable value yields an empty selection, never an error.
func (s *Store) LoadSelection(ctx context.Context) []player.Player {
	var body string
	row := s.db.QueryRowContext(ctx, `SELECT value FROM app_state WHERE key = ?`, selectionKey)
	if err := row.Scan(&body); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			slog.Error("Failed to load saved selection", slog.String("error", err.Error()))
		}

		return nil
	}

	var players []player.Player
	if err := json.Unmarshal([]byte(body), &players); err != nil {
		slog.Error("Discarding unreadable saved selection", slog.String("error", err.Error()))

		return nil
	}

	return players
}
