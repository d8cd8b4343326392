package postgres

import (
	"context"
	"database/sql"

	"orator/internal/model"
	"orator/internal/repository"
)

// TTSResultPostgres is a PostgreSQL implementation of repository.TTSResultRepository.
type TTSResultPostgres struct {
	db *sql.DB
}

// NewTTSResultPostgres creates a new TTSResultPostgres repository.
func NewTTSResultPostgres(db *sql.DB) *TTSResultPostgres {
	return &TTSResultPostgres{db: db}
}

var _ repository.TTSResultRepository = (*TTSResultPostgres)(nil)

// Create inserts a new synthesis audit row and returns the stored record.
func (r *TTSResultPostgres) Create(ctx context.Context, res *model.TTSResult) (*model.TTSResult, error) {
	const q = `
		INSERT INTO tts_results (id, text, audio_url, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, text, audio_url, created_at
	`
	row := r.db.QueryRowContext(ctx, q, res.ID, res.Text, res.AudioURL, res.Timestamp)
	var out model.TTSResult
	if err := row.Scan(&out.ID, &out.Text, &out.AudioURL, &out.Timestamp); err != nil {
		return nil, err
	}
	return &out, nil
}
