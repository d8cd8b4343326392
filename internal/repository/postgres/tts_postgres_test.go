package postgres

import (
	"context"
	"testing"
	"time"

	"orator/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTTSResultPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewTTSResultPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	res := &model.TTSResult{
		ID:        "tts-uuid",
		Text:      "hello world",
		AudioURL:  "https://blob/tts-audio/1.mp3",
		Timestamp: now,
	}

	rows := sqlmock.NewRows([]string{"id", "text", "audio_url", "created_at"}).
		AddRow(res.ID, res.Text, res.AudioURL, res.Timestamp)

	mock.ExpectQuery("INSERT INTO tts_results").
		WithArgs(res.ID, res.Text, res.AudioURL, res.Timestamp).
		WillReturnRows(rows)

	stored, err := repo.Create(ctx, res)

	assert.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, res.AudioURL, stored.AudioURL)
	assert.NoError(t, mock.ExpectationsWereMet())
}
