package repository

import (
	"context"

	"orator/internal/model"
)

// TTSResultRepository persists speech synthesis audit records. The system
// only writes these; no read path exists.
type TTSResultRepository interface {
	Create(ctx context.Context, res *model.TTSResult) (*model.TTSResult, error)
}
