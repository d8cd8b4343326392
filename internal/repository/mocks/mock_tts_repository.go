package mocks

import (
	"context"

	"orator/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockTTSResultRepository struct {
	mock.Mock
}

func (m *MockTTSResultRepository) Create(ctx context.Context, res *model.TTSResult) (*model.TTSResult, error) {
	args := m.Called(ctx, res)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TTSResult), args.Error(1)
}
