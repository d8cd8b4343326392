package mocks

import (
	"context"

	"orator/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockTTSService struct {
	mock.Mock
}

func (m *MockTTSService) Synthesize(ctx context.Context, text, voice string) (*service.TTSResponse, error) {
	args := m.Called(ctx, text, voice)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TTSResponse), args.Error(1)
}
