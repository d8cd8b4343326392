package mocks

import (
	"context"
	"time"

	"orator/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockPageService struct {
	mock.Mock
}

func (m *MockPageService) UploadImage(ctx context.Context, image []byte, originalFilename, contentType string) (string, error) {
	args := m.Called(ctx, image, originalFilename, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockPageService) CreateAndAnalyze(ctx context.Context, bookID string, image []byte, mimeType, filename, imageURL string) (*model.Page, error) {
	args := m.Called(ctx, bookID, image, mimeType, filename, imageURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Page), args.Error(1)
}

func (m *MockPageService) Get(ctx context.Context, id string) (*model.Page, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Page), args.Error(1)
}

func (m *MockPageService) ListByBook(ctx context.Context, bookID string) ([]model.Page, error) {
	args := m.Called(ctx, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Page), args.Error(1)
}

func (m *MockPageService) SweepStale(ctx context.Context, maxAge time.Duration) (int, error) {
	args := m.Called(ctx, maxAge)
	return args.Int(0), args.Error(1)
}
