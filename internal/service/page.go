package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"orator/internal/logger"
	"orator/internal/model"
	"orator/internal/providers"
	"orator/internal/repository"
	"orator/internal/storage"
	"orator/internal/tasks"
)

var (
	ErrPageNotFound  = errors.New("page not found")
	ErrImageRequired = errors.New("image is required")
)

// presignExpiry is how long generated object URLs stay valid; MinIO caps
// presigned URLs at 7 days.
const presignExpiry = 7 * 24 * time.Hour

// PageService defines the use cases for scanned pages and their analysis
// workflow.
type PageService interface {
	// UploadImage stores the raw page image in object storage and returns a
	// presigned URL for it.
	UploadImage(ctx context.Context, image []byte, originalFilename, contentType string) (string, error)

	// CreateAndAnalyze inserts a page in processing state, schedules its
	// analysis in the background, and returns the page immediately. The
	// returned page never carries content; callers poll Get for the result.
	CreateAndAnalyze(ctx context.Context, bookID string, image []byte, mimeType, filename, imageURL string) (*model.Page, error)

	// Get returns a single page by its ID.
	Get(ctx context.Context, id string) (*model.Page, error)

	// ListByBook returns all pages of a book in creation order.
	ListByBook(ctx context.Context, bookID string) ([]model.Page, error)

	// SweepStale marks pages stuck in processing longer than maxAge as
	// errored and returns how many it repaired.
	SweepStale(ctx context.Context, maxAge time.Duration) (int, error)
}

type pageService struct {
	repo     repository.PageRepository
	store    storage.Storage
	analyzer providers.Analyzer
	runner   *tasks.Runner
	log      zerolog.Logger
}

// NewPageService constructs a new PageService.
func NewPageService(repo repository.PageRepository, store storage.Storage, analyzer providers.Analyzer, runner *tasks.Runner) PageService {
	return &pageService{
		repo:     repo,
		store:    store,
		analyzer: analyzer,
		runner:   runner,
		log:      logger.WithComponent("pages"),
	}
}

func (s *pageService) UploadImage(ctx context.Context, image []byte, originalFilename, contentType string) (string, error) {
	if len(image) == 0 {
		return "", ErrImageRequired
	}

	ext := filepath.Ext(originalFilename)
	key := storage.ImagePrefix + "/" + uuid.New().String() + ext

	_, err := s.store.Put(ctx, key, bytes.NewReader(image), storage.PutObjectOptions{
		Size:        int64(len(image)),
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": originalFilename,
		},
	})
	if err != nil {
		return "", fmt.Errorf("upload to storage: %w", err)
	}

	url, err := s.store.PresignGet(ctx, key, presignExpiry)
	if err != nil {
		return "", fmt.Errorf("presign image: %w", err)
	}
	return url, nil
}

func (s *pageService) CreateAndAnalyze(ctx context.Context, bookID string, image []byte, mimeType, filename, imageURL string) (*model.Page, error) {
	if bookID == "" {
		return nil, ErrIDRequired
	}
	if len(image) == 0 {
		return nil, ErrImageRequired
	}
	if imageURL == "" {
		return nil, errors.New("image url is required")
	}

	now := time.Now().UTC()
	page := &model.Page{
		ID:        uuid.New().String(),
		BookID:    bookID,
		ImageURL:  imageURL,
		Status:    model.StatusProcessing,
		CreatedAt: now,
		UpdatedAt: now,
	}
	stored, err := s.repo.Create(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}

	s.runner.Go("analyze-page", func(taskCtx context.Context) {
		s.analyze(taskCtx, stored.ID, image, mimeType, filename)
	})

	return stored, nil
}

// analyze runs the vision call and persists the terminal result. Failures
// are recorded on the page itself, never surfaced to a request.
func (s *pageService) analyze(ctx context.Context, pageID string, image []byte, mimeType, filename string) {
	content, err := s.analyzer.Analyze(ctx, image, mimeType, filename)

	status := model.StatusCompleted
	if err != nil {
		s.log.Error().Err(err).Str("page_id", pageID).Msg("page analysis failed")
		status = model.StatusError
		content = &model.PageContent{
			Filename: filename,
			Error:    err.Error(),
		}
	}

	updated, err := s.repo.UpdateResult(ctx, pageID, status, content, time.Now().UTC())
	if err != nil {
		s.log.Error().Err(err).Str("page_id", pageID).Msg("failed to persist analysis result")
		if status == model.StatusCompleted {
			// The result is lost either way; record the failure so the page
			// does not sit in processing forever.
			errContent := &model.PageContent{
				Filename: filename,
				Error:    fmt.Sprintf("failed to save analysis result: %v", err),
			}
			if _, retryErr := s.repo.UpdateResult(ctx, pageID, model.StatusError, errContent, time.Now().UTC()); retryErr != nil {
				s.log.Error().Err(retryErr).Str("page_id", pageID).Msg("failed to record analysis error")
			}
		}
		return
	}
	if !updated {
		s.log.Warn().Str("page_id", pageID).Msg("analysis result discarded, page no longer processing")
		return
	}

	s.log.Info().Str("page_id", pageID).Str("status", string(status)).Msg("page analysis finished")
}

func (s *pageService) Get(ctx context.Context, id string) (*model.Page, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	page, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}
	return page, nil
}

func (s *pageService) ListByBook(ctx context.Context, bookID string) ([]model.Page, error) {
	if bookID == "" {
		return nil, ErrIDRequired
	}
	return s.repo.ListByBook(ctx, bookID)
}

func (s *pageService) SweepStale(ctx context.Context, maxAge time.Duration) (int, error) {
	cutoff := time.Now().UTC().Add(-maxAge)
	ids, err := s.repo.ListStaleProcessing(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("list stale pages: %w", err)
	}

	repaired := 0
	for _, id := range ids {
		content := &model.PageContent{Error: "analysis timed out"}
		updated, err := s.repo.UpdateResult(ctx, id, model.StatusError, content, time.Now().UTC())
		if err != nil {
			s.log.Error().Err(err).Str("page_id", id).Msg("failed to repair stale page")
			continue
		}
		if updated {
			repaired++
		}
	}
	if repaired > 0 {
		s.log.Info().Int("count", repaired).Msg("repaired stale processing pages")
	}
	return repaired, nil
}
