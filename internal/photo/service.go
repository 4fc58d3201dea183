package photo

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pickleclub/reservation-backend/internal/court"
	"github.com/pickleclub/reservation-backend/internal/pkg/storage"
)

const (
	thumbnailWidth  = 320
	thumbnailHeight = 320
)

type Service interface {
	Upload(ctx context.Context, header *multipart.FileHeader, courtID, uploaderID string) (*Photo, error)
	Get(ctx context.Context, id string) (*Photo, error)
	ListByCourt(ctx context.Context, courtID string) ([]*Photo, error)
	Download(ctx context.Context, id string) (io.ReadCloser, *Photo, error)
	DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *Photo, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo       Repository
	crtService court.Service
	storage    storage.Storage
	imgProc    *storage.ImageProcessor
}

func NewService(repo Repository, crtService court.Service, store storage.Storage) Service {
	return &service{
		repo:       repo,
		crtService: crtService,
		storage:    store,
		imgProc:    storage.NewImageProcessor(),
	}
}

// Upload stores a court photo and its thumbnail. The court must exist and
// the payload must be an image. A failed thumbnail never fails the upload.
func (s *service) Upload(ctx context.Context, header *multipart.FileHeader, courtID, uploaderID string) (*Photo, error) {
	if _, err := s.crtService.GetByID(ctx, courtID); err != nil {
		return nil, err
	}

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrNotImage
	}

	src, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("open uploaded file failed: %w", err)
	}
	defer src.Close()

	// Buffered so the bytes can be read twice, once for the original and
	// once for the thumbnail. Court photos are small enough for this.
	photoBytes, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("read upload content failed: %w", err)
	}

	photoID := uuid.New().String()
	ext := strings.ToLower(filepath.Ext(header.Filename))

	// Shard directories on the ID prefix to keep them small.
	shard := photoID[:2]
	storagePath := fmt.Sprintf("photos/%s/%s%s", shard, photoID, ext)

	if err := s.storage.Save(ctx, storagePath, bytes.NewReader(photoBytes)); err != nil {
		return nil, fmt.Errorf("save photo failed: %w", err)
	}

	var thumbnailPath *string
	if thumbReader, err := s.imgProc.GenerateThumbnail(bytes.NewReader(photoBytes), thumbnailWidth, thumbnailHeight); err == nil {
		tPath := fmt.Sprintf("photos/%s/%s_thumb.jpg", shard, photoID)
		if err := s.storage.Save(ctx, tPath, thumbReader); err == nil {
			thumbnailPath = &tPath
		}
	}

	p := &Photo{
		ID:            photoID,
		CourtID:       courtID,
		UploaderID:    uploaderID,
		Filename:      header.Filename,
		StoragePath:   storagePath,
		ThumbnailPath: thumbnailPath,
		ContentType:   contentType,
		Size:          header.Size,
		CreatedAt:     time.Now(),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		_ = s.storage.Delete(ctx, storagePath)
		if thumbnailPath != nil {
			_ = s.storage.Delete(ctx, *thumbnailPath)
		}
		return nil, err
	}
	return p, nil
}

func (s *service) Get(ctx context.Context, id string) (*Photo, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListByCourt(ctx context.Context, courtID string) ([]*Photo, error) {
	return s.repo.ListByCourt(ctx, courtID)
}

func (s *service) Download(ctx context.Context, id string) (io.ReadCloser, *Photo, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	stream, err := s.storage.Get(ctx, p.StoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("retrieve photo failed: %w", err)
	}
	return stream, p, nil
}

func (s *service) DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *Photo, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if p.ThumbnailPath == nil {
		return nil, nil, ErrNoThumbnail
	}

	stream, err := s.storage.Get(ctx, *p.ThumbnailPath)
	if err != nil {
		return nil, nil, fmt.Errorf("retrieve thumbnail failed: %w", err)
	}
	return stream, p, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// Best-effort storage cleanup; the record is the source of truth.
	_ = s.storage.Delete(ctx, p.StoragePath)
	if p.ThumbnailPath != nil {
		_ = s.storage.Delete(ctx, *p.ThumbnailPath)
	}

	return s.repo.Delete(ctx, id)
}
