package photo

import (
	"net/http"
	"time"

	"github.com/pickleclub/reservation-backend/internal/pkg/apperror"
	"github.com/pickleclub/reservation-backend/internal/pkg/errcode"
)

var (
	ErrNotFound    = apperror.WithMessage(http.StatusNotFound, errcode.InvalidRequestState, "photo not found")
	ErrNotImage    = apperror.WithMessage(http.StatusBadRequest, errcode.ValidationError, "only image uploads are accepted")
	ErrNoThumbnail = apperror.WithMessage(http.StatusNotFound, errcode.InvalidRequestState, "thumbnail not available")
)

// Photo is an image attached to a court.
type Photo struct {
	ID            string
	CourtID       string
	UploaderID    string
	Filename      string
	StoragePath   string  // Internal path, never exposed
	ThumbnailPath *string // Internal path, never exposed
	ContentType   string
	Size          int64
	CreatedAt     time.Time
}

// PhotoURL returns the public download path for a photo.
func PhotoURL(id string) string {
	return "/v1/photos/" + id
}

// ThumbnailURL returns the public download path for a photo's thumbnail.
func ThumbnailURL(id string) string {
	return "/v1/photos/" + id + "/thumbnail"
}
