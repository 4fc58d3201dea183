package http

import (
	"time"

	"github.com/pickleclub/reservation-backend/internal/photo"
)

// PhotoResponse is the API shape of a photo record. Download URLs point at
// the serving endpoints; storage paths never leave the service.
type PhotoResponse struct {
	ID           string    `json:"id"`
	CourtID      string    `json:"court_id"`
	Filename     string    `json:"filename"`
	ContentType  string    `json:"content_type"`
	Size         int64     `json:"size"`
	URL          string    `json:"url"`
	ThumbnailURL *string   `json:"thumbnail_url"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewPhotoResponse(p *photo.Photo) PhotoResponse {
	resp := PhotoResponse{
		ID:          p.ID,
		CourtID:     p.CourtID,
		Filename:    p.Filename,
		ContentType: p.ContentType,
		Size:        p.Size,
		URL:         photo.PhotoURL(p.ID),
		CreatedAt:   p.CreatedAt,
	}
	if p.ThumbnailPath != nil {
		url := photo.ThumbnailURL(p.ID)
		resp.ThumbnailURL = &url
	}
	return resp
}
