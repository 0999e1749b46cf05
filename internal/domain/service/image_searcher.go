package service

import (
	"context"
	"errors"
)

// ErrNoImage is returned when the search yields no result.
var ErrNoImage = errors.New("no image found")

// ImageSearcher looks up a display image for a free-text query.
type ImageSearcher interface {
	// SearchImage returns the URL of the first matching image.
	SearchImage(ctx context.Context, query string) (string, error)
}
