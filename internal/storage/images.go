package storage

import (
	"context"
	"mime/multipart"

	"github.com/gin-gonic/gin"
)

// ImageStore abstracts where cocktail images live: a directory next to
// the server, or an R2 bucket fronted by a public URL.
type ImageStore interface {
	// Save stores an uploaded image and returns its public URL.
	Save(ctx context.Context, filename string, file multipart.File) (string, error)

	// ServeHandler handles GET /images/*filepath.
	ServeHandler() gin.HandlerFunc
}
