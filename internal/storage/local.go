package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LocalStore keeps images in a directory served by the app itself.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStore{dir: dir}, nil
}

func (s *LocalStore) Save(_ context.Context, filename string, file multipart.File) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	key := uuid.New().String() + ext

	dst, err := os.Create(filepath.Join(s.dir, key))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", err
	}
	return fmt.Sprintf("/images/%s", key), nil
}

func (s *LocalStore) ServeHandler() gin.HandlerFunc {
	// http.FileServer takes care of path traversal.
	fs := http.StripPrefix("/images", http.FileServer(http.Dir(s.dir)))
	return func(c *gin.Context) {
		fs.ServeHTTP(c.Writer, c.Request)
	}
}
