package handlers

import (
	"fmt"
	"mime/multipart"
	"path/filepath"

	"gigslk_backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// saveUpload stores one multipart file under a fresh uuid name and returns
// its public /uploads reference. The original filename is never trusted.
func saveUpload(c *gin.Context, store storage.Storage, fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open uploaded file: %w", err)
	}
	defer src.Close()

	name := uuid.NewString() + filepath.Ext(fh.Filename)
	contentType := fh.Header.Get("Content-Type")

	if err := store.Save(c.Request.Context(), name, src, contentType); err != nil {
		return "", fmt.Errorf("store uploaded file: %w", err)
	}

	return "/uploads/" + name, nil
}

// collectUploads reads the profile form's file parts: the single
// profile_picture and any number of gallery_images. Either may be absent.
func collectUploads(c *gin.Context, store storage.Storage) (profilePicture string, gallery []string, err error) {
	form, err := c.MultipartForm()
	if err != nil {
		// Plain urlencoded bodies have no files at all.
		return "", nil, nil
	}

	if files := form.File["profile_picture"]; len(files) > 0 {
		profilePicture, err = saveUpload(c, store, files[0])
		if err != nil {
			return "", nil, err
		}
	}

	for _, fh := range form.File["gallery_images"] {
		path, err := saveUpload(c, store, fh)
		if err != nil {
			return "", nil, err
		}
		gallery = append(gallery, path)
	}

	return profilePicture, gallery, nil
}
