package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"aitrustyou/outfit-recommender/internal/models"
)

type GarmentLoader interface {
	FromFileHeader(file *multipart.FileHeader, field string) (*models.Garment, error)
	FromPath(path string, field string) (*models.Garment, error)
	LoadSelection(form *multipart.Form) (*models.Selection, error)
}

type garmentLoader struct {
	maxFileSize int64
}

// NewGarmentLoader returns a loader that rejects files above maxFileSize
// bytes. A non-positive limit disables the check.
func NewGarmentLoader(maxFileSize int64) GarmentLoader {
	return &garmentLoader{
		maxFileSize: maxFileSize,
	}
}

func (l *garmentLoader) FromFileHeader(file *multipart.FileHeader, field string) (*models.Garment, error) {
	if err := l.check(field, file.Filename, file.Size); err != nil {
		return nil, err
	}

	src, err := file.Open()
	if err != nil {
		return nil, unreadable(field, file.Filename, fmt.Errorf("failed to open uploaded file: %w", err))
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, unreadable(field, file.Filename, fmt.Errorf("failed to read uploaded file: %w", err))
	}

	contentType := file.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = DetectContentType(data, file.Filename)
	}

	return &models.Garment{
		Field:       field,
		Filename:    file.Filename,
		ContentType: contentType,
		Data:        data,
	}, nil
}

func (l *garmentLoader) FromPath(path string, field string) (*models.Garment, error) {
	filename := filepath.Base(path)

	info, err := os.Stat(path)
	if err != nil {
		return nil, unreadable(field, filename, fmt.Errorf("failed to stat %s: %w", path, err))
	}
	if info.IsDir() {
		return nil, unreadable(field, filename, fmt.Errorf("%s is a directory", path))
	}

	if err := l.check(field, filename, info.Size()); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, unreadable(field, filename, fmt.Errorf("failed to read %s: %w", path, err))
	}

	return &models.Garment{
		Field:       field,
		Filename:    filename,
		ContentType: DetectContentType(data, filename),
		Data:        data,
	}, nil
}

// LoadSelection reads the garments of a submitted form. Missing categories
// stay empty; completeness is checked by the recommender.
func (l *garmentLoader) LoadSelection(form *multipart.Form) (*models.Selection, error) {
	selection := &models.Selection{}
	if form == nil {
		return selection, nil
	}

	if file := firstFile(form.File[models.FieldTop]); file != nil {
		garment, err := l.FromFileHeader(file, models.FieldTop)
		if err != nil {
			return nil, err
		}
		selection.Top = garment
	}

	if file := firstFile(form.File[models.FieldBottom]); file != nil {
		garment, err := l.FromFileHeader(file, models.FieldBottom)
		if err != nil {
			return nil, err
		}
		selection.Bottom = garment
	}

	for _, file := range form.File[models.FieldShoes] {
		if isEmptySelection(file) {
			continue
		}
		garment, err := l.FromFileHeader(file, models.FieldShoes)
		if err != nil {
			return nil, err
		}
		selection.Shoes = append(selection.Shoes, *garment)
	}

	return selection, nil
}

// check enforces the size limit only. The format is left to the backend,
// so camera formats like HEIC or AVIF pass through untouched.
func (l *garmentLoader) check(field, filename string, size int64) error {
	if l.maxFileSize > 0 && size > l.maxFileSize {
		return &RecommendError{
			Kind:     KindValidation,
			Field:    field,
			Filename: filename,
			Limit:    l.maxFileSize,
			Err:      ErrFileTooLarge,
		}
	}
	return nil
}

func unreadable(field, filename string, err error) error {
	return &RecommendError{
		Kind:     KindValidation,
		Field:    field,
		Filename: filename,
		Err:      fmt.Errorf("%w: %w", ErrUnreadableFile, err),
	}
}

func firstFile(files []*multipart.FileHeader) *multipart.FileHeader {
	for _, file := range files {
		if !isEmptySelection(file) {
			return file
		}
	}
	return nil
}

// Browsers submit an untouched file input as a part with no filename.
func isEmptySelection(file *multipart.FileHeader) bool {
	return file == nil || (file.Filename == "" && file.Size == 0)
}
