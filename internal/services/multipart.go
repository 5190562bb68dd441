package services

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"

	"aitrustyou/outfit-recommender/internal/models"
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// BuildMultipartBody writes the selection as multipart form data: one "top"
// part, one "bottom" part and one "shoes" part per shoe, in selection order.
// It returns the body and its Content-Type header value.
func BuildMultipartBody(selection *models.Selection) (*bytes.Buffer, string, error) {
	if !selection.Complete() {
		return nil, "", ErrMissingGarments
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if err := writeGarment(writer, models.FieldTop, selection.Top); err != nil {
		return nil, "", err
	}
	if err := writeGarment(writer, models.FieldBottom, selection.Bottom); err != nil {
		return nil, "", err
	}
	for i := range selection.Shoes {
		if err := writeGarment(writer, models.FieldShoes, &selection.Shoes[i]); err != nil {
			return nil, "", err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close multipart writer: %w", err)
	}

	return body, writer.FormDataContentType(), nil
}

func writeGarment(writer *multipart.Writer, field string, garment *models.Garment) error {
	filename := garment.Filename
	if filename == "" {
		filename = field
	}

	contentType := garment.ContentType
	if contentType == "" {
		contentType = DetectContentType(garment.Data, filename)
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="%s"; filename="%s"`, quoteEscaper.Replace(field), quoteEscaper.Replace(filename)))
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return fmt.Errorf("failed to create %s part: %w", field, err)
	}
	if _, err := part.Write(garment.Data); err != nil {
		return fmt.Errorf("failed to write %s part: %w", field, err)
	}

	return nil
}
