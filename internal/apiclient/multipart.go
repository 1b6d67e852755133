package apiclient

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strconv"

	"github.com/blogdeck/blogdeck/internal/domain/model"
)

// encodePostSubmission renders a post create/update as a
// multipart/form-data body. Text fields become text parts, topics repeat
// one part per chip, and the image, when present, becomes a binary part
// carrying its original content type.
func encodePostSubmission(req model.PostSubmission) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := [][2]string{
		{"title", req.Title},
		{"description", req.Description},
		{"blogContents", req.BlogContents},
		{"isPublished", strconv.FormatBool(req.IsPublished)},
	}
	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", f[0], err)
		}
	}
	for _, topic := range req.Topics {
		if err := w.WriteField("topics", topic); err != nil {
			return nil, "", fmt.Errorf("write topic: %w", err)
		}
	}

	if req.Image != nil {
		if err := writeFilePart(w, "image", req.Image); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("finalize multipart body: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

// encodeAccountUpdate renders an account-details update as a
// multipart/form-data body.
func encodeAccountUpdate(req model.AccountUpdate) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("displayName", req.DisplayName); err != nil {
		return nil, "", fmt.Errorf("write field displayName: %w", err)
	}
	if req.Avatar != nil {
		if err := writeFilePart(w, "pfp", req.Avatar); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("finalize multipart body: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

// writeFilePart adds a binary part with an explicit Content-Type header.
// multipart.Writer.CreateFormFile hardcodes application/octet-stream, so
// the header is built by hand.
func writeFilePart(w *multipart.Writer, field string, up *model.Upload) error {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, up.Filename))
	h.Set("Content-Type", up.ContentType)

	part, err := w.CreatePart(h)
	if err != nil {
		return fmt.Errorf("create %s part: %w", field, err)
	}
	if _, err := part.Write(up.Data); err != nil {
		return fmt.Errorf("write %s part: %w", field, err)
	}
	return nil
}
