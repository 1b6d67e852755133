package httpx

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/blogdeck/blogdeck/internal/domain/model"
)

// Upload limits enforced locally before anything is sent upstream.
const (
	// MaxPostImageBytes caps post cover images.
	MaxPostImageBytes = 5_000_000
	// MaxAvatarBytes caps account avatars.
	MaxAvatarBytes = 4_000_000
)

// allowedImageTypes lists the content types accepted for uploads.
// image/jpg is not a real media type but browsers have been seen
// sending it, so it is accepted alongside image/jpeg.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

// readImageUpload extracts an optional image file from a multipart form.
// It returns (nil, "") when the field is absent, and an error message
// when the file violates the size or type rules. A rejected file never
// reaches the platform.
func readImageUpload(r *http.Request, field string, maxBytes int64) (*model.Upload, string) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, ""
	}
	if err != nil {
		return nil, "The selected file could not be read."
	}
	defer func() { _ = file.Close() }()

	if header.Size > maxBytes {
		return nil, fmt.Sprintf("Image must be smaller than %d bytes.", maxBytes)
	}

	contentType := header.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		return nil, "Image must be a JPEG, PNG or WebP file."
	}

	// Size is re-checked while reading; Content-Length can lie.
	data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		return nil, "The selected file could not be read."
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Sprintf("Image must be smaller than %d bytes.", maxBytes)
	}

	return &model.Upload{
		Filename:    header.Filename,
		ContentType: contentType,
		Data:        data,
	}, ""
}
