package form

import (
	"fmt"

	"github.com/google/uuid"
)

// MaxUploadSize caps image uploads at 10MiB, matching the backend's limit so
// oversized files are rejected before any network call.
const MaxUploadSize = 10 * 1024 * 1024

// Upload is one attached file plus the preview handle scoped to the form's
// lifetime.
type Upload struct {
	Filename   string
	Data       []byte
	PreviewURL string
}

func newUpload(filename string, data []byte) (*Upload, error) {
	if int64(len(data)) > MaxUploadSize {
		return nil, fmt.Errorf("file size too large: %s exceeds the %s limit",
			FormatBytes(int64(len(data))), FormatBytes(MaxUploadSize))
	}
	return &Upload{
		Filename:   filename,
		Data:       data,
		PreviewURL: "preview://" + uuid.NewString() + "/" + filename,
	}, nil
}
