package form

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"

	"plantstore-admin/internal/model"
)

// BannerForm edits the single banner of one type. The backend keeps at most
// one record per type, so Save either creates or updates depending on
// whether the form was seeded from an existing record.
type BannerForm struct {
	bannerType  string
	description string
	upload      *Upload
	existingID  string
	previewURL  string
}

func NewBannerForm(bannerType string) *BannerForm {
	return &BannerForm{bannerType: bannerType}
}

// Seed fills the form from the current banner of this type, if one exists.
func (f *BannerForm) Seed(b *model.Banner) {
	if b == nil {
		return
	}
	f.existingID = b.ID
	f.description = b.Description
	f.previewURL = b.ImageURL
}

func (f *BannerForm) Type() string        { return f.bannerType }
func (f *BannerForm) ExistingID() string  { return f.existingID }
func (f *BannerForm) Description() string { return f.description }

// PreviewURL is the attached file's preview when one is staged, otherwise the
// existing banner image.
func (f *BannerForm) PreviewURL() string { return f.previewURL }

func (f *BannerForm) SetDescription(description string) {
	f.description = description
}

// AttachImage stages the replacement image. Oversized files are rejected and
// leave the form unchanged.
func (f *BannerForm) AttachImage(filename string, data []byte) (string, error) {
	up, err := newUpload(filename, data)
	if err != nil {
		return "", err
	}
	f.upload = up
	f.previewURL = up.PreviewURL
	return up.PreviewURL, nil
}

// Validate requires a description always, and an image only when there is no
// existing record to fall back on.
func (f *BannerForm) Validate() Errors {
	errs := Errors{}
	if f.description == "" {
		errs["description"] = "Please enter a description"
	}
	if f.existingID == "" && f.upload == nil {
		errs["image"] = "Please select an image"
	}
	return errs
}

// Payload assembles the multipart body: type and description as text fields,
// the staged image (if any) as a binary part named "file".
func (f *BannerForm) Payload() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("type", f.bannerType); err != nil {
		return nil, "", fmt.Errorf("write type: %w", err)
	}
	if err := w.WriteField("description", f.description); err != nil {
		return nil, "", fmt.Errorf("write description: %w", err)
	}

	if f.upload != nil {
		part, err := w.CreateFormFile("file", f.upload.Filename)
		if err != nil {
			return nil, "", fmt.Errorf("create file part: %w", err)
		}
		if _, err := part.Write(f.upload.Data); err != nil {
			return nil, "", fmt.Errorf("write file part: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}

	return &buf, w.FormDataContentType(), nil
}
