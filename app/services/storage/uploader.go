package storage

import (
	"bytes"
	"context"
	"fmt"

	cld "github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Uploader stores an uploaded file and returns its public URL.
type Uploader interface {
	UploadBytes(ctx context.Context, folder, filename string, b []byte) (string, error)
}

type CloudinaryUploader struct {
	cld *cld.Cloudinary
}

// NewCloudinaryUploader builds an uploader from a cloudinary:// URL. Returns
// an error when the URL is empty so callers can fail at startup rather than
// on first upload.
func NewCloudinaryUploader(cloudinaryURL string) (*CloudinaryUploader, error) {
	if cloudinaryURL == "" {
		return nil, fmt.Errorf("CLOUDINARY_URL is not set")
	}
	c, err := cld.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, err
	}
	return &CloudinaryUploader{cld: c}, nil
}

func (u *CloudinaryUploader) UploadBytes(ctx context.Context, folder, filename string, b []byte) (string, error) {
	res, err := u.cld.Upload.Upload(ctx, bytes.NewReader(b), uploader.UploadParams{
		Folder:       folder,
		PublicID:     filename,
		ResourceType: "auto",
	})
	if err != nil {
		return "", err
	}
	return res.SecureURL, nil
}
