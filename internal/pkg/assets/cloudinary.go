package assets

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryUploader relays images to Cloudinary.
type CloudinaryUploader struct {
	client *cloudinary.Cloudinary
}

// NewCloudinaryUploader creates an uploader from account credentials.
func NewCloudinaryUploader(cloudName, apiKey, apiSecret string) (*CloudinaryUploader, error) {
	client, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary client: %w", err)
	}
	return &CloudinaryUploader{client: client}, nil
}

// UploadImage uploads the image and returns its secure URL.
func (u *CloudinaryUploader) UploadImage(ctx context.Context, image string, opts UploadOptions) (string, error) {
	resp, err := u.client.Upload.Upload(ctx, image, uploader.UploadParams{
		Folder:    opts.Folder,
		PublicID:  opts.PublicID,
		Overwrite: api.Bool(opts.Overwrite),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	return resp.SecureURL, nil
}
