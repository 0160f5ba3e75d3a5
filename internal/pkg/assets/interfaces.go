package assets

import "context"

// UploadOptions controls where an image lands on the asset host.
type UploadOptions struct {
	Folder    string // logical folder on the asset host
	PublicID  string // stable id; uploads with the same id overwrite
	Overwrite bool
}

// Uploader relays an inbound image payload (a base64 data URI or a remote
// URL) to an external asset host and returns the hosted URL.
type Uploader interface {
	UploadImage(ctx context.Context, image string, opts UploadOptions) (string, error)
}
