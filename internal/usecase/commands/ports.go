package commands

import "context"

// ImageStore is the external collaborator holding room photos. Delete
// failures during room update/delete are tolerated by callers.
type ImageStore interface {
	Upload(ctx context.Context, data []byte, name string) (string, error)
	Delete(ctx context.Context, url string) error
}
