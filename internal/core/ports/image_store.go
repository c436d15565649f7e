package ports

import (
	"context"
)

// ImageStore abstracts the object storage holding order images. The
// orchestrator never uploads; it only releases references when an order
// sheds its images (edits, terminal transitions, retention sweep).
type ImageStore interface {
	// Remove deletes the stored objects for the given references.
	// Missing objects are not an error.
	Remove(ctx context.Context, refs []string) error
}
