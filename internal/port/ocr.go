package port

import "context"

// OCRReader abstracts optical character recognition for scanned documents.
type OCRReader interface {
	ReadText(ctx context.Context, fileBytes []byte) (string, error)
}
