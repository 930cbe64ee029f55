package port

import (
	"context"

	"billsense/internal/classifier"
)

// ResultCache stores classification matrices keyed by a digest of the
// classified text. Get returns domain.ErrCacheMiss when the key is absent.
type ResultCache interface {
	Get(ctx context.Context, key string) (*classifier.Matrix, error)
	Set(ctx context.Context, key string, m *classifier.Matrix) error
}
