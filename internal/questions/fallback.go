package questions

import (
	"context"
	"errors"
	"log"
)

// Fallback implements Source by trying a primary source and falling back to
// a secondary one when the primary fails.
type Fallback struct {
	primary  Source
	fallback Source
}

// NewFallback creates a fallback question source
func NewFallback(primary, fallback Source) (*Fallback, error) {
	if primary == nil || fallback == nil {
		return nil, errors.New("primary and fallback sources cannot be nil")
	}

	return &Fallback{
		primary:  primary,
		fallback: fallback,
	}, nil
}

// Generate tries the primary source and serves the fallback on failure
func (f *Fallback) Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	out, err := f.primary.Generate(ctx, input)
	if err == nil {
		return out, nil
	}

	log.Printf("primary question source failed, using fallback: %v", err)
	return f.fallback.Generate(ctx, input)
}
