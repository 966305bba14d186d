package i

import (
	"context"

	"github.com/beka-birhanu/maze-solver-api/search"
)

// ResultCache caches search results keyed by maze and strategy.
// A miss is reported as (nil, nil), not as an error.
type ResultCache interface {
	Get(ctx context.Context, key string) (*search.Result, error)
	Set(ctx context.Context, key string, result *search.Result) error
}
