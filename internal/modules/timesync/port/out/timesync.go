package out

import (
	"context"
	"time"
)

// ReferenceClient queries a single time reference and returns the offset to
// add to the local clock. One call, one server, bounded by timeout.
type ReferenceClient interface {
	Query(ctx context.Context, server string, timeout time.Duration) (time.Duration, error)
}
