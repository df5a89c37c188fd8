// Package refcheck validates foreign references before a write. All
// services use the same helper so a dangling reference always produces
// the same 400-class error.
package refcheck

import (
	"context"

	"github.com/fittrack-app/fittrack/internal/app/apperr"
)

// ExistsFunc reports whether the entity with the given ID exists.
type ExistsFunc func(ctx context.Context, id string) (bool, error)

// Assert returns an Invalid error naming the entity when the referenced
// ID does not exist, and passes store errors through untouched.
func Assert(ctx context.Context, entity, id string, exists ExistsFunc) error {
	ok, err := exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.Invalidf("%s %q does not exist", entity, id)
	}
	return nil
}
