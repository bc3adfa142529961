package collector

import "context"

// UseCase reconciles the image store against the item table, deleting files
// no item references. It is scheduled from outside; one call is one run.
type UseCase interface {
	Collect(ctx context.Context) (Report, error)
}
