package reservation

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Reserve(ctx context.Context, input ReserveInput) (ReserveOutput, error)
	Unreserve(ctx context.Context, input UnreserveInput) error
	Transfer(ctx context.Context, input TransferInput) (TransferOutput, error)
}
