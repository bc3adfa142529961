package item

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, input CreateItemInput) (CreateItemOutput, error)
	Detail(ctx context.Context, input DetailItemInput) (DetailItemOutput, error)
	List(ctx context.Context, input ListItemsInput) (ListItemsOutput, error)
	Update(ctx context.Context, input UpdateItemInput) (UpdateItemOutput, error)
	Delete(ctx context.Context, input DeleteItemInput) error
	DeleteAll(ctx context.Context, input DeleteAllItemsInput) (DeleteAllItemsOutput, error)
	Move(ctx context.Context, input MoveItemInput) (MoveItemOutput, error)
	Receive(ctx context.Context, input ReceiveItemInput) (ReceiveItemOutput, error)
	Archive(ctx context.Context, input ArchiveItemInput) (ArchiveItemOutput, error)
	Unarchive(ctx context.Context, input ArchiveItemInput) (ArchiveItemOutput, error)
}
