package coindesk

import "context"

type FeedClient interface {
	CurrentPrice(ctx context.Context) *Snapshot
}
