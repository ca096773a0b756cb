package ports

import (
	"context"
	"time"
)

// ActivityInput is the DTO handed from the dispatcher to ActivityService.
type ActivityInput struct {
	Kind      string
	ActorID   string
	Subject   string
	Timestamp time.Time
}

// ActivityService processes activity feed entries off the request path.
type ActivityService interface {
	Process(ctx context.Context, input ActivityInput) error
}
