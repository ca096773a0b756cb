package handler

import "github.com/agrilink/farm-market/internal/core/ports"

// ActivityRecorder is the interface handlers use to push entries onto the
// marketplace activity feed. Implemented by the queue dispatcher; recording
// is best-effort and never blocks the request.
type ActivityRecorder interface {
	Record(input ports.ActivityInput)
}
