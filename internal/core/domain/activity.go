package domain

import "time"

// Activity kinds recorded on the marketplace feed.
const (
	ActivityUserRegistered  = "user_registered"
	ActivityProductCreated  = "product_created"
	ActivityAdviceRequested = "advice_requested"
	ActivityDiseaseChecked  = "disease_checked"
)

// Activity is a single entry on the marketplace activity feed. Entries are
// recorded asynchronously and aggregated by kind for the stats endpoint.
type Activity struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Kind      string    `json:"kind" bson:"kind"`
	ActorID   string    `json:"actor_id" bson:"actor_id"`
	Subject   string    `json:"subject,omitempty" bson:"subject,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
