package models

// CustomerEvent is published to Kafka after a customer record mutation.
type CustomerEvent struct {
	EventID    string `json:"event_id"`    // Unique event identifier
	Operation  string `json:"operation"`   // "created", "updated" or "deleted"
	CustomerID string `json:"customer_id"` // Mutated record
	OwnerID    string `json:"owner_id"`    // Owning user
	Timestamp  int64  `json:"timestamp"`   // Unix time of the mutation
}
