package domain

import "time"

// MovementKind identifies what changed a sweet's stock.
type MovementKind string

const (
	MovementPurchase MovementKind = "purchase"
	MovementRestock  MovementKind = "restock"
)

// StockMovement is an audit record of a successful stock mutation.
type StockMovement struct {
	ID            string       `json:"_id,omitempty"`
	SweetID       string       `json:"sweetId"`
	Kind          MovementKind `json:"kind"`
	Amount        int          `json:"amount"`
	QuantityAfter int          `json:"quantityAfter"`
	ActorID       string       `json:"actorId"`
	At            time.Time    `json:"at"`
}
