package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sweetshop/sweet-inventory/internal/core/domain"
)

const movementsCollection = "stock_movements"

// MovementRepository persists the stock movement audit trail.
type MovementRepository struct {
	col *mongo.Collection
}

func NewMovementRepository(db *mongo.Database) *MovementRepository {
	return &MovementRepository{col: db.Collection(movementsCollection)}
}

type movementDocument struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	SweetID       string             `bson:"sweet_id"`
	Kind          string             `bson:"kind"`
	Amount        int                `bson:"amount"`
	QuantityAfter int                `bson:"quantity_after"`
	ActorID       string             `bson:"actor_id"`
	At            time.Time          `bson:"at"`
	RecordedAt    time.Time          `bson:"recorded_at"`
}

// Insert writes a movement and sets its id.
func (r *MovementRepository) Insert(ctx context.Context, m *domain.StockMovement) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, movementDocument{
		SweetID:       m.SweetID,
		Kind:          string(m.Kind),
		Amount:        m.Amount,
		QuantityAfter: m.QuantityAfter,
		ActorID:       m.ActorID,
		At:            m.At.UTC(),
		RecordedAt:    time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		m.ID = oid.Hex()
	}
	return nil
}

// ListBySweet returns up to limit movements of a sweet, newest first.
func (r *MovementRepository) ListBySweet(ctx context.Context, sweetID string, limit int) ([]*domain.StockMovement, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "at", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(limit))
	cur, err := r.col.Find(ctx, bson.M{"sweet_id": sweetID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find movements: %w", err)
	}
	defer cur.Close(ctx)

	var docs []movementDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode movements: %w", err)
	}

	out := make([]*domain.StockMovement, len(docs))
	for i, d := range docs {
		out[i] = &domain.StockMovement{
			ID:            d.ID.Hex(),
			SweetID:       d.SweetID,
			Kind:          domain.MovementKind(d.Kind),
			Amount:        d.Amount,
			QuantityAfter: d.QuantityAfter,
			ActorID:       d.ActorID,
			At:            d.At.UTC(),
		}
	}
	return out, nil
}

// EnsureIndexes creates the lookup index on the movements collection.
func (r *MovementRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "sweet_id", Value: 1}, {Key: "at", Value: -1}},
	})
	return err
}
