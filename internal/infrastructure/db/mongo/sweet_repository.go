package mongo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sweetshop/sweet-inventory/internal/core/domain"
)

const sweetsCollection = "sweets"

// SweetRepository stores sweets and owns the atomic stock updates.
type SweetRepository struct {
	col *mongo.Collection
	now func() time.Time
}

func NewSweetRepository(db *mongo.Database) *SweetRepository {
	return &SweetRepository{
		col: db.Collection(sweetsCollection),
		now: func() time.Time { return time.Now().UTC() },
	}
}

type sweetDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Category  string             `bson:"category"`
	Price     float64            `bson:"price"`
	Quantity  int                `bson:"quantity"`
	ImageURL  string             `bson:"image_url,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (d sweetDocument) toDomain() *domain.Sweet {
	return &domain.Sweet{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Category:  d.Category,
		Price:     d.Price,
		Quantity:  d.Quantity,
		ImageURL:  d.ImageURL,
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}

// Create inserts a new sweet document.
func (r *SweetRepository) Create(ctx context.Context, s *domain.Sweet) (*domain.Sweet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := sweetDocument{
		Name:      s.Name,
		Category:  s.Category,
		Price:     s.Price,
		Quantity:  s.Quantity,
		ImageURL:  s.ImageURL,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrSweetExists
		}
		return nil, fmt.Errorf("insert sweet: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("insert sweet: unexpected id type %T", res.InsertedID)
	}
	doc.ID = oid
	return doc.toDomain(), nil
}

// FindByID retrieves a sweet by its hex id.
func (r *SweetRepository) FindByID(ctx context.Context, id string) (*domain.Sweet, error) {
	oid, err := parseSweetID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc sweetDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if isNoDocuments(err) {
			return nil, domain.ErrSweetNotFound
		}
		return nil, fmt.Errorf("find sweet: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *SweetRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{"name": name}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count sweets: %w", err)
	}
	return n > 0, nil
}

// List returns sweets matching the filter, newest first.
func (r *SweetRepository) List(ctx context.Context, f domain.SweetFilter) ([]*domain.Sweet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := r.col.Find(ctx, buildSweetFilter(f), opts)
	if err != nil {
		return nil, fmt.Errorf("find sweets: %w", err)
	}
	defer cur.Close(ctx)

	var docs []sweetDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode sweets: %w", err)
	}

	out := make([]*domain.Sweet, len(docs))
	for i, d := range docs {
		out[i] = d.toDomain()
	}
	return out, nil
}

// buildSweetFilter turns a search filter into a query: case-insensitive
// substring on name and category, inclusive price bounds.
func buildSweetFilter(f domain.SweetFilter) bson.M {
	filter := bson.M{}
	if f.Name != "" {
		filter["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.Name), Options: "i"}
	}
	if f.Category != "" {
		filter["category"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.Category), Options: "i"}
	}
	if f.MinPrice != nil || f.MaxPrice != nil {
		price := bson.M{}
		if f.MinPrice != nil {
			price["$gte"] = *f.MinPrice
		}
		if f.MaxPrice != nil {
			price["$lte"] = *f.MaxPrice
		}
		filter["price"] = price
	}
	return filter
}

// Update sets the patched fields. Quantity, when present, is overwritten
// without any stock guard.
func (r *SweetRepository) Update(ctx context.Context, id string, p domain.SweetPatch) (*domain.Sweet, error) {
	oid, err := parseSweetID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updated_at": r.now()}
	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.Category != nil {
		set["category"] = *p.Category
	}
	if p.Price != nil {
		set["price"] = *p.Price
	}
	if p.Quantity != nil {
		set["quantity"] = *p.Quantity
	}
	if p.ImageURL != nil {
		set["image_url"] = *p.ImageURL
	}

	return r.findOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, domain.ErrSweetNotFound)
}

func (r *SweetRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseSweetID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete sweet: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrSweetNotFound
	}
	return nil
}

// Decrement atomically subtracts amount when the sweet holds at least that
// many units. The quantity guard is part of the filter, so concurrent calls
// can never take stock below zero.
func (r *SweetRepository) Decrement(ctx context.Context, id string, amount int) (*domain.Sweet, error) {
	oid, err := parseSweetID(id)
	if err != nil {
		return nil, err
	}

	filter := bson.M{"_id": oid, "quantity": bson.M{"$gte": amount}}
	update := bson.M{
		"$inc": bson.M{"quantity": -amount},
		"$set": bson.M{"updated_at": r.now()},
	}
	return r.findOneAndUpdate(ctx, filter, update, domain.ErrInsufficientStockOrNotFound)
}

// Increment atomically adds amount to the sweet's quantity.
func (r *SweetRepository) Increment(ctx context.Context, id string, amount int) (*domain.Sweet, error) {
	oid, err := parseSweetID(id)
	if err != nil {
		return nil, err
	}

	update := bson.M{
		"$inc": bson.M{"quantity": amount},
		"$set": bson.M{"updated_at": r.now()},
	}
	return r.findOneAndUpdate(ctx, bson.M{"_id": oid}, update, domain.ErrSweetNotFound)
}

func (r *SweetRepository) findOneAndUpdate(ctx context.Context, filter, update bson.M, noMatch error) (*domain.Sweet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc sweetDocument
	if err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc); err != nil {
		if isNoDocuments(err) {
			return nil, noMatch
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrSweetExists
		}
		return nil, fmt.Errorf("update sweet: %w", err)
	}
	return doc.toDomain(), nil
}

// UpsertByName inserts the sweets whose names are not yet taken. Existing
// sweets keep their stock; only the image is refreshed. It returns the
// number of inserted documents.
func (r *SweetRepository) UpsertByName(ctx context.Context, sweets []domain.Sweet) (int64, error) {
	if len(sweets) == 0 {
		return 0, nil
	}

	now := r.now()
	models := make([]mongo.WriteModel, 0, len(sweets))
	for _, s := range sweets {
		update := bson.M{
			"$setOnInsert": bson.M{
				"category":   s.Category,
				"price":      s.Price,
				"quantity":   s.Quantity,
				"created_at": now,
				"updated_at": now,
			},
		}
		if s.ImageURL != "" {
			update["$set"] = bson.M{"image_url": s.ImageURL}
		}
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"name": s.Name}).
			SetUpdate(update).
			SetUpsert(true))
	}

	res, err := r.col.BulkWrite(ctx, models)
	if err != nil {
		return 0, fmt.Errorf("upsert sweets: %w", err)
	}
	return res.UpsertedCount, nil
}

// EnsureIndexes creates the indexes on the sweets collection.
func (r *SweetRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
