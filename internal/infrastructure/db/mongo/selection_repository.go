package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/martialverse/booking-api/internal/core/domain"
)

const selectionsCollection = "select_classes"

type SelectionRepository struct {
	coll *mongo.Collection
}

func NewSelectionRepository(db *mongo.Database) *SelectionRepository {
	return &SelectionRepository{coll: db.Collection(selectionsCollection)}
}

type mongoSelection struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Email      string             `bson:"email"`
	ClassID    string             `bson:"class_id"`
	ClassTitle string             `bson:"class_title,omitempty"`
	Image      string             `bson:"image,omitempty"`
	Price      float64            `bson:"price"`
	CreatedAt  int64              `bson:"created_at"`
}

func (ms mongoSelection) toDomain() *domain.Selection {
	return &domain.Selection{
		ID:         ms.ID.Hex(),
		Email:      ms.Email,
		ClassID:    ms.ClassID,
		ClassTitle: ms.ClassTitle,
		Image:      ms.Image,
		Price:      ms.Price,
		CreatedAt:  unixToTime(ms.CreatedAt),
	}
}

func (r *SelectionRepository) Insert(ctx context.Context, sel *domain.Selection) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, mongoSelection{
		Email:      sel.Email,
		ClassID:    sel.ClassID,
		ClassTitle: sel.ClassTitle,
		Image:      sel.Image,
		Price:      sel.Price,
		CreatedAt:  sel.CreatedAt.Unix(),
	})
	if err != nil {
		return "", fmt.Errorf("insert selection: %w", err)
	}

	oid, _ := res.InsertedID.(primitive.ObjectID)
	return oid.Hex(), nil
}

func (r *SelectionRepository) ListByEmail(ctx context.Context, email string) ([]*domain.Selection, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("list selections: %w", err)
	}
	defer cursor.Close(ctx)

	selections := make([]*domain.Selection, 0)
	for cursor.Next(ctx) {
		var ms mongoSelection
		if err := cursor.Decode(&ms); err != nil {
			return nil, fmt.Errorf("decode selection: %w", err)
		}
		selections = append(selections, ms.toDomain())
	}
	return selections, cursor.Err()
}

func (r *SelectionRepository) Delete(ctx context.Context, id string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, domain.ErrInvalidID
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("delete selection: %w", err)
	}
	return res.DeletedCount, nil
}

// DeleteByIDs removes every row whose id is in ids. Unknown ids are
// silently skipped; malformed ids fail the whole call.
func (r *SelectionRepository) DeleteByIDs(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return 0, domain.ErrInvalidID
		}
		oids = append(oids, oid)
	}

	res, err := r.coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return 0, fmt.Errorf("delete selections: %w", err)
	}
	return res.DeletedCount, nil
}

// EnsureIndexes creates the email index serving the per-user cart listing.
func (r *SelectionRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
	})
	return err
}
