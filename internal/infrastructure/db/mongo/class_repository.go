package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/martialverse/booking-api/internal/core/domain"
	"github.com/martialverse/booking-api/internal/core/ports"
)

const classesCollection = "classes"

type ClassRepository struct {
	coll *mongo.Collection
}

func NewClassRepository(db *mongo.Database) *ClassRepository {
	return &ClassRepository{coll: db.Collection(classesCollection)}
}

type mongoClass struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Title           string             `bson:"title"`
	InstructorName  string             `bson:"instructor_name"`
	InstructorEmail string             `bson:"instructor_email"`
	Image           string             `bson:"image,omitempty"`
	Price           float64            `bson:"price"`
	Seats           int                `bson:"seats"`
	Booked          int                `bson:"booked"`
	Status          string             `bson:"status"`
	Feedback        string             `bson:"feedback,omitempty"`
	CreatedAt       int64              `bson:"created_at"`
}

func (mc mongoClass) toDomain() *domain.Class {
	return &domain.Class{
		ID:              mc.ID.Hex(),
		Title:           mc.Title,
		InstructorName:  mc.InstructorName,
		InstructorEmail: mc.InstructorEmail,
		Image:           mc.Image,
		Price:           mc.Price,
		Seats:           mc.Seats,
		Booked:          mc.Booked,
		Status:          domain.ClassStatus(mc.Status),
		Feedback:        mc.Feedback,
		CreatedAt:       unixToTime(mc.CreatedAt),
	}
}

func (r *ClassRepository) Insert(ctx context.Context, class *domain.Class) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, mongoClass{
		Title:           class.Title,
		InstructorName:  class.InstructorName,
		InstructorEmail: class.InstructorEmail,
		Image:           class.Image,
		Price:           class.Price,
		Seats:           class.Seats,
		Booked:          class.Booked,
		Status:          string(class.Status),
		CreatedAt:       class.CreatedAt.Unix(),
	})
	if err != nil {
		return "", fmt.Errorf("insert class: %w", err)
	}

	oid, _ := res.InsertedID.(primitive.ObjectID)
	return oid.Hex(), nil
}

func (r *ClassRepository) FindByID(ctx context.Context, id string) (*domain.Class, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	var mc mongoClass
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClassNotFound
		}
		return nil, fmt.Errorf("find class: %w", err)
	}
	return mc.toDomain(), nil
}

func (r *ClassRepository) List(ctx context.Context) ([]*domain.Class, error) {
	return r.find(ctx, bson.M{}, nil)
}

// ListPopular returns classes matching the enumerated filter, sorted by
// booked count descending. Only the filter's own keys reach the query.
func (r *ClassRepository) ListPopular(ctx context.Context, filter ports.PopularFilter) ([]*domain.Class, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.InstructorEmail != "" {
		query["instructor_email"] = filter.InstructorEmail
	}

	opts := options.Find().SetSort(bson.D{{Key: "booked", Value: -1}})
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}
	return r.find(ctx, query, opts)
}

func (r *ClassRepository) find(ctx context.Context, query bson.M, opts *options.FindOptions) ([]*domain.Class, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = r.coll.Find(ctx, query, opts)
	} else {
		cursor, err = r.coll.Find(ctx, query)
	}
	if err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	defer cursor.Close(ctx)

	classes := make([]*domain.Class, 0)
	for cursor.Next(ctx) {
		var mc mongoClass
		if err := cursor.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode class: %w", err)
		}
		classes = append(classes, mc.toDomain())
	}
	return classes, cursor.Err()
}

// SetCounters sets the provided seat/booked counters. Nil fields are left
// untouched. Counters move independently of moderation status.
func (r *ClassRepository) SetCounters(ctx context.Context, id string, update ports.CounterUpdate) (*ports.UpdateResult, error) {
	set := bson.M{}
	if update.Seats != nil {
		set["seats"] = *update.Seats
	}
	if update.Booked != nil {
		set["booked"] = *update.Booked
	}
	if len(set) == 0 {
		return &ports.UpdateResult{}, nil
	}
	return r.setFields(ctx, id, set)
}

func (r *ClassRepository) SetFeedback(ctx context.Context, id, feedback string) (*ports.UpdateResult, error) {
	return r.setFields(ctx, id, bson.M{"feedback": feedback})
}

func (r *ClassRepository) SetStatus(ctx context.Context, id string, status domain.ClassStatus) (*ports.UpdateResult, error) {
	return r.setFields(ctx, id, bson.M{"status": string(status)})
}

func (r *ClassRepository) setFields(ctx context.Context, id string, set bson.M) (*ports.UpdateResult, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("update class: %w", err)
	}
	return &ports.UpdateResult{Matched: res.MatchedCount, Modified: res.ModifiedCount}, nil
}

// EnsureIndexes creates the indexes serving the list and popular queries.
func (r *ClassRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "booked", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "instructor_email", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
