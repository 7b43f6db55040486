package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/martialverse/booking-api/internal/core/domain"
)

const paymentsCollection = "payments"

type PaymentRepository struct {
	coll *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{coll: db.Collection(paymentsCollection)}
}

type mongoPayment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Email         string             `bson:"email"`
	Price         float64            `bson:"price"`
	TransactionID string             `bson:"transaction_id"`
	SelectionIDs  []string           `bson:"selection_ids"`
	ClassIDs      []string           `bson:"class_ids,omitempty"`
	Date          time.Time          `bson:"date"`
}

func (mp mongoPayment) toDomain() *domain.Payment {
	return &domain.Payment{
		ID:            mp.ID.Hex(),
		Email:         mp.Email,
		Price:         mp.Price,
		TransactionID: mp.TransactionID,
		SelectionIDs:  mp.SelectionIDs,
		ClassIDs:      mp.ClassIDs,
		Date:          mp.Date.UTC(),
	}
}

func (r *PaymentRepository) Insert(ctx context.Context, p *domain.Payment) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, mongoPayment{
		Email:         p.Email,
		Price:         p.Price,
		TransactionID: p.TransactionID,
		SelectionIDs:  p.SelectionIDs,
		ClassIDs:      p.ClassIDs,
		Date:          p.Date,
	})
	if err != nil {
		return "", fmt.Errorf("insert payment: %w", err)
	}

	oid, _ := res.InsertedID.(primitive.ObjectID)
	return oid.Hex(), nil
}

// ListByEmail returns a user's payments sorted by date descending.
func (r *PaymentRepository) ListByEmail(ctx context.Context, email string) ([]*domain.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer cursor.Close(ctx)

	payments := make([]*domain.Payment, 0)
	for cursor.Next(ctx) {
		var mp mongoPayment
		if err := cursor.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode payment: %w", err)
		}
		payments = append(payments, mp.toDomain())
	}
	return payments, cursor.Err()
}

// EnsureIndexes creates the email+date index serving the history listing.
func (r *PaymentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}, {Key: "date", Value: -1}},
	})
	return err
}
