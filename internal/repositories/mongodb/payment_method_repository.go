package mongodb

import (
	"context"
	"time"

	"github.com/codeAKstan/NexaVault-sub000/internal/models"
	"github.com/codeAKstan/NexaVault-sub000/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Compile-time check to ensure PaymentMethodRepository implements the interface
var _ repositories.PaymentMethodRepository = (*PaymentMethodRepository)(nil)

// PaymentMethodRepository handles MongoDB operations for PaymentMethod
type PaymentMethodRepository struct {
	collection *mongo.Collection
}

// NewPaymentMethodRepository creates a new PaymentMethodRepository
func NewPaymentMethodRepository(db *mongo.Database) *PaymentMethodRepository {
	return &PaymentMethodRepository{
		collection: db.Collection("paymentmethods"),
	}
}

// Create inserts a new payment method
func (r *PaymentMethodRepository) Create(ctx context.Context, method *models.PaymentMethod) error {
	method.ID = primitive.NewObjectID()
	method.CreatedAt = time.Now()
	method.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, method)
	return err
}

// FindByID finds a payment method by ID
func (r *PaymentMethodRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.PaymentMethod, error) {
	var method models.PaymentMethod
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&method)
	if err != nil {
		return nil, err
	}
	return &method, nil
}

func (r *PaymentMethodRepository) find(ctx context.Context, filter bson.M) ([]*models.PaymentMethod, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var methods []*models.PaymentMethod
	if err := cursor.All(ctx, &methods); err != nil {
		return nil, err
	}
	if methods == nil {
		methods = []*models.PaymentMethod{}
	}
	return methods, nil
}

// FindAll retrieves all payment methods
func (r *PaymentMethodRepository) FindAll(ctx context.Context) ([]*models.PaymentMethod, error) {
	return r.find(ctx, bson.M{})
}

// FindEnabled retrieves the payment methods shown to users
func (r *PaymentMethodRepository) FindEnabled(ctx context.Context) ([]*models.PaymentMethod, error) {
	return r.find(ctx, bson.M{"enabled": true})
}

// Update updates an existing payment method
func (r *PaymentMethodRepository) Update(ctx context.Context, method *models.PaymentMethod) error {
	method.UpdatedAt = time.Now()
	filter := bson.M{"_id": method.ID}
	update := bson.M{"$set": method}
	_, err := r.collection.UpdateOne(ctx, filter, update)
	return err
}

// Delete deletes a payment method by ID
func (r *PaymentMethodRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
