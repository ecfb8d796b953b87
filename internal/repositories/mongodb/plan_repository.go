package mongodb

import (
	"context"
	"time"

	"github.com/codeAKstan/NexaVault-sub000/internal/models"
	"github.com/codeAKstan/NexaVault-sub000/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time check to ensure PlanRepository implements the interface
var _ repositories.PlanRepository = (*PlanRepository)(nil)

// PlanRepository handles MongoDB operations for Plan
type PlanRepository struct {
	collection *mongo.Collection
}

// NewPlanRepository creates a new PlanRepository
func NewPlanRepository(db *mongo.Database) *PlanRepository {
	return &PlanRepository{
		collection: db.Collection("plans"),
	}
}

// Create inserts a new plan
func (r *PlanRepository) Create(ctx context.Context, plan *models.Plan) error {
	plan.ID = primitive.NewObjectID()
	plan.CreatedAt = time.Now()
	plan.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, plan)
	return err
}

// FindByID finds a plan by ID
func (r *PlanRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Plan, error) {
	var plan models.Plan
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&plan)
	if err != nil {
		return nil, err // Includes mongo.ErrNoDocuments
	}
	return &plan, nil
}

// FindAll retrieves all plans ordered by price
func (r *PlanRepository) FindAll(ctx context.Context) ([]*models.Plan, error) {
	opts := options.Find().SetSort(bson.M{"minPrice": 1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var plans []*models.Plan
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, err
	}
	if plans == nil {
		plans = []*models.Plan{}
	}
	return plans, nil
}

// Update updates an existing plan
func (r *PlanRepository) Update(ctx context.Context, plan *models.Plan) error {
	plan.UpdatedAt = time.Now()
	filter := bson.M{"_id": plan.ID}
	update := bson.M{"$set": plan}
	_, err := r.collection.UpdateOne(ctx, filter, update)
	return err
}

// Delete deletes a plan by ID
func (r *PlanRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
