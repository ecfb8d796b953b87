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

// Compile-time check to ensure InvestmentRepository implements the interface
var _ repositories.InvestmentRepository = (*InvestmentRepository)(nil)

// InvestmentRepository handles MongoDB operations for Investment
type InvestmentRepository struct {
	collection *mongo.Collection
}

// NewInvestmentRepository creates a new InvestmentRepository
func NewInvestmentRepository(db *mongo.Database) *InvestmentRepository {
	return &InvestmentRepository{
		collection: db.Collection("investments"),
	}
}

// dueFilter matches investments whose next payout is unset or at or before now.
func dueFilter(now time.Time) []bson.M {
	return []bson.M{
		{"nextPayout": bson.M{"$exists": false}},
		{"nextPayout": nil},
		{"nextPayout": bson.M{"$lte": now}},
	}
}

// Create inserts a new investment
func (r *InvestmentRepository) Create(ctx context.Context, investment *models.Investment) error {
	investment.ID = primitive.NewObjectID()
	investment.CreatedAt = time.Now()
	investment.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, investment)
	return err
}

// FindByID finds an investment by ID
func (r *InvestmentRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Investment, error) {
	var investment models.Investment
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&investment)
	if err != nil {
		return nil, err // Includes mongo.ErrNoDocuments
	}
	return &investment, nil
}

// FindByUserID finds investments for a user with pagination
func (r *InvestmentRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID, page, limit int) ([]*models.Investment, error) {
	opts := options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit)).
		SetSort(bson.M{"startDate": -1})

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var investments []*models.Investment
	if err := cursor.All(ctx, &investments); err != nil {
		return nil, err
	}
	if investments == nil {
		investments = []*models.Investment{}
	}
	return investments, nil
}

// FindAll retrieves all investments with pagination
func (r *InvestmentRepository) FindAll(ctx context.Context, page, limit int) ([]*models.Investment, error) {
	opts := options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit)).
		SetSort(bson.M{"startDate": -1})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var investments []*models.Investment
	if err := cursor.All(ctx, &investments); err != nil {
		return nil, err
	}
	if investments == nil {
		investments = []*models.Investment{}
	}
	return investments, nil
}

// FindDue returns active investments that are due for an accrual payout
func (r *InvestmentRepository) FindDue(ctx context.Context, now time.Time) ([]*models.Investment, error) {
	filter := bson.M{
		"status": models.InvestmentActive,
		"$or":    dueFilter(now),
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var investments []*models.Investment
	if err := cursor.All(ctx, &investments); err != nil {
		return nil, err
	}
	if investments == nil {
		investments = []*models.Investment{}
	}
	return investments, nil
}

// ClaimPayout advances nextPayout and credits totalEarnings in one
// conditional write. The filter re-checks that the investment is still
// active and still due, so overlapping sweeps cannot both claim the same
// payout cycle.
func (r *InvestmentRepository) ClaimPayout(ctx context.Context, id primitive.ObjectID, now, next time.Time, profit float64) (bool, error) {
	filter := bson.M{
		"_id":    id,
		"status": models.InvestmentActive,
		"$or":    dueFilter(now),
	}
	update := bson.M{
		"$set": bson.M{"nextPayout": next, "updatedAt": now},
		"$inc": bson.M{"totalEarnings": profit},
	}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return result.ModifiedCount == 1, nil
}

// Complete transitions an investment from active to completed
func (r *InvestmentRepository) Complete(ctx context.Context, id primitive.ObjectID, now time.Time) (bool, error) {
	filter := bson.M{
		"_id":    id,
		"status": models.InvestmentActive,
	}
	update := bson.M{
		"$set": bson.M{"status": models.InvestmentCompleted, "updatedAt": now},
	}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return result.ModifiedCount == 1, nil
}

// UpdateStatus sets the lifecycle status of an investment
func (r *InvestmentRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.InvestmentStatus) error {
	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Count counts all investments
func (r *InvestmentRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
