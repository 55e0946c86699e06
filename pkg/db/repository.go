package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Syed-Muaarij-Nadeem/LabFinalWeb/pkg/log"
	"github.com/Syed-Muaarij-Nadeem/LabFinalWeb/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository provides typed accessors for the entity collections
type Repository struct {
	db *DB
}

// NewRepository creates a new repository instance
func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) DB() *DB {
	return r.db
}

// HealthCheck reports whether the database is reachable
func (r *Repository) HealthCheck(ctx context.Context) error {
	return r.db.HealthCheck(ctx)
}

// logQuery records report query timings through the shared logger
func logQuery(operation, collection string, start time.Time, documents int) {
	if logger := log.GetLogger(); logger != nil {
		logger.LogDatabase(operation, collection, time.Since(start).Milliseconds(), int64(documents))
	}
}

// Attraction repository methods

func (r *Repository) ListAttractions(ctx context.Context) ([]models.Attraction, error) {
	cursor, err := r.db.Attractions().Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list attractions: %w", err)
	}

	attractions := []models.Attraction{}
	if err := cursor.All(ctx, &attractions); err != nil {
		return nil, fmt.Errorf("failed to decode attractions: %w", err)
	}
	return attractions, nil
}

func (r *Repository) GetAttraction(ctx context.Context, id primitive.ObjectID) (*models.Attraction, error) {
	var attraction models.Attraction
	err := r.db.Attractions().FindOne(ctx, bson.M{"_id": id}).Decode(&attraction)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get attraction: %w", err)
	}
	return &attraction, nil
}

func (r *Repository) CreateAttraction(ctx context.Context, attraction *models.Attraction) error {
	if err := validateAttraction(attraction); err != nil {
		return err
	}

	result, err := r.db.Attractions().InsertOne(ctx, attraction)
	if err != nil {
		return fmt.Errorf("failed to create attraction: %w", err)
	}
	attraction.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// attractionUpdate builds the $set document covering every attraction field
func attractionUpdate(attraction models.Attraction) bson.M {
	return bson.M{"$set": bson.M{
		"name":     attraction.Name,
		"location": attraction.Location,
		"entryFee": attraction.EntryFee,
		"rating":   attraction.Rating,
	}}
}

// UpdateAttraction sets all four fields on the document matched by id.
// A missing id matches nothing and is not an error.
func (r *Repository) UpdateAttraction(ctx context.Context, id primitive.ObjectID, attraction models.Attraction) error {
	if _, err := r.db.Attractions().UpdateByID(ctx, id, attractionUpdate(attraction)); err != nil {
		return fmt.Errorf("failed to update attraction: %w", err)
	}
	return nil
}

func (r *Repository) DeleteAttraction(ctx context.Context, id primitive.ObjectID) error {
	if _, err := r.db.Attractions().DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("failed to delete attraction: %w", err)
	}
	return nil
}

// TopRatedAttractions returns the highest-rated attractions, descending by
// rating. Ascending _id breaks ties, which keeps the order stable by
// insertion since ObjectIDs are monotonic.
func (r *Repository) TopRatedAttractions(ctx context.Context, limit int64) ([]models.Attraction, error) {
	start := time.Now()
	opts := options.Find().
		SetSort(bson.D{{Key: "rating", Value: -1}, {Key: "_id", Value: 1}}).
		SetLimit(limit)

	cursor, err := r.db.Attractions().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query top-rated attractions: %w", err)
	}

	attractions := []models.Attraction{}
	if err := cursor.All(ctx, &attractions); err != nil {
		return nil, fmt.Errorf("failed to decode top-rated attractions: %w", err)
	}
	logQuery("top-rated", CollectionAttractions, start, len(attractions))
	return attractions, nil
}

// Visitor repository methods

func (r *Repository) ListVisitors(ctx context.Context) ([]models.Visitor, error) {
	cursor, err := r.db.Visitors().Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list visitors: %w", err)
	}

	visitors := []models.Visitor{}
	if err := cursor.All(ctx, &visitors); err != nil {
		return nil, fmt.Errorf("failed to decode visitors: %w", err)
	}
	return visitors, nil
}

func (r *Repository) GetVisitor(ctx context.Context, id primitive.ObjectID) (*models.Visitor, error) {
	var visitor models.Visitor
	err := r.db.Visitors().FindOne(ctx, bson.M{"_id": id}).Decode(&visitor)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get visitor: %w", err)
	}
	return &visitor, nil
}

func (r *Repository) CreateVisitor(ctx context.Context, visitor *models.Visitor) error {
	if err := validateVisitor(visitor); err != nil {
		return err
	}

	result, err := r.db.Visitors().InsertOne(ctx, visitor)
	if err != nil {
		return fmt.Errorf("failed to create visitor: %w", err)
	}
	visitor.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// visitorUpdate builds a $set touching name and email only, so the
// visited list survives edits
func visitorUpdate(name, email string) bson.M {
	return bson.M{"$set": bson.M{
		"name":  name,
		"email": email,
	}}
}

// UpdateVisitor sets name and email only; the visited list is untouched.
func (r *Repository) UpdateVisitor(ctx context.Context, id primitive.ObjectID, name, email string) error {
	if _, err := r.db.Visitors().UpdateByID(ctx, id, visitorUpdate(name, email)); err != nil {
		return fmt.Errorf("failed to update visitor: %w", err)
	}
	return nil
}

func (r *Repository) DeleteVisitor(ctx context.Context, id primitive.ObjectID) error {
	if _, err := r.db.Visitors().DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("failed to delete visitor: %w", err)
	}
	return nil
}

// VisitorActivity counts reviews per visitor. Visitors with no reviews are
// absent from the result.
func (r *Repository) VisitorActivity(ctx context.Context) ([]models.VisitorActivity, error) {
	start := time.Now()
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$visitor"},
			{Key: "reviewCount", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: CollectionVisitors},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "visitorInfo"},
		}}},
		bson.D{{Key: "$unwind", Value: "$visitorInfo"}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "visitorName", Value: "$visitorInfo.name"},
			{Key: "reviewCount", Value: 1},
		}}},
	}

	cursor, err := r.db.Reviews().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate visitor activity: %w", err)
	}

	activity := []models.VisitorActivity{}
	if err := cursor.All(ctx, &activity); err != nil {
		return nil, fmt.Errorf("failed to decode visitor activity: %w", err)
	}
	logQuery("visitor-activity", CollectionReviews, start, len(activity))
	return activity, nil
}

// Review repository methods

// reviewLookupStages join both review references to their collections. The
// unwinds preserve empty results so dangling references still surface the
// review with a zero-value document.
func reviewLookupStages() mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: CollectionVisitors},
			{Key: "localField", Value: "visitor"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "visitorDoc"},
		}}},
		bson.D{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$visitorDoc"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: CollectionAttractions},
			{Key: "localField", Value: "attraction"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "attractionDoc"},
		}}},
		bson.D{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$attractionDoc"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	}
}

// ListReviews returns all reviews with visitor and attraction resolved
func (r *Repository) ListReviews(ctx context.Context) ([]models.ReviewDetail, error) {
	start := time.Now()
	cursor, err := r.db.Reviews().Aggregate(ctx, reviewLookupStages())
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	reviews := []models.ReviewDetail{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}
	logQuery("list-reviews", CollectionReviews, start, len(reviews))
	return reviews, nil
}

// GetReview fetches one review and resolves its references with follow-up
// reads. A dangling reference leaves the embedded document zero-valued.
func (r *Repository) GetReview(ctx context.Context, id primitive.ObjectID) (*models.ReviewDetail, error) {
	var review models.Review
	err := r.db.Reviews().FindOne(ctx, bson.M{"_id": id}).Decode(&review)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	detail := &models.ReviewDetail{
		ID:      review.ID,
		Score:   review.Score,
		Comment: review.Comment,
	}

	if visitor, err := r.GetVisitor(ctx, review.Visitor); err == nil {
		detail.Visitor = *visitor
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	if attraction, err := r.GetAttraction(ctx, review.Attraction); err == nil {
		detail.Attraction = *attraction
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	return detail, nil
}

func (r *Repository) CreateReview(ctx context.Context, review *models.Review) error {
	if err := validateReview(review); err != nil {
		return err
	}

	result, err := r.db.Reviews().InsertOne(ctx, review)
	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	review.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// reviewUpdate builds a $set touching score and comment only, so the
// visitor and attraction references stay immutable
func reviewUpdate(score int, comment string) bson.M {
	return bson.M{"$set": bson.M{
		"score":   score,
		"comment": comment,
	}}
}

// UpdateReview sets score and comment only; the references are immutable.
func (r *Repository) UpdateReview(ctx context.Context, id primitive.ObjectID, score int, comment string) error {
	if _, err := r.db.Reviews().UpdateByID(ctx, id, reviewUpdate(score, comment)); err != nil {
		return fmt.Errorf("failed to update review: %w", err)
	}
	return nil
}

func (r *Repository) DeleteReview(ctx context.Context, id primitive.ObjectID) error {
	if _, err := r.db.Reviews().DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	return nil
}
