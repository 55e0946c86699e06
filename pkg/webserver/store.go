package webserver

import (
	"context"
	"errors"

	"github.com/Syed-Muaarij-Nadeem/LabFinalWeb/pkg/db"
	"github.com/Syed-Muaarij-Nadeem/LabFinalWeb/pkg/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func isNotFound(err error) bool {
	return errors.Is(err, db.ErrNotFound)
}

// Store is the data-access surface the handlers depend on. *db.Repository
// satisfies it; tests substitute an in-memory implementation.
type Store interface {
	HealthCheck(ctx context.Context) error

	ListAttractions(ctx context.Context) ([]models.Attraction, error)
	GetAttraction(ctx context.Context, id primitive.ObjectID) (*models.Attraction, error)
	CreateAttraction(ctx context.Context, attraction *models.Attraction) error
	UpdateAttraction(ctx context.Context, id primitive.ObjectID, attraction models.Attraction) error
	DeleteAttraction(ctx context.Context, id primitive.ObjectID) error
	TopRatedAttractions(ctx context.Context, limit int64) ([]models.Attraction, error)

	ListVisitors(ctx context.Context) ([]models.Visitor, error)
	GetVisitor(ctx context.Context, id primitive.ObjectID) (*models.Visitor, error)
	CreateVisitor(ctx context.Context, visitor *models.Visitor) error
	UpdateVisitor(ctx context.Context, id primitive.ObjectID, name, email string) error
	DeleteVisitor(ctx context.Context, id primitive.ObjectID) error
	VisitorActivity(ctx context.Context) ([]models.VisitorActivity, error)

	ListReviews(ctx context.Context) ([]models.ReviewDetail, error)
	GetReview(ctx context.Context, id primitive.ObjectID) (*models.ReviewDetail, error)
	CreateReview(ctx context.Context, review *models.Review) error
	UpdateReview(ctx context.Context, id primitive.ObjectID, score int, comment string) error
	DeleteReview(ctx context.Context, id primitive.ObjectID) error
}
