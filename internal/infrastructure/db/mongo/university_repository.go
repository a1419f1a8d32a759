package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/campusxp/experience-api/internal/core/domain"
)

type UniversityRepository struct {
	col *mongo.Collection
}

func NewUniversityRepository(db *mongo.Database) *UniversityRepository {
	return &UniversityRepository{col: db.Collection(collectionUniversities)}
}

func (r *UniversityRepository) FindByID(ctx context.Context, id string) (*domain.University, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var u domain.University
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find university: %w", err)
	}
	return &u, nil
}

func (r *UniversityRepository) List(ctx context.Context) ([]*domain.University, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find universities: %w", err)
	}

	out := []*domain.University{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode universities: %w", err)
	}
	return out, nil
}

// Upsert is used by the seed command; the API never writes universities.
func (r *UniversityRepository) Upsert(ctx context.Context, univ *domain.University) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": univ.ID}, univ, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert university: %w", err)
	}
	return nil
}
