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

	"github.com/campusxp/experience-api/internal/core/domain"
	"github.com/campusxp/experience-api/internal/core/ports"
)

// ExperienceRepository implements ports.ExperienceRepository using MongoDB.
type ExperienceRepository struct {
	col *mongo.Collection
}

func NewExperienceRepository(db *mongo.Database) *ExperienceRepository {
	return &ExperienceRepository{col: db.Collection(collectionExperiences)}
}

type experienceDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Company   string             `bson:"company"`
	Role      string             `bson:"role"`
	Location  string             `bson:"location"`
	Summary   string             `bson:"summary"`
	Status    string             `bson:"status"`
	UID       string             `bson:"uid"`
	UnivID    string             `bson:"univId"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (d *experienceDoc) toDomain() *domain.Experience {
	return &domain.Experience{
		ID:        d.ID.Hex(),
		Company:   d.Company,
		Role:      d.Role,
		Location:  d.Location,
		Summary:   d.Summary,
		Status:    d.Status,
		UID:       d.UID,
		UnivID:    d.UnivID,
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}

// Create inserts a new experience and returns its hex id.
func (r *ExperienceRepository) Create(ctx context.Context, exp *domain.Experience) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := experienceDoc{
		ID:        primitive.NewObjectID(),
		Company:   exp.Company,
		Role:      exp.Role,
		Location:  exp.Location,
		Summary:   exp.Summary,
		Status:    exp.Status,
		UID:       exp.UID,
		UnivID:    exp.UnivID,
		CreatedAt: exp.CreatedAt,
		UpdatedAt: exp.UpdatedAt,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return "", fmt.Errorf("insert experience: %w", err)
	}
	return doc.ID.Hex(), nil
}

// FindByID treats a malformed id the same as a missing document.
func (r *ExperienceRepository) FindByID(ctx context.Context, id string) (*domain.Experience, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc experienceDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find experience: %w", err)
	}
	return doc.toDomain(), nil
}

// List returns the tenant's experiences, newest first.
func (r *ExperienceRepository) List(ctx context.Context, f ports.ExperienceFilter) ([]*domain.Experience, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"univId": f.UnivID}
	if f.Company != "" {
		filter["company"] = f.Company
	}

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("find experiences: %w", err)
	}

	var docs []experienceDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode experiences: %w", err)
	}

	out := make([]*domain.Experience, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain())
	}
	return out, nil
}

// Update merge-writes the mutable fields. A document deleted since it was read
// reports domain.ErrNotFound.
func (r *ExperienceRepository) Update(ctx context.Context, exp *domain.Experience) error {
	oid, err := primitive.ObjectIDFromHex(exp.ID)
	if err != nil {
		return domain.ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"company":   exp.Company,
		"role":      exp.Role,
		"location":  exp.Location,
		"summary":   exp.Summary,
		"status":    exp.Status,
		"updatedAt": exp.UpdatedAt,
	}}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update experience: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ExperienceRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete experience: %w", err)
	}
	return nil
}
