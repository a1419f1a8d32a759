package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// credentialDocID is the single document holding every api key's secret.
const credentialDocID = "apiSecrets"

type credentialDoc struct {
	ID      string            `bson:"_id"`
	Secrets map[string]string `bson:"secrets"`
}

// CredentialRepository reads the api key/secret document.
type CredentialRepository struct {
	col *mongo.Collection
}

func NewCredentialRepository(db *mongo.Database) *CredentialRepository {
	return &CredentialRepository{col: db.Collection(collectionSecrets)}
}

// Secrets returns the current mapping. A missing document yields an empty map,
// so every credential is rejected.
func (r *CredentialRepository) Secrets(ctx context.Context) (map[string]string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc credentialDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": credentialDocID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read credentials: %w", err)
	}
	if doc.Secrets == nil {
		doc.Secrets = map[string]string{}
	}
	return doc.Secrets, nil
}

// PutSecret sets the secret for apiKey, creating the document if needed.
func (r *CredentialRepository) PutSecret(ctx context.Context, apiKey, secret string) error {
	if apiKey == "" || strings.ContainsAny(apiKey, ".$ ") {
		return fmt.Errorf("put secret: invalid api key %q", apiKey)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.UpdateOne(ctx,
		bson.M{"_id": credentialDocID},
		bson.M{"$set": bson.M{"secrets." + apiKey: secret}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("put secret: %w", err)
	}
	return nil
}
