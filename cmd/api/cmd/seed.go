package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/campusxp/experience-api/internal/core/domain"
	"github.com/campusxp/experience-api/internal/infrastructure/config"
	"github.com/campusxp/experience-api/internal/infrastructure/db/mongo"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write reference data the API only reads",
	Long: `Universities and API credentials are never created through the HTTP API.
Use these commands to provision them. Only MONGO_URI and MONGO_DB are read.`,
}

var (
	univID      string
	univName    string
	univLogo    string
	univDomains []string

	credKey    string
	credSecret string
)

var seedUniversityCmd = &cobra.Command{
	Use:   "university",
	Short: "Create or replace a university",
	Example: `  campusxp seed university --id mit --name "MIT" --logo https://example.org/mit.png \
    --domain @mit.edu --domain @alum.mit.edu`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if univID == "" || univName == "" {
			return errors.New("--id and --name are required")
		}
		if len(univDomains) == 0 {
			return errors.New("at least one --domain is required")
		}

		return withDatabase(cmd.Context(), func(ctx context.Context, repos seedRepos) error {
			univ := &domain.University{
				ID:           univID,
				Name:         univName,
				Logo:         univLogo,
				EmailDomains: univDomains,
			}
			if err := repos.universities.Upsert(ctx, univ); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "university %s saved (%s)\n", univID, strings.Join(univDomains, ", "))
			return nil
		})
	},
}

var seedCredentialCmd = &cobra.Command{
	Use:     "credential",
	Short:   "Add or rotate an API key/secret pair",
	Example: `  campusxp seed credential --key mobile --secret s3cr3t`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if credKey == "" || credSecret == "" {
			return errors.New("--key and --secret are required")
		}

		return withDatabase(cmd.Context(), func(ctx context.Context, repos seedRepos) error {
			if err := repos.credentials.PutSecret(ctx, credKey, credSecret); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "credential %s saved\n", credKey)
			return nil
		})
	},
}

func init() {
	seedUniversityCmd.Flags().StringVar(&univID, "id", "", "university id")
	seedUniversityCmd.Flags().StringVar(&univName, "name", "", "display name")
	seedUniversityCmd.Flags().StringVar(&univLogo, "logo", "", "logo url")
	seedUniversityCmd.Flags().StringSliceVar(&univDomains, "domain", nil, "accepted email suffix (repeatable)")

	seedCredentialCmd.Flags().StringVar(&credKey, "key", "", "api key")
	seedCredentialCmd.Flags().StringVar(&credSecret, "secret", "", "api secret")

	seedCmd.AddCommand(seedUniversityCmd)
	seedCmd.AddCommand(seedCredentialCmd)
}

type seedRepos struct {
	universities *mongo.UniversityRepository
	credentials  *mongo.CredentialRepository
}

func withDatabase(ctx context.Context, fn func(context.Context, seedRepos) error) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.LoadMongo(ctx)
	if err != nil {
		return err
	}

	client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.URI, Database: cfg.Database})
	if err != nil {
		return err
	}
	defer client.Disconnect(context.Background())

	return fn(ctx, seedRepos{
		universities: mongo.NewUniversityRepository(db),
		credentials:  mongo.NewCredentialRepository(db),
	})
}
