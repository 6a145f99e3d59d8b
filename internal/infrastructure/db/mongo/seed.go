package mongo

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/genvoice/casetrack/internal/core/domain"
	"github.com/genvoice/casetrack/internal/pkg/credentials"
)

const (
	rolesCollection = "roles"
	seedTimeout     = 30 * time.Second
)

// Seeder performs the startup-only bootstrap: unique indexes, the role
// reference table and optional per-collection seed files. Every write uses
// insert-if-absent semantics, so reruns neither duplicate nor fail.
type Seeder struct {
	db      *mongo.Database
	seedDir string
	logger  zerolog.Logger
}

func NewSeeder(db *mongo.Database, seedDir string, logger zerolog.Logger) *Seeder {
	return &Seeder{db: db, seedDir: seedDir, logger: logger}
}

// EnsureSeedData creates the unique indexes, seeds the roles table with one
// row per role value, and loads users/cases bootstrap files when present.
func (s *Seeder) EnsureSeedData(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, seedTimeout)
	defer cancel()

	if err := s.ensureIndexes(ctx); err != nil {
		return err
	}

	roleRows := make([]bson.M, 0, len(domain.Roles))
	for _, role := range domain.Roles {
		roleRows = append(roleRows, bson.M{"role": string(role)})
	}
	s.loadRows(ctx, rolesCollection, roleRows)
	s.logger.Info().Msg("roles collection initialized")

	s.loadUserRows(ctx, s.readSeedFile("users"))
	s.loadRows(ctx, casesCollection, s.readSeedFile("cases"))

	return nil
}

func (s *Seeder) ensureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)
	for coll, key := range map[string]string{
		usersCollection: "username",
		casesCollection: "name",
		rolesCollection: "role",
	} {
		model := mongo.IndexModel{
			Keys:    bson.D{{Key: key, Value: 1}},
			Options: unique,
		}
		if _, err := s.db.Collection(coll).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("create %s.%s index: %w", coll, key, err)
		}
	}
	return nil
}

// readSeedFile loads <seedDir>/<name>.json, accepting either a single object
// or a list. Absence or malformed content is non-fatal: a warning is logged
// and an empty list returned.
func (s *Seeder) readSeedFile(name string) []bson.M {
	path := filepath.Join(s.seedDir, name+".json")

	raw, err := os.ReadFile(path)
	if err != nil {
		s.logger.Warn().Err(err).Str("path", path).Msg("seed file not loaded")
		return nil
	}

	var rows []bson.M
	if err := json.Unmarshal(raw, &rows); err != nil {
		var single bson.M
		if err := json.Unmarshal(raw, &single); err != nil {
			s.logger.Warn().Err(err).Str("path", path).Msg("seed file not parsed")
			return nil
		}
		rows = []bson.M{single}
	}
	return rows
}

// loadUserRows seeds bootstrap accounts. Passwords are hashed before
// storage, which salts them differently on every run, so rows are matched by
// username instead of full document equality: existing accounts are left
// untouched.
func (s *Seeder) loadUserRows(ctx context.Context, rows []bson.M) {
	coll := s.db.Collection(usersCollection)
	for _, row := range rows {
		username, _ := row["username"].(string)
		if username == "" {
			s.logger.Warn().Msg("seed user row missing username, skipped")
			continue
		}

		if err := coll.FindOne(ctx, bson.M{"username": username}).Err(); err == nil {
			continue
		} else if err != mongo.ErrNoDocuments {
			s.logger.Warn().Err(err).Str("username", username).Msg("failed to check seed user")
			continue
		}

		password, _ := row["password"].(string)
		digest, err := credentials.Hash(password)
		if err != nil {
			s.logger.Warn().Err(err).Str("username", username).Msg("failed to hash seed password")
			continue
		}
		row["password"] = digest

		if _, err := coll.InsertOne(ctx, row); err != nil {
			s.logger.Warn().Err(err).Str("username", username).Msg("failed to load seed user")
		}
	}
}

// loadRows writes each row with $setOnInsert keyed on the full document, so
// an identical rerun matches the existing row and inserts nothing.
func (s *Seeder) loadRows(ctx context.Context, coll string, rows []bson.M) {
	for _, row := range rows {
		_, err := s.db.Collection(coll).UpdateOne(ctx,
			row,
			bson.M{"$setOnInsert": row},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			s.logger.Warn().Err(err).Str("collection", coll).Msg("failed to load seed row")
		}
	}
}
