package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/genvoice/casetrack/internal/core/domain"
)

const casesCollection = "cases"

// CaseRepository implements ports.CaseRepository against the cases
// collection.
type CaseRepository struct {
	coll *mongo.Collection
}

func NewCaseRepository(db *mongo.Database) *CaseRepository {
	return &CaseRepository{coll: db.Collection(casesCollection)}
}

type caseDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
}

func (d caseDoc) toDomain() *domain.Case {
	return &domain.Case{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
	}
}

func (r *CaseRepository) FindAll(ctx context.Context) ([]*domain.Case, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, mapStoreError("find cases", err)
	}
	defer cursor.Close(ctx)

	var cases []*domain.Case
	for cursor.Next(ctx) {
		var doc caseDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, mapStoreError("decode case", err)
		}
		cases = append(cases, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, mapStoreError("iterate cases", err)
	}
	return cases, nil
}

// Upsert atomically replaces-or-inserts the case keyed by name. A replace
// does not yield an upserted id, so the stored document is looked up to
// recover it.
func (r *CaseRepository) Upsert(ctx context.Context, c *domain.Case) (*domain.Case, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"name": c.Name},
		bson.M{"$set": bson.M{"name": c.Name, "description": c.Description}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, mapStoreError("upsert case", err)
	}

	stored := *c
	if oid, ok := res.UpsertedID.(primitive.ObjectID); ok {
		stored.ID = oid.Hex()
		return &stored, nil
	}

	var doc caseDoc
	if err := r.coll.FindOne(ctx, bson.M{"name": c.Name}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrWriteFailed
		}
		return nil, mapStoreError("find upserted case", err)
	}
	return doc.toDomain(), nil
}
