package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	ierr "agendaapi/internal/errors"
)

// notDeleted matches documents whose is_deleted flag is false or missing.
var notDeleted = bson.M{"$ne": true}

// collection holds the operations shared by soft-delete collections keyed by
// a generated ObjectID with an "is_deleted" liveness field. D is the stored
// document shape and R the model it maps to.
type collection[D any, R any] struct {
	coll    *mongo.Collection
	toModel func(D) R
}

func (c collection[D, R]) findAll(ctx context.Context) ([]R, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := c.coll.Find(ctx, bson.M{"is_deleted": notDeleted}, opts)
	if err != nil {
		return nil, mapError(err, "list "+c.coll.Name())
	}
	defer cur.Close(ctx)

	var docs []D
	if err := cur.All(ctx, &docs); err != nil {
		return nil, mapError(err, "decode "+c.coll.Name())
	}
	return lo.Map(docs, func(d D, _ int) R { return c.toModel(d) }), nil
}

func (c collection[D, R]) findOne(ctx context.Context, id string) (*R, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	return c.decodeOne(c.coll.FindOne(ctx, bson.M{"_id": oid}), "find "+id)
}

func (c collection[D, R]) insert(ctx context.Context, doc D) (*R, error) {
	if _, err := c.coll.InsertOne(ctx, doc); err != nil {
		return nil, mapError(err, "insert into "+c.coll.Name())
	}
	rec := c.toModel(doc)
	return &rec, nil
}

// update $sets the given fields on the live document and returns the result.
// An empty set returns the live document unchanged.
func (c collection[D, R]) update(ctx context.Context, id string, set bson.M) (*R, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	filter := bson.M{"_id": oid, "is_deleted": notDeleted}
	if len(set) == 0 {
		return c.decodeOne(c.coll.FindOne(ctx, filter), "find "+id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	res := c.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts)
	return c.decodeOne(res, "update "+id)
}

func (c collection[D, R]) softDelete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := c.coll.UpdateOne(ctx,
		bson.M{"_id": oid, "is_deleted": notDeleted},
		bson.M{"$set": bson.M{"is_deleted": true}},
	)
	if err != nil {
		return mapError(err, "delete "+id)
	}
	if res.MatchedCount == 0 {
		return ierr.NewError(fmt.Sprintf("no live document %s in %s", id, c.coll.Name())).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (c collection[D, R]) decodeOne(res *mongo.SingleResult, op string) (*R, error) {
	var doc D
	if err := res.Decode(&doc); err != nil {
		return nil, mapError(err, op)
	}
	rec := c.toModel(doc)
	return &rec, nil
}

// objectID parses a hex id. Ids that are not ObjectIDs cannot match any
// document and are reported as not found.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ierr.WithError(err).
			WithMessage("parse object id").
			Mark(ierr.ErrNotFound)
	}
	return oid, nil
}

func mapError(err error, op string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ierr.WithError(err).WithMessage(op).Mark(ierr.ErrNotFound)
	}
	if mongo.IsDuplicateKeyError(err) {
		return ierr.WithError(err).WithMessage(op).Mark(ierr.ErrAlreadyExists)
	}
	return ierr.WithError(err).WithMessage(op).Mark(ierr.ErrDatabase)
}
