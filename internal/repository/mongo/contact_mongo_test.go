package mongo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	ierr "agendaapi/internal/errors"
	"agendaapi/internal/model"
)

func namespace(mt *mtest.T) string {
	return mt.DB.Name() + "." + mt.Coll.Name()
}

func contactDoc(id primitive.ObjectID, name, phone string, deleted bool) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "name", Value: name},
		{Key: "phone", Value: phone},
		{Key: "is_deleted", Value: deleted},
	}
}

func TestContactMongo_FindAll(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("live documents", func(mt *mtest.T) {
		a, b := primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch,
			contactDoc(a, "Ana", "555", false),
			contactDoc(b, "Luis", "777", false),
		))

		contacts, err := NewContactMongo(mt.Coll).FindAll(context.Background())

		require.NoError(mt, err)
		require.Len(mt, contacts, 2)
		assert.Equal(mt, a.Hex(), contacts[0].ID)
		assert.Equal(mt, "Luis", contacts[1].Name)
		assert.False(mt, contacts[1].IsDeleted)
	})

	mt.Run("empty collection", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))

		contacts, err := NewContactMongo(mt.Coll).FindAll(context.Background())

		require.NoError(mt, err)
		assert.NotNil(mt, contacts)
		assert.Empty(mt, contacts)
	})

	mt.Run("server error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Message: "bad query"}))

		contacts, err := NewContactMongo(mt.Coll).FindAll(context.Background())

		assert.Nil(mt, contacts)
		assert.True(mt, ierr.Is(err, ierr.ErrDatabase))
	})
}

func TestContactMongo_Insert(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("assigns id and liveness", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		c, err := NewContactMongo(mt.Coll).Insert(context.Background(), model.ContactCreate{Name: "Ana", Phone: "555"})

		require.NoError(mt, err)
		assert.True(mt, primitive.IsValidObjectID(c.ID))
		assert.Equal(mt, "Ana", c.Name)
		assert.Equal(mt, "555", c.Phone)
		assert.False(mt, c.IsDeleted)
	})
}

func TestContactMongo_FindOne(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns deleted document", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch,
			contactDoc(id, "Ana", "555", true)))

		c, err := NewContactMongo(mt.Coll).FindOne(context.Background(), id.Hex())

		require.NoError(mt, err)
		assert.True(mt, c.IsDeleted)
	})

	mt.Run("missing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))

		c, err := NewContactMongo(mt.Coll).FindOne(context.Background(), primitive.NewObjectID().Hex())

		assert.Nil(mt, c)
		assert.True(mt, ierr.IsNotFound(err))
	})

	mt.Run("malformed id", func(mt *mtest.T) {
		c, err := NewContactMongo(mt.Coll).FindOne(context.Background(), "not-an-object-id")

		assert.Nil(mt, c)
		assert.True(mt, ierr.IsNotFound(err))
	})
}

func TestContactMongo_Update(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns updated document", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "value", Value: contactDoc(id, "Ana", "999", false)},
		))

		c, err := NewContactMongo(mt.Coll).Update(context.Background(), id.Hex(), model.ContactPatch{Phone: model.Some("999")})

		require.NoError(mt, err)
		assert.Equal(mt, id.Hex(), c.ID)
		assert.Equal(mt, "999", c.Phone)
	})

	mt.Run("no live document", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		c, err := NewContactMongo(mt.Coll).Update(context.Background(), primitive.NewObjectID().Hex(), model.ContactPatch{Name: model.Some("X")})

		assert.Nil(mt, c)
		assert.True(mt, ierr.IsNotFound(err))
	})

	mt.Run("malformed id", func(mt *mtest.T) {
		c, err := NewContactMongo(mt.Coll).Update(context.Background(), "zzz", model.ContactPatch{Name: model.Some("X")})

		assert.Nil(mt, c)
		assert.True(mt, ierr.IsNotFound(err))
	})
}

func TestContactMongo_SoftDelete(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("flags live document", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		err := NewContactMongo(mt.Coll).SoftDelete(context.Background(), primitive.NewObjectID().Hex())

		assert.NoError(mt, err)
	})

	mt.Run("already deleted", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		err := NewContactMongo(mt.Coll).SoftDelete(context.Background(), primitive.NewObjectID().Hex())

		assert.True(mt, ierr.IsNotFound(err))
	})
}
