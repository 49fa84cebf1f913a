package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"agendaapi/internal/model"
	"agendaapi/internal/repository"
)

// ContactCollection is the collection name used for contacts.
const ContactCollection = "contacts"

type contactDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Phone     string             `bson:"phone"`
	IsDeleted bool               `bson:"is_deleted"`
}

func (d contactDocument) toModel() model.Contact {
	return model.Contact{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Phone:     d.Phone,
		IsDeleted: d.IsDeleted,
	}
}

// ContactMongo is the MongoDB adapter for contacts.
type ContactMongo struct {
	c collection[contactDocument, model.Contact]
}

// NewContactMongo creates a contact adapter over the given collection.
func NewContactMongo(coll *mongo.Collection) *ContactMongo {
	return &ContactMongo{c: collection[contactDocument, model.Contact]{
		coll:    coll,
		toModel: contactDocument.toModel,
	}}
}

var _ repository.ContactRepository = (*ContactMongo)(nil)

func (r *ContactMongo) FindAll(ctx context.Context) ([]model.Contact, error) {
	return r.c.findAll(ctx)
}

func (r *ContactMongo) FindOne(ctx context.Context, id string) (*model.Contact, error) {
	return r.c.findOne(ctx, id)
}

func (r *ContactMongo) Insert(ctx context.Context, in model.ContactCreate) (*model.Contact, error) {
	return r.c.insert(ctx, contactDocument{
		ID:    primitive.NewObjectID(),
		Name:  in.Name,
		Phone: in.Phone,
	})
}

func (r *ContactMongo) Update(ctx context.Context, id string, patch model.ContactPatch) (*model.Contact, error) {
	set := bson.M{}
	if patch.Name.Present() {
		set["name"] = patch.Name.Value
	}
	if patch.Phone.Present() {
		set["phone"] = patch.Phone.Value
	}
	return r.c.update(ctx, id, set)
}

func (r *ContactMongo) SoftDelete(ctx context.Context, id string) error {
	return r.c.softDelete(ctx, id)
}
