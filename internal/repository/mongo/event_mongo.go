package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"agendaapi/internal/model"
	"agendaapi/internal/repository"
)

// EventCollection is the collection name used for events.
const EventCollection = "events"

type eventDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Date        string             `bson:"date"`
	Description string             `bson:"description"`
	IsDeleted   bool               `bson:"is_deleted"`
}

func (d eventDocument) toModel() model.Event {
	return model.Event{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Date:        d.Date,
		Description: d.Description,
		IsDeleted:   d.IsDeleted,
	}
}

// EventMongo is the MongoDB adapter for events.
type EventMongo struct {
	c collection[eventDocument, model.Event]
}

func NewEventMongo(coll *mongo.Collection) *EventMongo {
	return &EventMongo{c: collection[eventDocument, model.Event]{
		coll:    coll,
		toModel: eventDocument.toModel,
	}}
}

var _ repository.EventRepository = (*EventMongo)(nil)

func (r *EventMongo) FindAll(ctx context.Context) ([]model.Event, error) {
	return r.c.findAll(ctx)
}

func (r *EventMongo) FindOne(ctx context.Context, id string) (*model.Event, error) {
	return r.c.findOne(ctx, id)
}

func (r *EventMongo) Insert(ctx context.Context, in model.EventCreate) (*model.Event, error) {
	return r.c.insert(ctx, eventDocument{
		ID:          primitive.NewObjectID(),
		Title:       in.Title,
		Date:        in.Date,
		Description: in.Description,
	})
}

func (r *EventMongo) Update(ctx context.Context, id string, patch model.EventPatch) (*model.Event, error) {
	set := bson.M{}
	if patch.Title.Present() {
		set["title"] = patch.Title.Value
	}
	if patch.Date.Present() {
		set["date"] = patch.Date.Value
	}
	if patch.Description.Present() {
		set["description"] = patch.Description.Value
	}
	return r.c.update(ctx, id, set)
}

func (r *EventMongo) SoftDelete(ctx context.Context, id string) error {
	return r.c.softDelete(ctx, id)
}
