package redis

import (
	"context"

	"github.com/go-redis/redis/v8"
	"github.com/samber/lo"

	"agendaapi/internal/model"
	"agendaapi/internal/repository"
)

// SessionKeyPrefix namespaces session records: "session:{user_id}".
const SessionKeyPrefix = "session:"

// SessionRedis is the Redis adapter for user sessions.
type SessionRedis struct {
	ks keyspace
}

func NewSessionRedis(client *redis.Client) *SessionRedis {
	return &SessionRedis{ks: keyspace{client: client, prefix: SessionKeyPrefix, dataField: "session_data"}}
}

var _ repository.SessionRepository = (*SessionRedis)(nil)

func toSession(e entry) model.Session {
	return model.Session{UserID: e.id, SessionData: e.data, Active: e.active}
}

func (r *SessionRedis) FindAll(ctx context.Context) ([]model.Session, error) {
	entries, err := r.ks.all(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Map(entries, func(e entry, _ int) model.Session { return toSession(e) }), nil
}

func (r *SessionRedis) FindOne(ctx context.Context, userID string) (*model.Session, error) {
	e, err := r.ks.get(ctx, userID)
	if err != nil {
		return nil, err
	}
	s := toSession(*e)
	return &s, nil
}

func (r *SessionRedis) Insert(ctx context.Context, in model.SessionCreate) (*model.Session, error) {
	e, err := r.ks.create(ctx, in.UserID, in.SessionData)
	if err != nil {
		return nil, err
	}
	s := toSession(*e)
	return &s, nil
}

func (r *SessionRedis) Update(ctx context.Context, userID string, patch model.SessionPatch) (*model.Session, error) {
	e, err := r.ks.merge(ctx, userID, patch.SessionData.Value)
	if err != nil {
		return nil, err
	}
	s := toSession(*e)
	return &s, nil
}

func (r *SessionRedis) SoftDelete(ctx context.Context, userID string) error {
	return r.ks.deactivate(ctx, userID)
}
