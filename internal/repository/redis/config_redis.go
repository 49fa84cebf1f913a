package redis

import (
	"context"

	"github.com/go-redis/redis/v8"
	"github.com/samber/lo"

	"agendaapi/internal/model"
	"agendaapi/internal/repository"
)

// ConfigKeyPrefix namespaces config records: "config:{key}".
const ConfigKeyPrefix = "config:"

// ConfigRedis is the Redis adapter for application config records.
type ConfigRedis struct {
	ks keyspace
}

func NewConfigRedis(client *redis.Client) *ConfigRedis {
	return &ConfigRedis{ks: keyspace{client: client, prefix: ConfigKeyPrefix, dataField: "data"}}
}

var _ repository.ConfigRepository = (*ConfigRedis)(nil)

func toConfig(e entry) model.Config {
	return model.Config{Key: e.id, Data: e.data, Active: e.active}
}

func (r *ConfigRedis) FindAll(ctx context.Context) ([]model.Config, error) {
	entries, err := r.ks.all(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Map(entries, func(e entry, _ int) model.Config { return toConfig(e) }), nil
}

func (r *ConfigRedis) FindOne(ctx context.Context, key string) (*model.Config, error) {
	e, err := r.ks.get(ctx, key)
	if err != nil {
		return nil, err
	}
	c := toConfig(*e)
	return &c, nil
}

func (r *ConfigRedis) Insert(ctx context.Context, in model.ConfigCreate) (*model.Config, error) {
	e, err := r.ks.create(ctx, in.Key, in.Data)
	if err != nil {
		return nil, err
	}
	c := toConfig(*e)
	return &c, nil
}

func (r *ConfigRedis) Update(ctx context.Context, key string, patch model.ConfigPatch) (*model.Config, error) {
	e, err := r.ks.merge(ctx, key, patch.Data.Value)
	if err != nil {
		return nil, err
	}
	c := toConfig(*e)
	return &c, nil
}

func (r *ConfigRedis) SoftDelete(ctx context.Context, key string) error {
	return r.ks.deactivate(ctx, key)
}
