package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/go-redis/redis/v8"
	"github.com/samber/lo"

	ierr "agendaapi/internal/errors"
	"agendaapi/internal/model"
)

const scanCount = 200

// entry is the decoded form of a key-value record:
// {"<dataField>": {...}, "active": bool} stored under prefix+id.
type entry struct {
	id     string
	data   map[string]any
	active bool
}

// keyspace implements soft-delete records over plain string keys.
// Read-modify-write operations are not atomic against concurrent writers of
// the same key.
type keyspace struct {
	client    *redis.Client
	prefix    string
	dataField string
}

func (k keyspace) key(id string) string {
	return k.prefix + id
}

func (k keyspace) encode(e entry) (string, error) {
	b, err := json.Marshal(map[string]any{
		k.dataField: e.data,
		"active":    e.active,
	})
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (k keyspace) decode(id, raw string) (entry, error) {
	var fields map[string]json.RawMessage
	if err := model.DecodeJSON([]byte(raw), &fields); err != nil {
		return entry{}, fmt.Errorf("decode %s: %w", k.key(id), err)
	}

	e := entry{id: id}
	if v, ok := fields[k.dataField]; ok {
		if err := model.DecodeJSON(v, &e.data); err != nil {
			return entry{}, fmt.Errorf("decode %s.%s: %w", k.key(id), k.dataField, err)
		}
	}
	if v, ok := fields["active"]; ok {
		if err := model.DecodeJSON(v, &e.active); err != nil {
			return entry{}, fmt.Errorf("decode %s.active: %w", k.key(id), err)
		}
	}
	if e.data == nil {
		e.data = map[string]any{}
	}
	return e, nil
}

// all returns live entries ordered by id.
func (k keyspace) all(ctx context.Context) ([]entry, error) {
	keys, err := k.scanKeys(ctx)
	if err != nil {
		return nil, ierr.WithError(err).WithMessage("scan " + k.prefix).Mark(ierr.ErrDatabase)
	}
	if len(keys) == 0 {
		return []entry{}, nil
	}

	vals, err := k.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, ierr.WithError(err).WithMessage("mget " + k.prefix).Mark(ierr.ErrDatabase)
	}

	entries := make([]entry, 0, len(keys))
	for i, v := range vals {
		raw, ok := v.(string)
		if !ok {
			// removed between SCAN and MGET
			continue
		}
		e, err := k.decode(strings.TrimPrefix(keys[i], k.prefix), raw)
		if err != nil {
			return nil, ierr.WithError(err).Mark(ierr.ErrSystem)
		}
		entries = append(entries, e)
	}
	return lo.Filter(entries, func(e entry, _ int) bool { return e.active }), nil
}

func (k keyspace) scanKeys(ctx context.Context) ([]string, error) {
	var keys []string
	var cursor uint64
	for {
		batch, next, err := k.client.Scan(ctx, cursor, k.prefix+"*", scanCount).Result()
		if err != nil {
			return nil, err
		}
		keys = append(keys, batch...)
		cursor = next
		if cursor == 0 {
			break
		}
	}
	keys = lo.Uniq(keys)
	slices.Sort(keys)
	return keys, nil
}

// get returns the entry whether it is active or not.
func (k keyspace) get(ctx context.Context, id string) (*entry, error) {
	raw, err := k.client.Get(ctx, k.key(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ierr.WithError(err).WithMessage("get " + k.key(id)).Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).WithMessage("get " + k.key(id)).Mark(ierr.ErrDatabase)
	}
	e, err := k.decode(id, raw)
	if err != nil {
		return nil, ierr.WithError(err).Mark(ierr.ErrSystem)
	}
	return &e, nil
}

func (k keyspace) getLive(ctx context.Context, id string) (*entry, error) {
	e, err := k.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !e.active {
		return nil, ierr.NewError(k.key(id) + " is deleted").Mark(ierr.ErrNotFound)
	}
	return e, nil
}

// create stores a new active entry. Any existing value under the key, active
// or not, makes it fail with ErrAlreadyExists.
func (k keyspace) create(ctx context.Context, id string, data map[string]any) (*entry, error) {
	e := entry{id: id, data: data, active: true}
	if e.data == nil {
		e.data = map[string]any{}
	}
	payload, err := k.encode(e)
	if err != nil {
		return nil, ierr.WithError(err).Mark(ierr.ErrSystem)
	}

	ok, err := k.client.SetNX(ctx, k.key(id), payload, 0).Result()
	if err != nil {
		return nil, ierr.WithError(err).WithMessage("setnx " + k.key(id)).Mark(ierr.ErrDatabase)
	}
	if !ok {
		return nil, ierr.NewError(k.key(id) + " already exists").Mark(ierr.ErrAlreadyExists)
	}
	return &e, nil
}

// merge shallow-merges data into the live entry's data.
func (k keyspace) merge(ctx context.Context, id string, data map[string]any) (*entry, error) {
	e, err := k.getLive(ctx, id)
	if err != nil {
		return nil, err
	}
	for key, v := range data {
		e.data[key] = v
	}
	if err := k.put(ctx, *e); err != nil {
		return nil, err
	}
	return e, nil
}

func (k keyspace) deactivate(ctx context.Context, id string) error {
	e, err := k.getLive(ctx, id)
	if err != nil {
		return err
	}
	e.active = false
	return k.put(ctx, *e)
}

func (k keyspace) put(ctx context.Context, e entry) error {
	payload, err := k.encode(e)
	if err != nil {
		return ierr.WithError(err).Mark(ierr.ErrSystem)
	}
	if err := k.client.Set(ctx, k.key(e.id), payload, 0).Err(); err != nil {
		return ierr.WithError(err).WithMessage("set " + k.key(e.id)).Mark(ierr.ErrDatabase)
	}
	return nil
}
