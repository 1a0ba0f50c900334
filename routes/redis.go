// SPDX-License-Identifier: MIT
package routes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/katalvlaran/trafficgraph/graphio"
)

const (
	routeKeyPrefix = "trafficgraph:route:" // route payload: trafficgraph:route:{name}
	routeIndexKey  = "trafficgraph:routes" // set of saved route names
)

// Redis is a Store shared through a Redis server. Routes do not expire.
type Redis struct {
	client *redis.Client
	now    func() time.Time
}

// NewRedis wraps an existing client; the caller owns its lifecycle.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client, now: time.Now}
}

func routeKey(name string) string { return routeKeyPrefix + name }

// Save stores doc under name, replacing any previous route.
func (r *Redis) Save(ctx context.Context, name string, doc graphio.Document) error {
	doc, err := prepare(name, doc)
	if err != nil {
		return err
	}
	data, err := json.Marshal(record{SavedAt: r.now().UTC(), Document: doc})
	if err != nil {
		return fmt.Errorf("routes: marshal %q: %w", name, err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, routeKey(name), data, 0)
	pipe.SAdd(ctx, routeIndexKey, name)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("routes: save %q: %w", name, err)
	}

	return nil
}

// Load returns the route stored under name.
func (r *Redis) Load(ctx context.Context, name string) (graphio.Document, error) {
	data, err := r.client.Get(ctx, routeKey(name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return graphio.Document{}, fmt.Errorf("route %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return graphio.Document{}, fmt.Errorf("routes: load %q: %w", name, err)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return graphio.Document{}, fmt.Errorf("routes: decode %q: %w", name, err)
	}

	return rec.Document, nil
}

// List returns every route summary ordered by name. Index entries whose
// payload vanished are skipped.
func (r *Redis) List(ctx context.Context) ([]Summary, error) {
	names, err := r.client.SMembers(ctx, routeIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("routes: list: %w", err)
	}
	if len(names) == 0 {
		return []Summary{}, nil
	}
	sort.Strings(names)

	keys := make([]string, len(names))
	for i, name := range names {
		keys[i] = routeKey(name)
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("routes: list: %w", err)
	}

	out := make([]Summary, 0, len(names))
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			continue
		}
		var rec record
		if err := json.Unmarshal([]byte(s), &rec); err != nil {
			return nil, fmt.Errorf("routes: decode %q: %w", names[i], err)
		}
		out = append(out, rec.summary(names[i]))
	}

	return out, nil
}

// Delete removes the route stored under name.
func (r *Redis) Delete(ctx context.Context, name string) error {
	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, routeKey(name))
	pipe.SRem(ctx, routeIndexKey, name)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("routes: delete %q: %w", name, err)
	}
	if del.Val() == 0 {
		return fmt.Errorf("route %q: %w", name, ErrNotFound)
	}

	return nil
}
