// Package search maintains a redis text mirror per entity kind. Postgres
// stays authoritative: the mirror only maps ids to a lowercase blob of the
// searchable fields, and queries resolve to ids that handlers re-fetch
// from the database.
package search

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"

	"salon_manager/config"
)

var client *redis.Client

func Client() *redis.Client {
	if client == nil {
		client = redis.NewClient(&redis.Options{
			Addr: config.ConfigOr("REDIS_ADDR", "localhost:6379"),
		})
	}
	return client
}

func key(kind string) string {
	return "search:" + kind
}

// Index stores (or replaces) the searchable text of one entity.
func Index(ctx context.Context, kind string, id uint, text string) error {
	return Client().HSet(ctx, key(kind), strconv.FormatUint(uint64(id), 10), strings.ToLower(text)).Err()
}

// Remove drops an entity from the mirror. Removing an unknown id is a
// no-op, matching idempotent delete semantics.
func Remove(ctx context.Context, kind string, id uint) error {
	return Client().HDel(ctx, key(kind), strconv.FormatUint(uint64(id), 10)).Err()
}

// Query returns the ids whose mirrored text contains every word of the
// query, in ascending id order so paging is stable.
func Query(ctx context.Context, kind string, query string) ([]uint, error) {
	entries, err := Client().HGetAll(ctx, key(kind)).Result()
	if err != nil {
		return nil, err
	}

	words := strings.Fields(strings.ToLower(query))
	var ids []uint
	for field, text := range entries {
		match := true
		for _, w := range words {
			if !strings.Contains(text, w) {
				match = false
				break
			}
		}
		if !match {
			continue
		}
		id, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, uint(id))
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}
