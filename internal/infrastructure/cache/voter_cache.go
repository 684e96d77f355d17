package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"voter-pledge-admin/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	voterListKeyPrefix    = "voters:list:"
	filterOptionKeyPrefix = "voters:filter-options:"
)

// TTLPolicy holds how long each kind of voter listing data stays cached.
type TTLPolicy struct {
	List          time.Duration
	FilterOptions time.Duration
}

// VoterListKey identifies one cached page of the voter listing. Every field
// takes part in the key so scoped results never leak between users.
type VoterListKey struct {
	UserID uuid.UUID
	Roles  entity.RoleSet
	Filter entity.VoterFilter
	Page   int
}

func (k VoterListKey) String() string {
	return fmt.Sprintf("%suser=%s:roles=%s:search=%s:dhaairaa=%s:majilis_con=%s:page=%d",
		voterListKeyPrefix,
		k.UserID,
		RoleSetHash(k.Roles),
		url.QueryEscape(k.Filter.Search),
		url.QueryEscape(k.Filter.Dhaairaa),
		url.QueryEscape(k.Filter.MajilisCon),
		k.Page,
	)
}

// FilterOptionsKey identifies the cached distinct values of one column.
type FilterOptionsKey struct {
	UserID uuid.UUID
	Roles  entity.RoleSet
	Column string
}

func (k FilterOptionsKey) String() string {
	return fmt.Sprintf("%s%s:user=%s:roles=%s", filterOptionKeyPrefix, k.Column, k.UserID, RoleSetHash(k.Roles))
}

// RoleSetHash is a short digest of a role set that ignores assignment order.
func RoleSetHash(roles entity.RoleSet) string {
	sum := sha256.Sum256([]byte(strings.Join(roles.SortedKeys(), ",")))
	return hex.EncodeToString(sum[:8])
}

// VoterCache is a best-effort read-through cache in front of the voter
// listing. A nil redis client disables caching.
type VoterCache struct {
	client *redis.Client
	log    *logrus.Logger
	TTL    TTLPolicy
}

func NewVoterCache(client *redis.Client, log *logrus.Logger, ttl TTLPolicy) *VoterCache {
	return &VoterCache{client: client, log: log, TTL: ttl}
}

// Remember returns the cached value under key, or loads, stores and returns it.
// Redis failures are logged and fall back to load.
func Remember[T any](ctx context.Context, c *VoterCache, key fmt.Stringer, ttl time.Duration, load func() (T, error)) (T, error) {
	if c == nil || c.client == nil || ttl <= 0 {
		return load()
	}

	k := key.String()
	raw, err := c.client.Get(ctx, k).Bytes()
	switch {
	case err == nil:
		var cached T
		decodeErr := json.Unmarshal(raw, &cached)
		if decodeErr == nil {
			return cached, nil
		}
		c.log.Warnf("Failed to decode cached value %s: %+v", k, decodeErr)
	case !errors.Is(err, redis.Nil):
		c.log.Warnf("Failed to read cache %s: %+v", k, err)
	}

	value, err := load()
	if err != nil {
		return value, err
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		c.log.Warnf("Failed to encode cache value %s: %+v", k, err)
		return value, nil
	}
	if err := c.client.Set(ctx, k, encoded, ttl).Err(); err != nil {
		c.log.Warnf("Failed to write cache %s: %+v", k, err)
	}
	return value, nil
}
