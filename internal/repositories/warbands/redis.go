package warbands

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/fiveleagues/warband-bot/internal/domain/warband"
	"github.com/fiveleagues/warband-bot/internal/errors"
)

const (
	warbandKeyPrefix = "warband:"
	warbandIndexKey  = "warbands"
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

type redisRepository struct {
	client redis.UniversalClient
}

// NewRedisRepository creates a new Redis-backed warband repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg.Client == nil {
		panic("redis client is required")
	}
	return &redisRepository{client: cfg.Client}
}

func (r *redisRepository) Create(ctx context.Context, wb *warband.Warband) error {
	if wb == nil {
		return errors.InvalidArgument("warband cannot be nil")
	}
	if wb.ID == "" {
		return errors.InvalidArgument("warband ID cannot be empty")
	}

	key := warbandKeyPrefix + wb.ID
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return errors.Wrap(err, "failed to check warband existence")
	}
	if exists > 0 {
		return errors.AlreadyExistsf("warband with ID %s already exists", wb.ID)
	}

	data, err := json.Marshal(wb)
	if err != nil {
		return errors.Wrap(err, "failed to serialize warband")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, warbandIndexKey, wb.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(err, "failed to create warband")
	}
	return nil
}

func (r *redisRepository) Get(ctx context.Context, id string) (*warband.Warband, error) {
	data, err := r.client.Get(ctx, warbandKeyPrefix+id).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("warband not found: %s", id)
		}
		return nil, errors.Wrap(err, "failed to get warband")
	}

	var wb warband.Warband
	if err := json.Unmarshal(data, &wb); err != nil {
		return nil, errors.Wrap(err, "failed to deserialize warband")
	}
	return &wb, nil
}

func (r *redisRepository) List(ctx context.Context) ([]*warband.Warband, error) {
	ids, err := r.client.SMembers(ctx, warbandIndexKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list warbands")
	}

	warbandList := make([]*warband.Warband, len(ids))
	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			wb, err := r.Get(ctx, id)
			if err != nil {
				return errors.Wrapf(err, "failed to get warband %s", id)
			}
			warbandList[i] = wb
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(warbandList, func(i, j int) bool {
		return warbandList[i].CreatedAt.Before(warbandList[j].CreatedAt)
	})
	return warbandList, nil
}

func (r *redisRepository) Update(ctx context.Context, wb *warband.Warband) error {
	if wb == nil {
		return errors.InvalidArgument("warband cannot be nil")
	}
	if wb.ID == "" {
		return errors.InvalidArgument("warband ID cannot be empty")
	}

	key := warbandKeyPrefix + wb.ID
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return errors.Wrap(err, "failed to check warband existence")
	}
	if exists == 0 {
		return errors.NotFoundf("warband not found: %s", wb.ID)
	}

	data, err := json.Marshal(wb)
	if err != nil {
		return errors.Wrap(err, "failed to serialize warband")
	}
	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return errors.Wrap(err, "failed to update warband")
	}
	return nil
}

func (r *redisRepository) Delete(ctx context.Context, id string) error {
	exists, err := r.client.Exists(ctx, warbandKeyPrefix+id).Result()
	if err != nil {
		return errors.Wrap(err, "failed to check warband existence")
	}
	if exists == 0 {
		return errors.NotFoundf("warband not found: %s", id)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, warbandKeyPrefix+id)
	pipe.SRem(ctx, warbandIndexKey, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(err, "failed to delete warband")
	}
	return nil
}
