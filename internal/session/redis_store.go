package session

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"registrant-auth/internal/registrant"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// upsertScript swaps the current token of one osu id in a single step.
//
//	KEYS[1] osu key, KEYS[2] new token key
//	ARGV[1] new token, ARGV[2] session JSON when inserted,
//	ARGV[3] session JSON when replaced, ARGV[4] token key prefix
//
// It returns 1 when a previous session was replaced.
var upsertScript = redis.NewScript(`
local prev = redis.call('GET', KEYS[1])
local data = ARGV[2]
if prev then
  data = ARGV[3]
  if prev ~= ARGV[1] then
    redis.call('DEL', ARGV[4] .. prev)
  end
end
redis.call('SET', KEYS[2], data)
redis.call('SET', KEYS[1], ARGV[1])
if prev then
  return 1
end
return 0
`)

// RedisStore keeps sessions in Redis under two keys:
//
//	session:token:<token> -> JSON session
//	session:osu:<osu id>  -> current token
//
// Both are rewritten by upsertScript, so concurrent issuances for one osu id
// serialize in Redis and the last one wins.
type RedisStore struct {
	client      *redis.Client
	registrants registrant.Store
	prefix      string
	now         func() time.Time
}

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(client *redis.Client, registrants registrant.Store) *RedisStore {
	return &RedisStore{
		client:      client,
		registrants: registrants,
		prefix:      "session:",
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (r *RedisStore) tokenKey(token string) string {
	return r.prefix + "token:" + token
}

func (r *RedisStore) osuKey(osuID int64) string {
	return r.prefix + "osu:" + strconv.FormatInt(osuID, 10)
}

func (r *RedisStore) FindRegistrantByToken(ctx context.Context, token string) (*registrant.Registrant, error) {
	return findRegistrant(ctx, r, r.registrants, token)
}

func (r *RedisStore) GetRegistrantByOsuID(ctx context.Context, osuID int64) (*registrant.Registrant, error) {
	return r.registrants.GetByOsuID(ctx, osuID)
}

func (r *RedisStore) FindByToken(ctx context.Context, token string) (*Session, error) {
	val, err := r.client.Get(ctx, r.tokenKey(token)).Result()
	if err == redis.Nil {
		return nil, nil // not found
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find session")
	}

	var s Session
	if err := json.Unmarshal([]byte(val), &s); err != nil {
		return nil, errors.Wrap(err, "failed to decode session")
	}

	return &s, nil
}

func (r *RedisStore) Upsert(ctx context.Context, s Session) (*Session, error) {
	if err := validate(s); err != nil {
		return nil, upsertFailed(s.OsuID, err)
	}

	inserted := s
	inserted.ID = s.OsuID
	inserted.UpdatedAt = nil

	now := r.now()
	replaced := inserted
	replaced.UpdatedAt = &now

	insertData, err := json.Marshal(inserted)
	if err != nil {
		return nil, upsertFailed(s.OsuID, errors.Wrap(err, "failed to marshal session"))
	}
	replaceData, err := json.Marshal(replaced)
	if err != nil {
		return nil, upsertFailed(s.OsuID, errors.Wrap(err, "failed to marshal session"))
	}

	res, err := upsertScript.Run(ctx, r.client,
		[]string{r.osuKey(s.OsuID), r.tokenKey(s.Token)},
		s.Token, insertData, replaceData, r.tokenKey(""),
	).Int()
	if err != nil {
		return nil, upsertFailed(s.OsuID, errors.Wrap(err, "failed to upsert session"))
	}

	if res == 1 {
		return &replaced, nil
	}
	return &inserted, nil
}
