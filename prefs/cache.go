package prefs

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

var (
	valuesCacheLock sync.Mutex
	_               Cacher = make(ValuesMap)
	_               Cacher = ValuesRedis{}
)

// A Cacher can store loaded Values paired to profile keys so hot paths -
// resolving an option on every keypress echo, say - skip the round trip
// to the backing store.
//
// A Cacher ought treat a miss as a normal outcome,
// reporting it through the second return value.
type Cacher interface {
	Get(ctx context.Context, key string) (Values, bool)
	Set(ctx context.Context, key string, vs Values)
}

// A ValuesMap stores profile key, Values pairs in a map.
//
// Server restarts reset this map.
// ValuesMap ought not be used for production environments.
type ValuesMap map[string]ValuesMapVal

// NewValuesMap initializes a ValuesMap for use as a Cacher.
func NewValuesMap() ValuesMap { return make(ValuesMap) }

// A ValuesMapVal is stored in a ValuesMap,
// wrapping Values.
type ValuesMapVal struct {
	Values

	at time.Time
}

// Get retrieves the Values paired to the profile key
// much like a regular map.
func (v ValuesMap) Get(ctx context.Context, key string) (Values, bool) {
	if key == "" {
		return nil, false
	}

	select {
	case <-ctx.Done():
		return nil, false

	default:
		valuesCacheLock.Lock()
		defer valuesCacheLock.Unlock()

		val, ok := v[key]
		if !ok {
			return nil, false
		}

		return val.Values.Clone(), true
	}
}

// Set overwrites the Values paired to key in the map.
//
// For each call to Set, keys older than 24 hours are evicted.
func (v ValuesMap) Set(ctx context.Context, key string, vs Values) {
	select {
	case <-ctx.Done():
		return
	default:
		valuesCacheLock.Lock()
		defer valuesCacheLock.Unlock()

		yesterday := time.Now().AddDate(0, 0, -1)
		for k, val := range v {
			if val.at.Before(yesterday) {
				delete(v, k)
			}
		}

		v[key] = ValuesMapVal{Values: vs.Clone(), at: time.Now()}
	}
}

// A ValuesRedis connects to a Redis backend
// for the purposes of sharing cached Values between processes.
type ValuesRedis struct {
	client *redis.Client
}

// NewRedisCache constructs a ValuesRedis with the options passed in.
func NewRedisCache(opts *redis.Options) ValuesRedis {
	return ValuesRedis{client: redis.NewClient(opts)}
}

// Get retrieves the Values paired to key from the connected Redis backend.
func (v ValuesRedis) Get(ctx context.Context, key string) (Values, bool) {
	select {
	case <-ctx.Done():
		return nil, false
	default:
		b, err := v.client.Get(ctx, key).Bytes()
		if err != nil {
			return nil, false
		}

		vs := make(Values)
		if err := json.Unmarshal(b, &vs); err != nil {
			return nil, false
		}

		return vs, true
	}
}

// Set saves the Values by pairing them to the key in the Redis backend.
//
// Entries live for a day.
func (v ValuesRedis) Set(ctx context.Context, key string, vs Values) {
	select {
	case <-ctx.Done():
		return
	default:
		b, err := json.Marshal(vs)
		if err != nil {
			return
		}
		v.client.Set(ctx, key, b, time.Duration(24*time.Hour))
	}
}
