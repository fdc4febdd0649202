// Package ratelimiter implements a token bucket limiter with in-memory and
// Redis stores and an HTTP middleware.
//
// A bucket holds up to Capacity tokens and regains RefillRate tokens every
// RefillInterval. A request costs one token; a request that finds too few
// tokens is denied without draining the bucket further.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//	    Capacity:       20,
//	    RefillRate:     10,
//	    RefillInterval: time.Second,
//	})
//	if err != nil {
//	    return err
//	}
//
//	r.With(ratelimiter.Middleware(limiter, ratelimiter.Composite(clientip.GetIP), nil, nil)).
//	    Post("/click", click)
//
// RedisStore runs the same algorithm in a Lua script so several instances
// share one budget per key.
package ratelimiter
