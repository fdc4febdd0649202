// Package redis connects to Redis with go-redis/v9 and exposes a readiness
// check.
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
// Connect errors wrap ErrFailedToParseRedisConnString, ErrEmptyConnectionURL
// or ErrRedisNotReady.
package redis
