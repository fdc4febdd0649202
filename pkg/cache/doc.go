// Package cache provides an in-process, generic LRU cache.
//
//	sessions := cache.NewLRU[uuid.UUID, clicker.State](10_000,
//	    cache.WithEvictCallback(func(id uuid.UUID, _ clicker.State) {
//	        log.Debug("session evicted", logger.SessionID(id))
//	    }),
//	)
//	sessions.Put(id, state)
//	state, ok := sessions.Get(id)
//
// All methods are safe for concurrent use.
package cache
