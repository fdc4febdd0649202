// Package clicker implements the click counter mini-game played between
// password phases.
//
// Each session keeps a click total, a base multiplier and a catalogue of ten
// power-ups. A click adds the base multiplier times the multiplier of every
// active power-up. The state lives in a Store: MemoryStore (bounded LRU),
// RedisStore (JSON under clicker:<session>), PostgresStore (jsonb rows,
// schema in Migrations) or MongoStore (one document per session). Sessions never saved read as a fresh NewState.
//
//	svc := clicker.NewService(clicker.NewMemoryStore(10_000, nil))
//	id, _, _ := svc.NewSession(ctx)
//	_, _ = svc.TogglePowerUp(ctx, id, clicker.DoubleClick)
//	st, _ := svc.Increment(ctx, id) // st.Clicks == 2
//
//	r.Mount("/clicker", clicker.Router(svc, errorHandler))
package clicker
