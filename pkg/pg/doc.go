// Package pg connects to PostgreSQL through a pgx/v5 pool, applies goose
// migrations from an fs.FS, and classifies common driver errors.
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	if err := pg.Migrate(ctx, pool, clicker.Migrations, cfg, log); err != nil {
//	    return err
//	}
//
// Healthcheck plugs into httpserver.Readiness.
package pg
