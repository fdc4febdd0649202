// Package mongo connects to MongoDB with the official v2 driver and exposes a
// readiness check.
//
//	var cfg mongo.Config
//	config.MustLoad(&cfg)
//
//	db, err := mongo.NewWithDatabase(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer db.Client().Disconnect(context.Background())
//
// Connection failures wrap ErrFailedToConnectToMongo; the last driver error
// is joined to it.
package mongo
