package mongo_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/passgame/pkg/mongo"
)

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	t.Run("empty url", func(t *testing.T) {
		t.Parallel()
		_, err := mongo.New(context.Background(), mongo.Config{})
		assert.ErrorIs(t, err, mongo.ErrEmptyConnectionURL)
	})

	t.Run("empty database", func(t *testing.T) {
		t.Parallel()
		_, err := mongo.NewWithDatabase(context.Background(), mongo.Config{ConnectionURL: "mongodb://localhost:27017"})
		assert.ErrorIs(t, err, mongo.ErrEmptyDatabase)
	})

	t.Run("malformed url", func(t *testing.T) {
		t.Parallel()
		_, err := mongo.New(context.Background(), mongo.Config{ConnectionURL: "not-a-mongo-url", RetryAttempts: 1})
		assert.ErrorIs(t, err, mongo.ErrFailedToConnectToMongo)
	})

	t.Run("cancelled context stops retries", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := mongo.New(ctx, mongo.Config{
			ConnectionURL:  "mongodb://127.0.0.1:1",
			ConnectTimeout: 100 * time.Millisecond,
			RetryAttempts:  3,
			RetryInterval:  time.Hour,
		})
		assert.ErrorIs(t, err, mongo.ErrFailedToConnectToMongo)
	})
}

func TestHealthcheck(t *testing.T) {
	url := os.Getenv("MONGODB_URL")
	if url == "" {
		t.Skip("MONGODB_URL not set")
	}

	client, err := mongo.New(context.Background(), mongo.Config{ConnectionURL: url, RetryAttempts: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	assert.NoError(t, mongo.Healthcheck(client)(context.Background()))
}
