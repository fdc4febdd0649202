package clicker

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// MongoCollection is the collection holding one document per session.
const MongoCollection = "clicker_sessions"

// mongoDocument stores only the active power-up keys; the rest of the
// catalogue is rebuilt on load.
type mongoDocument struct {
	ID         string    `bson:"_id"`
	Clicks     int64     `bson:"clicks"`
	Multiplier int64     `bson:"multiplier"`
	Active     []string  `bson:"active_power_ups"`
	UpdatedAt  time.Time `bson:"updated_at"`
}

// MongoStore keeps each session as a document in MongoCollection.
type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{coll: db.Collection(MongoCollection)}
}

// EnsureIndexes creates a TTL index on updated_at so idle sessions expire
// after ttl. A non-positive ttl is a no-op.
func (s *MongoStore) EnsureIndexes(ctx context.Context, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "updated_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(int32(ttl / time.Second)),
	})
	if err != nil {
		return errors.Join(ErrSaveState, err)
	}
	return nil
}

func (s *MongoStore) Load(ctx context.Context, session uuid.UUID) (State, error) {
	var doc mongoDocument
	err := s.coll.FindOne(ctx, bson.D{{Key: "_id", Value: session.String()}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return State{}, ErrStateNotFound
	}
	if err != nil {
		return State{}, errors.Join(ErrLoadState, err)
	}

	st := State{Clicks: doc.Clicks, Multiplier: doc.Multiplier}
	for _, key := range doc.Active {
		st.PowerUps = append(st.PowerUps, PowerUp{Key: key, Active: true})
	}
	return st.normalize(), nil
}

func (s *MongoStore) Save(ctx context.Context, session uuid.UUID, state State) error {
	doc := mongoDocument{
		ID:         session.String(),
		Clicks:     state.Clicks,
		Multiplier: state.Multiplier,
		Active:     []string{},
		UpdatedAt:  time.Now().UTC(),
	}
	for _, p := range state.PowerUps {
		if p.Active {
			doc.Active = append(doc.Active, p.Key)
		}
	}

	_, err := s.coll.ReplaceOne(ctx,
		bson.D{{Key: "_id", Value: doc.ID}},
		doc,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return errors.Join(ErrSaveState, err)
	}
	return nil
}
