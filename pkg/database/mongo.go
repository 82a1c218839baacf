package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const connectTimeout = 10 * time.Second

// DefaultName is the database name used when DATABASE_NAME is unset.
const DefaultName = "gamification"

// Mongo wraps an optional MongoDB handle. The demo API never requires it;
// a Mongo whose handle failed to initialize still satisfies the diagnostic
// collaborator interface and reports itself as not initialized.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect makes a best-effort attempt to open the handle. It never returns
// an error: a failed connection yields a Mongo that is present but not
// initialized, which the diagnostic endpoint reports as such.
func Connect(uri, name string) *Mongo {
	if name == "" {
		name = DefaultName
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Printf("database: connect failed: %v", err)
		return &Mongo{}
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Printf("database: ping failed: %v", err)
		return &Mongo{}
	}

	log.Println("✅ Connected to MongoDB")
	return &Mongo{
		client: client,
		db:     client.Database(name),
	}
}

func (m *Mongo) Initialized() bool {
	return m != nil && m.db != nil
}

func (m *Mongo) Name() string {
	if !m.Initialized() {
		return ""
	}
	return m.db.Name()
}

func (m *Mongo) ListCollectionNames(ctx context.Context) ([]string, error) {
	return m.db.ListCollectionNames(ctx, bson.D{})
}

// Close releases the underlying client, if one was established.
func (m *Mongo) Close(ctx context.Context) error {
	if m == nil || m.client == nil {
		return nil
	}
	return m.client.Disconnect(ctx)
}
