package repomanager

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophtasks/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/gophtasks/internal/server/repositories/users"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoRepositoryManager vends MongoDB-backed repositories over one client.
type MongoRepositoryManager struct {
	client *mongo.Client
	db     *mongo.Database
	users  *users.MongoRepository
	tasks  *tasks.MongoRepository
}

func NewMongoRepositoryManager(ctx context.Context, uri, dbName string) (*MongoRepositoryManager, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	return newMongoRepositoryManager(client, client.Database(dbName)), nil
}

func newMongoRepositoryManager(client *mongo.Client, db *mongo.Database) *MongoRepositoryManager {
	return &MongoRepositoryManager{
		client: client,
		db:     db,
		users:  users.NewMongoRepository(db.Collection(users.CollectionName)),
		tasks:  tasks.NewMongoRepository(db.Collection(tasks.CollectionName)),
	}
}

func (m *MongoRepositoryManager) Users() users.Repository { return m.users }

func (m *MongoRepositoryManager) Tasks() tasks.Repository { return m.tasks }

// RunMigrations ensures the indexes the repositories rely on. Creating an
// index that already exists is a no-op.
func (m *MongoRepositoryManager) RunMigrations(ctx context.Context) error {
	_, err := m.db.Collection(users.CollectionName).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("users index: %w", err)
	}

	_, err = m.db.Collection(tasks.CollectionName).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user", Value: 1}, {Key: "completed", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("tasks index: %w", err)
	}
	return nil
}

func (m *MongoRepositoryManager) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

func (m *MongoRepositoryManager) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
