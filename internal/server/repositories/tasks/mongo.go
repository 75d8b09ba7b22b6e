package tasks

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/dmitrijs2005/gophtasks/internal/common"
	"github.com/dmitrijs2005/gophtasks/internal/server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CollectionName is the MongoDB collection holding task documents.
const CollectionName = "tasks"

type taskDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Completed   bool               `bson:"completed"`
	User        primitive.ObjectID `bson:"user"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func (d *taskDocument) toModel() models.Task {
	return models.Task{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Completed:   d.Completed,
		UserID:      d.User.Hex(),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// MongoRepository implements task storage over a MongoDB collection.
// Natural order is _id ascending, i.e. creation order.
type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(coll *mongo.Collection) *MongoRepository {
	return &MongoRepository{coll: coll}
}

// errNoOwner marks an owner id that cannot own any document.
var errNoOwner = errors.New("owner id is not an object id")

func mongoFilter(f models.TaskFilter) (bson.M, error) {
	owner, err := primitive.ObjectIDFromHex(f.OwnerID)
	if err != nil {
		return nil, errNoOwner
	}

	filter := bson.M{"user": owner}
	if f.Completed != nil {
		filter["completed"] = *f.Completed
	}
	if f.Query != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(f.Query), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"title": re},
			bson.M{"description": re},
		}
	}
	return filter, nil
}

func ids(ownerID, id string) (owner, oid primitive.ObjectID, err error) {
	if owner, err = primitive.ObjectIDFromHex(ownerID); err != nil {
		return owner, oid, common.ErrorNotFound
	}
	if oid, err = primitive.ObjectIDFromHex(id); err != nil {
		return owner, oid, common.ErrorNotFound
	}
	return owner, oid, nil
}

func (r *MongoRepository) Find(ctx context.Context, filter models.TaskFilter, page *models.Page) ([]models.Task, error) {
	result := make([]models.Task, 0)

	f, err := mongoFilter(filter)
	if err != nil {
		return result, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	if page != nil {
		opts.SetSkip(page.Offset).SetLimit(page.Limit)
	}

	cur, err := r.coll.Find(ctx, f, opts)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var doc taskDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, doc.toModel())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *MongoRepository) Count(ctx context.Context, filter models.TaskFilter) (int64, error) {
	f, err := mongoFilter(filter)
	if err != nil {
		return 0, nil
	}
	n, err := r.coll.CountDocuments(ctx, f)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *MongoRepository) FindOne(ctx context.Context, ownerID, id string) (*models.Task, error) {
	owner, oid, err := ids(ownerID, id)
	if err != nil {
		return nil, err
	}

	var doc taskDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid, "user": owner}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	t := doc.toModel()
	return &t, nil
}

func (r *MongoRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	owner, err := primitive.ObjectIDFromHex(task.UserID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	now := time.Now().UTC()
	doc := taskDocument{
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		User:        owner,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("db error: unexpected inserted id %v", res.InsertedID)
	}

	task.ID = oid.Hex()
	task.CreatedAt = now
	task.UpdatedAt = now
	return task, nil
}

func (r *MongoRepository) Save(ctx context.Context, task *models.Task) (*models.Task, error) {
	owner, oid, err := ids(task.UserID, task.ID)
	if err != nil {
		return nil, err
	}

	update := bson.M{"$set": bson.M{
		"title":       task.Title,
		"description": task.Description,
		"completed":   task.Completed,
		"updatedAt":   time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc taskDocument
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid, "user": owner}, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	t := doc.toModel()
	return &t, nil
}

func (r *MongoRepository) Delete(ctx context.Context, ownerID, id string) error {
	owner, oid, err := ids(ownerID, id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid, "user": owner})
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if res.DeletedCount == 0 {
		return common.ErrorNotFound
	}
	return nil
}
