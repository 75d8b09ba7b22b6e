package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophtasks/internal/common"
	"github.com/dmitrijs2005/gophtasks/internal/server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CollectionName is the MongoDB collection holding user documents.
const CollectionName = "users"

// userDocument is the stored shape; field names match the documents written
// by earlier deployments of the service.
type userDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (d *userDocument) toModel() *models.User {
	return &models.User{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: []byte(d.Password),
		CreatedAt:    d.CreatedAt,
	}
}

// MongoRepository implements user storage over a MongoDB collection.
// Email uniqueness relies on the unique index created by the repository manager.
type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(coll *mongo.Collection) *MongoRepository {
	return &MongoRepository{coll: coll}
}

func (r *MongoRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	now := time.Now().UTC()
	doc := userDocument{
		Name:      user.Name,
		Email:     user.Email,
		Password:  string(user.PasswordHash),
		CreatedAt: now,
		UpdatedAt: now,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, common.ErrConflict
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("db error: unexpected inserted id %v", res.InsertedID)
	}

	user.ID = oid.Hex()
	user.CreatedAt = now
	return user, nil
}

func (r *MongoRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, common.ErrorNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *MongoRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var doc userDocument
	err := r.coll.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return doc.toModel(), nil
}
