package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/oksasatya/go-todo-api/internal/domain"
	"github.com/oksasatya/go-todo-api/internal/domain/entity"
	"github.com/oksasatya/go-todo-api/internal/domain/repository"
)

const usersCollection = "users"

type userDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password,omitempty"`
	Name         string             `bson:"name"`
	Provider     string             `bson:"provider"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

func (d userDoc) toEntity() entity.User {
	return entity.User{
		ID:           d.ID.Hex(),
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Name:         d.Name,
		Provider:     d.Provider,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// UserRepository stores one document per user in the users collection.
// Email uniqueness is backed by the unique index from EnsureIndexes; a
// duplicate insert surfaces as domain.ErrEmailTaken.
type UserRepository struct {
	db *mongo.Database
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) col() *mongo.Collection {
	return r.db.Collection(usersCollection)
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	// Pre-check gives a clean conflict even without the unique index.
	err := r.col().FindOne(ctx, bson.M{"email": u.Email}).Err()
	if err == nil {
		return domain.ErrEmailTaken
	}
	if err != mongo.ErrNoDocuments {
		return err
	}

	now := time.Now().UTC()
	d := userDoc{
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Name:         u.Name,
		Provider:     u.Provider,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	res, err := r.col().InsertOne(ctx, d)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEmailTaken
		}
		return err
	}

	u.ID = res.InsertedID.(primitive.ObjectID).Hex()
	u.CreatedAt = now
	u.UpdatedAt = now
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	var d userDoc
	err = r.col().FindOne(ctx, bson.M{"_id": oid}).Decode(&d)
	if err == mongo.ErrNoDocuments {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	u := d.toEntity()
	return &u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var d userDoc
	err := r.col().FindOne(ctx, bson.M{"email": email}).Decode(&d)
	if err == mongo.ErrNoDocuments {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	u := d.toEntity()
	return &u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
