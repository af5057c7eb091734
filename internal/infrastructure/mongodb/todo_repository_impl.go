package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/oksasatya/go-todo-api/internal/domain"
	"github.com/oksasatya/go-todo-api/internal/domain/entity"
	"github.com/oksasatya/go-todo-api/internal/domain/repository"
)

const todosCollection = "todos"

// todoDoc is the persisted shape: one document per todo, carrying the owner
// reference. The Mongo ObjectID is converted to/from the public string id at
// the repository boundary.
type todoDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"userId"`
	Text      string             `bson:"text"`
	Completed bool               `bson:"completed"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt,omitempty"`
}

func (d todoDoc) toEntity() entity.Todo {
	return entity.Todo{
		ID:        d.ID.Hex(),
		Text:      d.Text,
		Completed: d.Completed,
		CreatedAt: d.CreatedAt,
		OwnerID:   d.UserID,
	}
}

// TodoRepository is the document-database storage backend. Every query is
// scoped by the owner id; a malformed id string is reported as absence
// rather than a parsing failure.
type TodoRepository struct {
	db *mongo.Database
}

func NewTodoRepository(db *mongo.Database) *TodoRepository {
	return &TodoRepository{db: db}
}

func (r *TodoRepository) col() *mongo.Collection {
	return r.db.Collection(todosCollection)
}

func (r *TodoRepository) FindAll(ctx context.Context, ownerID string) ([]entity.Todo, error) {
	cur, err := r.col().Find(ctx, bson.M{"userId": ownerID})
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()

	out := make([]entity.Todo, 0)
	for cur.Next(ctx) {
		var d todoDoc
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		out = append(out, d.toEntity())
	}
	return out, cur.Err()
}

func (r *TodoRepository) FindByID(ctx context.Context, id, ownerID string) (*entity.Todo, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var d todoDoc
	err = r.col().FindOne(ctx, bson.M{"_id": oid, "userId": ownerID}).Decode(&d)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	t := d.toEntity()
	return &t, nil
}

func (r *TodoRepository) Create(ctx context.Context, text string, completed bool, ownerID string) (*entity.Todo, error) {
	d := todoDoc{
		UserID:    ownerID,
		Text:      text,
		Completed: completed,
		CreatedAt: time.Now().UTC(),
	}
	res, err := r.col().InsertOne(ctx, d)
	if err != nil {
		return nil, err
	}
	d.ID = res.InsertedID.(primitive.ObjectID)
	t := d.toEntity()
	return &t, nil
}

func (r *TodoRepository) Update(ctx context.Context, id string, upd repository.TodoUpdate, ownerID string) (*entity.Todo, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("update todo %s: %w", id, domain.ErrNotFound)
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if upd.Text != nil {
		set["text"] = *upd.Text
	}
	if upd.Completed != nil {
		set["completed"] = *upd.Completed
	}

	var d todoDoc
	err = r.col().FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "userId": ownerID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&d)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("update todo %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	t := d.toEntity()
	return &t, nil
}

func (r *TodoRepository) Delete(ctx context.Context, id, ownerID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("delete todo %s: %w", id, domain.ErrNotFound)
	}
	res, err := r.col().DeleteOne(ctx, bson.M{"_id": oid, "userId": ownerID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("delete todo %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

var _ repository.TodoRepository = (*TodoRepository)(nil)
