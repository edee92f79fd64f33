package db

import (
	"context"
	"fmt"

	"todo-api/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// nextSequence hands out autoincrement integer IDs from a counters
// collection, one counter document per record type.
func nextSequence(ctx context.Context, client *mongo.Client, database, name string) (int, error) {
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	filter := bson.M{"_id": name}
	update := bson.M{"$inc": bson.M{"seq": 1}}

	var counter struct {
		Seq int `bson:"seq"`
	}
	err := client.Database(database).Collection("counters").
		FindOneAndUpdate(ctx, filter, update, opts).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("error allocating %s id: %w", name, err)
	}
	return counter.Seq, nil
}

// MongoUserRepository implements the UserRepository interface for MongoDB
type MongoUserRepository struct {
	client     *mongo.Client
	database   string
	collection string
}

// NewMongoUserRepository creates a new MongoUserRepository
func NewMongoUserRepository(client *mongo.Client, database, collection string) *MongoUserRepository {
	return &MongoUserRepository{
		client:     client,
		database:   database,
		collection: collection,
	}
}

// Close closes the MongoDB connection
func (r *MongoUserRepository) Close() error {
	return r.client.Disconnect(context.Background())
}

// FindByID finds a user by ID
func (r *MongoUserRepository) FindByID(ctx context.Context, id int) (*models.User, error) {
	var user models.User
	err := r.client.Database(r.database).Collection(r.collection).
		FindOne(ctx, bson.M{"id": id}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error finding user: %w", err)
	}
	return &user, nil
}

// FindByUsername finds a user by username
func (r *MongoUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.client.Database(r.database).Collection(r.collection).
		FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error finding user: %w", err)
	}
	return &user, nil
}

// Create inserts a new user and returns it with its assigned ID
func (r *MongoUserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	id, err := nextSequence(ctx, r.client, r.database, "users")
	if err != nil {
		return nil, err
	}
	user.ID = id

	_, err = r.client.Database(r.database).Collection(r.collection).InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("error inserting user: %w", err)
	}
	return user, nil
}

// SetDisabled toggles the disabled flag on a user
func (r *MongoUserRepository) SetDisabled(ctx context.Context, id int, disabled bool) error {
	result, err := r.client.Database(r.database).Collection(r.collection).
		UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"disabled": disabled}})
	if err != nil {
		return fmt.Errorf("error updating user: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// MongoTodoRepository implements the TodoRepository interface for MongoDB
type MongoTodoRepository struct {
	client     *mongo.Client
	database   string
	collection string
}

// NewMongoTodoRepository creates a new MongoTodoRepository
func NewMongoTodoRepository(client *mongo.Client, database, collection string) *MongoTodoRepository {
	return &MongoTodoRepository{
		client:     client,
		database:   database,
		collection: collection,
	}
}

// Close closes the MongoDB connection
func (r *MongoTodoRepository) Close() error {
	return r.client.Disconnect(context.Background())
}

// FindByIDAndOwner finds a todo by ID scoped to its owner. Both filters live
// in the same query, so "missing" and "not yours" come back identical.
func (r *MongoTodoRepository) FindByIDAndOwner(ctx context.Context, id, ownerID int) (*models.Todo, error) {
	var todo models.Todo
	err := r.client.Database(r.database).Collection(r.collection).
		FindOne(ctx, bson.M{"id": id, "owner_id": ownerID}).Decode(&todo)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error finding todo: %w", err)
	}
	return &todo, nil
}

// FindAllByOwner finds all todos owned by a user, in insertion order
func (r *MongoTodoRepository) FindAllByOwner(ctx context.Context, ownerID int) ([]models.Todo, error) {
	opts := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})
	cursor, err := r.client.Database(r.database).Collection(r.collection).
		Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error querying todos: %w", err)
	}
	defer cursor.Close(ctx)

	var todos []models.Todo
	if err := cursor.All(ctx, &todos); err != nil {
		return nil, fmt.Errorf("error decoding todos: %w", err)
	}
	return todos, nil
}

// Create inserts a new todo and returns it with its assigned ID. Mongo has
// no foreign keys, so owner existence is checked here to keep the same
// integrity contract as the SQLite backend.
func (r *MongoTodoRepository) Create(ctx context.Context, todo *models.Todo) (*models.Todo, error) {
	count, err := r.client.Database(r.database).Collection("users").
		CountDocuments(ctx, bson.M{"id": todo.OwnerID})
	if err != nil {
		return nil, fmt.Errorf("error checking todo owner: %w", err)
	}
	if count == 0 {
		return nil, ErrConstraint
	}

	id, err := nextSequence(ctx, r.client, r.database, "todos")
	if err != nil {
		return nil, err
	}
	todo.ID = id

	_, err = r.client.Database(r.database).Collection(r.collection).InsertOne(ctx, todo)
	if err != nil {
		return nil, fmt.Errorf("error inserting todo: %w", err)
	}
	return todo, nil
}

// Update writes all fields of an existing todo
func (r *MongoTodoRepository) Update(ctx context.Context, todo *models.Todo) (*models.Todo, error) {
	result, err := r.client.Database(r.database).Collection(r.collection).
		UpdateOne(ctx, bson.M{"id": todo.ID}, bson.M{"$set": todo})
	if err != nil {
		return nil, fmt.Errorf("error updating todo: %w", err)
	}
	if result.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return todo, nil
}

// Delete removes a todo by ID
func (r *MongoTodoRepository) Delete(ctx context.Context, id int) error {
	result, err := r.client.Database(r.database).Collection(r.collection).
		DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting todo: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
