package repository

import (
	"context"

	"github.com/Ramzi-dr/peoplecounting/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// IUserRepository defines user persistence over the users collection.
// Every operation is keyed by email; uniqueness is the caller's concern
// (ExistsByEmail before Insert), there is no unique index on the store.
type IUserRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Insert(ctx context.Context, user *model.User) error
	UpdateByEmail(ctx context.Context, email string, patch map[string]any) (int64, error)
	DeleteByEmail(ctx context.Context, email string) (int64, error)
	ListAll(ctx context.Context) ([]model.User, error)
}

// UserRepository implements user persistence
type UserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *mongo.Database) IUserRepository {
	return &UserRepository{collection: db.Collection("users")}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user *model.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) Insert(ctx context.Context, user *model.User) error {
	_, err := r.collection.InsertOne(ctx, user)
	return err
}

// UpdateByEmail applies a merge-patch: only the keys present in patch are
// overwritten. Returns the matched count so callers can distinguish a
// missing document from a matched-but-unmodified one.
func (r *UserRepository) UpdateByEmail(ctx context.Context, email string, patch map[string]any) (int64, error) {
	res, err := r.collection.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": patch})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (r *UserRepository) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"email": email})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// ListAll returns every user with the password hash projected out.
func (r *UserRepository) ListAll(ctx context.Context) ([]model.User, error) {
	opts := options.Find().SetProjection(bson.M{"password": 0})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []model.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}
