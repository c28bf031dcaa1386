package stores

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/prathamesh-patil-5090/banao-backend/apperrors"
	"github.com/prathamesh-patil-5090/banao-backend/models"
)

// MongoUserStore implements services.UserStore on a users collection.
type MongoUserStore struct {
	col *mongo.Collection
}

func NewMongoUserStore(col *mongo.Collection) *MongoUserStore {
	return &MongoUserStore{col: col}
}

// EnsureIndexes creates the unique constraints on email and username.
func (s *MongoUserStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.M{"email": 1}, Options: options.Index().SetUnique(true)},
		{Keys: bson.M{"username": 1}, Options: options.Index().SetUnique(true)},
	})
	return errors.Wrap(err, "create user indexes")
}

func (s *MongoUserStore) Insert(ctx context.Context, user models.User) error {
	if _, err := s.col.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.Wrap(apperrors.Conflict, "user already exists", err)
		}
		return apperrors.Wrap(apperrors.Internal, "insert user", errors.Wrap(err, "users"))
	}
	return nil
}

func (s *MongoUserStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	return s.findOne(ctx, bson.M{"_id": id})
}

func (s *MongoUserStore) FindByEmail(ctx context.Context, email string) (models.User, error) {
	return s.findOne(ctx, bson.M{"email": email})
}

func (s *MongoUserStore) FindByIdentifier(ctx context.Context, identifier string) (models.User, error) {
	return s.findOne(ctx, bson.M{"$or": []bson.M{
		{"email": identifier},
		{"username": identifier},
	}})
}

func (s *MongoUserStore) findOne(ctx context.Context, filter bson.M) (models.User, error) {
	var user models.User
	err := s.col.FindOne(ctx, filter).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return models.User{}, apperrors.New(apperrors.NotFound, "user not found")
	}
	if err != nil {
		return models.User{}, apperrors.Wrap(apperrors.Internal, "find user", errors.Wrap(err, "users"))
	}
	return user, nil
}

func (s *MongoUserStore) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	n, err := s.col.CountDocuments(ctx, bson.M{"$or": []bson.M{
		{"email": email},
		{"username": username},
	}})
	if err != nil {
		return false, apperrors.Wrap(apperrors.Internal, "count users", errors.Wrap(err, "users"))
	}
	return n > 0, nil
}

func (s *MongoUserStore) UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error {
	update := bson.M{"$set": bson.M{"password": passwordHash, "updatedAt": time.Now().UTC()}}
	return s.updateOne(ctx, id, update, "update password")
}

func (s *MongoUserStore) AddFriend(ctx context.Context, id, friendID primitive.ObjectID) error {
	return s.updateOne(ctx, id, bson.M{"$addToSet": bson.M{"friends": friendID}}, "add friend")
}

func (s *MongoUserStore) RemoveFriend(ctx context.Context, id, friendID primitive.ObjectID) error {
	return s.updateOne(ctx, id, bson.M{"$pull": bson.M{"friends": friendID}}, "remove friend")
}

func (s *MongoUserStore) ReplaceFriends(ctx context.Context, id primitive.ObjectID, friends []primitive.ObjectID) error {
	return s.updateOne(ctx, id, bson.M{"$set": bson.M{"friends": friends}}, "replace friends")
}

func (s *MongoUserStore) updateOne(ctx context.Context, id primitive.ObjectID, update bson.M, op string) error {
	result, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return apperrors.Wrap(apperrors.Internal, op, errors.Wrap(err, "users"))
	}
	if result.MatchedCount == 0 {
		return apperrors.New(apperrors.NotFound, "user not found")
	}
	return nil
}

func (s *MongoUserStore) FindSummaries(ctx context.Context, ids []primitive.ObjectID) ([]models.UserSummary, error) {
	if len(ids) == 0 {
		return []models.UserSummary{}, nil
	}
	projection := bson.M{
		"firstName":   1,
		"lastName":    1,
		"occupation":  1,
		"location":    1,
		"picturePath": 1,
	}
	cursor, err := s.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, options.Find().SetProjection(projection))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Internal, "find friends", errors.Wrap(err, "users"))
	}
	defer cursor.Close(ctx)
	summaries := []models.UserSummary{}
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, apperrors.Wrap(apperrors.Internal, "decode friends", errors.Wrap(err, "users"))
	}
	return summaries, nil
}

func (s *MongoUserStore) FindAll(ctx context.Context) ([]models.User, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Internal, "find users", errors.Wrap(err, "users"))
	}
	defer cursor.Close(ctx)
	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, apperrors.Wrap(apperrors.Internal, "decode users", errors.Wrap(err, "users"))
	}
	return users, nil
}
