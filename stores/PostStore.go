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

// MongoPostStore implements services.PostStore on a posts collection.
// Comments live embedded in the post document; the like-set is a bson map
// keyed by user id hex.
type MongoPostStore struct {
	col *mongo.Collection
}

func NewMongoPostStore(col *mongo.Collection) *MongoPostStore {
	return &MongoPostStore{col: col}
}

func (s *MongoPostStore) Insert(ctx context.Context, post models.Post) error {
	if _, err := s.col.InsertOne(ctx, post); err != nil {
		return apperrors.Wrap(apperrors.Internal, "insert post", errors.Wrap(err, "posts"))
	}
	return nil
}

func (s *MongoPostStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.Post, error) {
	var post models.Post
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		return models.Post{}, apperrors.New(apperrors.NotFound, "post not found")
	}
	if err != nil {
		return models.Post{}, apperrors.Wrap(apperrors.Internal, "find post", errors.Wrap(err, "posts"))
	}
	return post, nil
}

func (s *MongoPostStore) FindAll(ctx context.Context) ([]models.Post, error) {
	return s.find(ctx, bson.M{})
}

func (s *MongoPostStore) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Post, error) {
	return s.find(ctx, bson.M{"userId": userID})
}

func (s *MongoPostStore) find(ctx context.Context, filter bson.M) ([]models.Post, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Internal, "find posts", errors.Wrap(err, "posts"))
	}
	defer cursor.Close(ctx)
	posts := []models.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, apperrors.Wrap(apperrors.Internal, "decode posts", errors.Wrap(err, "posts"))
	}
	return posts, nil
}

// SetLike updates one key of the likes map so concurrent toggles by
// different users cannot overwrite each other's entries.
func (s *MongoPostStore) SetLike(ctx context.Context, id primitive.ObjectID, userID string, liked bool) error {
	field := "likes." + userID
	now := time.Now().UTC()
	update := bson.M{"$set": bson.M{field: true, "updatedAt": now}}
	if !liked {
		update = bson.M{
			"$unset": bson.M{field: ""},
			"$set":   bson.M{"updatedAt": now},
		}
	}
	return s.updateOne(ctx, bson.M{"_id": id}, update, "set like")
}

// PrependComment pushes at position 0 so the sequence stays newest first.
func (s *MongoPostStore) PrependComment(ctx context.Context, id primitive.ObjectID, comment models.Comment) error {
	update := bson.M{
		"$push": bson.M{"comments": bson.M{
			"$each":     []models.Comment{comment},
			"$position": 0,
		}},
		"$set": bson.M{"updatedAt": time.Now().UTC()},
	}
	return s.updateOne(ctx, bson.M{"_id": id}, update, "prepend comment")
}

func (s *MongoPostStore) UpdateCommentText(ctx context.Context, postID, commentID primitive.ObjectID, text string) error {
	filter := bson.M{"_id": postID, "comments._id": commentID}
	update := bson.M{"$set": bson.M{"comments.$.comment": text, "updatedAt": time.Now().UTC()}}
	return s.updateOne(ctx, filter, update, "update comment")
}

func (s *MongoPostStore) RemoveComment(ctx context.Context, postID, commentID primitive.ObjectID) error {
	update := bson.M{
		"$pull": bson.M{"comments": bson.M{"_id": commentID}},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}
	return s.updateOne(ctx, bson.M{"_id": postID}, update, "remove comment")
}

func (s *MongoPostStore) UpdateDescription(ctx context.Context, id primitive.ObjectID, description string) error {
	update := bson.M{"$set": bson.M{"description": description, "updatedAt": time.Now().UTC()}}
	return s.updateOne(ctx, bson.M{"_id": id}, update, "update description")
}

func (s *MongoPostStore) updateOne(ctx context.Context, filter, update bson.M, op string) error {
	result, err := s.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return apperrors.Wrap(apperrors.Internal, op, errors.Wrap(err, "posts"))
	}
	if result.MatchedCount == 0 {
		return apperrors.New(apperrors.NotFound, "post not found")
	}
	return nil
}

func (s *MongoPostStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return apperrors.Wrap(apperrors.Internal, "delete post", errors.Wrap(err, "posts"))
	}
	if result.DeletedCount == 0 {
		return apperrors.New(apperrors.NotFound, "post not found")
	}
	return nil
}
