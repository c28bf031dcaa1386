package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/prathamesh-patil-5090/banao-backend/models"
)

// UserStore persists user records and the friend relation. Find methods
// report a missing record as an apperrors.NotFound error.
type UserStore interface {
	Insert(ctx context.Context, user models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error)
	// FindByIdentifier matches the identifier against email or username.
	FindByIdentifier(ctx context.Context, identifier string) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)
	UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error
	AddFriend(ctx context.Context, id, friendID primitive.ObjectID) error
	RemoveFriend(ctx context.Context, id, friendID primitive.ObjectID) error
	FindSummaries(ctx context.Context, ids []primitive.ObjectID) ([]models.UserSummary, error)
	FindAll(ctx context.Context) ([]models.User, error)
	ReplaceFriends(ctx context.Context, id primitive.ObjectID, friends []primitive.ObjectID) error
}

// PostStore persists posts with their embedded comments and like-set.
// FindAll and FindByUser return posts newest first.
type PostStore interface {
	Insert(ctx context.Context, post models.Post) error
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Post, error)
	FindAll(ctx context.Context) ([]models.Post, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Post, error)
	// SetLike adds or removes a single entry in the post's like-set. The
	// update touches only that key, so concurrent likes by different
	// users cannot clobber each other.
	SetLike(ctx context.Context, id primitive.ObjectID, userID string, liked bool) error
	PrependComment(ctx context.Context, id primitive.ObjectID, comment models.Comment) error
	UpdateCommentText(ctx context.Context, postID, commentID primitive.ObjectID, text string) error
	RemoveComment(ctx context.Context, postID, commentID primitive.ObjectID) error
	UpdateDescription(ctx context.Context, id primitive.ObjectID, description string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
