package services

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/prathamesh-patil-5090/banao-backend/apperrors"
	"github.com/prathamesh-patil-5090/banao-backend/models"
)

// EngagementService toggles likes and manages a post's embedded comments
// under ownership checks.
type EngagementService struct {
	posts PostStore
	users UserStore
}

func NewEngagementService(posts PostStore, users UserStore) *EngagementService {
	return &EngagementService{posts: posts, users: users}
}

// CreatePost snapshots the author's current display fields onto the new
// post. The snapshot is not refreshed by later profile edits. Returns the
// full feed, newest first.
func (s *EngagementService) CreatePost(ctx context.Context, userID primitive.ObjectID, description, picturePath string) ([]models.Post, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	post := models.Post{
		ID:              primitive.NewObjectID(),
		UserID:          user.ID,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		Location:        user.Location,
		Description:     description,
		PicturePath:     picturePath,
		UserPicturePath: user.PicturePath,
		Likes:           map[string]bool{},
		Comments:        []models.Comment{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.posts.Insert(ctx, post); err != nil {
		return nil, err
	}
	return s.posts.FindAll(ctx)
}

func (s *EngagementService) GetFeed(ctx context.Context) ([]models.Post, error) {
	return s.posts.FindAll(ctx)
}

func (s *EngagementService) GetUserPosts(ctx context.Context, userID primitive.ObjectID) ([]models.Post, error) {
	return s.posts.FindByUser(ctx, userID)
}

func (s *EngagementService) GetPost(ctx context.Context, postID primitive.ObjectID) (models.Post, error) {
	return s.posts.FindByID(ctx, postID)
}

// ToggleLike flips the user's entry in the post's like-set.
func (s *EngagementService) ToggleLike(ctx context.Context, postID, userID primitive.ObjectID) (models.Post, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return models.Post{}, err
	}

	likes := make(map[string]bool, len(post.Likes))
	for k, v := range post.Likes {
		if v {
			likes[k] = true
		}
	}
	key := userID.Hex()
	liked := !likes[key]
	if liked {
		likes[key] = true
	} else {
		delete(likes, key)
	}

	if err := s.posts.SetLike(ctx, postID, key, liked); err != nil {
		return models.Post{}, err
	}
	post.Likes = likes
	return post, nil
}

// AddComment prepends a fresh comment with the author's current display
// fields. Newest-first ordering of the comment sequence is a contract.
func (s *EngagementService) AddComment(ctx context.Context, postID, authorID primitive.ObjectID, text string) (models.Post, error) {
	if strings.TrimSpace(text) == "" {
		return models.Post{}, apperrors.New(apperrors.InvalidInput, "comment text is required")
	}

	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return models.Post{}, err
	}
	author, err := s.users.FindByID(ctx, authorID)
	if err != nil {
		return models.Post{}, err
	}

	comment := models.Comment{
		ID:              primitive.NewObjectID(),
		UserID:          author.ID,
		Comment:         text,
		FirstName:       author.FirstName,
		LastName:        author.LastName,
		UserPicturePath: author.PicturePath,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.posts.PrependComment(ctx, postID, comment); err != nil {
		return models.Post{}, err
	}
	post.Comments = append([]models.Comment{comment}, post.Comments...)
	return post, nil
}

// EditComment replaces the comment text only. Id and timestamp are kept.
func (s *EngagementService) EditComment(ctx context.Context, postID, commentID, actorID primitive.ObjectID, text string) (models.Post, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return models.Post{}, err
	}
	i := post.FindComment(commentID)
	if i < 0 {
		return models.Post{}, apperrors.New(apperrors.NotFound, "comment not found")
	}
	if post.Comments[i].UserID != actorID {
		return models.Post{}, apperrors.New(apperrors.Forbidden, "not the comment author")
	}

	if err := s.posts.UpdateCommentText(ctx, postID, commentID, text); err != nil {
		return models.Post{}, err
	}
	post.Comments[i].Comment = text
	return post, nil
}

// DeleteComment removes one comment; sibling comments keep their ids.
func (s *EngagementService) DeleteComment(ctx context.Context, postID, commentID, actorID primitive.ObjectID) (models.Post, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return models.Post{}, err
	}
	i := post.FindComment(commentID)
	if i < 0 {
		return models.Post{}, apperrors.New(apperrors.NotFound, "comment not found")
	}
	if post.Comments[i].UserID != actorID {
		return models.Post{}, apperrors.New(apperrors.Forbidden, "not the comment author")
	}

	if err := s.posts.RemoveComment(ctx, postID, commentID); err != nil {
		return models.Post{}, err
	}
	post.Comments = append(post.Comments[:i], post.Comments[i+1:]...)
	return post, nil
}

// EditPost updates the description only; snapshots, likes and comments are
// untouched.
func (s *EngagementService) EditPost(ctx context.Context, postID, actorID primitive.ObjectID, description string) (models.Post, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return models.Post{}, err
	}
	if post.UserID != actorID {
		return models.Post{}, apperrors.New(apperrors.Forbidden, "not the post owner")
	}

	if err := s.posts.UpdateDescription(ctx, postID, description); err != nil {
		return models.Post{}, err
	}
	post.Description = description
	return post, nil
}

// DeletePost removes the post entirely and returns the remaining feed.
func (s *EngagementService) DeletePost(ctx context.Context, postID, actorID primitive.ObjectID) ([]models.Post, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.UserID != actorID {
		return nil, apperrors.New(apperrors.Forbidden, "not the post owner")
	}

	if err := s.posts.Delete(ctx, postID); err != nil {
		return nil, err
	}
	return s.posts.FindAll(ctx)
}
