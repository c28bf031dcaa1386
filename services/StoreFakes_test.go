package services

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/prathamesh-patil-5090/banao-backend/apperrors"
	"github.com/prathamesh-patil-5090/banao-backend/models"
)

// memUserStore is a mutex-guarded in-memory UserStore for service tests.
type memUserStore struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]models.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: map[primitive.ObjectID]models.User{}}
}

func cloneUser(u models.User) models.User {
	if u.Friends != nil {
		u.Friends = append([]primitive.ObjectID{}, u.Friends...)
	}
	return u
}

func (s *memUserStore) Insert(_ context.Context, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == user.Email || existing.Username == user.Username {
			return apperrors.New(apperrors.Conflict, "user already exists")
		}
	}
	s.users[user.ID] = cloneUser(user)
	return nil
}

func (s *memUserStore) FindByID(_ context.Context, id primitive.ObjectID) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return models.User{}, apperrors.New(apperrors.NotFound, "user not found")
	}
	return cloneUser(user), nil
}

func (s *memUserStore) FindByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Email == email {
			return cloneUser(user), nil
		}
	}
	return models.User{}, apperrors.New(apperrors.NotFound, "user not found")
}

func (s *memUserStore) FindByIdentifier(_ context.Context, identifier string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Email == identifier || user.Username == identifier {
			return cloneUser(user), nil
		}
	}
	return models.User{}, apperrors.New(apperrors.NotFound, "user not found")
}

func (s *memUserStore) ExistsByEmailOrUsername(_ context.Context, email, username string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Email == email || user.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (s *memUserStore) UpdatePassword(_ context.Context, id primitive.ObjectID, hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return apperrors.New(apperrors.NotFound, "user not found")
	}
	user.Password = hash
	s.users[id] = user
	return nil
}

func (s *memUserStore) AddFriend(_ context.Context, id, friendID primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return apperrors.New(apperrors.NotFound, "user not found")
	}
	for _, f := range user.Friends {
		if f == friendID {
			return nil
		}
	}
	user.Friends = append(append([]primitive.ObjectID{}, user.Friends...), friendID)
	s.users[id] = user
	return nil
}

func (s *memUserStore) RemoveFriend(_ context.Context, id, friendID primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return apperrors.New(apperrors.NotFound, "user not found")
	}
	kept := []primitive.ObjectID{}
	for _, f := range user.Friends {
		if f != friendID {
			kept = append(kept, f)
		}
	}
	user.Friends = kept
	s.users[id] = user
	return nil
}

func (s *memUserStore) FindSummaries(_ context.Context, ids []primitive.ObjectID) ([]models.UserSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	summaries := []models.UserSummary{}
	for _, id := range ids {
		if user, ok := s.users[id]; ok {
			summaries = append(summaries, user.Summary())
		}
	}
	return summaries, nil
}

func (s *memUserStore) FindAll(_ context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := []models.User{}
	for _, user := range s.users {
		users = append(users, cloneUser(user))
	}
	return users, nil
}

func (s *memUserStore) ReplaceFriends(_ context.Context, id primitive.ObjectID, friends []primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return apperrors.New(apperrors.NotFound, "user not found")
	}
	user.Friends = append([]primitive.ObjectID{}, friends...)
	s.users[id] = user
	return nil
}

// memPostStore is a mutex-guarded in-memory PostStore keeping insertion
// order; reads come back newest first like the Mongo implementation.
type memPostStore struct {
	mu    sync.Mutex
	posts []models.Post
}

func newMemPostStore() *memPostStore {
	return &memPostStore{}
}

func clonePost(p models.Post) models.Post {
	if p.Likes != nil {
		likes := make(map[string]bool, len(p.Likes))
		for k, v := range p.Likes {
			likes[k] = v
		}
		p.Likes = likes
	}
	if p.Comments != nil {
		p.Comments = append([]models.Comment{}, p.Comments...)
	}
	return p
}

func (s *memPostStore) index(id primitive.ObjectID) int {
	for i, p := range s.posts {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (s *memPostStore) Insert(_ context.Context, post models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = append(s.posts, clonePost(post))
	return nil
}

func (s *memPostStore) FindByID(_ context.Context, id primitive.ObjectID) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return models.Post{}, apperrors.New(apperrors.NotFound, "post not found")
	}
	return clonePost(s.posts[i]), nil
}

func (s *memPostStore) FindAll(_ context.Context) ([]models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	posts := []models.Post{}
	for i := len(s.posts) - 1; i >= 0; i-- {
		posts = append(posts, clonePost(s.posts[i]))
	}
	return posts, nil
}

func (s *memPostStore) FindByUser(_ context.Context, userID primitive.ObjectID) ([]models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	posts := []models.Post{}
	for i := len(s.posts) - 1; i >= 0; i-- {
		if s.posts[i].UserID == userID {
			posts = append(posts, clonePost(s.posts[i]))
		}
	}
	return posts, nil
}

func (s *memPostStore) SetLike(_ context.Context, id primitive.ObjectID, userID string, liked bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return apperrors.New(apperrors.NotFound, "post not found")
	}
	likes := make(map[string]bool, len(s.posts[i].Likes)+1)
	for k, v := range s.posts[i].Likes {
		likes[k] = v
	}
	if liked {
		likes[userID] = true
	} else {
		delete(likes, userID)
	}
	s.posts[i].Likes = likes
	return nil
}

func (s *memPostStore) PrependComment(_ context.Context, id primitive.ObjectID, comment models.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return apperrors.New(apperrors.NotFound, "post not found")
	}
	s.posts[i].Comments = append([]models.Comment{comment}, s.posts[i].Comments...)
	return nil
}

func (s *memPostStore) UpdateCommentText(_ context.Context, postID, commentID primitive.ObjectID, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(postID)
	if i < 0 {
		return apperrors.New(apperrors.NotFound, "post not found")
	}
	j := s.posts[i].FindComment(commentID)
	if j < 0 {
		return apperrors.New(apperrors.NotFound, "comment not found")
	}
	s.posts[i].Comments[j].Comment = text
	return nil
}

func (s *memPostStore) RemoveComment(_ context.Context, postID, commentID primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(postID)
	if i < 0 {
		return apperrors.New(apperrors.NotFound, "post not found")
	}
	j := s.posts[i].FindComment(commentID)
	if j < 0 {
		return apperrors.New(apperrors.NotFound, "comment not found")
	}
	s.posts[i].Comments = append(s.posts[i].Comments[:j], s.posts[i].Comments[j+1:]...)
	return nil
}

func (s *memPostStore) UpdateDescription(_ context.Context, id primitive.ObjectID, description string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return apperrors.New(apperrors.NotFound, "post not found")
	}
	s.posts[i].Description = description
	return nil
}

func (s *memPostStore) Delete(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return apperrors.New(apperrors.NotFound, "post not found")
	}
	s.posts = append(s.posts[:i], s.posts[i+1:]...)
	return nil
}
