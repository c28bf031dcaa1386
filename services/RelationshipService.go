package services

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/prathamesh-patil-5090/banao-backend/apperrors"
	"github.com/prathamesh-patil-5090/banao-backend/models"
)

// pairLocks hands out one mutex per unordered id pair so that concurrent
// friend toggles on the same pair cannot interleave their dual writes and
// leave the relation asymmetric. Entries are refcounted and removed once
// the last holder releases, so the table only holds in-flight pairs.
type pairLocks struct {
	mu    sync.Mutex
	locks map[string]*pairLock
}

type pairLock struct {
	mu   sync.Mutex
	refs int
}

func (p *pairLocks) lock(a, b primitive.ObjectID) (unlock func()) {
	key := a.Hex() + "/" + b.Hex()
	if b.Hex() < a.Hex() {
		key = b.Hex() + "/" + a.Hex()
	}
	p.mu.Lock()
	if p.locks == nil {
		p.locks = make(map[string]*pairLock)
	}
	l, ok := p.locks[key]
	if !ok {
		l = &pairLock{}
		p.locks[key] = l
	}
	l.refs++
	p.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		p.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(p.locks, key)
		}
		p.mu.Unlock()
	}
}

// RelationshipService toggles bidirectional friend links and serves
// friend-summary projections.
type RelationshipService struct {
	users UserStore
	pairs pairLocks
}

func NewRelationshipService(users UserStore) *RelationshipService {
	return &RelationshipService{users: users}
}

// ToggleFriend flips the friend relation between actor and target, updating
// both friends arrays together. The pair lock serializes toggles on the
// same pair. Returns the actor's resulting friend summaries.
func (s *RelationshipService) ToggleFriend(ctx context.Context, actorID, targetID primitive.ObjectID) ([]models.UserSummary, error) {
	if actorID == targetID {
		return nil, apperrors.New(apperrors.InvalidInput, "cannot add yourself as friend")
	}

	unlock := s.pairs.lock(actorID, targetID)
	defer unlock()

	actor, err := s.users.FindByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if _, err := s.users.FindByID(ctx, targetID); err != nil {
		return nil, err
	}

	var friends []primitive.ObjectID
	if actor.HasFriend(targetID) {
		if err := s.users.RemoveFriend(ctx, actorID, targetID); err != nil {
			return nil, err
		}
		if err := s.users.RemoveFriend(ctx, targetID, actorID); err != nil {
			return nil, err
		}
		for _, f := range actor.Friends {
			if f != targetID {
				friends = append(friends, f)
			}
		}
	} else {
		if err := s.users.AddFriend(ctx, actorID, targetID); err != nil {
			return nil, err
		}
		if err := s.users.AddFriend(ctx, targetID, actorID); err != nil {
			return nil, err
		}
		friends = append(actor.Friends, targetID)
	}

	return s.users.FindSummaries(ctx, friends)
}

// ListFriends returns the user's friends projected to display fields, in
// store order.
func (s *RelationshipService) ListFriends(ctx context.Context, userID primitive.ObjectID) ([]models.UserSummary, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.users.FindSummaries(ctx, user.Friends)
}

func (s *RelationshipService) GetUser(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	return user.Sanitized(), nil
}

// FixFriends normalizes records whose friends field is missing or null.
// Each record is repaired independently; individual failures are logged and
// do not fail the run.
func (s *RelationshipService) FixFriends(ctx context.Context) (int, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return 0, err
	}
	fixed := 0
	for _, u := range users {
		if u.Friends != nil {
			continue
		}
		if err := s.users.ReplaceFriends(ctx, u.ID, []primitive.ObjectID{}); err != nil {
			logrus.WithError(err).WithField("user", u.ID.Hex()).Warn("fix-friends: repair failed")
			continue
		}
		fixed++
	}
	return fixed, nil
}
