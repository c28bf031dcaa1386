package services

import (
	"context"
	"math/rand"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/prathamesh-patil-5090/banao-backend/apperrors"
	"github.com/prathamesh-patil-5090/banao-backend/models"
)

const counterSeedMax = 10000

var validate = validator.New()

type RegisterInput struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	PicturePath string `json:"picturePath"`
	Location    string `json:"location"`
	Occupation  string `json:"occupation"`
}

// AuthService hashes and verifies passwords and issues session tokens.
type AuthService struct {
	users    UserStore
	secret   []byte
	cost     int
	tokenTTL time.Duration
}

func NewAuthService(users UserStore, secret []byte, bcryptCost int) *AuthService {
	if bcryptCost < bcrypt.MinCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		users:    users,
		secret:   secret,
		cost:     bcryptCost,
		tokenTTL: 30 * 24 * time.Hour,
	}
}

// Register creates a user with a hashed password, empty friends and randomly
// seeded display counters. The returned record never carries the hash.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (models.User, error) {
	now := time.Now().UTC()
	user := models.User{
		ID:            primitive.NewObjectID(),
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		Email:         in.Email,
		Username:      in.Username,
		Password:      in.Password,
		PicturePath:   in.PicturePath,
		Friends:       []primitive.ObjectID{},
		Location:      in.Location,
		Occupation:    in.Occupation,
		ViewedProfile: rand.Intn(counterSeedMax),
		Impressions:   rand.Intn(counterSeedMax),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := validate.Struct(user); err != nil {
		return models.User{}, apperrors.Wrap(apperrors.InvalidInput, "invalid registration payload", err)
	}

	taken, err := s.users.ExistsByEmailOrUsername(ctx, in.Email, in.Username)
	if err != nil {
		return models.User{}, err
	}
	if taken {
		return models.User{}, apperrors.New(apperrors.Conflict, "user already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return models.User{}, apperrors.Wrap(apperrors.Internal, "hash password", err)
	}
	user.Password = string(hash)

	if err := s.users.Insert(ctx, user); err != nil {
		return models.User{}, err
	}
	return user.Sanitized(), nil
}

// Login matches the identifier against email or username, verifies the
// password and issues a signed token bound to the user id.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (string, models.User, error) {
	if identifier == "" || password == "" {
		return "", models.User{}, apperrors.New(apperrors.InvalidInput, "identifier and password are required")
	}

	user, err := s.users.FindByIdentifier(ctx, identifier)
	if err != nil {
		return "", models.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", models.User{}, apperrors.New(apperrors.Unauthorized, "invalid credentials")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": user.ID.Hex(),
		"exp": time.Now().Add(s.tokenTTL).Unix(),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", models.User{}, apperrors.Wrap(apperrors.Internal, "sign token", err)
	}
	return signed, user.Sanitized(), nil
}

// ResetPassword replaces only the password hash for the account with the
// given email. The lookup is email-only; a matching username does not
// resolve here.
func (s *AuthService) ResetPassword(ctx context.Context, email, newPassword string) error {
	if email == "" || newPassword == "" {
		return apperrors.New(apperrors.InvalidInput, "email and new password are required")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	if len(newPassword) < 5 {
		return apperrors.New(apperrors.InvalidInput, "password must be at least 5 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.cost)
	if err != nil {
		return apperrors.Wrap(apperrors.Internal, "hash password", err)
	}
	return s.users.UpdatePassword(ctx, user.ID, string(hash))
}
