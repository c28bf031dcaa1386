package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID            primitive.ObjectID   `json:"_id" bson:"_id"`
	FirstName     string               `json:"firstName" bson:"firstName" validate:"required,min=2,max=50"`
	LastName      string               `json:"lastName" bson:"lastName" validate:"required,min=2,max=50"`
	Email         string               `json:"email" bson:"email" validate:"required,email,max=50"`
	Username      string               `json:"username" bson:"username" validate:"required,min=2,max=50"`
	Password      string               `json:"-" bson:"password" validate:"required,min=5"`
	PicturePath   string               `json:"picturePath" bson:"picturePath"`
	Friends       []primitive.ObjectID `json:"friends" bson:"friends"`
	Location      string               `json:"location" bson:"location"`
	Occupation    string               `json:"occupation" bson:"occupation"`
	ViewedProfile int                  `json:"viewedProfile" bson:"viewedProfile"`
	Impressions   int                  `json:"impressions" bson:"impressions"`
	CreatedAt     time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt" bson:"updatedAt"`
}

// UserSummary is the display-field projection returned for friend lists.
type UserSummary struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id"`
	FirstName   string             `json:"firstName" bson:"firstName"`
	LastName    string             `json:"lastName" bson:"lastName"`
	Occupation  string             `json:"occupation" bson:"occupation"`
	Location    string             `json:"location" bson:"location"`
	PicturePath string             `json:"picturePath" bson:"picturePath"`
}

// Sanitized clears the password hash. The json tag already keeps it out of
// responses; clearing it as well keeps the hash out of anything a caller
// re-marshals through bson.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}

func (u User) Summary() UserSummary {
	return UserSummary{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Occupation:  u.Occupation,
		Location:    u.Location,
		PicturePath: u.PicturePath,
	}
}

func (u User) HasFriend(id primitive.ObjectID) bool {
	for _, f := range u.Friends {
		if f == id {
			return true
		}
	}
	return false
}
