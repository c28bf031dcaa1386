package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment is embedded in its parent post. Its id stays stable for the
// lifetime of the post, across edits and deletes of sibling comments.
type Comment struct {
	ID              primitive.ObjectID `json:"_id" bson:"_id"`
	UserID          primitive.ObjectID `json:"userId" bson:"userId"`
	Comment         string             `json:"comment" bson:"comment"`
	FirstName       string             `json:"firstName" bson:"firstName"`
	LastName        string             `json:"lastName" bson:"lastName"`
	UserPicturePath string             `json:"userPicturePath" bson:"userPicturePath"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
}
