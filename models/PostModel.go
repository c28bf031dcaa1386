package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post carries a snapshot of the author's display fields taken at creation
// time. The snapshot is intentionally not refreshed on later profile edits.
type Post struct {
	ID              primitive.ObjectID `json:"_id" bson:"_id"`
	UserID          primitive.ObjectID `json:"userId" bson:"userId"`
	FirstName       string             `json:"firstName" bson:"firstName"`
	LastName        string             `json:"lastName" bson:"lastName"`
	Location        string             `json:"location" bson:"location"`
	Description     string             `json:"description" bson:"description"`
	PicturePath     string             `json:"picturePath" bson:"picturePath"`
	UserPicturePath string             `json:"userPicturePath" bson:"userPicturePath"`
	Likes           map[string]bool    `json:"likes" bson:"likes"`
	Comments        []Comment          `json:"comments" bson:"comments"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Likes is a presence set keyed by user id hex: an entry exists only while
// that user likes the post. The like count is derived, never stored.
func (p Post) LikeCount() int {
	return len(p.Likes)
}

func (p Post) LikedBy(userID primitive.ObjectID) bool {
	return p.Likes[userID.Hex()]
}

// FindComment returns the index of the comment with the given id, or -1.
func (p Post) FindComment(commentID primitive.ObjectID) int {
	for i, c := range p.Comments {
		if c.ID == commentID {
			return i
		}
	}
	return -1
}
