package model

import "go.mongodb.org/mongo-driver/v2/bson"

// Account is the sole persisted entity, stored in the "account"
// collection. Documents missing avatar_url decode to a nil pointer and
// documents missing onboarded decode to false.
type Account struct {
	ID           bson.ObjectID `bson:"_id,omitempty"`
	Name         string        `bson:"name"`
	Email        string        `bson:"email"`
	PasswordHash string        `bson:"password_hash"`
	AvatarURL    *string       `bson:"avatar_url,omitempty"`
	Onboarded    bool          `bson:"onboarded"`
}
