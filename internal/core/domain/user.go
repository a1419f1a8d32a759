package domain

// User is the profile document stored under the identity provider's uid.
type User struct {
	ID     string `bson:"_id"`
	Name   string `bson:"name"`
	Email  string `bson:"email"`
	UnivID string `bson:"univId"`
}
