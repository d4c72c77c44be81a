package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a document in the "users" collection, keyed logically by email.
// The password hash is never serialized into a response; reads additionally
// project it out at the query level.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password,omitempty" json:"-"`
	Company  *string            `bson:"company" json:"company"`
	Telnr    *string            `bson:"telnummer" json:"telnummer"`
	ClientID *string            `bson:"clientID" json:"clientID"`
	// CreatedAt is a Swiss-locale timestamp string, set once at creation.
	CreatedAt string `bson:"createdAt" json:"createdAt"`
}

// RegisterRequest is the POST /api/users payload.
type RegisterRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Company  *string `json:"company"`
	Telnr    *string `json:"telnummer"`
	ClientID *string `json:"clientID"`
}

// UpdateRequest is the PUT /api/users payload. Updates carries an arbitrary
// merge-patch; only the keys present are overwritten.
type UpdateRequest struct {
	Email   string         `json:"email"`
	Updates map[string]any `json:"updates"`
}

// DeleteRequest is the DELETE /api/users payload.
type DeleteRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest is the superuser PUT /api/superuser/reset-password
// payload. All five fields must be present; Force must be explicitly true.
type ResetPasswordRequest struct {
	Email             string `json:"email"`
	NewPassword       string `json:"newPassword"`
	SuperUserEmail    string `json:"superUserEmail"`
	SuperUserPassword string `json:"superUserPassword"`
	Force             bool   `json:"force"`
}
