package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Profile is the per-account profile document. Each account owns at most one
// profile; the owning user id is the lookup key for every read and mutation.
type Profile struct {
	ID             bson.ObjectID `bson:"_id,omitempty"            json:"_id"`
	UserID         bson.ObjectID `bson:"user_id"                  json:"user"`
	Status         string        `bson:"status"                   json:"status"`
	Skills         []string      `bson:"skills"                   json:"skills"`
	Company        string        `bson:"company,omitempty"        json:"company,omitempty"`
	Location       string        `bson:"location,omitempty"       json:"location,omitempty"`
	Website        string        `bson:"website,omitempty"        json:"website,omitempty"`
	Bio            string        `bson:"bio,omitempty"            json:"bio,omitempty"`
	GithubUsername string        `bson:"githubusername,omitempty" json:"githubusername,omitempty"`
	Social         Social        `bson:"social,omitempty"         json:"social,omitempty"`
	Experience     []Experience  `bson:"experience"               json:"experience"`
	Education      []Education   `bson:"education"                json:"education"`
	CreatedAt      time.Time     `bson:"created_at"               json:"created_at"`
	UpdatedAt      time.Time     `bson:"updated_at"               json:"updated_at"`

	// Owner is a joined display subset of the owning user. It is populated by
	// read queries only and never persisted with the document.
	Owner *Owner `bson:"owner,omitempty" json:"owner,omitempty"`
}

// Owner is the public display subset of a profile's owning account.
type Owner struct {
	Name   string `bson:"name"   json:"name"`
	Avatar string `bson:"avatar" json:"avatar"`
}

// Social holds optional social network links.
type Social struct {
	Youtube   string `bson:"youtube,omitempty"   json:"youtube,omitempty"`
	Twitter   string `bson:"twitter,omitempty"   json:"twitter,omitempty"`
	Facebook  string `bson:"facebook,omitempty"  json:"facebook,omitempty"`
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
	Linkedin  string `bson:"linkedin,omitempty"  json:"linkedin,omitempty"`
}

// Experience is an embedded work history entry. New entries are inserted at
// the front of the profile's experience list.
type Experience struct {
	ID          string     `bson:"id"                    json:"id"`
	Title       string     `bson:"title"                 json:"title"`
	Company     string     `bson:"company"               json:"company"`
	Location    string     `bson:"location,omitempty"    json:"location,omitempty"`
	From        time.Time  `bson:"from"                  json:"from"`
	To          *time.Time `bson:"to,omitempty"          json:"to,omitempty"`
	Current     bool       `bson:"current"               json:"current"`
	Description string     `bson:"description,omitempty" json:"description,omitempty"`
}

// Education is an embedded education history entry, front-inserted like
// Experience.
type Education struct {
	ID           string     `bson:"id"                    json:"id"`
	School       string     `bson:"school"                json:"school"`
	Degree       string     `bson:"degree"                json:"degree"`
	FieldOfStudy string     `bson:"fieldofstudy"          json:"fieldofstudy"`
	From         time.Time  `bson:"from"                  json:"from"`
	To           *time.Time `bson:"to,omitempty"          json:"to,omitempty"`
	Current      bool       `bson:"current"               json:"current"`
	Description  string     `bson:"description,omitempty" json:"description,omitempty"`
}
