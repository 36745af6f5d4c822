package models

import "time"

// Internship is a read-only posting matched against student skills.
type Internship struct {
	ID             string    `db:"id" bson:"_id" json:"id" yaml:"-"`
	Title          string    `db:"title" bson:"title" json:"title" yaml:"title"`
	Company        string    `db:"company" bson:"company" json:"company" yaml:"company"`
	RequiredSkills []string  `db:"required_skills" bson:"required_skills" json:"requiredSkills" yaml:"required_skills"`
	CreatedAt      time.Time `db:"created_at" bson:"created_at" json:"createdAt" yaml:"-"`
}
