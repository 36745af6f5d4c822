package models

import "time"

// User represents a student, mentor or admin account.
type User struct {
	ID           string    `db:"id" bson:"_id" json:"id"`
	Email        string    `db:"email" bson:"email" json:"email"`
	Name         string    `db:"name" bson:"name" json:"name"`
	PasswordHash string    `db:"password_hash" bson:"password_hash" json:"-"`
	RoleType     RoleType  `db:"role" bson:"role" json:"roleType"`
	Skills       []string  `db:"skills" bson:"skills" json:"skills"`
	CareerGoal   string    `db:"career_goal" bson:"career_goal" json:"careerGoal"`
	Expertise    string    `db:"expertise" bson:"expertise" json:"expertise"`
	Experience   int       `db:"experience" bson:"experience" json:"experience"`
	Bio          string    `db:"bio" bson:"bio" json:"bio"`
	CreatedAt    time.Time `db:"created_at" bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" bson:"updated_at" json:"updatedAt"`
}

// ProfileUpdate carries the profile fields to overwrite. Nil fields are left unchanged.
type ProfileUpdate struct {
	Skills     *[]string
	CareerGoal *string
	Bio        *string
	Expertise  *string
	Experience *int
}

// IsEmpty reports whether the update changes nothing.
func (u ProfileUpdate) IsEmpty() bool {
	return u.Skills == nil && u.CareerGoal == nil && u.Bio == nil && u.Expertise == nil && u.Experience == nil
}

// Apply copies the provided fields onto user.
func (u ProfileUpdate) Apply(user *User) {
	if u.Skills != nil {
		user.Skills = append([]string(nil), (*u.Skills)...)
	}
	if u.CareerGoal != nil {
		user.CareerGoal = *u.CareerGoal
	}
	if u.Bio != nil {
		user.Bio = *u.Bio
	}
	if u.Expertise != nil {
		user.Expertise = *u.Expertise
	}
	if u.Experience != nil {
		user.Experience = *u.Experience
	}
}
