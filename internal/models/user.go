package models

import (
	"gorm.io/gorm"
)

// Roles selectable at signup. Free-form tags, not an enforced enum.
var Roles = []string{
	"frontend-developer",
	"backend-developer",
	"full-stack-developer",
	"java-developer",
	"kotlin-developer",
	"python-developer",
	"designer",
	"other",
}

type User struct {
	gorm.Model
	Uid          string `gorm:"uniqueIndex" json:"uid"` // opaque external id, minted at signup
	FullName     string `json:"full_name"`
	Email        string `gorm:"uniqueIndex" json:"email"`
	Role         string `json:"role"`
	PasswordHash string `json:"-"`
	// Unique only when set; accounts without Google login all carry "".
	GoogleID string `gorm:"index:idx_users_google_id,unique,where:google_id <> ''" json:"-"`
}
