package models

import (
	"gorm.io/gorm"
)

const (
	RegistrationStatusPending  = "pending"
	RegistrationStatusApproved = "approved"
	RegistrationStatusRejected = "rejected"
)

// TeamLeader is embedded in Registration. All fields are required at submit.
type TeamLeader struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
}

// TeamMember is one non-leader member of a registered team, stored as a child
// row so a one-person team reads back as an empty slice.
type TeamMember struct {
	gorm.Model
	RegistrationID uint   `gorm:"index" json:"-"`
	Position       int    `json:"-"` // form slot order, 2..4
	Name           string `json:"name"`
	Email          string `json:"email"`
}

// Registration is a team's submitted intent to participate in one Hackathon.
// HackathonTitle and UserName are point-in-time snapshots taken at submission;
// a later change to the hackathon or user does not update them.
type Registration struct {
	gorm.Model
	HackathonID    uint         `gorm:"index" json:"hackathon_id"`
	HackathonTitle string       `json:"hackathon_title"`
	UserID         uint         `gorm:"index" json:"user_id"`
	UserName       string       `json:"user_name"`
	Status         string       `json:"status"`
	TeamName       string       `json:"team_name"`
	Leader         TeamLeader   `gorm:"embedded;embeddedPrefix:leader_" json:"leader"`
	Members        []TeamMember `gorm:"foreignKey:RegistrationID" json:"members"`
}
