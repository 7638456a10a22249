package models

import (
	"gorm.io/gorm"
)

const (
	HackathonStatusActive    = "active"
	HackathonStatusCompleted = "completed"
	HackathonStatusCancelled = "cancelled"
)

const (
	ModeInPerson = "in-person"
	ModeVirtual  = "virtual"
	ModeHybrid   = "hybrid"
)

// DefaultImage is used when the host does not provide one.
const DefaultImage = "https://images.unsplash.com/photo-1504384308090-c894fdcc538d?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80"

// Hackathon is a listing open for team registration. Date fields are
// calendar-date strings (YYYY-MM-DD) with no timezone semantics.
type Hackathon struct {
	gorm.Model
	Title                string `json:"title"`
	OrganizerName        string `json:"organizer_name"`
	StartDate            string `json:"start_date"`
	EndDate              string `json:"end_date"`
	RegistrationDeadline string `json:"registration_deadline"`
	Location             string `json:"location"`
	Mode                 string `json:"mode"`
	Price                string `json:"price"`
	MaxParticipants      string `json:"max_participants"`
	ShortDescription     string `json:"short_description"`
	LongDescription      string `json:"long_description"`
	Rules                string `json:"rules"`
	Prizes               string `json:"prizes"`
	CreatedBy            uint   `json:"created_by"`
	Status               string `json:"status"`
	RegisteredTeams      int    `json:"registered_teams"`
	Image                string `json:"image"`
}
