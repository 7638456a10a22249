package handlers

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/RUTHVIKRAO04/HackConnect/internal/auth"
	"github.com/RUTHVIKRAO04/HackConnect/internal/models"
	"github.com/RUTHVIKRAO04/HackConnect/internal/notifier"
	"github.com/danielgtaylor/huma/v2"
	"gorm.io/gorm"
)

type RegistrationHandler struct {
	db          *gorm.DB
	notifier    notifier.Notifier
	authHandler *auth.AuthHandler
}

func NewRegistrationHandler(db *gorm.DB, notifier notifier.Notifier, authHandler *auth.AuthHandler) *RegistrationHandler {
	return &RegistrationHandler{db: db, notifier: notifier, authHandler: authHandler}
}

// MemberSlot is one of the form's member slots 2..4. A slot may carry stale
// input from a previously selected larger team size.
type MemberSlot struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type RegisterRequest struct {
	auth.AuthInput
	HackathonID uint `path:"id"`
	Body        struct {
		TeamName string `json:"team_name" doc:"Team name" required:"true"`
		Leader   struct {
			Name    string `json:"name" required:"true"`
			Email   string `json:"email" required:"true"`
			Contact string `json:"contact" required:"true"`
		} `json:"leader"`
		TeamSize int          `json:"team_size" doc:"Total team size including the leader (1-4)" minimum:"1" maximum:"4"`
		Members  []MemberSlot `json:"members,omitempty" doc:"Form slots 2..4 in order" maxItems:"3"`
	}
}

type RegistrationView struct {
	ID             uint   `json:"id"`
	HackathonID    uint   `json:"hackathon_id"`
	HackathonTitle string `json:"hackathon_title"`
	Status         string `json:"status"`
	StatusLabel    string `json:"status_label"`
	StatusClass    string `json:"status_class"`
	RegisteredAt   string `json:"registered_at"`
	TeamDetails    struct {
		TeamName string            `json:"team_name"`
		Leader   models.TeamLeader `json:"leader"`
		Members  []MemberSlot      `json:"members"`
	} `json:"team_details"`
}

type RegisterResponse struct {
	Body RegistrationView
}

func (h *RegistrationHandler) HandleRegister(ctx context.Context, input *RegisterRequest) (*RegisterResponse, error) {
	// Authorize before any validation or I/O.
	userID, err := h.authHandler.Authorize(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}

	if input.Body.TeamSize < 1 || input.Body.TeamSize > 4 {
		return nil, huma.Error400BadRequest("team_size must be between 1 and 4")
	}
	if strings.TrimSpace(input.Body.TeamName) == "" {
		return nil, huma.Error400BadRequest("team_name is required")
	}
	if strings.TrimSpace(input.Body.Leader.Name) == "" {
		return nil, huma.Error400BadRequest("leader.name is required")
	}
	if strings.TrimSpace(input.Body.Leader.Email) == "" {
		return nil, huma.Error400BadRequest("leader.email is required")
	}
	if strings.TrimSpace(input.Body.Leader.Contact) == "" {
		return nil, huma.Error400BadRequest("leader.contact is required")
	}

	var hackathon models.Hackathon
	if err := h.db.First(&hackathon, input.HackathonID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, huma.Error404NotFound("Hackathon not found")
		}
		return nil, huma.Error500InternalServerError("Failed to load hackathon: " + err.Error())
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		return nil, huma.Error404NotFound("User not found")
	}

	registration := models.Registration{
		HackathonID:    hackathon.ID,
		HackathonTitle: hackathon.Title, // snapshot, not re-synced on rename
		UserID:         user.ID,
		UserName:       user.FullName, // snapshot
		Status:         models.RegistrationStatusPending,
		TeamName:       input.Body.TeamName,
		Leader: models.TeamLeader{
			Name:    input.Body.Leader.Name,
			Email:   input.Body.Leader.Email,
			Contact: input.Body.Leader.Contact,
		},
		Members: BuildMembers(input.Body.TeamSize, input.Body.Members),
	}

	// The registration row and the listing's team counter move together.
	// No capacity check against max_participants and no duplicate-user
	// check: concurrent submissions all succeed independently.
	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&registration).Error; err != nil {
			return err
		}
		return tx.Model(&models.Hackathon{}).
			Where("id = ?", hackathon.ID).
			Update("registered_teams", gorm.Expr("registered_teams + 1")).Error
	})
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to process registration: " + err.Error())
	}

	if h.notifier != nil {
		if err := h.notifier.NotifyRegistration(user, hackathon, registration); err != nil {
			log.Printf("Failed to send registration notification: %v", err)
		}
	}

	res := &RegisterResponse{Body: registrationView(registration)}
	return res, nil
}

// BuildMembers assembles the stored member list from the form slots. Slots
// beyond the selected team size are dropped, and a remaining slot is kept
// only when both name and email are filled in. A partially filled slot left
// over from a larger team size is silently omitted, not rejected.
func BuildMembers(teamSize int, slots []MemberSlot) []models.TeamMember {
	members := []models.TeamMember{}
	for i, slot := range slots {
		if i >= teamSize-1 {
			break
		}
		if strings.TrimSpace(slot.Name) == "" || strings.TrimSpace(slot.Email) == "" {
			continue
		}
		members = append(members, models.TeamMember{
			Position: i + 2,
			Name:     slot.Name,
			Email:    slot.Email,
		})
	}
	return members
}

type MyRegistrationsRequest struct {
	auth.AuthInput
}

type MyRegistrationsResponse struct {
	Body []RegistrationView
}

// HandleMyRegistrations lists the acting user's registrations. With no valid
// session it returns an empty list rather than an error, so the view can
// render before auth state resolves.
func (h *RegistrationHandler) HandleMyRegistrations(ctx context.Context, input *MyRegistrationsRequest) (*MyRegistrationsResponse, error) {
	res := &MyRegistrationsResponse{Body: []RegistrationView{}}

	userID, err := h.authHandler.Authorize(ctx, input.Cookie)
	if err != nil {
		return res, nil
	}

	var registrations []models.Registration
	if err := h.db.Preload("Members", func(db *gorm.DB) *gorm.DB {
		return db.Order("position asc")
	}).Where("user_id = ?", userID).Find(&registrations).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to list registrations: " + err.Error())
	}

	for _, reg := range registrations {
		res.Body = append(res.Body, registrationView(reg))
	}

	return res, nil
}

func registrationView(reg models.Registration) RegistrationView {
	label, class := StatusBadge(reg.Status)

	view := RegistrationView{
		ID:             reg.ID,
		HackathonID:    reg.HackathonID,
		HackathonTitle: reg.HackathonTitle,
		Status:         reg.Status,
		StatusLabel:    label,
		StatusClass:    class,
		RegisteredAt:   FormatRegisteredAt(reg.CreatedAt),
	}
	view.TeamDetails.TeamName = reg.TeamName
	view.TeamDetails.Leader = reg.Leader
	view.TeamDetails.Members = []MemberSlot{}
	for _, m := range reg.Members {
		view.TeamDetails.Members = append(view.TeamDetails.Members, MemberSlot{Name: m.Name, Email: m.Email})
	}
	return view
}

// FormatRegisteredAt renders the store-assigned timestamp for display. A
// timestamp the store has not resolved yet renders empty instead of failing.
func FormatRegisteredAt(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

// StatusBadge maps a registration status to its display label and style
// class. Anything unknown falls back to the rejected styling.
func StatusBadge(status string) (label string, styleClass string) {
	switch status {
	case models.RegistrationStatusPending:
		return "Pending", "bg-yellow-100 text-yellow-800"
	case models.RegistrationStatusApproved:
		return "Approved", "bg-green-100 text-green-800"
	case models.RegistrationStatusRejected:
		return "Rejected", "bg-red-100 text-red-800"
	default:
		if status == "" {
			return "", "bg-red-100 text-red-800"
		}
		return strings.ToUpper(status[:1]) + status[1:], "bg-red-100 text-red-800"
	}
}

type UpdateRegistrationStatusRequest struct {
	auth.AuthInput
	ID   uint `path:"id"`
	Body struct {
		Status string `json:"status" doc:"approved or rejected" required:"true" enum:"approved,rejected"`
	}
}

type UpdateRegistrationStatusResponse struct {
	Body RegistrationView
}

// HandleUpdateStatus records the organizer's decision on a pending
// registration. Only the listing's creator may decide, and approved/rejected
// are terminal.
func (h *RegistrationHandler) HandleUpdateStatus(ctx context.Context, input *UpdateRegistrationStatusRequest) (*UpdateRegistrationStatusResponse, error) {
	userID, err := h.authHandler.Authorize(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}

	if input.Body.Status != models.RegistrationStatusApproved && input.Body.Status != models.RegistrationStatusRejected {
		return nil, huma.Error400BadRequest("status must be approved or rejected")
	}

	var registration models.Registration
	if err := h.db.Preload("Members", func(db *gorm.DB) *gorm.DB {
		return db.Order("position asc")
	}).First(&registration, input.ID).Error; err != nil {
		return nil, huma.Error404NotFound("Registration not found")
	}

	var hackathon models.Hackathon
	if err := h.db.First(&hackathon, registration.HackathonID).Error; err != nil {
		return nil, huma.Error404NotFound("Hackathon for this registration no longer exists")
	}

	if hackathon.CreatedBy != userID {
		return nil, huma.Error403Forbidden("Only the hackathon organizer can decide registrations")
	}

	if registration.Status != models.RegistrationStatusPending {
		return nil, huma.Error409Conflict("Registration has already been " + registration.Status)
	}

	registration.Status = input.Body.Status
	if err := h.db.Save(&registration).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to update registration: " + err.Error())
	}

	return &UpdateRegistrationStatusResponse{Body: registrationView(registration)}, nil
}
