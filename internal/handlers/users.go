package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/RUTHVIKRAO04/HackConnect/internal/models"
	"github.com/danielgtaylor/huma/v2"
	"gorm.io/gorm"
)

type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

type UserProfile struct {
	ID        uint      `json:"id"`
	Uid       string    `json:"uid"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type ListUsersRequest struct {
	Search string `query:"search" doc:"Optional case-insensitive name/role filter"`
}

type ListUsersResponse struct {
	Body []UserProfile
}

// HandleListUsers returns the teammate directory: a full scan with filtering
// pushed to the consumer, same as the listing store.
func (h *UserHandler) HandleListUsers(ctx context.Context, input *ListUsersRequest) (*ListUsersResponse, error) {
	var users []models.User
	if err := h.db.Find(&users).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to list users: " + err.Error())
	}

	profiles := make([]UserProfile, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, UserProfile{
			ID:        u.ID,
			Uid:       u.Uid,
			FullName:  u.FullName,
			Role:      u.Role,
			Email:     u.Email,
			CreatedAt: u.CreatedAt,
		})
	}

	return &ListUsersResponse{Body: FilterUsers(profiles, input.Search)}, nil
}

// FilterUsers matches directory entries by name or role, case-insensitive.
// An empty term matches everything.
func FilterUsers(users []UserProfile, term string) []UserProfile {
	if term == "" {
		return users
	}

	lower := strings.ToLower(term)
	matched := make([]UserProfile, 0, len(users))
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.FullName), lower) ||
			strings.Contains(strings.ToLower(u.Role), lower) {
			matched = append(matched, u)
		}
	}
	return matched
}
