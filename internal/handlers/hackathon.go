package handlers

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/RUTHVIKRAO04/HackConnect/internal/auth"
	"github.com/RUTHVIKRAO04/HackConnect/internal/cache"
	"github.com/RUTHVIKRAO04/HackConnect/internal/models"
	"github.com/danielgtaylor/huma/v2"
	"gorm.io/gorm"
)

const (
	hackathonListCacheKey = "hackathons:list"
	hackathonListCacheTTL = time.Minute
)

type HackathonHandler struct {
	db          *gorm.DB
	cache       *cache.Client
	authHandler *auth.AuthHandler
}

func NewHackathonHandler(db *gorm.DB, cache *cache.Client, authHandler *auth.AuthHandler) *HackathonHandler {
	return &HackathonHandler{db: db, cache: cache, authHandler: authHandler}
}

type CreateHackathonRequest struct {
	auth.AuthInput
	Body struct {
		Title                string `json:"title" doc:"Hackathon name" required:"true"`
		OrganizerName        string `json:"organizer_name" doc:"Organizer name" required:"true"`
		StartDate            string `json:"start_date" doc:"Start date (YYYY-MM-DD)" required:"true"`
		EndDate              string `json:"end_date" doc:"End date (YYYY-MM-DD)" required:"true"`
		RegistrationDeadline string `json:"registration_deadline" doc:"Registration deadline (YYYY-MM-DD)" required:"true"`
		Location             string `json:"location" doc:"Venue or city" required:"true"`
		Mode                 string `json:"mode" doc:"in-person, virtual or hybrid" enum:"in-person,virtual,hybrid" default:"in-person"`
		Price                string `json:"price,omitempty" doc:"Entry fee, defaults to 0"`
		MaxParticipants      string `json:"max_participants,omitempty" doc:"Selectable team size 1-4, defaults to 4"`
		ShortDescription     string `json:"short_description,omitempty" maxLength:"150"`
		LongDescription      string `json:"long_description,omitempty"`
		Rules                string `json:"rules,omitempty"`
		Prizes               string `json:"prizes,omitempty"`
		Image                string `json:"image,omitempty" doc:"Cover image URL"`
	}
}

type HackathonResponse struct {
	Body models.Hackathon
}

func (h *HackathonHandler) HandleCreateHackathon(ctx context.Context, input *CreateHackathonRequest) (*HackathonResponse, error) {
	userID, err := h.authHandler.Authorize(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}

	// Required fields must be non-blank after trimming.
	required := []struct{ name, value string }{
		{"title", input.Body.Title},
		{"organizer_name", input.Body.OrganizerName},
		{"start_date", input.Body.StartDate},
		{"end_date", input.Body.EndDate},
		{"registration_deadline", input.Body.RegistrationDeadline},
		{"location", input.Body.Location},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return nil, huma.Error400BadRequest(f.name + " is required")
		}
	}

	mode := input.Body.Mode
	if mode == "" {
		mode = models.ModeInPerson
	}
	price := input.Body.Price
	if price == "" {
		price = "0"
	}
	maxParticipants := input.Body.MaxParticipants
	if maxParticipants == "" {
		maxParticipants = "4"
	}
	image := input.Body.Image
	if image == "" {
		image = models.DefaultImage
	}

	hackathon := models.Hackathon{
		Title:                strings.TrimSpace(input.Body.Title),
		OrganizerName:        strings.TrimSpace(input.Body.OrganizerName),
		StartDate:            input.Body.StartDate,
		EndDate:              input.Body.EndDate,
		RegistrationDeadline: input.Body.RegistrationDeadline,
		Location:             strings.TrimSpace(input.Body.Location),
		Mode:                 mode,
		Price:                price,
		MaxParticipants:      maxParticipants,
		ShortDescription:     strings.TrimSpace(input.Body.ShortDescription),
		LongDescription:      strings.TrimSpace(input.Body.LongDescription),
		Rules:                strings.TrimSpace(input.Body.Rules),
		Prizes:               strings.TrimSpace(input.Body.Prizes),
		CreatedBy:            userID,
		Status:               models.HackathonStatusActive,
		RegisteredTeams:      0,
		Image:                image,
	}

	if err := h.db.Create(&hackathon).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to create hackathon: " + err.Error())
	}

	h.cache.Delete(ctx, hackathonListCacheKey)

	return &HackathonResponse{Body: hackathon}, nil
}

type ListHackathonsRequest struct {
	Search string `query:"search" doc:"Optional case-insensitive text filter"`
}

type ListHackathonsResponse struct {
	Body []models.Hackathon
}

// HandleListHackathons returns the full unordered listing scan. There is no
// pagination; search and filtering belong to the consumer, with the search
// query applied server-side only as a convenience over the same matcher.
func (h *HackathonHandler) HandleListHackathons(ctx context.Context, input *ListHackathonsRequest) (*ListHackathonsResponse, error) {
	var hackathons []models.Hackathon

	if data := h.cache.Get(ctx, hackathonListCacheKey); data != nil {
		if err := json.Unmarshal(data, &hackathons); err != nil {
			hackathons = nil
		}
	}

	if hackathons == nil {
		if err := h.db.Find(&hackathons).Error; err != nil {
			return nil, huma.Error500InternalServerError("Failed to list hackathons: " + err.Error())
		}
		if payload, err := json.Marshal(hackathons); err == nil {
			h.cache.Set(ctx, hackathonListCacheKey, payload, hackathonListCacheTTL)
		}
	}

	hackathons = TextMatches(hackathons, input.Search)
	if hackathons == nil {
		hackathons = []models.Hackathon{}
	}

	return &ListHackathonsResponse{Body: hackathons}, nil
}

type GetHackathonRequest struct {
	ID uint `path:"id"`
}

func (h *HackathonHandler) HandleGetHackathon(ctx context.Context, input *GetHackathonRequest) (*HackathonResponse, error) {
	var hackathon models.Hackathon
	if err := h.db.First(&hackathon, input.ID).Error; err != nil {
		return nil, huma.Error404NotFound("Hackathon not found")
	}

	return &HackathonResponse{Body: hackathon}, nil
}

// TextMatches filters listings by a case-insensitive substring match over
// title, location and short description. An empty term matches everything.
func TextMatches(hackathons []models.Hackathon, term string) []models.Hackathon {
	if term == "" {
		return hackathons
	}

	lower := strings.ToLower(term)
	matched := make([]models.Hackathon, 0, len(hackathons))
	for _, h := range hackathons {
		if strings.Contains(strings.ToLower(h.Title), lower) ||
			strings.Contains(strings.ToLower(h.Location), lower) ||
			strings.Contains(strings.ToLower(h.ShortDescription), lower) {
			matched = append(matched, h)
		}
	}
	return matched
}
