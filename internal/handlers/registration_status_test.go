package handlers

import (
	"context"
	"testing"
	"time"

	"github.com/RUTHVIKRAO04/HackConnect/internal/auth"
	"github.com/RUTHVIKRAO04/HackConnect/internal/config"
	"github.com/RUTHVIKRAO04/HackConnect/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestStatusBadge(t *testing.T) {
	tests := []struct {
		status string
		label  string
		class  string
	}{
		{"pending", "Pending", "bg-yellow-100 text-yellow-800"},
		{"approved", "Approved", "bg-green-100 text-green-800"},
		{"rejected", "Rejected", "bg-red-100 text-red-800"},
		// Unknown values fall back to the rejected styling
		{"waitlisted", "Waitlisted", "bg-red-100 text-red-800"},
		{"", "", "bg-red-100 text-red-800"},
	}

	for _, tt := range tests {
		label, class := StatusBadge(tt.status)
		if label != tt.label {
			t.Errorf("StatusBadge(%q) label = %q, want %q", tt.status, label, tt.label)
		}
		if class != tt.class {
			t.Errorf("StatusBadge(%q) class = %q, want %q", tt.status, class, tt.class)
		}
	}
}

func TestFormatRegisteredAt(t *testing.T) {
	if got := FormatRegisteredAt(time.Time{}); got != "" {
		t.Errorf("expected empty string for zero time, got %q", got)
	}

	ts := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	if got := FormatRegisteredAt(ts); got != "2025-03-14" {
		t.Errorf("expected 2025-03-14, got %q", got)
	}
}

func TestHandleUpdateStatus(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	db.AutoMigrate(&models.User{}, &models.Hackathon{}, &models.Registration{}, &models.TeamMember{})

	organizer := models.User{Uid: "uid-org", FullName: "Olga", Email: "olga@example.com"}
	db.Create(&organizer)
	registrant := models.User{Uid: "uid-reg", FullName: "Alice", Email: "alice@example.com"}
	db.Create(&registrant)

	hackathon := models.Hackathon{Title: "AI Summit", CreatedBy: organizer.ID}
	db.Create(&hackathon)

	registration := models.Registration{
		HackathonID:    hackathon.ID,
		HackathonTitle: hackathon.Title,
		UserID:         registrant.ID,
		UserName:       registrant.FullName,
		Status:         models.RegistrationStatusPending,
		TeamName:       "Bit Benders",
		Leader:         models.TeamLeader{Name: "Alice", Email: "alice@example.com", Contact: "555-0100"},
	}
	db.Create(&registration)

	// Insert members out of slot order to check the response sorts them.
	db.Create(&models.TeamMember{RegistrationID: registration.ID, Position: 3, Name: "Carol", Email: "carol@example.com"})
	db.Create(&models.TeamMember{RegistrationID: registration.ID, Position: 2, Name: "Bob", Email: "bob@example.com"})

	authHandler := auth.NewAuthHandler(&config.Config{JWTSecret: "test-secret"}, db, nil)
	handler := NewRegistrationHandler(db, nil, authHandler)

	organizerToken, _ := authHandler.GenerateToken(organizer.ID)
	registrantToken, _ := authHandler.GenerateToken(registrant.ID)

	t.Run("NonOrganizerForbidden", func(t *testing.T) {
		req := UpdateRegistrationStatusRequest{ID: registration.ID}
		req.Cookie = "auth_token=" + registrantToken
		req.Body.Status = models.RegistrationStatusApproved

		if _, err := handler.HandleUpdateStatus(context.Background(), &req); err == nil {
			t.Error("expected forbidden error for non-organizer")
		}
	})

	t.Run("OrganizerApproves", func(t *testing.T) {
		req := UpdateRegistrationStatusRequest{ID: registration.ID}
		req.Cookie = "auth_token=" + organizerToken
		req.Body.Status = models.RegistrationStatusApproved

		resp, err := handler.HandleUpdateStatus(context.Background(), &req)
		if err != nil {
			t.Fatalf("HandleUpdateStatus returned error: %v", err)
		}
		if resp.Body.Status != models.RegistrationStatusApproved {
			t.Errorf("expected approved, got %s", resp.Body.Status)
		}
		if resp.Body.StatusLabel != "Approved" {
			t.Errorf("expected badge 'Approved', got %q", resp.Body.StatusLabel)
		}

		members := resp.Body.TeamDetails.Members
		if len(members) != 2 {
			t.Fatalf("expected 2 members, got %d", len(members))
		}
		if members[0].Name != "Bob" || members[1].Name != "Carol" {
			t.Errorf("expected members in slot order [Bob Carol], got [%s %s]", members[0].Name, members[1].Name)
		}
	})

	t.Run("TerminalStateConflict", func(t *testing.T) {
		req := UpdateRegistrationStatusRequest{ID: registration.ID}
		req.Cookie = "auth_token=" + organizerToken
		req.Body.Status = models.RegistrationStatusRejected

		if _, err := handler.HandleUpdateStatus(context.Background(), &req); err == nil {
			t.Error("expected conflict error on already-approved registration")
		}

		var current models.Registration
		db.First(&current, registration.ID)
		if current.Status != models.RegistrationStatusApproved {
			t.Errorf("expected status to stay approved, got %s", current.Status)
		}
	})
}
