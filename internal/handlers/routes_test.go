package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/RUTHVIKRAO04/HackConnect/internal/auth"
	"github.com/RUTHVIKRAO04/HackConnect/internal/config"
	"github.com/RUTHVIKRAO04/HackConnect/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestRegisterRoutes_SlidingSession(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	db.AutoMigrate(&models.User{}, &models.Hackathon{}, &models.Registration{}, &models.TeamMember{})

	user := models.User{Uid: "uid-1", FullName: "Alice Adams", Email: "alice@example.com"}
	db.Create(&user)

	cfg := &config.Config{JWTSecret: "test-secret"}
	authHandler := auth.NewAuthHandler(cfg, db, nil)

	r := chi.NewRouter()
	RegisterRoutes(r, cfg, authHandler,
		NewHackathonHandler(db, nil, authHandler),
		NewRegistrationHandler(db, nil, authHandler),
		NewUserHandler(db))

	signedToken := func(ttl time.Duration) string {
		claims := jwt.MapClaims{
			"user_id": user.ID,
			"exp":     time.Now().Add(ttl).Unix(),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTSecret))
		if err != nil {
			t.Fatalf("failed to sign token: %v", err)
		}
		return token
	}

	sessionCookie := func(resp *http.Response) *http.Cookie {
		for _, c := range resp.Cookies() {
			if c.Name == "auth_token" {
				return c
			}
		}
		return nil
	}

	t.Run("CookieRenewedPastHalfLife", func(t *testing.T) {
		old := signedToken(2 * time.Hour)

		req := httptest.NewRequest(http.MethodGet, "/registrations", nil)
		req.Header.Set("Cookie", "auth_token="+old)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rr.Code)
		}
		renewed := sessionCookie(rr.Result())
		if renewed == nil {
			t.Fatal("expected a renewed session cookie on the response")
		}
		if renewed.Value == "" || renewed.Value == old {
			t.Errorf("expected a fresh token, got %q", renewed.Value)
		}
	})

	t.Run("FreshCookieLeftAlone", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/registrations", nil)
		req.Header.Set("Cookie", "auth_token="+signedToken(23*time.Hour))
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rr.Code)
		}
		if c := sessionCookie(rr.Result()); c != nil {
			t.Errorf("expected no renewal for a fresh cookie, got %q", c.Value)
		}
	})

	t.Run("NoCookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/registrations", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200 without a session, got %d", rr.Code)
		}
		if c := sessionCookie(rr.Result()); c != nil {
			t.Errorf("expected no cookie without a session, got %q", c.Value)
		}
	})
}
