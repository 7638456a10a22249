package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/RUTHVIKRAO04/HackConnect/internal/config"
	"github.com/RUTHVIKRAO04/HackConnect/internal/directory"
	"github.com/RUTHVIKRAO04/HackConnect/internal/models"
	"github.com/danielgtaylor/huma/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
	"gorm.io/gorm"
)

const (
	GoogleAuthorizeEndpoint = "https://accounts.google.com/o/oauth2/auth"
	GoogleTokenEndpoint     = "https://oauth2.googleapis.com/token"
	GoogleUserAPI           = "https://www.googleapis.com/oauth2/v2/userinfo"
)

const TokenDuration = 24 * time.Hour

type AuthHandler struct {
	oauthConfig *oauth2.Config
	db          *gorm.DB
	cfg         *config.Config
	sync        *directory.Client
}

func NewAuthHandler(cfg *config.Config, db *gorm.DB, sync *directory.Client) *AuthHandler {
	return &AuthHandler{
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  GoogleAuthorizeEndpoint,
				TokenURL: GoogleTokenEndpoint,
			},
		},
		db:   db,
		cfg:  cfg,
		sync: sync,
	}
}

// AuthInput carries the raw Cookie header so handlers can authorize without
// depending on middleware having run.
type AuthInput struct {
	Cookie string `header:"Cookie" doc:"Session cookie (auth_token)"`
}

// Authorize resolves the acting user from the Cookie header. It returns a
// 401 huma error when no valid session is present.
func (h *AuthHandler) Authorize(ctx context.Context, cookieHeader string) (uint, error) {
	tokenString := cookieValue(cookieHeader, "auth_token")
	if tokenString == "" {
		return 0, huma.Error401Unauthorized("Unauthorized: no token found")
	}

	userID, _, err := h.parseToken(tokenString)
	if err != nil {
		return 0, huma.Error401Unauthorized("Unauthorized: invalid token")
	}

	return userID, nil
}

func (h *AuthHandler) parseToken(tokenString string) (uint, time.Time, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(h.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, time.Time{}, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, time.Time{}, fmt.Errorf("invalid token claims")
	}
	userIDFloat, ok := claims["user_id"].(float64)
	if !ok || userIDFloat == 0 {
		return 0, time.Time{}, fmt.Errorf("invalid token claims")
	}

	var expiresAt time.Time
	if exp, ok := claims["exp"].(float64); ok {
		expiresAt = time.Unix(int64(exp), 0)
	}

	return uint(userIDFloat), expiresAt, nil
}

func cookieValue(header, name string) string {
	for _, part := range strings.Split(header, ";") {
		part = strings.TrimSpace(part)
		if v, ok := strings.CutPrefix(part, name+"="); ok {
			return v
		}
	}
	return ""
}

func (h *AuthHandler) GenerateToken(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(TokenDuration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.cfg.JWTSecret))
}

func sessionCookie(token string) http.Cookie {
	return http.Cookie{
		Name:     "auth_token",
		Value:    token,
		Expires:  time.Now().Add(TokenDuration),
		HttpOnly: true,
		Path:     "/",
	}
}

type SignupRequest struct {
	Body struct {
		FullName string `json:"full_name" doc:"Display name" required:"true"`
		Email    string `json:"email" doc:"Email address" required:"true"`
		Password string `json:"password" doc:"Password" required:"true"`
		Role     string `json:"role" doc:"Role tag, e.g. frontend-developer"`
	}
}

type SessionResponse struct {
	SetCookie http.Cookie `header:"Set-Cookie"`
	Body      struct {
		ID       uint   `json:"id"`
		Uid      string `json:"uid"`
		FullName string `json:"full_name"`
		Email    string `json:"email"`
		Role     string `json:"role"`
	}
}

func (h *AuthHandler) HandleSignup(ctx context.Context, input *SignupRequest) (*SessionResponse, error) {
	fullName := strings.TrimSpace(input.Body.FullName)
	email := strings.TrimSpace(input.Body.Email)
	if fullName == "" {
		return nil, huma.Error400BadRequest("full_name is required")
	}
	if email == "" {
		return nil, huma.Error400BadRequest("email is required")
	}
	if input.Body.Password == "" {
		return nil, huma.Error400BadRequest("password is required")
	}

	role := input.Body.Role
	if role == "" {
		role = "other"
	}

	var existing models.User
	if err := h.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, huma.Error409Conflict("An account with this email already exists")
	} else if err != gorm.ErrRecordNotFound {
		return nil, huma.Error500InternalServerError("Database error: " + err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Body.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to hash password")
	}

	user := models.User{
		Uid:          uuid.NewString(),
		FullName:     fullName,
		Email:        email,
		Role:         role,
		PasswordHash: string(hash),
	}

	if err := h.db.Create(&user).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to create user: " + err.Error())
	}

	// Legacy directory sync is best effort; signup never blocks on it.
	if err := h.sync.SyncUser(user); err != nil {
		log.Printf("User directory sync failed for %s: %v", user.Uid, err)
	}

	return h.sessionResponse(user)
}

type LoginRequest struct {
	Body struct {
		Email    string `json:"email" required:"true"`
		Password string `json:"password" required:"true"`
	}
}

func (h *AuthHandler) HandleLogin(ctx context.Context, input *LoginRequest) (*SessionResponse, error) {
	var user models.User
	if err := h.db.Where("email = ?", strings.TrimSpace(input.Body.Email)).First(&user).Error; err != nil {
		return nil, huma.Error401Unauthorized("Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Body.Password)); err != nil {
		return nil, huma.Error401Unauthorized("Invalid email or password")
	}

	return h.sessionResponse(user)
}

func (h *AuthHandler) sessionResponse(user models.User) (*SessionResponse, error) {
	token, err := h.GenerateToken(user.ID)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to generate token")
	}

	res := &SessionResponse{SetCookie: sessionCookie(token)}
	res.Body.ID = user.ID
	res.Body.Uid = user.Uid
	res.Body.FullName = user.FullName
	res.Body.Email = user.Email
	res.Body.Role = user.Role
	return res, nil
}

type MeResponse struct {
	Body struct {
		ID       uint   `json:"id"`
		Uid      string `json:"uid"`
		FullName string `json:"full_name"`
		Email    string `json:"email"`
		Role     string `json:"role"`
	}
}

func (h *AuthHandler) HandleMe(ctx context.Context, input *AuthInput) (*MeResponse, error) {
	userID, err := h.Authorize(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		return nil, huma.Error404NotFound("User not found")
	}

	res := &MeResponse{}
	res.Body.ID = user.ID
	res.Body.Uid = user.Uid
	res.Body.FullName = user.FullName
	res.Body.Email = user.Email
	res.Body.Role = user.Role
	return res, nil
}

func (h *AuthHandler) HandleGoogleLogin(w http.ResponseWriter, r *http.Request) {
	url := h.oauthConfig.AuthCodeURL("state", oauth2.AccessTypeOnline)
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

type googleProfile struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// resolveGoogleUser binds a Google profile to an account, matching by Google
// id first and email second. A profile without an id is rejected outright so
// the lookup can never key on an empty google_id.
func (h *AuthHandler) resolveGoogleUser(profile googleProfile) (models.User, error) {
	if profile.ID == "" {
		return models.User{}, fmt.Errorf("google profile has no id")
	}

	var user models.User
	if err := h.db.Where("google_id = ?", profile.ID).Or("email = ?", profile.Email).First(&user).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return models.User{}, err
		}
		user = models.User{
			Uid:  uuid.NewString(),
			Role: "other",
		}
	}
	user.GoogleID = profile.ID
	user.Email = profile.Email
	user.FullName = profile.Name

	if err := h.db.Save(&user).Error; err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (h *AuthHandler) HandleGoogleCallback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		http.Error(w, "Code not found", http.StatusBadRequest)
		return
	}

	token, err := h.oauthConfig.Exchange(r.Context(), code)
	if err != nil {
		http.Error(w, "Failed to exchange token", http.StatusInternalServerError)
		return
	}

	client := h.oauthConfig.Client(r.Context(), token)

	resp, err := client.Get(GoogleUserAPI)
	if err != nil {
		http.Error(w, "Failed to get user info", http.StatusInternalServerError)
		return
	}
	defer resp.Body.Close()

	var googleUser googleProfile
	if err := json.NewDecoder(resp.Body).Decode(&googleUser); err != nil {
		http.Error(w, "Failed to decode user info", http.StatusInternalServerError)
		return
	}

	user, err := h.resolveGoogleUser(googleUser)
	if err != nil {
		http.Error(w, "Failed to save user", http.StatusInternalServerError)
		return
	}

	if err := h.sync.SyncUser(user); err != nil {
		log.Printf("User directory sync failed for %s: %v", user.Uid, err)
	}

	jwtToken, err := h.GenerateToken(user.ID)
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	cookie := sessionCookie(jwtToken)
	http.SetCookie(w, &cookie)

	http.Redirect(w, r, h.cfg.FrontendURL, http.StatusTemporaryRedirect)
}
