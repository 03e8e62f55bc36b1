package handlers

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"employee-task-api/internal/auth"
	"employee-task-api/internal/cache"
	"employee-task-api/internal/config"
	"employee-task-api/internal/models"
	"employee-task-api/internal/store"
	"employee-task-api/internal/validation"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
	githuboauth "golang.org/x/oauth2/github"
)

// githubProfileURL is a var so tests can point it at a fake provider.
var githubProfileURL = "https://api.github.com/user"

// Browser-facing success page for the OAuth callback. API clients get the
// usual JSON session body instead, per their Accept header.
const githubSuccessPage = `<!DOCTYPE html>
<html>
<head>
    <title>Login Successful</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
               display: flex; align-items: center; justify-content: center; height: 100vh;
               margin: 0; background: #f5f5f5; }
        .container { text-align: center; background: white; padding: 2rem 3rem;
                     border-radius: 8px; box-shadow: 0 2px 8px rgba(0,0,0,0.1); }
        code { display: block; margin-top: 1rem; padding: 0.5rem; background: #f0f0f0;
               border-radius: 4px; word-break: break-all; }
    </style>
</head>
<body>
    <div class="container">
        <h1>&#10003; Login Successful</h1>
        <p>Welcome, %s. Use this token as a Bearer credential:</p>
        <code>%s</code>
    </div>
</body>
</html>
`

// AuthHandler serves registration, login, logout and the GitHub OAuth flow.
type AuthHandler struct {
	users  *store.UserStore
	tokens *auth.Manager
	oauth  *oauth2.Config // nil when GitHub login is not configured
	states *cache.StateCache
}

func NewAuthHandler(users *store.UserStore, tokens *auth.Manager, cfg config.Config) *AuthHandler {
	h := &AuthHandler{
		users:  users,
		tokens: tokens,
		states: cache.NewStateCache(10 * time.Minute),
	}
	if cfg.GithubEnabled() {
		h.oauth = &oauth2.Config{
			ClientID:     cfg.GithubClientID,
			ClientSecret: cfg.GithubClientSecret,
			RedirectURL:  cfg.GithubRedirectURL,
			Scopes:       []string{"read:user", "user:email"},
			Endpoint:     githuboauth.Endpoint,
		}
	}
	return h
}

// RegisterRequest represents the registration payload
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the login payload
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	Token    string `json:"token"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Message  string `json:"message"`
}

// Register handles POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username, email, and password are required"})
		return
	}
	if !validation.Email(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
		return
	}
	if len(req.Password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 6 characters"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := h.users.Insert(c.Request.Context(), user); err != nil {
		if errors.Is(err, store.ErrConflict) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username already taken"})
			return
		}
		log.Printf("Error registering user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error while registering user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"id":      user.ID,
	})
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	user, err := h.users.FindByUsername(c.Request.Context(), req.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		log.Printf("Error logging in: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error while logging in"})
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	h.respondWithSession(c, user)
}

// Logout handles POST /logout. Sessions are stateless tokens, so logout is
// advisory: the client discards the token.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// Protected handles GET /protected, a session-gated smoke endpoint.
func (h *AuthHandler) Protected(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Hello, %s. You are viewing a protected route!", c.GetString("username")),
	})
}

// GithubLogin handles GET /login/github, redirecting to the GitHub
// authorization page with a one-shot CSRF state token.
func (h *AuthHandler) GithubLogin(c *gin.Context) {
	if h.oauth == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "GitHub login is not configured"})
		return
	}
	state, err := randomState()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start login"})
		return
	}
	h.states.Put(state)
	c.Redirect(http.StatusFound, h.oauth.AuthCodeURL(state))
}

// GithubCallback handles GET /auth/github/callback: state check, code
// exchange, profile fetch, account upsert, session issue.
func (h *AuthHandler) GithubCallback(c *gin.Context) {
	if h.oauth == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "GitHub login is not configured"})
		return
	}
	if state := c.Query("state"); state == "" || !h.states.Take(state) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid state parameter"})
		return
	}
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Authorization failed"})
		return
	}

	token, err := h.oauth.Exchange(c.Request.Context(), code)
	if err != nil {
		log.Printf("Error exchanging GitHub code: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Token exchange failed"})
		return
	}

	login, email, err := h.fetchGithubUser(c.Request.Context(), token)
	if err != nil {
		log.Printf("Error fetching GitHub profile: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch GitHub profile"})
		return
	}

	user, err := h.users.FindByGithubLogin(c.Request.Context(), login)
	if errors.Is(err, store.ErrNotFound) {
		user = &models.User{Username: login, Email: email, GithubLogin: login}
		err = h.users.Insert(c.Request.Context(), user)
		if errors.Is(err, store.ErrConflict) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A local account already uses this username"})
			return
		}
	}
	if err != nil {
		log.Printf("Error upserting GitHub user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error while logging in"})
		return
	}

	// Browsers arriving from the GitHub redirect get a human-readable page;
	// everything else gets the JSON session body.
	if c.NegotiateFormat(gin.MIMEJSON, gin.MIMEHTML) == gin.MIMEHTML {
		token, err := h.tokens.GenerateToken(user.ID, user.Username)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, fmt.Sprintf(githubSuccessPage, user.Username, token))
		return
	}
	h.respondWithSession(c, user)
}

func (h *AuthHandler) respondWithSession(c *gin.Context, user *models.User) {
	token, err := h.tokens.GenerateToken(user.ID, user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, LoginResponse{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
		Message:  "Login successful",
	})
}

func (h *AuthHandler) fetchGithubUser(ctx context.Context, token *oauth2.Token) (login, email string, err error) {
	resp, err := h.oauth.Client(ctx, token).Get(githubProfileURL)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("github profile request returned %s", resp.Status)
	}

	var profile struct {
		Login string `json:"login"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return "", "", err
	}
	if profile.Login == "" {
		return "", "", errors.New("github profile has no login")
	}
	return profile.Login, profile.Email, nil
}

func randomState() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
