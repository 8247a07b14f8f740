package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/nmapp/checkbackend/auth"
	"github.com/nmapp/checkbackend/auth/middleware"
	"github.com/nmapp/checkbackend/models"
	"github.com/nmapp/checkbackend/repository"
)

type registerRequest struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (h *Handler) Register(c *gin.Context) {
	var body registerRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if body.Password != body.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Passwords do not match"})
		return
	}
	if body.Username == "" || body.Email == "" || body.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username, email and password are required"})
		return
	}

	ctx := c.Request.Context()

	taken, err := h.store.Users.UsernameTaken(ctx, body.Username)
	if err != nil {
		serverError(c, "failed to check username", err)
		return
	}
	if taken {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username already exists"})
		return
	}

	taken, err = h.store.Users.EmailTaken(ctx, body.Email)
	if err != nil {
		serverError(c, "failed to check email", err)
		return
	}
	if taken {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
		return
	}

	hashBytes, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		serverError(c, "failed to hash password", err)
		return
	}

	user := models.User{
		Username:     body.Username,
		Email:        body.Email,
		PasswordHash: string(hashBytes),
		FirstName:    body.FirstName,
		LastName:     body.LastName,
	}
	if err := h.store.Users.Create(ctx, &user); err != nil {
		// Lost a race against a concurrent registration; the unique index is
		// the source of truth, not the checks above.
		if errors.Is(err, repository.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username or email already exists"})
			return
		}
		serverError(c, "failed to create user", err)
		return
	}

	access, refresh, err := auth.GenerateTokens(user.ID)
	if err != nil {
		serverError(c, "failed to issue tokens", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"refresh": refresh,
		"access":  access,
		"user":    user.Public(),
	})
}

type loginRequest struct {
	EmailOrUsername string `json:"email_or_username"`
	Password        string `json:"password"`
}

func (h *Handler) Login(c *gin.Context) {
	var body loginRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	ctx := c.Request.Context()

	// The input may be an email or a username; an email match wins.
	username := body.EmailOrUsername
	if byEmail, err := h.store.Users.FindByEmail(ctx, body.EmailOrUsername); err == nil {
		username = byEmail.Username
	} else if !errors.Is(err, repository.ErrNotFound) {
		serverError(c, "failed to look up email", err)
		return
	}

	user, err := h.store.Users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Same response as a wrong password, on purpose.
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		serverError(c, "failed to look up user", err)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	access, refresh, err := auth.GenerateTokens(user.ID)
	if err != nil {
		serverError(c, "failed to issue tokens", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"refresh": refresh,
		"access":  access,
		"user":    user.Public(),
	})
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

func (h *Handler) Refresh(c *gin.Context) {
	var body refreshRequest
	if err := c.ShouldBindJSON(&body); err != nil || body.Refresh == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing refresh token"})
		return
	}

	access, err := auth.RefreshAccessToken(body.Refresh)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access": access})
}

func (h *Handler) Me(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uint)

	user, err := h.store.Users.FindByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		serverError(c, "failed to load user", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user.Public()})
}
