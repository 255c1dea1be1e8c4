package handlers

import (
	"errors"
	"net/http"

	"gtd_assistant/internal/domain"
	"gtd_assistant/internal/repository"
	"gtd_assistant/internal/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Auth logs a user in and returns a JWT. An unknown username registers
// a new account with the supplied password.
func (h *Handler) Auth(c *gin.Context) {
	var req AuthRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}
	if req.Username == "" || len(req.Password) < 8 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and a password of at least 8 characters are required"})
		return
	}

	ctx := c.Request.Context()
	user, err := h.UserRepo.GetByUsername(ctx, req.Username)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
			return
		}
		user = &domain.User{Username: req.Username, PasswordHash: string(hash)}
		if err := h.UserRepo.Create(ctx, user); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
			return
		}
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load user"})
		return
	default:
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
	}

	token, err := service.GenerateJWT(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
		},
	})
}
