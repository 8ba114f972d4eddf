package auth

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"satellite-recruit-backend/internal/model"
	"satellite-recruit-backend/internal/repository"
	"satellite-recruit-backend/internal/utilities"
)

// LoginHandler holds the repository reference for handler methods.
type LoginHandler struct {
	Repo *repository.Repository
}

// NewLoginHandler creates a new instance of LoginHandler with the provided repository.
func NewLoginHandler(repo *repository.Repository) *LoginHandler {
	return &LoginHandler{Repo: repo}
}

type loginInfo struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	User        model.User `json:"user"`
	AccessToken string     `json:"access_token"`
}

// AdminLoginHandler function handles admin login by receiving username and password.
// There is no self-registration: admin users are bootstrapped at startup or
// via cmd/create-admin.
// @Summary Handles admin login by receiving username and password
// @Description Username must exist, password must match and the user must be an admin
// @Tags Auth
// @Accept json
// @Produce json
// @Param Info body loginInfo true "Credentials for login"
// @Success 200 {object} loginResponse "Successfully logged in"
// @Failure 400 {object} utilities.ErrorResponse "Info provided not met the condition"
// @Failure 401 {object} utilities.ErrorResponse "Username not exist or password incorrect"
// @Failure 500 {object} utilities.ErrorResponse "Database or token signing error"
// @Router /auth/login [post]
func (lh *LoginHandler) AdminLoginHandler(c *gin.Context) {
	var info loginInfo

	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Username or password is not provided",
		})
		return
	}

	user, err := lh.Repo.UserByUsername(info.Username)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{
			Error: "Username or password is incorrect",
		})
		return

	case err != nil:
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Database error: %s", err.Error()),
		})
		return
	}

	if !utilities.CheckPassword(user.Password, info.Password) || user.Role != model.RoleAdmin {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{
			Error: "Username or password is incorrect",
		})
		return
	}

	accessToken, err := GenerateAccessToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to generate access token: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, loginResponse{
		User:        *user,
		AccessToken: accessToken,
	})
}
