package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// LoginPage renders the password form.
func (h *Handler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// Login checks the submitted password and opens a session.
func (h *Handler) Login(c *gin.Context) {
	password := c.PostForm("password")

	token, err := h.service.Login(password)
	if err != nil {
		if errors.Is(err, ErrInvalidPassword) {
			c.HTML(http.StatusUnauthorized, "login.html", gin.H{
				"Error": "Incorrect password",
			})
			return
		}
		c.String(http.StatusInternalServerError, "login failed: %v", err)
		return
	}

	c.SetCookie(SessionCookie, token, int(sessionTTL.Seconds()), "/", "", false, true)
	c.Redirect(http.StatusFound, "/admin")
}

// Logout drops the session cookie.
func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}
