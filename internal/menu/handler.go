package menu

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nmaupu/cocktails/internal/i18n"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func locale(c *gin.Context) string {
	cookie, _ := c.Cookie(i18n.CookieName)
	return i18n.Normalize(cookie)
}

// --------------------------------------------------
// Pages
// --------------------------------------------------

// Index renders the guest menu, grouped by main alcohol.
func (h *Handler) Index(c *gin.Context) {
	groups, err := h.service.Grouped(c.Request.Context(), locale(c))
	if err != nil {
		c.String(http.StatusInternalServerError, "menu unavailable: %v", err)
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Groups": groups,
		"Locale": locale(c),
	})
}

// Admin renders the management page: cocktails per group plus the full
// ingredient list with stock toggles.
func (h *Handler) Admin(c *gin.Context) {
	ctx := c.Request.Context()
	groups, err := h.service.Grouped(ctx, locale(c))
	if err != nil {
		c.String(http.StatusInternalServerError, "menu unavailable: %v", err)
		return
	}
	ingredients, err := h.service.Ingredients(ctx)
	if err != nil {
		c.String(http.StatusInternalServerError, "menu unavailable: %v", err)
		return
	}
	c.HTML(http.StatusOK, "admin.html", gin.H{
		"Groups":      groups,
		"Ingredients": ingredients,
		"Locale":      locale(c),
	})
}

// --------------------------------------------------
// API
// --------------------------------------------------

// State returns cocktail name → enabled.
func (h *Handler) State(c *gin.Context) {
	state, err := h.service.State(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, state)
}

// Ordered returns the grouped menu in display order.
func (h *Handler) Ordered(c *gin.Context) {
	groups, err := h.service.Grouped(c.Request.Context(), locale(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

// Cocktail returns one cocktail by name.
func (h *Handler) Cocktail(c *gin.Context) {
	name := c.Param("name")
	cocktail, err := h.service.Cocktail(c.Request.Context(), name, locale(c))
	if err != nil {
		if errors.Is(err, ErrUnknownCocktail) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cocktail not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cocktail)
}

type toggleRequest struct {
	Name string `json:"name"`
}

// ToggleIngredient flips an ingredient's stock flag.
func (h *Handler) ToggleIngredient(c *gin.Context) {
	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ingredient name is required"})
		return
	}

	available, err := h.service.ToggleIngredient(c.Request.Context(), req.Name)
	if err != nil {
		if errors.Is(err, ErrUnknownIngredient) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Ingredient not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "available": available})
}

// ToggleCocktail flips a cocktail's manual override.
func (h *Handler) ToggleCocktail(c *gin.Context) {
	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cocktail name is required"})
		return
	}

	enabled, err := h.service.ToggleCocktail(c.Request.Context(), req.Name)
	if err != nil {
		if errors.Is(err, ErrUnknownCocktail) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cocktail not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"enabled":     enabled,
		"is_override": true,
	})
}

// SetLanguage stores the display locale in a cookie.
func (h *Handler) SetLanguage(c *gin.Context) {
	var req struct {
		Language string `json:"language"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || !i18n.Valid(req.Language) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "language must be \"en\" or \"fr\""})
		return
	}

	c.SetCookie(i18n.CookieName, req.Language, 365*24*3600, "/", "", false, false)
	c.JSON(http.StatusOK, gin.H{"success": true, "language": req.Language})
}

// Health verifies the catalog file is readable and valid.
func (h *Handler) Health(c *gin.Context) {
	if err := h.service.Healthy(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "cocktail-menu",
	})
}
