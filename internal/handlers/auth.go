package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Thunder2505/EPI-USE-EmployeeHierarchyManagement/internal/apperr"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h HandlerSet) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   result.Token,
		"role":    result.Role,
	})
}

type registerRequest struct {
	EmployeeNumber string `json:"employee_number"`
	Email          string `json:"email"`
	Password       string `json:"password"`
}

func (h HandlerSet) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.auth.Register(c.Request.Context(), req.EmployeeNumber, req.Email, req.Password); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User registered"})
}

// RegistrationEligibility is an informational pre-check for the registration
// form. It is not an authorization decision: Register re-validates.
func (h HandlerSet) RegistrationEligibility(c *gin.Context) {
	employeeNumber := c.Query("employee_number")
	if employeeNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing employee_number"})
		return
	}

	eligible, err := h.auth.CheckRegistrationEligibility(c.Request.Context(), employeeNumber)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"eligible": eligible})
}

type sessionRequest struct {
	Token string `json:"token"`
}

func (h HandlerSet) ValidateSession(c *gin.Context) {
	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	status, err := h.auth.ValidateToken(c.Request.Context(), req.Token)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if !status.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{"valid": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid":  true,
		"expiry": status.Expiry.UTC().Format(time.RFC3339),
	})
}

func (h HandlerSet) Logout(c *gin.Context) {
	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Token == "" {
		h.respondError(c, apperr.Validation("token is required"))
		return
	}

	if err := h.auth.Logout(c.Request.Context(), req.Token); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
