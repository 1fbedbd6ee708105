package models

import "github.com/gin-gonic/gin"

// ErrorResponse is the wire shape of every API failure:
// a plain {"error": <message>} body paired with the HTTP status.
func ErrorResponse(message string) gin.H {
	return gin.H{"error": message}
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status    string `json:"status" example:"OK"`
	Timestamp string `json:"timestamp" example:"2025-01-01T00:00:00Z"`
}
