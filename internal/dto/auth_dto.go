package dto

import "github.com/marina-vidal/gimnasio-go-api/internal/models"

// LoginRequest carries the credentials supplied by the login form.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// MonitorResponse serializes the authenticated staff profile. The password
// hash never leaves the service layer.
type MonitorResponse struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	Nombre    string `json:"nombre"`
	Apellidos string `json:"apellidos"`
}

// SesionResponse is returned on a successful login.
type SesionResponse struct {
	Token   string          `json:"token"`
	Monitor MonitorResponse `json:"monitor"`
}

// NewMonitorResponse converts a monitor model into its DTO.
func NewMonitorResponse(monitor models.Monitor) MonitorResponse {
	return MonitorResponse{
		ID:        monitor.ID,
		Email:     monitor.Email,
		Nombre:    monitor.Nombre,
		Apellidos: monitor.Apellidos,
	}
}
