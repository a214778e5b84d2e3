package dto

// EdicionRequest marks a member as the current edit target for the caller's
// session.
type EdicionRequest struct {
	MiembroID uint `json:"miembro_id" validate:"required,gte=1"`
}

// EdicionResponse reports the consumed edit target. Pendiente is false when
// no target was set or it was already taken.
type EdicionResponse struct {
	MiembroID uint `json:"miembro_id,omitempty"`
	Pendiente bool `json:"pendiente"`
}
