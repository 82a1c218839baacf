package dto

// AwardRequest describes a gamified action to award points for. Points are
// intentionally unconstrained; the demo acknowledges without validating
// ranges or mutating anything.
type AwardRequest struct {
	Action string `json:"action" binding:"required"`
	Points int    `json:"points"`
}

type AwardResponse struct {
	Mode    string `json:"mode"`
	Message string `json:"message"`
}
