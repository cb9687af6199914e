package chi

import (
	"github.com/kailas-cloud/ngcdex/internal/domain/dso"
)

// ErrorCode is the machine-readable error kind of an ErrorResponse.
type ErrorCode string

// Error codes.
const (
	ErrorCodeBadRequest      ErrorCode = "bad_request"
	ErrorCodeFormat          ErrorCode = "format_error"
	ErrorCodeUnknownCatalog  ErrorCode = "unknown_catalog"
	ErrorCodeInvalidCriteria ErrorCode = "invalid_criteria"
	ErrorCodeNoCoordinates   ErrorCode = "no_coordinates"
	ErrorCodeObjectNotFound  ErrorCode = "object_not_found"
	ErrorCodeUnauthorized    ErrorCode = "unauthorized"
	ErrorCodeCorruptCatalog  ErrorCode = "corrupt_catalog"
	ErrorCodeInternal        ErrorCode = "internal_error"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Hint    string    `json:"hint,omitempty"`
}

// ObjectListResponse is the body of a filtered listing.
type ObjectListResponse struct {
	Items []dso.Dso `json:"items"`
	Total int       `json:"total"`
}

// NeighborItem is one proximity hit.
type NeighborItem struct {
	Object   dso.Dso `json:"object"`
	Distance float64 `json:"distance_deg"`
}

// NeighborListResponse is the body of nearby and neighbors replies.
type NeighborListResponse struct {
	Center       string         `json:"center"`
	RadiusArcmin float64        `json:"radius_arcmin"`
	Items        []NeighborItem `json:"items"`
	Total        int            `json:"total"`
}

// SeparationResponse is the body of a separation reply.
type SeparationResponse struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Angular  float64 `json:"angular_deg"`
	DeltaRA  float64 `json:"delta_ra_deg"`
	DeltaDec float64 `json:"delta_dec_deg"`
	Text     string  `json:"text"`
}

// HealthResponse is the body of the health check.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
