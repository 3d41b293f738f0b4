package models

type MessageResponse struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
}

type ValidationResponse struct {
	StatusCode int               `json:"status_code"`
	Errors     map[string]string `json:"errors"`
}

type DataResponse struct {
	StatusCode int         `json:"status_code"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data"`
}

// CalculateKPIRequest carries an activity bundle to score without touching storage.
type CalculateKPIRequest struct {
	User   User   `json:"user"`
	Window string `json:"window" validate:"required,oneof=30days 90days ytd"`
	ActivityBundle
}
