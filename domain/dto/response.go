package dto

// Res is the envelope used for middleware rejections.
type Res struct {
	ResponseCode    string      `json:"responseCode"`
	ResponseMessage string      `json:"responseMessage"`
	Data            interface{} `json:"data,omitempty"`
}

// ErrorResponse is the body the backend and the dashboard use for failures.
type ErrorResponse struct {
	Error string `json:"error"`
}
