package models

type ErrorResponse struct {
	Error string `json:"error" example:"name is required with minimum length of 3"`
}

type SuccessResponse struct {
	Message string `json:"message" example:"OK"`
}
