package services

// ApiError is an error that already knows its HTTP status.
type ApiError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (a *ApiError) Error() string {
	return a.Message
}
