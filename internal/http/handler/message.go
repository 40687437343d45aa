package handler

const oopsErr = "Oops! Something went wrong. Please try again later."

type Response struct {
	Message string      `json:"message,omitempty"` // human readable summary
	Data    interface{} `json:"data,omitempty"`    // response payload, may be nil
	Error   string      `json:"error,omitempty"`   // failure detail, set on errors only
}
