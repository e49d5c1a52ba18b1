package response

// UserSummary is the minimal identity echo returned after verification.
type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type VerifyOTPResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    UserSummary `json:"user"`
}

type LoginResponse struct {
	Message string `json:"message"`
	Name    string `json:"name"`
}
