package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse is the envelope for informational outcomes (login, logout,
// role changes).
type messageResponse struct {
	Message string `json:"message"`
}

// --- Request types ---

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	// Role is optional and defaults to Junior.
	Role string `json:"role"`
}

// credentialsRequest carries username/password for login and for the
// role-change routes, which re-authenticate from the body.
type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// --- Response types ---

// userResponse is the stored account record. Password holds the salted
// digest; the plaintext never leaves the request.
type userResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}
