package helpers

// Session is the explicit per-request credential context. It is built once
// by the auth middleware and passed into services; core logic never reads
// tokens from shared storage.
type Session struct {
	*CustomClaims
	Role     string `json:"role"`
	UserID   string `json:"id"`
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
	// Token is the raw bearer token, forwarded to the backend on
	// authenticated calls.
	Token string `json:"-"`
}

// Helper methods for role checking
func (s *Session) IsAdmin() bool {
	return s.Role == "admin"
}

func (s *Session) IsTourist() bool {
	return s.Role == "tourist"
}

func (s *Session) IsCompany() bool {
	return s.Role == "travel_company"
}

func (s *Session) HasRole(role string) bool {
	return s.Role == role
}

func (s *Session) IsOwner(userID string) bool {
	return s.UserID == userID
}

func (s *Session) GetSafeRole() string {
	if s.Role == "" {
		return "guest"
	}
	return s.Role
}
