package handler

import "github.com/genvoice/casetrack/internal/core/domain"

// Names are stored lowercase; every outward rendering goes through the
// display normalizer here so no path leaks the stored form.

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:       u.ID,
		Name:     u.DisplayName(),
		Username: u.Username,
		Password: u.Password,
		Role:     string(u.Role),
	}
}

func toCaseResponse(c *domain.Case) caseResponse {
	return caseResponse{
		ID:          c.ID,
		Name:        c.DisplayName(),
		Description: c.Description,
	}
}

func toCaseListResponse(cases []*domain.Case) []caseResponse {
	out := make([]caseResponse, 0, len(cases))
	for _, c := range cases {
		out = append(out, toCaseResponse(c))
	}
	return out
}
