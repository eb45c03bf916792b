package dto

import (
	"github.com/MboaHealth/hospital_admin_app/internal/core/domain"
)

// CreateProfileRequest defines the data needed to register a profile.
type CreateProfileRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"omitempty,oneof=admin staff"`
}

// UpdateProfileRequest defines the data allowed for updating a profile.
// Pointers differentiate omitted fields from zero-value fields.
type UpdateProfileRequest struct {
	FullName *string `json:"fullName"`
	Role     *string `json:"role" binding:"omitempty,oneof=admin staff"`
}

// SetDepartmentsRequest replaces a profile's department memberships.
type SetDepartmentsRequest struct {
	DepartmentIDs []string `json:"departmentIDs" binding:"required"`
}

// ListProfilesParams defines query parameters for listing profiles.
type ListProfilesParams struct {
	Limit  int `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"omitempty,min=0"`
}

// ProfileResponse defines the data returned for a profile.
type ProfileResponse struct {
	ProfileID string `json:"profileID"`
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

// ListProfilesResponse wraps the list of profiles.
type ListProfilesResponse struct {
	Profiles []ProfileResponse `json:"profiles"`
}

// ToProfileResponse converts a domain.Profile to ProfileResponse DTO.
func ToProfileResponse(p *domain.Profile) ProfileResponse {
	return ProfileResponse{
		ProfileID: p.ProfileID,
		FullName:  p.FullName,
		Email:     p.Email,
		Role:      p.Role,
	}
}

// ToListProfilesResponse converts a slice of domain.Profile to ListProfilesResponse.
func ToListProfilesResponse(profiles []domain.Profile) ListProfilesResponse {
	responses := make([]ProfileResponse, len(profiles))
	for i, p := range profiles {
		responses[i] = ToProfileResponse(&p)
	}
	return ListProfilesResponse{Profiles: responses}
}
