package mapping

import (
	"github.com/MboaHealth/hospital_admin_app/internal/core/domain"
	"github.com/MboaHealth/hospital_admin_app/internal/models"
)

// ToModelProfile converts a domain Profile to a model Profile
func ToModelProfile(d domain.Profile) models.Profile {
	return models.Profile{
		ProfileID:              d.ProfileID,
		FullName:               d.FullName,
		Email:                  d.Email,
		Role:                   d.Role,
		PasswordHash:           d.PasswordHash,
		RefreshTokenHash:       d.RefreshTokenHash,
		RefreshTokenExpiryTime: d.RefreshTokenExpiryTime,
		AuditFields:            ToModelAuditFields(d.AuditFields),
		DeletedAt:              d.DeletedAt,
	}
}

// ToDomainProfile converts a model Profile to a domain Profile
func ToDomainProfile(m models.Profile) domain.Profile {
	return domain.Profile{
		ProfileID:              m.ProfileID,
		FullName:               m.FullName,
		Email:                  m.Email,
		Role:                   m.Role,
		PasswordHash:           m.PasswordHash,
		RefreshTokenHash:       m.RefreshTokenHash,
		RefreshTokenExpiryTime: m.RefreshTokenExpiryTime,
		AuditFields:            ToDomainAuditFields(m.AuditFields),
		DeletedAt:              m.DeletedAt,
	}
}

// ToDomainProfileSlice converts a slice of model Profiles to domain Profiles
func ToDomainProfileSlice(ms []models.Profile) []domain.Profile {
	ds := make([]domain.Profile, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProfile(m)
	}
	return ds
}
