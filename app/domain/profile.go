package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ProfileRole represents the role of a profile in the agency
type ProfileRole string

const (
	RoleAdmin     ProfileRole = "admin"
	RoleManager   ProfileRole = "manager"
	RoleDeveloper ProfileRole = "developer"
	RoleClient    ProfileRole = "client"
)

// Profile is the application-level user record, one-to-one with the auth
// identity by id. It is created client-side at sign-up time and read
// thereafter through forced-refresh lookups.
type Profile struct {
	ID        uuid.UUID   `json:"id"`
	FullName  *string     `json:"full_name"`
	AvatarURL *string     `json:"avatar_url"`
	Role      ProfileRole `json:"role"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// NewProfile creates a profile record for a freshly registered user.
// New registrations always start with the client role.
func NewProfile(userID uuid.UUID, fullName string) (*Profile, error) {
	if userID == (uuid.UUID{}) {
		return nil, fmt.Errorf("user ID is required")
	}

	now := time.Now()
	return &Profile{
		ID:        userID,
		FullName:  &fullName,
		Role:      RoleClient,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ChangeRole changes the profile's role with validation
func (p *Profile) ChangeRole(role ProfileRole) error {
	if !role.Valid() {
		return fmt.Errorf("invalid role: %s", role)
	}
	p.Role = role
	p.UpdatedAt = time.Now()
	return nil
}

// DisplayName returns the full name, falling back to an empty string.
func (p *Profile) DisplayName() string {
	if p.FullName == nil {
		return ""
	}
	return *p.FullName
}

// IsAdmin returns true if the profile has the admin role
func (p *Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// IsStaff returns true for roles internal to the agency
func (p *Profile) IsStaff() bool {
	return p.Role == RoleAdmin || p.Role == RoleManager || p.Role == RoleDeveloper
}

// Valid returns true if the role is one of the known roles
func (r ProfileRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleDeveloper, RoleClient:
		return true
	}
	return false
}
