package domain

import (
	"time"

	"github.com/spec-kit/user-registry/pkg/util/errorutil"
)

// LegalAge is the minimum age accepted at registration.
const LegalAge = 18

// UserStatus represents lifecycle states for a registered user.
type UserStatus string

const (
	UserStatusActive   UserStatus = "ativo"
	UserStatusInactive UserStatus = "inativo"
)

// Validation failures raised by user creation. Compare with errors.Is.
var (
	ErrUserFieldsRequired = errorutil.NewValidationError(errorutil.CodeMissingFields, "Nome, email e idade são obrigatórios.")
	ErrUserUnderage       = errorutil.NewValidationError(errorutil.CodeUnderage, "O usuário deve ser maior de idade.")
)

// User is the domain model for registry entries.
type User struct {
	ID        string
	Name      string
	Email     string
	Age       int
	Status    UserStatus
	IsAdmin   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateNewUser checks registration input. Presence is checked before age.
func ValidateNewUser(name, email string, age int) error {
	if name == "" || email == "" || age == 0 {
		return ErrUserFieldsRequired
	}
	if age < LegalAge {
		return ErrUserUnderage
	}
	return nil
}

// IsActive reports whether the user has not been deactivated.
func (u User) IsActive() bool {
	return u.Status == UserStatusActive
}

// CanBeDeactivated reports whether the registry may move the user to inactive.
// Administrators are exempt.
func (u User) CanBeDeactivated() bool {
	return !u.IsAdmin
}
