package domain

import "errors"

// User-specific validation errors
var (
	// ErrUserNameEmpty is returned when a user's name is empty.
	ErrUserNameEmpty = errors.New("user name cannot be empty")

	// ErrUserNameTooLong is returned when a user's name exceeds the maximum length.
	ErrUserNameTooLong = errors.New("user name cannot exceed 100 characters")

	// ErrUserEmailEmpty is returned when a user's email is empty.
	ErrUserEmailEmpty = errors.New("user email cannot be empty")

	// ErrUserEmailTooLong is returned when a user's email exceeds the maximum length.
	ErrUserEmailTooLong = errors.New("user email cannot exceed 200 characters")
)

// Maximum field lengths for User.
const (
	NameMaxLen  = 100
	EmailMaxLen = 200
)

// User represents a person tasks can be assigned to.
// The set of tasks assigned to a user is a derived view, computed by
// querying tasks by assignee, never stored on the user itself.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NewUser creates a new User with the given name and email.
// The ID is zero until the store assigns one on creation.
// Returns an error if validation fails.
func NewUser(name, email string) (*User, error) {
	user := &User{
		Name:  name,
		Email: email,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.Name == "" {
		return ErrUserNameEmpty
	}

	if len(u.Name) > NameMaxLen {
		return ErrUserNameTooLong
	}

	if u.Email == "" {
		return ErrUserEmailEmpty
	}

	if len(u.Email) > EmailMaxLen {
		return ErrUserEmailTooLong
	}

	if !validateEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	return nil
}

// validateEmailFormat performs basic validation of email format.
// Returns true if the email appears to be in a valid format: a local part,
// an @, and a domain containing an interior dot.
func validateEmailFormat(email string) bool {
	atIndex := -1
	for i, char := range email {
		if char == '@' {
			atIndex = i
			break
		}
	}

	if atIndex == -1 || atIndex == 0 || atIndex == len(email)-1 {
		return false
	}

	domainPart := email[atIndex+1:]
	if len(domainPart) < 3 {
		return false
	}

	dotIndex := -1
	for i, char := range domainPart {
		if char == '.' {
			dotIndex = i
			break
		}
	}

	return dotIndex > 0 && dotIndex < len(domainPart)-1
}
