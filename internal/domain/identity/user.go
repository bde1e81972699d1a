package identity

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"regexp"
	"strings"

	"github.com/ghiaccio/backend/internal/domain/shared"
	"golang.org/x/crypto/scrypt"
)

// Role represents the role of a user
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// IsValid checks if the role is a known Role
func (r Role) IsValid() bool {
	return r == RoleCustomer || r == RoleAdmin
}

// scrypt parameters: interactive-login work factor, 64-byte derived key
const (
	scryptN      = 32768
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 64
	saltLen      = 16
)

var (
	// Italian mobile numbers: leading 3, ten digits total
	phoneRegex = regexp.MustCompile(`^3\d{9}$`)
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// User represents a registered customer or administrator.
// It is the aggregate root for credential and profile operations.
type User struct {
	shared.BaseEntity
	Name         string
	Surname      string
	Phone        string
	Email        string
	PasswordHash string // hex-encoded scrypt derived key
	Salt         string // hex-encoded random salt
	Role         Role
}

// NewUser creates a new user with a freshly salted password verifier
func NewUser(name, surname, phone, email, password string, role Role) (*User, error) {
	if errs := ValidateRegistration(name, surname, phone, email, password, password); len(errs) > 0 {
		return nil, errs
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Unknown user role")
	}

	salt, hash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	return &User{
		BaseEntity:   shared.NewBaseEntity(),
		Name:         strings.TrimSpace(name),
		Surname:      strings.TrimSpace(surname),
		Phone:        strings.TrimSpace(phone),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: hash,
		Salt:         salt,
		Role:         role,
	}, nil
}

// VerifyPassword re-derives the key from the stored salt and compares it
// in constant time against the stored verifier.
func (u *User) VerifyPassword(password string) bool {
	salt, err := hex.DecodeString(u.Salt)
	if err != nil {
		return false
	}
	derived, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return false
	}
	stored, err := hex.DecodeString(u.PasswordHash)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(derived, stored) == 1
}

// IsAdmin returns true for administrator accounts
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ValidateRegistration checks the registration fields and returns one
// field-keyed error per failing rule. The same phone rule is shared with
// unauthenticated order submission via ValidatePhone.
func ValidateRegistration(name, surname, phone, email, password, confirmPassword string) shared.ValidationErrors {
	var errs shared.ValidationErrors

	if strings.TrimSpace(name) == "" {
		errs = append(errs, shared.NewValidationError("name", "Il nome è obbligatorio"))
	}
	if strings.TrimSpace(surname) == "" {
		errs = append(errs, shared.NewValidationError("surname", "Il cognome è obbligatorio"))
	}
	if strings.TrimSpace(phone) == "" {
		errs = append(errs, shared.NewValidationError("phoneNumber", "Il numero di telefono è obbligatorio"))
	} else if err := ValidatePhone(phone); err != nil {
		errs = append(errs, shared.NewValidationError("phoneNumber", "Il numero di telefono non è valido"))
	}
	if err := ValidateEmail(email); err != nil {
		errs = append(errs, shared.NewValidationError("email", "Email non valida"))
	}
	if strings.TrimSpace(password) == "" {
		errs = append(errs, shared.NewValidationError("password", "Password obbligatoria"))
	}
	if password != confirmPassword {
		errs = append(errs, shared.NewValidationError("confirmPassword", "Le password non corrispondono"))
	}

	return errs
}

// ValidatePhone checks the Italian mobile number format
func ValidatePhone(phone string) error {
	if !phoneRegex.MatchString(strings.TrimSpace(phone)) {
		return shared.NewDomainError("INVALID_PHONE", "Phone number must start with 3 and contain 10 digits")
	}
	return nil
}

// ValidateEmail checks the basic local@domain.tld shape
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(strings.TrimSpace(email)) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}

func hashPassword(password string) (salt, hash string, err error) {
	raw := make([]byte, saltLen)
	if _, err = rand.Read(raw); err != nil {
		return "", "", err
	}
	derived, err := scrypt.Key([]byte(password), raw, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return "", "", err
	}
	return hex.EncodeToString(raw), hex.EncodeToString(derived), nil
}
