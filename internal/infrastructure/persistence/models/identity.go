package models

import (
	"github.com/ghiaccio/backend/internal/domain/identity"
)

// UserModel is the persistence model for the User domain entity.
type UserModel struct {
	BaseModel
	Name         string `gorm:"type:varchar(100);not null"`
	Surname      string `gorm:"type:varchar(100);not null"`
	Phone        string `gorm:"column:phone_number;type:varchar(20);not null;uniqueIndex"`
	Email        string `gorm:"type:varchar(200);not null;uniqueIndex"`
	PasswordHash string `gorm:"column:password;type:varchar(255);not null"`
	Salt         string `gorm:"type:varchar(64);not null"`
	Role         string `gorm:"type:varchar(20);not null;default:'customer'"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "user"
}

// ToDomain converts the persistence model to a domain User entity.
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseEntity:   m.BaseModel.ToDomain(),
		Name:         m.Name,
		Surname:      m.Surname,
		Phone:        m.Phone,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Salt:         m.Salt,
		Role:         identity.Role(m.Role),
	}
}

// FromDomain populates the persistence model from a domain User entity.
func (m *UserModel) FromDomain(u *identity.User) {
	m.BaseModel.FromDomain(u.BaseEntity)
	m.Name = u.Name
	m.Surname = u.Surname
	m.Phone = u.Phone
	m.Email = u.Email
	m.PasswordHash = u.PasswordHash
	m.Salt = u.Salt
	m.Role = string(u.Role)
}

// UserModelFromDomain creates a new persistence model from a domain User entity.
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{}
	m.FromDomain(u)
	return m
}
