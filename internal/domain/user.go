package domain

import "time"

type User struct {
	ID           uint
	Nama         string
	Email        string
	PasswordHash string
	NoTelepon    *string
	Alamat       *string
	Status       UserStatus
	Role         UserRole
	CreatedAt    time.Time
}

type UserStatus string

const (
	UserStatusPending  UserStatus = "pending"
	UserStatusApproved UserStatus = "approved"
	UserStatusRejected UserStatus = "rejected"
)

type UserRole string

const (
	RoleClient UserRole = "client"
	RoleAdmin  UserRole = "admin"
)

func (s UserStatus) Valid() bool {
	switch s {
	case UserStatusPending, UserStatusApproved, UserStatusRejected:
		return true
	}
	return false
}

func (r UserRole) Valid() bool {
	return r == RoleClient || r == RoleAdmin
}
