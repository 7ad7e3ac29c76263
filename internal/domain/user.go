package domain

import "time"

type UserRole string

const (
	RoleClient     UserRole = "client"
	RoleAdmin      UserRole = "admin"
	RoleSuperAdmin UserRole = "superadmin"
)

// Actor identifies the authenticated caller of a service operation.
// Services never read the current user from ambient state; the boundary
// layer builds an Actor from the token claims and passes it down.
type Actor struct {
	UserID int64
	Role   UserRole
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin || a.Role == RoleSuperAdmin
}

type User struct {
	ID           int64      `json:"id" gorm:"primaryKey"`
	Name         string     `json:"name"`
	Email        string     `json:"email" gorm:"uniqueIndex"`
	PasswordHash string     `json:"-"`
	Role         UserRole   `json:"role" gorm:"type:varchar(16);default:client"`
	Phone        string     `json:"phone,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"-" gorm:"index"`
}
