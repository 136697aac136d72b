package database

import "time"

// UserRole represents the role of a user
type UserRole string

const (
	RoleEmployee     UserRole = "employee"
	RoleManager      UserRole = "manager"
	RoleCompanyAdmin UserRole = "company_admin"
	RoleSuperAdmin   UserRole = "super_admin"
)

// User represents a principal. CompanyID is nullable: platform-level actors
// and stale profiles carry no tenant assignment.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Email     string    `json:"email" gorm:"type:varchar(255);uniqueIndex"`
	Password  string    `json:"-" gorm:"not null"` // Password is not exposed in JSON
	Role      UserRole  `json:"role" gorm:"type:varchar(20);not null;default:'employee'"`
	CompanyID *uint     `json:"companyId,omitempty" gorm:"index"`
	IsActive  bool      `json:"isActive" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Tenant represents a customer company, addressed by its URL slug
type Tenant struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"type:varchar(100);uniqueIndex"`
	Slug        string    `json:"slug" gorm:"type:varchar(50);uniqueIndex"`
	Description string    `json:"description" gorm:"type:text"`
	IsActive    bool      `json:"isActive" gorm:"not null;default:true"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// AuthSession represents a revocable login session
type AuthSession struct {
	ID        string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    uint       `json:"userId" gorm:"index;not null"`
	CreatedAt time.Time  `json:"createdAt"`
	RevokedAt *time.Time `json:"revokedAt,omitempty"`
}
