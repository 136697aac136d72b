package dto

// CreateUserRequest represents a request to create a new user
type CreateUserRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	Role      string `json:"role" binding:"required,oneof=employee manager company_admin super_admin"`
	CompanyID *uint  `json:"companyId,omitempty"`
}

// UpdateUserRequest represents a request to update a user
type UpdateUserRequest struct {
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password,omitempty"`
	Role      string `json:"role,omitempty" binding:"omitempty,oneof=employee manager company_admin super_admin"`
	CompanyID *uint  `json:"companyId,omitempty"`
	IsActive  *bool  `json:"isActive,omitempty"`
}

// UserResponse represents a user with its resolved company
type UserResponse struct {
	ID       uint            `json:"id"`
	Email    string          `json:"email"`
	Role     string          `json:"role"`
	IsActive bool            `json:"isActive"`
	Company  *TenantResponse `json:"company,omitempty"`
}

// CreateTenantRequest represents a request to create a tenant
type CreateTenantRequest struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug" binding:"required"`
	Description string `json:"description,omitempty"`
}

// UpdateTenantRequest represents a request to update a tenant
type UpdateTenantRequest struct {
	Slug        string `json:"slug" binding:"required"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	IsActive    *bool  `json:"isActive,omitempty"`
}

// TenantResponse represents a tenant in API responses
type TenantResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"isActive"`
}
