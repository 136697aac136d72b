package database

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// store holds the gorm-level implementation shared by all drivers
type store struct {
	db *gorm.DB
}

func (s *store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *store) CreateUser(ctx context.Context, user *User) error {
	return getDBFromContext(ctx, s.db).Create(user).Error
}

func (s *store) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := getDBFromContext(ctx, s.db).
		Where("email = ?", email).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *store) GetUserByID(ctx context.Context, id uint) (*User, error) {
	var user User
	err := getDBFromContext(ctx, s.db).
		Where("id = ?", id).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *store) UpdateUser(ctx context.Context, user *User) error {
	return getDBFromContext(ctx, s.db).Save(user).Error
}

func (s *store) DeleteUser(ctx context.Context, id uint) error {
	return getDBFromContext(ctx, s.db).Delete(&User{}, id).Error
}

func (s *store) ListUsers(ctx context.Context) ([]*User, error) {
	var users []*User
	err := getDBFromContext(ctx, s.db).
		Order("created_at asc").
		Find(&users).Error
	return users, err
}

func (s *store) CreateTenant(ctx context.Context, tenant *Tenant) error {
	return getDBFromContext(ctx, s.db).Create(tenant).Error
}

func (s *store) GetTenantByID(ctx context.Context, id uint) (*Tenant, error) {
	var tenant Tenant
	err := getDBFromContext(ctx, s.db).
		Where("id = ?", id).
		First(&tenant).Error
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

func (s *store) GetTenantBySlug(ctx context.Context, slug string) (*Tenant, error) {
	var tenant Tenant
	err := getDBFromContext(ctx, s.db).
		Where("slug = ?", slug).
		First(&tenant).Error
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

func (s *store) GetEarliestTenant(ctx context.Context, excludeSlugs []string, excludePattern string) (*Tenant, error) {
	var tenant Tenant
	q := getDBFromContext(ctx, s.db).Where("is_active = ?", true)
	if len(excludeSlugs) > 0 {
		q = q.Where("slug NOT IN ?", excludeSlugs)
	}
	if excludePattern != "" {
		q = q.Where("slug NOT LIKE ?", excludePattern)
	}
	err := q.Order("created_at asc, id asc").First(&tenant).Error
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

func (s *store) UpdateTenant(ctx context.Context, tenant *Tenant) error {
	return getDBFromContext(ctx, s.db).Save(tenant).Error
}

func (s *store) DeleteTenant(ctx context.Context, id uint) error {
	return getDBFromContext(ctx, s.db).Delete(&Tenant{}, id).Error
}

func (s *store) ListTenants(ctx context.Context) ([]*Tenant, error) {
	var tenants []*Tenant
	err := getDBFromContext(ctx, s.db).
		Order("created_at asc").
		Find(&tenants).Error
	return tenants, err
}

func (s *store) CreateAuthSession(ctx context.Context, session *AuthSession) error {
	return getDBFromContext(ctx, s.db).Create(session).Error
}

func (s *store) RevokeAuthSession(ctx context.Context, id string) error {
	now := time.Now()
	return getDBFromContext(ctx, s.db).
		Model(&AuthSession{}).
		Where("id = ?", id).
		Update("revoked_at", &now).Error
}

func (s *store) AuthSessionActive(ctx context.Context, id string) (bool, error) {
	var count int64
	err := getDBFromContext(ctx, s.db).
		Model(&AuthSession{}).
		Where("id = ? AND revoked_at IS NULL", id).
		Count(&count).Error
	return count > 0, err
}

func (s *store) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ContextWithTransaction(ctx, tx))
	})
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(&User{}, &Tenant{}, &AuthSession{})
}
