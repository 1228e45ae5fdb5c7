package repositories

import (
	"github.com/sagarp07/college-portal/backend/internal/models"
	"gorm.io/gorm"
)

// AdminUserRepository defines the interface for admin account operations
type AdminUserRepository interface {
	CreateUser(user *models.AdminUser) error
	GetUserByID(id uint) (*models.AdminUser, error)
	GetUserByEmail(email string) (*models.AdminUser, error)
}

// PostgresAdminUserRepository implements AdminUserRepository for PostgreSQL
type PostgresAdminUserRepository struct {
	db *gorm.DB
}

// NewPostgresAdminUserRepository creates a new PostgresAdminUserRepository
func NewPostgresAdminUserRepository(db *gorm.DB) *PostgresAdminUserRepository {
	return &PostgresAdminUserRepository{db: db}
}

// CreateUser creates a new admin account in PostgreSQL
func (r *PostgresAdminUserRepository) CreateUser(user *models.AdminUser) error {
	return r.db.Create(user).Error
}

// GetUserByID retrieves an admin account by ID
func (r *PostgresAdminUserRepository) GetUserByID(id uint) (*models.AdminUser, error) {
	var user models.AdminUser
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail retrieves an admin account by email
func (r *PostgresAdminUserRepository) GetUserByEmail(email string) (*models.AdminUser, error) {
	var user models.AdminUser
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
