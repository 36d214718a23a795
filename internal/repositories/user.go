package repositories

import (
	"fmt"

	"gorm.io/gorm"
)

// UserContact is the recruiter resolution result used by notification.
type UserContact struct {
	Email    string
	UserName string
}

type UserRepository interface {
	FindContactByUserID(userID string) (*UserContact, error)
	FindUserNameByUserID(userID string) (string, error)
	FindRoleAndUserName(userID string) (role string, userName string, err error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindContactByUserID(userID string) (*UserContact, error) {
	var row struct {
		Email    string
		UserName string
	}
	err := r.db.Raw(
		`SELECT email, user_name FROM user_details WHERE user_id = ? AND status != 'inactive'`,
		userID,
	).Scan(&row).Error
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user %s: %w", userID, err)
	}
	if row.Email == "" && row.UserName == "" {
		return nil, nil
	}
	return &UserContact{Email: row.Email, UserName: row.UserName}, nil
}

func (r *userRepository) FindUserNameByUserID(userID string) (string, error) {
	var userName string
	err := r.db.Raw(
		`SELECT user_name FROM user_details WHERE user_id = ?`,
		userID,
	).Scan(&userName).Error
	if err != nil {
		return "", fmt.Errorf("failed to resolve user name for %s: %w", userID, err)
	}
	return userName, nil
}

func (r *userRepository) FindRoleAndUserName(userID string) (string, string, error) {
	var row struct {
		Role     string
		UserName string
	}
	err := r.db.Raw(
		`SELECT r.name AS role, u.user_name
		 FROM user_details u
		 JOIN user_roles ur ON u.user_id = ur.user_id
		 JOIN roles r ON ur.role_id = r.id
		 WHERE u.user_id = ?`,
		userID,
	).Scan(&row).Error
	if err != nil {
		return "", "", fmt.Errorf("failed to resolve role for %s: %w", userID, err)
	}
	return row.Role, row.UserName, nil
}
