package employee

import (
	"context"
	"errors"

	"github.com/hopehr/hr-api/internal/models"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already in use")
)

// UpdateFields carries a partial employee update; nil means "leave unchanged".
type UpdateFields struct {
	Name       *string
	Email      *string
	Position   *string
	Department *string
	Salary     *int
	ImageURL   *string
}

type DepartmentCount struct {
	Department string `json:"department"`
	Count      int64  `json:"count"`
}

// Repository is the sole owner of persistence for users and employees.
// Uniqueness and timestamping are enforced here, not in handlers.
type Repository interface {
	// -------- Users --------
	CreateUser(
		ctx context.Context,
		email string,
		passwordHash string,
		role string,
	) (*models.User, error)

	FindUserByEmail(
		ctx context.Context,
		email string,
	) (*models.User, error)

	FindUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// -------- Employees --------
	CreateEmployee(
		ctx context.Context,
		emp *models.Employee,
	) error

	GetEmployeeByID(
		ctx context.Context,
		id uint,
	) (*models.Employee, error)

	FindEmployeeByEmail(
		ctx context.Context,
		email string,
	) (*models.Employee, error)

	ListEmployees(
		ctx context.Context,
		page int,
		pageSize int,
	) ([]models.Employee, int64, error)

	UpdateEmployee(
		ctx context.Context,
		id uint,
		fields UpdateFields,
	) (*models.Employee, error)

	DeleteEmployee(
		ctx context.Context,
		id uint,
	) error

	DepartmentStats(
		ctx context.Context,
	) ([]DepartmentCount, error)
}
