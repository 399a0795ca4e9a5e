package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/hopehr/hr-api/internal/domain/employee"
	"github.com/hopehr/hr-api/internal/models"
)

type EmployeeGormRepository struct {
	db *gorm.DB
}

func NewEmployeeGormRepository(db *gorm.DB) *EmployeeGormRepository {
	return &EmployeeGormRepository{db: db}
}

// pgUniqueViolation is the postgres SQLSTATE for unique constraint errors.
// TranslateError covers most paths; raw batch statements can still surface the
// driver error directly.
const pgUniqueViolation = "23505"

func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *EmployeeGormRepository) CreateUser(
	ctx context.Context,
	email string,
	passwordHash string,
	role string,
) (*models.User, error) {

	user := models.User{
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
	}

	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		if isDuplicate(err) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, err
	}
	return &user, nil
}

func (r *EmployeeGormRepository) FindUserByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var user models.User
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *EmployeeGormRepository) FindUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// --------------------------------------------------
// Employees
// --------------------------------------------------

func (r *EmployeeGormRepository) CreateEmployee(
	ctx context.Context,
	emp *models.Employee,
) error {

	if err := r.db.WithContext(ctx).Create(emp).Error; err != nil {
		if isDuplicate(err) {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *EmployeeGormRepository) GetEmployeeByID(
	ctx context.Context,
	id uint,
) (*models.Employee, error) {

	var emp models.Employee
	if err := r.db.WithContext(ctx).First(&emp, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &emp, nil
}

func (r *EmployeeGormRepository) FindEmployeeByEmail(
	ctx context.Context,
	email string,
) (*models.Employee, error) {

	var emp models.Employee
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&emp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &emp, nil
}

func (r *EmployeeGormRepository) ListEmployees(
	ctx context.Context,
	page int,
	pageSize int,
) ([]models.Employee, int64, error) {

	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.Employee{}).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize

	var emps []models.Employee
	if err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&emps).Error; err != nil {
		return nil, 0, err
	}

	return emps, total, nil
}

func (r *EmployeeGormRepository) UpdateEmployee(
	ctx context.Context,
	id uint,
	fields domain.UpdateFields,
) (*models.Employee, error) {

	var emp models.Employee
	if err := r.db.WithContext(ctx).First(&emp, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	if fields.Name != nil {
		emp.Name = *fields.Name
	}
	if fields.Email != nil {
		emp.Email = *fields.Email
	}
	if fields.Position != nil {
		emp.Position = *fields.Position
	}
	if fields.Department != nil {
		emp.Department = *fields.Department
	}
	if fields.Salary != nil {
		emp.Salary = *fields.Salary
	}
	if fields.ImageURL != nil {
		emp.ImageURL = fields.ImageURL
	}

	if err := r.db.WithContext(ctx).Save(&emp).Error; err != nil {
		if isDuplicate(err) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, err
	}
	return &emp, nil
}

func (r *EmployeeGormRepository) DeleteEmployee(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Employee{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *EmployeeGormRepository) DepartmentStats(
	ctx context.Context,
) ([]domain.DepartmentCount, error) {

	var stats []domain.DepartmentCount
	err := r.db.WithContext(ctx).
		Model(&models.Employee{}).
		Select("department, COUNT(*) AS count").
		Group("department").
		Order("department ASC").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}
