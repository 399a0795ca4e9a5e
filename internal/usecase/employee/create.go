package employee

import (
	"context"
	"errors"

	"github.com/hopehr/hr-api/internal/auth"
	domain "github.com/hopehr/hr-api/internal/domain/employee"
	"github.com/hopehr/hr-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateEmployeeInput struct {
	Name       string
	Email      string
	Position   string
	Department string
	Salary     int
	ImageURL   *string
}

type CreateEmployeeOutput struct {
	Employee *models.Employee

	// OneTimePassword is the generated login credential for the paired user
	// account. It is returned exactly once, in the create response.
	OneTimePassword string
}

// ======================================================
// USE CASE
// ======================================================

// CreateEmployee creates the employee record and a paired login account with
// the same email. The pairing is best effort, not transactional: a failure
// after the employee insert leaves the employee without a login.
type CreateEmployee struct {
	repo domain.Repository
}

func NewCreateEmployee(repo domain.Repository) *CreateEmployee {
	return &CreateEmployee{repo: repo}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateEmployee) Execute(
	ctx context.Context,
	in CreateEmployeeInput,
) (*CreateEmployeeOutput, error) {

	// --------------------------------------------------
	// 1. Reject emails already taken by a login account
	// --------------------------------------------------
	if _, err := uc.repo.FindUserByEmail(ctx, in.Email); err == nil {
		return nil, domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Employee record (unique email enforced by the store)
	// --------------------------------------------------
	emp := &models.Employee{
		Name:       in.Name,
		Email:      in.Email,
		Position:   in.Position,
		Department: in.Department,
		Salary:     in.Salary,
		ImageURL:   in.ImageURL,
	}

	if err := uc.repo.CreateEmployee(ctx, emp); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Paired login account with a one-time password
	// --------------------------------------------------
	password, err := auth.GeneratePassword(12)
	if err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	if _, err := uc.repo.CreateUser(ctx, in.Email, hash, models.RoleEmployee); err != nil {
		return nil, err
	}

	return &CreateEmployeeOutput{
		Employee:        emp,
		OneTimePassword: password,
	}, nil
}
