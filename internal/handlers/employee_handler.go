package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hopehr/hr-api/internal/authz"
	domain "github.com/hopehr/hr-api/internal/domain/employee"
	"github.com/hopehr/hr-api/internal/httperr"
	"github.com/hopehr/hr-api/internal/httpresp"
	"github.com/hopehr/hr-api/internal/middleware"
	ucEmployee "github.com/hopehr/hr-api/internal/usecase/employee"
)

const maxPageSize = 100

type EmployeeHandler struct {
	repo     domain.Repository
	createUC *ucEmployee.CreateEmployee
}

func NewEmployeeHandler(
	repo domain.Repository,
	createUC *ucEmployee.CreateEmployee,
) *EmployeeHandler {
	return &EmployeeHandler{repo: repo, createUC: createUC}
}

// --------- Requests ---------

type CreateEmployeeRequest struct {
	Name       string  `json:"name" binding:"required"`
	Email      string  `json:"email" binding:"required,email"`
	Position   string  `json:"position" binding:"required"`
	Department string  `json:"department" binding:"required"`
	Salary     *int    `json:"salary" binding:"required"`
	ImageURL   *string `json:"image_url"`
}

type UpdateEmployeeRequest struct {
	Name       *string `json:"name,omitempty"`
	Email      *string `json:"email,omitempty"`
	Position   *string `json:"position,omitempty"`
	Department *string `json:"department,omitempty"`
	Salary     *int    `json:"salary,omitempty"`
	ImageURL   *string `json:"image_url,omitempty"`
}

// --------- Helpers ---------

func requireRole(c *gin.Context, category authz.RouteCategory, isSelf bool) bool {
	role := c.MustGet(middleware.ContextUserRole).(string)
	if !authz.Allow(role, category, isSelf) {
		httperr.Forbidden(c, "access_denied", "Access denied. Admin role required.")
		return false
	}
	return true
}

func employeeID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_employee_id", "Invalid employee ID.")
		return 0, false
	}
	return uint(id), true
}

// --------- Handlers ---------

func (h *EmployeeHandler) List(c *gin.Context) {
	if !requireRole(c, authz.ListEmployees, false) {
		return
	}

	page, errPage := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, errLimit := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if errPage != nil || errLimit != nil || page < 1 || limit < 1 || limit > maxPageSize {
		httperr.BadRequest(c, "invalid_pagination", "Invalid pagination parameters.")
		return
	}

	emps, total, err := h.repo.ListEmployees(c.Request.Context(), page, limit)
	if err != nil {
		httperr.Internal(c, "failed_to_list_employees", "Internal server error.")
		return
	}

	httpresp.Page(c, emps, total, page, limit)
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	if !requireRole(c, authz.CreateEmployee, false) {
		return
	}

	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Name, email, position, department, and salary are required.")
		return
	}

	if *req.Salary < 0 {
		httperr.BadRequest(c, "invalid_salary", "Salary must be a positive number.")
		return
	}

	out, err := h.createUC.Execute(c.Request.Context(), ucEmployee.CreateEmployeeInput{
		Name:       req.Name,
		Email:      req.Email,
		Position:   req.Position,
		Department: req.Department,
		Salary:     *req.Salary,
		ImageURL:   req.ImageURL,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			httperr.Conflict(c, "email_already_exists", "User with this email already exists.")
			return
		}
		httperr.Internal(c, "failed_to_create_employee", "Internal server error.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"employee": out.Employee,
		"message": fmt.Sprintf(
			"Employee created successfully. One-time password is: %s",
			out.OneTimePassword,
		),
	})
}

func (h *EmployeeHandler) GetByID(c *gin.Context) {
	id, ok := employeeID(c)
	if !ok {
		return
	}

	emp, err := h.repo.GetEmployeeByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			httperr.NotFound(c, "employee_not_found", "Employee not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_employee", "Internal server error.")
		return
	}

	callerEmail := c.MustGet(middleware.ContextUserEmail).(string)
	role := c.MustGet(middleware.ContextUserRole).(string)
	if !authz.Allow(role, authz.ReadEmployee, callerEmail == emp.Email) {
		httperr.Forbidden(c, "access_denied", "Access denied. Admin role required.")
		return
	}

	httpresp.OK(c, emp)
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	if !requireRole(c, authz.UpdateEmployee, false) {
		return
	}

	id, ok := employeeID(c)
	if !ok {
		return
	}

	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if req.Salary != nil && *req.Salary < 0 {
		httperr.BadRequest(c, "invalid_salary", "Salary must be a positive number.")
		return
	}

	emp, err := h.repo.UpdateEmployee(c.Request.Context(), id, domain.UpdateFields{
		Name:       req.Name,
		Email:      req.Email,
		Position:   req.Position,
		Department: req.Department,
		Salary:     req.Salary,
		ImageURL:   req.ImageURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			httperr.NotFound(c, "employee_not_found", "Employee not found.")
		case errors.Is(err, domain.ErrDuplicateEmail):
			httperr.Conflict(c, "email_already_exists", "Employee with this email already exists.")
		default:
			httperr.Internal(c, "failed_to_update_employee", "Internal server error.")
		}
		return
	}

	httpresp.OK(c, emp)
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
	if !requireRole(c, authz.DeleteEmployee, false) {
		return
	}

	id, ok := employeeID(c)
	if !ok {
		return
	}

	// Deleting an employee never removes the paired login account.
	if err := h.repo.DeleteEmployee(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			httperr.NotFound(c, "employee_not_found", "Employee not found.")
			return
		}
		httperr.Internal(c, "failed_to_delete_employee", "Internal server error.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted successfully"})
}

func (h *EmployeeHandler) DepartmentStats(c *gin.Context) {
	if !requireRole(c, authz.DepartmentStats, false) {
		return
	}

	stats, err := h.repo.DepartmentStats(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_get_stats", "Internal server error.")
		return
	}
	if stats == nil {
		stats = []domain.DepartmentCount{}
	}

	httpresp.OK(c, stats)
}
