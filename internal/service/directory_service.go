package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/Thunder2505/EPI-USE-EmployeeHierarchyManagement/internal/apperr"
	"github.com/Thunder2505/EPI-USE-EmployeeHierarchyManagement/internal/models"
	"github.com/Thunder2505/EPI-USE-EmployeeHierarchyManagement/internal/repository"
)

type BranchStore interface {
	List(ctx context.Context) ([]models.Branch, error)
	GetByID(ctx context.Context, id int) (models.Branch, error)
	Create(ctx context.Context, branch models.Branch) error
	Delete(ctx context.Context, id int) error
}

type DepartmentStore interface {
	ListByBranch(ctx context.Context, branchID int) ([]models.Department, error)
	GetByID(ctx context.Context, branchID, deptID int) (models.Department, error)
	Create(ctx context.Context, dept models.Department) error
	Delete(ctx context.Context, id int) error
}

type RoleStore interface {
	ListByDepartment(ctx context.Context, deptID int) ([]models.Role, error)
	GetByID(ctx context.Context, deptID, roleID int) (models.Role, error)
	Create(ctx context.Context, role models.Role) error
	Delete(ctx context.Context, id int) error
}

type EmployeeStore interface {
	List(ctx context.Context) ([]models.Employee, error)
	GetByNumber(ctx context.Context, number string) (models.Employee, error)
	Create(ctx context.Context, emp models.Employee) error
	Delete(ctx context.Context, number string) error
}

// DirectoryService wraps the branch/department/role/employee stores with
// input validation and taxonomy-error mapping. The handlers stay thin
// pass-throughs.
type DirectoryService struct {
	branches    BranchStore
	departments DepartmentStore
	roles       RoleStore
	employees   EmployeeStore
	log         zerolog.Logger
}

func NewDirectoryService(
	branches BranchStore,
	departments DepartmentStore,
	roles RoleStore,
	employees EmployeeStore,
	log zerolog.Logger,
) *DirectoryService {
	return &DirectoryService{
		branches:    branches,
		departments: departments,
		roles:       roles,
		employees:   employees,
		log:         log,
	}
}

func (s *DirectoryService) ListBranches(ctx context.Context) ([]models.Branch, error) {
	branches, err := s.branches.List(ctx)
	if err != nil {
		return nil, apperr.Storage("list branches", err)
	}
	return branches, nil
}

func (s *DirectoryService) GetBranch(ctx context.Context, id int) (models.Branch, error) {
	branch, err := s.branches.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBranchNotFound) {
			return models.Branch{}, apperr.NotFound("branch not found")
		}
		return models.Branch{}, apperr.Storage("get branch", err)
	}
	return branch, nil
}

func (s *DirectoryService) CreateBranch(ctx context.Context, branch models.Branch) error {
	if branch.ID == 0 || branch.Name == "" {
		return apperr.Validation("branch number and name are required")
	}
	return passthrough(s.branches.Create(ctx, branch), "create branch")
}

func (s *DirectoryService) DeleteBranch(ctx context.Context, id int) error {
	err := s.branches.Delete(ctx, id)
	if errors.Is(err, repository.ErrBranchNotFound) {
		return apperr.NotFound("branch not found")
	}
	return passthrough(err, "delete branch")
}

func (s *DirectoryService) ListDepartments(ctx context.Context, branchID int) ([]models.Department, error) {
	if branchID == 0 {
		return nil, apperr.Validation("branch ID is required")
	}
	departments, err := s.departments.ListByBranch(ctx, branchID)
	if err != nil {
		return nil, apperr.Storage("list departments", err)
	}
	return departments, nil
}

func (s *DirectoryService) GetDepartment(ctx context.Context, branchID, deptID int) (models.Department, error) {
	if branchID == 0 {
		return models.Department{}, apperr.Validation("branch ID is required")
	}
	dept, err := s.departments.GetByID(ctx, branchID, deptID)
	if err != nil {
		if errors.Is(err, repository.ErrDepartmentNotFound) {
			return models.Department{}, apperr.NotFound("department not found")
		}
		return models.Department{}, apperr.Storage("get department", err)
	}
	return dept, nil
}

func (s *DirectoryService) CreateDepartment(ctx context.Context, dept models.Department) error {
	if dept.Name == "" || dept.Branch == 0 {
		return apperr.Validation("department name and branch are required")
	}
	return passthrough(s.departments.Create(ctx, dept), "create department")
}

func (s *DirectoryService) DeleteDepartment(ctx context.Context, id int) error {
	err := s.departments.Delete(ctx, id)
	if errors.Is(err, repository.ErrDepartmentNotFound) {
		return apperr.NotFound("department not found")
	}
	return passthrough(err, "delete department")
}

func (s *DirectoryService) ListRoles(ctx context.Context, deptID int) ([]models.Role, error) {
	if deptID == 0 {
		return nil, apperr.Validation("department ID is required")
	}
	roles, err := s.roles.ListByDepartment(ctx, deptID)
	if err != nil {
		return nil, apperr.Storage("list roles", err)
	}
	return roles, nil
}

func (s *DirectoryService) GetRole(ctx context.Context, deptID, roleID int) (models.Role, error) {
	if deptID == 0 {
		return models.Role{}, apperr.Validation("department ID is required")
	}
	role, err := s.roles.GetByID(ctx, deptID, roleID)
	if err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			return models.Role{}, apperr.NotFound("role not found")
		}
		return models.Role{}, apperr.Storage("get role", err)
	}
	return role, nil
}

func (s *DirectoryService) CreateRole(ctx context.Context, role models.Role) error {
	if role.Name == "" || role.DepartmentID == 0 {
		return apperr.Validation("role name and department are required")
	}
	return passthrough(s.roles.Create(ctx, role), "create role")
}

func (s *DirectoryService) DeleteRole(ctx context.Context, id int) error {
	err := s.roles.Delete(ctx, id)
	if errors.Is(err, repository.ErrRoleNotFound) {
		return apperr.NotFound("role not found")
	}
	return passthrough(err, "delete role")
}

func (s *DirectoryService) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	employees, err := s.employees.List(ctx)
	if err != nil {
		return nil, apperr.Storage("list employees", err)
	}
	return employees, nil
}

func (s *DirectoryService) GetEmployee(ctx context.Context, number string) (models.Employee, error) {
	if number == "" {
		return models.Employee{}, apperr.Validation("employee number is required")
	}
	emp, err := s.employees.GetByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return models.Employee{}, apperr.NotFound("employee not found")
		}
		return models.Employee{}, apperr.Storage("get employee", err)
	}
	return emp, nil
}

// CreateEmployee inserts the employee and provisions its credential record.
// Branch, department and role numbers are client-supplied; referential
// integrity is left to the store and violations surface as taxonomy errors.
func (s *DirectoryService) CreateEmployee(ctx context.Context, emp models.Employee) error {
	if emp.Number == "" || emp.Name == "" || emp.Surname == "" {
		return apperr.Validation("employee number, name and surname are required")
	}
	if emp.DeptNumber == 0 || emp.BranchNumber == 0 || emp.RoleNumber == 0 {
		return apperr.Validation("department, branch and role numbers are required")
	}
	return passthrough(s.employees.Create(ctx, emp), "create employee")
}

func (s *DirectoryService) DeleteEmployee(ctx context.Context, number string) error {
	if number == "" {
		return apperr.Validation("employee number is required")
	}
	err := s.employees.Delete(ctx, number)
	if errors.Is(err, repository.ErrEmployeeNotFound) {
		return apperr.NotFound("employee not found")
	}
	return passthrough(err, "delete employee")
}

// ParseBirthDate parses the wire format for employee birth dates.
func ParseBirthDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, apperr.Validation("birth date must be YYYY-MM-DD")
	}
	return &t, nil
}

// passthrough keeps already-classified errors (Referenced, Conflict) intact
// and wraps everything else as a storage fault.
func passthrough(err error, op string) error {
	if err == nil {
		return nil
	}
	if apperr.KindOf(err) != apperr.KindUnknown {
		return err
	}
	return apperr.Storage(op, err)
}
