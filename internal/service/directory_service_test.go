package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Thunder2505/EPI-USE-EmployeeHierarchyManagement/internal/apperr"
	"github.com/Thunder2505/EPI-USE-EmployeeHierarchyManagement/internal/models"
	"github.com/Thunder2505/EPI-USE-EmployeeHierarchyManagement/internal/repository"
)

type fakeBranchStore struct {
	branches  []models.Branch
	createErr error
	deleteErr error
}

func (f *fakeBranchStore) List(context.Context) ([]models.Branch, error) { return f.branches, nil }
func (f *fakeBranchStore) GetByID(_ context.Context, id int) (models.Branch, error) {
	for _, b := range f.branches {
		if b.ID == id {
			return b, nil
		}
	}
	return models.Branch{}, repository.ErrBranchNotFound
}
func (f *fakeBranchStore) Create(_ context.Context, b models.Branch) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.branches = append(f.branches, b)
	return nil
}
func (f *fakeBranchStore) Delete(context.Context, int) error { return f.deleteErr }

type fakeDepartmentStore struct {
	departments []models.Department
}

func (f *fakeDepartmentStore) ListByBranch(_ context.Context, branchID int) ([]models.Department, error) {
	var out []models.Department
	for _, d := range f.departments {
		if d.Branch == branchID {
			out = append(out, d)
		}
	}
	return out, nil
}
func (f *fakeDepartmentStore) GetByID(_ context.Context, branchID, deptID int) (models.Department, error) {
	for _, d := range f.departments {
		if d.Branch == branchID && d.ID == deptID {
			return d, nil
		}
	}
	return models.Department{}, repository.ErrDepartmentNotFound
}
func (f *fakeDepartmentStore) Create(_ context.Context, d models.Department) error {
	f.departments = append(f.departments, d)
	return nil
}
func (f *fakeDepartmentStore) Delete(context.Context, int) error { return nil }

type fakeRoleStore struct {
	roles []models.Role
}

func (f *fakeRoleStore) ListByDepartment(_ context.Context, deptID int) ([]models.Role, error) {
	var out []models.Role
	for _, r := range f.roles {
		if r.DepartmentID == deptID {
			out = append(out, r)
		}
	}
	return out, nil
}
func (f *fakeRoleStore) GetByID(_ context.Context, deptID, roleID int) (models.Role, error) {
	for _, r := range f.roles {
		if r.DepartmentID == deptID && r.ID == roleID {
			return r, nil
		}
	}
	return models.Role{}, repository.ErrRoleNotFound
}
func (f *fakeRoleStore) Create(_ context.Context, r models.Role) error {
	f.roles = append(f.roles, r)
	return nil
}
func (f *fakeRoleStore) Delete(context.Context, int) error { return nil }

type fakeEmployeeStore struct {
	employees []models.Employee
	createErr error
}

func (f *fakeEmployeeStore) List(context.Context) ([]models.Employee, error) {
	return f.employees, nil
}
func (f *fakeEmployeeStore) GetByNumber(_ context.Context, number string) (models.Employee, error) {
	for _, e := range f.employees {
		if e.Number == number {
			return e, nil
		}
	}
	return models.Employee{}, repository.ErrEmployeeNotFound
}
func (f *fakeEmployeeStore) Create(_ context.Context, e models.Employee) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.employees = append(f.employees, e)
	return nil
}
func (f *fakeEmployeeStore) Delete(context.Context, string) error { return nil }

func newDirectoryService(
	branches *fakeBranchStore,
	departments *fakeDepartmentStore,
	roles *fakeRoleStore,
	employees *fakeEmployeeStore,
) *DirectoryService {
	return NewDirectoryService(branches, departments, roles, employees, zerolog.Nop())
}

func TestCreateBranchValidation(t *testing.T) {
	svc := newDirectoryService(&fakeBranchStore{}, &fakeDepartmentStore{}, &fakeRoleStore{}, &fakeEmployeeStore{})

	err := svc.CreateBranch(context.Background(), models.Branch{Name: "Cape Town"})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	err = svc.CreateBranch(context.Background(), models.Branch{ID: 10})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	err = svc.CreateBranch(context.Background(), models.Branch{ID: 10, Name: "Cape Town"})
	assert.NoError(t, err)
}

func TestGetBranch(t *testing.T) {
	branches := &fakeBranchStore{branches: []models.Branch{{ID: 10, Name: "Cape Town"}}}
	svc := newDirectoryService(branches, &fakeDepartmentStore{}, &fakeRoleStore{}, &fakeEmployeeStore{})

	branch, err := svc.GetBranch(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, "Cape Town", branch.Name)

	_, err = svc.GetBranch(context.Background(), 99)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestGetEmployee(t *testing.T) {
	employees := &fakeEmployeeStore{employees: []models.Employee{{Number: "E1A", Name: "Jane"}}}
	svc := newDirectoryService(&fakeBranchStore{}, &fakeDepartmentStore{}, &fakeRoleStore{}, employees)

	emp, err := svc.GetEmployee(context.Background(), "E1A")
	require.NoError(t, err)
	assert.Equal(t, "Jane", emp.Name)

	_, err = svc.GetEmployee(context.Background(), "E9Z")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	_, err = svc.GetEmployee(context.Background(), "")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestDeleteBranchReferenced(t *testing.T) {
	branches := &fakeBranchStore{
		deleteErr: apperr.Referenced("record is referenced by other records"),
	}
	svc := newDirectoryService(branches, &fakeDepartmentStore{}, &fakeRoleStore{}, &fakeEmployeeStore{})

	err := svc.DeleteBranch(context.Background(), 10)
	require.Error(t, err)
	// The in-use classification must pass through, not collapse into a 500.
	assert.Equal(t, apperr.KindReferenced, apperr.KindOf(err))
}

func TestListDepartmentsRequiresBranch(t *testing.T) {
	svc := newDirectoryService(&fakeBranchStore{}, &fakeDepartmentStore{}, &fakeRoleStore{}, &fakeEmployeeStore{})

	_, err := svc.ListDepartments(context.Background(), 0)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestGetDepartmentNotFound(t *testing.T) {
	svc := newDirectoryService(&fakeBranchStore{}, &fakeDepartmentStore{}, &fakeRoleStore{}, &fakeEmployeeStore{})

	_, err := svc.GetDepartment(context.Background(), 1, 99)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestListRolesRequiresDepartment(t *testing.T) {
	svc := newDirectoryService(&fakeBranchStore{}, &fakeDepartmentStore{}, &fakeRoleStore{}, &fakeEmployeeStore{})

	_, err := svc.ListRoles(context.Background(), 0)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestCreateEmployeeValidation(t *testing.T) {
	svc := newDirectoryService(&fakeBranchStore{}, &fakeDepartmentStore{}, &fakeRoleStore{}, &fakeEmployeeStore{})

	err := svc.CreateEmployee(context.Background(), models.Employee{Number: "E1A"})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	err = svc.CreateEmployee(context.Background(), models.Employee{
		Number: "E1A", Name: "Jane", Surname: "Smith",
		DeptNumber: 1, BranchNumber: 1, RoleNumber: 1,
	})
	assert.NoError(t, err)
}

func TestCreateEmployeeForeignKeyPassthrough(t *testing.T) {
	employees := &fakeEmployeeStore{
		createErr: apperr.Referenced("record is referenced by other records"),
	}
	svc := newDirectoryService(&fakeBranchStore{}, &fakeDepartmentStore{}, &fakeRoleStore{}, employees)

	err := svc.CreateEmployee(context.Background(), models.Employee{
		Number: "E1A", Name: "Jane", Surname: "Smith",
		DeptNumber: 1, BranchNumber: 1, RoleNumber: 1,
	})
	assert.Equal(t, apperr.KindReferenced, apperr.KindOf(err))
}

func TestCreateEmployeeStorageFault(t *testing.T) {
	employees := &fakeEmployeeStore{createErr: errors.New("connection reset")}
	svc := newDirectoryService(&fakeBranchStore{}, &fakeDepartmentStore{}, &fakeRoleStore{}, employees)

	err := svc.CreateEmployee(context.Background(), models.Employee{
		Number: "E1A", Name: "Jane", Surname: "Smith",
		DeptNumber: 1, BranchNumber: 1, RoleNumber: 1,
	})
	assert.Equal(t, apperr.KindStorage, apperr.KindOf(err))
}

func TestParseBirthDate(t *testing.T) {
	date, err := ParseBirthDate("1990-06-15")
	require.NoError(t, err)
	require.NotNil(t, date)
	assert.Equal(t, "1990-06-15", date.Format("2006-01-02"))

	date, err = ParseBirthDate("")
	require.NoError(t, err)
	assert.Nil(t, date)

	_, err = ParseBirthDate("15/06/1990")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}
