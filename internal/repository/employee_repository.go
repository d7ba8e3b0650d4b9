package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Thunder2505/EPI-USE-EmployeeHierarchyManagement/internal/models"
)

var ErrEmployeeNotFound = errors.New("employee not found")

type EmployeeRepository struct {
	pool *pgxpool.Pool
}

func NewEmployeeRepository(pool *pgxpool.Pool) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

const employeeColumns = `employee_number, dept_number, branch_number, role_number, name, surname, birth_date, salary`

func scanEmployee(row pgx.Row) (models.Employee, error) {
	var emp models.Employee
	if err := row.Scan(
		&emp.Number,
		&emp.DeptNumber,
		&emp.BranchNumber,
		&emp.RoleNumber,
		&emp.Name,
		&emp.Surname,
		&emp.BirthDate,
		&emp.Salary,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Employee{}, ErrEmployeeNotFound
		}
		return models.Employee{}, err
	}
	return emp, nil
}

func (r *EmployeeRepository) List(ctx context.Context) ([]models.Employee, error) {
	const query = `
		SELECT ` + employeeColumns + `
		FROM employees ORDER BY surname, name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []models.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

func (r *EmployeeRepository) GetByNumber(ctx context.Context, number string) (models.Employee, error) {
	const query = `
		SELECT ` + employeeColumns + `
		FROM employees WHERE employee_number = $1
	`
	return scanEmployee(r.pool.QueryRow(ctx, query, number))
}

// Create inserts the employee and provisions an empty credential record in
// the same transaction. The credential row starts with no email and no
// password hash; self-registration fills them in later.
func (r *EmployeeRepository) Create(ctx context.Context, emp models.Employee) error {
	const insertEmployee = `
		INSERT INTO employees (
			employee_number, dept_number, branch_number, role_number,
			name, surname, birth_date, salary
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	const provisionUser = `
		INSERT INTO users (employee_number) VALUES ($1)
	`

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, insertEmployee,
		emp.Number,
		emp.DeptNumber,
		emp.BranchNumber,
		emp.RoleNumber,
		emp.Name,
		emp.Surname,
		emp.BirthDate,
		emp.Salary,
	); err != nil {
		return classifyWrite("create employee", err)
	}

	if _, err := tx.Exec(ctx, provisionUser, emp.Number); err != nil {
		return classifyWrite("provision credential record", err)
	}

	return tx.Commit(ctx)
}

func (r *EmployeeRepository) Delete(ctx context.Context, number string) error {
	const deleteUser = `DELETE FROM users WHERE employee_number = $1`
	const deleteEmployee = `DELETE FROM employees WHERE employee_number = $1`

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, deleteUser, number); err != nil {
		return classifyWrite("delete credential record", err)
	}

	cmd, err := tx.Exec(ctx, deleteEmployee, number)
	if err != nil {
		return classifyWrite("delete employee", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrEmployeeNotFound
	}

	return tx.Commit(ctx)
}

// RoleNameForEmployee resolves the employee's role name via the employees
// and roles tables.
func (r *EmployeeRepository) RoleNameForEmployee(ctx context.Context, employeeNumber string) (string, error) {
	const query = `
		SELECT r.name
		FROM employees e
		JOIN roles r ON r.role_id = e.role_number
		WHERE e.employee_number = $1
	`

	var name string
	if err := r.pool.QueryRow(ctx, query, employeeNumber).Scan(&name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrEmployeeNotFound
		}
		return "", err
	}
	return name, nil
}
