package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Thunder2505/EPI-USE-EmployeeHierarchyManagement/internal/models"
)

var ErrDepartmentNotFound = errors.New("department not found")

type DepartmentRepository struct {
	pool *pgxpool.Pool
}

func NewDepartmentRepository(pool *pgxpool.Pool) *DepartmentRepository {
	return &DepartmentRepository{pool: pool}
}

func (r *DepartmentRepository) ListByBranch(ctx context.Context, branchID int) ([]models.Department, error) {
	const query = `
		SELECT dept_id, name, branch FROM departments
		WHERE branch = $1 ORDER BY name
	`

	rows, err := r.pool.Query(ctx, query, branchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []models.Department
	for rows.Next() {
		var dept models.Department
		if err := rows.Scan(&dept.ID, &dept.Name, &dept.Branch); err != nil {
			return nil, err
		}
		departments = append(departments, dept)
	}
	return departments, rows.Err()
}

func (r *DepartmentRepository) GetByID(ctx context.Context, branchID, deptID int) (models.Department, error) {
	const query = `
		SELECT dept_id, name, branch FROM departments
		WHERE branch = $1 AND dept_id = $2
	`

	var dept models.Department
	if err := r.pool.QueryRow(ctx, query, branchID, deptID).Scan(&dept.ID, &dept.Name, &dept.Branch); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Department{}, ErrDepartmentNotFound
		}
		return models.Department{}, err
	}
	return dept, nil
}

func (r *DepartmentRepository) Create(ctx context.Context, dept models.Department) error {
	const query = `INSERT INTO departments (name, branch) VALUES ($1, $2)`

	if _, err := r.pool.Exec(ctx, query, dept.Name, dept.Branch); err != nil {
		return classifyWrite("create department", err)
	}
	return nil
}

func (r *DepartmentRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM departments WHERE dept_id = $1`

	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return classifyWrite("delete department", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrDepartmentNotFound
	}
	return nil
}
