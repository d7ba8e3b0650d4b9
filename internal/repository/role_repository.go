package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Thunder2505/EPI-USE-EmployeeHierarchyManagement/internal/models"
)

var ErrRoleNotFound = errors.New("role not found")

type RoleRepository struct {
	pool *pgxpool.Pool
}

func NewRoleRepository(pool *pgxpool.Pool) *RoleRepository {
	return &RoleRepository{pool: pool}
}

func (r *RoleRepository) ListByDepartment(ctx context.Context, deptID int) ([]models.Role, error) {
	const query = `
		SELECT role_id, name, department_id FROM roles
		WHERE department_id = $1 ORDER BY name
	`

	rows, err := r.pool.Query(ctx, query, deptID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []models.Role
	for rows.Next() {
		var role models.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.DepartmentID); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

func (r *RoleRepository) GetByID(ctx context.Context, deptID, roleID int) (models.Role, error) {
	const query = `
		SELECT role_id, name, department_id FROM roles
		WHERE department_id = $1 AND role_id = $2
	`

	var role models.Role
	if err := r.pool.QueryRow(ctx, query, deptID, roleID).Scan(&role.ID, &role.Name, &role.DepartmentID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Role{}, ErrRoleNotFound
		}
		return models.Role{}, err
	}
	return role, nil
}

func (r *RoleRepository) Create(ctx context.Context, role models.Role) error {
	const query = `INSERT INTO roles (name, department_id) VALUES ($1, $2)`

	if _, err := r.pool.Exec(ctx, query, role.Name, role.DepartmentID); err != nil {
		return classifyWrite("create role", err)
	}
	return nil
}

func (r *RoleRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM roles WHERE role_id = $1`

	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return classifyWrite("delete role", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrRoleNotFound
	}
	return nil
}
