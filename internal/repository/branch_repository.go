package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Thunder2505/EPI-USE-EmployeeHierarchyManagement/internal/models"
)

var ErrBranchNotFound = errors.New("branch not found")

type BranchRepository struct {
	pool *pgxpool.Pool
}

func NewBranchRepository(pool *pgxpool.Pool) *BranchRepository {
	return &BranchRepository{pool: pool}
}

func (r *BranchRepository) List(ctx context.Context) ([]models.Branch, error) {
	const query = `SELECT branch_id, name FROM branches ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var branches []models.Branch
	for rows.Next() {
		var branch models.Branch
		if err := rows.Scan(&branch.ID, &branch.Name); err != nil {
			return nil, err
		}
		branches = append(branches, branch)
	}
	return branches, rows.Err()
}

func (r *BranchRepository) GetByID(ctx context.Context, id int) (models.Branch, error) {
	const query = `SELECT branch_id, name FROM branches WHERE branch_id = $1`

	var branch models.Branch
	if err := r.pool.QueryRow(ctx, query, id).Scan(&branch.ID, &branch.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Branch{}, ErrBranchNotFound
		}
		return models.Branch{}, err
	}
	return branch, nil
}

func (r *BranchRepository) Create(ctx context.Context, branch models.Branch) error {
	const query = `INSERT INTO branches (branch_id, name) VALUES ($1, $2)`

	if _, err := r.pool.Exec(ctx, query, branch.ID, branch.Name); err != nil {
		return classifyWrite("create branch", err)
	}
	return nil
}

func (r *BranchRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM branches WHERE branch_id = $1`

	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return classifyWrite("delete branch", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrBranchNotFound
	}
	return nil
}
