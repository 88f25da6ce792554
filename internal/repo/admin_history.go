package repo

import (
	"context"
	"database/sql"

	"github.com/sign2voice/sign2voice/internal/models"
)

// AdminHistoryRepo persists the admin audit trail.
type AdminHistoryRepo struct {
	db *sql.DB
}

// NewAdminHistoryRepo returns a new AdminHistoryRepo.
func NewAdminHistoryRepo(db *sql.DB) *AdminHistoryRepo {
	return &AdminHistoryRepo{db: db}
}

// Log records an admin action. targetUser is the affected account, when there is one.
func (r *AdminHistoryRepo) Log(ctx context.Context, adminID int, action, targetUser string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO admin_history (admin_id, action, target_user) VALUES ($1, $2, $3)`,
		adminID, action, targetUser,
	)
	return err
}

// List returns recent admin actions, newest first.
func (r *AdminHistoryRepo) List(ctx context.Context, limit, offset int) ([]models.AdminAction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, admin_id, action, COALESCE(target_user,''), created_at FROM admin_history ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var actions []models.AdminAction
	for rows.Next() {
		var a models.AdminAction
		if err := rows.Scan(&a.ID, &a.AdminID, &a.Action, &a.TargetUser, &a.CreatedAt); err != nil {
			return nil, err
		}
		actions = append(actions, a)
	}
	return actions, rows.Err()
}
