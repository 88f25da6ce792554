package repo

import (
	"context"
	"database/sql"

	"github.com/sign2voice/sign2voice/internal/models"
)

// ==========================
// AdminRepo
// ==========================
type AdminRepo struct {
	DB *sql.DB
}

// ==========================
// Constructor
// ==========================
func NewAdminRepo(db *sql.DB) *AdminRepo {
	return &AdminRepo{DB: db}
}

// ==========================
// Create Admin (provisioned out-of-band via the CLI)
// ==========================
func (r *AdminRepo) Create(ctx context.Context, email, passwordHash, role string) (*models.Admin, error) {
	query := `
		INSERT INTO admins (email, password_hash, role)
		VALUES ($1, $2, $3)
		RETURNING id, email, role, created_at
	`

	admin := &models.Admin{}

	err := r.DB.QueryRowContext(ctx, query, email, passwordHash, role).
		Scan(&admin.ID, &admin.Email, &admin.Role, &admin.CreatedAt)

	if err != nil {
		return nil, err
	}

	return admin, nil
}

// ==========================
// Get By ID
// ==========================
func (r *AdminRepo) GetByID(ctx context.Context, id int) (*models.Admin, error) {
	query := `
		SELECT id, email, password_hash, role, created_at
		FROM admins
		WHERE id = $1
	`

	admin := &models.Admin{}

	err := r.DB.QueryRowContext(ctx, query, id).
		Scan(&admin.ID, &admin.Email, &admin.PasswordHash, &admin.Role, &admin.CreatedAt)

	if err != nil {
		return nil, err
	}

	return admin, nil
}

// ==========================
// Get By Email
// ==========================
func (r *AdminRepo) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	query := `
		SELECT id, email, password_hash, role, created_at
		FROM admins
		WHERE email = $1
	`

	admin := &models.Admin{}

	err := r.DB.QueryRowContext(ctx, query, email).
		Scan(&admin.ID, &admin.Email, &admin.PasswordHash, &admin.Role, &admin.CreatedAt)

	if err != nil {
		return nil, err
	}

	return admin, nil
}

// ==========================
// List Admins
// ==========================
func (r *AdminRepo) List(ctx context.Context) ([]models.Admin, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, email, role, created_at FROM admins ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	admins := []models.Admin{}
	for rows.Next() {
		var a models.Admin
		if err := rows.Scan(&a.ID, &a.Email, &a.Role, &a.CreatedAt); err != nil {
			return nil, err
		}
		admins = append(admins, a)
	}

	return admins, rows.Err()
}
