package repo

import (
	"context"
	"database/sql"
	"time"

	"github.com/sign2voice/sign2voice/internal/models"
)

// ========================
// REPOSITORY STRUCT
// ========================

type SentenceRepo struct {
	DB *sql.DB
}

func NewSentenceRepo(db *sql.DB) *SentenceRepo {
	return &SentenceRepo{DB: db}
}

// ========================
// CREATE SENTENCE
// ========================

// Create persists a sentence. userID is nil for anonymous GUI submissions.
func (r *SentenceRepo) Create(ctx context.Context, userID *int, text string, wordCount int, sessionID, source string) (models.Sentence, error) {
	var s models.Sentence
	err := r.DB.QueryRowContext(ctx,
		`INSERT INTO sentences (user_id, text, word_count, session_id, source)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, user_id, text, word_count, session_id, source, created_at`,
		userID, text, wordCount, sessionID, source,
	).Scan(
		&s.ID,
		&s.UserID,
		&s.Text,
		&s.WordCount,
		&s.SessionID,
		&s.Source,
		&s.CreatedAt,
	)
	return s, err
}

// ========================
// LIST BY USER WITH PAGINATION
// ========================

// ListByUser returns the user's sentences newest first. sessionID narrows the
// result to one session when non-empty.
func (r *SentenceRepo) ListByUser(ctx context.Context, userID int, sessionID string, limit, offset int) ([]models.Sentence, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if sessionID != "" {
		rows, err = r.DB.QueryContext(ctx,
			`SELECT id, user_id, text, word_count, session_id, source, created_at
			 FROM sentences
			 WHERE user_id = $1 AND session_id = $2
			 ORDER BY created_at DESC
			 LIMIT $3 OFFSET $4`,
			userID, sessionID, limit, offset)
	} else {
		rows, err = r.DB.QueryContext(ctx,
			`SELECT id, user_id, text, word_count, session_id, source, created_at
			 FROM sentences
			 WHERE user_id = $1
			 ORDER BY created_at DESC
			 LIMIT $2 OFFSET $3`,
			userID, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSentences(rows)
}

// CountByUser returns how many sentences the user has, optionally within one session.
func (r *SentenceRepo) CountByUser(ctx context.Context, userID int, sessionID string) (int, error) {
	var total int
	var err error
	if sessionID != "" {
		err = r.DB.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM sentences WHERE user_id = $1 AND session_id = $2`,
			userID, sessionID).Scan(&total)
	} else {
		err = r.DB.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM sentences WHERE user_id = $1`,
			userID).Scan(&total)
	}
	return total, err
}

// ========================
// LIST BY SESSION
// ========================

func (r *SentenceRepo) ListBySession(ctx context.Context, sessionID string) ([]models.Sentence, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, user_id, text, word_count, session_id, source, created_at
		 FROM sentences
		 WHERE session_id = $1
		 ORDER BY created_at DESC`,
		sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSentences(rows)
}

// ========================
// STATS (ALL ROWS FOR ONE USER)
// ========================

func (r *SentenceRepo) ListAllByUser(ctx context.Context, userID int) ([]models.Sentence, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, user_id, text, word_count, session_id, source, created_at
		 FROM sentences
		 WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSentences(rows)
}

// ========================
// DELETE (OWNER-SCOPED)
// ========================

// DeleteOwned removes the sentence only when it belongs to userID.
// Returns sql.ErrNoRows when the id is absent or owned by someone else.
func (r *SentenceRepo) DeleteOwned(ctx context.Context, id, userID int) error {
	result, err := r.DB.ExecContext(ctx,
		`DELETE FROM sentences WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// ========================
// LIST ALL WITH OWNERS (ADMIN PANEL)
// ========================

func (r *SentenceRepo) ListAllWithUsers(ctx context.Context) ([]models.SentenceWithUser, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT s.id, s.user_id, s.text, s.word_count, s.session_id, s.source, s.created_at,
		        u.email, u.username
		 FROM sentences s
		 LEFT JOIN users u ON u.id = s.user_id
		 ORDER BY s.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.SentenceWithUser{}
	for rows.Next() {
		var s models.SentenceWithUser
		var email, username sql.NullString
		if err := rows.Scan(&s.ID, &s.UserID, &s.Text, &s.WordCount, &s.SessionID, &s.Source, &s.CreatedAt,
			&email, &username); err != nil {
			return nil, err
		}
		if email.Valid {
			s.User = &models.SentenceOwner{Email: email.String, Username: username.String}
		}
		out = append(out, s)
	}

	return out, rows.Err()
}

// ========================
// RETENTION PURGE
// ========================

// PurgeAnonymousOlderThan deletes anonymous GUI sentences created before cutoff
// and returns how many rows were removed.
func (r *SentenceRepo) PurgeAnonymousOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.DB.ExecContext(ctx,
		`DELETE FROM sentences WHERE user_id IS NULL AND source = 'gui' AND created_at < $1`,
		cutoff)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func scanSentences(rows *sql.Rows) ([]models.Sentence, error) {
	sentences := []models.Sentence{}
	for rows.Next() {
		var s models.Sentence
		if err := rows.Scan(&s.ID, &s.UserID, &s.Text, &s.WordCount, &s.SessionID, &s.Source, &s.CreatedAt); err != nil {
			return nil, err
		}
		sentences = append(sentences, s)
	}
	return sentences, rows.Err()
}
