package storage

import (
	"context"
	"database/sql"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq" // PostgreSQL driver
)

// DB is the PostgreSQL-backed Store.
type DB struct {
	connection *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS resumes (
    id            TEXT PRIMARY KEY,
    file_name     TEXT NOT NULL,
    raw_text      TEXT NOT NULL DEFAULT '',
    candidate_name TEXT NOT NULL DEFAULT '',
    email         TEXT NOT NULL DEFAULT '',
    phone         TEXT NOT NULL DEFAULT '',
    skills        TEXT NOT NULL DEFAULT '',
    match_score   INTEGER,
    justification TEXT,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
)`

func NewDB(dataSourceName string) (*DB, error) {
	db, err := sql.Open("postgres", dataSourceName)
	if err != nil {
		return nil, err
	}

	// Connection pool tuning
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}

	return &DB{connection: db}, nil
}

func (db *DB) Close() {
	if err := db.connection.Close(); err != nil {
		log.Println("Error closing the database connection:", err)
	}
}

func (db *DB) Create(ctx context.Context, r *Resume) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	query := `INSERT INTO resumes (id, file_name, raw_text, candidate_name, email, phone, skills, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := db.connection.ExecContext(ctx, query,
		r.ID,
		r.FileName,
		r.RawText,
		r.CandidateName,
		r.Email,
		r.Phone,
		strings.Join(r.Skills, ","),
		r.CreatedAt,
	)
	return err
}

func (db *DB) Get(ctx context.Context, id string) (*Resume, error) {
	query := `SELECT id, file_name, raw_text, candidate_name, email, phone, skills, match_score, justification, created_at
              FROM resumes WHERE id = $1`
	row := db.connection.QueryRowContext(ctx, query, id)
	r, err := scanResume(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return r, err
}

func (db *DB) List(ctx context.Context) ([]*Resume, error) {
	return db.listWhere(ctx, "", nil)
}

func (db *DB) ListByMinScore(ctx context.Context, minScore int) ([]*Resume, error) {
	return db.listWhere(ctx, "WHERE match_score >= $1", []interface{}{minScore})
}

func (db *DB) listWhere(ctx context.Context, where string, args []interface{}) ([]*Resume, error) {
	query := `SELECT id, file_name, raw_text, candidate_name, email, phone, skills, match_score, justification, created_at
              FROM resumes ` + where + ` ORDER BY match_score DESC NULLS LAST, created_at DESC`
	rows, err := db.connection.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	resumes := []*Resume{}
	for rows.Next() {
		r, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		resumes = append(resumes, r)
	}
	return resumes, rows.Err()
}

func (db *DB) UpdateScore(ctx context.Context, id string, score int, justification string) error {
	query := `UPDATE resumes SET match_score = $2, justification = $3 WHERE id = $1`
	res, err := db.connection.ExecContext(ctx, query, id, score, justification)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (db *DB) Delete(ctx context.Context, id string) error {
	res, err := db.connection.ExecContext(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanResume(row rowScanner) (*Resume, error) {
	r := &Resume{}
	var skills string
	var score sql.NullInt64
	var justification sql.NullString
	err := row.Scan(&r.ID, &r.FileName, &r.RawText, &r.CandidateName, &r.Email, &r.Phone,
		&skills, &score, &justification, &r.CreatedAt)
	if err != nil {
		return nil, err
	}
	if skills != "" {
		r.Skills = strings.Split(skills, ",")
	} else {
		r.Skills = []string{}
	}
	if score.Valid {
		v := int(score.Int64)
		r.MatchScore = &v
		j := justification.String
		r.Justification = &j
	}
	return r, nil
}
