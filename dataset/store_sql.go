package dataset

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	categoriesTable     = "categories"
	documentsTable      = "documents"
	categoriesQuery     = `SELECT "id", "name", "document_count" FROM ` + categoriesTable
	insertCategoryQuery = `INSERT OR IGNORE INTO ` + categoriesTable + ` ("name", "document_count") VALUES (?, 0)`
	updateDocCountQuery = `UPDATE ` + categoriesTable + ` SET "document_count" = "document_count" + ? WHERE "id" = ?`
	categoryIDQuery     = `SELECT "id" FROM ` + categoriesTable + ` WHERE "name" = ?`
	insertDocumentQuery = `INSERT INTO ` + documentsTable + ` ("id", "category_id", "text") VALUES (?, ?, ?)`
	documentQuery       = `SELECT "category_id" FROM ` + documentsTable + ` WHERE "id" = ?`
	deleteDocumentQuery = `DELETE FROM ` + documentsTable + ` WHERE "id" = ?`
	documentsQuery      = `SELECT d."id", c."name", d."text" FROM ` + documentsTable + ` d JOIN ` + categoriesTable + ` c ON c."id" = d."category_id"`
)

// CreateTables creates the tables used by the SQL store if they don't exist.
func CreateTables(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS ` + categoriesTable + ` (
        id INTEGER PRIMARY KEY ASC,
        name TEXT NOT NULL,
        document_count INTEGER NOT NULL DEFAULT 0,
        UNIQUE(name))`)
	if err != nil {
		return err
	}
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS ` + documentsTable + ` (
        seq INTEGER PRIMARY KEY AUTOINCREMENT,
        id TEXT NOT NULL,
        category_id INTEGER NOT NULL,
        text TEXT NOT NULL,
        FOREIGN KEY(category_id) REFERENCES categories(id),
        UNIQUE(id))`)
	return err
}

type sqlStore struct {
	db                  *sql.DB
	categoriesQuery     *sql.Stmt
	insertCategoryQuery *sql.Stmt
}

// NewSQLStore returns an SQL database backed Store. The tables must exist;
// see CreateTables.
func NewSQLStore(db *sql.DB) (Store, error) {
	s := &sqlStore{
		db: db,
	}
	var err error
	s.categoriesQuery, err = db.Prepare(categoriesQuery)
	if err != nil {
		return nil, err
	}
	s.insertCategoryQuery, err = db.Prepare(insertCategoryQuery)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (s *sqlStore) Categories() (map[string]int64, error) {
	rows, err := s.categoriesQuery.Query()
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	categories := make(map[string]int64)
	for rows.Next() {
		var id int64
		var name string
		var documentCount int64
		if err := rows.Scan(&id, &name, &documentCount); err != nil {
			return nil, err
		}
		categories[name] = documentCount
	}
	return categories, rows.Err()
}

func (s *sqlStore) AddCategory(name string) error {
	_, err := s.insertCategoryQuery.Exec(name)
	return err
}

func (s *sqlStore) AddDocument(category, text string) (string, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return "", err
	}
	var categoryID int64
	if err := tx.QueryRow(categoryIDQuery, category).Scan(&categoryID); err != nil {
		tx.Rollback()
		if err == sql.ErrNoRows {
			return "", ErrCategoryDoesNotExist(category)
		}
		return "", err
	}
	id := uuid.NewString()
	if _, err := tx.Exec(insertDocumentQuery, id, categoryID, text); err != nil {
		tx.Rollback()
		return "", err
	}
	if _, err := tx.Exec(updateDocCountQuery, 1, categoryID); err != nil {
		tx.Rollback()
		return "", err
	}
	return id, tx.Commit()
}

func (s *sqlStore) RemoveDocument(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	var categoryID int64
	if err := tx.QueryRow(documentQuery, id).Scan(&categoryID); err != nil {
		tx.Rollback()
		if err == sql.ErrNoRows {
			return ErrDocumentDoesNotExist(id)
		}
		return err
	}
	if _, err := tx.Exec(deleteDocumentQuery, id); err != nil {
		tx.Rollback()
		return err
	}
	if _, err := tx.Exec(updateDocCountQuery, -1, categoryID); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (s *sqlStore) Documents(categories []string) ([]Document, error) {
	query := documentsQuery
	args := make([]interface{}, 0, len(categories))
	if categories != nil {
		known, err := s.Categories()
		if err != nil {
			return nil, err
		}
		for _, c := range categories {
			if _, ok := known[c]; !ok {
				return nil, ErrCategoryDoesNotExist(c)
			}
			args = append(args, c)
		}
		if len(categories) == 0 {
			return []Document{}, nil
		}
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(categories)), ",")
		query += fmt.Sprintf(` WHERE c."name" IN (%s)`, placeholders)
	}
	query += ` ORDER BY d."seq"`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	docs := make([]Document, 0)
	for rows.Next() {
		var d Document
		if err := rows.Scan(&d.ID, &d.Category, &d.Text); err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}
