package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/japaniel/devlingo/pkg/phrase"
)

// DBExecutor is an interface that allows methods to accept either *sql.DB or *sql.Tx
type DBExecutor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

// WriteFunc performs catalog writes inside a transaction.
type WriteFunc func(ctx context.Context, tx *sql.Tx) error

// ReadingFunc returns the reading stored next to a Japanese translation.
type ReadingFunc func(text string) string

// WithTx runs the write functions in order inside one transaction and
// commits only if all of them succeed.
func WithTx(ctx context.Context, conn *sql.DB, writes ...WriteFunc) error {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback() // ignored if committed
	}()

	for _, w := range writes {
		if err := w(ctx, tx); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit %d writes: %w", len(writes), err)
	}
	return nil
}

// ReplaceCorpus replaces the whole catalog with records. Rows are numbered
// per category in slice order. readingFn may be nil.
func ReplaceCorpus(ctx context.Context, conn *sql.DB, records []phrase.Record, readingFn ReadingFunc) error {
	return WithTx(ctx, conn,
		clearCatalog,
		upsertLanguages,
		func(ctx context.Context, tx *sql.Tx) error {
			positions := make(map[phrase.Category]int)
			for _, r := range records {
				pos := positions[r.Category]
				positions[r.Category] = pos + 1
				if err := InsertPhrase(tx, r, pos, readingFn); err != nil {
					return err
				}
			}
			return nil
		},
	)
}

func clearCatalog(ctx context.Context, tx *sql.Tx) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM translations`); err != nil {
		return fmt.Errorf("clear translations: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM phrases`); err != nil {
		return fmt.Errorf("clear phrases: %w", err)
	}
	return nil
}

func upsertLanguages(ctx context.Context, tx *sql.Tx) error {
	for i, l := range phrase.Languages() {
		_, err := tx.ExecContext(ctx, `INSERT INTO languages (code, english_name, native_name, position)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(code) DO UPDATE SET
			  english_name = excluded.english_name,
			  native_name = excluded.native_name,
			  position = excluded.position`,
			l.Code, l.EnglishName, l.NativeName, i)
		if err != nil {
			return fmt.Errorf("upsert language %s: %w", l.Code, err)
		}
	}
	return nil
}

// InsertPhrase inserts one record and its translations.
func InsertPhrase(db DBExecutor, r phrase.Record, position int, readingFn ReadingFunc) error {
	if r.ID == "" {
		return fmt.Errorf("phrase id must be non-empty")
	}
	_, err := db.Exec(`INSERT INTO phrases (id, english, context, difficulty, category, position) VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID, r.English, r.Context, string(r.Difficulty), string(r.Category), position)
	if err != nil {
		return fmt.Errorf("insert phrase %s: %w", r.ID, err)
	}

	for _, code := range phrase.LanguageCodes() {
		text, ok := r.Translations[code]
		if !ok {
			continue
		}
		var reading interface{}
		if code == "ja" && readingFn != nil {
			reading = readingFn(text)
		}
		if _, err := db.Exec(`INSERT INTO translations (phrase_id, language, text, reading) VALUES (?, ?, ?, ?)`,
			r.ID, code, text, reading); err != nil {
			return fmt.Errorf("insert translation %s/%s: %w", r.ID, code, err)
		}
	}
	return nil
}

// GetPhrasesByCategory returns the phrases of a category in output order.
func GetPhrasesByCategory(db DBExecutor, category string) ([]Phrase, error) {
	rows, err := db.Query(`SELECT id, english, context, difficulty, category, position FROM phrases WHERE category = ? ORDER BY position`, category)
	if err != nil {
		return nil, err
	}
	var out []Phrase
	for rows.Next() {
		var p Phrase
		if err := rows.Scan(&p.ID, &p.English, &p.Context, &p.Difficulty, &p.Category, &p.Position); err != nil {
			rows.Close()
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	for i := range out {
		tr, err := getTranslations(db, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Translations = tr
	}
	return out, nil
}

func getTranslations(db DBExecutor, phraseID string) (map[string]Translation, error) {
	rows, err := db.Query(`SELECT language, text, reading FROM translations WHERE phrase_id = ?`, phraseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make(map[string]Translation)
	for rows.Next() {
		var lang, text string
		var reading sql.NullString
		if err := rows.Scan(&lang, &text, &reading); err != nil {
			return nil, err
		}
		t := Translation{Text: text}
		if reading.Valid {
			t.Reading = reading.String
		}
		out[lang] = t
	}
	return out, rows.Err()
}

// CountByDifficulty returns the number of phrases per difficulty for a category.
func CountByDifficulty(db DBExecutor, category string) (map[string]int, error) {
	rows, err := db.Query(`SELECT difficulty, COUNT(*) FROM phrases WHERE category = ? GROUP BY difficulty`, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make(map[string]int)
	for rows.Next() {
		var d string
		var n int
		if err := rows.Scan(&d, &n); err != nil {
			return nil, err
		}
		out[d] = n
	}
	return out, rows.Err()
}
