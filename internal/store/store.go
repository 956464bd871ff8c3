// Package store archives loaded rows in SQLite so history survives the
// fetch job's rolling window. The JSON documents only cover the last few
// days; the archive accumulates everything the dashboard has ever loaded.
package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/rachit379/insider-deals/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS form4_transactions (
	insider_name     TEXT,
	insider_cik      TEXT,
	relation         TEXT,
	officer_title    TEXT,
	transaction_date TEXT,
	filed_date       TEXT,
	issuer_symbol    TEXT,
	issuer_name      TEXT,
	issuer_cik       TEXT,
	transaction_code TEXT,
	transaction_desc TEXT,
	is_buy           INTEGER NOT NULL DEFAULT 0,
	is_sale          INTEGER NOT NULL DEFAULT 0,
	owner_type       TEXT,
	timeliness       TEXT,
	shares_traded    INTEGER,
	price            REAL,
	shares_held_after INTEGER,
	filing_url       TEXT,
	UNIQUE (issuer_symbol, insider_name, transaction_date, transaction_code, shares_traded, filing_url)
);
CREATE TABLE IF NOT EXISTS schedule_13d13g (
	form_type        TEXT,
	filed_date       TEXT,
	issuer_name      TEXT,
	issuer_cik       TEXT,
	filer_name       TEXT,
	filer_cik        TEXT,
	period_of_report TEXT,
	filing_url       TEXT,
	UNIQUE (form_type, filed_date, issuer_cik, filer_cik, filing_url)
);
`

// Store wraps the archive database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the archive at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init archive schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

// ArchiveForm4 inserts rows not already present, returning how many were new.
func (s *Store) ArchiveForm4(rows []models.Form4Row) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()
	stmt, err := tx.Prepare(`INSERT OR IGNORE INTO form4_transactions (
		insider_name, insider_cik, relation, officer_title, transaction_date,
		filed_date, issuer_symbol, issuer_name, issuer_cik, transaction_code,
		transaction_desc, is_buy, is_sale, owner_type, timeliness,
		shares_traded, price, shares_held_after, filing_url
	) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	added := 0
	for _, r := range rows {
		res, err := stmt.Exec(
			r.InsiderName, r.InsiderCIK, r.Relation, r.OfficerTitle, r.TransactionDate,
			r.FiledDate, r.IssuerSymbol, r.IssuerName, r.IssuerCIK, r.TransactionCode,
			r.TransactionDescription, r.IsBuy, r.IsSale, r.OwnerType, r.Timeliness,
			r.SharesTraded, r.Price, r.SharesHeldAfter, r.FilingURL,
		)
		if err != nil {
			return added, fmt.Errorf("archive form4 row: %w", err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			added++
		}
	}
	return added, tx.Commit()
}

// ArchiveSched13 inserts filings not already present, returning how many were new.
func (s *Store) ArchiveSched13(rows []models.Sched13Row) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()
	stmt, err := tx.Prepare(`INSERT OR IGNORE INTO schedule_13d13g (
		form_type, filed_date, issuer_name, issuer_cik, filer_name, filer_cik,
		period_of_report, filing_url
	) VALUES (?,?,?,?,?,?,?,?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	added := 0
	for _, r := range rows {
		res, err := stmt.Exec(
			r.FormType, r.FiledDate, r.IssuerName, r.IssuerCIK, r.FilerName,
			r.FilerCIK, r.PeriodOfReport, r.FilingURL,
		)
		if err != nil {
			return added, fmt.Errorf("archive 13d/g row: %w", err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			added++
		}
	}
	return added, tx.Commit()
}

// RecentForm4 returns up to limit archived transactions, newest first by
// transaction date then filed date.
func (s *Store) RecentForm4(limit int) ([]models.Form4Row, error) {
	rows, err := s.db.Query(`SELECT
		insider_name, insider_cik, relation, officer_title, transaction_date,
		filed_date, issuer_symbol, issuer_name, issuer_cik, transaction_code,
		transaction_desc, is_buy, is_sale, owner_type, timeliness,
		shares_traded, price, shares_held_after, filing_url
	FROM form4_transactions
	ORDER BY transaction_date DESC, filed_date DESC
	LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.Form4Row, 0, limit)
	for rows.Next() {
		var r models.Form4Row
		if err := rows.Scan(
			&r.InsiderName, &r.InsiderCIK, &r.Relation, &r.OfficerTitle, &r.TransactionDate,
			&r.FiledDate, &r.IssuerSymbol, &r.IssuerName, &r.IssuerCIK, &r.TransactionCode,
			&r.TransactionDescription, &r.IsBuy, &r.IsSale, &r.OwnerType, &r.Timeliness,
			&r.SharesTraded, &r.Price, &r.SharesHeldAfter, &r.FilingURL,
		); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Counts returns how many rows the archive holds per table.
func (s *Store) Counts() (form4, sched13 int64, err error) {
	if err = s.db.QueryRow(`SELECT COUNT(*) FROM form4_transactions`).Scan(&form4); err != nil {
		return 0, 0, err
	}
	if err = s.db.QueryRow(`SELECT COUNT(*) FROM schedule_13d13g`).Scan(&sched13); err != nil {
		return 0, 0, err
	}
	return form4, sched13, nil
}
