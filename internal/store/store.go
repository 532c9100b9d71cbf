// Package store reads the decrypted database inside a Signal backup. All
// access goes through one read-only connection used strictly sequentially.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"signalhtml/internal/domain"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements domain.BackupStore using SQLite.
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open opens the backup database read-only. The export is a one-shot read
// pass; nothing ever writes through this connection.
func Open(dbPath string, logger *slog.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", "file:"+dbPath+"?mode=ro&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("cannot open database: %w", err)
	}

	// Set connection pool (single connection for SQLite)
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("cannot open database %s: %w", dbPath, err)
	}

	logger.Debug("opened backup database", "path", dbPath)
	return &SQLiteStore{db: db, logger: logger}, nil
}

func (s *SQLiteStore) Threads(ctx context.Context) ([]domain.ThreadRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT _id, recipient_ids FROM thread ORDER BY _id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var threads []domain.ThreadRow
	for rows.Next() {
		var id int64
		var recipientID sql.NullInt64
		if err := rows.Scan(&id, &recipientID); err != nil {
			return nil, err
		}
		if !recipientID.Valid {
			return nil, fmt.Errorf("thread %d has no recipient", id)
		}
		threads = append(threads, domain.ThreadRow{
			ID:          id,
			RecipientID: domain.RecipientID(recipientID.Int64),
		})
	}
	return threads, rows.Err()
}

func (s *SQLiteStore) Recipient(ctx context.Context, id domain.RecipientID) (domain.RecipientRow, error) {
	var r domain.RecipientRow
	err := s.db.QueryRowContext(ctx,
		`SELECT group_id, system_display_name, profile_joined_name, color
		 FROM recipient WHERE _id = ?`, int64(id),
	).Scan(&r.GroupID, &r.SystemName, &r.JoinedName, &r.Color)
	if err == sql.ErrNoRows {
		return domain.RecipientRow{}, fmt.Errorf("recipient %s: %w", id, err)
	}
	if err != nil {
		return domain.RecipientRow{}, err
	}
	return r, nil
}

// GroupTitle looks up the title stored for a group id. Both a missing row
// and a NULL title come back as an invalid NullString; the caller decides
// what to fall back to.
func (s *SQLiteStore) GroupTitle(ctx context.Context, groupID string) (sql.NullString, error) {
	var title sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT title FROM groups WHERE group_id = ?`, groupID,
	).Scan(&title)
	if err == sql.ErrNoRows {
		return sql.NullString{}, nil
	}
	if err != nil {
		return sql.NullString{}, err
	}
	return title, nil
}

func (s *SQLiteStore) SMSByThread(ctx context.Context, threadID int64) ([]domain.SMSRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT _id, address, date, date_sent, body, type
		 FROM sms WHERE thread_id = ?
		 ORDER BY date_sent, _id`, threadID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []domain.SMSRow
	for rows.Next() {
		var m domain.SMSRow
		var address, date, dateSent sql.NullInt64
		if err := rows.Scan(&m.ID, &address, &date, &dateSent, &m.Body, &m.Type); err != nil {
			return nil, err
		}
		if !address.Valid {
			return nil, fmt.Errorf("sms %d has no sender", m.ID)
		}
		m.Address = domain.RecipientID(address.Int64)
		m.Date = date.Int64
		m.DateSent = dateSent.Int64
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

func (s *SQLiteStore) MMSByThread(ctx context.Context, threadID int64) ([]domain.MMSRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT _id, address, date, date_received, body, quote_id, quote_author, quote_body, msg_box
		 FROM mms WHERE thread_id = ?
		 ORDER BY date, _id`, threadID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []domain.MMSRow
	for rows.Next() {
		var m domain.MMSRow
		var address, date, dateReceived, quoteID sql.NullInt64
		if err := rows.Scan(&m.ID, &address, &date, &dateReceived, &m.Body,
			&quoteID, &m.QuoteAuthor, &m.QuoteBody, &m.MsgBox); err != nil {
			return nil, err
		}
		if !address.Valid {
			return nil, fmt.Errorf("mms %d has no sender", m.ID)
		}
		m.Address = domain.RecipientID(address.Int64)
		m.Date = date.Int64
		m.DateReceived = dateReceived.Int64
		m.QuoteID = quoteID.Int64
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

func (s *SQLiteStore) PartsByMessage(ctx context.Context, messageID int64) ([]domain.PartRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT _id, ct, unique_id, voice_note, width, height, quote
		 FROM part WHERE mid = ?
		 ORDER BY _id`, messageID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var parts []domain.PartRow
	for rows.Next() {
		var p domain.PartRow
		var ct sql.NullString
		var uniqueID, voiceNote, width, height, quote sql.NullInt64
		if err := rows.Scan(&p.ID, &ct, &uniqueID, &voiceNote, &width, &height, &quote); err != nil {
			return nil, err
		}
		p.ContentType = ct.String
		p.UniqueID = uniqueID.Int64
		p.VoiceNote = voiceNote.Int64 != 0
		p.Width = int(width.Int64)
		p.Height = int(height.Int64)
		p.InQuote = quote.Int64 != 0
		parts = append(parts, p)
	}
	return parts, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
