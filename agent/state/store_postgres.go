package state

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

type sessionRecord struct {
	bun.BaseModel `bun:"table:voyplan_sessions"`

	SessionID string    `bun:"session_id,pk"`
	Payload   []byte    `bun:"payload,type:jsonb,notnull"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}

// PostgresStore persists sessions in Postgres via bun, one JSONB row per
// session keyed on session id.
type PostgresStore struct {
	db *bun.DB
}

func NewPostgresStore(dsn string) *PostgresStore {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	return &PostgresStore{db: bun.NewDB(sqldb, pgdialect.New())}
}

// Init creates the sessions table when it does not exist yet.
func (p *PostgresStore) Init(ctx context.Context) error {
	_, err := p.db.NewCreateTable().
		Model((*sessionRecord)(nil)).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("create sessions table: %w", err)
	}
	return nil
}

func (p *PostgresStore) Load(ctx context.Context, sessionID string) (*Session, error) {
	record := new(sessionRecord)
	err := p.db.NewSelect().
		Model(record).
		Where("session_id = ?", sessionID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select session: %w", err)
	}

	var session Session
	if err := json.Unmarshal(record.Payload, &session); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", sessionID, err)
	}
	return &session, nil
}

func (p *PostgresStore) Save(ctx context.Context, session *Session) error {
	if session == nil {
		return ErrNilSession
	}
	if err := session.Validate(); err != nil {
		return err
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", session.SessionID, err)
	}
	record := &sessionRecord{
		SessionID: session.SessionID,
		Payload:   payload,
		UpdatedAt: session.UpdatedAt,
	}
	_, err = p.db.NewInsert().
		Model(record).
		On("CONFLICT (session_id) DO UPDATE").
		Set("payload = EXCLUDED.payload").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert session: %w", err)
	}
	return nil
}

func (p *PostgresStore) Delete(ctx context.Context, sessionID string) error {
	_, err := p.db.NewDelete().
		Model((*sessionRecord)(nil)).
		Where("session_id = ?", sessionID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (p *PostgresStore) Close() error {
	return p.db.Close()
}
