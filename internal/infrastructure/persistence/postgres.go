package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gestormx/gestor-comercial/internal/domain/entity"
	"github.com/gestormx/gestor-comercial/pkg/config"
)

// NewPool crea un pool de conexiones PostgreSQL usando la configuración de
// la app y registra el codec NUMERIC/DECIMAL -> shopspring/decimal en todas
// las conexiones.
func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}
	poolConfig.MaxConns = 10
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return pool, nil
}

var _ SnapshotStore = (*PostgresStore)(nil)

// PostgresStore persiste cada clave como una fila jsonb en la tabla
// estado_snapshots. La reescritura de todas las claves ocurre en una misma
// transacción, así una caída a mitad de guardado no deja claves de dos
// snapshots distintos mezcladas.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore asegura el esquema y devuelve el almacén.
func NewPostgresStore(ctx context.Context, pool *pgxpool.Pool) (*PostgresStore, error) {
	const schema = `
		CREATE TABLE IF NOT EXISTS estado_snapshots (
			clave      text PRIMARY KEY,
			datos      jsonb NOT NULL,
			updated_at timestamptz NOT NULL DEFAULT now()
		)`
	if _, err := pool.Exec(ctx, schema); err != nil {
		return nil, fmt.Errorf("crear esquema de snapshots: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

// Cargar lee todas las claves persistidas.
func (s *PostgresStore) Cargar(ctx context.Context) (*entity.Estado, error) {
	rows, err := s.pool.Query(ctx, `SELECT clave, datos FROM estado_snapshots`)
	if err != nil {
		return nil, fmt.Errorf("leer snapshots: %w", err)
	}
	defer rows.Close()

	docs := map[string][]byte{}
	for rows.Next() {
		var clave string
		var datos []byte
		if err := rows.Scan(&clave, &datos); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		docs[clave] = datos
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterar snapshots: %w", err)
	}
	return armar(docs)
}

// Guardar upserta el documento de cada clave dentro de una transacción.
func (s *PostgresStore) Guardar(ctx context.Context, e *entity.Estado) error {
	docs, err := fragmentos(e)
	if err != nil {
		return err
	}
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	const upsert = `
		INSERT INTO estado_snapshots (clave, datos, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (clave)
		DO UPDATE SET datos = EXCLUDED.datos, updated_at = now()`
	for clave, datos := range docs {
		if _, err := tx.Exec(ctx, upsert, clave, datos); err != nil {
			return fmt.Errorf("upsert %s: %w", clave, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
