package triage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vigil/vigil/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

// pgRepo persists decisions with the full document as JSONB plus a handful
// of indexed columns for listing and aggregation.
type pgRepo struct{ pool *pgxpool.Pool }

func NewPgRepo(pool *pgxpool.Pool) Repository { return &pgRepo{pool: pool} }

func (r *pgRepo) conn(ctx context.Context) queryable {
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

func (r *pgRepo) Create(ctx context.Context, d *Decision) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	payload, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshal decision: %w", err)
	}
	_, err = r.conn(ctx).Exec(ctx, `
		INSERT INTO triage_decision (id, patient_id, patient_name, risk_level, department,
			confidence, deterioration_score, has_critical_alert, payload, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		d.ID, d.PatientID, d.PatientName, d.RiskLevel, d.Department.Department,
		d.Confidence, d.Deterioration.Score, d.Deterioration.HasCriticalAlert, payload, d.CreatedAt)
	return err
}

func (r *pgRepo) scanDecision(row pgx.Row) (*Decision, error) {
	var payload []byte
	if err := row.Scan(&payload); err != nil {
		return nil, err
	}
	var d Decision
	if err := json.Unmarshal(payload, &d); err != nil {
		return nil, fmt.Errorf("unmarshal decision: %w", err)
	}
	return &d, nil
}

func (r *pgRepo) GetByPatientID(ctx context.Context, patientID string) (*Decision, error) {
	return r.scanDecision(r.conn(ctx).QueryRow(ctx,
		`SELECT payload FROM triage_decision WHERE patient_id = $1`, patientID))
}

func (r *pgRepo) List(ctx context.Context, limit, offset int) ([]*Decision, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM triage_decision`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT payload FROM triage_decision ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Decision
	for rows.Next() {
		d, err := r.scanDecision(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, d)
	}
	return items, total, nil
}

func (r *pgRepo) Recent(ctx context.Context, limit int) ([]Summary, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT patient_id, patient_name, risk_level, department, confidence, created_at, deterioration_score
		FROM triage_decision ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Summary
	for rows.Next() {
		var s Summary
		if err := rows.Scan(&s.PatientID, &s.PatientName, &s.RiskLevel, &s.Department,
			&s.Confidence, &s.Timestamp, &s.DeteriorationScore); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *pgRepo) Aggregate(ctx context.Context) (*Aggregates, error) {
	agg := &Aggregates{
		RiskCounts:       map[string]int{},
		DepartmentCounts: map[string]int{},
	}

	err := r.conn(ctx).QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(SUM(confidence), 0),
			COUNT(*) FILTER (WHERE has_critical_alert)
		FROM triage_decision`).Scan(&agg.Total, &agg.ConfidenceSum, &agg.CriticalAlerts)
	if err != nil {
		return nil, err
	}

	rows, err := r.conn(ctx).Query(ctx,
		`SELECT risk_level, COUNT(*) FROM triage_decision GROUP BY risk_level`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var level string
		var count int
		if err := rows.Scan(&level, &count); err != nil {
			return nil, err
		}
		agg.RiskCounts[level] = count
	}

	deptRows, err := r.conn(ctx).Query(ctx,
		`SELECT department, COUNT(*) FROM triage_decision GROUP BY department`)
	if err != nil {
		return nil, err
	}
	defer deptRows.Close()
	for deptRows.Next() {
		var dept string
		var count int
		if err := deptRows.Scan(&dept, &count); err != nil {
			return nil, err
		}
		agg.DepartmentCounts[dept] = count
	}

	return agg, nil
}
