package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/TFG-DataVet/dvt-back-sub001/internal/domain/records"
	"github.com/TFG-DataVet/dvt-back-sub001/internal/domain/records/details"
)

// RecordsRepo guarda el detalle como JSONB y lo rehidrata con la Factory,
// evaluando las reglas de fecha contra recorded_at.
type RecordsRepo struct {
	db      *sql.DB
	factory *details.Factory
}

var _ records.Repository = (*RecordsRepo)(nil)

func NewRecordsRepo(db *sql.DB) *RecordsRepo {
	return &RecordsRepo{db: db, factory: details.NewFactory()}
}

const recordColumns = `
	id, pet_id, type, status, detail,
	recorded_by, recorded_at, updated_at,
	corrects_id, superseded_by`

const insertRecord = `
	INSERT INTO medical_records (` + recordColumns + `)
	VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`

// supersedeRecord recibe recordArgs del nuevo registro ($1..$10) seguido del id
// ($11) y el estado final ($12, vacío = sin cambio) del anterior.
const supersedeRecord = `
	WITH prev AS (
		UPDATE medical_records
		SET superseded_by = $1,
			updated_at = $7::timestamptz,
			status = COALESCE(NULLIF($12::text, ''), status)
		WHERE id = $11 AND superseded_by IS NULL
		RETURNING id
	)
	INSERT INTO medical_records (` + recordColumns + `)
	SELECT $1, $2, $3, $4, $5::jsonb, $6, $7::timestamptz, $8::timestamptz, $9, $10
	FROM prev`

const updateRecordStatus = `
	UPDATE medical_records
	SET status = $3, updated_at = $4
	WHERE id = $1 AND status = $2 AND superseded_by IS NULL`

func (r *RecordsRepo) Create(ctx context.Context, rec records.MedicalRecord) error {
	args, err := recordArgs(rec)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, insertRecord, args...)
	return mapWriteErr(err)
}

func (r *RecordsRepo) GetByID(ctx context.Context, id string) (records.MedicalRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return records.MedicalRecord{}, records.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+recordColumns+` FROM medical_records WHERE id = $1`, id)
	rec, err := r.scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return records.MedicalRecord{}, records.ErrNotFound
		}
		return records.MedicalRecord{}, err
	}
	return rec, nil
}

func (r *RecordsRepo) ListByPet(ctx context.Context, petID string, filter records.ListFilter) ([]records.MedicalRecord, error) {
	q := `SELECT ` + recordColumns + ` FROM medical_records WHERE pet_id = $1`
	args := []any{petID}

	if len(filter.Types) > 0 {
		types := make([]string, 0, len(filter.Types))
		for _, t := range filter.Types {
			types = append(types, string(t))
		}
		args = append(args, types)
		q += fmt.Sprintf(" AND type = ANY($%d)", len(args))
	}
	if !filter.IncludeSuperseded {
		q += " AND superseded_by IS NULL"
	}

	args = append(args, filter.NormalizedLimit())
	q += fmt.Sprintf(" ORDER BY recorded_at DESC, id DESC LIMIT $%d", len(args))

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]records.MedicalRecord, 0)
	for rows.Next() {
		rec, err := r.scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Supersede es una sola sentencia: el INSERT solo ocurre si el UPDATE condicional
// sobre el anterior tocó la fila. De dos correcciones concurrentes solo una ve
// superseded_by IS NULL.
func (r *RecordsRepo) Supersede(ctx context.Context, prevID string, prevStatus details.MedicalRecordStatus, next records.MedicalRecord) error {
	args, err := recordArgs(next)
	if err != nil {
		return err
	}
	args = append(args, prevID, string(prevStatus))

	res, err := r.db.ExecContext(ctx, supersedeRecord, args...)
	if err != nil {
		return mapWriteErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return r.missingOrConflict(ctx, prevID)
	}
	return nil
}

func (r *RecordsRepo) UpdateStatus(ctx context.Context, id string, from, to details.MedicalRecordStatus, at time.Time) error {
	res, err := r.db.ExecContext(ctx, updateRecordStatus, id, string(from), string(to), at)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return r.missingOrConflict(ctx, id)
	}
	return nil
}

// missingOrConflict distingue por qué una escritura condicional no tocó filas.
func (r *RecordsRepo) missingOrConflict(ctx context.Context, id string) error {
	var exists bool
	if err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM medical_records WHERE id = $1)`, id).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return records.ErrNotFound
	}
	return records.ErrConflict
}

func (r *RecordsRepo) scanRecord(s rowScanner) (records.MedicalRecord, error) {
	var (
		rec          records.MedicalRecord
		kind, status string
		raw          []byte
		correctsID   sql.NullString
		supersededBy sql.NullString
	)
	if err := s.Scan(
		&rec.ID,
		&rec.PetID,
		&kind,
		&status,
		&raw,
		&rec.RecordedBy,
		&rec.RecordedAt,
		&rec.UpdatedAt,
		&correctsID,
		&supersededBy,
	); err != nil {
		return records.MedicalRecord{}, err
	}

	rec.Type = details.MedicalRecordType(kind)
	rec.Status = details.MedicalRecordStatus(status)
	rec.CorrectsID = correctsID.String
	rec.SupersededBy = supersededBy.String

	d, err := r.factory.Restore(rec.Type, raw, rec.RecordedAt)
	if err != nil {
		return records.MedicalRecord{}, fmt.Errorf("restore detail of record %s: %w", rec.ID, err)
	}
	rec.Detail = d
	return rec, nil
}

func recordArgs(rec records.MedicalRecord) ([]any, error) {
	raw, err := details.Marshal(rec.Detail)
	if err != nil {
		return nil, err
	}
	return []any{
		rec.ID,
		rec.PetID,
		string(rec.Type),
		string(rec.Status),
		string(raw),
		rec.RecordedBy,
		rec.RecordedAt,
		rec.UpdatedAt,
		nullString(rec.CorrectsID),
		nullString(rec.SupersededBy),
	}, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// El índice único sobre corrects_id rechaza una segunda corrección de la misma versión.
func mapWriteErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return records.ErrConflict
	}
	return err
}
