package forms

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/formhub/internal/common"
)

// PostgresRepository stores forms and their submissions. Submissions are
// child rows rather than an embedded array, so an append is a single
// INSERT and never a read-modify-write of the parent form.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) Create(ctx context.Context, form *Form) (*Form, error) {

	fields, err := json.Marshal(form.Fields)
	if err != nil {
		return nil, fmt.Errorf("error encoding fields: %v", err)
	}

	query :=
		`INSERT INTO forms (admin_id, form_name, fields)
         VALUES ($1::uuid, $2, $3)
		 RETURNING id
		 `

	err = r.db.QueryRowContext(ctx, query,
		form.AdminID, form.FormName, fields).Scan(&form.ID)

	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return form, nil
}

func (r *PostgresRepository) ListByAdmin(ctx context.Context, adminID string) ([]Form, error) {
	query :=
		`SELECT f.id, f.admin_id, f.form_name, f.fields, f.created_at,
		        s.submitted_at, s.data
		 FROM forms f
		 LEFT JOIN submissions s ON s.form_id = f.id
		 WHERE f.admin_id = $1::uuid
		 ORDER BY f.created_at, f.id, s.id
		 `

	rows, err := r.db.QueryContext(ctx, query, adminID)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}
	defer rows.Close()

	result := make([]Form, 0)
	index := make(map[string]int)

	for rows.Next() {
		var (
			form        Form
			fields      []byte
			submittedAt sql.NullTime
			data        []byte
		)
		if err := rows.Scan(&form.ID, &form.AdminID, &form.FormName, &fields, &form.CreatedAt, &submittedAt, &data); err != nil {
			return nil, fmt.Errorf("error scanning row: %v", err)
		}

		i, ok := index[form.ID]
		if !ok {
			if err := json.Unmarshal(fields, &form.Fields); err != nil {
				return nil, fmt.Errorf("error decoding fields: %v", err)
			}
			form.Submissions = make([]Submission, 0)
			result = append(result, form)
			i = len(result) - 1
			index[form.ID] = i
		}

		// row without a joined submission
		if !submittedAt.Valid {
			continue
		}

		sub := Submission{SubmittedAt: submittedAt.Time}
		if err := json.Unmarshal(data, &sub.Data); err != nil {
			return nil, fmt.Errorf("error decoding submission data: %v", err)
		}
		result[i].Submissions = append(result[i].Submissions, sub)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %v", err)
	}

	return result, nil
}

// AppendSubmission inserts a submission row if and only if the form
// exists. The insert-from-select form keeps the existence check and the
// append in one atomic statement.
func (r *PostgresRepository) AppendSubmission(ctx context.Context, formID string, data map[string]any) error {

	if data == nil {
		data = map[string]any{}
	}

	encoded, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error encoding submission data: %v", err)
	}

	query :=
		`INSERT INTO submissions (form_id, data)
		 SELECT id, $2 FROM forms WHERE id = $1::uuid
		 `

	res, err := r.db.ExecContext(ctx, query, formID, encoded)
	if err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading affected rows: %v", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
