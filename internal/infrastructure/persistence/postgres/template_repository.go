package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/application/ports"
	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/domain"
)

const templateColumns = `id, title, description, type, category, clauses, is_public, created_at, updated_at`

type TemplateRepository struct {
	pool *pgxpool.Pool
}

func NewTemplateRepository(pool *pgxpool.Pool) *TemplateRepository {
	return &TemplateRepository{pool: pool}
}

func (r *TemplateRepository) GetByID(ctx context.Context, id domain.TemplateID) (*domain.ContractTemplate, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+templateColumns+` FROM contract_templates WHERE id = $1`, id.UUID)
	t, err := scanTemplate(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return t, nil
}

func (r *TemplateRepository) ListPublic(ctx context.Context, filter ports.TemplateFilter) ([]*domain.ContractTemplate, error) {
	sql := `SELECT ` + templateColumns + ` FROM contract_templates WHERE is_public`
	var args []interface{}
	if filter.Category != "" {
		args = append(args, filter.Category)
		sql += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		sql += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		sql += fmt.Sprintf(" AND (title ILIKE $%d OR description ILIKE $%d)", len(args), len(args))
	}
	sql += " ORDER BY title"

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.ContractTemplate
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func scanTemplate(row pgx.Row) (*domain.ContractTemplate, error) {
	var (
		t           domain.ContractTemplate
		id          pgtype.UUID
		clausesJSON []byte
	)
	err := row.Scan(&id, &t.Title, &t.Description, &t.Type, &t.Category, &clausesJSON, &t.IsPublic, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	t.ID = domain.NewTemplateID(uuid.UUID(id.Bytes))

	var clauseRecords []clauseRecord
	if err := json.Unmarshal(clausesJSON, &clauseRecords); err != nil {
		return nil, err
	}
	for _, cl := range clauseRecords {
		t.Clauses = append(t.Clauses, domain.Clause{Title: cl.Title, Content: cl.Content, Order: cl.Order})
	}
	return &t, nil
}

var _ ports.TemplateRepository = (*TemplateRepository)(nil)
