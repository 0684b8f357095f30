package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/application/ports"
	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/domain"
)

// partyRecord is the JSONB shape of one party inside a contract row.
type partyRecord struct {
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	DocumentType   string     `json:"documentType"`
	DocumentNumber string     `json:"documentNumber"`
	Signed         bool       `json:"signed"`
	SignedAt       *time.Time `json:"signedAt,omitempty"`
}

type clauseRecord struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Order   int    `json:"order"`
}

const contractColumns = `id, title, description, type, status, parties, clauses, value, start_date, end_date, content, fingerprint, created_by, created_at, updated_at`

// ContractRepository persists contracts as single rows: parties and
// clauses live in JSONB columns so every mutation is one atomic UPDATE.
type ContractRepository struct {
	pool *pgxpool.Pool
}

func NewContractRepository(pool *pgxpool.Pool) *ContractRepository {
	return &ContractRepository{pool: pool}
}

func (r *ContractRepository) Create(ctx context.Context, c *domain.Contract) error {
	parties, clauses, err := encodeAggregates(c)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO contracts (`+contractColumns+`)
VALUES ($1, $2, $3, $4, $5, $6::jsonb, $7::jsonb, $8, $9, $10, $11, $12, $13, $14, $15)
`,
		c.ID.UUID, c.Title, c.Description, c.Type, string(c.Status),
		parties, clauses,
		c.Value, c.StartDate, c.EndDate,
		c.Content, c.Fingerprint, c.CreatedBy.UUID, c.CreatedAt, c.UpdatedAt,
	)
	return err
}

func (r *ContractRepository) GetByID(ctx context.Context, id domain.ContractID) (*domain.Contract, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+contractColumns+` FROM contracts WHERE id = $1`, id.UUID)
	c, err := scanContract(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

// Update writes the whole aggregate in one statement, so a signature and
// the transition it triggers commit together.
func (r *ContractRepository) Update(ctx context.Context, c *domain.Contract) error {
	parties, clauses, err := encodeAggregates(c)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
UPDATE contracts
SET title = $2, description = $3, type = $4, status = $5,
    parties = $6::jsonb, clauses = $7::jsonb,
    value = $8, start_date = $9, end_date = $10,
    content = $11, fingerprint = $12, updated_at = $13
WHERE id = $1
`,
		c.ID.UUID, c.Title, c.Description, c.Type, string(c.Status),
		parties, clauses,
		c.Value, c.StartDate, c.EndDate,
		c.Content, c.Fingerprint, c.UpdatedAt,
	)
	return err
}

func (r *ContractRepository) Delete(ctx context.Context, id domain.ContractID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM contracts WHERE id = $1`, id.UUID)
	return err
}

func (r *ContractRepository) List(ctx context.Context, owner domain.UserID, filter ports.ContractFilter) ([]*domain.Contract, error) {
	sql := `SELECT ` + contractColumns + ` FROM contracts WHERE created_by = $1`
	args := []interface{}{owner.UUID}
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		sql += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		sql += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		sql += fmt.Sprintf(" AND title ILIKE $%d", len(args))
	}
	sql += " ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Contract
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *ContractRepository) Stats(ctx context.Context, owner domain.UserID, now time.Time) (*ports.ContractStats, error) {
	stats := &ports.ContractStats{}

	rows, err := r.pool.Query(ctx, `SELECT status, COUNT(*) FROM contracts WHERE created_by = $1 GROUP BY status`, owner.UUID)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var bucket ports.StatusCount
		var status string
		if err := rows.Scan(&status, &bucket.Count); err != nil {
			rows.Close()
			return nil, err
		}
		bucket.Status = domain.Status(status)
		stats.ByStatus = append(stats.ByStatus, bucket)
		stats.Total += bucket.Count
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = r.pool.Query(ctx, `SELECT type, COUNT(*) FROM contracts WHERE created_by = $1 GROUP BY type`, owner.UUID)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var bucket ports.TypeCount
		if err := rows.Scan(&bucket.Type, &bucket.Count); err != nil {
			rows.Close()
			return nil, err
		}
		stats.ByType = append(stats.ByType, bucket)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	err = r.pool.QueryRow(ctx, `
SELECT COUNT(*) FROM contracts
WHERE created_by = $1 AND end_date IS NOT NULL AND end_date >= $2 AND end_date <= $3
`, owner.UUID, now, now.AddDate(0, 0, 30)).Scan(&stats.UpcomingExpiration)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func encodeAggregates(c *domain.Contract) (parties, clauses string, err error) {
	partyRecords := make([]partyRecord, 0, len(c.Parties))
	for _, p := range c.Parties {
		partyRecords = append(partyRecords, partyRecord{
			Name:           p.Name,
			Email:          p.Email,
			DocumentType:   string(p.DocumentType),
			DocumentNumber: p.DocumentNumber,
			Signed:         p.Signed,
			SignedAt:       p.SignedAt,
		})
	}
	clauseRecords := make([]clauseRecord, 0, len(c.Clauses))
	for _, cl := range c.Clauses {
		clauseRecords = append(clauseRecords, clauseRecord{Title: cl.Title, Content: cl.Content, Order: cl.Order})
	}
	p, err := json.Marshal(partyRecords)
	if err != nil {
		return "", "", err
	}
	cl, err := json.Marshal(clauseRecords)
	if err != nil {
		return "", "", err
	}
	return string(p), string(cl), nil
}

func scanContract(row pgx.Row) (*domain.Contract, error) {
	var (
		c           domain.Contract
		id          pgtype.UUID
		createdBy   pgtype.UUID
		partiesJSON []byte
		clausesJSON []byte
		value       pgtype.Float8
		startDate   pgtype.Timestamptz
		endDate     pgtype.Timestamptz
		status      string
	)
	err := row.Scan(
		&id, &c.Title, &c.Description, &c.Type, &status,
		&partiesJSON, &clausesJSON,
		&value, &startDate, &endDate,
		&c.Content, &c.Fingerprint, &createdBy, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.ID = domain.NewContractID(uuid.UUID(id.Bytes))
	c.CreatedBy = domain.NewUserID(uuid.UUID(createdBy.Bytes))
	c.Status = domain.Status(status)
	if value.Valid {
		v := value.Float64
		c.Value = &v
	}
	if startDate.Valid {
		t := startDate.Time
		c.StartDate = &t
	}
	if endDate.Valid {
		t := endDate.Time
		c.EndDate = &t
	}

	var partyRecords []partyRecord
	if err := json.Unmarshal(partiesJSON, &partyRecords); err != nil {
		return nil, err
	}
	for _, p := range partyRecords {
		c.Parties = append(c.Parties, domain.Party{
			Name:           p.Name,
			Email:          p.Email,
			DocumentType:   domain.DocumentType(p.DocumentType),
			DocumentNumber: p.DocumentNumber,
			Signed:         p.Signed,
			SignedAt:       p.SignedAt,
		})
	}
	var clauseRecords []clauseRecord
	if err := json.Unmarshal(clausesJSON, &clauseRecords); err != nil {
		return nil, err
	}
	for _, cl := range clauseRecords {
		c.Clauses = append(c.Clauses, domain.Clause{Title: cl.Title, Content: cl.Content, Order: cl.Order})
	}
	return &c, nil
}

var _ ports.ContractRepository = (*ContractRepository)(nil)
