package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/frozz/storefront/internal/models"
	"github.com/frozz/storefront/internal/utils"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ErrStatusChanged means the row no longer had the expected order status
// when the update ran, because another request moved it first.
var ErrStatusChanged = errors.New("quotation order status changed concurrently")

// ErrPaidQuotation means the delete was refused because payment was received.
var ErrPaidQuotation = errors.New("quotation payment already received")

type QuotationRepository interface {
	CreateQuotation(ctx context.Context, quotation *models.Quotation, clearCartOf *uuid.UUID) error
	GetQuotationByID(ctx context.Context, id int64) (*models.Quotation, error)
	ListQuotations(ctx context.Context, filter models.QuotationFilter) ([]*models.Quotation, int, error)
	UpdateQuotationStatus(ctx context.Context, id int64, status models.QuotationStatus) error
	TransitionOrderStatus(ctx context.Context, id int64, transition models.OrderTransition) error
	AttachPaymentProof(ctx context.Context, id int64, path string) error
	DeleteQuotation(ctx context.Context, id int64, allowPaid bool) error
}

type quotationRepository struct {
	DB *sql.DB
}

func NewQuotationRepo(db *sql.DB) QuotationRepository {
	return &quotationRepository{DB: db}
}

// CreateQuotation writes the header and every item in one transaction.
// When clearCartOf is set, that user's persisted cart is emptied in the same transaction.
func (r *quotationRepository) CreateQuotation(ctx context.Context, q *models.Quotation, clearCartOf *uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO quotations (created_by, client_user_id, client_kind, client_name, client_email, client_phone,
			client_departamento, client_city, notes, total, quotation_status, order_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at
	`

	err = tx.QueryRowContext(dbCtx, query,
		q.CreatedBy, q.ClientUserID, q.ClientKind, q.ClientName, q.ClientEmail, q.ClientPhone,
		q.ClientDepartamento, q.ClientCity, q.Notes, q.Total, q.QuotationStatus, q.OrderStatus,
	).Scan(&q.ID, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert quotation: %w", err)
	}

	itemQuery := `
		INSERT INTO quotation_items (quotation_id, product_id, product_name, category_name, quantity, unit_price, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	for i := range q.Items {
		item := &q.Items[i]
		item.QuotationID = q.ID

		err := tx.QueryRowContext(dbCtx, itemQuery,
			q.ID, item.ProductID, item.ProductName, item.CategoryName, item.Quantity, item.UnitPrice, item.Subtotal,
		).Scan(&item.ID)
		if err != nil {
			return fmt.Errorf("failed to insert quotation item: %w", err)
		}
	}

	if clearCartOf != nil {
		if _, err := tx.ExecContext(dbCtx, `UPDATE carts SET items = '{}'::jsonb, updated_at = NOW() WHERE user_id = $1`, *clearCartOf); err != nil {
			return fmt.Errorf("failed to clear cart: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit quotation: %w", err)
	}

	return nil
}

const quotationColumns = `
	id, created_by, client_user_id, client_kind, client_name, client_email, client_phone,
	client_departamento, client_city, notes, total, quotation_status, order_status,
	COALESCE(payment_proof, ''), stock_committed_at, created_at, updated_at`

func scanQuotation(row rowScanner) (*models.Quotation, error) {
	q := &models.Quotation{}

	var createdBy, clientUserID uuid.NullUUID
	var committedAt sql.NullTime

	err := row.Scan(&q.ID, &createdBy, &clientUserID, &q.ClientKind, &q.ClientName, &q.ClientEmail, &q.ClientPhone,
		&q.ClientDepartamento, &q.ClientCity, &q.Notes, &q.Total, &q.QuotationStatus, &q.OrderStatus,
		&q.PaymentProof, &committedAt, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if createdBy.Valid {
		q.CreatedBy = &createdBy.UUID
	}
	if clientUserID.Valid {
		q.ClientUserID = &clientUserID.UUID
	}
	if committedAt.Valid {
		q.StockCommittedAt = &committedAt.Time
	}

	return q, nil
}

func (r *quotationRepository) GetQuotationByID(ctx context.Context, id int64) (*models.Quotation, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	q, err := scanQuotation(r.DB.QueryRowContext(dbCtx, `SELECT`+quotationColumns+` FROM quotations WHERE id = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("querying database: %w", err)
	}

	query := `
		SELECT id, quotation_id, product_id, product_name, category_name, quantity, unit_price, subtotal
		FROM quotation_items
		WHERE quotation_id = $1
		ORDER BY id
	`

	rows, err := r.DB.QueryContext(dbCtx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get the quotation items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.QuotationItem

		if err := rows.Scan(&item.ID, &item.QuotationID, &item.ProductID, &item.ProductName, &item.CategoryName, &item.Quantity, &item.UnitPrice, &item.Subtotal); err != nil {
			return nil, fmt.Errorf("failed to scan quotation item: %w", err)
		}

		q.Items = append(q.Items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return q, nil
}

func (r *quotationRepository) ListQuotations(ctx context.Context, filter models.QuotationFilter) ([]*models.Quotation, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var (
		conditions []string
		args       []any
	)

	if search := strings.TrimSpace(filter.ClientSearch); search != "" {
		args = append(args, "%"+search+"%")
		conditions = append(conditions, fmt.Sprintf("(client_name ILIKE $%d OR client_email ILIKE $%d)", len(args), len(args)))
	}

	if filter.CreatedBy != nil {
		args = append(args, *filter.CreatedBy)
		conditions = append(conditions, fmt.Sprintf("created_by = $%d", len(args)))
	}

	if filter.ClientUserID != nil {
		args = append(args, *filter.ClientUserID)
		conditions = append(conditions, fmt.Sprintf("client_user_id = $%d", len(args)))
	}

	if filter.QuotationStatus != "" {
		args = append(args, filter.QuotationStatus)
		conditions = append(conditions, fmt.Sprintf("quotation_status = $%d", len(args)))
	}

	if filter.OrderStatus != "" {
		args = append(args, filter.OrderStatus)
		conditions = append(conditions, fmt.Sprintf("order_status = $%d", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int

	if err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM quotations`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting quotations: %w", err)
	}

	offset := (filter.Page - 1) * filter.PageSize

	query := `SELECT` + quotationColumns + ` FROM quotations` + where +
		fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)

	rows, err := r.DB.QueryContext(dbCtx, query, append(args, filter.PageSize, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing quotations: %w", err)
	}
	defer rows.Close()

	var quotations []*models.Quotation

	for rows.Next() {
		q, err := scanQuotation(rows)
		if err != nil {
			return nil, 0, err
		}
		quotations = append(quotations, q)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return quotations, total, nil
}

func (r *quotationRepository) UpdateQuotationStatus(ctx context.Context, id int64, status models.QuotationStatus) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `UPDATE quotations SET quotation_status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update quotation status: %w", err)
	}

	return expectOneRow(result)
}

// TransitionOrderStatus moves the order status with a compare-and-set on
// transition.From. When transition.CommitStock is set, every product on the
// quotation loses the quoted quantity, floored at zero, inside the same transaction.
func (r *quotationRepository) TransitionOrderStatus(ctx context.Context, id int64, transition models.OrderTransition) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var result sql.Result

	if transition.CommitStock {
		result, err = tx.ExecContext(dbCtx, `
			UPDATE quotations
			SET order_status = $1, stock_committed_at = NOW(), updated_at = NOW()
			WHERE id = $2 AND order_status = $3 AND stock_committed_at IS NULL
		`, transition.To, id, transition.From)
	} else {
		result, err = tx.ExecContext(dbCtx, `
			UPDATE quotations
			SET order_status = $1, updated_at = NOW()
			WHERE id = $2 AND order_status = $3
		`, transition.To, id, transition.From)
	}
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}

	if affected == 0 {
		found, err := quotationExists(dbCtx, tx, id)
		if err != nil {
			return err
		}
		if !found {
			return sql.ErrNoRows
		}
		return ErrStatusChanged
	}

	if transition.CommitStock {
		_, err = tx.ExecContext(dbCtx, `
			UPDATE products p
			SET stock = GREATEST(p.stock - qi.quantity, 0), updated_at = NOW()
			FROM (
				SELECT product_id, SUM(quantity) AS quantity
				FROM quotation_items
				WHERE quotation_id = $1
				GROUP BY product_id
			) qi
			WHERE p.id = qi.product_id
		`, id)
		if err != nil {
			return fmt.Errorf("failed to deduct stock: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit status change: %w", err)
	}

	return nil
}

func (r *quotationRepository) AttachPaymentProof(ctx context.Context, id int64, path string) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `UPDATE quotations SET payment_proof = $1, updated_at = NOW() WHERE id = $2`, path, id)
	if err != nil {
		return fmt.Errorf("failed to attach payment proof: %w", err)
	}

	return expectOneRow(result)
}

// DeleteQuotation only removes a paid quotation when allowPaid is set. The
// payment check is part of the DELETE so a concurrent transition cannot slip in.
func (r *quotationRepository) DeleteQuotation(ctx context.Context, id int64, allowPaid bool) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	paid := make([]string, 0, len(models.PostPaymentStatuses()))
	for _, status := range models.PostPaymentStatuses() {
		paid = append(paid, string(status))
	}

	result, err := r.DB.ExecContext(dbCtx,
		`DELETE FROM quotations WHERE id = $1 AND ($2 OR order_status <> ALL($3))`, id, allowPaid, pq.Array(paid))
	if err != nil {
		return fmt.Errorf("failed to delete quotation: %w", err)
	}

	if err := expectOneRow(result); !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	found, err := quotationExists(dbCtx, r.DB, id)
	if err != nil {
		return err
	}
	if found {
		return ErrPaidQuotation
	}

	return sql.ErrNoRows
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func quotationExists(ctx context.Context, q queryRower, id int64) (bool, error) {
	var found bool
	if err := q.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM quotations WHERE id = $1)`, id).Scan(&found); err != nil {
		return false, fmt.Errorf("failed to check quotation %d: %w", id, err)
	}

	return found, nil
}
