package stock

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-EventStockService/internal/domain"
	"github.com/m04kA/SMC-EventStockService/pkg/dbmetrics"
	"github.com/m04kA/SMC-EventStockService/pkg/psqlbuilder"
)

const (
	tableName = "stocks"

	// insertBatchSize строк в одном INSERT: 6 параметров на строку, лимит PostgreSQL - 65535 параметров
	insertBatchSize = 1000
)

var stockColumns = []string{
	"id",
	"offer_id",
	"price_category_id",
	"quantity",
	"booked_quantity",
	"beginning_datetime",
	"booking_limit_datetime",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы со стоками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория стоков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateBatch сохраняет сгенерированные стоки оффера и возвращает их в том же порядке.
// Вставка идет пачками; чтобы сохранение было атомарным, вызывать внутри транзакции (txmanager.Do).
func (r *Repository) CreateBatch(ctx context.Context, offerID int64, generated []domain.GeneratedStock) ([]*domain.Stock, error) {
	stocks := make([]*domain.Stock, 0, len(generated))
	if len(generated) == 0 {
		return stocks, nil
	}

	for _, batch := range chunk(generated, insertBatchSize) {
		created, err := r.insertBatch(ctx, offerID, batch)
		if err != nil {
			return nil, err
		}
		stocks = append(stocks, created...)
	}

	return stocks, nil
}

func (r *Repository) insertBatch(ctx context.Context, offerID int64, batch []domain.GeneratedStock) ([]*domain.Stock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Insert(tableName).
		Columns(
			"offer_id",
			"price_category_id",
			"quantity",
			"booked_quantity",
			"beginning_datetime",
			"booking_limit_datetime",
		)

	stocks := make([]*domain.Stock, 0, len(batch))
	for _, g := range batch {
		s, err := toStock(offerID, g)
		if err != nil {
			return nil, err
		}
		stocks = append(stocks, s)

		builder = builder.Values(
			s.OfferID,
			s.PriceCategoryID,
			quantityValue(s.Quantity),
			s.BookedQuantity,
			s.BeginningDatetime,
			s.BookingLimitDatetime,
		)
	}

	query, args, err := builder.Suffix("RETURNING id, created_at, updated_at").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateBatch - build insert query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateBatch - execute insert: %v", classifyExecError(err), err)
	}
	defer rows.Close()

	// RETURNING отдает строки в порядке VALUES
	i := 0
	for rows.Next() {
		if i >= len(stocks) {
			return nil, fmt.Errorf("%w: CreateBatch - more rows returned than inserted", ErrScanRow)
		}
		if err := rows.Scan(&stocks[i].ID, &stocks[i].CreatedAt, &stocks[i].UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: CreateBatch - scan returning: %v", ErrScanRow, err)
		}
		i++
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CreateBatch - iterate returning: %v", classifyExecError(err), err)
	}
	if i != len(stocks) {
		return nil, fmt.Errorf("%w: CreateBatch - inserted %d of %d rows", ErrExecQuery, i, len(stocks))
	}

	return stocks, nil
}

// GetByID получает сток по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Stock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(stockColumns...).
		From(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanStock(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStockNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan stock: %v", ErrScanRow, err)
	}

	return s, nil
}

// GetByOffer получает стоки оффера, отсортированные по дате начала
func (r *Repository) GetByOffer(ctx context.Context, offerID int64) ([]*domain.Stock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(stockColumns...).
		From(tableName).
		Where(squirrel.Eq{"offer_id": offerID}).
		OrderBy("beginning_datetime ASC", "price_category_id ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOffer - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOffer - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	stocks := make([]*domain.Stock, 0)
	for rows.Next() {
		s, err := scanStock(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByOffer - scan stock: %v", ErrScanRow, err)
		}
		stocks = append(stocks, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByOffer - iterate rows: %v", ErrExecQuery, err)
	}

	return stocks, nil
}

// CountByOffer возвращает количество стоков оффера
func (r *Repository) CountByOffer(ctx context.Context, offerID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From(tableName).
		Where(squirrel.Eq{"offer_id": offerID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountByOffer - build count query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByOffer - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// Delete удаляет сток по ID, только если на него нет бронирований.
// ErrStockNotFound означает, что подходящей строки нет: сток удален или уже забронирован.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Eq{"id": id, "booked_quantity": 0}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrStockNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanStock(row rowScanner) (*domain.Stock, error) {
	var (
		s        domain.Stock
		quantity sql.NullInt64
	)

	err := row.Scan(
		&s.ID,
		&s.OfferID,
		&s.PriceCategoryID,
		&quantity,
		&s.BookedQuantity,
		&s.BeginningDatetime,
		&s.BookingLimitDatetime,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.Quantity = quantityFromNull(quantity)
	s.BeginningDatetime = s.BeginningDatetime.UTC()
	s.BookingLimitDatetime = s.BookingLimitDatetime.UTC()

	return &s, nil
}

// toStock переводит сгенерированный сток в строку таблицы
func toStock(offerID int64, g domain.GeneratedStock) (*domain.Stock, error) {
	beginning, err := time.Parse(time.RFC3339, g.BeginningDatetimeUTC)
	if err != nil {
		return nil, fmt.Errorf("%w: beginning %q", ErrInvalidDatetime, g.BeginningDatetimeUTC)
	}
	bookingLimit, err := time.Parse(time.RFC3339, g.BookingLimitDatetimeUTC)
	if err != nil {
		return nil, fmt.Errorf("%w: booking limit %q", ErrInvalidDatetime, g.BookingLimitDatetimeUTC)
	}

	return &domain.Stock{
		OfferID:              offerID,
		PriceCategoryID:      g.PriceCategoryID,
		Quantity:             g.Quantity,
		BeginningDatetime:    beginning.UTC(),
		BookingLimitDatetime: bookingLimit.UTC(),
	}, nil
}

// quantityValue: NULL в БД - неограниченное количество
func quantityValue(q domain.Quantity) interface{} {
	if n, ok := q.Get(); ok {
		return int64(n)
	}
	return nil
}

func quantityFromNull(n sql.NullInt64) domain.Quantity {
	if !n.Valid {
		return domain.Unlimited()
	}
	return domain.Limited(int(n.Int64))
}

// classifyExecError отделяет нарушения ограничений (класс 23) от прочих ошибок PostgreSQL
func classifyExecError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Class() == "23" {
		return ErrConstraintViolation
	}
	return ErrExecQuery
}

func chunk(items []domain.GeneratedStock, size int) [][]domain.GeneratedStock {
	if size <= 0 {
		size = len(items)
	}
	chunks := make([][]domain.GeneratedStock, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, items[start:end])
	}
	return chunks
}
