package stocks

import (
	"context"
	"errors"
	"fmt"

	stockRepo "github.com/m04kA/SMC-EventStockService/internal/infra/storage/stock"
	offerClient "github.com/m04kA/SMC-EventStockService/internal/integrations/offerservice"
	"github.com/m04kA/SMC-EventStockService/internal/service/stocks/models"
)

// Service сервис для работы с сохраненными стоками
type Service struct {
	stockRepo    StockRepository
	txManager    TransactionManager
	offerClient  OfferServiceClient
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса стоков
func NewService(
	stockRepo StockRepository,
	txManager TransactionManager,
	offerClient OfferServiceClient,
	logger Logger,
) *Service {
	return &Service{
		stockRepo:    stockRepo,
		txManager:    txManager,
		offerClient:  offerClient,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByOffer получает стоки оффера по дате начала
func (s *Service) GetByOffer(ctx context.Context, offerID int64) (*models.StockListResponse, error) {
	if offerID <= 0 {
		return nil, fmt.Errorf("%w: offerID must be positive", ErrInvalidInput)
	}

	s.logger.Info("GetByOffer: fetching stocks for offer=%d", offerID)

	stocks, err := s.stockRepo.GetByOffer(ctx, offerID)
	if err != nil {
		s.logger.Error("GetByOffer: repository error for offer=%d: %v", offerID, err)
		return nil, fmt.Errorf("%w: GetByOffer - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByOffer: found %d stocks for offer=%d", len(stocks), offerID)
	return models.FromDomainStocks(offerID, stocks, s.timeProvider.Now()), nil
}

// Delete удаляет сток, если на него нет бронирований.
// Проверка и удаление выполняются в одной SERIALIZABLE транзакции,
// удаление дополнительно условно по booked_quantity = 0.
func (s *Service) Delete(ctx context.Context, stockID int64) error {
	if stockID <= 0 {
		return fmt.Errorf("%w: stockID must be positive", ErrInvalidInput)
	}

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		stock, err := s.stockRepo.GetByID(txCtx, stockID)
		if err != nil {
			return err
		}
		if stock.BookedQuantity > 0 {
			return ErrStockHasBookings
		}

		if err := s.stockRepo.Delete(txCtx, stockID); err != nil {
			if errors.Is(err, stockRepo.ErrStockNotFound) {
				return s.resolveDeleteConflict(txCtx, stockID)
			}
			return err
		}
		return nil
	})

	switch {
	case err == nil:
		s.logger.Info("Delete: stock id=%d deleted", stockID)
		return nil
	case errors.Is(err, ErrStockHasBookings):
		s.logger.Warn("Delete: stock id=%d has bookings", stockID)
		return ErrStockHasBookings
	case errors.Is(err, ErrStockNotFound), errors.Is(err, stockRepo.ErrStockNotFound):
		s.logger.Warn("Delete: stock id=%d not found", stockID)
		return ErrStockNotFound
	default:
		s.logger.Error("Delete: failed to delete stock id=%d: %v", stockID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}
}

// resolveDeleteConflict определяет, почему условное удаление не затронуло строку:
// сток уже удален или на него появились бронирования
func (s *Service) resolveDeleteConflict(ctx context.Context, stockID int64) error {
	stock, err := s.stockRepo.GetByID(ctx, stockID)
	if err != nil {
		return err
	}
	s.logger.Warn("Delete: stock id=%d changed concurrently (booked=%d)", stockID, stock.BookedQuantity)
	return ErrStockHasBookings
}

// ExportCalendar выгружает стоки оффера в iCalendar (один VEVENT на сток)
func (s *Service) ExportCalendar(ctx context.Context, offerID int64) ([]byte, error) {
	if offerID <= 0 {
		return nil, fmt.Errorf("%w: offerID must be positive", ErrInvalidInput)
	}

	offer, err := s.offerClient.GetOffer(ctx, offerID)
	if err != nil {
		if errors.Is(err, offerClient.ErrOfferNotFound) {
			s.logger.Warn("ExportCalendar: offer id=%d not found", offerID)
			return nil, ErrOfferNotFound
		}
		s.logger.Error("ExportCalendar: failed to get offer id=%d: %v", offerID, err)
		return nil, fmt.Errorf("%w: ExportCalendar - offer service error: %v", ErrInternal, err)
	}

	stocks, err := s.stockRepo.GetByOffer(ctx, offerID)
	if err != nil {
		s.logger.Error("ExportCalendar: repository error for offer=%d: %v", offerID, err)
		return nil, fmt.Errorf("%w: ExportCalendar - repository error: %v", ErrInternal, err)
	}
	if len(stocks) == 0 {
		return nil, ErrNoStocks
	}

	data, err := encodeCalendar(offer, stocks, s.timeProvider.Now())
	if err != nil {
		s.logger.Error("ExportCalendar: failed to encode calendar for offer=%d: %v", offerID, err)
		return nil, fmt.Errorf("%w: ExportCalendar - encode: %v", ErrInternal, err)
	}

	s.logger.Info("ExportCalendar: exported %d stocks for offer=%d", len(stocks), offerID)
	return data, nil
}
