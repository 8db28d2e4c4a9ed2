package bookings

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	txManager TransactionManager
	metrics   Metrics
	logger    Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(txManager TransactionManager, metrics Metrics, logger Logger) *Service {
	return &Service{
		txManager: txManager,
		metrics:   metrics,
		logger:    logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	var resp *models.BookingResponse
	err := s.txManager.DoReadOnly(ctx, func(_ context.Context, salon *domain.Salon) error {
		booking := salon.FindBooking(id)
		if booking == nil {
			return fmt.Errorf("%w: %s", ErrBookingNotFound, id)
		}
		resp = models.FromDomainBooking(booking)
		return nil
	})
	if err != nil {
		s.logger.Warn("GetByID: booking id=%s not found", id)
		return nil, err
	}

	return resp, nil
}

// GetBookings получает все бронирования салона в порядке создания
// Опционально фильтрует по статусу
func (s *Service) GetBookings(ctx context.Context, req *models.GetBookingsRequest) (*models.BookingListResponse, error) {
	var status *domain.BookingStatus
	if req != nil && req.Status != nil {
		parsed, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetBookings: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		status = &parsed
	}

	var resp *models.BookingListResponse
	err := s.txManager.DoReadOnly(ctx, func(_ context.Context, salon *domain.Salon) error {
		bookings := salon.Bookings()
		if status != nil {
			filtered := make([]*domain.Booking, 0, len(bookings))
			for _, b := range bookings {
				if b.Status() == *status {
					filtered = append(filtered, b)
				}
			}
			bookings = filtered
		}
		resp = models.FromDomainBookingList(bookings)
		return nil
	})
	if err != nil {
		s.logger.Error("GetBookings: %v", err)
		return nil, err
	}

	s.logger.Info("GetBookings: fetched %d bookings", len(resp.Bookings))
	return resp, nil
}

// GetHistory возвращает выполненные и отмененные бронирования
func (s *Service) GetHistory(ctx context.Context) (*models.BookingListResponse, error) {
	var resp *models.BookingListResponse
	err := s.txManager.DoReadOnly(ctx, func(_ context.Context, salon *domain.Salon) error {
		resp = models.FromDomainBookingList(salon.History())
		return nil
	})
	if err != nil {
		s.logger.Error("GetHistory: %v", err)
		return nil, err
	}

	return resp, nil
}

// Cancel отменяет подтвержденное бронирование
func (s *Service) Cancel(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%s", id)

	var resp *models.BookingResponse
	err := s.txManager.Do(ctx, func(_ context.Context, salon *domain.Salon) error {
		booking := salon.FindBooking(id)
		if booking == nil {
			return fmt.Errorf("%w: %s", ErrBookingNotFound, id)
		}

		if booking.Status() != domain.StatusConfirmed {
			return fmt.Errorf("%w: status %s", ErrCannotCancel, booking.Status())
		}

		if err := salon.CancelBooking(booking); err != nil {
			return err
		}

		resp = models.FromDomainBooking(booking)
		return nil
	})
	if err != nil {
		s.metrics.BusinessError("cancel_booking")
		s.logger.Warn("Cancel: booking id=%s: %v", id, err)
		return nil, err
	}

	s.metrics.BookingCancelled()
	s.logger.Info("Cancel: successfully cancelled booking id=%s", id)
	return resp, nil
}
