package complete_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	completeBooking "github.com/m04kA/SMC-SalonService/internal/usecase/complete_booking"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgNotFound         = "бронирование не найдено"
	msgWrongStatus      = "бронирование уже выполнено или отменено"
	msgOutOfStock       = "не хватает косметики для процедуры"
)

type Handler struct {
	useCase CompleteBookingUseCase
	logger  Logger
}

func NewHandler(useCase CompleteBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/complete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	result, err := h.useCase.Execute(r.Context(), &completeBooking.Request{BookingID: bookingID})
	if err != nil {
		switch {
		case errors.Is(err, completeBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/complete - Invalid booking ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		case errors.Is(err, domain.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/complete - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, domain.ErrBookingStatus):
			h.logger.Warn("POST /bookings/{id}/complete - Wrong status: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgWrongStatus)

		case errors.Is(err, domain.ErrItemAmount):
			h.logger.Warn("POST /bookings/{id}/complete - Out of stock: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondConflict(w, msgOutOfStock)

		default:
			h.logger.Error("POST /bookings/{id}/complete - Failed to complete booking: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/complete - Booking completed: booking_id=%s, earned=%.2f",
		result.BookingID, result.Earned)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
