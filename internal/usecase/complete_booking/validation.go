package complete_booking

import (
	"fmt"
	"strings"
)

func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.BookingID) == "" {
		return fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}
	return nil
}
