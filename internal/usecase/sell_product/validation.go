package sell_product

import (
	"fmt"
	"strings"
)

// validateRequest проверяет только форму запроса; количество проверяет салон после поиска товара
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.ProductName) == "" {
		return fmt.Errorf("%w: product name is required", ErrInvalidInput)
	}
	return nil
}
