package sell_product

import (
	sellProduct "github.com/m04kA/SMC-SalonService/internal/usecase/sell_product"
)

// SellProductRequest HTTP request model
type SellProductRequest struct {
	Quantity int `json:"quantity"`
}

// SellProductResponse HTTP response model
type SellProductResponse struct {
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Total       float64 `json:"total"`
	Remaining   int     `json:"remaining"`
	Balance     float64 `json:"balance"`
}

// ToUseCaseRequest конвертирует HTTP request в модель use case
func (r *SellProductRequest) ToUseCaseRequest(productName string) *sellProduct.Request {
	return &sellProduct.Request{
		ProductName: productName,
		Quantity:    r.Quantity,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *sellProduct.Response) *SellProductResponse {
	return &SellProductResponse{
		ProductName: resp.ProductName,
		Quantity:    resp.Quantity,
		Total:       resp.Total,
		Remaining:   resp.Remaining,
		Balance:     resp.Balance,
	}
}
