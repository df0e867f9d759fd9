package handler

import (
	"net/http"

	"github.com/yogi-fashion/embroidery-service/internal/models"
	"github.com/yogi-fashion/embroidery-service/internal/service"
)

// NewClientHandler serves /clients. GET with ?q= searches by name or contact.
func NewClientHandler(svc *service.ClientService) http.Handler {
	h := newEntityHandler[models.Client, models.ClientRequest]("/clients", svc)
	h.list = func(r *http.Request) ([]models.Client, error) {
		if q := r.URL.Query().Get("q"); q != "" {
			return svc.Search(r.Context(), q)
		}
		return svc.List(r.Context())
	}
	return h
}

func NewEmployeeHandler(svc *service.EmployeeService) http.Handler {
	return newEntityHandler[models.Employee, models.EmployeeRequest]("/employees", svc)
}

func NewProductHandler(svc *service.ProductService) http.Handler {
	return newEntityHandler[models.Product, models.ProductRequest]("/products", svc)
}

func NewExpenseHandler(svc *service.ExpenseService) http.Handler {
	return newEntityHandler[models.Expense, models.ExpenseRequest]("/expenses", svc)
}
