package service

import (
	"github.com/yogi-fashion/embroidery-service/internal/db/repository"
	"github.com/yogi-fashion/embroidery-service/internal/validation"
)

// Services groups every service the shells call into
type Services struct {
	Auth      *AuthService
	Client    *ClientService
	Employee  *EmployeeService
	Product   *ProductService
	Expense   *ExpenseService
	Dashboard *DashboardService
}

// NewServices wires the services over repos. n may be nil.
func NewServices(repos *repository.Repositories, jwtConfig JWTConfig, bcryptCost int, policy validation.NumericPolicy, n ChangeNotifier) (*Services, error) {
	auth, err := NewAuthService(repos.User, jwtConfig, bcryptCost)
	if err != nil {
		return nil, err
	}

	v := validation.New()

	return &Services{
		Auth:      auth,
		Client:    NewClientService(repos.Client, v, n),
		Employee:  NewEmployeeService(repos.Employee, v, n),
		Product:   NewProductService(repos.Product, v, policy, n),
		Expense:   NewExpenseService(repos.Expense, v, policy, n),
		Dashboard: NewDashboardService(repos),
	}, nil
}
