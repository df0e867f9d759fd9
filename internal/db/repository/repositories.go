package repository

import (
	"github.com/yogi-fashion/embroidery-service/internal/db"
	"github.com/yogi-fashion/embroidery-service/internal/validation"
)

// Repositories provides access to all repository instances
type Repositories struct {
	User     *UserRepository
	Client   *ClientRepository
	Employee *EmployeeRepository
	Product  *ProductRepository
	Expense  *ExpenseRepository
}

// NewRepositories creates a new repositories container
func NewRepositories(database *db.DB, policy validation.NumericPolicy) *Repositories {
	return &Repositories{
		User:     NewUserRepository(database.DB),
		Client:   NewClientRepository(database.DB),
		Employee: NewEmployeeRepository(database.DB),
		Product:  NewProductRepository(database.DB, policy),
		Expense:  NewExpenseRepository(database.DB, policy),
	}
}
