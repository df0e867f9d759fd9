package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yogi-fashion/embroidery-service/internal/apperror"
	"github.com/yogi-fashion/embroidery-service/internal/models"
	"github.com/yogi-fashion/embroidery-service/internal/validation"
)

var lenient = validation.NumericPolicy{AllowNegative: true}

func TestClientService_ValidationNeverReachesStorage(t *testing.T) {
	svcs, n := setupServices(t, lenient)
	ctx := context.Background()

	_, err := svcs.Client.Create(ctx, models.ClientRequest{Name: "Anita", Contact: "", Address: ""})
	var fe *apperror.FieldError
	require.True(t, errors.As(err, &fe))
	assert.True(t, errors.Is(err, apperror.ErrMissingField))
	assert.ElementsMatch(t, []string{"contact", "address"}, fe.Fields)

	_, err = svcs.Client.Create(ctx, models.ClientRequest{Name: "Anita", Contact: "12345", Address: "Surat"})
	assert.True(t, errors.Is(err, apperror.ErrInvalidFormat))

	list, err := svcs.Client.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Empty(t, n.Events())
}

func TestClientService_CRUDPublishesEvents(t *testing.T) {
	svcs, n := setupServices(t, lenient)
	ctx := context.Background()

	c, err := svcs.Client.Create(ctx, models.ClientRequest{Name: "Anita Textiles", Contact: "+911234567890", Address: "Surat"})
	require.NoError(t, err)

	_, err = svcs.Client.Create(ctx, models.ClientRequest{Name: "Copy", Contact: "+911234567890", Address: "Surat"})
	assert.True(t, errors.Is(err, apperror.ErrDuplicateContact))

	updated, err := svcs.Client.Update(ctx, c.ID, models.ClientRequest{Name: "Anita Textiles", Contact: "+911234567890", Address: "Varachha"})
	require.NoError(t, err)
	assert.Equal(t, "Varachha", updated.Address)

	found, err := svcs.Client.Search(ctx, "ANITA")
	require.NoError(t, err)
	require.Len(t, found, 1)

	require.NoError(t, svcs.Client.Delete(ctx, c.ID))
	assert.True(t, errors.Is(svcs.Client.Delete(ctx, c.ID), apperror.ErrNotFound))

	assert.Equal(t, []models.ChangeEvent{
		{Entity: models.EntityClient, Action: models.ActionCreated, ID: c.ID},
		{Entity: models.EntityClient, Action: models.ActionUpdated, ID: c.ID},
		{Entity: models.EntityClient, Action: models.ActionDeleted, ID: c.ID},
	}, n.Events())
}

func TestEmployeeService_ContactNotFormatChecked(t *testing.T) {
	svcs, _ := setupServices(t, lenient)

	e, err := svcs.Employee.Create(context.Background(), models.EmployeeRequest{Name: "Ravi", Contact: "ask at front desk", Role: "Tailor"})
	require.NoError(t, err)
	assert.Equal(t, "ask at front desk", e.Contact)

	_, err = svcs.Employee.Update(context.Background(), uuid.New(), models.EmployeeRequest{Name: "Ravi", Contact: "x", Role: "Tailor"})
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestProductService_NumericParsing(t *testing.T) {
	svcs, _ := setupServices(t, lenient)
	ctx := context.Background()

	p, err := svcs.Product.Create(ctx, models.ProductRequest{Description: "Peacock", EmbroideryType: "Zari", Price: "19.99", Stock: "10"})
	require.NoError(t, err)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("19.99")))
	assert.Equal(t, 10, p.Stock)

	_, err = svcs.Product.Create(ctx, models.ProductRequest{Description: "Peacock", EmbroideryType: "Zari", Price: "abc", Stock: "10"})
	assert.True(t, errors.Is(err, apperror.ErrInvalidNumeric))

	_, err = svcs.Product.Create(ctx, models.ProductRequest{Description: "Peacock", EmbroideryType: "Zari", Price: "1", Stock: "10.5"})
	assert.True(t, errors.Is(err, apperror.ErrInvalidNumeric))

	_, err = svcs.Product.Create(ctx, models.ProductRequest{Description: "Refund", EmbroideryType: "Zari", Price: "-5", Stock: "-1"})
	assert.NoError(t, err)
}

func TestProductService_StrictPolicy(t *testing.T) {
	svcs, _ := setupServices(t, validation.NumericPolicy{AllowNegative: false})

	_, err := svcs.Product.Create(context.Background(), models.ProductRequest{Description: "Refund", EmbroideryType: "Zari", Price: "-5", Stock: "1"})
	assert.True(t, errors.Is(err, apperror.ErrInvalidNumeric))

	_, err = svcs.Expense.Create(context.Background(), models.ExpenseRequest{Description: "Refund", Amount: "-5", Date: "2024-01-01"})
	assert.True(t, errors.Is(err, apperror.ErrInvalidNumeric))
}

func TestDashboardService_Summary(t *testing.T) {
	svcs, _ := setupServices(t, lenient)
	ctx := context.Background()

	sum, err := svcs.Dashboard.Summary(ctx)
	require.NoError(t, err)
	assert.True(t, sum.TotalExpense.IsZero())
	assert.True(t, sum.InventoryValue.IsZero())

	_, err = svcs.Client.Create(ctx, models.ClientRequest{Name: "Anita", Contact: "9876543210", Address: "Surat"})
	require.NoError(t, err)
	_, err = svcs.Employee.Create(ctx, models.EmployeeRequest{Name: "Ravi", Contact: "1", Role: "Tailor"})
	require.NoError(t, err)
	_, err = svcs.Product.Create(ctx, models.ProductRequest{Description: "A", EmbroideryType: "Zari", Price: "19.99", Stock: "10"})
	require.NoError(t, err)
	_, err = svcs.Product.Create(ctx, models.ProductRequest{Description: "B", EmbroideryType: "Aari", Price: "2.5", Stock: "4"})
	require.NoError(t, err)
	_, err = svcs.Expense.Create(ctx, models.ExpenseRequest{Description: "Thread", Amount: "100.10", Date: "2024-03-01"})
	require.NoError(t, err)
	_, err = svcs.Expense.Create(ctx, models.ExpenseRequest{Description: "Needles", Amount: "0.20", Date: "2024-03-02"})
	require.NoError(t, err)

	sum, err = svcs.Dashboard.Summary(ctx)
	require.NoError(t, err)
	assert.True(t, sum.TotalExpense.Equal(decimal.RequireFromString("100.30")), "total %s", sum.TotalExpense)
	assert.True(t, sum.InventoryValue.Equal(decimal.RequireFromString("209.9")), "inventory %s", sum.InventoryValue)
	assert.Equal(t, 1, sum.Clients)
	assert.Equal(t, 1, sum.Employees)
	assert.Equal(t, 2, sum.Products)
	assert.Equal(t, 2, sum.Expenses)
}

func TestClientService_TrimsFormValues(t *testing.T) {
	svcs, _ := setupServices(t, lenient)
	ctx := context.Background()

	c, err := svcs.Client.Create(ctx, models.ClientRequest{Name: "  Anita  ", Contact: " 9876543210 ", Address: " Surat "})
	require.NoError(t, err)

	got, err := svcs.Client.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Anita", got.Name)
	assert.Equal(t, "9876543210", got.Contact)
	assert.Equal(t, "Surat", got.Address)

	// Padding does not get around the uniqueness check.
	_, err = svcs.Client.Create(ctx, models.ClientRequest{Name: "Other", Contact: "9876543210  ", Address: "Mumbai"})
	assert.True(t, errors.Is(err, apperror.ErrDuplicateContact))

	updated, err := svcs.Client.Update(ctx, c.ID, models.ClientRequest{Name: "Anita T ", Contact: "\t9876543210", Address: "Varachha\n"})
	require.NoError(t, err)
	assert.Equal(t, "Anita T", updated.Name)
	assert.Equal(t, "9876543210", updated.Contact)
	assert.Equal(t, "Varachha", updated.Address)
}

func TestEntityServices_TrimFormValues(t *testing.T) {
	svcs, _ := setupServices(t, lenient)
	ctx := context.Background()

	e, err := svcs.Employee.Create(ctx, models.EmployeeRequest{Name: " Ravi ", Contact: " ext 12 ", Role: " Tailor "})
	require.NoError(t, err)
	assert.Equal(t, "Ravi", e.Name)
	assert.Equal(t, "ext 12", e.Contact)
	assert.Equal(t, "Tailor", e.Role)

	p, err := svcs.Product.Create(ctx, models.ProductRequest{Description: " Peacock ", EmbroideryType: " Zari ", Price: " 19.99 ", Stock: " 10 "})
	require.NoError(t, err)
	assert.Equal(t, "Peacock", p.Description)
	assert.Equal(t, "Zari", p.EmbroideryType)
	assert.Equal(t, 10, p.Stock)

	x, err := svcs.Expense.Create(ctx, models.ExpenseRequest{Description: " Thread ", Amount: " 5 ", Date: " 2024-03-01 "})
	require.NoError(t, err)
	assert.Equal(t, "Thread", x.Description)
	assert.Equal(t, "2024-03-01", x.Date)
}
