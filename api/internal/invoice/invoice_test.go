package invoice_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billbot/api/internal/extract"
	"billbot/api/internal/invoice"
)

var items = []extract.LineItem{
	{ItemName: "Shirt", Quantity: 6, UnitPrice: 1500},
	{ItemName: "Dupatta", Quantity: 2.5, UnitPrice: 800},
}

func TestBuildNoItems(t *testing.T) {
	_, err := invoice.Build("Ali Khan", "+923001234567", nil, "PKR", time.Now())
	assert.ErrorIs(t, err, invoice.ErrNoItems)

	_, err = invoice.Build("Ali Khan", "+923001234567", []extract.LineItem{}, "PKR", time.Now())
	assert.ErrorIs(t, err, invoice.ErrNoItems)
}

func TestBuildDerivedFields(t *testing.T) {
	now := time.Date(2024, time.March, 9, 14, 5, 6, 0, time.UTC)

	req, err := invoice.Build("Ali Khan", "+923001234567", items, "PKR", now)
	require.NoError(t, err)

	assert.Equal(t, "INV-20240309140506", req.Number)
	assert.Equal(t, "Mar 09, 2024", req.Date)
	assert.Equal(t, "Mar 16, 2024", req.DueDate)
	assert.Equal(t, "Ali Khan", req.To)
	assert.Equal(t, "PKR", req.Currency)
	assert.NotEmpty(t, req.From)
	assert.NotEmpty(t, req.Notes)
	assert.NotEmpty(t, req.Terms)
}

func TestBuildDueDateCrossesYearBoundary(t *testing.T) {
	now := time.Date(2024, time.December, 28, 10, 0, 0, 0, time.UTC)

	req, err := invoice.Build("Ali Khan", "+923001234567", items, "USD", now)
	require.NoError(t, err)

	assert.Equal(t, "Dec 28, 2024", req.Date)
	assert.Equal(t, "Jan 04, 2025", req.DueDate)
}

func TestFormValuesItemRows(t *testing.T) {
	now := time.Date(2024, time.March, 9, 14, 5, 6, 0, time.UTC)
	req, err := invoice.Build("Ali Khan", "+923001234567", items, "PKR", now)
	require.NoError(t, err)

	v := req.FormValues()
	assert.Equal(t, "Shirt", v.Get("items[0][name]"))
	assert.Equal(t, "6", v.Get("items[0][quantity]"))
	assert.Equal(t, "1500", v.Get("items[0][unit_cost]"))
	assert.Equal(t, "Dupatta", v.Get("items[1][name]"))
	assert.Equal(t, "2.5", v.Get("items[1][quantity]"))
	assert.Equal(t, "800", v.Get("items[1][unit_cost]"))
	assert.Equal(t, "INV-20240309140506", v.Get("number"))
	assert.Equal(t, "PKR", v.Get("currency"))
}
