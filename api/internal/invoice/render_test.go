package invoice_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billbot/api/internal/invoice"
)

func TestRenderSendsFormAndReturnsBytes(t *testing.T) {
	pdf := []byte("%PDF-1.4 fake")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "Ali Khan", r.PostForm.Get("to"))
		assert.Equal(t, "Shirt", r.PostForm.Get("items[0][name]"))

		_, _ = w.Write(pdf)
	}))
	defer srv.Close()

	cl := invoice.NewClient(srv.URL, "test-key")
	req, err := invoice.Build("Ali Khan", "+923001234567", items, "PKR", time.Now())
	require.NoError(t, err)

	got, err := cl.Render(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, pdf, got)
}

func TestRenderNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad currency", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	cl := invoice.NewClient(srv.URL, "test-key")
	req, err := invoice.Build("Ali Khan", "+923001234567", items, "PKR", time.Now())
	require.NoError(t, err)

	_, err = cl.Render(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
}
