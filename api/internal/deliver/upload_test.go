package deliver_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billbot/api/internal/deliver"
)

func TestUploadReturnsDirectDownloadURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1 << 20))
		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, "invoice.pdf", hdr.Filename)
		data, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.Equal(t, []byte("%PDF fake"), data)

		_, _ = w.Write([]byte(`{"status":"success","data":{"url":"https://tmpfiles.org/12345/invoice.pdf"}}`))
	}))
	defer srv.Close()

	u := deliver.NewUploader(srv.URL)
	link, err := u.Upload(context.Background(), "invoice.pdf", []byte("%PDF fake"))
	require.NoError(t, err)
	assert.Equal(t, "https://tmpfiles.org/dl/12345/invoice.pdf", link)
}

func TestUploadHostReportsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"error"}`))
	}))
	defer srv.Close()

	u := deliver.NewUploader(srv.URL)
	_, err := u.Upload(context.Background(), "invoice.pdf", []byte("x"))
	assert.ErrorIs(t, err, deliver.ErrUploadFailed)
}

func TestUploadNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	u := deliver.NewUploader(srv.URL)
	_, err := u.Upload(context.Background(), "invoice.pdf", []byte("x"))
	assert.ErrorIs(t, err, deliver.ErrUploadFailed)
}

func TestDirectDownloadURL(t *testing.T) {
	got, err := deliver.DirectDownloadURL("https://tmpfiles.org/986512/invoice.pdf")
	require.NoError(t, err)
	assert.Equal(t, "https://tmpfiles.org/dl/986512/invoice.pdf", got)
}
