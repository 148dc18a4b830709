package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type flushRecorder struct {
	*httptest.ResponseRecorder
	flushed bool
}

func (f *flushRecorder) Flush() { f.flushed = true }

func TestStatusRecorder_DefaultsTo200(t *testing.T) {
	rec := newStatusRecorder(httptest.NewRecorder())
	_, _ = rec.Write([]byte("hello"))

	assert.Equal(t, http.StatusOK, rec.status)
	assert.Equal(t, 5, rec.bytes)
}

func TestStatusRecorder_FirstWriteHeaderWins(t *testing.T) {
	rec := newStatusRecorder(httptest.NewRecorder())
	rec.WriteHeader(http.StatusAccepted)
	rec.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusAccepted, rec.status)
}

func TestStatusRecorder_ReusesExistingRecorder(t *testing.T) {
	inner := newStatusRecorder(httptest.NewRecorder())
	assert.Same(t, inner, newStatusRecorder(inner))
}

func TestStatusRecorder_FlushDelegates(t *testing.T) {
	underlying := &flushRecorder{ResponseRecorder: httptest.NewRecorder()}
	rec := newStatusRecorder(underlying)

	rec.Flush()
	assert.True(t, underlying.flushed)
	assert.Equal(t, underlying, rec.Unwrap())
}
