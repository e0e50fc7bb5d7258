package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/warungin/backend/internal/domain/shared"
)

func performHandler(fn gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	fn(c)
	return w
}

func TestBaseHandlerHandleError(t *testing.T) {
	h := &BaseHandler{}

	t.Run("not found maps to 404", func(t *testing.T) {
		w := performHandler(func(c *gin.Context) {
			h.HandleError(c, shared.NewNotFoundError("Order", "abc"))
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "NOT_FOUND")
	})

	t.Run("insufficient stock maps to 409", func(t *testing.T) {
		w := performHandler(func(c *gin.Context) {
			h.HandleError(c, shared.NewInsufficientStockError(3, 10))
		})
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "INSUFFICIENT_STOCK")
	})

	t.Run("blocked warung maps to 409", func(t *testing.T) {
		w := performHandler(func(c *gin.Context) {
			h.HandleError(c, shared.ErrWarungBlocked)
		})
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "WARUNG_BLOCKED")
	})

	t.Run("unknown error maps to 500 without leaking", func(t *testing.T) {
		w := performHandler(func(c *gin.Context) {
			h.HandleError(c, errors.New("pq: connection reset"))
		})
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection reset")
	})
}

func TestBaseHandlerEnvelopes(t *testing.T) {
	h := &BaseHandler{}

	t.Run("success", func(t *testing.T) {
		w := performHandler(func(c *gin.Context) {
			h.Success(c, gin.H{"nomor": "ORD-20260829-0001"})
		})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"success":true`)
	})

	t.Run("created", func(t *testing.T) {
		w := performHandler(func(c *gin.Context) {
			h.Created(c, nil)
		})
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("paginated meta", func(t *testing.T) {
		w := performHandler(func(c *gin.Context) {
			h.SuccessWithMeta(c, []string{}, 41, 1, 20)
		})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total_pages":3`)
	})
}
