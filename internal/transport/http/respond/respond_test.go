package respond

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/repair-fulfillment/internal/model"
	"github.com/you-humble/repair-fulfillment/platform/logger"
)

func TestError(t *testing.T) {
	t.Parallel()
	logger.SetNopLogger()

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "wrapped validation error drops the call chain",
			err:         fmt.Errorf("repairpart.service.CreateMany: %w", model.ErrValidation),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "validation error",
		},
		{
			name:        "unauthenticated",
			err:         fmt.Errorf("sparepart.service.Adjust: %w", model.ErrUnauthenticated),
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "user not authenticated",
		},
		{
			name:        "spare part not found",
			err:         fmt.Errorf("repository.SparePartByID: %w", model.ErrSparePartNotFound),
			wantStatus:  http.StatusNotFound,
			wantMessage: "spare part not found",
		},
		{
			name:        "repair part not found",
			err:         model.ErrRepairPartNotFound,
			wantStatus:  http.StatusNotFound,
			wantMessage: "repair part not found",
		},
		{
			name:        "duplicate sku",
			err:         fmt.Errorf("sparepart.service.ReplaceVariants: %w", model.ErrDuplicateSKU),
			wantStatus:  http.StatusConflict,
			wantMessage: "duplicate variant sku",
		},
		{
			name: "insufficient stock keeps the detailed message",
			err: fmt.Errorf("repairpart.service.CreateMany: %w", &model.InsufficientStockError{
				PartName:  "Battery",
				Available: 2,
				Needed:    5,
			}),
			wantStatus:  http.StatusUnprocessableEntity,
			wantMessage: "insufficient stock for Battery. Available: 2, Needed: 5",
		},
		{
			name:        "unknown errors become a generic 500",
			err:         fmt.Errorf("repository.Variants: connection refused"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "internal error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)

			Error(rec, req, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body struct {
				Message string `json:"message"`
				OK      bool   `json:"ok"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.OK)
			assert.Equal(t, tt.wantMessage, body.Message)
		})
	}
}

func TestJSON(t *testing.T) {
	t.Parallel()
	logger.SetNopLogger()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	JSON(rec, req, http.StatusOK, map[string]string{"hello": "world"})

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data map[string]string `json:"data"`
		OK   bool              `json:"ok"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.OK)
	assert.Equal(t, "world", body.Data["hello"])
}
