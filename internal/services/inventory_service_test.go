package services

import (
	"context"
	"testing"

	"refurbmart/internal/models/db_models"
	"refurbmart/internal/models/request_models"
	"refurbmart/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float(v float64) *float64 { return &v }

func boolPtr(v bool) *bool { return &v }

func TestAdjustStock_DerivesInStock(t *testing.T) {
	variants := newFakeVariantRepo()
	svc := NewInventoryService(variants)

	variant := variants.add(&db_models.Variant{SKU: "SKU-1", Stock: 5, InStock: true})

	cases := []struct {
		name        string
		req         request_models.AdjustStockRequest
		wantStock   int64
		wantInStock bool
	}{
		{"positive defaults purchasable", request_models.AdjustStockRequest{Stock: float(4)}, 4, true},
		{"fractional floors", request_models.AdjustStockRequest{Stock: float(3.7)}, 3, true},
		{"explicit false override", request_models.AdjustStockRequest{Stock: float(4), InStock: boolPtr(false)}, 4, false},
		{"zero forces not purchasable", request_models.AdjustStockRequest{Stock: float(0), InStock: boolPtr(true)}, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.AdjustStock(context.Background(), variant.ID.String(), tc.req)
			require.NoError(t, err)
			assert.Equal(t, tc.wantStock, got.Stock)
			assert.Equal(t, tc.wantInStock, got.InStock)
		})
	}
}

func TestAdjustStock_UnknownVariant(t *testing.T) {
	svc := NewInventoryService(newFakeVariantRepo())

	_, err := svc.AdjustStock(context.Background(), uuid.NewString(), request_models.AdjustStockRequest{Stock: float(1)})
	assert.ErrorIs(t, err, utils.ErrVariantNotFound)
}
