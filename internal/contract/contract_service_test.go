package contract_test

import (
	"context"
	"testing"

	"hr-console/internal/contract"
	"hr-console/internal/shared/listview"

	"github.com/stretchr/testify/assert"
)

func TestContractService_List(t *testing.T) {
	ctx := context.Background()
	svc := contract.NewService(contract.SeedContracts())

	t.Run("department selector narrows the rows", func(t *testing.T) {
		page, err := svc.List(ctx,
			listview.Criteria{Selectors: map[string]string{"department": "Engineering"}},
			listview.Window{Page: 1, Size: 10},
		)

		assert.NoError(t, err)
		assert.Equal(t, int64(2), page.Total)
		for _, row := range page.Rows {
			assert.Equal(t, "Engineering", row.Department)
		}
	})

	t.Run("search matches the contract number", func(t *testing.T) {
		page, err := svc.List(ctx,
			listview.Criteria{Query: "ctr-2022"},
			listview.Window{Page: 1, Size: 10},
		)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), page.Total)
		assert.Equal(t, "Siti Rahma", page.Rows[0].EmployeeName)
	})

	t.Run("windows past the end are empty but keep the total", func(t *testing.T) {
		page, err := svc.List(ctx, listview.Criteria{}, listview.Window{Page: 5, Size: 10})

		assert.NoError(t, err)
		assert.Empty(t, page.Rows)
		assert.Equal(t, int64(4), page.Total)
	})
}

func TestContractService_GetByID(t *testing.T) {
	ctx := context.Background()
	svc := contract.NewService(contract.SeedContracts())

	t.Run("known id", func(t *testing.T) {
		c, err := svc.GetByID(ctx, 3)
		assert.NoError(t, err)
		assert.Equal(t, "Budi Santoso", c.EmployeeName)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.GetByID(ctx, 99)
		assert.ErrorIs(t, err, contract.ErrContractNotFound)
	})
}
