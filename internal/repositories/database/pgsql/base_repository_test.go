package pgsql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"

	"github.com/SscSPs/livestock_ledger/internal/apperrors"
)

func TestRepoErr(t *testing.T) {
	t.Run("no rows is not found", func(t *testing.T) {
		err := repoErr("purchase p-1", fmt.Errorf("scan: %w", pgx.ErrNoRows))
		assert.ErrorIs(t, err, apperrors.ErrNotFound)

		var appErr *apperrors.AppError
		if assert.True(t, errors.As(err, &appErr)) {
			assert.Equal(t, 404, appErr.Code)
		}
	})

	t.Run("other failures keep their cause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := repoErr("failed to insert sale s-1", cause)
		assert.ErrorIs(t, err, cause)
		assert.NotErrorIs(t, err, apperrors.ErrNotFound)

		var appErr *apperrors.AppError
		if assert.True(t, errors.As(err, &appErr)) {
			assert.Equal(t, 500, appErr.Code)
		}
	})
}

func TestRepositoryProviderBindsEveryRepository(t *testing.T) {
	repos := NewRepositoryProvider(nil)
	assert.NotNil(t, repos.InventoryRepo)
	assert.NotNil(t, repos.PurchaseRepo)
	assert.NotNil(t, repos.SaleRepo)
	assert.NotNil(t, repos.JournalRepo)
	assert.NotNil(t, repos.LedgerRepo)
}
