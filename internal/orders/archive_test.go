package orders

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/pedrolima/coffee-delivery-backend/pkg/enums"
)

func setupArchiveTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func TestArchiveSaveAndRecent(t *testing.T) {
	db := setupArchiveTestDB(t)
	arch := NewArchive(db)
	ctx := context.Background()

	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		order := sampleOrder()
		order.ID = uuid.New()
		order.Numero = fmt.Sprintf("%d", i+1)
		order.Timestamp = base.Add(time.Duration(i) * time.Hour).Format(time.RFC3339)
		require.NoError(t, arch.Save(ctx, order))
	}

	recent, err := arch.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)

	// most recent first
	assert.Equal(t, "3", recent[0].Numero)
	assert.Equal(t, "2", recent[1].Numero)
	assert.Equal(t, enums.PaymentMethodCredit, recent[0].Pagamento)
	require.Len(t, recent[0].Items, 1)
	assert.True(t, recent[0].Items[0].Price.Equal(decimal.RequireFromString("9.9")))
}

func TestArchiveRecentDefaultsLimit(t *testing.T) {
	db := setupArchiveTestDB(t)
	arch := NewArchive(db)

	recent, err := arch.Recent(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, recent)
}

func TestArchiveSaveFallsBackOnBadTimestamp(t *testing.T) {
	db := setupArchiveTestDB(t)
	arch := NewArchive(db)
	ctx := context.Background()

	order := sampleOrder()
	order.Timestamp = "not-a-timestamp"
	require.NoError(t, arch.Save(ctx, order))

	recent, err := arch.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.NotEmpty(t, recent[0].Timestamp)
}
