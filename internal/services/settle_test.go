package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-synth-exchange/internal/models"
	"github.com/sbilibin2017/gw-synth-exchange/internal/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSettleMocks(ctrl *gomock.Controller) (*services.MockEntryReader, *services.MockEntryWriter, *services.MockIssuanceLedger, *services.MockRateOracle, *services.MockEngineConfigReader) {
	return services.NewMockEntryReader(ctrl),
		services.NewMockEntryWriter(ctrl),
		services.NewMockIssuanceLedger(ctrl),
		services.NewMockRateOracle(ctrl),
		services.NewMockEngineConfigReader(ctrl)
}

func TestSettlementService_NothingEligible(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entryReader, entryWriter, ledger, oracle, config := newSettleMocks(ctrl)

	accountID := uuid.New()
	base := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	cfg := models.EngineConfigDB{WaitingPeriodSeconds: 360, Enabled: true}

	// One entry still inside its waiting period: the pass must not touch the
	// oracle, the ledger or the entry store.
	config.EXPECT().Get(gomock.Any()).Return(cfg, nil)
	entryReader.EXPECT().
		ListByAccountAsset(gomock.Any(), accountID, models.SBTC, true).
		Return([]models.ExchangeEntryDB{
			{
				EntryID:             uuid.New(),
				AccountID:           accountID,
				DestAsset:           models.SBTC,
				DestAmount:          decimal.NewFromInt(100),
				DestPriceAtExchange: decimal.NewFromInt(10),
				CreatedAt:           base.Add(-10 * time.Second),
			},
		}, nil)

	svc := services.NewSettlementService(entryReader, entryWriter, ledger, oracle, config, nil, func() time.Time { return base })

	result, err := svc.Settle(context.Background(), accountID, models.SBTC)
	require.NoError(t, err)
	assert.True(t, result.IsZero())
	assert.Equal(t, 0, result.EntriesSettled)
}

func TestSettlementService_EmptyLedger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entryReader, entryWriter, ledger, oracle, config := newSettleMocks(ctrl)

	accountID := uuid.New()
	base := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)

	config.EXPECT().Get(gomock.Any()).Return(models.EngineConfigDB{WaitingPeriodSeconds: 360}, nil)
	entryReader.EXPECT().
		ListByAccountAsset(gomock.Any(), accountID, models.SEUR, true).
		Return(nil, nil)

	svc := services.NewSettlementService(entryReader, entryWriter, ledger, oracle, config, nil, func() time.Time { return base })

	result, err := svc.Settle(context.Background(), accountID, models.SEUR)
	require.NoError(t, err)
	assert.True(t, result.IsZero())
}

func TestSettlementService_RebateOnPriceRise(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entryReader, entryWriter, ledger, oracle, config := newSettleMocks(ctrl)

	accountID := uuid.New()
	base := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	entryID := uuid.New()

	// 100 units bought at price 10, price now 11: value rose to 110, rebate 10.
	config.EXPECT().Get(gomock.Any()).Return(models.EngineConfigDB{WaitingPeriodSeconds: 360}, nil)
	entryReader.EXPECT().
		ListByAccountAsset(gomock.Any(), accountID, models.SBTC, true).
		Return([]models.ExchangeEntryDB{
			{
				EntryID:             entryID,
				AccountID:           accountID,
				DestAsset:           models.SBTC,
				DestAmount:          decimal.NewFromInt(100),
				DestPriceAtExchange: decimal.NewFromInt(10),
				CreatedAt:           base.Add(-400 * time.Second),
			},
		}, nil)
	oracle.EXPECT().Rate(gomock.Any(), models.SBTC).Return(decimal.NewFromInt(11), false, nil)
	entryWriter.EXPECT().DeleteByIDs(gomock.Any(), []uuid.UUID{entryID}).Return(nil)
	ledger.EXPECT().
		ApplyRebate(gomock.Any(), accountID, models.SBTC, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ string, amount decimal.Decimal) error {
			assert.True(t, amount.Equal(decimal.NewFromInt(10)), "rebate = %s", amount)
			return nil
		})

	svc := services.NewSettlementService(entryReader, entryWriter, ledger, oracle, config, nil, func() time.Time { return base })

	result, err := svc.Settle(context.Background(), accountID, models.SBTC)
	require.NoError(t, err)
	assert.True(t, result.RebateAmount.Equal(decimal.NewFromInt(10)))
	assert.True(t, result.ReclaimAmount.IsZero())
	assert.False(t, result.Shortfall)
	assert.Equal(t, 1, result.EntriesSettled)
}

func TestSettlementService_ReclaimOnPriceDrop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entryReader, entryWriter, ledger, oracle, config := newSettleMocks(ctrl)

	accountID := uuid.New()
	base := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	entryID := uuid.New()

	// 100 units bought at price 10, price now 9: value fell to 90, reclaim 10.
	config.EXPECT().Get(gomock.Any()).Return(models.EngineConfigDB{WaitingPeriodSeconds: 360}, nil)
	entryReader.EXPECT().
		ListByAccountAsset(gomock.Any(), accountID, models.SETH, true).
		Return([]models.ExchangeEntryDB{
			{
				EntryID:             entryID,
				AccountID:           accountID,
				DestAsset:           models.SETH,
				DestAmount:          decimal.NewFromInt(100),
				DestPriceAtExchange: decimal.NewFromInt(10),
				CreatedAt:           base.Add(-400 * time.Second),
			},
		}, nil)
	oracle.EXPECT().Rate(gomock.Any(), models.SETH).Return(decimal.NewFromInt(9), false, nil)
	entryWriter.EXPECT().DeleteByIDs(gomock.Any(), []uuid.UUID{entryID}).Return(nil)
	ledger.EXPECT().
		ApplyReclaim(gomock.Any(), accountID, models.SETH, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ string, amount decimal.Decimal) (bool, error) {
			assert.True(t, amount.Equal(decimal.NewFromInt(10)), "reclaim = %s", amount)
			return false, nil
		})

	svc := services.NewSettlementService(entryReader, entryWriter, ledger, oracle, config, nil, func() time.Time { return base })

	result, err := svc.Settle(context.Background(), accountID, models.SETH)
	require.NoError(t, err)
	assert.True(t, result.ReclaimAmount.Equal(decimal.NewFromInt(10)))
	assert.True(t, result.RebateAmount.IsZero())
	assert.False(t, result.Shortfall)
}

func TestSettlementService_NetsToOneDirection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entryReader, entryWriter, ledger, oracle, config := newSettleMocks(ctrl)

	accountID := uuid.New()
	base := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	idA := uuid.New()
	idB := uuid.New()

	// Entry A gained 10, entry B lost 4: a single rebate of 6, no reclaim.
	config.EXPECT().Get(gomock.Any()).Return(models.EngineConfigDB{WaitingPeriodSeconds: 360}, nil)
	entryReader.EXPECT().
		ListByAccountAsset(gomock.Any(), accountID, models.SBTC, true).
		Return([]models.ExchangeEntryDB{
			{
				EntryID:             idA,
				AccountID:           accountID,
				DestAsset:           models.SBTC,
				DestAmount:          decimal.NewFromInt(100),
				DestPriceAtExchange: decimal.NewFromInt(10),
				CreatedAt:           base.Add(-500 * time.Second),
			},
			{
				EntryID:             idB,
				AccountID:           accountID,
				DestAsset:           models.SBTC,
				DestAmount:          decimal.NewFromInt(48),
				DestPriceAtExchange: decimal.NewFromInt(12),
				CreatedAt:           base.Add(-400 * time.Second),
			},
		}, nil)
	oracle.EXPECT().Rate(gomock.Any(), models.SBTC).Return(decimal.NewFromInt(11), false, nil)
	entryWriter.EXPECT().DeleteByIDs(gomock.Any(), []uuid.UUID{idA, idB}).Return(nil)
	ledger.EXPECT().
		ApplyRebate(gomock.Any(), accountID, models.SBTC, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ string, amount decimal.Decimal) error {
			assert.True(t, amount.Equal(decimal.NewFromInt(6)), "net rebate = %s", amount)
			return nil
		})

	svc := services.NewSettlementService(entryReader, entryWriter, ledger, oracle, config, nil, func() time.Time { return base })

	result, err := svc.Settle(context.Background(), accountID, models.SBTC)
	require.NoError(t, err)
	assert.True(t, result.RebateAmount.Equal(decimal.NewFromInt(6)))
	assert.True(t, result.ReclaimAmount.IsZero())
	assert.Equal(t, 2, result.EntriesSettled)
}

func TestSettlementService_SecondPassSettlesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entryReader, entryWriter, ledger, oracle, config := newSettleMocks(ctrl)

	accountID := uuid.New()
	base := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	entryID := uuid.New()

	config.EXPECT().Get(gomock.Any()).Return(models.EngineConfigDB{WaitingPeriodSeconds: 360}, nil).Times(2)

	// The first pass drains the entry; the second finds an empty ledger and
	// must touch neither the oracle nor the issuance ledger again.
	gomock.InOrder(
		entryReader.EXPECT().
			ListByAccountAsset(gomock.Any(), accountID, models.SBTC, true).
			Return([]models.ExchangeEntryDB{
				{
					EntryID:             entryID,
					AccountID:           accountID,
					DestAsset:           models.SBTC,
					DestAmount:          decimal.NewFromInt(100),
					DestPriceAtExchange: decimal.NewFromInt(10),
					CreatedAt:           base.Add(-400 * time.Second),
				},
			}, nil),
		entryReader.EXPECT().
			ListByAccountAsset(gomock.Any(), accountID, models.SBTC, true).
			Return(nil, nil),
	)
	oracle.EXPECT().Rate(gomock.Any(), models.SBTC).Return(decimal.NewFromInt(11), false, nil).Times(1)
	entryWriter.EXPECT().DeleteByIDs(gomock.Any(), []uuid.UUID{entryID}).Return(nil).Times(1)
	ledger.EXPECT().
		ApplyRebate(gomock.Any(), accountID, models.SBTC, gomock.Any()).
		Return(nil).
		Times(1)

	svc := services.NewSettlementService(entryReader, entryWriter, ledger, oracle, config, nil, func() time.Time { return base })

	first, err := svc.Settle(context.Background(), accountID, models.SBTC)
	require.NoError(t, err)
	assert.Equal(t, 1, first.EntriesSettled)
	assert.True(t, first.RebateAmount.Equal(decimal.NewFromInt(10)))

	second, err := svc.Settle(context.Background(), accountID, models.SBTC)
	require.NoError(t, err)
	assert.True(t, second.IsZero())
}

func TestSettlementService_OnlyEligibleEntriesSettle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entryReader, entryWriter, ledger, oracle, config := newSettleMocks(ctrl)

	accountID := uuid.New()
	base := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	oldID := uuid.New()
	freshID := uuid.New()

	config.EXPECT().Get(gomock.Any()).Return(models.EngineConfigDB{WaitingPeriodSeconds: 360}, nil)
	entryReader.EXPECT().
		ListByAccountAsset(gomock.Any(), accountID, models.SEUR, true).
		Return([]models.ExchangeEntryDB{
			{
				EntryID:             oldID,
				AccountID:           accountID,
				DestAsset:           models.SEUR,
				DestAmount:          decimal.NewFromInt(50),
				DestPriceAtExchange: decimal.NewFromInt(2),
				CreatedAt:           base.Add(-400 * time.Second),
			},
			{
				EntryID:             freshID,
				AccountID:           accountID,
				DestAsset:           models.SEUR,
				DestAmount:          decimal.NewFromInt(70),
				DestPriceAtExchange: decimal.NewFromInt(2),
				CreatedAt:           base.Add(-5 * time.Second),
			},
		}, nil)
	oracle.EXPECT().Rate(gomock.Any(), models.SEUR).Return(decimal.RequireFromString("2.2"), false, nil)
	// Only the aged entry is drained; the fresh one waits for the next pass.
	entryWriter.EXPECT().DeleteByIDs(gomock.Any(), []uuid.UUID{oldID}).Return(nil)
	ledger.EXPECT().
		ApplyRebate(gomock.Any(), accountID, models.SEUR, gomock.Any()).
		Return(nil)

	svc := services.NewSettlementService(entryReader, entryWriter, ledger, oracle, config, nil, func() time.Time { return base })

	result, err := svc.Settle(context.Background(), accountID, models.SEUR)
	require.NoError(t, err)
	assert.Equal(t, 1, result.EntriesSettled)
}

func TestSettlementService_ShortfallPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entryReader, entryWriter, ledger, oracle, config := newSettleMocks(ctrl)

	accountID := uuid.New()
	base := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	entryID := uuid.New()

	config.EXPECT().Get(gomock.Any()).Return(models.EngineConfigDB{WaitingPeriodSeconds: 360}, nil)
	entryReader.EXPECT().
		ListByAccountAsset(gomock.Any(), accountID, models.SRUB, true).
		Return([]models.ExchangeEntryDB{
			{
				EntryID:             entryID,
				AccountID:           accountID,
				DestAsset:           models.SRUB,
				DestAmount:          decimal.NewFromInt(1000),
				DestPriceAtExchange: decimal.NewFromInt(10),
				CreatedAt:           base.Add(-400 * time.Second),
			},
		}, nil)
	oracle.EXPECT().Rate(gomock.Any(), models.SRUB).Return(decimal.NewFromInt(5), false, nil)
	entryWriter.EXPECT().DeleteByIDs(gomock.Any(), []uuid.UUID{entryID}).Return(nil)
	ledger.EXPECT().
		ApplyReclaim(gomock.Any(), accountID, models.SRUB, gomock.Any()).
		Return(true, nil)

	svc := services.NewSettlementService(entryReader, entryWriter, ledger, oracle, config, nil, func() time.Time { return base })

	result, err := svc.Settle(context.Background(), accountID, models.SRUB)
	require.NoError(t, err)
	assert.True(t, result.Shortfall)
	assert.True(t, result.ReclaimAmount.Equal(decimal.NewFromInt(500)))
}

func TestSettlementService_StaleRate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entryReader, entryWriter, ledger, oracle, config := newSettleMocks(ctrl)

	accountID := uuid.New()
	base := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)

	config.EXPECT().Get(gomock.Any()).Return(models.EngineConfigDB{WaitingPeriodSeconds: 360}, nil)
	entryReader.EXPECT().
		ListByAccountAsset(gomock.Any(), accountID, models.SBTC, true).
		Return([]models.ExchangeEntryDB{
			{
				EntryID:             uuid.New(),
				AccountID:           accountID,
				DestAsset:           models.SBTC,
				DestAmount:          decimal.NewFromInt(10),
				DestPriceAtExchange: decimal.NewFromInt(10),
				CreatedAt:           base.Add(-400 * time.Second),
			},
		}, nil)
	oracle.EXPECT().Rate(gomock.Any(), models.SBTC).Return(decimal.Zero, true, nil)

	svc := services.NewSettlementService(entryReader, entryWriter, ledger, oracle, config, nil, func() time.Time { return base })

	_, err := svc.Settle(context.Background(), accountID, models.SBTC)
	assert.ErrorIs(t, err, services.ErrStaleRate)
}

func TestSettlementService_UnknownAsset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entryReader, entryWriter, ledger, oracle, config := newSettleMocks(ctrl)

	svc := services.NewSettlementService(entryReader, entryWriter, ledger, oracle, config, nil, nil)

	_, err := svc.Settle(context.Background(), uuid.New(), "sDOGE")
	assert.ErrorIs(t, err, services.ErrUnknownAsset)
}

func TestSettlementService_DeleteError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entryReader, entryWriter, ledger, oracle, config := newSettleMocks(ctrl)

	accountID := uuid.New()
	base := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	entryID := uuid.New()

	config.EXPECT().Get(gomock.Any()).Return(models.EngineConfigDB{WaitingPeriodSeconds: 360}, nil)
	entryReader.EXPECT().
		ListByAccountAsset(gomock.Any(), accountID, models.SBTC, true).
		Return([]models.ExchangeEntryDB{
			{
				EntryID:             entryID,
				AccountID:           accountID,
				DestAsset:           models.SBTC,
				DestAmount:          decimal.NewFromInt(10),
				DestPriceAtExchange: decimal.NewFromInt(10),
				CreatedAt:           base.Add(-400 * time.Second),
			},
		}, nil)
	oracle.EXPECT().Rate(gomock.Any(), models.SBTC).Return(decimal.NewFromInt(11), false, nil)
	entryWriter.EXPECT().DeleteByIDs(gomock.Any(), []uuid.UUID{entryID}).Return(errors.New("db error"))

	svc := services.NewSettlementService(entryReader, entryWriter, ledger, oracle, config, nil, func() time.Time { return base })

	_, err := svc.Settle(context.Background(), accountID, models.SBTC)
	assert.EqualError(t, err, "db error")
}
