package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mvelasco/cryptofolio/internal/config"
	"github.com/mvelasco/cryptofolio/internal/logger"
	"github.com/mvelasco/cryptofolio/internal/mock"
	"github.com/mvelasco/cryptofolio/models"
)

func newTestMarketSvc(t *testing.T, ctrl *gomock.Controller) (*marketService, *mock.MockMarketAdapter, *fakeClock) {
	t.Helper()

	mockAdapter := mock.NewMockMarketAdapter(ctrl)
	cfg := config.App{QuoteTTL: 15 * time.Second}

	svc := NewMarketService(mockAdapter, cfg, logger.Nop()).(*marketService)

	clock := &fakeClock{current: time.Unix(1_700_000_000, 0)}
	svc.now = clock.Now

	return svc, mockAdapter, clock
}

func upstreamInstruments() []models.Instrument {
	return []models.Instrument{
		{ID: "bitcoin", Symbol: "btc", Name: "Bitcoin", CurrentPrice: 64000},
		{ID: "ethereum", Symbol: "eth", Name: "Ethereum", CurrentPrice: 3200},
		{ID: "tether", Symbol: "usdt", Name: "Tether", CurrentPrice: 1.0},
	}
}

func TestMarketService_InstrumentsFromUpstream(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestMarketSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().ListInstruments(ctx).Return(upstreamInstruments(), nil)

	instruments, err := svc.Instruments(ctx)
	require.NoError(t, err)

	byID := map[string]models.Instrument{}
	for _, instrument := range instruments {
		byID[instrument.ID] = instrument
	}

	assert.Equal(t, 64000.0, byID["bitcoin"].CurrentPrice)

	// fixed-rate demo assets are always appended
	assert.Equal(t, petroPrice, byID["petro"].CurrentPrice)
	assert.Equal(t, bolivarPriceUSD, byID["bolivar"].CurrentPrice)
}

func TestMarketService_FallsBackToDemoSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestMarketSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().ListInstruments(ctx).Return(nil, errors.New("upstream down"))

	instruments, err := svc.Instruments(ctx)
	require.NoError(t, err, "upstream failure must not surface to the caller")

	byID := map[string]float64{}
	for _, instrument := range instruments {
		byID[instrument.ID] = instrument.CurrentPrice
	}

	assert.Equal(t, 60000.0, byID["bitcoin"])
	assert.Equal(t, 3500.0, byID["ethereum"])
	assert.Equal(t, 1.0, byID["tether"])
}

func TestMarketService_ServesCachedSnapshotWhenUpstreamDies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestMarketSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().ListInstruments(ctx).Return(upstreamInstruments(), nil),
		mockAdapter.EXPECT().ListInstruments(ctx).Return(nil, errors.New("upstream down")),
	)

	_, err := svc.Instruments(ctx)
	require.NoError(t, err)

	instruments, err := svc.Instruments(ctx)
	require.NoError(t, err)

	found := false
	for _, instrument := range instruments {
		if instrument.ID == "bitcoin" {
			found = true
			assert.Equal(t, 64000.0, instrument.CurrentPrice, "cached upstream price, not the demo one")
		}
	}
	assert.True(t, found)
}

func TestMarketService_InstrumentByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestMarketSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().ListInstruments(ctx).Return(upstreamInstruments(), nil).Times(2)

	instrument, err := svc.Instrument(ctx, "ethereum")
	require.NoError(t, err)
	assert.Equal(t, "eth", instrument.Symbol)
	assert.Equal(t, 3200.0, instrument.CurrentPrice)

	_, err = svc.Instrument(ctx, "dogecoin")
	assert.ErrorIs(t, err, ErrUnknownAsset)
}

func TestMarketService_Quote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, clock := newTestMarketSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().ListInstruments(ctx).Return(upstreamInstruments(), nil)

	quote, err := svc.Quote(ctx, "bitcoin", "ethereum")
	require.NoError(t, err)

	assert.Equal(t, "btc", quote.FromSymbol)
	assert.Equal(t, "eth", quote.ToSymbol)
	assert.InDelta(t, 20.0, quote.Rate, 1e-9)
	assert.Equal(t, clock.Now().Add(15*time.Second).UnixMilli(), quote.ExpiresAt)
}

func TestMarketService_QuoteRejectsSameAsset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestMarketSvc(t, ctrl)

	_, err := svc.Quote(context.Background(), "bitcoin", "bitcoin")
	assert.ErrorIs(t, err, ErrSameAsset)
}

func TestMarketService_QuoteUnknownAsset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestMarketSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().ListInstruments(ctx).Return(upstreamInstruments(), nil)

	_, err := svc.Quote(ctx, "dogecoin", "bitcoin")
	assert.ErrorIs(t, err, ErrUnknownAsset)
}

func TestMarketService_ChartFromUpstream(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestMarketSvc(t, ctrl)
	ctx := context.Background()

	expected := models.MarketChart{Prices: [][]float64{{1, 100}, {2, 110}}}
	mockAdapter.EXPECT().MarketChart(ctx, "bitcoin", 7).Return(expected, nil)

	chart, err := svc.Chart(ctx, "bitcoin", 7)
	require.NoError(t, err)
	assert.Equal(t, expected, chart)
}

func TestMarketService_ChartFallbackIsSynthetic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestMarketSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().MarketChart(ctx, "bitcoin", 7).Return(models.MarketChart{}, errors.New("upstream down"))
	mockAdapter.EXPECT().ListInstruments(ctx).Return(nil, errors.New("upstream down"))

	chart, err := svc.Chart(ctx, "bitcoin", 7)
	require.NoError(t, err)
	require.Len(t, chart.Prices, 8, "one point per day plus today")

	for _, point := range chart.Prices {
		require.Len(t, point, 2)
		assert.Equal(t, 60000.0, point[1])
	}
}

func TestMarketService_ChartRejectsNonPositiveDays(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestMarketSvc(t, ctrl)

	_, err := svc.Chart(context.Background(), "bitcoin", 0)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}
