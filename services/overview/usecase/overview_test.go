package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sewamobil/sewamobil/internal/pkg/models"
	"github.com/sewamobil/sewamobil/services/overview/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOverview_AggregatesSeries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockOverviewRepo(ctrl)
	uc := NewOverviewUC(mockRepo)

	mockRepo.EXPECT().BookingMetrics(gomock.Any()).
		Return(&models.BookingMetrics{Pending: 2, Confirmed: 3, Completed: 5, Total: 10}, nil)
	mockRepo.EXPECT().RevenueByDay(gomock.Any(), 30).
		Return([]models.RevenuePoint{
			{Period: "2026-08-27", OnlineFull: 810000, Total: 810000},
		}, nil)
	mockRepo.EXPECT().RevenueByMonth(gomock.Any(), 12).
		Return([]models.RevenuePoint{
			{Period: "2026-07", PayAtLocation: 450000, Total: 450000},
			{Period: "2026-08", OnlineFull: 810000, Total: 810000},
		}, nil)

	o, err := uc.GetOverview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, o.Metrics.Total)
	assert.Equal(t, 1260000, o.TotalRevenue)
	assert.Len(t, o.RevenueByDay, 1)
	assert.Len(t, o.RevenueByMonth, 2)
}

func TestGetOverview_EmptySystemReturnsEmptyArrays(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockOverviewRepo(ctrl)
	uc := NewOverviewUC(mockRepo)

	mockRepo.EXPECT().BookingMetrics(gomock.Any()).Return(&models.BookingMetrics{}, nil)
	mockRepo.EXPECT().RevenueByDay(gomock.Any(), 30).Return(nil, nil)
	mockRepo.EXPECT().RevenueByMonth(gomock.Any(), 12).Return(nil, nil)

	o, err := uc.GetOverview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, o.TotalRevenue)
	assert.NotNil(t, o.RevenueByDay)
	assert.NotNil(t, o.RevenueByMonth)
	assert.Empty(t, o.RevenueByDay)
	assert.Empty(t, o.RevenueByMonth)
}
