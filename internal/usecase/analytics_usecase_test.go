package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"autocare/internal/domain/entities"
	mock_interfaces "autocare/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func day(s string) time.Time {
	d, err := time.Parse(entities.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestComputeFullHistory(t *testing.T) {
	t.Run("two changes give exact averages", func(t *testing.T) {
		p := entities.UserProfile{
			UserID: "u1",
			OilChanges: []entities.OilChange{
				{Date: day("01.01.2025"), Mileage: 50000},
				{Date: day("31.01.2025"), Mileage: 56000},
			},
			OilAdds: []entities.OilAdd{
				{Date: day("10.01.2025"), AmountLiters: 1.0},
				{Date: day("20.01.2025"), AmountLiters: 2.0},
			},
		}
		s := ComputeFullHistory(p)

		assert.Equal(t, 2, s.ChangeCount)
		require.True(t, s.AvgMileageValid)
		assert.Equal(t, 6000.0, s.AvgMileageBetween)
		require.True(t, s.AvgDaysValid)
		assert.Equal(t, 30.0, s.AvgDaysBetween)
		assert.Equal(t, 3.0, s.TotalOilAdded)
		assert.InDelta(t, 0.5, s.AvgOilPer1000Km, 1e-9)
		assert.Equal(t, 3.0, s.AvgOilPerInterval)
	})

	t.Run("single change is insufficient data", func(t *testing.T) {
		p := entities.UserProfile{
			UserID:     "u1",
			OilChanges: []entities.OilChange{{Date: day("01.01.2025"), Mileage: 50000}},
			OilAdds:    []entities.OilAdd{{Date: day("05.01.2025"), AmountLiters: 1.5}},
		}
		s := ComputeFullHistory(p)

		assert.False(t, s.AvgMileageValid)
		assert.False(t, s.AvgDaysValid)
		assert.Zero(t, s.AvgOilPer1000Km)
		// Total still divided by max(intervals, 1).
		assert.Equal(t, 1.5, s.AvgOilPerInterval)
		assert.Contains(t, s.Text(), "insufficient data")
	})

	t.Run("non-positive mileage delta guards the rate", func(t *testing.T) {
		p := entities.UserProfile{
			UserID: "u1",
			OilChanges: []entities.OilChange{
				{Date: day("01.01.2025"), Mileage: 60000},
				{Date: day("01.02.2025"), Mileage: 60000},
			},
			OilAdds: []entities.OilAdd{{Date: day("10.01.2025"), AmountLiters: 1.0}},
		}
		s := ComputeFullHistory(p)

		assert.False(t, s.AvgMileageValid)
		assert.Zero(t, s.AvgOilPer1000Km)
		assert.True(t, s.AvgDaysValid)
	})

	t.Run("unsorted input is sorted by date", func(t *testing.T) {
		p := entities.UserProfile{
			UserID: "u1",
			OilChanges: []entities.OilChange{
				{Date: day("31.01.2025"), Mileage: 56000},
				{Date: day("01.01.2025"), Mileage: 50000},
			},
		}
		s := ComputeFullHistory(p)
		require.True(t, s.AvgMileageValid)
		assert.Equal(t, 6000.0, s.AvgMileageBetween)
		// The input slice order is untouched.
		assert.Equal(t, 56000, p.OilChanges[0].Mileage)
	})
}

func TestComputeRepairSummary(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		s := ComputeRepairSummary(entities.UserProfile{UserID: "u1"})
		assert.Zero(t, s.RepairCount)
		assert.False(t, s.AvgValid)
		assert.Equal(t, "No repair data yet.", s.Text())
	})

	t.Run("totals include parts and labor", func(t *testing.T) {
		p := entities.UserProfile{
			UserID: "u1",
			Repairs: []entities.Repair{
				{
					Category:   entities.CategoryBrakes,
					Parts:      []entities.Part{{Name: "pads", Cost: 100}, {Name: "discs", Cost: 200}},
					RepairCost: 500,
				},
				{Category: entities.CategoryEngine, RepairCost: 200},
			},
		}
		s := ComputeRepairSummary(p)

		assert.Equal(t, 2, s.RepairCount)
		assert.Equal(t, 1000.0, s.TotalCost)
		require.True(t, s.AvgValid)
		assert.Equal(t, 500.0, s.AvgCost)

		byCat := map[entities.RepairCategory]CategoryTotal{}
		for _, ct := range s.Categories {
			byCat[ct.Category] = ct
		}
		assert.Equal(t, 800.0, byCat[entities.CategoryBrakes].Cost)
		assert.Equal(t, 1, byCat[entities.CategoryBrakes].Count)
		assert.Equal(t, 200.0, byCat[entities.CategoryEngine].Cost)
		assert.Zero(t, byCat[entities.CategoryBody].Count)

		// Zero-count categories are not rendered.
		assert.NotContains(t, s.Text(), "Body")
	})
}

func TestComputeSinceLast(t *testing.T) {
	t.Run("no changes", func(t *testing.T) {
		s := ComputeSinceLast(entities.UserProfile{UserID: "u1"})
		assert.False(t, s.HasChange)
		assert.Equal(t, "History is empty.", s.Text())
	})

	t.Run("inclusive pivot boundary", func(t *testing.T) {
		p := entities.UserProfile{
			UserID: "u1",
			OilChanges: []entities.OilChange{
				{Date: day("01.06.2024"), Mileage: 40000},
				{Date: day("01.01.2025"), Mileage: 50000},
			},
			OilAdds: []entities.OilAdd{
				{Date: day("31.12.2024"), AmountLiters: 9.0}, // before pivot: excluded
				{Date: day("01.01.2025"), AmountLiters: 1.0}, // on pivot: counted
				{Date: day("15.01.2025"), AmountLiters: 0.5},
			},
			LastMileage: &entities.LastMileage{Date: day("20.01.2025"), Mileage: 52000},
		}
		s := ComputeSinceLast(p)

		require.True(t, s.HasChange)
		assert.Equal(t, day("01.01.2025"), s.PivotDate)
		assert.Equal(t, 1.5, s.TotalOilAdded)
		assert.Equal(t, 2000, s.MileageSince)
		assert.InDelta(t, 0.75, s.AvgOilPer1000Km, 1e-9)
		assert.Equal(t, 5000, s.Remaining)
		assert.False(t, s.DueNow)
	})

	t.Run("due now at and past the interval", func(t *testing.T) {
		p := entities.UserProfile{
			UserID:      "u1",
			OilChanges:  []entities.OilChange{{Date: day("01.01.2025"), Mileage: 50000}},
			LastMileage: &entities.LastMileage{Date: day("01.06.2025"), Mileage: 57000},
		}
		s := ComputeSinceLast(p)
		assert.Zero(t, s.Remaining)
		assert.True(t, s.DueNow)
		assert.Contains(t, s.Text(), "due now!")

		p.LastMileage.Mileage = 56999
		s = ComputeSinceLast(p)
		assert.Equal(t, 1, s.Remaining)
		assert.False(t, s.DueNow)
	})

	t.Run("idempotent over the same snapshot", func(t *testing.T) {
		p := entities.UserProfile{
			UserID:      "u1",
			OilChanges:  []entities.OilChange{{Date: day("01.01.2025"), Mileage: 50000}},
			OilAdds:     []entities.OilAdd{{Date: day("02.01.2025"), AmountLiters: 1.0}},
			LastMileage: &entities.LastMileage{Date: day("10.01.2025"), Mileage: 51000},
		}
		first := ComputeSinceLast(p)
		second := ComputeSinceLast(p)
		assert.Equal(t, first, second)
	})
}

func TestAnalyticsUseCase_Snapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIUserRepository(ctrl)
	uc := NewAnalyticsUseCase(repo)

	t.Run("blank user id", func(t *testing.T) {
		_, err := uc.FullHistory(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("missing profile", func(t *testing.T) {
		repo.EXPECT().FindByUser(gomock.Any(), "ghost").Return(entities.UserProfile{}, nil)
		_, err := uc.SinceLastChange(context.Background(), "ghost")
		if !errors.Is(err, ErrProfileNotFound) {
			t.Fatalf("expected ErrProfileNotFound, got %v", err)
		}
	})

	t.Run("repo error passes through", func(t *testing.T) {
		boom := errors.New("boom")
		repo.EXPECT().FindByUser(gomock.Any(), "u1").Return(entities.UserProfile{}, boom)
		_, err := uc.RepairCosts(context.Background(), "u1")
		if !errors.Is(err, boom) {
			t.Fatalf("expected wrapped boom, got %v", err)
		}
	})

	t.Run("trims the user id", func(t *testing.T) {
		repo.EXPECT().FindByUser(gomock.Any(), "u1").Return(entities.UserProfile{UserID: "u1"}, nil)
		s, err := uc.FullHistory(context.Background(), " u1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assert.Zero(t, s.ChangeCount)
	})
}
