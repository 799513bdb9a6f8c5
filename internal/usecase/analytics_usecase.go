package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"autocare/internal/domain/entities"
	"autocare/internal/usecase/interfaces"
)

var (
	ErrInvalidUserID   = errors.New("invalid user id")
	ErrProfileNotFound = errors.New("user profile not found")
)

// FullHistorySummary aggregates the whole oil history. The *Valid flags
// guard the interval averages: with fewer than two changes (or a
// non-positive delta) the average is "insufficient data", never a number.
type FullHistorySummary struct {
	ChangeCount       int
	AvgMileageBetween float64
	AvgMileageValid   bool
	AvgDaysBetween    float64
	AvgDaysValid      bool
	TotalOilAdded     float64
	AvgOilPer1000Km   float64
	AvgOilPerInterval float64
}

// CategoryTotal is the per-category repair aggregate. All six categories
// are always computed; rendering omits the zero-count ones.
type CategoryTotal struct {
	Category entities.RepairCategory
	Count    int
	Cost     float64
}

type RepairSummary struct {
	RepairCount int
	TotalCost   float64
	AvgCost     float64
	AvgValid    bool
	Categories  []CategoryTotal
}

// SinceLastSummary reports consumption since the most recent oil change
// (the pivot). An oil add dated exactly on the pivot date counts.
type SinceLastSummary struct {
	HasChange       bool
	PivotDate       time.Time
	TotalOilAdded   float64
	MileageSince    int
	AvgOilPer1000Km float64
	Remaining       int
	DueNow          bool
}

// IAnalyticsUseCase exposes the derived statistics over a user's records.
type IAnalyticsUseCase interface {
	FullHistory(ctx context.Context, userID string) (FullHistorySummary, error)
	RepairCosts(ctx context.Context, userID string) (RepairSummary, error)
	SinceLastChange(ctx context.Context, userID string) (SinceLastSummary, error)
}

type AnalyticsUseCase struct {
	repo interfaces.IUserRepository
}

var _ IAnalyticsUseCase = (*AnalyticsUseCase)(nil)

func NewAnalyticsUseCase(repo interfaces.IUserRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{repo: repo}
}

func (u *AnalyticsUseCase) FullHistory(ctx context.Context, userID string) (FullHistorySummary, error) {
	p, err := u.snapshot(ctx, userID)
	if err != nil {
		return FullHistorySummary{}, err
	}
	return ComputeFullHistory(p), nil
}

func (u *AnalyticsUseCase) RepairCosts(ctx context.Context, userID string) (RepairSummary, error) {
	p, err := u.snapshot(ctx, userID)
	if err != nil {
		return RepairSummary{}, err
	}
	return ComputeRepairSummary(p), nil
}

func (u *AnalyticsUseCase) SinceLastChange(ctx context.Context, userID string) (SinceLastSummary, error) {
	p, err := u.snapshot(ctx, userID)
	if err != nil {
		return SinceLastSummary{}, err
	}
	return ComputeSinceLast(p), nil
}

func (u *AnalyticsUseCase) snapshot(ctx context.Context, userID string) (entities.UserProfile, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.UserProfile{}, ErrInvalidUserID
	}
	p, err := u.repo.FindByUser(ctx, userID)
	if err != nil {
		return entities.UserProfile{}, err
	}
	if p.UserID == "" {
		return entities.UserProfile{}, ErrProfileNotFound
	}
	return p, nil
}

// ComputeFullHistory derives the whole-history summary from a snapshot.
// Pure: the profile is never mutated.
func ComputeFullHistory(p entities.UserProfile) FullHistorySummary {
	changes := sortedOilChanges(p.OilChanges)
	s := FullHistorySummary{ChangeCount: len(changes)}

	for _, add := range p.OilAdds {
		s.TotalOilAdded += add.AmountLiters
	}

	intervals := len(changes) - 1
	if intervals >= 1 {
		first, last := changes[0], changes[len(changes)-1]

		mileageDelta := last.Mileage - first.Mileage
		if mileageDelta > 0 {
			s.AvgMileageBetween = float64(mileageDelta) / float64(intervals)
			s.AvgMileageValid = true
			s.AvgOilPer1000Km = s.TotalOilAdded / float64(mileageDelta) * 1000
		}

		days := last.Date.Sub(first.Date).Hours() / 24
		if days > 0 {
			s.AvgDaysBetween = days / float64(intervals)
			s.AvgDaysValid = true
		}
	}

	divisor := intervals
	if divisor < 1 {
		divisor = 1
	}
	s.AvgOilPerInterval = s.TotalOilAdded / float64(divisor)
	return s
}

// ComputeRepairSummary derives repair cost totals from a snapshot.
func ComputeRepairSummary(p entities.UserProfile) RepairSummary {
	s := RepairSummary{RepairCount: len(p.Repairs)}

	perCategory := make(map[entities.RepairCategory]*CategoryTotal)
	for _, c := range entities.AllRepairCategories() {
		s.Categories = append(s.Categories, CategoryTotal{Category: c})
		perCategory[c] = &s.Categories[len(s.Categories)-1]
	}

	for _, r := range p.Repairs {
		total := r.TotalCost()
		s.TotalCost += total
		if ct, ok := perCategory[r.Category]; ok {
			ct.Count++
			ct.Cost += total
		}
	}

	if s.RepairCount > 0 {
		s.AvgCost = s.TotalCost / float64(s.RepairCount)
		s.AvgValid = true
	}
	return s
}

// ComputeSinceLast derives the since-last-change summary from a snapshot.
func ComputeSinceLast(p entities.UserProfile) SinceLastSummary {
	changes := sortedOilChanges(p.OilChanges)
	if len(changes) == 0 {
		return SinceLastSummary{}
	}
	pivot := changes[len(changes)-1]
	s := SinceLastSummary{HasChange: true, PivotDate: pivot.Date}

	for _, add := range p.OilAdds {
		// Inclusive boundary: an add dated exactly on the change counts.
		if !add.Date.Before(pivot.Date) {
			s.TotalOilAdded += add.AmountLiters
		}
	}

	if p.LastMileage != nil {
		s.MileageSince = p.LastMileage.Mileage - pivot.Mileage
	}
	if s.MileageSince > 0 {
		s.AvgOilPer1000Km = s.TotalOilAdded / float64(s.MileageSince) * 1000
	}

	s.Remaining = entities.OilChangeIntervalKm - s.MileageSince
	s.DueNow = s.Remaining <= 0
	return s
}

// sortedOilChanges returns a copy sorted by date ascending. The sort is
// stable: same-day entries keep their stored order.
func sortedOilChanges(changes []entities.OilChange) []entities.OilChange {
	out := make([]entities.OilChange, len(changes))
	copy(out, changes)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// Text renders the summary for the chat surface.
func (s FullHistorySummary) Text() string {
	var b strings.Builder
	b.WriteString("Full history:\n")
	if s.AvgMileageValid {
		fmt.Fprintf(&b, "Average distance between changes: %.0f km\n", s.AvgMileageBetween)
	} else {
		b.WriteString("Average distance between changes: insufficient data\n")
	}
	if s.AvgDaysValid {
		fmt.Fprintf(&b, "Average time between changes: %.0f days\n", s.AvgDaysBetween)
	} else {
		b.WriteString("Average time between changes: insufficient data\n")
	}
	fmt.Fprintf(&b, "Average oil consumption: %.2f l/1000 km\n", s.AvgOilPer1000Km)
	fmt.Fprintf(&b, "Average top-up per interval: %.2f l", s.AvgOilPerInterval)
	return b.String()
}

func (s RepairSummary) Text() string {
	if s.RepairCount == 0 {
		return "No repair data yet."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Repairs: %d\nTotal cost: %.2f\nAverage cost: %.2f\nBy category:", s.RepairCount, s.TotalCost, s.AvgCost)
	for _, ct := range s.Categories {
		if ct.Count == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n%s: %d — %.2f", ct.Category.Label(), ct.Count, ct.Cost)
	}
	return b.String()
}

func (s SinceLastSummary) Text() string {
	if !s.HasChange {
		return "History is empty."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Since last change (%s):\n", s.PivotDate.Format(entities.DateLayout))
	fmt.Fprintf(&b, "Oil consumption: %.2f l/1000 km\n", s.AvgOilPer1000Km)
	fmt.Fprintf(&b, "Added: %.2f l\n", s.TotalOilAdded)
	if s.DueNow {
		b.WriteString("Remaining to next change: due now!")
	} else {
		fmt.Fprintf(&b, "Remaining to next change: %d km", s.Remaining)
	}
	return b.String()
}
