package response

import (
	"autocare/internal/domain/entities"
	"autocare/internal/usecase"
)

// FullHistoryResponse mirrors FullHistorySummary. The interval averages are
// pointers: nil means "insufficient data", which a zero would misreport.
type FullHistoryResponse struct {
	ChangeCount         int      `json:"change_count"`
	AvgMileageBetweenKm *float64 `json:"avg_mileage_between_km,omitempty"`
	AvgDaysBetween      *float64 `json:"avg_days_between,omitempty"`
	TotalOilAddedLiters float64  `json:"total_oil_added_liters"`
	AvgOilPer1000Km     float64  `json:"avg_oil_per_1000_km"`
	AvgOilPerInterval   float64  `json:"avg_oil_per_interval"`
	Text                string   `json:"text"`
}

func FromFullHistory(s usecase.FullHistorySummary) FullHistoryResponse {
	r := FullHistoryResponse{
		ChangeCount:         s.ChangeCount,
		TotalOilAddedLiters: s.TotalOilAdded,
		AvgOilPer1000Km:     s.AvgOilPer1000Km,
		AvgOilPerInterval:   s.AvgOilPerInterval,
		Text:                s.Text(),
	}
	if s.AvgMileageValid {
		v := s.AvgMileageBetween
		r.AvgMileageBetweenKm = &v
	}
	if s.AvgDaysValid {
		v := s.AvgDaysBetween
		r.AvgDaysBetween = &v
	}
	return r
}

type CategoryTotalResponse struct {
	Category string  `json:"category"`
	Count    int     `json:"count"`
	Cost     float64 `json:"cost"`
}

type RepairSummaryResponse struct {
	RepairCount int                     `json:"repair_count"`
	TotalCost   float64                 `json:"total_cost"`
	AvgCost     *float64                `json:"avg_cost,omitempty"`
	Categories  []CategoryTotalResponse `json:"categories"`
	Text        string                  `json:"text"`
}

func FromRepairSummary(s usecase.RepairSummary) RepairSummaryResponse {
	r := RepairSummaryResponse{
		RepairCount: s.RepairCount,
		TotalCost:   s.TotalCost,
		Text:        s.Text(),
	}
	if s.AvgValid {
		v := s.AvgCost
		r.AvgCost = &v
	}
	for _, ct := range s.Categories {
		r.Categories = append(r.Categories, CategoryTotalResponse{
			Category: string(ct.Category),
			Count:    ct.Count,
			Cost:     ct.Cost,
		})
	}
	return r
}

type SinceLastResponse struct {
	HasChange           bool    `json:"has_change"`
	PivotDate           string  `json:"pivot_date,omitempty"`
	TotalOilAddedLiters float64 `json:"total_oil_added_liters"`
	MileageSinceKm      int     `json:"mileage_since_km"`
	AvgOilPer1000Km     float64 `json:"avg_oil_per_1000_km"`
	RemainingKm         int     `json:"remaining_km"`
	DueNow              bool    `json:"due_now"`
	Text                string  `json:"text"`
}

func FromSinceLast(s usecase.SinceLastSummary) SinceLastResponse {
	r := SinceLastResponse{
		HasChange:           s.HasChange,
		TotalOilAddedLiters: s.TotalOilAdded,
		MileageSinceKm:      s.MileageSince,
		AvgOilPer1000Km:     s.AvgOilPer1000Km,
		RemainingKm:         s.Remaining,
		DueNow:              s.DueNow,
		Text:                s.Text(),
	}
	if s.HasChange {
		r.PivotDate = s.PivotDate.Format(entities.DateLayout)
	}
	return r
}
