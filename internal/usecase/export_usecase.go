package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"autocare/internal/domain/entities"
	"autocare/internal/usecase/interfaces"
)

// ExportHeader is the fixed column set of the flat export.
var ExportHeader = []string{
	"Type", "Date", "Category", "PartName", "PartCost",
	"Mileage", "RepairCost", "Comment", "OilName", "OilAmount",
}

// Row type tags in the export's first column.
const (
	exportTypeOilChange = "oil_change"
	exportTypeOilAdd    = "oil_add"
	exportTypeRepair    = "repair"
)

// IExportUseCase flattens a user's records into a downloadable CSV.
type IExportUseCase interface {
	ExportCSV(ctx context.Context, userID string) (entities.Document, error)
}

type ExportUseCase struct {
	repo interfaces.IUserRepository
}

var _ IExportUseCase = (*ExportUseCase)(nil)

func NewExportUseCase(repo interfaces.IUserRepository) *ExportUseCase {
	return &ExportUseCase{repo: repo}
}

func (u *ExportUseCase) ExportCSV(ctx context.Context, userID string) (entities.Document, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Document{}, ErrInvalidUserID
	}
	p, err := u.repo.FindByUser(ctx, userID)
	if err != nil {
		return entities.Document{}, err
	}
	if p.UserID == "" {
		return entities.Document{}, ErrProfileNotFound
	}
	return entities.Document{
		Name:    fmt.Sprintf("maintenance-%s.csv", userID),
		MIME:    "text/csv",
		Content: RenderCSV(p),
	}, nil
}

// BuildRows flattens the three record sequences in stored order: all oil
// changes, then all oil adds, then all repairs. A repair emits one row per
// part; a part-less repair still emits exactly one row with PartCost 0.
func BuildRows(p entities.UserProfile) [][]string {
	rows := make([][]string, 0, len(p.OilChanges)+len(p.OilAdds)+len(p.Repairs))

	for _, oc := range p.OilChanges {
		rows = append(rows, []string{
			exportTypeOilChange,
			oc.Date.Format(entities.DateLayout),
			"", "", "",
			strconv.Itoa(oc.Mileage),
			"", "",
			oc.OilName,
			"",
		})
	}

	for _, oa := range p.OilAdds {
		rows = append(rows, []string{
			exportTypeOilAdd,
			oa.Date.Format(entities.DateLayout),
			"", "", "",
			strconv.Itoa(oa.Mileage),
			"", "", "",
			formatFloat(oa.AmountLiters),
		})
	}

	for _, r := range p.Repairs {
		if len(r.Parts) == 0 {
			rows = append(rows, repairRow(r, entities.Part{Name: "", Cost: 0}))
			continue
		}
		for _, part := range r.Parts {
			rows = append(rows, repairRow(r, part))
		}
	}
	return rows
}

func repairRow(r entities.Repair, part entities.Part) []string {
	return []string{
		exportTypeRepair,
		r.Date.Format(entities.DateTimeLayout),
		string(r.Category),
		part.Name,
		formatFloat(part.Cost),
		strconv.Itoa(r.Mileage),
		formatFloat(r.RepairCost),
		r.Comment,
		"", "",
	}
}

// RenderCSV joins the rows with commas. Fields are deliberately not
// comma-escaped (the reference behavior; see DESIGN.md); CR/LF are
// stripped from free text so a comment cannot break row framing.
func RenderCSV(p entities.UserProfile) []byte {
	var b strings.Builder
	b.WriteString(strings.Join(ExportHeader, ","))
	b.WriteByte('\n')
	for _, row := range BuildRows(p) {
		for i, field := range row {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(sanitizeField(field))
		}
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

func sanitizeField(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
