package usecase

import (
	"fmt"
	"strings"

	"autocare/internal/domain/entities"
)

// Button ids the transport sends back on presses. Menu buttons start or
// replace a flow; the prefixed ids carry a repair index or a category.
const (
	BtnReplaceOil       = "replace_oil"
	BtnAddOil           = "add_oil"
	BtnAddOilAfterCheck = "add_oil_after_check"
	BtnNoOilAdded       = "no_oil_added"
	BtnAddRepair        = "add_repair"
	BtnMyRepairs        = "my_repairs"
	BtnEnterMileage     = "enter_mileage"
	BtnFullHistory      = "full_history"
	BtnLastHistory      = "last_history"
	BtnRepairsSummary   = "repairs_summary"
	BtnExport           = "export"
	BtnCancel           = "cancel"
	BtnPartMoreYes      = "part_more:yes"
	BtnPartMoreNo       = "part_more:no"

	btnCategoryPrefix     = "cat:"
	btnEditRepairPrefix   = "edit_repair:"
	btnDeleteRepairPrefix = "delete_repair:"
)

// MainMenu is the top-level action keyboard.
func MainMenu() []entities.Button {
	return []entities.Button{
		{ID: BtnReplaceOil, Label: "Oil change"},
		{ID: BtnAddOil, Label: "Oil top-up"},
		{ID: BtnAddRepair, Label: "Add repair"},
		{ID: BtnMyRepairs, Label: "My repairs"},
		{ID: BtnEnterMileage, Label: "Enter current mileage"},
		{ID: BtnFullHistory, Label: "History (full)"},
		{ID: BtnLastHistory, Label: "History (since last change)"},
		{ID: BtnRepairsSummary, Label: "Repair costs"},
		{ID: BtnExport, Label: "Export CSV"},
	}
}

func withMainMenu(p entities.Prompt) entities.Prompt {
	p.Buttons = MainMenu()
	return p
}

// repairListPrompt renders the stored repairs with per-item edit/delete
// buttons addressed by index.
func repairListPrompt(repairs []entities.Repair) entities.Prompt {
	if len(repairs) == 0 {
		return withMainMenu(entities.Prompt{Text: "No repairs recorded yet."})
	}
	var b strings.Builder
	b.WriteString("Your repairs:\n")
	buttons := make([]entities.Button, 0, 2*len(repairs)+1)
	for i, r := range repairs {
		fmt.Fprintf(&b, "%d. %s — %s, %d km, %.2f\n",
			i+1, r.Date.Format(entities.DateLayout), r.Category.Label(), r.Mileage, r.TotalCost())
		buttons = append(buttons,
			entities.Button{ID: fmt.Sprintf("%s%d", btnEditRepairPrefix, i), Label: fmt.Sprintf("Edit %d", i+1)},
			entities.Button{ID: fmt.Sprintf("%s%d", btnDeleteRepairPrefix, i), Label: fmt.Sprintf("Delete %d", i+1)},
		)
	}
	buttons = append(buttons, entities.Button{ID: BtnCancel, Label: "Back"})
	return entities.Prompt{Text: b.String(), Buttons: buttons}
}
