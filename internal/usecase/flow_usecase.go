package usecase

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"autocare/internal/domain/entities"

	"github.com/google/uuid"
)

var (
	ErrUnknownFlow = errors.New("unknown flow")
	ErrUnknownStep = errors.New("unknown flow step")
)

// SkipSentinel is the token that skips an optional step (parts list,
// comment, photo).
const SkipSentinel = "-"

// Completion carries the finished entity a flow produced. Exactly one of
// OilChange/OilAdd/Repair/LastMileage-only is set; the coordinator applies
// it to the profile and persists once, atomically.
type Completion struct {
	OilChange *entities.OilChange
	OilAdd    *entities.OilAdd
	Repair    *entities.Repair

	// RepairIndex is the repair slot being replaced by an edit flow;
	// -1 appends.
	RepairIndex int

	// LastMileage is set when the completion overwrites the last known
	// mileage: always for oil changes, and alone for the standalone
	// mileage step.
	LastMileage *entities.LastMileage
}

// Transition is the outcome of feeding one input to the engine: a prompt
// for the user and, when Done, the completion to persist.
type Transition struct {
	Prompt     entities.Prompt
	Done       bool
	Completion *Completion
}

// IFlowEngine drives one data-collection conversation step by step.
//
// Advance mutates only the session: validation failures keep the session on
// the same step with the draft untouched, success stores the value and
// addresses the next step. Persistence never happens here.
type IFlowEngine interface {
	Start(s *entities.ConversationSession, flow entities.Flow) entities.Prompt
	StartRepairEdit(s *entities.ConversationSession, seed entities.Repair, index int) entities.Prompt
	Advance(s *entities.ConversationSession, in entities.Payload) (Transition, error)
}

type FlowEngine struct {
	now func() time.Time
}

var _ IFlowEngine = (*FlowEngine)(nil)

func NewFlowEngine() *FlowEngine {
	return &FlowEngine{now: time.Now}
}

// Start begins a fresh flow, discarding whatever the session held before.
func (e *FlowEngine) Start(s *entities.ConversationSession, flow entities.Flow) entities.Prompt {
	s.Flow = flow
	s.EditIndex = -1
	s.OilDraft = entities.OilDraft{}
	s.RepairDraft = entities.Repair{}
	s.PendingPartName = ""

	switch flow {
	case entities.FlowOilChange:
		s.Step = entities.StepAwaitingDate
		return entities.Prompt{Text: "Enter the change date (e.g. 17.03.2025):"}
	case entities.FlowOilAdd:
		s.Step = entities.StepAwaitingDate
		return entities.Prompt{Text: "Enter the top-up date (e.g. 17.03.2025):"}
	case entities.FlowRepair:
		s.RepairDraft = entities.Repair{ID: uuid.NewString()}
		s.Step = entities.StepAwaitingCategory
		return entities.Prompt{Text: "Choose the repair category:", Buttons: categoryButtons()}
	case entities.FlowMileage:
		s.Step = entities.StepAwaitingCurrentMileage
		return entities.Prompt{Text: "Enter the current mileage (km):"}
	default:
		s.Flow = entities.FlowNone
		s.Step = entities.StepNone
		return entities.Prompt{}
	}
}

// StartRepairEdit begins the repair flow seeded with an existing repair.
// The step sequence is identical to capture; the parts list is replaced
// wholesale when the flow reaches the parts sub-loop.
func (e *FlowEngine) StartRepairEdit(s *entities.ConversationSession, seed entities.Repair, index int) entities.Prompt {
	s.Flow = entities.FlowRepair
	s.Step = entities.StepAwaitingCategory
	s.EditIndex = index
	s.OilDraft = entities.OilDraft{}
	s.RepairDraft = seed
	s.PendingPartName = ""
	return entities.Prompt{Text: "Choose the repair category:", Buttons: categoryButtons()}
}

// Advance feeds one payload to the session's current step.
func (e *FlowEngine) Advance(s *entities.ConversationSession, in entities.Payload) (Transition, error) {
	switch s.Flow {
	case entities.FlowOilChange:
		return e.advanceOilChange(s, in)
	case entities.FlowOilAdd:
		return e.advanceOilAdd(s, in)
	case entities.FlowRepair:
		return e.advanceRepair(s, in)
	case entities.FlowMileage:
		return e.advanceMileage(s, in)
	default:
		return Transition{}, fmt.Errorf("%w: %q", ErrUnknownFlow, s.Flow)
	}
}

func (e *FlowEngine) advanceOilChange(s *entities.ConversationSession, in entities.Payload) (Transition, error) {
	switch s.Step {
	case entities.StepAwaitingDate:
		d, err := entities.ParseDate(in.Text)
		if err != nil {
			return ask("Please enter the date as DD.MM.YYYY (e.g. 17.03.2025):"), nil
		}
		s.OilDraft.Date = d
		s.Step = entities.StepAwaitingMileage
		return ask("Enter the mileage at the change (km):"), nil

	case entities.StepAwaitingMileage:
		m, ok := entities.ParseMileage(in.Text)
		if !ok {
			return ask("Please enter the mileage as a non-negative number:"), nil
		}
		s.OilDraft.Mileage = m
		s.Step = entities.StepAwaitingOilName
		return ask("Enter the oil name:"), nil

	case entities.StepAwaitingOilName:
		if !entities.ValidText(in.Text) {
			return ask("Please enter a non-empty oil name:"), nil
		}
		oc := entities.OilChange{
			Date:    s.OilDraft.Date,
			Mileage: s.OilDraft.Mileage,
			OilName: strings.TrimSpace(in.Text),
		}
		text := fmt.Sprintf("Saved:\nDate: %s\nMileage: %d km\nOil: %s",
			oc.Date.Format(entities.DateLayout), oc.Mileage, oc.OilName)
		return Transition{
			Prompt: entities.Prompt{Text: text},
			Done:   true,
			Completion: &Completion{
				OilChange:   &oc,
				RepairIndex: -1,
				// An oil change always resets the reference mileage.
				LastMileage: &entities.LastMileage{Date: oc.Date, Mileage: oc.Mileage},
			},
		}, nil

	default:
		return Transition{}, fmt.Errorf("%w: %s/%s", ErrUnknownStep, s.Flow, s.Step)
	}
}

func (e *FlowEngine) advanceOilAdd(s *entities.ConversationSession, in entities.Payload) (Transition, error) {
	switch s.Step {
	case entities.StepAwaitingDate:
		d, err := entities.ParseDate(in.Text)
		if err != nil {
			return ask("Please enter the date as DD.MM.YYYY (e.g. 17.03.2025):"), nil
		}
		s.OilDraft.Date = d
		s.Step = entities.StepAwaitingMileage
		return ask("Enter the mileage at the top-up (km):"), nil

	case entities.StepAwaitingMileage:
		m, ok := entities.ParseMileage(in.Text)
		if !ok {
			return ask("Please enter the mileage as a non-negative number:"), nil
		}
		s.OilDraft.Mileage = m
		s.Step = entities.StepAwaitingAmount
		return ask("Enter the amount of oil added (litres):"), nil

	case entities.StepAwaitingAmount:
		v, ok := entities.ParseAmount(in.Text)
		if !ok {
			return ask("Please enter the amount as a non-negative number:"), nil
		}
		oa := entities.OilAdd{
			Date:         s.OilDraft.Date,
			Mileage:      s.OilDraft.Mileage,
			AmountLiters: v,
		}
		text := fmt.Sprintf("Saved:\nDate: %s\nMileage: %d km\nAmount: %.2f l",
			oa.Date.Format(entities.DateLayout), oa.Mileage, oa.AmountLiters)
		return Transition{
			Prompt:     entities.Prompt{Text: text},
			Done:       true,
			Completion: &Completion{OilAdd: &oa, RepairIndex: -1},
		}, nil

	default:
		return Transition{}, fmt.Errorf("%w: %s/%s", ErrUnknownStep, s.Flow, s.Step)
	}
}

func (e *FlowEngine) advanceRepair(s *entities.ConversationSession, in entities.Payload) (Transition, error) {
	switch s.Step {
	case entities.StepAwaitingCategory:
		raw := in.Text
		if v, ok := strings.CutPrefix(in.ButtonID, btnCategoryPrefix); ok {
			raw = v
		}
		cat, ok := entities.ParseRepairCategory(raw)
		if !ok {
			return ask("Please choose one of the categories:", categoryButtons()...), nil
		}
		s.RepairDraft.Category = cat
		s.Step = entities.StepAwaitingDateTime
		return ask("Enter the repair date and time (e.g. 17.03.2025 14:30):"), nil

	case entities.StepAwaitingDateTime:
		d, err := entities.ParseDateTime(in.Text)
		if err != nil {
			return ask("Please enter the date and time as DD.MM.YYYY HH:mm (e.g. 17.03.2025 14:30):"), nil
		}
		s.RepairDraft.Date = d
		s.Step = entities.StepAwaitingMileage
		return ask("Enter the mileage at the repair (km):"), nil

	case entities.StepAwaitingMileage:
		m, ok := entities.ParseMileage(in.Text)
		if !ok {
			return ask("Please enter the mileage as a non-negative number:"), nil
		}
		s.RepairDraft.Mileage = m
		return Transition{Prompt: e.enterPartsLoop(s)}, nil

	case entities.StepAwaitingPartName, entities.StepAwaitingPartCost, entities.StepAwaitingMoreParts:
		return e.advancePartsLoop(s, in)

	case entities.StepAwaitingRepairCost:
		v, ok := entities.ParseAmount(in.Text)
		if !ok {
			return ask("Please enter the cost as a non-negative number:"), nil
		}
		s.RepairDraft.RepairCost = v
		s.Step = entities.StepAwaitingComment
		return ask(`Enter a comment (or "-" to skip):`), nil

	case entities.StepAwaitingComment:
		text := strings.TrimSpace(in.Text)
		if text == "" {
			return ask(`Please enter a comment or "-" to skip:`), nil
		}
		if text == SkipSentinel {
			s.RepairDraft.Comment = ""
		} else {
			s.RepairDraft.Comment = text
		}
		s.Step = entities.StepAwaitingPhoto
		return ask(`Send a photo of the repair (or "-" to skip):`), nil

	case entities.StepAwaitingPhoto:
		switch {
		case in.PhotoRef != "":
			s.RepairDraft.PhotoRef = in.PhotoRef
		case strings.TrimSpace(in.Text) == SkipSentinel:
			s.RepairDraft.PhotoRef = ""
		default:
			return ask(`Please send a photo or "-" to skip:`), nil
		}
		repair := s.RepairDraft
		return Transition{
			Prompt:     entities.Prompt{Text: repairSummaryText(repair)},
			Done:       true,
			Completion: &Completion{Repair: &repair, RepairIndex: s.EditIndex},
		}, nil

	default:
		return Transition{}, fmt.Errorf("%w: %s/%s", ErrUnknownStep, s.Flow, s.Step)
	}
}

// advanceMileage is the standalone current-mileage step. The threshold
// advisory and the top-up follow-up are composed by the coordinator after
// the reading is persisted.
func (e *FlowEngine) advanceMileage(s *entities.ConversationSession, in entities.Payload) (Transition, error) {
	switch s.Step {
	case entities.StepAwaitingCurrentMileage:
		m, ok := entities.ParseMileage(in.Text)
		if !ok {
			return ask("Please enter the mileage as a non-negative number:"), nil
		}
		return Transition{
			Prompt: entities.Prompt{Text: fmt.Sprintf("Mileage updated: %d km", m)},
			Done:   true,
			Completion: &Completion{
				RepairIndex: -1,
				LastMileage: &entities.LastMileage{Date: e.now(), Mileage: m},
			},
		}, nil
	default:
		return Transition{}, fmt.Errorf("%w: %s/%s", ErrUnknownStep, s.Flow, s.Step)
	}
}

// ask keeps the conversation going: a prompt, no completion.
func ask(text string, buttons ...entities.Button) Transition {
	return Transition{Prompt: entities.Prompt{Text: text, Buttons: buttons}}
}

func categoryButtons() []entities.Button {
	cats := entities.AllRepairCategories()
	buttons := make([]entities.Button, 0, len(cats))
	for _, c := range cats {
		buttons = append(buttons, entities.Button{ID: btnCategoryPrefix + string(c), Label: c.Label()})
	}
	return buttons
}

func repairSummaryText(r entities.Repair) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Repair saved:\nCategory: %s\nDate: %s\nMileage: %d km\n",
		r.Category.Label(), r.Date.Format(entities.DateTimeLayout), r.Mileage)
	partsCost := 0.0
	for _, p := range r.Parts {
		partsCost += p.Cost
	}
	fmt.Fprintf(&b, "Parts: %d (%.2f)\nLabor: %.2f\nTotal: %.2f", len(r.Parts), partsCost, r.RepairCost, r.TotalCost())
	return b.String()
}
