package usecase

import (
	"fmt"
	"strings"

	"autocare/internal/domain/entities"
)

// The parts sub-loop collects zero or more parts inside the repair flow:
//
//	AwaitingPartName -> AwaitingPartCost -> AwaitingMoreParts
//	     |                                      |         |
//	     '-- "-" --> AwaitingRepairCost   yes --'   no --> AwaitingRepairCost
//
// Entry always replaces the draft's parts list; an edited repair gets its
// parts re-entered from scratch rather than appended to.

// enterPartsLoop addresses the first sub-loop step and clears the parts.
func (e *FlowEngine) enterPartsLoop(s *entities.ConversationSession) entities.Prompt {
	s.RepairDraft.Parts = nil
	s.PendingPartName = ""
	s.Step = entities.StepAwaitingPartName
	return entities.Prompt{Text: `Enter a part name (or "-" if no parts were used):`}
}

func (e *FlowEngine) advancePartsLoop(s *entities.ConversationSession, in entities.Payload) (Transition, error) {
	switch s.Step {
	case entities.StepAwaitingPartName:
		text := strings.TrimSpace(in.Text)
		if text == SkipSentinel {
			s.PendingPartName = ""
			s.Step = entities.StepAwaitingRepairCost
			return ask("Enter the repair (labor) cost:"), nil
		}
		if text == "" {
			return ask(`Please enter a part name (or "-" to skip):`), nil
		}
		s.PendingPartName = text
		s.Step = entities.StepAwaitingPartCost
		return ask("Enter the part cost:"), nil

	case entities.StepAwaitingPartCost:
		v, ok := entities.ParseAmount(in.Text)
		if !ok {
			return ask("Please enter the cost as a non-negative number:"), nil
		}
		s.RepairDraft.Parts = append(s.RepairDraft.Parts, entities.Part{Name: s.PendingPartName, Cost: v})
		s.PendingPartName = ""
		s.Step = entities.StepAwaitingMoreParts
		return ask("Add another part?", morePartsButtons()...), nil

	case entities.StepAwaitingMoreParts:
		switch morePartsChoice(in) {
		case "yes":
			s.Step = entities.StepAwaitingPartName
			return ask("Enter a part name:"), nil
		case "no":
			s.Step = entities.StepAwaitingRepairCost
			return ask("Enter the repair (labor) cost:"), nil
		default:
			return ask("Please answer with the buttons:", morePartsButtons()...), nil
		}

	default:
		return Transition{}, fmt.Errorf("%w: %s/%s", ErrUnknownStep, s.Flow, s.Step)
	}
}

func morePartsChoice(in entities.Payload) string {
	switch in.ButtonID {
	case BtnPartMoreYes:
		return "yes"
	case BtnPartMoreNo:
		return "no"
	}
	switch strings.ToLower(strings.TrimSpace(in.Text)) {
	case "yes":
		return "yes"
	case "no":
		return "no"
	}
	return ""
}

func morePartsButtons() []entities.Button {
	return []entities.Button{
		{ID: BtnPartMoreYes, Label: "Yes"},
		{ID: BtnPartMoreNo, Label: "No"},
	}
}
