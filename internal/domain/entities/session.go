package entities

import "time"

// Flow identifies one named data-collection conversation.
type Flow string

const (
	FlowNone      Flow = ""
	FlowOilChange Flow = "oil_change"
	FlowOilAdd    Flow = "oil_add"
	FlowRepair    Flow = "repair"
	FlowMileage   Flow = "mileage"
)

// Step addresses one state within a flow. The set is closed; the flow
// engine treats any other value as a hard error rather than a silent no-op.
type Step string

const (
	StepNone Step = ""

	// Linear oil-change / oil-add steps.
	StepAwaitingDate    Step = "awaiting_date"
	StepAwaitingMileage Step = "awaiting_mileage"
	StepAwaitingOilName Step = "awaiting_oil_name"
	StepAwaitingAmount  Step = "awaiting_amount"

	// Repair capture steps.
	StepAwaitingCategory   Step = "awaiting_category"
	StepAwaitingDateTime   Step = "awaiting_date_time"
	StepAwaitingPartName   Step = "awaiting_part_name"
	StepAwaitingPartCost   Step = "awaiting_part_cost"
	StepAwaitingMoreParts  Step = "awaiting_more_parts"
	StepAwaitingRepairCost Step = "awaiting_repair_cost"
	StepAwaitingComment    Step = "awaiting_comment"
	StepAwaitingPhoto      Step = "awaiting_photo"

	// Standalone current-mileage step.
	StepAwaitingCurrentMileage Step = "awaiting_current_mileage"
)

// Payload is one inbound user input: free text, a button press, or a photo
// reference. Exactly one field is expected to be set.
type Payload struct {
	Text     string
	ButtonID string
	PhotoRef string
}

// OilDraft accumulates the fields of an oil change or oil top-up while the
// flow is in progress.
type OilDraft struct {
	Date         time.Time
	Mileage      int
	OilName      string
	AmountLiters float64
}

// ConversationSession is the transient per-user state of one in-flight
// flow. It is never persisted: the draft either completes into a record or
// is discarded.
type ConversationSession struct {
	UserID string
	Flow   Flow
	Step   Step

	// EditIndex is the repair being replaced, or -1 when capturing a new
	// record.
	EditIndex int

	OilDraft    OilDraft
	RepairDraft Repair

	// PendingPartName holds a part name while its cost is being collected.
	PendingPartName string
}

// NewSession starts an empty session for a user with no active flow.
func NewSession(userID string) *ConversationSession {
	return &ConversationSession{UserID: userID, EditIndex: -1}
}
