package usecase

import (
	"errors"
	"testing"
	"time"

	"autocare/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func advanceText(t *testing.T, e *FlowEngine, s *entities.ConversationSession, text string) Transition {
	t.Helper()
	tr, err := e.Advance(s, entities.Payload{Text: text})
	if err != nil {
		t.Fatalf("advance %q: unexpected error: %v", text, err)
	}
	return tr
}

func TestFlowEngine_OilChange(t *testing.T) {
	e := NewFlowEngine()
	s := entities.NewSession("u1")

	p := e.Start(s, entities.FlowOilChange)
	assert.Equal(t, entities.StepAwaitingDate, s.Step)
	assert.Contains(t, p.Text, "change date")

	t.Run("invalid date stays on step", func(t *testing.T) {
		tr := advanceText(t, e, s, "yesterday")
		assert.False(t, tr.Done)
		assert.Equal(t, entities.StepAwaitingDate, s.Step)
		assert.Contains(t, tr.Prompt.Text, "DD.MM.YYYY")
	})

	advanceText(t, e, s, "17.03.2025")
	require.Equal(t, entities.StepAwaitingMileage, s.Step)

	t.Run("negative mileage stays on step", func(t *testing.T) {
		tr := advanceText(t, e, s, "-5")
		assert.False(t, tr.Done)
		assert.Equal(t, entities.StepAwaitingMileage, s.Step)
	})

	advanceText(t, e, s, "50000")
	require.Equal(t, entities.StepAwaitingOilName, s.Step)

	tr := advanceText(t, e, s, "  5W-30  ")
	require.True(t, tr.Done)
	require.NotNil(t, tr.Completion)
	require.NotNil(t, tr.Completion.OilChange)

	oc := tr.Completion.OilChange
	assert.Equal(t, "5W-30", oc.OilName)
	assert.Equal(t, 50000, oc.Mileage)
	assert.Equal(t, "17.03.2025", oc.Date.Format(entities.DateLayout))

	// The change resets the reference mileage as well.
	require.NotNil(t, tr.Completion.LastMileage)
	assert.Equal(t, 50000, tr.Completion.LastMileage.Mileage)
}

func TestFlowEngine_OilAdd(t *testing.T) {
	e := NewFlowEngine()
	s := entities.NewSession("u1")

	e.Start(s, entities.FlowOilAdd)
	advanceText(t, e, s, "01.04.2025")
	advanceText(t, e, s, "52000")
	require.Equal(t, entities.StepAwaitingAmount, s.Step)

	t.Run("non-numeric amount stays on step", func(t *testing.T) {
		tr := advanceText(t, e, s, "half a litre")
		assert.False(t, tr.Done)
		assert.Equal(t, entities.StepAwaitingAmount, s.Step)
	})

	tr := advanceText(t, e, s, "0.5")
	require.True(t, tr.Done)
	require.NotNil(t, tr.Completion.OilAdd)
	assert.Equal(t, 0.5, tr.Completion.OilAdd.AmountLiters)
	assert.Nil(t, tr.Completion.LastMileage)
}

func TestFlowEngine_RepairWithParts(t *testing.T) {
	e := NewFlowEngine()
	s := entities.NewSession("u1")

	p := e.Start(s, entities.FlowRepair)
	assert.NotEmpty(t, s.RepairDraft.ID)
	require.Len(t, p.Buttons, len(entities.AllRepairCategories()))

	// Category arrives as a button press.
	tr, err := e.Advance(s, entities.Payload{ButtonID: "cat:brakes"})
	require.NoError(t, err)
	assert.False(t, tr.Done)
	require.Equal(t, entities.StepAwaitingDateTime, s.Step)

	advanceText(t, e, s, "17.03.2025 14:30")
	advanceText(t, e, s, "61000")
	require.Equal(t, entities.StepAwaitingPartName, s.Step)

	// Two parts: 100 + 200.
	advanceText(t, e, s, "brake pads")
	require.Equal(t, entities.StepAwaitingPartCost, s.Step)
	advanceText(t, e, s, "100")
	require.Equal(t, entities.StepAwaitingMoreParts, s.Step)

	tr, err = e.Advance(s, entities.Payload{ButtonID: BtnPartMoreYes})
	require.NoError(t, err)
	require.Equal(t, entities.StepAwaitingPartName, s.Step)

	advanceText(t, e, s, "brake discs")
	advanceText(t, e, s, "200")

	tr, err = e.Advance(s, entities.Payload{ButtonID: BtnPartMoreNo})
	require.NoError(t, err)
	require.Equal(t, entities.StepAwaitingRepairCost, s.Step)

	advanceText(t, e, s, "500")
	require.Equal(t, entities.StepAwaitingComment, s.Step)

	advanceText(t, e, s, "front axle")
	require.Equal(t, entities.StepAwaitingPhoto, s.Step)

	tr = advanceText(t, e, s, "-")
	require.True(t, tr.Done)
	require.NotNil(t, tr.Completion.Repair)

	r := tr.Completion.Repair
	assert.Equal(t, entities.RepairCategory("brakes"), r.Category)
	assert.Equal(t, "front axle", r.Comment)
	assert.Empty(t, r.PhotoRef)
	require.Len(t, r.Parts, 2)
	assert.Equal(t, 800.0, r.TotalCost())
	assert.Equal(t, -1, tr.Completion.RepairIndex)
}

func TestFlowEngine_RepairSkipParts(t *testing.T) {
	e := NewFlowEngine()
	s := entities.NewSession("u1")

	e.Start(s, entities.FlowRepair)
	advanceText(t, e, s, "engine")
	advanceText(t, e, s, "01.02.2025 09:00")
	advanceText(t, e, s, "43000")
	require.Equal(t, entities.StepAwaitingPartName, s.Step)

	// "-" skips the whole parts loop.
	advanceText(t, e, s, "-")
	require.Equal(t, entities.StepAwaitingRepairCost, s.Step)

	advanceText(t, e, s, "1200")
	advanceText(t, e, s, "-")
	tr, err := e.Advance(s, entities.Payload{PhotoRef: "photo-123"})
	require.NoError(t, err)
	require.True(t, tr.Done)

	r := tr.Completion.Repair
	assert.Empty(t, r.Parts)
	assert.Empty(t, r.Comment)
	assert.Equal(t, "photo-123", r.PhotoRef)
	assert.Equal(t, 1200.0, r.TotalCost())
}

func TestFlowEngine_RepairEditReplacesParts(t *testing.T) {
	e := NewFlowEngine()
	s := entities.NewSession("u1")

	seed := entities.Repair{
		ID:       "r-1",
		Category: entities.RepairCategory("suspension"),
		Mileage:  70000,
		Parts:    []entities.Part{{Name: "shock absorber", Cost: 300}},
	}
	e.StartRepairEdit(s, seed, 2)
	assert.Equal(t, 2, s.EditIndex)

	advanceText(t, e, s, "suspension")
	advanceText(t, e, s, "10.05.2025 11:00")
	advanceText(t, e, s, "71000")

	// Entering the parts loop drops the seeded parts.
	assert.Empty(t, s.RepairDraft.Parts)

	advanceText(t, e, s, "-")
	advanceText(t, e, s, "250")
	advanceText(t, e, s, "-")
	tr := advanceText(t, e, s, "-")

	require.True(t, tr.Done)
	assert.Equal(t, 2, tr.Completion.RepairIndex)
	assert.Equal(t, "r-1", tr.Completion.Repair.ID)
	assert.Empty(t, tr.Completion.Repair.Parts)
}

func TestFlowEngine_Mileage(t *testing.T) {
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	e := &FlowEngine{now: func() time.Time { return fixed }}
	s := entities.NewSession("u1")

	e.Start(s, entities.FlowMileage)
	require.Equal(t, entities.StepAwaitingCurrentMileage, s.Step)

	tr := advanceText(t, e, s, "57000")
	require.True(t, tr.Done)
	require.NotNil(t, tr.Completion.LastMileage)
	assert.Equal(t, 57000, tr.Completion.LastMileage.Mileage)
	assert.Equal(t, fixed, tr.Completion.LastMileage.Date)
	assert.Nil(t, tr.Completion.OilChange)
}

func TestFlowEngine_UnknownFlowAndStep(t *testing.T) {
	e := NewFlowEngine()

	s := entities.NewSession("u1")
	s.Flow = entities.Flow("teleport")
	_, err := e.Advance(s, entities.Payload{Text: "x"})
	if !errors.Is(err, ErrUnknownFlow) {
		t.Fatalf("expected ErrUnknownFlow, got %v", err)
	}

	s = entities.NewSession("u1")
	s.Flow = entities.FlowOilChange
	s.Step = entities.Step("awaiting_wheels")
	_, err = e.Advance(s, entities.Payload{Text: "x"})
	if !errors.Is(err, ErrUnknownStep) {
		t.Fatalf("expected ErrUnknownStep, got %v", err)
	}
}
