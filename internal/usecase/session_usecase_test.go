package usecase

import (
	"context"
	"errors"
	"testing"

	"autocare/internal/domain/entities"
	mock_interfaces "autocare/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newCoordinator(repo *mock_interfaces.MockIUserRepository) *SessionCoordinator {
	return NewSessionCoordinator(repo, NewFlowEngine(), NewAnalyticsUseCase(repo), NewExportUseCase(repo), nil)
}

func send(t *testing.T, c *SessionCoordinator, userID string, in entities.Payload) entities.Prompt {
	t.Helper()
	p, err := c.HandleUpdate(context.Background(), userID, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return p
}

func TestSessionCoordinator_StartAndStray(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIUserRepository(ctrl)
	c := newCoordinator(repo)

	t.Run("blank user id", func(t *testing.T) {
		_, err := c.HandleUpdate(context.Background(), "  ", entities.Payload{Text: "/start"})
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("start shows the menu", func(t *testing.T) {
		p := send(t, c, "u1", entities.Payload{Text: "/start"})
		assert.Contains(t, p.Text, "Welcome!")
		assert.Equal(t, MainMenu(), p.Buttons)
	})

	t.Run("stray text is ignored", func(t *testing.T) {
		p := send(t, c, "u1", entities.Payload{Text: "hello?"})
		assert.True(t, p.IsZero())
	})

	t.Run("unknown button outside a flow is ignored", func(t *testing.T) {
		p := send(t, c, "u1", entities.Payload{ButtonID: "bogus"})
		assert.True(t, p.IsZero())
	})
}

func TestSessionCoordinator_OilChangeCompletion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIUserRepository(ctrl)
	c := newCoordinator(repo)

	p := send(t, c, "u1", entities.Payload{ButtonID: BtnReplaceOil})
	assert.Contains(t, p.Text, "change date")

	send(t, c, "u1", entities.Payload{Text: "17.03.2025"})
	send(t, c, "u1", entities.Payload{Text: "50000"})

	var saved entities.UserProfile
	repo.EXPECT().FindByUser(gomock.Any(), "u1").Return(entities.UserProfile{UserID: "u1"}, nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, prof entities.UserProfile) error {
			saved = prof
			return nil
		})

	p = send(t, c, "u1", entities.Payload{Text: "Mobil 1"})
	assert.Contains(t, p.Text, "Saved:")
	assert.Equal(t, MainMenu(), p.Buttons)

	require.Len(t, saved.OilChanges, 1)
	assert.Equal(t, "Mobil 1", saved.OilChanges[0].OilName)
	require.NotNil(t, saved.LastMileage)
	assert.Equal(t, 50000, saved.LastMileage.Mileage)

	// The flow is finished; more text is stray input again.
	p = send(t, c, "u1", entities.Payload{Text: "anything"})
	assert.True(t, p.IsZero())
}

func TestSessionCoordinator_MissingProfileIsCreated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIUserRepository(ctrl)
	c := newCoordinator(repo)

	send(t, c, "u2", entities.Payload{ButtonID: BtnEnterMileage})

	repo.EXPECT().FindByUser(gomock.Any(), "u2").Return(entities.UserProfile{}, nil)
	repo.EXPECT().Create(gomock.Any(), "u2").Return(entities.UserProfile{UserID: "u2"}, nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	p := send(t, c, "u2", entities.Payload{Text: "12000"})
	assert.Contains(t, p.Text, "Mileage updated: 12000 km")
}

func TestSessionCoordinator_SaveFailurePreservesSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIUserRepository(ctrl)
	c := newCoordinator(repo)

	send(t, c, "u1", entities.Payload{ButtonID: BtnReplaceOil})
	send(t, c, "u1", entities.Payload{Text: "17.03.2025"})
	send(t, c, "u1", entities.Payload{Text: "50000"})

	repo.EXPECT().FindByUser(gomock.Any(), "u1").Return(entities.UserProfile{UserID: "u1"}, nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("dynamo down"))

	p := send(t, c, "u1", entities.Payload{Text: "Mobil 1"})
	assert.Equal(t, msgRetry, p.Text)

	// The draft survived: resending the last input retries the save.
	repo.EXPECT().FindByUser(gomock.Any(), "u1").Return(entities.UserProfile{UserID: "u1"}, nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	p = send(t, c, "u1", entities.Payload{Text: "Mobil 1"})
	assert.Contains(t, p.Text, "Saved:")
}

func TestSessionCoordinator_CancelMidFlow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIUserRepository(ctrl)
	c := newCoordinator(repo)

	send(t, c, "u1", entities.Payload{ButtonID: BtnAddRepair})
	send(t, c, "u1", entities.Payload{Text: "brakes"})

	p := send(t, c, "u1", entities.Payload{ButtonID: BtnCancel})
	assert.Equal(t, msgChooseAction, p.Text)

	// The abandoned draft is gone.
	p = send(t, c, "u1", entities.Payload{Text: "17.03.2025 14:30"})
	assert.True(t, p.IsZero())
}

func TestSessionCoordinator_MileageThresholdAdvisory(t *testing.T) {
	profileWithChange := entities.UserProfile{
		UserID:     "u1",
		OilChanges: []entities.OilChange{{Date: day("01.01.2025"), Mileage: 50000}},
	}

	run := func(t *testing.T, reading string) entities.Prompt {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		c := newCoordinator(repo)

		send(t, c, "u1", entities.Payload{ButtonID: BtnEnterMileage})
		repo.EXPECT().FindByUser(gomock.Any(), "u1").Return(profileWithChange, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		return send(t, c, "u1", entities.Payload{Text: reading})
	}

	t.Run("at threshold", func(t *testing.T) {
		p := run(t, "57000")
		assert.Contains(t, p.Text, "Time to change the oil!")
		assert.Contains(t, p.Text, "Did you top up oil?")
		require.Len(t, p.Buttons, 2)
		assert.Equal(t, BtnAddOilAfterCheck, p.Buttons[0].ID)
		assert.Equal(t, BtnNoOilAdded, p.Buttons[1].ID)
	})

	t.Run("below threshold", func(t *testing.T) {
		p := run(t, "56999")
		assert.NotContains(t, p.Text, "Time to change the oil!")
		assert.Contains(t, p.Text, "Did you top up oil?")
	})
}

func TestSessionCoordinator_OilCheckFollowUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIUserRepository(ctrl)
	c := newCoordinator(repo)

	t.Run("yes starts a top-up flow", func(t *testing.T) {
		p := send(t, c, "u1", entities.Payload{ButtonID: BtnAddOilAfterCheck})
		assert.Contains(t, p.Text, "top-up date")
	})

	t.Run("no returns to the menu", func(t *testing.T) {
		p := send(t, c, "u1", entities.Payload{ButtonID: BtnNoOilAdded})
		assert.Contains(t, p.Text, "oil level checked")
		assert.Equal(t, MainMenu(), p.Buttons)
	})
}

func TestSessionCoordinator_RepairListEditDelete(t *testing.T) {
	repair := entities.Repair{
		ID:         "r-1",
		Date:       day("15.01.2025"),
		Category:   entities.CategoryBrakes,
		Mileage:    51000,
		RepairCost: 500,
	}
	stored := entities.UserProfile{UserID: "u1", Repairs: []entities.Repair{repair}}

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		c := newCoordinator(repo)

		repo.EXPECT().FindByUser(gomock.Any(), "u1").Return(stored, nil)
		p := send(t, c, "u1", entities.Payload{ButtonID: BtnMyRepairs})
		assert.Contains(t, p.Text, "Your repairs:")
		assert.Contains(t, p.Text, "Brakes")
	})

	t.Run("edit with stale index", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		c := newCoordinator(repo)

		repo.EXPECT().FindByUser(gomock.Any(), "u1").Return(stored, nil)
		p := send(t, c, "u1", entities.Payload{ButtonID: "edit_repair:5"})
		assert.Equal(t, "Repair not found.", p.Text)
	})

	t.Run("edit seeds the flow", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		c := newCoordinator(repo)

		repo.EXPECT().FindByUser(gomock.Any(), "u1").Return(stored, nil)
		p := send(t, c, "u1", entities.Payload{ButtonID: "edit_repair:0"})
		assert.Contains(t, p.Text, "repair category")
	})

	t.Run("delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		c := newCoordinator(repo)

		repo.EXPECT().FindByUser(gomock.Any(), "u1").Return(stored, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, prof entities.UserProfile) error {
				if len(prof.Repairs) != 0 {
					t.Fatalf("expected repairs to be empty, got %d", len(prof.Repairs))
				}
				return nil
			})
		p := send(t, c, "u1", entities.Payload{ButtonID: "delete_repair:0"})
		assert.Equal(t, "Repair deleted.", p.Text)
	})

	t.Run("delete with stale index", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		c := newCoordinator(repo)

		repo.EXPECT().FindByUser(gomock.Any(), "u1").Return(stored, nil)
		p := send(t, c, "u1", entities.Payload{ButtonID: "delete_repair:7"})
		assert.Equal(t, "Repair not found.", p.Text)
	})
}

func TestSessionCoordinator_HistoryActions(t *testing.T) {
	t.Run("empty history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		c := newCoordinator(repo)

		repo.EXPECT().FindByUser(gomock.Any(), "u1").Return(entities.UserProfile{}, nil)
		p := send(t, c, "u1", entities.Payload{ButtonID: BtnFullHistory})
		assert.Equal(t, "History is empty.", p.Text)
	})

	t.Run("since last", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		c := newCoordinator(repo)

		stored := entities.UserProfile{
			UserID:      "u1",
			OilChanges:  []entities.OilChange{{Date: day("01.01.2025"), Mileage: 50000}},
			LastMileage: &entities.LastMileage{Date: day("10.01.2025"), Mileage: 52000},
		}
		repo.EXPECT().FindByUser(gomock.Any(), "u1").Return(stored, nil)
		p := send(t, c, "u1", entities.Payload{ButtonID: BtnLastHistory})
		assert.Contains(t, p.Text, "Since last change (01.01.2025)")
		assert.Contains(t, p.Text, "5000 km")
	})

	t.Run("export attaches the document", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		c := newCoordinator(repo)

		repo.EXPECT().FindByUser(gomock.Any(), "u1").Return(entities.UserProfile{UserID: "u1"}, nil)
		p := send(t, c, "u1", entities.Payload{ButtonID: BtnExport})
		require.NotNil(t, p.Document)
		assert.Equal(t, "maintenance-u1.csv", p.Document.Name)
	})

	t.Run("export with no profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		c := newCoordinator(repo)

		repo.EXPECT().FindByUser(gomock.Any(), "u1").Return(entities.UserProfile{}, nil)
		p := send(t, c, "u1", entities.Payload{ButtonID: BtnExport})
		assert.Equal(t, "Nothing to export yet.", p.Text)
		assert.Nil(t, p.Document)
	})
}

func TestApplyCompletion_StaleEditIndex(t *testing.T) {
	p := entities.UserProfile{UserID: "u1"}
	r := entities.Repair{ID: "r-1"}
	err := applyCompletion(&p, &Completion{Repair: &r, RepairIndex: 3})
	if !errors.Is(err, ErrRepairNotFound) {
		t.Fatalf("expected ErrRepairNotFound, got %v", err)
	}
	assert.Empty(t, p.Repairs)
}
