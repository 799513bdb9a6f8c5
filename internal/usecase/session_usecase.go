package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"

	"autocare/internal/domain/entities"
	"autocare/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var ErrRepairNotFound = errors.New("repair not found")

const (
	msgRetry        = "Could not save your data, please try again."
	msgWentWrong    = "Something went wrong, please try again."
	msgChooseAction = "Choose an action:"
)

// ISessionCoordinator resolves one inbound update to a reply prompt.
//
// An all-zero prompt means the input was silently ignored (stray message
// with no active flow). Errors are reserved for invalid requests; every
// runtime failure degrades to a user-visible message instead.
type ISessionCoordinator interface {
	HandleUpdate(ctx context.Context, userID string, in entities.Payload) (entities.Prompt, error)
}

// SessionCoordinator owns the transient per-user sessions and guarantees
// at most one step transition per user at a time. Sessions live in memory
// only; a draft is persisted exactly once, at flow completion.
type SessionCoordinator struct {
	repo      interfaces.IUserRepository
	flows     IFlowEngine
	analytics IAnalyticsUseCase
	export    IExportUseCase
	log       *zap.Logger

	mu       sync.Mutex
	sessions map[string]*entities.ConversationSession
	locks    map[string]*sync.Mutex
}

var _ ISessionCoordinator = (*SessionCoordinator)(nil)

func NewSessionCoordinator(
	repo interfaces.IUserRepository,
	flows IFlowEngine,
	analytics IAnalyticsUseCase,
	export IExportUseCase,
	log *zap.Logger,
) *SessionCoordinator {
	if log == nil {
		log = zap.NewNop()
	}
	return &SessionCoordinator{
		repo:      repo,
		flows:     flows,
		analytics: analytics,
		export:    export,
		log:       log,
		sessions:  make(map[string]*entities.ConversationSession),
		locks:     make(map[string]*sync.Mutex),
	}
}

func (c *SessionCoordinator) HandleUpdate(ctx context.Context, userID string, in entities.Payload) (entities.Prompt, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Prompt{}, ErrInvalidUserID
	}

	unlock := c.lockUser(userID)
	defer unlock()

	if strings.TrimSpace(in.Text) == "/start" {
		c.clearSession(userID)
		return withMainMenu(entities.Prompt{Text: "Welcome! " + msgChooseAction}), nil
	}

	if in.ButtonID != "" {
		if p, handled := c.handleAction(ctx, userID, in.ButtonID); handled {
			return p, nil
		}
	}

	sess := c.session(userID)
	if sess == nil || sess.Flow == entities.FlowNone {
		// Stray input: by design, ignored rather than answered.
		return entities.Prompt{}, nil
	}

	tr, err := c.flows.Advance(sess, in)
	if err != nil {
		c.log.Error("flow advance failed",
			zap.String("user_id", userID),
			zap.String("flow", string(sess.Flow)),
			zap.String("step", string(sess.Step)),
			zap.Error(err))
		c.clearSession(userID)
		return withMainMenu(entities.Prompt{Text: msgWentWrong}), nil
	}
	if !tr.Done {
		return tr.Prompt, nil
	}
	return c.complete(ctx, userID, sess, tr), nil
}

// complete persists a finished flow. On save failure the session is left
// exactly as it was: the terminal step never advanced, so resending the
// last input retries the whole completion.
func (c *SessionCoordinator) complete(ctx context.Context, userID string, sess *entities.ConversationSession, tr Transition) entities.Prompt {
	profile, err := c.findOrCreate(ctx, userID)
	if err != nil {
		c.log.Error("profile load failed",
			zap.String("user_id", userID),
			zap.String("step", string(sess.Step)),
			zap.Error(err))
		return entities.Prompt{Text: msgRetry}
	}

	comp := tr.Completion

	// Threshold check for the standalone mileage step, against the state
	// before the new reading is applied.
	advisory := ""
	if sess.Flow == entities.FlowMileage && comp.LastMileage != nil {
		if last, ok := latestOilChange(profile.OilChanges); ok &&
			comp.LastMileage.Mileage-last.Mileage >= entities.OilChangeIntervalKm {
			advisory = "Time to change the oil!"
		}
	}

	if err := applyCompletion(&profile, comp); err != nil {
		c.log.Warn("stale repair index on completion",
			zap.String("user_id", userID),
			zap.Int("index", comp.RepairIndex),
			zap.Error(err))
		c.clearSession(userID)
		return withMainMenu(entities.Prompt{Text: "Repair not found."})
	}

	if err := c.repo.Save(ctx, profile); err != nil {
		c.log.Error("profile save failed",
			zap.String("user_id", userID),
			zap.String("step", string(sess.Step)),
			zap.Error(err))
		return entities.Prompt{Text: msgRetry}
	}

	flow := sess.Flow
	c.clearSession(userID)

	if flow == entities.FlowMileage {
		text := tr.Prompt.Text
		if advisory != "" {
			text += "\n" + advisory
		}
		text += "\nCheck the oil level. Did you top up oil?"
		return entities.Prompt{
			Text: text,
			Buttons: []entities.Button{
				{ID: BtnAddOilAfterCheck, Label: "Yes"},
				{ID: BtnNoOilAdded, Label: "No"},
			},
		}
	}
	return withMainMenu(tr.Prompt)
}

// handleAction dispatches the global menu buttons. Step-scoped buttons
// (categories, "add another part") are not menu actions and fall through
// to the active flow.
func (c *SessionCoordinator) handleAction(ctx context.Context, userID, buttonID string) (entities.Prompt, bool) {
	switch buttonID {
	case BtnCancel:
		c.clearSession(userID)
		return withMainMenu(entities.Prompt{Text: msgChooseAction}), true

	case BtnReplaceOil:
		return c.startFlow(userID, entities.FlowOilChange), true
	case BtnAddOil, BtnAddOilAfterCheck:
		return c.startFlow(userID, entities.FlowOilAdd), true
	case BtnAddRepair:
		return c.startFlow(userID, entities.FlowRepair), true
	case BtnEnterMileage:
		return c.startFlow(userID, entities.FlowMileage), true

	case BtnNoOilAdded:
		c.clearSession(userID)
		return withMainMenu(entities.Prompt{Text: "Okay, oil level checked."}), true

	case BtnMyRepairs:
		profile, err := c.repo.FindByUser(ctx, userID)
		if err != nil {
			c.log.Error("profile load failed", zap.String("user_id", userID), zap.Error(err))
			return withMainMenu(entities.Prompt{Text: msgWentWrong}), true
		}
		return repairListPrompt(profile.Repairs), true

	case BtnFullHistory:
		s, err := c.analytics.FullHistory(ctx, userID)
		if err != nil || s.ChangeCount == 0 {
			return c.historyFallback(userID, err), true
		}
		return withMainMenu(entities.Prompt{Text: s.Text()}), true

	case BtnLastHistory:
		s, err := c.analytics.SinceLastChange(ctx, userID)
		if err != nil || !s.HasChange {
			return c.historyFallback(userID, err), true
		}
		return withMainMenu(entities.Prompt{Text: s.Text()}), true

	case BtnRepairsSummary:
		s, err := c.analytics.RepairCosts(ctx, userID)
		if err != nil {
			if errors.Is(err, ErrProfileNotFound) {
				return withMainMenu(entities.Prompt{Text: "No repair data yet."}), true
			}
			c.log.Error("repair summary failed", zap.String("user_id", userID), zap.Error(err))
			return withMainMenu(entities.Prompt{Text: msgWentWrong}), true
		}
		return withMainMenu(entities.Prompt{Text: s.Text()}), true

	case BtnExport:
		doc, err := c.export.ExportCSV(ctx, userID)
		if err != nil {
			if errors.Is(err, ErrProfileNotFound) {
				return withMainMenu(entities.Prompt{Text: "Nothing to export yet."}), true
			}
			c.log.Error("export failed", zap.String("user_id", userID), zap.Error(err))
			return withMainMenu(entities.Prompt{Text: msgWentWrong}), true
		}
		p := withMainMenu(entities.Prompt{Text: "Your maintenance export:"})
		p.Document = &doc
		return p, true
	}

	if idx, ok := strings.CutPrefix(buttonID, btnEditRepairPrefix); ok {
		return c.startRepairEdit(ctx, userID, idx), true
	}
	if idx, ok := strings.CutPrefix(buttonID, btnDeleteRepairPrefix); ok {
		return c.deleteRepair(ctx, userID, idx), true
	}
	return entities.Prompt{}, false
}

func (c *SessionCoordinator) historyFallback(userID string, err error) entities.Prompt {
	if err != nil && !errors.Is(err, ErrProfileNotFound) {
		c.log.Error("history failed", zap.String("user_id", userID), zap.Error(err))
		return withMainMenu(entities.Prompt{Text: msgWentWrong})
	}
	return withMainMenu(entities.Prompt{Text: "History is empty."})
}

func (c *SessionCoordinator) startFlow(userID string, flow entities.Flow) entities.Prompt {
	sess := c.startSession(userID)
	return c.flows.Start(sess, flow)
}

func (c *SessionCoordinator) startRepairEdit(ctx context.Context, userID, rawIndex string) entities.Prompt {
	profile, err := c.repo.FindByUser(ctx, userID)
	if err != nil {
		c.log.Error("profile load failed", zap.String("user_id", userID), zap.Error(err))
		return withMainMenu(entities.Prompt{Text: msgWentWrong})
	}
	idx, err := strconv.Atoi(rawIndex)
	if err != nil || idx < 0 || idx >= len(profile.Repairs) {
		return withMainMenu(entities.Prompt{Text: "Repair not found."})
	}
	sess := c.startSession(userID)
	return c.flows.StartRepairEdit(sess, profile.Repairs[idx], idx)
}

func (c *SessionCoordinator) deleteRepair(ctx context.Context, userID, rawIndex string) entities.Prompt {
	profile, err := c.repo.FindByUser(ctx, userID)
	if err != nil {
		c.log.Error("profile load failed", zap.String("user_id", userID), zap.Error(err))
		return withMainMenu(entities.Prompt{Text: msgWentWrong})
	}
	idx, err := strconv.Atoi(rawIndex)
	if err != nil || idx < 0 || idx >= len(profile.Repairs) {
		return withMainMenu(entities.Prompt{Text: "Repair not found."})
	}
	profile.Repairs = append(profile.Repairs[:idx], profile.Repairs[idx+1:]...)
	if err := c.repo.Save(ctx, profile); err != nil {
		c.log.Error("profile save failed", zap.String("user_id", userID), zap.Error(err))
		return withMainMenu(entities.Prompt{Text: msgRetry})
	}
	return withMainMenu(entities.Prompt{Text: "Repair deleted."})
}

func (c *SessionCoordinator) findOrCreate(ctx context.Context, userID string) (entities.UserProfile, error) {
	p, err := c.repo.FindByUser(ctx, userID)
	if err != nil {
		return entities.UserProfile{}, err
	}
	if p.UserID == "" {
		return c.repo.Create(ctx, userID)
	}
	return p, nil
}

// applyCompletion folds a finished flow into the profile.
func applyCompletion(p *entities.UserProfile, comp *Completion) error {
	switch {
	case comp.OilChange != nil:
		p.OilChanges = append(p.OilChanges, *comp.OilChange)
	case comp.OilAdd != nil:
		p.OilAdds = append(p.OilAdds, *comp.OilAdd)
	case comp.Repair != nil:
		if comp.RepairIndex >= 0 {
			if comp.RepairIndex >= len(p.Repairs) {
				return ErrRepairNotFound
			}
			p.Repairs[comp.RepairIndex] = *comp.Repair
		} else {
			p.Repairs = append(p.Repairs, *comp.Repair)
		}
	}
	if comp.LastMileage != nil {
		lm := *comp.LastMileage
		p.LastMileage = &lm
	}
	return nil
}

// latestOilChange is the most recently dated change (stable for ties).
func latestOilChange(changes []entities.OilChange) (entities.OilChange, bool) {
	if len(changes) == 0 {
		return entities.OilChange{}, false
	}
	sorted := sortedOilChanges(changes)
	return sorted[len(sorted)-1], true
}

// lockUser serializes step transitions per user id. Different users run
// concurrently; the same user's updates queue up here.
func (c *SessionCoordinator) lockUser(userID string) func() {
	c.mu.Lock()
	l, ok := c.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		c.locks[userID] = l
	}
	c.mu.Unlock()
	l.Lock()
	return l.Unlock
}

func (c *SessionCoordinator) session(userID string) *entities.ConversationSession {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessions[userID]
}

func (c *SessionCoordinator) startSession(userID string) *entities.ConversationSession {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := entities.NewSession(userID)
	c.sessions[userID] = s
	return s
}

func (c *SessionCoordinator) clearSession(userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sessions, userID)
}
