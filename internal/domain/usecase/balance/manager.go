package balance

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/point-exchange/internal/domain/entity"
	errs "github.com/amirhossein-jamali/point-exchange/internal/domain/error"
	coreport "github.com/amirhossein-jamali/point-exchange/internal/domain/port/core"
	"github.com/amirhossein-jamali/point-exchange/internal/domain/port/persistence"
)

// Audit event kinds emitted by the manager
const (
	EventKindSnapshotInit  = "snapshot_init"
	EventKindSnapshotDelta = "snapshot_delta"
	EventKindAccrual       = "accrual"
	EventKindFixedReward   = "fixed_reward"
)

// Manager applies parsed events to the player ledger. All repositories are resolved
// through the unit of work, so every mutation of one call lands in the transaction
// carried by the context. The manager never retries: any error propagates to the
// caller for transaction-level handling.
type Manager struct {
	uow          persistence.UnitOfWork
	coefficients *CoefficientProvider
	timeProvider coreport.TimeProvider
	audit        coreport.AuditLogger
	logger       coreport.Logger
}

// NewManager creates a new balance manager
func NewManager(
	uow persistence.UnitOfWork,
	coefficients *CoefficientProvider,
	timeProvider coreport.TimeProvider,
	audit coreport.AuditLogger,
	logger coreport.Logger,
) *Manager {
	return &Manager{
		uow:          uow,
		coefficients: coefficients,
		timeProvider: timeProvider,
		audit:        audit,
		logger:       logger,
	}
}

// ApplyProfileSnapshot handles an announcement reporting an absolute value.
// First contact creates the baseline without touching the bank balance; afterwards
// the bank moves by (reported - last) x coefficient, which may be negative.
// A snapshot equal to the stored baseline performs no write at all.
func (m *Manager) ApplyProfileSnapshot(ctx context.Context, event entity.ProfileSnapshotEvent, runID string) error {
	coefficient, err := m.coefficients.Coefficient(event.Game)
	if err != nil {
		return err
	}

	users := m.uow.GetUserRepository(ctx)
	balances := m.uow.GetGameBalanceRepository(ctx)

	user, err := m.getOrCreateUser(ctx, users, event.PlayerName, event.Game, event.AbsoluteValue)
	if err != nil {
		return err
	}

	gameBalance, err := balances.GetByUserAndGame(ctx, user.ID, event.Game)
	if err != nil {
		if !errors.Is(err, errs.ErrGameBalanceNotFound) {
			return err
		}

		// First contact: no baseline to compute a delta against yet
		gameBalance = entity.NewSnapshotBaseline(user.ID, event.Game, event.AbsoluteValue, m.timeProvider)
		if err := balances.Create(ctx, gameBalance); err != nil {
			return errs.NewBalanceError(user.UserName, event.Game, event.AbsoluteValue.String(), err)
		}

		m.audit.RecordMutation(coreport.AuditEntry{
			RunID:       runID,
			EventKind:   EventKindSnapshotInit,
			UserName:    user.UserName,
			Game:        event.Game,
			Coefficient: coefficient,
			Delta:       decimal.Zero.String(),
			BankBefore:  user.BankBalance.String(),
			BankAfter:   user.BankBalance.String(),
			LastBalance: gameBalance.LastBalance.String(),
			BotBalance:  gameBalance.CurrentBotBalance.String(),
		})
		return nil
	}

	delta := gameBalance.SnapshotDelta(event.AbsoluteValue)
	if delta.IsZero() {
		// Replay of an unchanged snapshot: no mutation, not even a write
		m.logger.Debug("Snapshot matches stored baseline, nothing to apply", map[string]any{
			"run_id":    runID,
			"user_name": user.UserName,
			"game":      event.Game,
			"value":     event.AbsoluteValue.String(),
		})
		return nil
	}

	bankBefore := user.BankBalance
	user.AddToBank(delta.Mul(decimal.NewFromInt(coefficient)), m.timeProvider)
	if err := users.UpdateBankBalance(ctx, user); err != nil {
		return errs.NewBalanceError(user.UserName, event.Game, delta.String(), err)
	}

	gameBalance.ApplySnapshot(event.AbsoluteValue, m.timeProvider)
	if err := balances.UpdateLastBalance(ctx, gameBalance); err != nil {
		return errs.NewBalanceError(user.UserName, event.Game, event.AbsoluteValue.String(), err)
	}

	m.audit.RecordMutation(coreport.AuditEntry{
		RunID:       runID,
		EventKind:   EventKindSnapshotDelta,
		UserName:    user.UserName,
		Game:        event.Game,
		Coefficient: coefficient,
		Delta:       delta.String(),
		BankBefore:  bankBefore.String(),
		BankAfter:   user.BankBalance.String(),
		LastBalance: gameBalance.LastBalance.String(),
		BotBalance:  gameBalance.CurrentBotBalance.String(),
	})
	return nil
}

// ApplyAccrual handles an announcement reporting a discrete awarded amount.
// The award accumulates on the mirror balance and the bank moves unconditionally
// by amount x coefficient. last_balance is never touched on this path.
func (m *Manager) ApplyAccrual(ctx context.Context, event entity.AccrualEvent, runID string) error {
	return m.applyAward(ctx, event.PlayerName, event.Game, event.AwardedAmount, EventKindAccrual, runID)
}

// ApplyFixedReward fans a fixed award out to every winner independently, in parsed
// order. There is no shared running total: each winner's mutation stands alone, and
// the enclosing transaction makes the whole fan-out atomic.
func (m *Manager) ApplyFixedReward(ctx context.Context, event entity.FixedRewardEvent, fixedAmount decimal.Decimal, runID string) error {
	for _, winner := range event.Winners {
		if err := m.applyAward(ctx, winner, event.Game, fixedAmount, EventKindFixedReward, runID); err != nil {
			return fmt.Errorf("fixed reward for winner %q: %w", winner, err)
		}
	}
	return nil
}

// applyAward is the shared accrual path for single awards and fan-out winners
func (m *Manager) applyAward(ctx context.Context, playerName, game string, amount decimal.Decimal, eventKind, runID string) error {
	coefficient, err := m.coefficients.Coefficient(game)
	if err != nil {
		return err
	}

	users := m.uow.GetUserRepository(ctx)
	balances := m.uow.GetGameBalanceRepository(ctx)

	user, err := m.getOrCreateUser(ctx, users, playerName, game, amount)
	if err != nil {
		return err
	}

	gameBalance, err := balances.GetByUserAndGame(ctx, user.ID, game)
	if err != nil {
		if !errors.Is(err, errs.ErrGameBalanceNotFound) {
			return err
		}

		gameBalance = entity.NewAccrualBalance(user.ID, game, amount, m.timeProvider)
		if err := balances.Create(ctx, gameBalance); err != nil {
			return errs.NewBalanceError(user.UserName, game, amount.String(), err)
		}
	} else {
		gameBalance.ApplyAward(amount, m.timeProvider)
		if err := balances.UpdateBotBalance(ctx, gameBalance); err != nil {
			return errs.NewBalanceError(user.UserName, game, amount.String(), err)
		}
	}

	bankBefore := user.BankBalance
	user.AddToBank(amount.Mul(decimal.NewFromInt(coefficient)), m.timeProvider)
	if err := users.UpdateBankBalance(ctx, user); err != nil {
		return errs.NewBalanceError(user.UserName, game, amount.String(), err)
	}

	m.audit.RecordMutation(coreport.AuditEntry{
		RunID:       runID,
		EventKind:   eventKind,
		UserName:    user.UserName,
		Game:        game,
		Coefficient: coefficient,
		Delta:       amount.String(),
		BankBefore:  bankBefore.String(),
		BankAfter:   user.BankBalance.String(),
		LastBalance: gameBalance.LastBalance.String(),
		BotBalance:  gameBalance.CurrentBotBalance.String(),
	})
	return nil
}

// getOrCreateUser fetches the ledger record for a player, creating it on first
// reference by any parser output
func (m *Manager) getOrCreateUser(ctx context.Context, users persistence.UserRepository, playerName, game string, amount decimal.Decimal) (*entity.User, error) {
	name := entity.NormalizeUserName(playerName)

	user, err := users.GetByName(ctx, name)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, errs.ErrUserNotFound) {
		return nil, errs.NewBalanceError(name, game, amount.String(), err)
	}

	user, err = entity.NewUser(name, m.timeProvider)
	if err != nil {
		return nil, err
	}
	if err := users.Create(ctx, user); err != nil {
		return nil, errs.NewBalanceError(name, game, amount.String(), err)
	}

	m.logger.Info("Created ledger record for new player", map[string]any{
		"user_id":   user.ID,
		"user_name": user.UserName,
		"game":      game,
	})
	return user, nil
}
