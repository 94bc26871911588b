package balance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/point-exchange/internal/domain/entity"
	errs "github.com/amirhossein-jamali/point-exchange/internal/domain/error"
	coreport "github.com/amirhossein-jamali/point-exchange/internal/domain/port/core"
	mockCore "github.com/amirhossein-jamali/point-exchange/mocks/port/core"
	mockPersistence "github.com/amirhossein-jamali/point-exchange/mocks/port/persistence"
)

// managerFixture bundles the mocked collaborators of one Manager under test
type managerFixture struct {
	uow      *mockPersistence.MockUnitOfWork
	users    *mockPersistence.MockUserRepository
	balances *mockPersistence.MockGameBalanceRepository
	audit    *mockCore.MockAuditLogger
	manager  *Manager
}

func newManagerFixture(t *testing.T, coefficients map[string]int64) *managerFixture {
	t.Helper()

	fixedTime := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	mockTimeProvider := new(mockCore.MockTimeProvider)
	mockTimeProvider.On("Now").Return(fixedTime).Maybe()

	mockLogger := new(mockCore.MockLogger)
	mockLogger.On("Debug", mock.Anything, mock.Anything).Return().Maybe()
	mockLogger.On("Info", mock.Anything, mock.Anything).Return().Maybe()

	users := new(mockPersistence.MockUserRepository)
	balances := new(mockPersistence.MockGameBalanceRepository)

	uow := new(mockPersistence.MockUnitOfWork)
	uow.On("GetUserRepository", mock.Anything).Return(users).Maybe()
	uow.On("GetGameBalanceRepository", mock.Anything).Return(balances).Maybe()

	audit := new(mockCore.MockAuditLogger)

	provider, err := NewCoefficientProvider(coefficients)
	require.NoError(t, err)

	return &managerFixture{
		uow:      uow,
		users:    users,
		balances: balances,
		audit:    audit,
		manager:  NewManager(uow, provider, mockTimeProvider, audit, mockLogger),
	}
}

func TestManager_ApplyProfileSnapshot(t *testing.T) {
	ctx := context.Background()
	gdCoefficients := map[string]int64{entity.GameGDCards: 2}

	t.Run("first contact creates the baseline without moving the bank", func(t *testing.T) {
		// Arrange
		f := newManagerFixture(t, gdCoefficients)

		f.users.On("GetByName", ctx, "Alice").Return(nil, errs.ErrUserNotFound)
		f.users.On("Create", ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.UserName == "Alice" && u.BankBalance.IsZero()
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*entity.User).ID = 1
		}).Return(nil)

		f.balances.On("GetByUserAndGame", ctx, uint64(1), entity.GameGDCards).
			Return(nil, errs.ErrGameBalanceNotFound)
		f.balances.On("Create", ctx, mock.MatchedBy(func(b *entity.GameBalance) bool {
			return b.UserID == 1 &&
				b.LastBalance.Equal(decimal.NewFromInt(10)) &&
				b.CurrentBotBalance.IsZero()
		})).Return(nil)

		f.audit.On("RecordMutation", mock.MatchedBy(func(e coreport.AuditEntry) bool {
			return e.EventKind == EventKindSnapshotInit && e.Delta == "0"
		})).Return()

		// Act
		err := f.manager.ApplyProfileSnapshot(ctx, entity.ProfileSnapshotEvent{
			PlayerName:    "Alice",
			AbsoluteValue: decimal.NewFromInt(10),
			Game:          entity.GameGDCards,
		}, "run-1")

		// Assert
		require.NoError(t, err)
		f.users.AssertNotCalled(t, "UpdateBankBalance", mock.Anything, mock.Anything)
		f.balances.AssertExpectations(t)
		f.audit.AssertExpectations(t)
	})

	t.Run("a higher reported value credits the bank by delta times coefficient", func(t *testing.T) {
		// Arrange: orbs went 10 -> 25 with coefficient 2, so the bank gains 30
		f := newManagerFixture(t, gdCoefficients)

		user := &entity.User{ID: 1, UserName: "Alice", BankBalance: decimal.Zero}
		f.users.On("GetByName", ctx, "Alice").Return(user, nil)
		f.users.On("UpdateBankBalance", ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.BankBalance.Equal(decimal.NewFromInt(30))
		})).Return(nil)

		stored := &entity.GameBalance{ID: 7, UserID: 1, Game: entity.GameGDCards, LastBalance: decimal.NewFromInt(10)}
		f.balances.On("GetByUserAndGame", ctx, uint64(1), entity.GameGDCards).Return(stored, nil)
		f.balances.On("UpdateLastBalance", ctx, mock.MatchedBy(func(b *entity.GameBalance) bool {
			return b.LastBalance.Equal(decimal.NewFromInt(25))
		})).Return(nil)

		f.audit.On("RecordMutation", mock.MatchedBy(func(e coreport.AuditEntry) bool {
			return e.EventKind == EventKindSnapshotDelta &&
				e.Delta == "15" && e.BankBefore == "0" && e.BankAfter == "30"
		})).Return()

		// Act
		err := f.manager.ApplyProfileSnapshot(ctx, entity.ProfileSnapshotEvent{
			PlayerName:    "Alice",
			AbsoluteValue: decimal.NewFromInt(25),
			Game:          entity.GameGDCards,
		}, "run-2")

		// Assert
		require.NoError(t, err)
		f.users.AssertExpectations(t)
		f.balances.AssertExpectations(t)
		f.audit.AssertExpectations(t)
	})

	t.Run("a lower reported value debits the bank", func(t *testing.T) {
		// Arrange: orbs went 10 -> 4 with coefficient 2, so the bank loses 12
		f := newManagerFixture(t, gdCoefficients)

		user := &entity.User{ID: 1, UserName: "Alice", BankBalance: decimal.NewFromInt(30)}
		f.users.On("GetByName", ctx, "Alice").Return(user, nil)
		f.users.On("UpdateBankBalance", ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.BankBalance.Equal(decimal.NewFromInt(18))
		})).Return(nil)

		stored := &entity.GameBalance{UserID: 1, Game: entity.GameGDCards, LastBalance: decimal.NewFromInt(10)}
		f.balances.On("GetByUserAndGame", ctx, uint64(1), entity.GameGDCards).Return(stored, nil)
		f.balances.On("UpdateLastBalance", ctx, mock.Anything).Return(nil)

		f.audit.On("RecordMutation", mock.MatchedBy(func(e coreport.AuditEntry) bool {
			return e.Delta == "-6"
		})).Return()

		// Act
		err := f.manager.ApplyProfileSnapshot(ctx, entity.ProfileSnapshotEvent{
			PlayerName:    "Alice",
			AbsoluteValue: decimal.NewFromInt(4),
			Game:          entity.GameGDCards,
		}, "run-3")

		// Assert
		require.NoError(t, err)
		f.users.AssertExpectations(t)
	})

	t.Run("an unchanged snapshot writes nothing", func(t *testing.T) {
		// Arrange
		f := newManagerFixture(t, gdCoefficients)

		user := &entity.User{ID: 1, UserName: "Alice", BankBalance: decimal.NewFromInt(30)}
		f.users.On("GetByName", ctx, "Alice").Return(user, nil)

		stored := &entity.GameBalance{UserID: 1, Game: entity.GameGDCards, LastBalance: decimal.NewFromInt(25)}
		f.balances.On("GetByUserAndGame", ctx, uint64(1), entity.GameGDCards).Return(stored, nil)

		// Act
		err := f.manager.ApplyProfileSnapshot(ctx, entity.ProfileSnapshotEvent{
			PlayerName:    "Alice",
			AbsoluteValue: decimal.NewFromInt(25),
			Game:          entity.GameGDCards,
		}, "run-4")

		// Assert
		require.NoError(t, err)
		f.users.AssertNotCalled(t, "UpdateBankBalance", mock.Anything, mock.Anything)
		f.balances.AssertNotCalled(t, "UpdateLastBalance", mock.Anything, mock.Anything)
		f.audit.AssertNotCalled(t, "RecordMutation", mock.Anything)
	})

	t.Run("a game without a coefficient fails before any repository access", func(t *testing.T) {
		// Arrange
		f := newManagerFixture(t, gdCoefficients)

		// Act
		err := f.manager.ApplyProfileSnapshot(ctx, entity.ProfileSnapshotEvent{
			PlayerName:    "Alice",
			AbsoluteValue: decimal.NewFromInt(10),
			Game:          "Roulette",
		}, "run-5")

		// Assert
		assert.ErrorIs(t, err, errs.ErrMissingCoefficient)
		f.users.AssertNotCalled(t, "GetByName", mock.Anything, mock.Anything)
	})
}

func TestManager_ApplyAccrual(t *testing.T) {
	ctx := context.Background()

	t.Run("first award creates the mirror balance and credits the bank", func(t *testing.T) {
		// Arrange: 2.5 orbs with coefficient 2 credit 5 bank units
		f := newManagerFixture(t, map[string]int64{entity.GameGDCards: 2})

		f.users.On("GetByName", ctx, "Bob").Return(nil, errs.ErrUserNotFound)
		f.users.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
			args.Get(1).(*entity.User).ID = 2
		}).Return(nil)
		f.users.On("UpdateBankBalance", ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.BankBalance.Equal(decimal.NewFromInt(5))
		})).Return(nil)

		f.balances.On("GetByUserAndGame", ctx, uint64(2), entity.GameGDCards).
			Return(nil, errs.ErrGameBalanceNotFound)
		f.balances.On("Create", ctx, mock.MatchedBy(func(b *entity.GameBalance) bool {
			return b.CurrentBotBalance.Equal(decimal.RequireFromString("2.5")) && b.LastBalance.IsZero()
		})).Return(nil)

		f.audit.On("RecordMutation", mock.MatchedBy(func(e coreport.AuditEntry) bool {
			return e.EventKind == EventKindAccrual && e.Delta == "2.5"
		})).Return()

		// Act
		err := f.manager.ApplyAccrual(ctx, entity.AccrualEvent{
			PlayerName:    "Bob",
			AwardedAmount: decimal.RequireFromString("2.5"),
			Game:          entity.GameGDCards,
		}, "run-1")

		// Assert
		require.NoError(t, err)
		f.users.AssertExpectations(t)
		f.balances.AssertExpectations(t)
		f.audit.AssertExpectations(t)
	})

	t.Run("awards accumulate additively on the mirror balance", func(t *testing.T) {
		// Arrange
		f := newManagerFixture(t, map[string]int64{entity.GameQuiz: 5})

		user := &entity.User{ID: 3, UserName: "Eve", BankBalance: decimal.NewFromInt(15)}
		f.users.On("GetByName", ctx, "Eve").Return(user, nil)
		f.users.On("UpdateBankBalance", ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.BankBalance.Equal(decimal.NewFromInt(30))
		})).Return(nil)

		stored := &entity.GameBalance{UserID: 3, Game: entity.GameQuiz, CurrentBotBalance: decimal.NewFromInt(3)}
		f.balances.On("GetByUserAndGame", ctx, uint64(3), entity.GameQuiz).Return(stored, nil)
		f.balances.On("UpdateBotBalance", ctx, mock.MatchedBy(func(b *entity.GameBalance) bool {
			return b.CurrentBotBalance.Equal(decimal.NewFromInt(6))
		})).Return(nil)

		f.audit.On("RecordMutation", mock.Anything).Return()

		// Act
		err := f.manager.ApplyAccrual(ctx, entity.AccrualEvent{
			PlayerName:    "Eve",
			AwardedAmount: decimal.NewFromInt(3),
			Game:          entity.GameQuiz,
		}, "run-2")

		// Assert
		require.NoError(t, err)
		f.users.AssertExpectations(t)
		f.balances.AssertExpectations(t)
		f.balances.AssertNotCalled(t, "UpdateLastBalance", mock.Anything, mock.Anything)
	})
}

func TestManager_ApplyFixedReward(t *testing.T) {
	ctx := context.Background()

	t.Run("every winner receives the fixed award independently", func(t *testing.T) {
		// Arrange: two new bunker survivors, 30 RP each at coefficient 20
		f := newManagerFixture(t, map[string]int64{entity.GameBunker: 20})

		nextID := uint64(0)
		for _, name := range []string{"Alice", "Bob"} {
			f.users.On("GetByName", ctx, name).Return(nil, errs.ErrUserNotFound).Once()
		}
		f.users.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
			nextID++
			args.Get(1).(*entity.User).ID = nextID
		}).Return(nil).Twice()
		f.users.On("UpdateBankBalance", ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.BankBalance.Equal(decimal.NewFromInt(600))
		})).Return(nil).Twice()

		f.balances.On("GetByUserAndGame", ctx, mock.Anything, entity.GameBunker).
			Return(nil, errs.ErrGameBalanceNotFound).Twice()
		f.balances.On("Create", ctx, mock.MatchedBy(func(b *entity.GameBalance) bool {
			return b.CurrentBotBalance.Equal(decimal.NewFromInt(30))
		})).Return(nil).Twice()

		f.audit.On("RecordMutation", mock.MatchedBy(func(e coreport.AuditEntry) bool {
			return e.EventKind == EventKindFixedReward && e.BankAfter == "600"
		})).Return().Twice()

		// Act
		err := f.manager.ApplyFixedReward(ctx, entity.FixedRewardEvent{
			Winners: []string{"Alice", "Bob"},
			Game:    entity.GameBunker,
		}, decimal.NewFromInt(30), "run-1")

		// Assert
		require.NoError(t, err)
		f.users.AssertExpectations(t)
		f.balances.AssertExpectations(t)
		f.audit.AssertExpectations(t)
	})

	t.Run("a failure names the winner whose award broke the fan-out", func(t *testing.T) {
		// Arrange
		f := newManagerFixture(t, map[string]int64{entity.GameMafia: 15})

		user := &entity.User{ID: 1, UserName: "Dave", BankBalance: decimal.Zero}
		f.users.On("GetByName", ctx, "Dave").Return(user, nil)
		f.balances.On("GetByUserAndGame", ctx, uint64(1), entity.GameMafia).
			Return(nil, errs.ErrGameBalanceNotFound)
		f.balances.On("Create", ctx, mock.Anything).Return(nil)
		f.users.On("UpdateBankBalance", ctx, mock.Anything).Return(nil)
		f.audit.On("RecordMutation", mock.Anything).Return()

		f.users.On("GetByName", ctx, "Erin").Return(nil, errors.New("connection reset"))

		// Act
		err := f.manager.ApplyFixedReward(ctx, entity.FixedRewardEvent{
			Winners: []string{"Dave", "Erin"},
			Game:    entity.GameMafia,
		}, decimal.NewFromInt(50), "run-2")

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), `fixed reward for winner "Erin"`)
	})
}
