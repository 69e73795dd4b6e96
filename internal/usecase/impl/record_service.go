package impl

import (
	"context"
	"log/slog"

	deliverycontext "ledger/internal/delivery/context"
	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/domain/repository"
	"ledger/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// recordService is the generic implementation behind both record usecases.
// Expense and income share every rule: the caller must be a known user,
// writes demand ownership, reads span the household. The materialize closure
// builds the response entity after a create, stamping in the fresh id and
// the owner's username.
type recordService[D any, R any] struct {
	repo        repository.RecordRepository[D, R]
	userRepo    repository.UserRepository
	materialize func(id, userID uuid.UUID, username string, draft *D) *R
	kind        string
	logger      *slog.Logger
}

func (srv *recordService[D, R]) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// requireUser resolves the calling user. Tokens outlive accounts only in
// pathological cases (store wiped, stale token), and those calls are treated
// as unauthenticated rather than crashing deeper in the flow.
func (srv *recordService[D, R]) requireUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUnauthorized
		}

		return nil, errors.Wrap(err, "failed to resolve user")
	}

	return user, nil
}

// Create persists a new record for the calling user and returns it.
func (srv *recordService[D, R]) Create(ctx context.Context, userID uuid.UUID, draft *D) (*R, error) {
	user, err := srv.requireUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	id, err := srv.repo.Create(ctx, userID, draft)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create %s", srv.kind)
	}

	srv.log(ctx).Info("Record created",
		slog.String("kind", srv.kind),
		slog.Any("id", id),
		slog.Any("userID", userID),
	)

	return srv.materialize(id, userID, user.Username, draft), nil
}

// List returns the household's records inside the optional date window.
func (srv *recordService[D, R]) List(ctx context.Context, userID uuid.UUID, input *usecase.ListRecordsInput) ([]*R, error) {
	if _, err := srv.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	var rng entity.DateRange
	if input != nil {
		rng = input.Range
	}

	records, err := srv.repo.List(ctx, userID, rng)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %ss", srv.kind)
	}

	return records, nil
}

// Update replaces the record's payload. A record that does not exist and a
// record owned by someone else both surface as not found.
func (srv *recordService[D, R]) Update(ctx context.Context, id, userID uuid.UUID, draft *D) error {
	if _, err := srv.requireUser(ctx, userID); err != nil {
		return err
	}

	ok, err := srv.repo.Update(ctx, id, userID, draft)
	if err != nil {
		return errors.Wrapf(err, "failed to update %s", srv.kind)
	}
	if !ok {
		return domainerrors.ErrNotFound
	}

	return nil
}

// Delete removes the record, with the same not-found semantics as Update.
func (srv *recordService[D, R]) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if _, err := srv.requireUser(ctx, userID); err != nil {
		return err
	}

	ok, err := srv.repo.Delete(ctx, id, userID)
	if err != nil {
		return errors.Wrapf(err, "failed to delete %s", srv.kind)
	}
	if !ok {
		return domainerrors.ErrNotFound
	}

	srv.log(ctx).Info("Record deleted",
		slog.String("kind", srv.kind),
		slog.Any("id", id),
		slog.Any("userID", userID),
	)

	return nil
}

// ExpenseServiceParams holds dependencies for the expense usecase, injected by Fx.
type ExpenseServiceParams struct {
	fx.In

	ExpenseRepo repository.ExpenseRepository
	UserRepo    repository.UserRepository
	Logger      *slog.Logger
}

// NewExpenseService is the constructor for the expense usecase.
func NewExpenseService(params ExpenseServiceParams) usecase.ExpenseUsecase {
	return &recordService[entity.ExpenseDraft, entity.Expense]{
		repo:     params.ExpenseRepo,
		userRepo: params.UserRepo,
		materialize: func(id, userID uuid.UUID, username string, draft *entity.ExpenseDraft) *entity.Expense {
			return &entity.Expense{
				ID:          id,
				UserID:      userID,
				Amount:      draft.Amount,
				Category:    draft.Category,
				Description: draft.Description,
				IsRecurring: draft.IsRecurring,
				StartDate:   draft.StartDate,
				EndDate:     draft.EndDate,
				Username:    username,
			}
		},
		kind:   "expense",
		logger: params.Logger,
	}
}

// IncomeServiceParams holds dependencies for the income usecase, injected by Fx.
type IncomeServiceParams struct {
	fx.In

	IncomeRepo repository.IncomeRepository
	UserRepo   repository.UserRepository
	Logger     *slog.Logger
}

// NewIncomeService is the constructor for the income usecase.
func NewIncomeService(params IncomeServiceParams) usecase.IncomeUsecase {
	return &recordService[entity.IncomeDraft, entity.Income]{
		repo:     params.IncomeRepo,
		userRepo: params.UserRepo,
		materialize: func(id, userID uuid.UUID, username string, draft *entity.IncomeDraft) *entity.Income {
			return &entity.Income{
				ID:          id,
				UserID:      userID,
				Amount:      draft.Amount,
				Description: draft.Description,
				IsRecurring: draft.IsRecurring,
				StartDate:   draft.StartDate,
				EndDate:     draft.EndDate,
				Username:    username,
			}
		},
		kind:   "income",
		logger: params.Logger,
	}
}
