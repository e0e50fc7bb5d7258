package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/warungin/backend/internal/domain/finance"
	"github.com/warungin/backend/internal/domain/partner"
)

// OverdueBlockThresholdDays is how many days past due a receivable may sit
// before the sweep blocks the warung from new credit orders.
const OverdueBlockThresholdDays = 3

// CreditService runs the receivables side: payments against open
// receivables, aging, per-warung credit status and the overdue sweep.
type CreditService struct {
	scope          TransactionScope
	receivableRepo finance.ReceivableRepository
	warungRepo     partner.WarungRepository
}

// NewCreditService creates a new CreditService
func NewCreditService(scope TransactionScope, receivableRepo finance.ReceivableRepository, warungRepo partner.WarungRepository) *CreditService {
	return &CreditService{
		scope:          scope,
		receivableRepo: receivableRepo,
		warungRepo:     warungRepo,
	}
}

// CreatePayment settles part of a receivable and lowers the warung's debt in
// the same transaction. Both rows are locked, so a concurrent payment against
// the same receivable waits and then fails on the balance guard instead of
// overshooting.
func (s *CreditService) CreatePayment(ctx context.Context, verifiedBy uuid.UUID, req CreatePaymentRequest) (*ReceivableResponse, error) {
	var receivable *finance.Receivable
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		receivable, err = repos.ReceivableRepo().FindByIDForUpdate(ctx, req.ReceivableID)
		if err != nil {
			return err
		}
		if _, err := receivable.ApplyPayment(req.Amount, finance.PaymentMethod(req.Method), req.ProofURL, req.Notes, verifiedBy); err != nil {
			return err
		}
		if err := repos.ReceivableRepo().SaveWithLock(ctx, receivable); err != nil {
			return err
		}

		paidWarung, err := repos.WarungRepo().FindByIDForUpdate(ctx, receivable.WarungID)
		if err != nil {
			return err
		}
		if err := paidWarung.DecreaseDebt(req.Amount); err != nil {
			return err
		}
		return repos.WarungRepo().SaveWithLock(ctx, paidWarung)
	})
	if err != nil {
		return nil, err
	}

	// A payment can clear the overdue position behind an automatic block,
	// or expose a newly overdue one. Re-run the sweep so the warung's
	// status does not wait for the next scheduled pass.
	_, _ = s.RefreshOverdue(ctx, time.Now())

	response := ToReceivableResponse(receivable)
	return &response, nil
}

// GetReceivable loads one receivable with its payment trail
func (s *CreditService) GetReceivable(ctx context.Context, id uuid.UUID) (*ReceivableResponse, error) {
	receivable, err := s.receivableRepo.FindActiveByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToReceivableResponse(receivable)
	return &response, nil
}

// ListReceivables returns receivables under the given filter
func (s *CreditService) ListReceivables(ctx context.Context, filter ReceivableListFilter) ([]ReceivableResponse, int64, error) {
	domainFilter := finance.ReceivableFilter{
		WarungID: filter.WarungID,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}
	if filter.Status != nil {
		status := finance.ReceivableStatus(*filter.Status)
		domainFilter.Status = &status
	}

	total, err := s.receivableRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	receivables, err := s.receivableRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToReceivableResponses(receivables), total, nil
}

// ReceivableAging buckets every outstanding balance by days past due
func (s *CreditService) ReceivableAging(ctx context.Context) (*finance.AgingReport, error) {
	outstanding, err := s.receivableRepo.FindOutstanding(ctx)
	if err != nil {
		return nil, err
	}
	report := finance.BuildAgingReport(outstanding, time.Now())
	return &report, nil
}

// WarungCreditStatus reports one outlet's live credit position
func (s *CreditService) WarungCreditStatus(ctx context.Context, warungID uuid.UUID) (*CreditStatusResponse, error) {
	warung, err := s.warungRepo.FindActiveByID(ctx, warungID)
	if err != nil {
		return nil, err
	}
	outstanding, err := s.receivableRepo.OutstandingByWarung(ctx, warungID)
	if err != nil {
		return nil, err
	}
	return &CreditStatusResponse{
		WarungID:        warung.ID,
		CreditLimit:     warung.CreditLimit,
		CurrentDebt:     warung.CurrentDebt,
		AvailableCredit: warung.AvailableCredit(),
		Outstanding:     outstanding,
		IsBlocked:       warung.IsBlocked,
		BlockedReason:   warung.BlockedReason,
	}, nil
}

// RefreshOverdue is the hourly sweep. It reclassifies past-due receivables,
// blocks warungs whose worst receivable is more than the threshold overdue,
// and lifts blocks the sweep itself created once the position recovers.
// Every step converges on current state, so running it twice in a row
// changes nothing the second time.
func (s *CreditService) RefreshOverdue(ctx context.Context, now time.Time) (*SweepResultResponse, error) {
	result := &SweepResultResponse{}
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		marked, err := repos.ReceivableRepo().MarkOverdue(ctx, now)
		if err != nil {
			return err
		}
		result.MarkedOverdue = marked

		overdue, err := repos.ReceivableRepo().OverdueWarungs(ctx, now)
		if err != nil {
			return err
		}
		pastThreshold := make(map[uuid.UUID]bool, len(overdue))
		for _, entry := range overdue {
			if entry.MaxDaysOverdue <= OverdueBlockThresholdDays {
				continue
			}
			pastThreshold[entry.WarungID] = true
			warung, err := repos.WarungRepo().FindByIDForUpdate(ctx, entry.WarungID)
			if err != nil {
				return err
			}
			if !warung.AutoBlock() {
				continue
			}
			if err := repos.WarungRepo().SaveWithLock(ctx, warung); err != nil {
				return err
			}
			result.BlockedWarungs++
		}

		// Only sweep-created blocks are lifted; a manual block stays until
		// a person removes it.
		blocked, err := repos.WarungRepo().FindAutoBlocked(ctx)
		if err != nil {
			return err
		}
		for i := range blocked {
			warung := &blocked[i]
			if pastThreshold[warung.ID] {
				continue
			}
			if !warung.AutoUnblock() {
				continue
			}
			if err := repos.WarungRepo().SaveWithLock(ctx, warung); err != nil {
				return err
			}
			result.UnblockedWarungs++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
