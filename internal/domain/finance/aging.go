package finance

import (
	"time"

	"github.com/warungin/backend/internal/domain/shared/valueobject"
)

// AgingReport buckets outstanding balances by days past due. The bucket
// sums always add up to Total.
type AgingReport struct {
	Current    valueobject.Money `json:"current"`
	Days1to30  valueobject.Money `json:"days_1_30"`
	Days31to60 valueobject.Money `json:"days_31_60"`
	Days61to90 valueobject.Money `json:"days_61_90"`
	Over90     valueobject.Money `json:"over_90"`
	Total      valueobject.Money `json:"total"`
}

// BuildAgingReport classifies every outstanding receivable into its bucket
func BuildAgingReport(receivables []Receivable, now time.Time) AgingReport {
	report := AgingReport{
		Current:    valueobject.ZeroMoney(),
		Days1to30:  valueobject.ZeroMoney(),
		Days31to60: valueobject.ZeroMoney(),
		Days61to90: valueobject.ZeroMoney(),
		Over90:     valueobject.ZeroMoney(),
		Total:      valueobject.ZeroMoney(),
	}

	for i := range receivables {
		r := &receivables[i]
		if r.IsSettled() || r.IsDeleted() {
			continue
		}
		days := r.DaysPastDue(now)
		switch {
		case days <= 0:
			report.Current = report.Current.Add(r.Balance)
		case days <= 30:
			report.Days1to30 = report.Days1to30.Add(r.Balance)
		case days <= 60:
			report.Days31to60 = report.Days31to60.Add(r.Balance)
		case days <= 90:
			report.Days61to90 = report.Days61to90.Add(r.Balance)
		default:
			report.Over90 = report.Over90.Add(r.Balance)
		}
		report.Total = report.Total.Add(r.Balance)
	}

	return report
}
