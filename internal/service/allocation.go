package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/altamirahr/hris-service/internal/models"
)

// Allocate distributes a payment across outstanding installments,
// earliest due date first, and returns the resulting plan without
// touching storage. The caller must pass installments pre-filtered to
// status != Paid and pre-sorted ascending by due date.
//
// A leftover greater than zero means the payment exceeded the total
// outstanding; the excess is reported in the plan rather than applied
// to any row.
func Allocate(paymentAmount decimal.Decimal, outstanding []*models.Installment,
	note string, paymentDate time.Time) (*models.AllocationPlan, error) {

	if paymentAmount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}
	if len(outstanding) == 0 {
		return nil, ErrNoOutstandingInstallments
	}

	plan := &models.AllocationPlan{}
	remaining := paymentAmount

	for _, ins := range outstanding {
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}

		gap := ins.OutstandingGap()
		applied := decimal.Min(remaining, gap)

		// Completion uses >=, never float equality: reaching the
		// scheduled amount marks the row Paid.
		status := models.InstallmentStatusPartiallyPaid
		if ins.PaidAmount.Add(applied).GreaterThanOrEqual(ins.ScheduledAmount) {
			status = models.InstallmentStatusPaid
		}

		plan.Rows = append(plan.Rows, models.RowAllocation{
			InstallmentID:   ins.ID,
			AppliedAmount:   applied,
			ResultingStatus: status,
			PaymentDate:     paymentDate,
			Notes:           note,
		})
		remaining = remaining.Sub(applied)
	}

	plan.Leftover = remaining
	return plan, nil
}
