package repository

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/altamirahr/hris-service/internal/models"
)

func mustDecimal(t *testing.T, value string) decimal.Decimal {
	d, err := decimal.NewFromString(value)
	require.NoError(t, err)
	return d
}

func testLedgerEntry(t *testing.T) *models.LedgerEntry {
	return &models.LedgerEntry{
		ReferenceNo: "ref-123",
		LoanID:      5,
		LoanType:    models.LoanTypeSalary,
		Amount:      mustDecimal(t, "7000"),
		Notes:       "march payroll",
	}
}
