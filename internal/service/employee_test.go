package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altamirahr/hris-service/internal/models"
)

func TestNextEmployeeID(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		existing []string
		want     string
	}{
		{"takes max plus one", "MGR", []string{"MGR001", "MGR003", "AST002"}, "MGR004"},
		{"no existing defaults to 001", "SUP", nil, "SUP001"},
		{"ignores foreign prefixes", "AST", []string{"MGR009"}, "AST001"},
		{"ignores malformed suffixes", "STF", []string{"STF00X", "STF002"}, "STF003"},
		{"pads to three digits", "MGR", []string{"MGR099"}, "MGR100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextEmployeeID(tt.prefix, tt.existing))
		})
	}
}

func TestLookupPosition(t *testing.T) {
	pos, ok := LookupPosition("Manager")
	require.True(t, ok)
	assert.Equal(t, "MGR", pos.Prefix)
	assert.Equal(t, models.RoleClassB, pos.RoleClass)
	assert.True(t, pos.BaseSalary.Equal(decimal.NewFromInt(90000)))

	pos, ok = LookupPosition("Intergalactic Ambassador")
	assert.False(t, ok)
	assert.Empty(t, pos.Prefix)
	assert.True(t, pos.BaseSalary.IsZero())
}

func TestBenefitsForRoleClass(t *testing.T) {
	tests := []struct {
		roleClass string
		wantPkg   string
		wantLimit int64
	}{
		{models.RoleClassA, models.BenefitsPackageB, 200000},
		{models.RoleClassB, models.BenefitsPackageB, 200000},
		{models.RoleClassC, models.BenefitsPackageA, 100000},
		{"", "", 0},
		{"Class Z", "", 0},
	}

	for _, tt := range tests {
		pkg, limit := BenefitsForRoleClass(tt.roleClass)
		assert.Equal(t, tt.wantPkg, pkg)
		assert.True(t, limit.Equal(decimal.NewFromInt(tt.wantLimit)),
			"limit for %q: got %s", tt.roleClass, limit)
	}
}
