package roleconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDialerReport() map[string]string {
	return map[string]string{
		"dials":                  "50",
		"connects":               "20",
		"conversations":          "15",
		"qualifiedConversations": "10",
		"meetingsSet":            "10",
		"meetingsShowed":         "7",
		"noShows":                "3",
		"closedDeals":            "2",
		"revenueGenerated":       "2000",
		"cashCollected":          "1000",
	}
}

func validSetterReport() map[string]string {
	return map[string]string{
		"outboundCalls":                   "40",
		"inboundCalls":                    "10",
		"followUpCalls":                   "10",
		"callsProposed":                   "20",
		"totalHighTicketSalesCallsBooked": "10",
		"setsScheduled":                   "12",
		"setsTaken":                       "9",
		"closedSets":                      "4",
		"revenueGenerated":                "5000",
		"newCashCollected":                "2000",
		"recurringCashCollected":          "1000",
		"downsellRevenue":                 "500",
	}
}

func validCloserReport() map[string]string {
	return map[string]string{
		"dailyCallsBooked": "10",
		"shows":            "6",
		"noShows":          "1",
		"cancelled":        "1",
		"disqualified":     "1",
		"rescheduled":      "1",
		"callsTaken":       "6",
		"offersMade":       "5",
		"closes":           "3",
		"cashCollected":    "3000",
		"revenueGenerated": "9000",
	}
}

func TestForRole(t *testing.T) {
	for _, role := range []string{"dialer", "setter", "closer", " Closer "} {
		_, err := ForRole(role)
		assert.NoError(t, err, role)
	}

	_, err := ForRole("manager")
	assert.ErrorIs(t, err, ErrUnknownRole)
}

func TestValidateAcceptsCleanReports(t *testing.T) {
	cases := map[Role]map[string]string{
		RoleDialer: validDialerReport(),
		RoleSetter: validSetterReport(),
		RoleCloser: validCloserReport(),
	}

	for role, report := range cases {
		cfg, err := ForRole(string(role))
		require.NoError(t, err)

		metrics, errs := cfg.Validate("2026-03-02", report)
		assert.Empty(t, errs, string(role))
		assert.Len(t, metrics, len(cfg.Fields))
	}
}

func TestValidateRequiresDate(t *testing.T) {
	cfg, _ := ForRole("dialer")

	_, errs := cfg.Validate("  ", validDialerReport())
	assert.Equal(t, "Date is required", errs["date"])
}

func TestValidateRejectsBadFieldValues(t *testing.T) {
	cfg, _ := ForRole("dialer")

	report := validDialerReport()
	report["dials"] = "-3"
	_, errs := cfg.Validate("2026-03-02", report)
	assert.Contains(t, errs["dials"], "cannot be negative")

	report = validDialerReport()
	report["connects"] = "abc"
	_, errs = cfg.Validate("2026-03-02", report)
	assert.Contains(t, errs["connects"], "must be a number")

	report = validDialerReport()
	delete(report, "noShows")
	_, errs = cfg.Validate("2026-03-02", report)
	assert.Contains(t, errs["noShows"], "required")
}

func TestDialerMeetingsMustBalance(t *testing.T) {
	cfg, _ := ForRole("dialer")

	report := validDialerReport()
	report["meetingsShowed"] = "6"
	// 10 != 6 + 3
	_, errs := cfg.Validate("2026-03-02", report)
	require.Len(t, errs, 1)
	assert.Equal(t, "Meetings set must equal meetings showed plus no-shows", errs["meetingsSet"])

	report["meetingsShowed"] = "7"
	_, errs = cfg.Validate("2026-03-02", report)
	assert.Empty(t, errs)
}

func TestDialerFirstFailureWins(t *testing.T) {
	cfg, _ := ForRole("dialer")

	// Violates both connects<=dials and conversations<=connects; only
	// the first rule in catalog order may surface.
	report := validDialerReport()
	report["dials"] = "10"
	report["connects"] = "20"
	report["conversations"] = "30"

	_, errs := cfg.Validate("2026-03-02", report)
	require.Len(t, errs, 1)
	assert.Equal(t, "Connects cannot exceed dials", errs["connects"])
}

func TestDialerCashWithoutDeals(t *testing.T) {
	cfg, _ := ForRole("dialer")

	report := validDialerReport()
	report["closedDeals"] = "0"
	report["revenueGenerated"] = "0"
	report["cashCollected"] = "500"

	_, errs := cfg.Validate("2026-03-02", report)
	require.Len(t, errs, 1)
	assert.Contains(t, errs, "cashCollected")
}

func TestSetterRevenueBreakdown(t *testing.T) {
	cfg, _ := ForRole("setter")

	report := validSetterReport()
	report["revenueGenerated"] = "3000"
	// 3000 < 2000 + 1000 + 500
	_, errs := cfg.Validate("2026-03-02", report)
	require.Len(t, errs, 1)
	assert.Contains(t, errs, "revenueGenerated")
}

func TestCloserBookedCallsMustBalance(t *testing.T) {
	cfg, _ := ForRole("closer")

	report := validCloserReport()
	_, errs := cfg.Validate("2026-03-02", report)
	assert.Empty(t, errs)

	report["dailyCallsBooked"] = "11"
	_, errs = cfg.Validate("2026-03-02", report)
	require.Len(t, errs, 1)
	assert.Contains(t, errs, "dailyCallsBooked")
}

func TestCloserCashRequiresClose(t *testing.T) {
	cfg, _ := ForRole("closer")

	report := validCloserReport()
	report["closes"] = "0"
	report["offersMade"] = "5"

	_, errs := cfg.Validate("2026-03-02", report)
	require.Len(t, errs, 1)
	assert.Equal(t, "Cash or revenue requires at least one close", errs["closes"])
}

func TestCrossFieldRulesSkippedOnFieldErrors(t *testing.T) {
	cfg, _ := ForRole("closer")

	report := validCloserReport()
	report["shows"] = "-2"
	report["dailyCallsBooked"] = "99"

	_, errs := cfg.Validate("2026-03-02", report)
	require.Len(t, errs, 1)
	assert.Contains(t, errs["shows"], "cannot be negative")
}
