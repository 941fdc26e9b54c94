package docdata_soap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hugochinchilla79/docdata_soap_sdk/models"
)

func statusWith(code string, totals *models.ApproximateTotals) *models.StatusSuccess {
	return &models.StatusSuccess{
		Success: &models.Success{Code: code},
		Report:  &models.StatusReport{ApproximateTotals: totals},
	}
}

func TestPaidLevelOf(t *testing.T) {
	cases := []struct {
		name   string
		status *models.StatusSuccess
		want   models.PaidLevel
	}{
		{
			name:   "captured in full",
			status: statusWith(models.SuccessCode, &models.ApproximateTotals{TotalRegistered: 1000, TotalCaptured: 1000}),
			want:   models.PaidLevelSafeRoute,
		},
		{
			name: "acquirer approved in full",
			status: statusWith(models.SuccessCode, &models.ApproximateTotals{
				TotalRegistered: 1000, TotalCaptured: 500, TotalAcquirerApproved: 1000,
			}),
			want: models.PaidLevelBalancedRoute,
		},
		{
			name: "pending adds up",
			status: statusWith(models.SuccessCode, &models.ApproximateTotals{
				TotalRegistered: 1000, TotalAcquirerApproved: 300, TotalShopperPending: 400, TotalAcquirerPending: 300,
			}),
			want: models.PaidLevelQuickRoute,
		},
		{
			name:   "nothing happened",
			status: statusWith(models.SuccessCode, &models.ApproximateTotals{TotalRegistered: 1000}),
			want:   models.PaidLevelNotPaid,
		},
		{
			name:   "all zero matches the first rule",
			status: statusWith(models.SuccessCode, &models.ApproximateTotals{}),
			want:   models.PaidLevelSafeRoute,
		},
		{
			name:   "no approximate totals",
			status: statusWith(models.SuccessCode, nil),
			want:   models.PaidLevelNotPaid,
		},
		{
			name:   "not a success code",
			status: statusWith("ERROR", &models.ApproximateTotals{TotalRegistered: 1000, TotalCaptured: 1000}),
			want:   models.PaidLevelNotPaid,
		},
		{
			name:   "no success block",
			status: &models.StatusSuccess{Report: &models.StatusReport{ApproximateTotals: &models.ApproximateTotals{}}},
			want:   models.PaidLevelNotPaid,
		},
		{
			name:   "no report",
			status: &models.StatusSuccess{Success: &models.Success{Code: models.SuccessCode}},
			want:   models.PaidLevelNotPaid,
		},
		{
			name:   "nil status",
			status: nil,
			want:   models.PaidLevelNotPaid,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, PaidLevelOf(c.status))
			// same report, same verdict
			require.Equal(t, c.want, PaidLevelOf(c.status))
		})
	}
}
