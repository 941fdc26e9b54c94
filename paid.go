package docdata_soap

import "github.com/hugochinchilla79/docdata_soap_sdk/models"

// PaidLevelOf derives how confident the merchant can be that an order is paid,
// using the approximate totals of a successful status report. The status
// report never covers money actually transferred to the merchant, so even
// SafeRoute is not a settlement guarantee.
//
// Rules are evaluated from most to least certain and the first match wins:
//
//	SafeRoute      registered == captured
//	BalancedRoute  registered == acquirer approved
//	QuickRoute     registered == shopper pending + acquirer pending + acquirer approved
func PaidLevelOf(status *models.StatusSuccess) models.PaidLevel {
	if status == nil ||
		status.Success == nil ||
		status.Success.Code != models.SuccessCode ||
		status.Report == nil ||
		status.Report.ApproximateTotals == nil {
		return models.PaidLevelNotPaid
	}

	t := status.Report.ApproximateTotals
	switch {
	case t.TotalRegistered == t.TotalCaptured:
		return models.PaidLevelSafeRoute
	case t.TotalRegistered == t.TotalAcquirerApproved:
		return models.PaidLevelBalancedRoute
	case t.TotalRegistered == t.TotalShopperPending+t.TotalAcquirerPending+t.TotalAcquirerApproved:
		return models.PaidLevelQuickRoute
	}
	return models.PaidLevelNotPaid
}
