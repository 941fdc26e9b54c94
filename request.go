package docdata_soap

import "github.com/hugochinchilla79/docdata_soap_sdk/models"

// The build* functions turn caller input into wire records. Optional fields
// are copied as pointers, so unset fields stay nil and are left out of the
// XML entirely. No business validation happens here; Docdata does that.

func (c *Client) buildCreateRequest(req models.CreateRequest) createRequest {
	prefs := models.DefaultPaymentPreferences()
	if req.PaymentPreferences != nil {
		prefs = *req.PaymentPreferences
	}

	return createRequest{
		Version:                APIVersion,
		Merchant:               c.merchant,
		MerchantOrderReference: req.MerchantOrderReference,
		PaymentPreferences:     prefs,
		MenuPreferences:        req.MenuPreferences,
		Shopper:                req.Shopper,
		TotalGrossAmount:       req.TotalGrossAmount,
		BillTo:                 req.BillTo,
		Description:            req.Description,
		ReceiptText:            req.ReceiptText,
		IncludeCosts:           req.IncludeCosts,
		PaymentRequest:         req.PaymentRequest,
		Invoice:                req.Invoice,
	}
}

func (c *Client) buildStartRequest(req models.StartRequest) startRequest {
	return startRequest{
		Version:                 APIVersion,
		Merchant:                c.merchant,
		PaymentOrderKey:         req.PaymentOrderKey,
		Payment:                 req.Payment,
		RecurringPaymentRequest: req.RecurringPaymentRequest,
	}
}

func (c *Client) buildCancelRequest(paymentOrderKey string) cancelRequest {
	return cancelRequest{
		Version:         APIVersion,
		Merchant:        c.merchant,
		PaymentOrderKey: paymentOrderKey,
	}
}

func (c *Client) buildCaptureRequest(req models.CaptureRequest) captureRequest {
	return captureRequest{
		Version:                  APIVersion,
		Merchant:                 c.merchant,
		PaymentID:                req.PaymentID,
		MerchantCaptureReference: req.MerchantCaptureReference,
		Amount:                   req.Amount,
		ItemCode:                 req.ItemCode,
		Description:              req.Description,
		FinalCapture:             req.FinalCapture,
		CancelReserved:           req.CancelReserved,
		RequiredCaptureDate:      req.RequiredCaptureDate,
	}
}

func (c *Client) buildRefundRequest(req models.RefundRequest) refundRequest {
	return refundRequest{
		Version:                 APIVersion,
		Merchant:                c.merchant,
		PaymentID:               req.PaymentID,
		MerchantRefundReference: req.MerchantRefundReference,
		Amount:                  req.Amount,
		ItemCode:                req.ItemCode,
		Description:             req.Description,
		CancelReserved:          req.CancelReserved,
		RequiredRefundDate:      req.RequiredRefundDate,
		RefundBankAccount:       req.RefundBankAccount,
	}
}

func (c *Client) buildStatusRequest(paymentOrderKey string) statusRequest {
	return statusRequest{
		Version:         APIVersion,
		Merchant:        c.merchant,
		PaymentOrderKey: paymentOrderKey,
	}
}
