package docdata_soap

import (
	"encoding/xml"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/hugochinchilla79/docdata_soap_sdk/models"
)

const (
	soapNS    = "http://schemas.xmlsoap.org/soap/envelope/"
	serviceNS = "http://www.docdatapayments.com/services/paymentservice/1_2/"
)

// Operation names a remote operation of the Docdata payment service.
type Operation string

const (
	OpCreate  Operation = "create"
	OpStart   Operation = "start"
	OpCancel  Operation = "cancel"
	OpCapture Operation = "capture"
	OpRefund  Operation = "refund"
	OpStatus  Operation = "status"
)

// ============================================
// SOAP Request Structures (internal marshaling)
// ============================================

type soapEnvelope struct {
	XMLName xml.Name `xml:"SOAP-ENV:Envelope"`
	SoapNS  string   `xml:"xmlns:SOAP-ENV,attr"`
	Header  string   `xml:"SOAP-ENV:Header"`
	Body    soapBody `xml:"SOAP-ENV:Body"`
}

type soapBody struct {
	// Request is one of the *Request structs below; its XMLName names the element.
	Request any
}

type createRequest struct {
	XMLName                xml.Name                  `xml:"http://www.docdatapayments.com/services/paymentservice/1_2/ createRequest"`
	Version                string                    `xml:"version,attr"`
	Merchant               models.Merchant           `xml:"merchant"`
	MerchantOrderReference string                    `xml:"merchantOrderReference"`
	PaymentPreferences     models.PaymentPreferences `xml:"paymentPreferences"`
	MenuPreferences        *models.MenuPreferences   `xml:"menuPreferences,omitempty"`
	Shopper                models.Shopper            `xml:"shopper"`
	TotalGrossAmount       models.Amount             `xml:"totalGrossAmount"`
	BillTo                 models.Destination        `xml:"billTo"`
	Description            *string                   `xml:"description,omitempty"`
	ReceiptText            *string                   `xml:"receiptText,omitempty"`
	IncludeCosts           *bool                     `xml:"includeCosts,omitempty"`
	PaymentRequest         *models.PaymentRequest    `xml:"paymentRequest,omitempty"`
	Invoice                *models.Invoice           `xml:"invoice,omitempty"`
}

type startRequest struct {
	XMLName                 xml.Name                    `xml:"http://www.docdatapayments.com/services/paymentservice/1_2/ startRequest"`
	Version                 string                      `xml:"version,attr"`
	Merchant                models.Merchant             `xml:"merchant"`
	PaymentOrderKey         string                      `xml:"paymentOrderKey"`
	Payment                 *models.PaymentRequestInput `xml:"payment,omitempty"`
	RecurringPaymentRequest *models.PaymentRequest      `xml:"recurringPaymentRequest,omitempty"`
}

type cancelRequest struct {
	XMLName         xml.Name        `xml:"http://www.docdatapayments.com/services/paymentservice/1_2/ cancelRequest"`
	Version         string          `xml:"version,attr"`
	Merchant        models.Merchant `xml:"merchant"`
	PaymentOrderKey string          `xml:"paymentOrderKey"`
}

type captureRequest struct {
	XMLName                  xml.Name        `xml:"http://www.docdatapayments.com/services/paymentservice/1_2/ captureRequest"`
	Version                  string          `xml:"version,attr"`
	Merchant                 models.Merchant `xml:"merchant"`
	PaymentID                string          `xml:"paymentId"`
	MerchantCaptureReference *string         `xml:"merchantCaptureReference,omitempty"`
	Amount                   *models.Amount  `xml:"amount,omitempty"`
	ItemCode                 *string         `xml:"itemCode,omitempty"`
	Description              *string         `xml:"description,omitempty"`
	FinalCapture             *bool           `xml:"finalCapture,omitempty"`
	CancelReserved           *bool           `xml:"cancelReserved,omitempty"`
	RequiredCaptureDate      *time.Time      `xml:"requiredCaptureDate,omitempty"`
}

type refundRequest struct {
	XMLName                 xml.Name                `xml:"http://www.docdatapayments.com/services/paymentservice/1_2/ refundRequest"`
	Version                 string                  `xml:"version,attr"`
	Merchant                models.Merchant         `xml:"merchant"`
	PaymentID               string                  `xml:"paymentId"`
	MerchantRefundReference *string                 `xml:"merchantRefundReference,omitempty"`
	Amount                  *models.Amount          `xml:"amount,omitempty"`
	ItemCode                *string                 `xml:"itemCode,omitempty"`
	Description             *string                 `xml:"description,omitempty"`
	CancelReserved          *bool                   `xml:"cancelReserved,omitempty"`
	RequiredRefundDate      *time.Time              `xml:"requiredRefundDate,omitempty"`
	RefundBankAccount       *models.SepaBankAccount `xml:"refundBankAccount,omitempty"`
}

type statusRequest struct {
	XMLName         xml.Name        `xml:"http://www.docdatapayments.com/services/paymentservice/1_2/ statusRequest"`
	Version         string          `xml:"version,attr"`
	Merchant        models.Merchant `xml:"merchant"`
	PaymentOrderKey string          `xml:"paymentOrderKey"`
}

// ============================================
// SOAP Response Structures
// ============================================

type soapResponseEnvelope struct {
	XMLName xml.Name         `xml:"Envelope"`
	Body    soapResponseBody `xml:"Body"`
}

type soapResponseBody struct {
	Fault   *soapFaultBody `xml:"Fault"`
	Content []byte         `xml:",innerxml"`
}

type soapFaultBody struct {
	FaultCode   string `xml:"faultcode"`
	FaultString string `xml:"faultstring"`
}

// outcome is implemented by every decoded operation response.
type outcome interface {
	failure() *models.Error
}

// successOutcome is an outcome whose success payload has type S.
type successOutcome[S any] interface {
	outcome
	success() *S
}

type errorOutcome struct {
	Error models.Error `xml:"error"`
}

func (e *errorOutcome) detail() *models.Error {
	if e == nil {
		return nil
	}
	return &e.Error
}

type createResponse struct {
	XMLName xml.Name              `xml:"createResponse"`
	Success *models.CreateSuccess `xml:"createSuccess"`
	Error   *errorOutcome         `xml:"createError"`
}

func (r *createResponse) failure() *models.Error         { return r.Error.detail() }
func (r *createResponse) success() *models.CreateSuccess { return r.Success }

type startResponse struct {
	XMLName xml.Name             `xml:"startResponse"`
	Success *models.StartSuccess `xml:"startSuccess"`
	Error   *errorOutcome        `xml:"startError"`
}

func (r *startResponse) failure() *models.Error        { return r.Error.detail() }
func (r *startResponse) success() *models.StartSuccess { return r.Success }

type cancelResponse struct {
	XMLName xml.Name              `xml:"cancelResponse"`
	Success *models.CancelSuccess `xml:"cancelSuccess"`
	Error   *errorOutcome         `xml:"cancelError"`
}

func (r *cancelResponse) failure() *models.Error         { return r.Error.detail() }
func (r *cancelResponse) success() *models.CancelSuccess { return r.Success }

type captureResponse struct {
	XMLName xml.Name               `xml:"captureResponse"`
	Success *models.CaptureSuccess `xml:"captureSuccess"`
	Error   *errorOutcome          `xml:"captureError"`
}

func (r *captureResponse) failure() *models.Error          { return r.Error.detail() }
func (r *captureResponse) success() *models.CaptureSuccess { return r.Success }

type refundResponse struct {
	XMLName xml.Name              `xml:"refundResponse"`
	Success *models.RefundSuccess `xml:"refundSuccess"`
	Error   *errorOutcome         `xml:"refundError"`
}

func (r *refundResponse) failure() *models.Error         { return r.Error.detail() }
func (r *refundResponse) success() *models.RefundSuccess { return r.Success }

type statusResponse struct {
	XMLName xml.Name              `xml:"statusResponse"`
	Success *models.StatusSuccess `xml:"statusSuccess"`
	Error   *errorOutcome         `xml:"statusError"`
}

func (r *statusResponse) failure() *models.Error         { return r.Error.detail() }
func (r *statusResponse) success() *models.StatusSuccess { return r.Success }

// ============================================
// Operation schema
// ============================================

// operationSchema maps an operation to the wire elements it sends and receives.
type operationSchema struct {
	request  string
	response string
	success  string
	failure  string

	requestType  reflect.Type
	responseType reflect.Type
}

var operations = map[Operation]operationSchema{
	OpCreate:  schemaFor[createRequest, createResponse]("create"),
	OpStart:   schemaFor[startRequest, startResponse]("start"),
	OpCancel:  schemaFor[cancelRequest, cancelResponse]("cancel"),
	OpCapture: schemaFor[captureRequest, captureResponse]("capture"),
	OpRefund:  schemaFor[refundRequest, refundResponse]("refund"),
	OpStatus:  schemaFor[statusRequest, statusResponse]("status"),
}

func schemaFor[Req, Resp any](name string) operationSchema {
	return operationSchema{
		request:      name + "Request",
		response:     name + "Response",
		success:      name + "Success",
		failure:      name + "Error",
		requestType:  reflect.TypeOf((*Req)(nil)).Elem(),
		responseType: reflect.TypeOf((*Resp)(nil)).Elem(),
	}
}

func init() {
	if err := validateSchema(operations); err != nil {
		panic(err)
	}
}

var outcomeType = reflect.TypeOf((*outcome)(nil)).Elem()

// validateSchema checks that every operation is mapped and that the wire
// structs carry the element names the schema promises.
func validateSchema(schema map[Operation]operationSchema) error {
	for _, op := range []Operation{OpCreate, OpStart, OpCancel, OpCapture, OpRefund, OpStatus} {
		s, ok := schema[op]
		if !ok {
			return fmt.Errorf("docdata_soap: no schema for operation %q", op)
		}
		if s.requestType == nil || s.responseType == nil {
			return fmt.Errorf("docdata_soap: schema for %q has no wire types", op)
		}
		if got := elementName(s.requestType); got != s.request {
			return fmt.Errorf("docdata_soap: %s request element is %q, schema expects %q", op, got, s.request)
		}
		if got := elementName(s.responseType); got != s.response {
			return fmt.Errorf("docdata_soap: %s response element is %q, schema expects %q", op, got, s.response)
		}
		for _, child := range []string{s.success, s.failure} {
			if !hasChildElement(s.responseType, child) {
				return fmt.Errorf("docdata_soap: %s response has no %q element", op, child)
			}
		}
		if !reflect.PointerTo(s.responseType).Implements(outcomeType) {
			return fmt.Errorf("docdata_soap: %s response does not report failures", op)
		}
	}
	return nil
}

// elementName returns the local name from a struct's XMLName tag.
func elementName(t reflect.Type) string {
	f, ok := t.FieldByName("XMLName")
	if !ok {
		return ""
	}
	parts := strings.Fields(f.Tag.Get("xml"))
	if len(parts) == 0 {
		return ""
	}
	return parts[len(parts)-1]
}

func hasChildElement(t reflect.Type, name string) bool {
	for i := 0; i < t.NumField(); i++ {
		tag, _, _ := strings.Cut(t.Field(i).Tag.Get("xml"), ",")
		if tag == name {
			return true
		}
	}
	return false
}

// newOutcome allocates the registered response struct for op.
func newOutcome[S any](op Operation) (successOutcome[S], error) {
	s, ok := operations[op]
	if !ok {
		return nil, fmt.Errorf("docdata_soap: unknown operation %q", op)
	}
	resp, ok := reflect.New(s.responseType).Interface().(successOutcome[S])
	if !ok {
		var zero S
		return nil, fmt.Errorf("docdata_soap: %s response does not decode into %T", op, zero)
	}
	return resp, nil
}
