package models

// PaidLevel is a confidence level that an order has been paid, derived from
// the approximate totals of a status report. Higher is more certain.
type PaidLevel int

const (
	PaidLevelNotPaid PaidLevel = iota
	PaidLevelQuickRoute
	PaidLevelBalancedRoute
	PaidLevelSafeRoute
)

func (l PaidLevel) String() string {
	switch l {
	case PaidLevelQuickRoute:
		return "QuickRoute"
	case PaidLevelBalancedRoute:
		return "BalancedRoute"
	case PaidLevelSafeRoute:
		return "SafeRoute"
	default:
		return "NotPaid"
	}
}

// IsPaid reports whether l is above NotPaid.
func (l PaidLevel) IsPaid() bool {
	return l > PaidLevelNotPaid
}
