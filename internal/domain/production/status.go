package production

// OrderStatus is derived from the statuses of an order's material lines
type OrderStatus string

const (
	OrderStatusOpen               OrderStatus = "open"
	OrderStatusPartiallyCompleted OrderStatus = "partially_completed"
	OrderStatusCompleted          OrderStatus = "completed"
)

// IsValid returns true if the status is a known order status
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusOpen, OrderStatusPartiallyCompleted, OrderStatusCompleted:
		return true
	}
	return false
}

// IsTerminal returns true once no further completions are accepted
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted
}

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// LineStatus is the one-way state of a material line
type LineStatus string

const (
	LineStatusPending   LineStatus = "pending"
	LineStatusCompleted LineStatus = "completed"
)

// IsValid returns true if the status is a known line status
func (s LineStatus) IsValid() bool {
	return s == LineStatusPending || s == LineStatusCompleted
}

// String returns the string representation of LineStatus
func (s LineStatus) String() string {
	return string(s)
}

// DeriveStatus computes the order status from its lines:
// open when nothing is completed, completed when everything is,
// partially_completed in between.
func DeriveStatus(lines []MaterialConsumption) OrderStatus {
	completed := 0
	for i := range lines {
		if lines[i].Status == LineStatusCompleted {
			completed++
		}
	}
	switch {
	case completed == 0:
		return OrderStatusOpen
	case completed == len(lines):
		return OrderStatusCompleted
	default:
		return OrderStatusPartiallyCompleted
	}
}
