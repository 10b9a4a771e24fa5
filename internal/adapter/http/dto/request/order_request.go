package request

// OrderStatusRequest is the admin status update. Only canonical statuses
// (PENDING, CONFIRMED, ANALYSIS, REJECTED) are accepted.
type OrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
