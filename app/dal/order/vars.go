package order

import "github.com/zeromicro/go-zero/core/stores/sqlx"

var ErrNotFound = sqlx.ErrNotFound

// Order lifecycle: PENDING -> SUCCESS (terminal). A SUCCESS order rejects
// every further update or delete.
const (
	StatusPending = "PENDING"
	StatusSuccess = "SUCCESS"

	PaymentPending   = "PENDING"
	PaymentCompleted = "COMPLETED"
)
