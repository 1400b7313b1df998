package contracts

import (
	"context"
	"time"
)

// ReportStorage stores rendered assessment reports and hands out expiring
// download links.
type ReportStorage interface {
	UploadReport(ctx context.Context, objectName string, content []byte) error
	GetObjectUrlWithExpiryTime(ctx context.Context, objectName string, expiryTime time.Duration) (string, error)
}
