package reportstorage

import (
	"bytes"
	"context"
	"time"

	"onboarding-service/internal/app/contracts"
	"onboarding-service/internal/pkg/constvars"
	"onboarding-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type minioReportStorage struct {
	MinioClient *minio.Client
	BucketName  string
}

func NewMinioReportStorage(minioClient *minio.Client, bucketName string) contracts.ReportStorage {
	return &minioReportStorage{
		MinioClient: minioClient,
		BucketName:  bucketName,
	}
}

func (m *minioReportStorage) UploadReport(ctx context.Context, objectName string, content []byte) error {
	_, err := m.MinioClient.PutObject(
		ctx,
		m.BucketName,
		objectName,
		bytes.NewReader(content),
		int64(len(content)),
		minio.PutObjectOptions{ContentType: constvars.MIMEApplicationJSON},
	)
	if err != nil {
		return exceptions.ErrMinioCreateObject(err, m.BucketName)
	}
	return nil
}

func (m *minioReportStorage) GetObjectUrlWithExpiryTime(ctx context.Context, objectName string, expiryTime time.Duration) (string, error) {
	objectURL, err := m.MinioClient.PresignedGetObject(ctx, m.BucketName, objectName, expiryTime, nil)
	if err != nil {
		return "", exceptions.ErrMinioPresignObject(err, m.BucketName)
	}
	return objectURL.String(), nil
}
