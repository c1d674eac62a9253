package export

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ссылка на выгрузку живет час
const presignExpiry = time.Hour

// S3Archiver складывает выгрузки журнала в бакет S3
type S3Archiver struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
}

// NewS3Archiver загружает AWS конфигурацию из окружения и создает архиватор
func NewS3Archiver(ctx context.Context, region, bucket string) (*S3Archiver, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("export: unable to load AWS config: %w", err)
	}
	client := s3.NewFromConfig(cfg)

	return &S3Archiver{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  bucket,
	}, nil
}

// Archive загружает CSV и возвращает подписанную ссылку на скачивание
func (a *S3Archiver) Archive(ctx context.Context, key string, data []byte) (string, error) {
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("text/csv"),
		Metadata: map[string]string{
			"uploaded-at": time.Now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return "", fmt.Errorf("export: failed to upload %s: %w", key, err)
	}

	req, err := a.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = presignExpiry
	})
	if err != nil {
		return "", fmt.Errorf("export: failed to presign %s: %w", key, err)
	}
	return req.URL, nil
}
