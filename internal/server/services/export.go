package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/gophtasks/internal/common"
	"github.com/dmitrijs2005/gophtasks/internal/server/config"
	"github.com/dmitrijs2005/gophtasks/internal/server/models"
	"github.com/dmitrijs2005/gophtasks/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

const MsgExportDisabled = "Export is not configured"

type objectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type getPresigner interface {
	PresignGetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

var loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

// exportDocument is the JSON layout of an uploaded snapshot.
type exportDocument struct {
	Owner      string        `json:"owner"`
	ExportedAt time.Time     `json:"exportedAt"`
	Tasks      []models.Task `json:"tasks"`
}

type ExportService struct {
	repomanager repomanager.RepositoryManager
	bucket      string
	validity    time.Duration
	store       objectPutter
	presigner   getPresigner
	now         func() time.Time
}

// NewExportService builds the S3 clients when a bucket is configured. With no
// bucket the service is created disabled and Export reports
// common.ErrFeatureDisabled.
func NewExportService(ctx context.Context, m repomanager.RepositoryManager, cfg *config.Config) (*ExportService, error) {
	s := &ExportService{
		repomanager: m,
		bucket:      cfg.S3Bucket,
		validity:    cfg.ExportURLValidity,
		now:         time.Now,
	}
	if !cfg.ExportEnabled() {
		return s, nil
	}

	awsCfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3RootUser,
			cfg.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	s.store = client
	s.presigner = s3.NewPresignClient(client)
	return s, nil
}

// ExportKey returns a fresh object key for ownerID's snapshot taken at t.
func ExportKey(ownerID string, t time.Time) string {
	return fmt.Sprintf("exports/%s/%04d/%02d/%02d/%s.json", ownerID, t.Year(), t.Month(), t.Day(), uuid.New())
}

// Export uploads a JSON snapshot of the owner's tasks and returns a
// presigned URL to download it.
func (s *ExportService) Export(ctx context.Context, ownerID string) (*models.Export, error) {
	if s.store == nil || s.presigner == nil {
		return nil, common.NewError(common.ErrFeatureDisabled, MsgExportDisabled)
	}

	tasks, err := s.repomanager.Tasks().Find(ctx, models.TaskFilter{OwnerID: ownerID}, nil)
	if err != nil {
		return nil, fmt.Errorf("error fetching tasks: %w", err)
	}

	now := s.now().UTC()
	body, err := json.Marshal(exportDocument{Owner: ownerID, ExportedAt: now, Tasks: tasks})
	if err != nil {
		return nil, fmt.Errorf("error encoding export: %w", err)
	}

	key := ExportKey(ownerID, now)

	_, err = s.store.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return nil, fmt.Errorf("error uploading export: %w", err)
	}

	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.validity))
	if err != nil {
		return nil, fmt.Errorf("error presigning export: %w", err)
	}

	return &models.Export{
		Key:       key,
		URL:       req.URL,
		TaskCount: len(tasks),
		ExpiresAt: now.Add(s.validity),
	}, nil
}
