package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/hopehr/hr-api/internal/config"
)

const (
	keyPrefix     = "employee-photos"
	presignExpiry = time.Hour
)

type UploadTarget struct {
	SignedURL string `json:"signedUrl"`
	ImageURL  string `json:"imageUrl"`
	Key       string `json:"key"`
}

// UploadSigner hands out one-shot write access to object storage.
type UploadSigner interface {
	PresignUpload(ctx context.Context, fileName, contentType string) (*UploadTarget, error)
}

type S3Signer struct {
	presigner *s3.PresignClient
	bucket    string
	region    string
}

func NewS3Signer(cfg *config.Config) *S3Signer {
	client := s3.New(s3.Options{
		Region: cfg.AWSRegion,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			"",
		),
	})

	return &S3Signer{
		presigner: s3.NewPresignClient(client),
		bucket:    cfg.S3Bucket,
		region:    cfg.AWSRegion,
	}
}

func (s *S3Signer) PresignUpload(
	ctx context.Context,
	fileName string,
	contentType string,
) (*UploadTarget, error) {

	key := fmt.Sprintf(
		"%s/%d-%s-%s",
		keyPrefix,
		time.Now().UnixMilli(),
		uuid.NewString(),
		fileName,
	)

	req, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, func(o *s3.PresignOptions) {
		o.Expires = presignExpiry
	})
	if err != nil {
		return nil, err
	}

	return &UploadTarget{
		SignedURL: req.URL,
		ImageURL:  s.ObjectURL(key),
		Key:       key,
	}, nil
}

// ObjectURL is the public URL the object will have once uploaded. S3 encodes
// spaces in keys as "+".
func (s *S3Signer) ObjectURL(key string) string {
	return fmt.Sprintf(
		"https://%s.s3.%s.amazonaws.com/%s",
		s.bucket,
		s.region,
		strings.ReplaceAll(key, " ", "+"),
	)
}
