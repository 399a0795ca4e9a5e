package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hopehr/hr-api/internal/config"
)

func testSigner() *S3Signer {
	return NewS3Signer(&config.Config{
		AWSRegion:          "eu-west-1",
		AWSAccessKeyID:     "AKIATEST",
		AWSSecretAccessKey: "secret",
		S3Bucket:           "hr-photos",
	})
}

// Presigning is pure SigV4 computation; no network involved.
func TestPresignUpload(t *testing.T) {
	s := testSigner()

	target, err := s.PresignUpload(context.Background(), "avatar.png", "image/png")
	require.NoError(t, err)

	assert.Contains(t, target.SignedURL, "X-Amz-Signature=")
	assert.Contains(t, target.SignedURL, "hr-photos")
	assert.Contains(t, target.Key, "employee-photos/")
	assert.True(t, strings.HasSuffix(target.Key, "-avatar.png"))
	assert.Equal(t, s.ObjectURL(target.Key), target.ImageURL)
}

func TestPresignUploadKeysAreUnique(t *testing.T) {
	s := testSigner()

	a, err := s.PresignUpload(context.Background(), "avatar.png", "image/png")
	require.NoError(t, err)
	b, err := s.PresignUpload(context.Background(), "avatar.png", "image/png")
	require.NoError(t, err)

	assert.NotEqual(t, a.Key, b.Key)
}

func TestObjectURL(t *testing.T) {
	s := testSigner()

	url := s.ObjectURL("employee-photos/123-my photo.png")
	assert.Equal(t,
		"https://hr-photos.s3.eu-west-1.amazonaws.com/employee-photos/123-my+photo.png",
		url,
	)
}
