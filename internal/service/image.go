package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/platescan/backend/config"
)

// maxImagePayload caps the accepted base64 payload. Clients downscale to
// roughly 800px on the longest edge before upload, which encodes well under
// this limit.
const maxImagePayload = 8 << 20

// ValidateImagePayload enforces the payload adapter contract: a non-empty,
// syntactically valid base64 string within the size cap. Pixel data is never
// inspected; the client encoder is trusted for format.
func ValidateImagePayload(imageBase64 string) error {
	if imageBase64 == "" {
		return invalidInput("image data is required")
	}
	if len(imageBase64) > maxImagePayload {
		return invalidInput("image payload exceeds size limit")
	}
	if _, err := base64.StdEncoding.DecodeString(imageBase64); err != nil {
		return invalidInput("image payload is not valid base64")
	}
	return nil
}

// ImageDataURL renders the canonical multimodal request fragment for an
// encoded image.
func ImageDataURL(imageBase64 string) string {
	return "data:image/jpeg;base64," + imageBase64
}

// S3PhotoArchive mirrors persisted meal photos to S3. The base64 payload on
// the record stays the source of truth; the archive is best-effort.
type S3PhotoArchive struct {
	s3Config *config.S3Config
	logger   *slog.Logger
}

// NewS3PhotoArchive creates an archive writing to the configured bucket.
func NewS3PhotoArchive(s3Config *config.S3Config, logger *slog.Logger) *S3PhotoArchive {
	return &S3PhotoArchive{s3Config: s3Config, logger: logger}
}

// Archive uploads the decoded JPEG under meal-images/<recordID>.jpg.
// Failures are logged and never fail the originating request.
func (a *S3PhotoArchive) Archive(ctx context.Context, recordID, imageBase64 string) {
	imageData, err := base64.StdEncoding.DecodeString(imageBase64)
	if err != nil {
		a.logger.Warn("photo archive skipped: payload not decodable", "record", recordID, "err", err)
		return
	}

	key := "meal-images/" + recordID + ".jpg"
	_, err = a.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(imageData),
		ContentType: aws.String("image/jpeg"),
	})
	if err != nil {
		a.logger.Warn("photo archive upload failed", "record", recordID, "err", err)
		return
	}

	a.logger.Debug("meal photo archived", "record", recordID, "key", key)
}
