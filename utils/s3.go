package utils

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

// PhotoUploader stores meal photos in S3 and returns the public URL
// used to render them on the comparison page.
type PhotoUploader struct {
	client        *s3.Client
	bucket        string
	cloudFrontURL string
}

func NewPhotoUploader(ctx context.Context, region, bucket, cloudFrontURL string) (*PhotoUploader, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS config for S3: %w", err)
	}
	return &PhotoUploader{
		client:        s3.NewFromConfig(cfg),
		bucket:        bucket,
		cloudFrontURL: cloudFrontURL,
	}, nil
}

func (p *PhotoUploader) UploadMealPhoto(ctx context.Context, data []byte, contentType string) (string, error) {
	ext := extensionFor(contentType)

	key := fmt.Sprintf("meal-photos/%s%s", uuid.New().String(), ext)

	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		ACL:         s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	return fmt.Sprintf("%s/%s", p.cloudFrontURL, key), nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	}
	if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
		return exts[0]
	}
	if parts := strings.SplitN(contentType, "/", 2); len(parts) == 2 {
		return "." + parts[1]
	}
	return ""
}
