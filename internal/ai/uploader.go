package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

// Uploader stores a source image and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, source string) (string, error)
}

// S3Uploader uploads source images to an S3 bucket under uploads/.
type S3Uploader struct {
	client *s3.Client
	bucket string
	region string
	http   *http.Client
}

// NewS3Uploader creates an S3Uploader for the given bucket.
func NewS3Uploader(client *s3.Client, bucket, region string) *S3Uploader {
	return &S3Uploader{
		client: client,
		bucket: bucket,
		region: region,
		http:   http.DefaultClient,
	}
}

// Upload accepts a data URI, a raw base64 string or a remote URL,
// stores the bytes in S3 and returns the object URL.
func (u *S3Uploader) Upload(ctx context.Context, source string) (string, error) {
	data, contentType, err := u.readSource(ctx, source)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("uploads/%s%s", uuid.New().String(), extensionFor(contentType))

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		ACL:         s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image to s3: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key), nil
}

func (u *S3Uploader) readSource(ctx context.Context, source string) ([]byte, string, error) {
	switch {
	case strings.HasPrefix(source, "data:"):
		// data:image/png;base64,....
		idx := strings.Index(source, ",")
		if idx < 0 {
			return nil, "", fmt.Errorf("malformed data URI")
		}
		contentType := "image/png"
		header := source[len("data:"):idx]
		if semi := strings.Index(header, ";"); semi > 0 {
			contentType = header[:semi]
		}
		data, err := base64.StdEncoding.DecodeString(source[idx+1:])
		if err != nil {
			return nil, "", fmt.Errorf("failed to decode data URI: %w", err)
		}
		return data, contentType, nil

	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return nil, "", err
		}
		resp, err := u.http.Do(req)
		if err != nil {
			return nil, "", fmt.Errorf("failed to fetch source image: %w", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, "", fmt.Errorf("failed to fetch source image: status %d", resp.StatusCode)
		}
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, "", err
		}
		contentType := resp.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "image/png"
		}
		return data, contentType, nil

	default:
		data, err := base64.StdEncoding.DecodeString(source)
		if err != nil {
			return nil, "", fmt.Errorf("unrecognized image source: %w", err)
		}
		return data, "image/png", nil
	}
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".png"
	}
}
