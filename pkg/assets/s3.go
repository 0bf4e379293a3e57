package assets

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3API is the subset of *s3.Client used by S3Source.
type S3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Source serves assets from an S3 bucket. Asset names map to object keys
// under prefix.
type S3Source struct {
	client S3API
	bucket string
	prefix string
}

// NewS3Source returns a source reading from bucket.
//
// Example:
//
//	client := assets.NewS3Client(assets.S3Config{Region: "us-east-1"})
//	src := assets.NewS3Source(client, "babysense-site", "public/")
func NewS3Source(client S3API, bucket, prefix string) *S3Source {
	return &S3Source{client: client, bucket: bucket, prefix: prefix}
}

// Open implements Source.
func (s *S3Source) Open(ctx context.Context, name string) (*Object, error) {
	key := s.prefix + name
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("assets: s3 get %s/%s: %w", s.bucket, key, err)
	}

	obj := &Object{
		Body:        out.Body,
		Size:        aws.ToInt64(out.ContentLength),
		ContentType: aws.ToString(out.ContentType),
		ETag:        aws.ToString(out.ETag),
	}
	if out.ContentLength == nil {
		obj.Size = -1
	}
	if out.LastModified != nil {
		obj.ModTime = *out.LastModified
	}
	if obj.ContentType == "" {
		obj.ContentType = contentType(name)
	}
	return obj, nil
}

// String names the source for logs.
func (s *S3Source) String() string { return "s3://" + s.bucket + "/" + s.prefix }

// S3Config configures an S3 client.
type S3Config struct {
	Region          string
	Endpoint        string // custom endpoint, e.g. MinIO
	UsePathStyle    bool
	AccessKeyID     string
	SecretAccessKey string
}

// NewS3Client builds an S3 client from static settings. Without keys the
// client sends anonymous requests, which suits public buckets.
func NewS3Client(cfg S3Config) *s3.Client {
	opts := s3.Options{
		Region:       cfg.Region,
		UsePathStyle: cfg.UsePathStyle,
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
	}
	if cfg.AccessKeyID != "" {
		creds := aws.Credentials{
			AccessKeyID:     cfg.AccessKeyID,
			SecretAccessKey: cfg.SecretAccessKey,
			Source:          "landing-config",
		}
		opts.Credentials = aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
			return creds, nil
		})
	} else {
		opts.Credentials = aws.AnonymousCredentials{}
	}
	return s3.New(opts)
}
