package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"alora/config"
	"alora/infras/otel"
	"alora/shared/constant"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

// Region used by S3 compatible stores that ignore it.
const defaultRegion = "auto"

// Object is a file to store under Key in the configured bucket.
type Object struct {
	Key         string
	ContentType string
	Body        []byte
}

type S3 interface {
	Put(ctx context.Context, object Object) (url string, err error)
}

type s3Impl struct {
	client       *s3.Client
	bucket       string
	publicDomain string
	otel         otel.Otel
}

// Put stores the object and returns its public URL.
func (svc *s3Impl) Put(ctx context.Context, object Object) (url string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Put")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		"bucket":       svc.bucket,
		"object.key":   object.Key,
		"object.bytes": len(object.Body),
	})

	_, err = svc.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(svc.bucket),
		Key:           aws.String(object.Key),
		Body:          bytes.NewReader(object.Body),
		ContentType:   aws.String(object.ContentType),
		ContentLength: aws.Int64(int64(len(object.Body))),
	})
	if err != nil {
		log.Error().Err(err).Str("key", object.Key).Msg("failed to put object")

		return constant.Empty, fmt.Errorf("failed to put object %s: %w", object.Key, err)
	}

	return PublicURL(svc.publicDomain, object.Key), nil
}

// PublicURL joins the public domain and the object key.
func PublicURL(publicDomain, objectKey string) string {
	return strings.TrimSuffix(publicDomain, "/") + "/" + strings.TrimPrefix(objectKey, "/")
}

func New(cfg *config.Config, otel otel.Otel) S3 {
	store := cfg.External.S3

	awsCfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(store.AccessKeyID, store.SecretAccessKey, "")),
		awsConfig.WithRegion(defaultRegion),
	)
	if err != nil {
		log.Err(err).Msg("Error loading AWS configuration")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if store.APIEndpoint != "" {
			o.BaseEndpoint = aws.String(store.APIEndpoint)
		}

		o.UsePathStyle = true
	})

	return &s3Impl{
		client:       client,
		bucket:       store.BucketName,
		publicDomain: store.PublicDomain,
		otel:         otel,
	}
}
