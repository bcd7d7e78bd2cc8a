package s3

import (
	"context"
	"errors"
	"fmt"
	"io"

	"pet-adoption-catalog/internal/domain/pets"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const maxObjectBytes = 4 << 20

// ObjectGetter es el subconjunto de *s3.Client que usamos (mockeable en tests).
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Source lee el catálogo desde un objeto S3 (o compatible, p.ej. MinIO).
type Source struct {
	client ObjectGetter
	bucket string
	key    string
}

var _ pets.Source = (*Source)(nil)

type Config struct {
	Bucket    string
	Key       string
	Region    string // default us-east-1
	Endpoint  string // opcional; habilita endpoint custom (MinIO)
	PathStyle bool
}

// New arma el cliente con la cadena de credenciales por defecto de AWS.
func New(ctx context.Context, cfg Config) (*Source, error) {
	if cfg.Bucket == "" || cfg.Key == "" {
		return nil, errors.New("s3 bucket and key required")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.PathStyle {
			o.UsePathStyle = true
		}
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return NewWithClient(client, cfg.Bucket, cfg.Key), nil
}

func NewWithClient(client ObjectGetter, bucket, key string) *Source {
	return &Source{client: client, bucket: bucket, key: key}
}

func (s *Source) Fetch(ctx context.Context) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return nil, fmt.Errorf("get s3://%s/%s: %w", s.bucket, s.key, err)
	}
	defer out.Body.Close()

	b, err := io.ReadAll(io.LimitReader(out.Body, maxObjectBytes))
	if err != nil {
		return nil, fmt.Errorf("read s3 object: %w", err)
	}
	return b, nil
}
