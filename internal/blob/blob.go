// Package blob выдаёт подписанные ссылки на объекты в S3-совместимом хранилище
// и удаляет объекты. Сами байты через сервер не проходят.
package blob

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// DefaultURLTTL срок жизни подписанных ссылок.
const DefaultURLTTL = time.Hour

// Store контракт объектного хранилища.
type Store interface {
	// IssueUploadURL ссылка на PUT одного объекта с заданным Content-Type.
	// После загрузки объект доступен на чтение всем.
	IssueUploadURL(ctx context.Context, key, contentType string) (string, error)
	IssueDownloadURL(ctx context.Context, key string) (string, error)
	// PublicURL постоянная ссылка без подписи.
	PublicURL(key string) string
	Delete(ctx context.Context, key string) error
}

type presigner interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

type deleter interface {
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// Options параметры хранилища.
type Options struct {
	Bucket string
	// Endpoint адрес, по которому ходит сервер (например, http://localstack:4566).
	Endpoint string
	// PublicEndpoint адрес, видимый клиентам. Пустой означает Endpoint.
	PublicEndpoint string
	URLTTL         time.Duration
}

// S3Store реализация Store поверх S3 API.
type S3Store struct {
	presign presigner
	client  deleter
	opts    Options
}

var _ Store = (*S3Store)(nil)

// NewS3Client создаёт клиента с path-style адресацией, её требует LocalStack.
func NewS3Client(cfg aws.Config, endpoint string) *s3.Client {
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = true
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
}

// NewS3Store создаёт хранилище поверх готового клиента.
func NewS3Store(client *s3.Client, opts Options) *S3Store {
	return newS3Store(s3.NewPresignClient(client), client, opts)
}

func newS3Store(p presigner, d deleter, opts Options) *S3Store {
	if opts.URLTTL <= 0 {
		opts.URLTTL = DefaultURLTTL
	}
	opts.Endpoint = strings.TrimRight(opts.Endpoint, "/")
	opts.PublicEndpoint = strings.TrimRight(opts.PublicEndpoint, "/")
	if opts.PublicEndpoint == "" {
		opts.PublicEndpoint = opts.Endpoint
	}
	return &S3Store{presign: p, client: d, opts: opts}
}

func (s *S3Store) IssueUploadURL(ctx context.Context, key, contentType string) (string, error) {
	req, err := s.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.opts.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
		ACL:         types.ObjectCannedACLPublicRead,
	}, s3.WithPresignExpires(s.opts.URLTTL))
	if err != nil {
		return "", fmt.Errorf("presign upload %s: %w", key, err)
	}
	return s.toPublic(req.URL), nil
}

func (s *S3Store) IssueDownloadURL(ctx context.Context, key string) (string, error) {
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.opts.Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.opts.URLTTL))
	if err != nil {
		return "", fmt.Errorf("presign download %s: %w", key, err)
	}
	return s.toPublic(req.URL), nil
}

// PublicURL склеивает адрес как есть, без экранирования ключа.
func (s *S3Store) PublicURL(key string) string {
	return s.opts.PublicEndpoint + "/" + s.opts.Bucket + "/" + key
}

// Delete удаляет объект. Отсутствие объекта ошибкой не считается.
func (s *S3Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.opts.Bucket),
		Key:    aws.String(key),
	})
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorCode() == "NoSuchKey" {
		return nil
	}
	if err != nil {
		return fmt.Errorf("delete object %s: %w", key, err)
	}
	return nil
}

// toPublic заменяет внутренний адрес хранилища на публичный.
func (s *S3Store) toPublic(u string) string {
	if s.opts.Endpoint == "" || s.opts.PublicEndpoint == s.opts.Endpoint {
		return u
	}
	if strings.HasPrefix(u, s.opts.Endpoint) {
		return s.opts.PublicEndpoint + strings.TrimPrefix(u, s.opts.Endpoint)
	}
	return u
}
