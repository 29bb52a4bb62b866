package importer

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"skolmaten/internal/model"
)

const maxDocumentSize = 8 << 20

// S3Config selects the object store used for s3:// locations.
type S3Config struct {
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// ObjectGetter is the part of the S3 client the importer uses.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Opener resolves an import location to its contents.
type Opener struct {
	HTTPClient *http.Client
	S3         ObjectGetter
}

// NewOpener returns an Opener with an HTTP client and an S3 client built
// from cfg.
func NewOpener(ctx context.Context, cfg S3Config) (*Opener, error) {
	client, err := newS3Client(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &Opener{
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		S3:         client,
	}, nil
}

func newS3Client(ctx context.Context, cfg S3Config) (*s3.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

// Open returns a reader for location: a local path, an http(s) URL or
// s3://bucket/key.
func (o *Opener) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	switch {
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		return o.openHTTP(ctx, location)
	case strings.HasPrefix(location, "s3://"):
		return o.openS3(ctx, location)
	default:
		f, err := os.Open(location)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", location, err)
		}
		return f, nil
	}
}

// Load opens location and parses it.
func (o *Opener) Load(ctx context.Context, location string) ([]model.MenuEntry, error) {
	rc, err := o.Open(ctx, location)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return Parse(io.LimitReader(rc, maxDocumentSize))
}

func (o *Opener) openHTTP(ctx context.Context, location string) (io.ReadCloser, error) {
	client := o.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", location, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("fetch %s: unexpected status %s", location, resp.Status)
	}
	return resp.Body, nil
}

func (o *Opener) openS3(ctx context.Context, location string) (io.ReadCloser, error) {
	if o.S3 == nil {
		return nil, fmt.Errorf("s3 is not configured")
	}
	bucket, key, err := splitS3Location(location)
	if err != nil {
		return nil, err
	}

	out, err := o.S3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", location, err)
	}
	return out.Body, nil
}

func splitS3Location(location string) (bucket, key string, err error) {
	u, err := url.Parse(location)
	if err != nil {
		return "", "", fmt.Errorf("parse %s: %w", location, err)
	}
	key = strings.TrimPrefix(u.Path, "/")
	if u.Host == "" || key == "" {
		return "", "", fmt.Errorf("%s: want s3://bucket/key", location)
	}
	return u.Host, key, nil
}
