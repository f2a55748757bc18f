// Package services holds the application services that sit above the
// repositories: cover art mirroring and library search.
package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/go-resty/resty/v2"
	lru "github.com/hashicorp/golang-lru"
)

const (
	coversRoot        = "covers"
	mirroredCacheSize = 2048
	downloadTimeout   = 30 * time.Second
)

// CoverService mirrors catalog cover art into a Spaces bucket so the API can
// serve stable image URLs after the catalog rotates or drops its own.
type CoverService struct {
	client *s3.Client
	http   *resty.Client
	bucket string
	region string

	// mirrored remembers ids uploaded during this process lifetime so a
	// metadata refresh does not re-download an unchanged cover.
	mirrored *lru.Cache
}

func NewCoverService(spacesKey, spacesSecret, region, bucket string) *CoverService {
	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL: fmt.Sprintf("https://%s.digitaloceanspaces.com", region),
		}, nil
	})

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithEndpointResolverWithOptions(resolver),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(spacesKey, spacesSecret, "")),
		config.WithRegion(region),
	)
	if err != nil {
		panic(fmt.Sprintf("Unable to load Spaces config: %v", err))
	}

	mirrored, _ := lru.New(mirroredCacheSize)

	return &CoverService{
		client:   s3.NewFromConfig(cfg),
		http:     resty.New().SetTimeout(downloadTimeout),
		bucket:   bucket,
		region:   region,
		mirrored: mirrored,
	}
}

// MirrorCover downloads the cover image and uploads it under a key derived
// from the game id. Repeat calls for an already-mirrored id are no-ops.
func (s *CoverService) MirrorCover(ctx context.Context, remoteID int64, coverURL string) error {
	if _, ok := s.mirrored.Get(remoteID); ok {
		return nil
	}

	resp, err := s.http.R().SetContext(ctx).Get(coverURL)
	if err != nil {
		return fmt.Errorf("failed to download cover for %d: %w", remoteID, err)
	}
	if resp.IsError() {
		return fmt.Errorf("cover download for %d returned status %d", remoteID, resp.StatusCode())
	}

	key := s.coverKey(remoteID)
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(resp.Body()),
		ContentType:  aws.String("image/jpeg"),
		CacheControl: aws.String("public, max-age=31536000"),
		ACL:          types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return fmt.Errorf("failed to upload cover for %d: %w", remoteID, err)
	}

	s.mirrored.Add(remoteID, struct{}{})
	return nil
}

// DeleteCover removes a mirrored cover, for when a game is purged.
func (s *CoverService) DeleteCover(ctx context.Context, remoteID int64) error {
	key := s.coverKey(remoteID)
	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return fmt.Errorf("failed to delete cover for %d: %w", remoteID, err)
	}
	s.mirrored.Remove(remoteID)
	return nil
}

// CoverURL returns the public URL of a mirrored cover.
func (s *CoverService) CoverURL(remoteID int64) string {
	return fmt.Sprintf("https://%s.%s.digitaloceanspaces.com/%s", s.bucket, s.region, s.coverKey(remoteID))
}

func (s *CoverService) coverKey(remoteID int64) string {
	return fmt.Sprintf("%s/%d.jpg", coversRoot, remoteID)
}
