package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"golang.org/x/image/draw"

	"github.com/studysched/tutor-scheduler/internal/config"
	"github.com/studysched/tutor-scheduler/internal/httperr"
)

// avatars are stored as bounded-size WebP regardless of the uploaded format
const maxAvatarEdge = 512

type AvatarStore struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewAvatarStore(cfg *config.Config) *AvatarStore {
	opts := s3.Options{
		Region: cfg.StorageRegion,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(
				cfg.StorageAccessKey,
				cfg.StorageSecretKey,
				"",
			),
		),
	}

	if cfg.StorageEndpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.StorageEndpoint)
		opts.UsePathStyle = true
	}

	return &AvatarStore{
		client:    s3.New(opts),
		bucket:    cfg.StorageBucket,
		publicURL: strings.TrimRight(cfg.StoragePublicURL, "/"),
	}
}

// Upload decodes a JPEG/PNG avatar, scales it down to fit maxAvatarEdge,
// re-encodes it as WebP and puts it in the bucket. Returns the public URL.
func (s *AvatarStore) Upload(ctx context.Context, userID uint, r io.Reader) (string, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return "", httperr.ErrBusiness("invalid_image")
	}

	img := scaleDown(src)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: 85}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	key := fmt.Sprintf("avatars/%d.webp", userID)

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", fmt.Errorf("put avatar: %w", err)
	}

	if s.publicURL != "" {
		return s.publicURL + "/" + key, nil
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key), nil
}

func scaleDown(src image.Image) image.Image {
	b := src.Bounds()
	if b.Dx() <= maxAvatarEdge && b.Dy() <= maxAvatarEdge {
		return src
	}

	w, h := b.Dx(), b.Dy()
	if w >= h {
		h = h * maxAvatarEdge / w
		w = maxAvatarEdge
	} else {
		w = w * maxAvatarEdge / h
		h = maxAvatarEdge
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
