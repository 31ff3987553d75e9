// Package storage provides the blob-backed implementation of the image store.
package storage

import (
	"context"
	"io"
	"log/slog"
	"os"

	"plantstore/config"
	"plantstore/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/gcerrors"
)

// blobImageStore stores images in a gocloud blob bucket. The default backend
// is fileblob on a local directory, but any blob URL the driver set supports
// will work.
type blobImageStore struct {
	bucket *blob.Bucket
}

// Params defines the parameters required for the image store.
type Params struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Lifecycle fx.Lifecycle
}

// New opens the configured bucket and registers its shutdown hook.
func New(params Params) (service.ImageStore, error) {
	dir := params.Config.Env.Storage.ImageDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create image directory")
	}

	bucket, err := fileblob.OpenBucket(dir, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open image bucket")
	}

	params.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing image bucket")

			return bucket.Close()
		},
	})

	return &blobImageStore{bucket: bucket}, nil
}

// Save streams the image contents into the bucket under the given key,
// overwriting any existing object.
func (s *blobImageStore) Save(ctx context.Context, key string, contents io.Reader) error {
	writer, err := s.bucket.NewWriter(ctx, key, nil)
	if err != nil {
		return errors.Wrap(err, "failed to open image writer")
	}

	if _, err := io.Copy(writer, contents); err != nil {
		_ = writer.Close()

		return errors.Wrap(err, "failed to write image")
	}

	return errors.Wrap(writer.Close(), "failed to finalize image write")
}

// Remove deletes an image from the bucket. A missing object is not an error.
func (s *blobImageStore) Remove(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrap(err, "failed to delete image")
	}

	return nil
}
