// Copyright (C) 2025  The moemail authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package storage

import (
	"context"
	"io"
	"net/url"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/iewnfod/moemail/internal/log"
)

func init() {
	viper.SetDefault("storage.blobs.foldername", "data/attachments")
}

// Blobs is a permanent store for blobs of data. Blobs are addressed by an
// opaque key chosen by the caller.
type Blobs interface {
	// Put copies all the data from r to a blob addressable by key. The
	// declared content type is advisory, the filesystem backend does not
	// record it. Put returns the number of bytes written.
	Put(ctx context.Context, key string, contentType string, r io.Reader) (int64, error)
	// Reader returns a reader to a blob. The responsibility to close the
	// reader is on the caller.
	Reader(key string) (io.ReadCloser, error)
	// Delete removes a blob by key.
	Delete(ctx context.Context, key string) error
}

// BlobsOptions is a struct of options for the blob store.
type BlobsOptions struct {
	// Foldername is the folder in which blob files are stored.
	Foldername string
}

// BlobsOptionsFromViper fills BlobsOptions using configuration from viper.
//
// `storage.blobs.foldername` is the foldername for blob files.
func BlobsOptionsFromViper() BlobsOptions {
	return BlobsOptions{
		Foldername: viper.GetString("storage.blobs.foldername"),
	}
}

// NewBlobs creates a new blob store on top of a filesystem.
func NewBlobs(fs afero.Fs, opts BlobsOptions) (Blobs, error) {
	if err := fs.MkdirAll(opts.Foldername, 0700); err != nil {
		return nil, err
	}

	return &blobs{
		fs: afero.NewBasePathFs(fs, opts.Foldername),
	}, nil
}

type blobs struct {
	fs afero.Fs
}

func (b *blobs) Put(ctx context.Context, key, contentType string, r io.Reader) (int64, error) {
	log.DebugContext(ctx).
		Str("key", key).
		Str("contentType", contentType).
		Msg("writing blob")

	f, err := b.fs.Create(encodeKey(key))
	if err != nil {
		return -1, err
	}

	size, err := io.Copy(f, r)
	if err != nil {
		f.Close()
		b.Delete(ctx, key)

		return -1, err
	}

	return size, f.Close()
}

func (b *blobs) Reader(key string) (io.ReadCloser, error) {
	return b.fs.Open(encodeKey(key))
}

func (b *blobs) Delete(ctx context.Context, key string) error {
	log.DebugContext(ctx).
		Str("key", key).
		Msg("removing blob")

	return b.fs.Remove(encodeKey(key))
}

// encodeKey maps an opaque blob key to a flat filename. Keys contain
// untrusted attachment filenames, which must not be able to escape the blob
// folder or nest into subfolders.
func encodeKey(key string) string {
	return url.PathEscape(key)
}
