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

package delivery

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/iewnfod/moemail/internal/log"
	"github.com/iewnfod/moemail/internal/mails"
	"github.com/iewnfod/moemail/internal/models"
	"github.com/iewnfod/moemail/internal/storage"
)

// AttachmentStore writes the attachments of an inbound message to the blob
// store and produces a reference per attachment.
type AttachmentStore interface {
	// StoreAll stores all attachments of a single message and returns their
	// references in the original attachment order. If any attachment fails,
	// StoreAll fails as a whole. Blobs written before the failure are left in
	// place, there is no transactional delete.
	StoreAll(
		ctx context.Context,
		sender models.Address,
		attachments []mails.Attachment,
	) (models.AttachmentList, error)
}

// NewAttachmentStore creates a new AttachmentStore on top of a blob store.
func NewAttachmentStore(blobs storage.Blobs) AttachmentStore {
	return &attachmentStore{
		blobs: blobs,
		now:   time.Now,
	}
}

type attachmentStore struct {
	blobs storage.Blobs
	now   func() time.Time
}

func (a *attachmentStore) StoreAll(
	ctx context.Context,
	sender models.Address,
	attachments []mails.Attachment,
) (models.AttachmentList, error) {
	refs := make(models.AttachmentList, len(attachments))
	if len(attachments) == 0 {
		return refs, nil
	}

	// all attachments of one message share a single ingestion timestamp
	timestamp := a.now().UnixMilli()

	group, groupCtx := errgroup.WithContext(ctx)

	for i, attachment := range attachments {
		i, attachment := i, attachment

		group.Go(func() error {
			ref, err := a.store(groupCtx, sender, timestamp, attachment)
			if err != nil {
				return err
			}

			refs[i] = ref
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return refs, nil
}

func (a *attachmentStore) store(
	ctx context.Context,
	sender models.Address,
	timestamp int64,
	attachment mails.Attachment,
) (models.AttachmentRef, error) {
	key := deriveKey(sender, timestamp, attachment.Filename)

	log.DebugContext(ctx).
		Str("key", key).
		Str("filename", attachment.Filename).
		Msg("storing attachment")

	size, err := a.blobs.Put(ctx, key, attachment.ContentType,
		bytes.NewReader(attachment.Content))
	if err != nil {
		return models.AttachmentRef{}, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	return models.AttachmentRef{
		Name: attachment.Filename,
		Size: size,
		Key:  key,
	}, nil
}

// deriveKey derives the blob key of an attachment. The format
// "{sender}-{unix millis}-{filename}" is part of the storage layout and must
// not change, existing references would dangle otherwise. Collisions are
// acceptable only across distinct ingestion timestamps.
func deriveKey(sender models.Address, timestamp int64, filename string) string {
	return fmt.Sprintf("%s-%d-%s", sender, timestamp, filename)
}
