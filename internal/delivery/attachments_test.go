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
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/iewnfod/moemail/internal/mails"
	"github.com/iewnfod/moemail/internal/models"

	storage "github.com/iewnfod/moemail/internal/mocks/storage"
)

func TestAttachmentStoreTestSuite(t *testing.T) {
	suite.Run(t, new(AttachmentStoreTestSuite))
}

type AttachmentStoreTestSuite struct {
	suite.Suite

	store *attachmentStore
	blobs *storage.Blobs
}

func (s *AttachmentStoreTestSuite) SetupTest() {
	s.blobs = new(storage.Blobs)
	s.store = &attachmentStore{
		blobs: s.blobs,
		now:   func() time.Time { return time.UnixMilli(1700000000000) },
	}
}

func (s *AttachmentStoreTestSuite) TeardownTest() {
	s.blobs.AssertExpectations(s.T())
}

func (s *AttachmentStoreTestSuite) TestStoreAll() {
	ctx := context.TODO()
	sender := mustParseAddress(s.T(), "alice@x.com")

	attachments := []mails.Attachment{
		{Filename: "report.pdf", ContentType: "application/pdf", Content: []byte("pdf-data")},
		{Filename: "data.csv", ContentType: "text/csv", Content: []byte("a,b,c")},
	}

	s.blobs.
		On("Put", mock.Anything, "alice@x.com-1700000000000-report.pdf",
			"application/pdf", mock.Anything).
		Return(int64(8), nil)

	s.blobs.
		On("Put", mock.Anything, "alice@x.com-1700000000000-data.csv",
			"text/csv", mock.Anything).
		Return(int64(5), nil)

	refs, err := s.store.StoreAll(ctx, sender, attachments)
	s.Require().NoError(err)

	s.Assert().Equal(models.AttachmentList{
		{Name: "report.pdf", Size: 8, Key: "alice@x.com-1700000000000-report.pdf"},
		{Name: "data.csv", Size: 5, Key: "alice@x.com-1700000000000-data.csv"},
	}, refs)
}

func (s *AttachmentStoreTestSuite) TestStoreAllEmpty() {
	ctx := context.TODO()
	sender := mustParseAddress(s.T(), "alice@x.com")

	refs, err := s.store.StoreAll(ctx, sender, nil)
	s.Require().NoError(err)

	s.Assert().NotNil(refs)
	s.Assert().Empty(refs)
}

func (s *AttachmentStoreTestSuite) TestStoreAllFailure() {
	ctx := context.TODO()
	sender := mustParseAddress(s.T(), "alice@x.com")

	attachments := []mails.Attachment{
		{Filename: "blob.bin", ContentType: "application/octet-stream", Content: []byte("x")},
	}

	s.blobs.
		On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(int64(0), errors.New("disk full"))

	refs, err := s.store.StoreAll(ctx, sender, attachments)
	s.Require().Error(err)
	s.Assert().ErrorIs(err, ErrStorageUnavailable)
	s.Assert().Nil(refs)
}

func TestDeriveKey(t *testing.T) {
	sender := mustParseAddress(t, "alice@x.com")
	key := deriveKey(sender, 1700000000000, "report.pdf")

	if key != "alice@x.com-1700000000000-report.pdf" {
		t.Fatalf("unexpected key: %q", key)
	}
}
