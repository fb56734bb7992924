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

package database

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/iewnfod/moemail/internal/models"
)

func TestMessageDaoTestSuite(t *testing.T) {
	suite.Run(t, new(MessageDaoTestSuite))
}

type MessageDaoTestSuite struct {
	baseDatabaseTestSuite

	messageDao MessageDao
}

func (s *MessageDaoTestSuite) SetupSuite() {
	s.messageDao = NewMessageDao()
}

func (s *MessageDaoTestSuite) requireMailbox() {
	s.requireExec(
		`
			insert into "mailboxes" ( "id", "address", "user_id" )
			values ( 7, 'bob@y.com', 'user-1' ) ;
		`)
}

func (s *MessageDaoTestSuite) TestInsert() {
	s.requireMailbox()

	message := models.MessageEntity{
		ID:          "mail-1",
		MailboxID:   7,
		FromAddress: "alice@x.com",
		Subject:     "Hi",
		TextBody:    "hello",
		HTMLBody:    "",
		Direction:   models.DirectionReceived,
		Attachments: models.AttachmentList{},
	}

	s.Assert().Zero(message.ReceivedAt)
	s.Assert().NoError(s.messageDao.Insert(s.ctx, s.conn, &message))
	s.Assert().NotZero(message.ReceivedAt)

	s.assertQuery(
		`
			select "id", "mailbox_id", "from_address", "subject", "direction", "attachments"
			from "messages" ;
		`,
		[]string{"mail-1", "7", "alice@x.com", "Hi", "received", "[]"})
}

func (s *MessageDaoTestSuite) TestInsertAssignsTimestampInDatabase() {
	s.requireMailbox()

	message := models.MessageEntity{
		ID:          "mail-1",
		MailboxID:   7,
		FromAddress: "alice@x.com",
		Subject:     "Hi",
		Direction:   models.DirectionReceived,
		// a client-side timestamp must not survive the insert
		ReceivedAt: 1,
	}

	s.Require().NoError(s.messageDao.Insert(s.ctx, s.conn, &message))
	s.Assert().Greater(message.ReceivedAt, int64(1))
}

func (s *MessageDaoTestSuite) TestInsertUnknownMailbox() {
	message := models.MessageEntity{
		ID:          "mail-1",
		MailboxID:   999,
		FromAddress: "alice@x.com",
		Subject:     "Hi",
		Direction:   models.DirectionReceived,
	}

	err := s.messageDao.Insert(s.ctx, s.conn, &message)
	s.Assert().Error(err)
	s.Assert().True(IsErrForeignKey(err))
}

func (s *MessageDaoTestSuite) TestFindByID() {
	s.requireMailbox()

	inserted := models.MessageEntity{
		ID:          "mail-1",
		MailboxID:   7,
		FromAddress: "alice@x.com",
		Subject:     "Report",
		TextBody:    "see attachment",
		HTMLBody:    "<p>see attachment</p>",
		Direction:   models.DirectionReceived,
		Attachments: models.AttachmentList{
			{Name: "report.pdf", Size: 10240, Key: "alice@x.com-1700000000000-report.pdf"},
		},
	}

	s.Require().NoError(s.messageDao.Insert(s.ctx, s.conn, &inserted))

	actual, err := s.messageDao.FindByID(s.ctx, s.conn, "mail-1")
	s.Require().NoError(err)
	s.Assert().Equal(&inserted, actual)
}

func (s *MessageDaoTestSuite) TestFindByIDNotFound() {
	_, err := s.messageDao.FindByID(s.ctx, s.conn, "unknown")
	s.Assert().Error(err)
	s.Assert().True(IsErrNoRows(err))
}

func (s *MessageDaoTestSuite) TestFindByMailbox() {
	s.requireMailbox()
	s.requireExec(
		`
			insert into "messages"
				( "id", "mailbox_id", "from_address", "subject", "text_body",
				  "html_body", "direction", "attachments", "received_at" )
			values
				( 'mail-1', 7, 'alice@x.com', 'first',  '', '', 'received', '[]', 100 ) ,
				( 'mail-2', 7, 'alice@x.com', 'second', '', '', 'received', '[]', 200 ) ;
		`)

	actual, err := s.messageDao.FindByMailbox(s.ctx, s.conn, 7)
	s.Require().NoError(err)
	s.Require().Len(actual, 2)
	s.Assert().Equal("mail-2", actual[0].ID)
	s.Assert().Equal("mail-1", actual[1].ID)
}

func (s *MessageDaoTestSuite) TestFindByMailboxEmpty() {
	s.requireMailbox()

	actual, err := s.messageDao.FindByMailbox(s.ctx, s.conn, 7)
	s.Require().NoError(err)
	s.Assert().Empty(actual)
}
