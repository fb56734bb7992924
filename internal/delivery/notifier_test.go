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
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/iewnfod/moemail/internal/models"

	database "github.com/iewnfod/moemail/internal/mocks/database"
)

func TestNotifierTestSuite(t *testing.T) {
	suite.Run(t, new(NotifierTestSuite))
}

type NotifierTestSuite struct {
	suite.Suite

	notifier Notifier

	db         *database.Conn
	webhookDao *database.WebhookDao
}

func (s *NotifierTestSuite) SetupTest() {
	s.db = new(database.Conn)
	s.webhookDao = new(database.WebhookDao)

	s.notifier = NewNotifier(s.db, s.webhookDao, NotifierOptions{Timeout: time.Second})
}

func (s *NotifierTestSuite) TeardownTest() {
	s.db.AssertExpectations(s.T())
	s.webhookDao.AssertExpectations(s.T())
}

func (s *NotifierTestSuite) fixtures() (*models.MailboxEntity, *models.MessageEntity) {
	mailbox := &models.MailboxEntity{
		ID:      7,
		Address: mustParseAddress(s.T(), "bob@y.com"),
		UserID:  "user-7",
	}

	message := &models.MessageEntity{
		ID:          "4ac63175-a668-4f00-8b01-9d6fa7b2bea0",
		MailboxID:   7,
		FromAddress: "alice@x.com",
		Subject:     "Hi",
		TextBody:    "hello",
		HTMLBody:    "<p>hello</p>",
		Direction:   models.DirectionReceived,
		Attachments: models.AttachmentList{
			{Name: "report.pdf", Size: 8, Key: "alice@x.com-1700000000000-report.pdf"},
		},
		ReceivedAt: 1700000000,
	}

	return mailbox, message
}

func (s *NotifierTestSuite) TestNotify() {
	ctx := context.TODO()
	mailbox, message := s.fixtures()

	var (
		gotEvent       string
		gotContentType string
		gotBody        []byte
	)

	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			gotEvent = r.Header.Get("X-Webhook-Event")
			gotContentType = r.Header.Get("Content-Type")
			gotBody, _ = io.ReadAll(r.Body)
		}))
	defer server.Close()

	s.webhookDao.On("FindByUserID", ctx, s.db, "user-7").Return(
		&models.WebhookEntity{UserID: "user-7", URL: server.URL, Enabled: true},
		nil,
	)

	outcome := s.notifier.Notify(ctx, mailbox, message)
	s.Assert().Equal(NotificationSent, outcome)

	s.Assert().Equal("new_message", gotEvent)
	s.Assert().Equal("application/json", gotContentType)

	var payload map[string]interface{}
	s.Require().NoError(json.Unmarshal(gotBody, &payload))

	s.Assert().EqualValues(7, payload["emailId"])
	s.Assert().Equal(message.ID, payload["messageId"])
	s.Assert().Equal("alice@x.com", payload["fromAddress"])
	s.Assert().Equal("Hi", payload["subject"])
	s.Assert().Equal("hello", payload["content"])
	s.Assert().Equal("<p>hello</p>", payload["html"])
	s.Assert().Equal("2023-11-14T22:13:20Z", payload["receivedAt"])
	s.Assert().Equal("bob@y.com", payload["toAddress"])

	attachments, ok := payload["attachments"].([]interface{})
	s.Require().True(ok)
	s.Require().Len(attachments, 1)
}

func (s *NotifierTestSuite) TestNotifySkippedWithoutWebhook() {
	ctx := context.TODO()
	mailbox, message := s.fixtures()

	s.webhookDao.On("FindByUserID", ctx, s.db, "user-7").Return(nil, sql.ErrNoRows)

	outcome := s.notifier.Notify(ctx, mailbox, message)
	s.Assert().Equal(NotificationSkipped, outcome)
}

func (s *NotifierTestSuite) TestNotifySkippedWhenDisabled() {
	ctx := context.TODO()
	mailbox, message := s.fixtures()

	s.webhookDao.On("FindByUserID", ctx, s.db, "user-7").Return(
		&models.WebhookEntity{UserID: "user-7", URL: "http://ignored", Enabled: false},
		nil,
	)

	outcome := s.notifier.Notify(ctx, mailbox, message)
	s.Assert().Equal(NotificationSkipped, outcome)
}

func (s *NotifierTestSuite) TestNotifyFailedOnTransportError() {
	ctx := context.TODO()
	mailbox, message := s.fixtures()

	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	s.webhookDao.On("FindByUserID", ctx, s.db, "user-7").Return(
		&models.WebhookEntity{UserID: "user-7", URL: server.URL, Enabled: true},
		nil,
	)

	outcome := s.notifier.Notify(ctx, mailbox, message)
	s.Assert().Equal(NotificationFailed, outcome)
}

func (s *NotifierTestSuite) TestNotifySentDespiteErrorStatus() {
	ctx := context.TODO()
	mailbox, message := s.fixtures()

	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
	defer server.Close()

	s.webhookDao.On("FindByUserID", ctx, s.db, "user-7").Return(
		&models.WebhookEntity{UserID: "user-7", URL: server.URL, Enabled: true},
		nil,
	)

	outcome := s.notifier.Notify(ctx, mailbox, message)
	s.Assert().Equal(NotificationSent, outcome)
}
