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
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/spf13/viper"

	"github.com/iewnfod/moemail/internal/database"
	"github.com/iewnfod/moemail/internal/log"
	"github.com/iewnfod/moemail/internal/models"
)

func init() {
	viper.SetDefault("webhook.timeout", "10s")
}

const (
	headerWebhookEvent = "X-Webhook-Event"
	eventNewMessage    = "new_message"
)

// NotificationOutcome describes how a notification attempt ended. Webhook
// delivery is advisory, so the outcome is a value instead of an error and
// never aborts ingestion.
type NotificationOutcome int

const (
	_ NotificationOutcome = iota
	// NotificationSent means the webhook endpoint was called. A non-success
	// http status still counts as sent, there is no retry either way.
	NotificationSent
	// NotificationSkipped means the mailbox owner has no enabled webhook.
	NotificationSkipped
	// NotificationFailed means the attempt did not reach the endpoint.
	NotificationFailed
)

func (o NotificationOutcome) String() string {
	switch o {
	case NotificationSent:
		return "sent"
	case NotificationSkipped:
		return "skipped"
	case NotificationFailed:
		return "failed"
	}

	return "unknown"
}

// Notifier performs a single, best-effort webhook notification for a newly
// stored message.
type Notifier interface {
	// Notify looks up the webhook configuration of the mailbox owner and, if
	// enabled, posts a notification once. All failures are absorbed.
	Notify(
		ctx context.Context,
		mailbox *models.MailboxEntity,
		message *models.MessageEntity,
	) NotificationOutcome
}

// NotifierOptions is a struct of options for the webhook notifier.
type NotifierOptions struct {
	// Timeout is the overall timeout of one notification attempt.
	Timeout time.Duration
}

// NotifierOptionsFromViper fills NotifierOptions using configuration from viper.
//
// `webhook.timeout` is the http client timeout.
func NotifierOptionsFromViper() NotifierOptions {
	return NotifierOptions{
		Timeout: viper.GetDuration("webhook.timeout"),
	}
}

// NewNotifier creates a new Notifier.
func NewNotifier(
	conn database.Conn,
	webhookDao database.WebhookDao,
	opts NotifierOptions,
) Notifier {
	return &notifier{
		conn:       conn,
		webhookDao: webhookDao,
		client:     &http.Client{Timeout: opts.Timeout},
	}
}

type notifier struct {
	conn       database.Conn
	webhookDao database.WebhookDao
	client     *http.Client
}

// notificationPayload is the wire format of a webhook notification.
type notificationPayload struct {
	EmailID     int64                 `json:"emailId"`
	MessageID   string                `json:"messageId"`
	FromAddress string                `json:"fromAddress"`
	Subject     string                `json:"subject"`
	Content     string                `json:"content"`
	HTML        string                `json:"html"`
	ReceivedAt  string                `json:"receivedAt"`
	ToAddress   string                `json:"toAddress"`
	Attachments models.AttachmentList `json:"attachments"`
}

func (n *notifier) Notify(
	ctx context.Context,
	mailbox *models.MailboxEntity,
	message *models.MessageEntity,
) NotificationOutcome {
	webhook, err := n.webhookDao.FindByUserID(ctx, n.conn, mailbox.UserID)
	if err != nil {
		if database.IsErrNoRows(err) {
			log.DebugContext(ctx).
				Str("userId", mailbox.UserID).
				Msg("no webhook configured, skipping notification")
			return NotificationSkipped
		}

		log.ErrorContext(ctx).
			Err(err).
			Str("userId", mailbox.UserID).
			Msg("could not load webhook configuration")
		return NotificationFailed
	}

	if !webhook.Enabled {
		log.DebugContext(ctx).
			Str("userId", mailbox.UserID).
			Msg("webhook disabled, skipping notification")
		return NotificationSkipped
	}

	return n.post(ctx, webhook, mailbox, message)
}

func (n *notifier) post(
	ctx context.Context,
	webhook *models.WebhookEntity,
	mailbox *models.MailboxEntity,
	message *models.MessageEntity,
) NotificationOutcome {
	payload := notificationPayload{
		EmailID:     mailbox.ID,
		MessageID:   message.ID,
		FromAddress: message.FromAddress,
		Subject:     message.Subject,
		Content:     message.TextBody,
		HTML:        message.HTMLBody,
		ReceivedAt:  time.Unix(message.ReceivedAt, 0).UTC().Format(time.RFC3339),
		ToAddress:   mailbox.Address.String(),
		Attachments: message.Attachments,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.ErrorContext(ctx).
			Err(err).
			Msg("could not encode notification payload")
		return NotificationFailed
	}

	request, err := http.NewRequestWithContext(
		ctx, http.MethodPost, webhook.URL, bytes.NewReader(body))
	if err != nil {
		log.ErrorContext(ctx).
			Err(err).
			Str("url", webhook.URL).
			Msg("could not create notification request")
		return NotificationFailed
	}

	request.Header.Set("Content-Type", "application/json")
	request.Header.Set(headerWebhookEvent, eventNewMessage)

	response, err := n.client.Do(request)
	if err != nil {
		log.WarnContext(ctx).
			Err(err).
			Str("url", webhook.URL).
			Msg("webhook notification failed")
		return NotificationFailed
	}

	defer response.Body.Close()
	io.Copy(io.Discard, response.Body) // nolint:errcheck

	if response.StatusCode < 200 || response.StatusCode > 299 {
		log.WarnContext(ctx).
			Str("url", webhook.URL).
			Int("status", response.StatusCode).
			Msg("webhook endpoint returned non-success status")
	}

	return NotificationSent
}
