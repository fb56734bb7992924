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
	"fmt"
	"io"

	"github.com/iewnfod/moemail/internal/crypto"
	"github.com/iewnfod/moemail/internal/database"
	"github.com/iewnfod/moemail/internal/log"
	"github.com/iewnfod/moemail/internal/mails"
	"github.com/iewnfod/moemail/internal/models"
)

// defaultSubject is stored when a message carries no subject header.
const defaultSubject = "(无主题)"

// Mailman runs the ingestion pipeline for a single inbound message: decode,
// store attachments, resolve the recipient, persist and notify.
type Mailman interface {
	// Deliver ingests one inbound message. A recipient without a mailbox is
	// not an error, the message is dropped and the result says so. Webhook
	// notification failures never fail the delivery.
	Deliver(ctx context.Context, envelope mails.Envelope, raw io.Reader) (*Result, error)
}

// Result describes the outcome of one delivery.
type Result struct {
	// Dropped is true when the recipient had no mailbox. Message and
	// Notification are only set when Dropped is false.
	Dropped bool
	// Message is the persisted message entity.
	Message *models.MessageEntity
	// Notification is the outcome of the webhook notification attempt.
	Notification NotificationOutcome
}

// NewMailman creates a new Mailman.
func NewMailman(
	conn database.Conn,
	messageDao database.MessageDao,
	attachmentStore AttachmentStore,
	addressbook Addressbook,
	notifier Notifier,
	idGenerator crypto.IDGenerator,
) Mailman {
	return &mailman{
		conn:            conn,
		messageDao:      messageDao,
		attachmentStore: attachmentStore,
		addressbook:     addressbook,
		notifier:        notifier,
		idGenerator:     idGenerator,
	}
}

type mailman struct {
	conn            database.Conn
	messageDao      database.MessageDao
	attachmentStore AttachmentStore
	addressbook     Addressbook
	notifier        Notifier
	idGenerator     crypto.IDGenerator
}

func (m *mailman) Deliver(
	ctx context.Context,
	envelope mails.Envelope,
	raw io.Reader,
) (*Result, error) {
	message, err := mails.Decode(raw)
	if err != nil {
		return nil, err
	}

	// attachments are written before the recipient is resolved. A drop for an
	// unknown recipient leaves the blobs behind on purpose.
	refs, err := m.attachmentStore.StoreAll(ctx, envelope.From, message.Attachments)
	if err != nil {
		return nil, err
	}

	lookup, err := m.addressbook.Lookup(ctx, envelope.To)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	if lookup.Mailbox == nil {
		log.InfoContext(ctx).
			Stringer("to", lookup.Address).
			Msg("no mailbox for recipient, dropping message")

		return &Result{Dropped: true}, nil
	}

	entity, err := m.persist(ctx, envelope, lookup.Mailbox, message, refs)
	if err != nil {
		return nil, err
	}

	outcome := m.notifier.Notify(ctx, lookup.Mailbox, entity)

	log.InfoContext(ctx).
		Str("id", entity.ID).
		Stringer("to", lookup.Address).
		Stringer("notification", outcome).
		Msg("message delivered")

	return &Result{Message: entity, Notification: outcome}, nil
}

func (m *mailman) persist(
	ctx context.Context,
	envelope mails.Envelope,
	mailbox *models.MailboxEntity,
	message *mails.Message,
	refs models.AttachmentList,
) (*models.MessageEntity, error) {
	id, err := m.idGenerator.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	subject := message.Subject
	if subject == "" {
		subject = defaultSubject
	}

	entity := &models.MessageEntity{
		ID:          id,
		MailboxID:   mailbox.ID,
		FromAddress: envelope.From.String(),
		Subject:     subject,
		TextBody:    message.Text,
		HTMLBody:    message.HTML,
		Direction:   models.DirectionReceived,
		Attachments: refs,
	}

	if err := m.messageDao.Insert(ctx, m.conn, entity); err != nil {
		log.ErrorContext(ctx).
			Err(err).
			Stringer("to", mailbox.Address).
			Str("subject", subject).
			Msg("could not persist message")

		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	return entity, nil
}
