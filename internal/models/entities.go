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

package models

// MailboxEntity is the entity for the "mailboxes" table. Mailboxes are owned
// by an external account system and are read-only from the ingestion core's
// perspective.
type MailboxEntity struct {
	ID      int64   `db:"id"`
	Address Address `db:"address"`
	UserID  string  `db:"user_id"`
}

// DirectionReceived marks messages that arrived through inbound ingestion.
const DirectionReceived = "received"

// MessageEntity is the entity for the "messages" table. A message row is
// created exactly once per successfully ingested email and is immutable
// afterwards.
type MessageEntity struct {
	ID          string         `db:"id"`
	MailboxID   int64          `db:"mailbox_id"`
	FromAddress string         `db:"from_address"`
	Subject     string         `db:"subject"`
	TextBody    string         `db:"text_body"`
	HTMLBody    string         `db:"html_body"`
	Direction   string         `db:"direction"`
	Attachments AttachmentList `db:"attachments"`
	ReceivedAt  int64          `db:"received_at"`
}

// WebhookEntity is the entity for the "webhooks" table. Webhook registration
// is owned externally and read-only here.
type WebhookEntity struct {
	UserID  string `db:"user_id"`
	URL     string `db:"url"`
	Enabled bool   `db:"enabled"`
}
