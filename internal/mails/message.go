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

package mails

import (
	"github.com/iewnfod/moemail/internal/models"
)

// Envelope is the shape of one inbound delivery as declared by the mail
// transport: the raw payload is handed over separately.
type Envelope struct {
	// From is the envelope sender address.
	From models.Address
	// To is the envelope recipient address.
	To models.Address
}

// Message is the decoded content of one inbound email. It lives for the
// duration of a single ingestion and is discarded afterwards.
type Message struct {
	// Subject is the decoded subject header. It may be empty.
	Subject string
	// Text is the plain text body. It may be empty.
	Text string
	// HTML is the html body. It may be empty.
	HTML string
	// Attachments are the attachments in their original order.
	Attachments []Attachment
}

// Attachment is a single decoded attachment before it is written to the blob
// store. The filename is taken from the message as is and must be treated as
// untrusted input.
type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}
