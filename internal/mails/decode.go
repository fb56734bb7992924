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
	"errors"
	"fmt"
	"io"

	_ "github.com/emersion/go-message/charset"
	"github.com/emersion/go-message/mail"
)

// ErrMalformedMessage is returned when a raw payload cannot be decoded as a
// mime message. Decoding is the first step of ingestion, so a malformed
// message never reaches storage.
var ErrMalformedMessage = errors.New("mails: malformed message")

const (
	contentTypeText = "text/plain"
	contentTypeHTML = "text/html"

	fallbackContentType = "application/octet-stream"
)

// Decode parses a raw RFC#5322 payload into a Message. Decoding is a pure
// transform: the same bytes always decode to the same Message. Binary
// attachment payloads are passed through without charset transformation.
func Decode(r io.Reader) (*Message, error) {
	mr, err := mail.CreateReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedMessage, err)
	}

	var message Message

	if subject, err := mr.Header.Subject(); err == nil {
		message.Subject = subject
	}

	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedMessage, err)
		}

		if err := decodePart(&message, part); err != nil {
			return nil, err
		}
	}

	return &message, nil
}

func decodePart(message *Message, part *mail.Part) error {
	switch header := part.Header.(type) {
	case *mail.InlineHeader:
		return decodeInline(message, header, part.Body)
	case *mail.AttachmentHeader:
		return decodeAttachment(message, header, part.Body)
	}

	return nil
}

func decodeInline(message *Message, header *mail.InlineHeader, body io.Reader) error {
	contentType, _, err := header.ContentType()
	if err != nil {
		contentType = contentTypeText
	}

	content, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedMessage, err)
	}

	switch contentType {
	case contentTypeText:
		if message.Text == "" {
			message.Text = string(content)
		}

	case contentTypeHTML:
		if message.HTML == "" {
			message.HTML = string(content)
		}
	}

	return nil
}

func decodeAttachment(message *Message, header *mail.AttachmentHeader, body io.Reader) error {
	contentType, _, err := header.ContentType()
	if err != nil || contentType == "" {
		contentType = fallbackContentType
	}

	filename, err := header.Filename()
	if err != nil {
		filename = ""
	}

	content, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedMessage, err)
	}

	message.Attachments = append(message.Attachments, Attachment{
		Filename:    filename,
		ContentType: contentType,
		Content:     content,
	})

	return nil
}
