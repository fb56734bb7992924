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

package smtp

import (
	"bytes"
	"context"
	"errors"
	"io"

	gosmtp "github.com/emersion/go-smtp"

	"github.com/iewnfod/moemail/internal/delivery"
	"github.com/iewnfod/moemail/internal/log"
	"github.com/iewnfod/moemail/internal/mails"
	"github.com/iewnfod/moemail/internal/models"
)

var (
	errInvalidAddress = &gosmtp.SMTPError{
		Code:         553,
		EnhancedCode: gosmtp.EnhancedCode{5, 1, 7},
		Message:      "that does not look like an address",
	}

	errTemporaryFailure = &gosmtp.SMTPError{
		Code:         451,
		EnhancedCode: gosmtp.EnhancedCode{4, 3, 0},
		Message:      "could not take the message right now, try again later",
	}

	errUnprocessableMessage = &gosmtp.SMTPError{
		Code:         554,
		EnhancedCode: gosmtp.EnhancedCode{5, 6, 0},
		Message:      "could not make sense of the message",
	}
)

// session is the per connection state. Recipients are accepted without a
// mailbox lookup so that probing for addresses is not possible. Unknown
// recipients are dropped silently after the message is accepted.
type session struct {
	ctx     context.Context
	mailman delivery.Mailman

	from models.Address
	to   []models.Address
}

func (s *session) Mail(from string, _ *gosmtp.MailOptions) error {
	address, err := models.Parse(from)
	if err != nil {
		log.DebugContext(s.ctx).
			Err(err).
			Str("from", from).
			Msg("rejecting sender address")

		return errInvalidAddress
	}

	s.from = address
	return nil
}

func (s *session) Rcpt(to string, _ *gosmtp.RcptOptions) error {
	address, err := models.Parse(to)
	if err != nil {
		log.DebugContext(s.ctx).
			Err(err).
			Str("to", to).
			Msg("rejecting recipient address")

		return errInvalidAddress
	}

	s.to = append(s.to, address)
	return nil
}

func (s *session) Data(r io.Reader) error {
	// the reader can only be consumed once, but the message is ingested once
	// per recipient.
	raw, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	for _, to := range s.to {
		envelope := mails.Envelope{From: s.from, To: to}

		if err := s.deliver(envelope, raw); err != nil {
			return err
		}
	}

	return nil
}

func (s *session) deliver(envelope mails.Envelope, raw []byte) error {
	result, err := s.mailman.Deliver(s.ctx, envelope, bytes.NewReader(raw))
	if err != nil {
		log.ErrorContext(s.ctx).
			Err(err).
			Stringer("to", envelope.To).
			Msg("could not deliver message")

		if errors.Is(err, mails.ErrMalformedMessage) {
			return errUnprocessableMessage
		}

		return errTemporaryFailure
	}

	if result.Dropped {
		log.DebugContext(s.ctx).
			Stringer("to", envelope.To).
			Msg("message dropped")
	}

	return nil
}

func (s *session) Reset() {
	s.from = models.ZeroAddress
	s.to = nil
}

func (s *session) Logout() error {
	log.InfoContext(s.ctx).Msg("closing session")
	return nil
}
