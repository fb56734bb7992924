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
	"context"
	"sync/atomic"

	gosmtp "github.com/emersion/go-smtp"

	"github.com/iewnfod/moemail/internal/delivery"
	"github.com/iewnfod/moemail/internal/log"
)

// NewBackend creates a new smtp backend. Every connection gets its own
// session, which hands completed messages to the mailman.
func NewBackend(mailman delivery.Mailman) gosmtp.Backend {
	return &backend{mailman: mailman}
}

type backend struct {
	mailman delivery.Mailman
	counter atomic.Int32
}

func (b *backend) NewSession(conn *gosmtp.Conn) (gosmtp.Session, error) {
	ctx := log.WithConnection(context.Background(), b.counter.Add(1))

	if netConn := conn.Conn(); netConn != nil {
		ctx = log.WithOrigin(ctx, netConn.RemoteAddr().String())
	}

	log.InfoContext(ctx).Msg("starting session")

	return &session{
		ctx:     ctx,
		mailman: b.mailman,
	}, nil
}
