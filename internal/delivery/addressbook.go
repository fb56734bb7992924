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

	"github.com/iewnfod/moemail/internal/database"
	"github.com/iewnfod/moemail/internal/models"
)

// Addressbook resolves inbound recipient addresses to mailboxes.
type Addressbook interface {
	// Lookup resolves an address. A missing mailbox is not an error, the
	// result simply carries a nil mailbox. Only database errors may occur.
	Lookup(ctx context.Context, recipient models.Address) (*LookupResult, error)
}

// LookupResult is the result of an address lookup.
type LookupResult struct {
	// Address is the normalized address used for the lookup.
	Address models.Address
	// Mailbox is the mailbox of the address, if it exists.
	Mailbox *models.MailboxEntity
}

// NewAddressbook creates a new Addressbook.
func NewAddressbook(conn database.Conn, mailboxDao database.MailboxDao) Addressbook {
	return &addressbook{
		conn:       conn,
		mailboxDao: mailboxDao,
	}
}

type addressbook struct {
	conn       database.Conn
	mailboxDao database.MailboxDao
}

func (a *addressbook) Lookup(
	ctx context.Context,
	recipient models.Address,
) (*LookupResult, error) {
	normalized := recipient.Normalized()

	mailbox, err := a.mailboxDao.FindByAddress(ctx, a.conn, normalized)
	if err != nil && !database.IsErrNoRows(err) {
		return nil, err
	}

	return &LookupResult{Address: normalized, Mailbox: mailbox}, nil
}
