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
	"context"

	"github.com/iewnfod/moemail/internal/models"
)

// MailboxDao is a data access object for all mailbox related queries.
// Mailboxes are provisioned by an external account system, so the ingestion
// pipeline only ever reads them.
type MailboxDao interface {
	// Insert inserts a new mailbox.
	Insert(context.Context, Queryer, *models.MailboxEntity) error
	// FindAll returns all mailboxes.
	FindAll(context.Context, Queryer) ([]models.MailboxEntity, error)
	// FindByAddress returns the mailbox associated with an address. The
	// comparison is case-insensitive.
	FindByAddress(context.Context, Queryer, models.Address) (*models.MailboxEntity, error)
}

// mailboxDao is the sqlite implementation of MailboxDao.
type mailboxDao struct{}

// NewMailboxDao creates a new MailboxDao.
func NewMailboxDao() MailboxDao {
	return mailboxDao{}
}

func (mailboxDao) Insert(ctx context.Context, q Queryer, mailbox *models.MailboxEntity) error {
	const query = `
		insert into "mailboxes" (
			"address" ,
			"user_id"
		) values (
			:address ,
			:user_id
		) ;
	`

	result, err := execNamed(ctx, q, query, mailbox)
	if err != nil {
		return err
	}

	if err := ensureRowsAffected(result); err != nil {
		return err
	}

	mailbox.ID, err = result.LastInsertId()
	return err
}

func (mailboxDao) FindAll(ctx context.Context, q Queryer) ([]models.MailboxEntity, error) {
	const query = `
		select *
		from "mailboxes" ;
	`

	var mailboxSlice []models.MailboxEntity

	if err := selectSlice(ctx, q, &mailboxSlice, query); err != nil {
		return nil, err
	}

	return mailboxSlice, nil
}

func (mailboxDao) FindByAddress(
	ctx context.Context,
	q Queryer,
	address models.Address,
) (*models.MailboxEntity, error) {
	const query = `
		select *
		from "mailboxes"
		where lower("address") = lower($1)
		limit 1 ;
	`

	var mailbox models.MailboxEntity

	if err := selectOne(ctx, q, &mailbox, query, address); err != nil {
		return nil, err
	}

	return &mailbox, nil
}
