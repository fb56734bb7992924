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

// MessageDao is a data access object for all message related queries.
type MessageDao interface {
	// Insert inserts a new message. The received timestamp is assigned by the
	// database at the moment of the write, so that timestamps order by storage
	// order under concurrent ingestion. The entity is updated with the
	// assigned timestamp.
	Insert(context.Context, Queryer, *models.MessageEntity) error
	// FindByID returns the message with the given id.
	FindByID(context.Context, Queryer, string) (*models.MessageEntity, error)
	// FindByMailbox returns all messages of a mailbox ordered by receive time,
	// newest first.
	FindByMailbox(context.Context, Queryer, int64) ([]models.MessageEntity, error)
}

// messageDao is the sqlite implementation of MessageDao.
type messageDao struct{}

// NewMessageDao creates a new MessageDao.
func NewMessageDao() MessageDao {
	return messageDao{}
}

func (messageDao) Insert(ctx context.Context, q Queryer, message *models.MessageEntity) error {
	const query = `
		insert into "messages" (
			"id" ,
			"mailbox_id" ,
			"from_address" ,
			"subject" ,
			"text_body" ,
			"html_body" ,
			"direction" ,
			"attachments" ,
			"received_at"
		) values (
			:id ,
			:mailbox_id ,
			:from_address ,
			:subject ,
			:text_body ,
			:html_body ,
			:direction ,
			:attachments ,
			strftime('%s', 'now')
		) ;
	`

	result, err := execNamed(ctx, q, query, message)
	if err != nil {
		return err
	}

	if err := ensureRowsAffected(result); err != nil {
		return err
	}

	const timestampQuery = `
		select "received_at"
		from "messages"
		where "id" = $1 ;
	`

	return selectOne(ctx, q, &message.ReceivedAt, timestampQuery, message.ID)
}

func (messageDao) FindByID(
	ctx context.Context,
	q Queryer,
	id string,
) (*models.MessageEntity, error) {
	const query = `
		select *
		from "messages"
		where "id" = $1 ;
	`

	var message models.MessageEntity

	if err := selectOne(ctx, q, &message, query, id); err != nil {
		return nil, err
	}

	return &message, nil
}

func (messageDao) FindByMailbox(
	ctx context.Context,
	q Queryer,
	mailboxID int64,
) ([]models.MessageEntity, error) {
	const query = `
		select *
		from "messages"
		where "mailbox_id" = $1
		order by "received_at" desc, "id" asc ;
	`

	var messageSlice []models.MessageEntity

	if err := selectSlice(ctx, q, &messageSlice, query, mailboxID); err != nil {
		return nil, err
	}

	return messageSlice, nil
}
