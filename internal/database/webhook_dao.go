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

// WebhookDao is a data access object for all webhook related queries. Webhook
// registration is owned by an external system, the ingestion pipeline only
// reads the configuration.
type WebhookDao interface {
	// Insert inserts a new webhook configuration.
	Insert(context.Context, Queryer, *models.WebhookEntity) error
	// FindByUserID returns the webhook configuration of a user.
	FindByUserID(context.Context, Queryer, string) (*models.WebhookEntity, error)
}

// webhookDao is the sqlite implementation of WebhookDao.
type webhookDao struct{}

// NewWebhookDao creates a new WebhookDao.
func NewWebhookDao() WebhookDao {
	return webhookDao{}
}

func (webhookDao) Insert(ctx context.Context, q Queryer, webhook *models.WebhookEntity) error {
	const query = `
		insert into "webhooks" (
			"user_id" ,
			"url" ,
			"enabled"
		) values (
			:user_id ,
			:url ,
			:enabled
		) ;
	`

	result, err := execNamed(ctx, q, query, webhook)
	if err != nil {
		return err
	}

	return ensureRowsAffected(result)
}

func (webhookDao) FindByUserID(
	ctx context.Context,
	q Queryer,
	userID string,
) (*models.WebhookEntity, error) {
	const query = `
		select *
		from "webhooks"
		where "user_id" = $1
		limit 1 ;
	`

	var webhook models.WebhookEntity

	if err := selectOne(ctx, q, &webhook, query, userID); err != nil {
		return nil, err
	}

	return &webhook, nil
}
