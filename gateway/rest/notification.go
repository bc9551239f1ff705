package rest

import (
	"context"

	"github.com/feedaq/academy-go/core"
	"github.com/feedaq/academy-go/core/notification"
)

type NotificationRepository struct {
	client *Client
}

var _ notification.Repository = (*NotificationRepository)(nil)

func NewNotificationRepository(client *Client) *NotificationRepository {
	return &NotificationRepository{client: client}
}

func (repo *NotificationRepository) QueryNotifications(ctx context.Context, userID int, includeArchived bool, page core.Page) ([]notification.Notification, core.ListEnvelope, error) {
	body := map[string]interface{}{
		"userId":          userID,
		"includeArchived": includeArchived,
		"limit":           page.Limit,
		"offset":          page.Offset,
	}

	var env core.ListEnvelope
	if err := repo.client.post(ctx, "getNotifications", "/notifications/getNotifications", body, &env); err != nil {
		return nil, core.ListEnvelope{}, err
	}

	var items []notification.Notification
	if len(env.Results) > 0 {
		if err := decodeResults(env.Results, &items); err != nil {
			return nil, core.ListEnvelope{}, core.NewAPIError("getNotifications", 0, "", "", err)
		}
	}
	return items, env, nil
}

func (repo *NotificationRepository) ArchiveNotifications(ctx context.Context, ids []int) error {
	body := map[string]interface{}{"notificationIds": ids}
	return repo.client.post(ctx, "archiveNotifications", "/notifications/archiveNotifications", body, nil)
}

func (repo *NotificationRepository) RespondToInvite(ctx context.Context, inviteID int, accept bool) error {
	path := "/course-access/declineInvite"
	op := "declineInvite"
	if accept {
		path = "/course-access/acceptInvite"
		op = "acceptInvite"
	}
	body := map[string]int{"inviteId": inviteID}
	return repo.client.post(ctx, op, path, body, nil)
}
