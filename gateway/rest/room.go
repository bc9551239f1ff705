package rest

import (
	"context"

	"github.com/pkg/errors"

	"github.com/feedaq/academy-go/core"
	"github.com/feedaq/academy-go/core/room"
)

type RoomRepository struct {
	client *Client
}

var _ room.Repository = (*RoomRepository)(nil)

func NewRoomRepository(client *Client) *RoomRepository {
	return &RoomRepository{client: client}
}

func (repo *RoomRepository) GetRoom(ctx context.Context, roomID int) (room.Room, error) {
	q := core.Query{
		Limit: 1,
		GetThisData: core.Spec{
			Datasource: "CourseRoom",
			Where:      core.Where{"courseRoomId": roomID},
			Include: []core.Include{
				{Datasource: "CourseRoomMember", As: "members"},
			},
		},
	}

	var rooms []room.Room
	if _, err := repo.client.search(ctx, "searchRecord", "/searchRecord", q, &rooms); err != nil {
		return room.Room{}, err
	}
	if len(rooms) == 0 {
		return room.Room{}, errors.New("course room not found")
	}
	return rooms[0], nil
}

func (repo *RoomRepository) QueryMembers(ctx context.Context, roomID int) ([]room.Member, error) {
	q := core.Query{
		Limit: 100,
		GetThisData: core.Spec{
			Datasource: "CourseRoomMember",
			Where:      core.Where{"courseRoomId": roomID},
			Order:      [][2]string{{"joinedAt", "ASC"}},
		},
	}
	var members []room.Member
	_, err := repo.client.search(ctx, "searchRecord", "/searchRecord", q, &members)
	return members, err
}

func (repo *RoomRepository) InviteMembers(ctx context.Context, roomID int, emails []string) error {
	body := map[string]interface{}{"courseRoomId": roomID, "emails": emails}
	return repo.client.post(ctx, "inviteToCourseRoom", "/inviteToCourseRoom", body, nil)
}

func (repo *RoomRepository) AcceptInvite(ctx context.Context, inviteID int) error {
	body := map[string]int{"inviteId": inviteID}
	return repo.client.post(ctx, "acceptInvite", "/course-access/acceptInvite", body, nil)
}

func (repo *RoomRepository) DeclineInvite(ctx context.Context, inviteID int) error {
	body := map[string]int{"inviteId": inviteID}
	return repo.client.post(ctx, "declineInvite", "/course-access/declineInvite", body, nil)
}
