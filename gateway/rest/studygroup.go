package rest

import (
	"context"

	"github.com/feedaq/academy-go/core"
	"github.com/feedaq/academy-go/core/studygroup"
)

type StudyGroupRepository struct {
	client *Client
}

var _ studygroup.Repository = (*StudyGroupRepository)(nil)

func NewStudyGroupRepository(client *Client) *StudyGroupRepository {
	return &StudyGroupRepository{client: client}
}

func (repo *StudyGroupRepository) SearchGroups(ctx context.Context, q core.Query) ([]studygroup.StudyGroup, core.ListEnvelope, error) {
	var groups []studygroup.StudyGroup
	env, err := repo.client.search(ctx, "searchRecord", "/searchRecord", q, &groups)
	return groups, env, err
}

func (repo *StudyGroupRepository) GetGroup(ctx context.Context, id int) (studygroup.StudyGroup, error) {
	q := core.Query{
		Limit: 1,
		GetThisData: core.Spec{
			Datasource: "StudyGroup",
			Where:      core.Where{"studyGroupId": id},
			Include: []core.Include{
				{Datasource: "StudyGroupMember", As: "members"},
				{Datasource: "StudyGroupContent", As: "content"},
			},
		},
	}

	var groups []studygroup.StudyGroup
	if _, err := repo.client.search(ctx, "searchRecord", "/searchRecord", q, &groups); err != nil {
		return studygroup.StudyGroup{}, err
	}
	if len(groups) == 0 {
		return studygroup.StudyGroup{}, studygroup.ErrNotFound
	}
	return groups[0], nil
}

func (repo *StudyGroupRepository) SaveGroup(ctx context.Context, g studygroup.NewGroup) (studygroup.StudyGroup, error) {
	var saved studygroup.StudyGroup
	err := repo.client.post(ctx, "saveStudyGroup", "/course-study-group/save", g, &saved)
	return saved, err
}

func (repo *StudyGroupRepository) DeleteGroup(ctx context.Context, id int) error {
	body := map[string]int{"studyGroupId": id}
	return repo.client.post(ctx, "deleteStudyGroup", "/course-study-group/delete", body, nil)
}

func (repo *StudyGroupRepository) AddContent(ctx context.Context, groupID int, c studygroup.Content) error {
	body := map[string]interface{}{"studyGroupId": groupID, "content": c}
	return repo.client.post(ctx, "addStudyGroupContent", "/course-study-group/addContent", body, nil)
}

func (repo *StudyGroupRepository) RemoveContent(ctx context.Context, groupID, contentID int) error {
	body := map[string]int{"studyGroupId": groupID, "studyGroupContentId": contentID}
	return repo.client.post(ctx, "removeStudyGroupContent", "/course-study-group/removeContent", body, nil)
}

func (repo *StudyGroupRepository) InviteMembers(ctx context.Context, groupID int, emails []string) error {
	body := map[string]interface{}{"studyGroupId": groupID, "emails": emails}
	return repo.client.post(ctx, "inviteStudyGroupMembers", "/course-study-group/invite", body, nil)
}

func (repo *StudyGroupRepository) RemoveMember(ctx context.Context, groupID, userID int) error {
	body := map[string]int{"studyGroupId": groupID, "userId": userID}
	return repo.client.post(ctx, "removeStudyGroupMember", "/course-study-group/removeMember", body, nil)
}

func (repo *StudyGroupRepository) LeaveGroup(ctx context.Context, groupID int) error {
	body := map[string]int{"studyGroupId": groupID}
	return repo.client.post(ctx, "leaveStudyGroup", "/course-study-group/leave", body, nil)
}
