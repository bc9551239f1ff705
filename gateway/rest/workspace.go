package rest

import (
	"context"

	"github.com/feedaq/academy-go/core"
	"github.com/feedaq/academy-go/core/workspace"
)

type WorkspaceRepository struct {
	client *Client
}

var _ workspace.Repository = (*WorkspaceRepository)(nil)

func NewWorkspaceRepository(client *Client) *WorkspaceRepository {
	return &WorkspaceRepository{client: client}
}

func (repo *WorkspaceRepository) SearchRecords(ctx context.Context, q core.Query, results interface{}) (core.ListEnvelope, error) {
	return repo.client.search(ctx, "searchRecord", "/searchRecord", q, results)
}

func (repo *WorkspaceRepository) SaveTeam(ctx context.Context, t workspace.Team) (workspace.Team, error) {
	var saved workspace.Team
	err := repo.client.post(ctx, "createEditTeam", "/createEditTeam", t, &saved)
	return saved, err
}

func (repo *WorkspaceRepository) SaveTag(ctx context.Context, t workspace.Tag) (workspace.Tag, error) {
	var saved workspace.Tag
	err := repo.client.post(ctx, "createEditTags", "/createEditTags", t, &saved)
	return saved, err
}

func (repo *WorkspaceRepository) SavePortal(ctx context.Context, p workspace.Portal) (workspace.Portal, error) {
	var saved workspace.Portal
	err := repo.client.post(ctx, "createEditPortal", "/createEditPortal", p, &saved)
	return saved, err
}

func (repo *WorkspaceRepository) SaveStatusFlow(ctx context.Context, f workspace.StatusFlow) (workspace.StatusFlow, error) {
	var saved workspace.StatusFlow
	err := repo.client.post(ctx, "createEditStatusFlow", "/createEditStatusFlow", f, &saved)
	return saved, err
}
