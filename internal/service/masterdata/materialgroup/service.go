package materialgroup

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/listctl"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
	"github.com/syazwan-nazri/AD-XPDC-sub000/platform/logger"
)

func Schema() listctl.Schema[model.MaterialGroup] {
	return listctl.Schema[model.MaterialGroup]{
		Resource: model.ResourcePartGroupMaster,
		ID:       func(g model.MaterialGroup) string { return g.ID },
		Normalize: func(g model.MaterialGroup) model.MaterialGroup {
			g.GroupID = listctl.NormalizeCode(g.GroupID)
			g.Name = strings.TrimSpace(g.Name)
			g.Description = strings.TrimSpace(g.Description)
			return g
		},
		Validate: func(g model.MaterialGroup) error {
			if !listctl.IsGroupCode(g.GroupID) {
				return listctl.Invalid("group id must be exactly 4 letters, got %q", g.GroupID)
			}
			return listctl.Required("material group", g.Name)
		},
		Keys: []listctl.Key[model.MaterialGroup]{
			{Name: "group id", Value: func(g model.MaterialGroup) string { return g.GroupID }},
			{Name: "material group", Value: func(g model.MaterialGroup) string { return g.Name }},
		},
		Searchable: func(g model.MaterialGroup) []string {
			return []string{g.Name, g.GroupID, g.Description}
		},
		Fields: func(g model.MaterialGroup) model.Fields {
			return model.Fields{
				"groupId":       g.GroupID,
				"materialGroup": g.Name,
				"description":   g.Description,
			}
		},
		Stamp: func(g model.MaterialGroup, now time.Time) model.MaterialGroup {
			g.CreatedAt, g.UpdatedAt = now, now
			return g
		},
	}
}

type service struct {
	groups *listctl.Controller[model.MaterialGroup]
	parts  *listctl.Controller[model.Part]
}

func NewMaterialGroupService(
	groups *listctl.Controller[model.MaterialGroup],
	parts *listctl.Controller[model.Part],
) *service {
	return &service{groups: groups, parts: parts}
}

func (s *service) List(ctx context.Context, query string, start int) (model.Page[model.MaterialGroup], error) {
	return s.groups.Browse(ctx, query, start)
}

func (s *service) Get(ctx context.Context, id string) (model.MaterialGroup, error) {
	return s.groups.Lookup(ctx, id)
}

func (s *service) Items(ctx context.Context) ([]model.MaterialGroup, error) {
	return s.groups.Items(ctx)
}

func (s *service) Create(ctx context.Context, auth model.AuthorizationContext, g model.MaterialGroup) (string, error) {
	const op = "materialgroup.service.Create"

	g.ID = ""
	id, err := s.groups.Create(ctx, auth, g)
	if err != nil {
		logger.Error(ctx, "create material group", logger.String("group_id", g.GroupID), logger.ErrorF(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

func (s *service) Update(ctx context.Context, auth model.AuthorizationContext, id string, g model.MaterialGroup) error {
	const op = "materialgroup.service.Update"

	if err := s.groups.Update(ctx, auth, id, g); err != nil {
		logger.Error(ctx, "update material group", logger.String("id", id), logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Delete unassigns every part of the group, one write per part, then
// deletes the group. The steps are not atomic: if an unassign fails the
// parts handled so far stay unassigned and the group is kept.
func (s *service) Delete(ctx context.Context, auth model.AuthorizationContext, id string) error {
	const op = "materialgroup.service.Delete"
	log := logger.With(logger.String("id", id))

	if !auth.CanDelete(model.ResourcePartGroupMaster) {
		return fmt.Errorf("%s: %w", op, model.ErrPermissionDenied)
	}

	if _, err := s.groups.Lookup(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	parts, err := s.parts.Items(ctx)
	if err != nil {
		log.Error(ctx, "load parts", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	unassigned := 0
	for _, p := range parts {
		if p.MaterialGroupID != id {
			continue
		}
		if err := s.parts.Patch(ctx, p.ID, model.Fields{model.PartFieldMaterialGroupID: ""}); err != nil {
			log.Error(ctx, "unassign part",
				logger.String("part_id", p.ID),
				logger.Int("unassigned", unassigned),
				logger.ErrorF(err),
			)
			return fmt.Errorf("%s: unassign part %s: %w", op, p.ID, err)
		}
		unassigned++
	}

	if err := s.groups.Delete(ctx, auth, id); err != nil {
		log.Error(ctx, "delete material group", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.parts.Refresh(ctx); err != nil {
		log.Warn(ctx, "parts mirror left stale", logger.ErrorF(err))
	}

	log.Info(ctx, "material group deleted", logger.Int("unassigned_parts", unassigned))
	return nil
}

// PendingParts lists parts with no material group matching query over
// name, SAP number and internal reference.
func (s *service) PendingParts(ctx context.Context, query string) ([]model.Part, error) {
	parts, err := s.parts.Items(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]model.Part, 0)
	for _, p := range parts {
		if !p.Pending() {
			continue
		}
		hay := strings.ToLower(p.Name + " " + p.SAPNumber + " " + p.InternalRef)
		if q == "" || strings.Contains(hay, q) {
			out = append(out, p)
		}
	}
	return out, nil
}

// AssignParts moves parts into a group, one write per part. It stops at
// the first failed write.
func (s *service) AssignParts(ctx context.Context, auth model.AuthorizationContext, groupID string, partIDs []string) error {
	const op = "materialgroup.service.AssignParts"
	log := logger.With(logger.String("group_id", groupID))

	if !auth.CanEdit(model.ResourcePartGroupMaster) {
		return fmt.Errorf("%s: %w", op, model.ErrPermissionDenied)
	}
	if len(partIDs) == 0 {
		return fmt.Errorf("%s: %w", op, listctl.Invalid("no parts selected"))
	}

	if _, err := s.groups.Lookup(ctx, groupID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for _, pid := range partIDs {
		if _, err := s.parts.Lookup(ctx, pid); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if err := s.parts.Patch(ctx, pid, model.Fields{model.PartFieldMaterialGroupID: groupID}); err != nil {
			log.Error(ctx, "assign part", logger.String("part_id", pid), logger.ErrorF(err))
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := s.parts.Refresh(ctx); err != nil {
		log.Warn(ctx, "parts mirror left stale", logger.ErrorF(err))
	}
	return nil
}
