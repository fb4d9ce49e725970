package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"recordlabel-backend/internal/domains/catalog/model"
	"recordlabel-backend/internal/shared/authz"
	"recordlabel-backend/internal/shared/utils"
)

// GetLabel returns the site's label (the first one created).
func (s *catalogService) GetLabel(ctx context.Context) (*model.RecordLabel, error) {
	return s.labels.GetFirst(ctx)
}

func (s *catalogService) GetLabelBySlug(ctx context.Context, slug string) (*model.RecordLabel, error) {
	slug = strings.TrimSpace(strings.ToLower(slug))
	if slug == "" {
		return nil, model.NewNotFound(model.KindLabel, slug)
	}
	return s.labels.GetBySlug(ctx, slug)
}

func (s *catalogService) CreateLabel(ctx context.Context, actor *authz.Actor, in model.LabelInput) (*model.RecordLabel, error) {
	if err := s.requireManager(actor); err != nil {
		return nil, err
	}

	label := &model.RecordLabel{}
	in.Apply(label)
	label.Slug = utils.GenerateSlug(label.Name)

	if err := model.ValidateLabel(ctx, label, s.lookup); err != nil {
		return nil, err
	}

	created, err := s.labels.Create(ctx, label)
	if err != nil {
		return nil, err
	}

	log.Info().Int64("label_id", created.ID).Str("slug", created.Slug).Str("actor", actorID(actor)).
		Msg("[CATALOG] Record label created")
	return created, nil
}

func (s *catalogService) UpdateLabel(ctx context.Context, actor *authz.Actor, id int64, in model.LabelInput) (*model.RecordLabel, error) {
	label, err := s.labels.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.requireManager(actor); err != nil {
		return nil, err
	}

	in.Apply(label)
	label.Slug = utils.GenerateSlug(label.Name)

	if err := model.ValidateLabel(ctx, label, s.lookup); err != nil {
		return nil, err
	}

	updated, err := s.labels.Update(ctx, label)
	if err != nil {
		return nil, err
	}

	log.Info().Int64("label_id", updated.ID).Str("actor", actorID(actor)).Msg("[CATALOG] Record label updated")
	return updated, nil
}
