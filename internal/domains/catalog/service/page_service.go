package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"recordlabel-backend/internal/domains/catalog/model"
	"recordlabel-backend/internal/shared/authz"
	"recordlabel-backend/internal/shared/utils"
)

func (s *catalogService) ListPages(ctx context.Context, actor *authz.Actor, labelID int64) ([]*model.Page, error) {
	pages, err := s.pages.ListByLabel(ctx, labelID)
	if err != nil {
		return nil, err
	}
	return model.VisibleListing(pages, s.now(), s.privileged(actor)), nil
}

func (s *catalogService) GetPage(ctx context.Context, actor *authz.Actor, slug string) (*model.Page, error) {
	page, err := s.pages.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if err := visible(s, actor, page, model.KindPage, slug); err != nil {
		return nil, err
	}
	return page, nil
}

func (s *catalogService) CreatePage(ctx context.Context, actor *authz.Actor, in model.PageInput) (*model.Page, error) {
	if err := s.requireManager(actor); err != nil {
		return nil, err
	}

	page := &model.Page{}
	in.Apply(page)
	page.Slug = utils.GenerateSlug(page.Name)

	if err := model.ValidatePage(ctx, page, s.lookup); err != nil {
		return nil, err
	}

	created, err := s.pages.Create(ctx, page)
	if err != nil {
		return nil, err
	}

	log.Info().Int64("page_id", created.ID).Str("slug", created.Slug).Str("actor", actorID(actor)).
		Msg("[CATALOG] Page created")
	return created, nil
}

func (s *catalogService) UpdatePage(ctx context.Context, actor *authz.Actor, id int64, in model.PageInput) (*model.Page, error) {
	page, err := s.pages.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.requireManager(actor); err != nil {
		return nil, err
	}

	in.Apply(page)
	page.Slug = utils.GenerateSlug(page.Name)

	if err := model.ValidatePage(ctx, page, s.lookup); err != nil {
		return nil, err
	}

	updated, err := s.pages.Update(ctx, page)
	if err != nil {
		return nil, err
	}

	log.Info().Int64("page_id", updated.ID).Str("actor", actorID(actor)).Msg("[CATALOG] Page updated")
	return updated, nil
}

func (s *catalogService) DeletePage(ctx context.Context, actor *authz.Actor, id int64) (*model.Page, error) {
	if _, err := s.pages.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.requireManager(actor); err != nil {
		return nil, err
	}

	deleted, err := s.pages.SoftDelete(ctx, id, s.now())
	if err != nil {
		return nil, err
	}

	log.Info().Int64("page_id", id).Str("actor", actorID(actor)).Msg("[CATALOG] Page deleted")
	return deleted, nil
}

func (s *catalogService) RestorePage(ctx context.Context, actor *authz.Actor, id int64) (*model.Page, error) {
	if _, err := s.pages.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.requireManager(actor); err != nil {
		return nil, err
	}

	restored, err := s.pages.Restore(ctx, id)
	if err != nil {
		return nil, err
	}

	log.Info().Int64("page_id", id).Str("actor", actorID(actor)).Msg("[CATALOG] Page restored")
	return restored, nil
}
