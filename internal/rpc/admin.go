package rpc

import (
	"context"
	"errors"

	"github.com/daniilsolovey/newsroom/internal/newsportal"
	"github.com/vmkteam/zenrpc/v2"
)

//go:generate zenrpc

// AdminService provides RPC methods for the news admin.
type AdminService struct {
	zenrpc.Service
	manager *newsportal.Manager
}

func NewAdminService(manager *newsportal.Manager) *AdminService {
	return &AdminService{manager: manager}
}

// managerError converts manager errors to rpc errors with matching codes.
func managerError(err error) error {
	switch {
	case errors.Is(err, newsportal.ErrNotFound):
		return zenrpc.NewStringError(404, err.Error())
	case errors.Is(err, newsportal.ErrInvalidInput):
		return zenrpc.NewStringError(400, err.Error())
	}
	return err
}

// Models returns registered admin models in registration order.
//
//zenrpc:return list of models
func (s *AdminService) Models() []Model {
	return mapList(s.manager.Models(), NewModel)
}

// ChangeList returns one page of model rows rendered with its list display.
//
//zenrpc:model model name
//zenrpc:filter search, filters, date drill-down and pagination
//zenrpc:return change list page
//zenrpc:400 invalid filter
//zenrpc:404 model not found
//zenrpc:500 internal server error
func (s *AdminService) ChangeList(ctx context.Context, model string, filter ChangeListFilter) (*ChangeList, error) {
	cl, err := s.manager.ChangeList(ctx, model, filter.ToQuery())
	if err != nil {
		return nil, managerError(err)
	}

	list := NewChangeList(*cl)
	return &list, nil
}

// Article returns the article change form with the tag inline.
//
//zenrpc:id article numeric ID
//zenrpc:return article change form
//zenrpc:400 id must be positive
//zenrpc:404 article not found
//zenrpc:500 internal server error
func (s *AdminService) Article(ctx context.Context, id int) (*ArticleForm, error) {
	if id <= 0 {
		return nil, zenrpc.NewStringError(400, "id must be positive")
	}

	form, err := s.manager.Article(ctx, id)
	if err != nil {
		return nil, managerError(err)
	}

	f := NewArticleForm(*form)
	return &f, nil
}

// AttachTag attaches a tag to an article. Attaching twice is a no-op.
//
//zenrpc:req article and tag IDs
//zenrpc:return true on success
//zenrpc:400 invalid IDs
//zenrpc:404 article or tag not found
//zenrpc:500 internal server error
func (s *AdminService) AttachTag(ctx context.Context, req ArticleTagRequest) (bool, error) {
	if err := s.manager.AttachTag(ctx, req.ArticleID, req.TagID); err != nil {
		return false, managerError(err)
	}
	return true, nil
}

// DetachTag removes a tag from an article.
//
//zenrpc:req article and tag IDs
//zenrpc:return true on success
//zenrpc:400 invalid IDs
//zenrpc:404 article not found
//zenrpc:500 internal server error
func (s *AdminService) DetachTag(ctx context.Context, req ArticleTagRequest) (bool, error) {
	if err := s.manager.DetachTag(ctx, req.ArticleID, req.TagID); err != nil {
		return false, managerError(err)
	}
	return true, nil
}
