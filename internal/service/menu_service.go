package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/nikolayk812/canteen/internal/domain"
	"github.com/nikolayk812/canteen/internal/port"
	"github.com/nikolayk812/canteen/internal/repository"
	"golang.org/x/text/currency"
)

const msgMenuItemNotFound = "Menu item not found"

type MenuService struct {
	menu     port.MenuRepository
	currency currency.Unit
	lgr      *slog.Logger
}

// NewMenuService prices new items in defaultCurrency when the caller does not pick one.
func NewMenuService(menu port.MenuRepository, defaultCurrency currency.Unit, lgr *slog.Logger) (*MenuService, error) {
	if menu == nil {
		return nil, errors.New("menu is nil")
	}
	if lgr == nil {
		lgr = slog.Default()
	}

	return &MenuService{
		menu:     menu,
		currency: defaultCurrency,
		lgr:      lgr.With("component", "MenuService"),
	}, nil
}

func (s *MenuService) ListMenu(ctx context.Context, filter domain.MenuFilter) ([]domain.MenuItem, error) {
	items, err := s.menu.ListMenuItems(ctx, filter)
	if err != nil {
		return nil, classify(ctx, s.lgr, "list menu", err)
	}
	return items, nil
}

func (s *MenuService) GetMenuItem(ctx context.Context, id int64) (domain.MenuItem, error) {
	item, err := s.menu.GetMenuItem(ctx, id)
	if err != nil {
		return domain.MenuItem{}, s.translate(ctx, "get menu item", err)
	}
	return item, nil
}

func (s *MenuService) AddMenuItem(ctx context.Context, principal domain.Principal, item domain.MenuItem) (domain.MenuItem, error) {
	if err := requireStaff(principal); err != nil {
		return domain.MenuItem{}, err
	}

	if item.Price.Currency == (currency.Unit{}) {
		item.Price.Currency = s.currency
	}

	if err := item.Validate(); err != nil {
		return domain.MenuItem{}, err
	}

	id, err := s.menu.InsertMenuItem(ctx, item)
	if err != nil {
		return domain.MenuItem{}, classify(ctx, s.lgr, "add menu item", err)
	}

	s.lgr.InfoContext(ctx, "menu item added", "item_id", id, "by", principal.ID)

	return s.GetMenuItem(ctx, id)
}

func (s *MenuService) UpdateMenuItem(ctx context.Context, principal domain.Principal, id int64, update domain.MenuItemUpdate) (domain.MenuItem, error) {
	if err := requireStaff(principal); err != nil {
		return domain.MenuItem{}, err
	}

	if err := update.Validate(); err != nil {
		return domain.MenuItem{}, err
	}

	if err := s.menu.UpdateMenuItem(ctx, id, update); err != nil {
		return domain.MenuItem{}, s.translate(ctx, "update menu item", err)
	}

	s.lgr.InfoContext(ctx, "menu item updated", "item_id", id, "by", principal.ID)

	return s.GetMenuItem(ctx, id)
}

func (s *MenuService) DeleteMenuItem(ctx context.Context, principal domain.Principal, id int64) error {
	if err := requireStaff(principal); err != nil {
		return err
	}

	if err := s.menu.DeleteMenuItem(ctx, id); err != nil {
		return s.translate(ctx, "delete menu item", err)
	}

	s.lgr.InfoContext(ctx, "menu item deleted", "item_id", id, "by", principal.ID)
	return nil
}

func (s *MenuService) translate(ctx context.Context, op string, err error) error {
	if errors.Is(err, repository.ErrMenuItemNotFound) {
		return &domain.NotFoundError{Message: msgMenuItemNotFound}
	}
	return classify(ctx, s.lgr, op, err)
}
