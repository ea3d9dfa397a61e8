package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/pkg/uow"
)

type AccountService struct {
	uow          uow.UOW
	accountRepo  AccountRepository
	admins       ReviewerPool
	superAdminID int64
}

func NewAccountService(u uow.UOW, admins ReviewerPool, superAdminID int64) (*AccountService, error) {
	accountRepo, err := poolRepo[AccountRepository](u, repoargs.AccountRepoName)
	if err != nil {
		return nil, err
	}
	return &AccountService{
		uow:          u,
		accountRepo:  accountRepo,
		admins:       admins,
		superAdminID: superAdminID,
	}, nil
}

// EnsureAccount создает аккаунт при первом обращении пользователя.
func (s *AccountService) EnsureAccount(ctx context.Context, id int64, username *string) (*domain.Account, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("invalid account id %d", id)
	}
	if username != nil && strings.TrimSpace(*username) == "" {
		username = nil
	}
	account, err := s.accountRepo.Ensure(ctx, repoargs.EnsureAccount{ID: id, Username: username})
	if err != nil {
		return nil, fmt.Errorf("ensure account: %w", err)
	}
	return account, nil
}

// GetAccount ищет аккаунт, не создавая его.
func (s *AccountService) GetAccount(ctx context.Context, id int64) (*domain.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}
	return account, nil
}

func (s *AccountService) IsAdmin(ctx context.Context, id int64) (bool, error) {
	if id == s.superAdminID {
		return true, nil
	}
	return s.admins.IsReviewer(ctx, id) //nolint:wrapcheck
}

// IsBanned для неизвестного аккаунта возвращает false.
func (s *AccountService) IsBanned(ctx context.Context, id int64) (bool, error) {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("check ban: %w", err)
	}
	return account.IsBanned, nil
}

// SetBanned блокирует или разблокирует пользователя. Супер-админа заблокировать нельзя.
func (s *AccountService) SetBanned(ctx context.Context, actorID, id int64, banned bool) (*domain.Account, error) {
	if banned && (id == s.superAdminID || id == actorID) {
		return nil, fmt.Errorf("set banned: %w", domain.ErrProtectedAccount)
	}
	account, err := s.accountRepo.SetBanned(ctx, id, banned)
	if err != nil {
		return nil, fmt.Errorf("set banned: %w", err)
	}
	return account, nil
}

// SetAdmin выдает или снимает права администратора. Менять права может только супер-админ,
// самого супер-админа разжаловать нельзя.
func (s *AccountService) SetAdmin(ctx context.Context, actorID, id int64, admin bool) (*domain.Account, error) {
	if !admin && id == s.superAdminID {
		return nil, fmt.Errorf("set admin by %d: %w", actorID, domain.ErrProtectedAccount)
	}
	if actorID != s.superAdminID {
		return nil, fmt.Errorf("set admin by %d: %w", actorID, domain.ErrForbidden)
	}
	account, err := s.accountRepo.SetAdmin(ctx, id, admin)
	if err != nil {
		return nil, fmt.Errorf("set admin: %w", err)
	}
	return account, nil
}

// VerifyPhone сохраняет телефон, подтвержденный транспортом.
func (s *AccountService) VerifyPhone(ctx context.Context, id int64, phone string) (*domain.Account, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, domain.NewValidationError("phone is required")
	}
	account, err := s.accountRepo.SetVerifiedPhone(ctx, id, phone)
	if err != nil {
		return nil, fmt.Errorf("verify phone: %w", err)
	}
	return account, nil
}
