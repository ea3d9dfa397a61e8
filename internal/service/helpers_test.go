package service

import (
	"context"

	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/pkg/uow"
	uowmocks "github.com/fsdevblog/groph-market/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
)

// expectTx настраивает uow так, чтобы каждый Do выполнял функцию на переданном моке транзакции.
func expectTx(mockUOW *uowmocks.MockUOW, mockTX *uowmocks.MockTX) {
	mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, mockTX)
		}).AnyTimes()
}

// expectTxRepo регистрирует репозиторий в моке транзакции.
func expectTxRepo(mockTX *uowmocks.MockTX, name repoargs.RepositoryName, repo any) {
	mockTX.EXPECT().Get(uow.RepositoryName(name)).Return(repo, nil).AnyTimes()
}

func ptr[T any](v T) *T {
	return &v
}
