package uow

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type fakeRepo struct {
	conn DBTX
}

type TransactionTestSuite struct {
	suite.Suite
}

func TestTransactionSuite(t *testing.T) {
	suite.Run(t, new(TransactionTestSuite))
}

func (s *TransactionTestSuite) TestGet() {
	calls := 0
	factories := map[RepositoryName]RepositoryFactory{
		"fake": func(dbtx DBTX) Repository {
			calls++
			return &fakeRepo{conn: dbtx}
		},
	}
	tx := NewTransaction(nil, factories)

	first, err := GetAs[*fakeRepo](tx, "fake")
	s.Require().NoError(err)
	second, err := GetAs[*fakeRepo](tx, "fake")
	s.Require().NoError(err)

	// в пределах одной транзакции фабрика вызывается один раз.
	s.Same(first, second)
	s.Equal(1, calls)

	_, err = tx.Get("missing")
	s.Require().ErrorIs(err, ErrRepositoryNotRegistered)

	_, err = GetAs[string](tx, "fake")
	s.Require().ErrorIs(err, ErrInvalidRepositoryType)
}

func (s *TransactionTestSuite) TestRegister() {
	u := NewUnitOfWork(nil)
	factory := func(dbtx DBTX) Repository { return &fakeRepo{conn: dbtx} }

	s.Require().NoError(u.Register("fake", factory))
	s.Require().ErrorIs(u.Register("fake", factory), ErrRepositoryAlreadyRegistered)

	_, err := GetRepositoryAs[*fakeRepo](u, "fake")
	s.Require().NoError(err)

	_, err = GetRepositoryAs[*fakeRepo](u, "missing")
	s.Require().ErrorIs(err, ErrRepositoryNotRegistered)
}
