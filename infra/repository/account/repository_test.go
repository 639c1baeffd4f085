package account_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	accountrepo "github.com/openbank/ledger/infra/repository/account"
	"github.com/openbank/ledger/pkg/currency"
	accountdomain "github.com/openbank/ledger/pkg/domain/account"
	repo "github.com/openbank/ledger/pkg/repository/account"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockRepo(t *testing.T) (repo.Repository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return accountrepo.New(db), mock
}

func accountRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "currency", "money", "treasury"})
}

func TestFindByName_ReturnsAccount(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE name = .+`).
		WillReturnRows(accountRows().AddRow(1, "Test Account", "EUR", "100.50", false))

	a, err := r.FindByName(context.Background(), "Test Account")
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, uint(1), a.ID)
	assert.Equal(t, "Test Account", a.Name)
	assert.Equal(t, currency.EUR, a.Currency)
	assert.True(t, a.Balance.Equal(decimal.RequireFromString("100.50")))
	assert.False(t, a.Treasury)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByName_AbsenceIsNotAnError(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE name = .+`).
		WillReturnRows(accountRows())

	a, err := r.FindByName(context.Background(), "Non existing account")
	require.NoError(t, err)
	assert.Nil(t, a)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSave_InsertsWhenIDIsZero(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO "accounts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	saved, err := r.Save(context.Background(), accountdomain.New("Test Account", currency.EUR, false))
	require.NoError(t, err)
	assert.Equal(t, uint(7), saved.ID)
	assert.True(t, saved.Balance.IsZero())

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSave_UpdatesWhenIDIsSet(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE "accounts" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	a := &accountdomain.Account{
		ID:       3,
		Name:     "Test Account",
		Currency: currency.EUR,
		Balance:  decimal.NewFromInt(80),
		Treasury: false,
	}
	saved, err := r.Save(context.Background(), a)
	require.NoError(t, err)
	assert.Equal(t, uint(3), saved.ID)
	assert.True(t, saved.Balance.Equal(decimal.NewFromInt(80)))

	require.NoError(t, mock.ExpectationsWereMet())
}
