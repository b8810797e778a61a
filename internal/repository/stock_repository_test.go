package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return gormDB, mock
}

func emptyStockRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "symbol", "company_name", "purchase", "last_div", "industry", "market_cap"})
}

func TestStockRepository_List_FiltersSortAndPaginate(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := NewStockRepository(gormDB)

	mock.ExpectQuery("SELECT \\* FROM `stocks` WHERE symbol LIKE \\? AND company_name LIKE \\? ORDER BY company_name DESC LIMIT \\? OFFSET \\?").
		WithArgs("%AA%", "%App%", 10, 20).
		WillReturnRows(emptyStockRows().
			AddRow(3, "AAPL", "Apple Inc.", "189.30", "0.96", "Consumer Electronics", int64(2940000000000)))
	mock.ExpectQuery("SELECT \\* FROM `comments`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content", "stock_id", "user_id"}))

	stocks, err := repo.List(context.Background(), StockQuery{
		Symbol:      "AA",
		CompanyName: "App",
		SortBy:      "companyName",
		Descending:  true,
		PageNumber:  3,
		PageSize:    10,
	})

	assert.NoError(t, err)
	assert.Len(t, stocks, 1)
	assert.Equal(t, "AAPL", stocks[0].Symbol)
	assert.Equal(t, "189.3", stocks[0].Purchase.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStockRepository_List_SortKeyIsCaseInsensitive(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := NewStockRepository(gormDB)

	// "SYMBOL" must still sort by symbol, ascending without the flag.
	mock.ExpectQuery("^SELECT \\* FROM `stocks` ORDER BY symbol LIMIT \\?$").
		WithArgs(20).
		WillReturnRows(emptyStockRows())

	_, err := repo.List(context.Background(), StockQuery{
		SortBy:     "SYMBOL",
		PageNumber: 1,
		PageSize:   20,
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStockRepository_List_UnknownSortKeyLeavesOrderUnspecified(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := NewStockRepository(gormDB)

	mock.ExpectQuery("^SELECT \\* FROM `stocks` LIMIT \\?$").
		WithArgs(20).
		WillReturnRows(emptyStockRows())

	_, err := repo.List(context.Background(), StockQuery{
		SortBy:     "marketCap",
		PageNumber: 1,
		PageSize:   20,
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStockRepository_List_OffsetPastEndReturnsEmpty(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := NewStockRepository(gormDB)

	// Page 5 of size 20 skips the first 80 rows of the filtered sequence.
	mock.ExpectQuery("SELECT \\* FROM `stocks` LIMIT \\? OFFSET \\?").
		WithArgs(20, 80).
		WillReturnRows(emptyStockRows())

	stocks, err := repo.List(context.Background(), StockQuery{
		PageNumber: 5,
		PageSize:   20,
	})

	assert.NoError(t, err)
	assert.Empty(t, stocks)
	assert.NoError(t, mock.ExpectationsWereMet())
}
