// Package store is the persistence gateway: four independent collections,
// one local SQLite file per store, loaded and saved wholesale.
package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "github.com/uptrace/bun/driver/sqliteshim"

	"gp-ticketing/internal/errs"
	"gp-ticketing/internal/models"
)

const (
	UserFile     = "users.db"
	OrderFile    = "orders.db"
	DiscountFile = "discounts.db"
	SalesFile    = "sales.db"
)

// salesRow is the persisted shape of one sales-log entry.
type salesRow struct {
	bun.BaseModel `bun:"table:sales"`

	Day   string `bun:"day,pk"`
	Count int    `bun:"count,notnull"`
}

// Store owns one bun handle per backing file. A missing file is created
// empty on open, so loading from a fresh location never fails.
type Store struct {
	Users     *bun.DB
	Orders    *bun.DB
	Discounts *bun.DB
	Sales     *bun.DB
}

// Open prepares the four store files under dataDir, creating the directory
// and any missing tables.
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, errs.Wrap(err, "create data directory")
	}

	s := &Store{}
	ctx := context.Background()

	for _, f := range []struct {
		file  string
		db    **bun.DB
		model any
	}{
		{UserFile, &s.Users, (*models.User)(nil)},
		{OrderFile, &s.Orders, (*models.PurchaseOrder)(nil)},
		{DiscountFile, &s.Discounts, (*models.Discount)(nil)},
		{SalesFile, &s.Sales, (*salesRow)(nil)},
	} {
		sqldb, err := sql.Open("sqlite", filepath.Join(dataDir, f.file))
		if err != nil {
			s.Close()
			return nil, errs.Wrap(err, "open "+f.file)
		}
		bunDB := bun.NewDB(sqldb, sqlitedialect.New())
		if _, err := bunDB.NewCreateTable().Model(f.model).IfNotExists().Exec(ctx); err != nil {
			bunDB.Close()
			s.Close()
			return nil, errs.Wrap(err, "prepare "+f.file)
		}
		*f.db = bunDB
	}

	return s, nil
}

func (s *Store) Close() {
	for _, db := range []*bun.DB{s.Users, s.Orders, s.Discounts, s.Sales} {
		if db != nil {
			db.Close()
		}
	}
}

// replaceAll swaps the entire content of one store inside a transaction.
// rows is a pointer to the slice of bun models to insert; with count 0 the
// store is only cleared.
func replaceAll(ctx context.Context, db *bun.DB, table any, rows any, count int) error {
	return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().Model(table).Where("1 = 1").Exec(ctx); err != nil {
			return err
		}
		if count == 0 {
			return nil
		}
		_, err := tx.NewInsert().Model(rows).Exec(ctx)
		return err
	})
}
