//go:build integration

package testingh

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/zestagio/timeline/internal/store"
)

type DBSuite struct {
	ContextSuite

	DBPrefix string
	Database *store.Database
	cleanUp  func(ctx context.Context)
}

func NewDBSuite(dbPrefix string) DBSuite {
	return DBSuite{DBPrefix: strings.ToLower(dbPrefix)}
}

func (ds *DBSuite) SetupSuite() {
	ds.ContextSuite.SetupSuite()

	db := ds.DBPrefix + strings.ReplaceAll(uuid.New().String(), "-", "")
	ds.T().Logf("database: %s", db)

	ds.Database, ds.cleanUp = PrepareDB(ds.SuiteCtx, ds.T(), db)
}

func (ds *DBSuite) TearDownSuite() {
	if f := ds.cleanUp; f != nil {
		f(ds.SuiteCtx)
	}
	ds.ContextSuite.TearDownSuite()
}
