package testingh

import (
	"context"
	"time"

	"github.com/stretchr/testify/suite"
)

const defaultTestTimeout = 10 * time.Second

// ContextSuite gives every test a context bound to the suite lifetime and to TestTimeout.
type ContextSuite struct {
	suite.Suite

	TestTimeout time.Duration

	Ctx       context.Context
	ctxCancel context.CancelFunc

	SuiteCtx       context.Context
	suiteCtxCancel context.CancelFunc
}

func (cs *ContextSuite) SetupSuite() {
	cs.SuiteCtx, cs.suiteCtxCancel = context.WithCancel(context.Background())
}

func (cs *ContextSuite) TearDownSuite() {
	cs.suiteCtxCancel()
}

func (cs *ContextSuite) SetupTest() {
	timeout := cs.TestTimeout
	if timeout == 0 {
		timeout = defaultTestTimeout
	}
	cs.Ctx, cs.ctxCancel = context.WithTimeout(cs.SuiteCtx, timeout)
}

func (cs *ContextSuite) TearDownTest() {
	cs.ctxCancel()
}
