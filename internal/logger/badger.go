package logger

import (
	"strings"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
)

var _ badger.Logger = (*BadgerAdapted)(nil)

// BadgerAdapted routes badger internals to zap. Badger terminates its lines with "\n".
type BadgerAdapted struct {
	s *zap.SugaredLogger
}

func NewBadgerAdapted(name string) *BadgerAdapted {
	return &BadgerAdapted{s: zap.L().Named(name).Sugar()}
}

func (b *BadgerAdapted) Errorf(f string, args ...any) {
	b.s.Errorf(strings.TrimSuffix(f, "\n"), args...)
}

func (b *BadgerAdapted) Warningf(f string, args ...any) {
	b.s.Warnf(strings.TrimSuffix(f, "\n"), args...)
}

func (b *BadgerAdapted) Infof(f string, args ...any) {
	b.s.Debugf(strings.TrimSuffix(f, "\n"), args...)
}

func (b *BadgerAdapted) Debugf(f string, args ...any) {
	b.s.Debugf(strings.TrimSuffix(f, "\n"), args...)
}
