//go:build ruleguard

package gorules

import (
	"github.com/quasilyte/go-ruleguard/dsl"
)

func usecaseNoWallClock(m dsl.Matcher) {
	m.Match(`time.Now()`).
		Where(m.File().PkgPath.Matches(`internal/usecases`) && !m.File().Name.Matches(`_test\.go$`)).
		Report("usecases must take the time from the date provider")
}

func repoNoLocalTime(m dsl.Matcher) {
	m.Match(`$t.Local()`).
		Where(m.File().PkgPath.Matches(`internal/repositories`) && m["t"].Type.Is(`time.Time`)).
		Report("repositories store and return UTC time")
}
