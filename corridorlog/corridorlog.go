// Package corridorlog provides the structured logger the core logs
// through (chain.Append, fork.Resolve and dispute.transition log a
// rejected operation before returning its error), mirroring the
// teacher's own logger.Sugar.Debugf call sites
// (massifs/massifcontext.go, massifs/massifcommitter.go) but built
// directly on go.uber.org/zap rather than a private wrapper package,
// since go-datatrails-common/logger itself is not a dependency this
// module can take.
package corridorlog

import "go.uber.org/zap"

// Sugar is the package-level sugared logger every core package logs
// through. It defaults to a production zap logger; callers that want
// development-mode (human-readable, colorized) output call
// UseDevelopment before any logging happens.
var Sugar = mustSugar(zap.NewProduction())

// UseDevelopment swaps Sugar for a development-mode logger (console
// encoding, debug level, stack traces on warn+). Intended for use in
// test and CLI entry points, not under concurrent logging load.
func UseDevelopment() {
	Sugar = mustSugar(zap.NewDevelopment())
}

// UseNop swaps Sugar for a no-op logger, matching zap's own
// convention for silencing output in unit tests that exercise error
// paths without caring about log noise.
func UseNop() {
	Sugar = zap.NewNop().Sugar()
}

func mustSugar(l *zap.Logger, err error) *zap.SugaredLogger {
	if err != nil {
		// zap.NewProduction only errors on a broken encoder config,
		// which is a build-time defect, not a runtime condition.
		panic(err)
	}
	return l.Sugar()
}

// Sync flushes any buffered log entries. Call during graceful
// shutdown at the transport boundary; errors from Sync on stderr/stdout
// sinks are expected on some platforms and safely ignored.
func Sync() {
	_ = Sugar.Sync()
}
