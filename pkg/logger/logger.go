package logger

import (
	"go.uber.org/zap"
)

// Log is a no-op until Init runs so packages can log unconditionally.
var Log = zap.NewNop().Sugar()

func Init(development bool) error {
	var (
		l   *zap.Logger
		err error
	)
	if development {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}
	Log = l.Sugar()
	return nil
}

// Sync flushes buffered entries; call it before exit.
func Sync() {
	_ = Log.Sync()
}
