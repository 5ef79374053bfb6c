package logger

import (
	"bytes"
	"io"
)

type testingTB interface {
	Helper()
	Cleanup(func())
}

// Stub the logger.Default and return the buffer where the logging output will be recorded.
// Stub will restore the logger.Default after the test.
// The stubbed logger writes every level, including debug.
func Stub(tb testingTB) *bytes.Buffer {
	tb.Helper()
	og := stash()
	tb.Cleanup(og.restore)
	buf := &bytes.Buffer{}
	Default.Out = buf
	Default.Level = LevelDebug
	return buf
}

// snapshot holds the configuration of Default without its lock.
type snapshot struct {
	Out          io.Writer
	Level        Level
	Separator    string
	MessageKey   string
	LevelKey     string
	TimestampKey string
	MarshalFunc  func(any) ([]byte, error)
	KeyFormatter func(string) string
}

func stash() snapshot {
	return snapshot{
		Out:          Default.Out,
		Level:        Default.Level,
		Separator:    Default.Separator,
		MessageKey:   Default.MessageKey,
		LevelKey:     Default.LevelKey,
		TimestampKey: Default.TimestampKey,
		MarshalFunc:  Default.MarshalFunc,
		KeyFormatter: Default.KeyFormatter,
	}
}

func (s snapshot) restore() {
	Default.Out = s.Out
	Default.Level = s.Level
	Default.Separator = s.Separator
	Default.MessageKey = s.MessageKey
	Default.LevelKey = s.LevelKey
	Default.TimestampKey = s.TimestampKey
	Default.MarshalFunc = s.MarshalFunc
	Default.KeyFormatter = s.KeyFormatter
}
