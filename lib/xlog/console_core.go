package xlog

import (
	"go.uber.org/zap/zapcore"
)

const coreKeyIgnored = ""

type xLogCore interface {
	build(
		lvlEnabler zapcore.LevelEnabler,
		encoder LogEncoderType,
		writer LogOutWriterType,
		lvlEnc zapcore.LevelEncoder,
		tsEnc zapcore.TimeEncoder,
	) (zapcore.Core, error)
}

var (
	_ xLogCore = (*consoleCore)(nil)
	_ xLogCore = (*injectedCore)(nil)
)

type consoleCore struct{}

func (cc *consoleCore) build(
	lvlEnabler zapcore.LevelEnabler,
	encoder LogEncoderType,
	writer LogOutWriterType,
	lvlEnc zapcore.LevelEncoder,
	tsEnc zapcore.TimeEncoder,
) (core zapcore.Core, err error) {
	config := zapcore.EncoderConfig{
		MessageKey:    "msg",
		LevelKey:      "lvl",
		EncodeLevel:   lvlEnc,
		TimeKey:       "ts",
		EncodeTime:    tsEnc,
		CallerKey:     "callAt",
		EncodeCaller:  zapcore.ShortCallerEncoder,
		FunctionKey:   "fn",
		NameKey:       "component",
		EncodeName:    zapcore.FullNameEncoder,
		StacktraceKey: coreKeyIgnored,
	}
	ws := getOutWriterByType(writer)
	core = zapcore.NewCore(getEncoderByType(encoder)(config), ws, lvlEnabler)
	return core, nil
}

// injectedCore hands over a caller built core, the level enabler still applies.
type injectedCore struct {
	core zapcore.Core
}

func (ic *injectedCore) build(
	lvlEnabler zapcore.LevelEnabler,
	_ LogEncoderType,
	_ LogOutWriterType,
	_ zapcore.LevelEncoder,
	_ zapcore.TimeEncoder,
) (zapcore.Core, error) {
	return &levelFilterCore{Core: ic.core, lvlEnabler: lvlEnabler}, nil
}

type levelFilterCore struct {
	zapcore.Core
	lvlEnabler zapcore.LevelEnabler
}

func (c *levelFilterCore) Enabled(lvl zapcore.Level) bool {
	return c.lvlEnabler.Enabled(lvl) && c.Core.Enabled(lvl)
}

func (c *levelFilterCore) With(fields []zapcore.Field) zapcore.Core {
	return &levelFilterCore{Core: c.Core.With(fields), lvlEnabler: c.lvlEnabler}
}

func (c *levelFilterCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return c.Core.Check(ent, ce)
	}
	return ce
}
