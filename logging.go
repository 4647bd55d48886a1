package genetic_crossover

import (
	"github.com/sirupsen/logrus"
)

// Logger receives every log line the package writes. Debug output from the
// operators is only produced when its level is Debug or lower.
var Logger logrus.FieldLogger = logrus.StandardLogger()

func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		l = logrus.StandardLogger()
	}
	Logger = l
}

// ParseLogLevel maps a config string onto the standard logger level. An empty
// level leaves it untouched.
func ParseLogLevel(level string) error {
	if level == "" {
		return nil
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	logrus.SetLevel(lvl)
	return nil
}

func debugEnabled() bool {
	if l, ok := Logger.(*logrus.Logger); ok {
		return l.IsLevelEnabled(logrus.DebugLevel)
	}
	if e, ok := Logger.(*logrus.Entry); ok {
		return e.Logger.IsLevelEnabled(logrus.DebugLevel)
	}
	return false
}
