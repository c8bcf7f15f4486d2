package logging

import "github.com/sirupsen/logrus"

// SetAllLogLevels sets the global logrus level so loggers created through
// the standard logger inherit it.
func SetAllLogLevels(level logrus.Level) {
	logrus.SetLevel(level)
}
