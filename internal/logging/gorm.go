package logging

import "fmt"

// GormWriter routes gorm's logger output through zerolog.
type GormWriter struct{}

func (GormWriter) Printf(format string, v ...any) {
	Warn().Str("component", "gorm").Msg(fmt.Sprintf(format, v...))
}
