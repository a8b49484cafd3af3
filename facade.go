package snaglog

// Facade helpers using global Singleton logger.
// Usage: snaglog.Info().Str("k","v").Msg("hello")

func Error() *Event   { return L().Error() }
func Warn() *Event    { return L().Warn() }
func Info() *Event    { return L().Info() }
func Verbose() *Event { return L().Verbose() }
func Debug() *Event   { return L().Debug() }
func Silly() *Event   { return L().Silly() }
