package i

// Logger is the leveled logger services and controllers report through.
type Logger interface {
	Info(string)
	Warning(string)
	Error(string)
}
