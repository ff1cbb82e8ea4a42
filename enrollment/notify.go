package enrollment

// Notifier is the fire-and-forget toast surface the wizard and the
// submission pipeline report through.
type Notifier interface {
	Success(message string)
	Error(message string)
	Info(message string)
}

// NopNotifier discards every notification.
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Error(string)   {}
func (NopNotifier) Info(string)    {}
