package notify

import "go.uber.org/zap"

// Log returns a notifier that writes each notification to logger. Error
// notifications are logged at warn level, the rest at info.
func Log(logger *zap.Logger) Notifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return Func(func(n Notification) {
		fields := []zap.Field{
			zap.String("kind", string(n.Kind)),
			zap.String("description", n.Description),
		}
		if n.Kind == Error {
			logger.Warn(n.Title, fields...)
			return
		}
		logger.Info(n.Title, fields...)
	})
}
