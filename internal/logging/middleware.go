package logging

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
)

// Middleware attaches a LogData with a fresh request ID to every request and
// emits one structured entry per request once the handler has finished.
func Middleware(log *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		operationID := ctx.Operation().OperationID

		logData := NewLogData(log)
		if requestID, err := uuid.NewV4(); err == nil {
			logData.AddData("requestID", requestID.String())
		}
		logData.AddData("operation", operationID)

		ctx = huma.WithContext(ctx, WithLogData(ctx.Context(), logData))

		endTimer := logData.AddTiming("duration")
		next(ctx)
		endTimer()

		status := ctx.Status()
		logData.AddData("status", status)
		if status >= 500 {
			logData.Log().Errorf("Handler.%v.Error", operationID)
			return
		}
		logData.Log().Infof("Handler.%v.Complete", operationID)
	}
}
