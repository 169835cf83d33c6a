// Package logger is a thin factory around log/slog: functional options for
// format, level and static attributes, helper attribute constructors for the
// mail domain, and transparent injection of context values into every record.
//
// New builds the handler (text or JSON), applies static attributes, and wraps
// it in LogHandlerDecorator which runs registered ContextExtractor callbacks
// on each Handle call.
//
//	import "github.com/jnbao2020/saleor/pkg/logger"
//
//	log := logger.New(
//	    logger.WithDevelopment("mailer"),
//	    logger.WithContextValue("request_id", ctxKeyRequestID),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "Order confirmation sent",
//	    logger.OrderID(orderID),
//	    logger.RecipientCount(1),
//	)
//
// Error and Errors produce attributes only for non-nil errors, so callers can
// pass them unconditionally.
package logger
