// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware reuses the client's X-Request-ID header when it is 1 to 128
// characters of letters, digits, '-' or '_'; anything else is replaced with
// a fresh UUID. The id is stored in the request context, echoed in the
// response header, and can be added to logs with LoggerExtractor:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r.Use(requestid.Middleware)
package requestid
