// Package environment names the deployment environment the service runs in
// and carries it through request contexts.
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	r.Use(environment.Middleware(env))
//
//	if environment.IsProduction(ctx) {
//	    // hide internal error details
//	}
package environment
