// Package handler is the HTTP entry point after the router.
//
// Handlers parse and validate requests through the validation package,
// call the service layer, and hand results (or errors) back to the
// shared response pipeline. Error shaping happens in the global error
// handler, never here.
package handler
