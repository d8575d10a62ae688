// Package httpclient is the outbound REST adapter used by provider
// bindings.
//
// An Adapter sends each request exactly once. It applies default headers,
// API key header auth, an optional token-bucket throttle
// (golang.org/x/time/rate) and classifies failures into *Error values:
//
//	a, _ := httpclient.New(httpclient.Config{
//	    BaseURL: "https://api.example.com/v1",
//	    Auth:    httpclient.APIKeyAuthHeader(key, "x-api-key"),
//	})
//	resp, err := httpclient.Get[Payload](a, ctx, "/items", httpclient.WithQueryParam("id", "42"))
//	if httpclient.IsTimeout(err) { ... }
package httpclient
