// Package openshock provides a Go client library for the OpenShock API.
//
// OpenShock exposes hubs (physical controller devices), the shockers
// attached to them, and a control endpoint for dispatching Shock, Vibrate,
// Sound, and Stop commands. This library covers that surface: one client,
// a handful of GET/POST calls, plain value records out.
//
// # Authentication
//
// Every call except GetVersion requires an API key, created in the
// OpenShock web UI and passed at construction:
//
//	client, err := openshock.NewClient(os.Getenv("OPENSHOCK_API_KEY"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Basic Usage
//
// List hubs and their shockers:
//
//	hubs, err := client.ListHubs(ctx)
//	for _, hub := range hubs {
//	    shockers, err := hub.Shockers(ctx)
//	    ...
//	}
//
// Dispatch a command:
//
//	cmd := openshock.NewCommand(shockerID, openshock.Vibrate)
//	cmd.Intensity = 40
//	msg, err := client.SendCommand(ctx, cmd)
//
// Stop a shocker:
//
//	msg, err := client.Stop(ctx, shockerID)
//
// # Error Handling
//
// Invalid arguments (empty key, unknown command type, out-of-range
// duration) fail before any network call. API failures carry the HTTP
// status and the server's message:
//
//	if _, err := client.ListHubs(ctx); err != nil {
//	    if openshock.IsUnauthorized(err) {
//	        // key is invalid or revoked
//	    }
//	}
//
// The client performs no retries, no rate limiting, and no caching; every
// method is a single request-response round trip.
//
// For API details, see https://api.openshock.app/swagger
package openshock
