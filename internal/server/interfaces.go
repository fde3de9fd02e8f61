package server

// Server defines the lifecycle contract of the transport server managed by
// this package.
//
// Implementations block in [RunServer] until shutdown is requested and
// release resources in [Shutdown].
type Server interface {
	// RunServer serves requests until SIGINT, SIGTERM or SIGQUIT arrives,
	// then shuts down gracefully. It returns a serve error other than a
	// normal close.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()

	// Addr returns the bound listen address.
	Addr() string
}
