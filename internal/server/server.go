package server

// Server groups the entity-specific HTTP servers.
type Server struct {
	VendorServer
}

func NewServer(
	vendorServer VendorServer,
) Server {
	return Server{
		VendorServer: vendorServer,
	}
}
