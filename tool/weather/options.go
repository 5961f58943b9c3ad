package weather

// Options represents the configuration options for the weather tool.
type Options struct {
	// Service overrides the weather collaborator entirely.
	Service Service
	// Endpoint, when set and no Service is given, selects the HTTP
	// service against this URL.
	Endpoint string
}

// Option is a function that configures Options.
type Option func(*Options)

// WithService sets the weather collaborator.
func WithService(service Service) Option {
	return func(o *Options) {
		o.Service = service
	}
}

// WithEndpoint sets the weather service endpoint URL.
func WithEndpoint(endpoint string) Option {
	return func(o *Options) {
		o.Endpoint = endpoint
	}
}
