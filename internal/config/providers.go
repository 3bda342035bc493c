package config

import "time"

// GST configures the tax-identifier status provider.
type GST struct {
	URL      string        `env:"GST_API_URL,required"`
	Token    string        `env:"GST_API_TOKEN" json:"-"`
	Timeout  time.Duration `env:"GST_TIMEOUT" envDefault:"0s"`
	CacheTTL time.Duration `env:"GST_CACHE_TTL" envDefault:"0s"`
}

// Serp configures the business reputation search provider.
type Serp struct {
	URL     string        `env:"SERP_API_URL" envDefault:"https://serpapi.com/search?engine=google_maps_reviews"`
	APIKey  string        `env:"SERP_API_KEY,required" json:"-"`
	Engine  string        `env:"SERP_ENGINE" envDefault:"google_maps_reviews"`
	Timeout time.Duration `env:"SERP_TIMEOUT" envDefault:"0s"`
}
