package skhdrc

import "github.com/tilecfg/tilecfg/internal/exchange"

// EncodeJSON serializes the binding set in the exchange format.
func EncodeJSON(cfg Config) ([]byte, error) {
	return exchange.Encode(cfg)
}

// DecodeJSON deserializes an exchange document. Errors wrap
// exchange.ErrInvalidJSON or exchange.ErrInvalidShape.
func DecodeJSON(data []byte) (Config, error) {
	var cfg Config
	if err := exchange.Decode(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
