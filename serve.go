package trunkconf

import (
	"context"
	"fmt"
	"net/netip"
	"slices"

	"github.com/reoring/trunkconf/dsl"
	"github.com/reoring/trunkconf/internal/ctxlog"
)

// WSProtocol is the protocol used for the autoreload websocket.
type WSProtocol string

const (
	WSProtocolWS  WSProtocol = "ws"
	WSProtocolWSS WSProtocol = "wss"
)

// Serve is the [serve] section.
type Serve struct {
	Addresses            []string          `json:"addresses"`
	Port                 uint16            `json:"port"`
	Open                 bool              `json:"open"`
	NoAutoreload         bool              `json:"no_autoreload"`
	NoErrorReporting     bool              `json:"no_error_reporting"`
	DisableAddressLookup bool              `json:"disable_address_lookup"`
	NoSPA                bool              `json:"no_spa"`
	Headers              map[string]string `json:"headers,omitempty"`
	Aliases              []string          `json:"aliases"`
	ServeBase            *string           `json:"serve_base,omitempty"`
	WSBase               *string           `json:"ws_base,omitempty"`
	WSProtocol           *WSProtocol       `json:"ws_protocol,omitempty"`
	TLSKeyPath           *string           `json:"tls_key_path,omitempty"`
	TLSCertPath          *string           `json:"tls_cert_path,omitempty"`

	// Address is the legacy single listen address; Migrate folds it into
	// Addresses.
	Address *string `json:"address,omitempty"`

	// Legacy single proxy; Migrate turns it into a Proxies entry.
	ProxyBackend       *string `json:"proxy_backend,omitempty"`
	ProxyRewrite       *string `json:"proxy_rewrite,omitempty"`
	ProxyWS            *bool   `json:"proxy_ws,omitempty"`
	ProxyInsecure      *bool   `json:"proxy_insecure,omitempty"`
	ProxyNoSystemProxy *bool   `json:"proxy_no_system_proxy,omitempty"`
}

const legacyProxyHint = "Use an entry of the 'proxies' field instead"

var serveSchema = dsl.ObjectOf[Serve]().
	Describe("Development server options").
	Field("addresses", dsl.ArrayOf[string](dsl.IP()).Describe("The addresses to serve on")).Default([]any{}).
	Field("address", dsl.OptionalOf[string](dsl.String()).Deprecated().Describe("Use 'addresses' instead")).
	Field("port", dsl.IntOf[uint16]()).Default(8080).
	Field("open", dsl.BoolOf[bool]()).Default(false).
	Field("no_autoreload", dsl.BoolOf[bool]()).Default(false).
	Field("no_error_reporting", dsl.BoolOf[bool]()).Default(false).
	Field("disable_address_lookup", dsl.BoolOf[bool]()).Default(false).
	Field("no_spa", dsl.BoolOf[bool]()).Default(false).
	Field("headers", dsl.MapOf[string](dsl.String())).
	Field("aliases", dsl.ArrayOf[string](dsl.String())).Default([]any{}).
	Field("serve_base", dsl.OptionalOf[string](dsl.String())).
	Field("ws_base", dsl.OptionalOf[string](dsl.String())).
	Field("ws_protocol", dsl.OptionalOf[WSProtocol](dsl.Enum(WSProtocolWS, WSProtocolWSS))).
	Field("tls_key_path", dsl.OptionalOf[string](dsl.String())).
	Field("tls_cert_path", dsl.OptionalOf[string](dsl.String())).
	Field("proxy_backend", dsl.OptionalOf[string](dsl.String()).Deprecated().Describe(legacyProxyHint)).
	Field("proxy_rewrite", dsl.OptionalOf[string](dsl.String()).Deprecated().Describe(legacyProxyHint)).
	Field("proxy_ws", dsl.OptionalOf[bool](dsl.Bool()).Deprecated().Describe(legacyProxyHint)).
	Field("proxy_insecure", dsl.OptionalOf[bool](dsl.Bool()).Deprecated().Describe(legacyProxyHint)).
	Field("proxy_no_system_proxy", dsl.OptionalOf[bool](dsl.Bool()).Deprecated().Describe(legacyProxyHint)).
	MustBind()

// Migrate folds the legacy single address into Addresses. An address that is
// already listed is not added twice.
func (s *Serve) Migrate(ctx context.Context) error {
	if s.Address == nil {
		return nil
	}
	addr, err := netip.ParseAddr(*s.Address)
	if err != nil {
		return fmt.Errorf("serve.address %q is not an IP address: %w", *s.Address, err)
	}
	ctxlog.FromContext(ctx).Warn("'serve.address' is deprecated, use 'serve.addresses' instead", "field", "serve.address", "value", addr.String())
	listed := slices.ContainsFunc(s.Addresses, func(a string) bool {
		other, err := netip.ParseAddr(a)
		return err == nil && other == addr
	})
	if !listed {
		s.Addresses = append(s.Addresses, addr.String())
	}
	s.Address = nil
	return nil
}
