// Package clientip resolves the client address behind Cloudflare,
// DigitalOcean App Platform or common reverse proxies.
//
// Headers are checked in order CF-Connecting-IP, DO-Connecting-IP,
// X-Forwarded-For (first valid entry), X-Real-IP, then RemoteAddr.
// Invalid values are skipped. IPv4-mapped IPv6 addresses are unmapped and
// zones are dropped.
//
// Only deploy behind a proxy that overwrites these headers; otherwise
// clients can spoof them.
package clientip
