package middleware

import (
	"net"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// TrustedNetHandler restricts maintenance endpoints to a configured subnet.
type TrustedNetHandler struct {
	Resolved bool
	IPNet    *net.IPNet
	// Proxies is the subnet of reverse proxies whose forwarding headers are believed.
	Proxies *net.IPNet
	log     *zap.Logger
}

// NewTrustedNetHandler initializes a new trusted network handler. An empty or invalid subnet
// closes the guarded endpoints to everyone. Without a proxy subnet forwarding headers are
// ignored and only the peer address counts.
func NewTrustedNetHandler(subnet, proxies string, log *zap.Logger) *TrustedNetHandler {
	if log == nil {
		log = zap.NewNop()
	}
	tn := &TrustedNetHandler{log: log}
	if proxies != "" {
		if _, ipnet, err := net.ParseCIDR(proxies); err == nil {
			tn.Proxies = ipnet
		} else {
			log.Warn("Trusted proxy subnet was not initialized", zap.String("subnet", proxies), zap.Error(err))
		}
	}
	_, ipnet, err := net.ParseCIDR(subnet)
	if err != nil {
		log.Info("Trusted network was not initialized", zap.String("subnet", subnet), zap.Error(err))
		return tn
	}
	tn.Resolved = true
	tn.IPNet = ipnet
	return tn
}

// Contains reports whether ip belongs to the trusted subnet.
func (tn *TrustedNetHandler) Contains(ip net.IP) bool {
	return tn.Resolved && ip != nil && tn.IPNet.Contains(ip)
}

// ClientIP returns the peer address, or the forwarded client address when the peer is a
// trusted proxy.
func (tn *TrustedNetHandler) ClientIP(r *http.Request) net.IP {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	peer := net.ParseIP(host)
	if peer == nil || tn.Proxies == nil || !tn.Proxies.Contains(peer) {
		return peer
	}
	if ip := net.ParseIP(strings.TrimSpace(r.Header.Get("X-Real-IP"))); ip != nil {
		return ip
	}
	first := strings.Split(r.Header.Get("X-Forwarded-For"), ",")[0]
	if ip := net.ParseIP(strings.TrimSpace(first)); ip != nil {
		return ip
	}
	return peer
}

// TrustedNetworkHandler lets the request through when the client address belongs to the
// trusted subnet.
func (tn *TrustedNetHandler) TrustedNetworkHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !tn.Contains(tn.ClientIP(r)) {
			tn.log.Warn("Internal subnet access violation", zap.String("remote_addr", r.RemoteAddr))
			http.Error(w, "Internal subnet access violation", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
