package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

const unknownClient = "unknown"

type clientIPKey struct{}

// TrustedProxies адреса и подсети прокси, которым разрешено передавать X-Forwarded-For
type TrustedProxies []*net.IPNet

// ParseTrustedProxies разбирает список IP адресов и CIDR подсетей
func ParseTrustedProxies(entries []string) (TrustedProxies, error) {
	proxies := make(TrustedProxies, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		if !strings.Contains(entry, "/") {
			ip := net.ParseIP(entry)
			if ip == nil {
				return nil, fmt.Errorf("middleware: invalid trusted proxy %q", entry)
			}
			bits := 8 * net.IPv6len
			if v4 := ip.To4(); v4 != nil {
				ip, bits = v4, 8*net.IPv4len
			}
			proxies = append(proxies, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
			continue
		}

		_, network, err := net.ParseCIDR(entry)
		if err != nil {
			return nil, fmt.Errorf("middleware: invalid trusted proxy %q: %v", entry, err)
		}
		proxies = append(proxies, network)
	}
	return proxies, nil
}

func (p TrustedProxies) contains(ip net.IP) bool {
	for _, network := range p {
		if network.Contains(ip) {
			return true
		}
	}
	return false
}

// RealIP определяет адрес клиента один раз за запрос и кладёт его в контекст.
// Заголовки прокси учитываются только от доверенного RemoteAddr
func RealIP(proxies TrustedProxies) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), clientIPKey{}, resolveClientIP(r, proxies))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClientIP возвращает адрес, определённый RealIP, иначе адрес соединения
func ClientIP(r *http.Request) string {
	if ip, ok := r.Context().Value(clientIPKey{}).(string); ok && ip != "" {
		return ip
	}
	return remoteHost(r)
}

// resolveClientIP берёт самый правый недоверенный адрес X-Forwarded-For.
// Левее него адреса может подставить сам клиент
func resolveClientIP(r *http.Request, proxies TrustedProxies) string {
	remote := remoteHost(r)

	remoteIP := net.ParseIP(remote)
	if remoteIP == nil || !proxies.contains(remoteIP) {
		return remote
	}

	hops := forwardedHops(r)
	if len(hops) == 0 {
		if realIP := net.ParseIP(strings.TrimSpace(r.Header.Get("X-Real-IP"))); realIP != nil {
			return realIP.String()
		}
		return remote
	}

	client := remote
	for i := len(hops) - 1; i >= 0; i-- {
		hopIP := net.ParseIP(hops[i])
		if hopIP == nil {
			break
		}
		client = hopIP.String()
		if !proxies.contains(hopIP) {
			return client
		}
	}
	return client
}

func forwardedHops(r *http.Request) []string {
	var hops []string
	for _, value := range r.Header.Values("X-Forwarded-For") {
		for _, hop := range strings.Split(value, ",") {
			if hop = strings.TrimSpace(hop); hop != "" {
				hops = append(hops, hop)
			}
		}
	}
	return hops
}

func remoteHost(r *http.Request) string {
	if r.RemoteAddr == "" {
		return unknownClient
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && host != "" {
		return host
	}
	return r.RemoteAddr
}
