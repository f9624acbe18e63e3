package parser

import (
	"net"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// Site returns the registrable domain (eTLD+1) of the Host header, or ""
// when there is no Host, the host is an IP address, or it is itself a
// public suffix.
func (r *Request) Site() string {
	host := r.Header("Host")
	if host == "" {
		return ""
	}
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.TrimSuffix(strings.ToLower(host), ".")

	if net.ParseIP(strings.Trim(host, "[]")) != nil {
		return ""
	}

	site, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return ""
	}
	return site
}
