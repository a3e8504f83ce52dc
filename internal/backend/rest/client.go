// Package rest implements the backend interfaces over the service's HTTP/JSON
// APIs: an identity-toolkit style auth endpoint and a realtime-database style
// document tree for the roster.
package rest

import (
	"net/http"
	"time"
)

const contentTypeJSON = "application/json"

func newHTTPClient() *http.Client {
	tr := &http.Transport{
		MaxIdleConns:        20,
		MaxIdleConnsPerHost: 20,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	return &http.Client{
		Timeout:   time.Minute,
		Transport: tr,
	}
}
