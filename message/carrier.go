package message

import "httpcommon/header"

// HeaderCarrier is implemented by Request and Response.
type HeaderCarrier interface {
	HeaderMap() header.Headers
}

func HeadersOf(c HeaderCarrier) header.Headers {
	return c.HeaderMap()
}
