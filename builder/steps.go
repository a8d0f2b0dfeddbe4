package builder

import "httpcommon/message"

func Begin(method message.Method, path string) Step {
	return func(b *Builder) { b.Begin(method, path) }
}

func Hostname(host string, port uint16) Step {
	return func(b *Builder) { b.SetHostname(host, port) }
}

func Header(name, value string) Step {
	return func(b *Builder) { b.SetHeader(name, value) }
}

func AddHeader(name, value string) Step {
	return func(b *Builder) { b.AddHeader(name, value) }
}

func RemoveHeader(name string) Step {
	return func(b *Builder) { b.RemoveHeader(name) }
}

func Accept(value string) Step {
	return func(b *Builder) { b.SetAccept(value) }
}

func AcceptQuality(types ...Quality) Step {
	return func(b *Builder) { b.SetAcceptQuality(types) }
}

func AuthorizationBasic(user, password string) Step {
	return func(b *Builder) { b.SetAuthorizationBasic(user, password) }
}

func ContentType(value string) Step {
	return func(b *Builder) { b.SetContentType(value) }
}

func ContentMultipart(boundary message.Boundary) Step {
	return func(b *Builder) { b.SetContentMultipart(boundary) }
}

func ContentLength(n int64) Step {
	return func(b *Builder) { b.SetContentLength(n) }
}

func TransferEncodingChunked() Step {
	return func(b *Builder) { b.SetTransferEncodingChunked() }
}

func ExpectContinue() Step {
	return func(b *Builder) { b.SetExpectContinue() }
}
