package message

// Method is an HTTP request method. The nine standard verbs are provided as
// constants; any other token is an extension method and is rendered exactly
// as stored.
type Method string

const (
	MethodGet     Method = "GET"
	MethodHead    Method = "HEAD"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodDelete  Method = "DELETE"
	MethodTrace   Method = "TRACE"
	MethodOptions Method = "OPTIONS"
	MethodConnect Method = "CONNECT"
	MethodPatch   Method = "PATCH"
)

var standardMethods = []Method{
	MethodGet,
	MethodHead,
	MethodPost,
	MethodPut,
	MethodDelete,
	MethodTrace,
	MethodOptions,
	MethodConnect,
	MethodPatch,
}

// Extension returns a custom method. Extension("GET") is the same value as
// MethodGet.
func Extension(name string) Method {
	return Method(name)
}

func (m Method) IsExtension() bool {
	for _, s := range standardMethods {
		if m == s {
			return false
		}
	}
	return true
}

func (m Method) Equal(other Method) bool {
	return m == other
}

func (m Method) String() string {
	return string(m)
}
