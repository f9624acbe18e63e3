package parser

// Sample raw requests and their expected parses. Each starts with a newline,
// the way such requests are usually written out by hand.

const rawGETRequest = `
GET / HTTP/1.1
Host: www.example.com
`

var getRequest = &Request{
	Method:  "GET",
	Path:    "/",
	Proto:   "HTTP/1.1",
	Headers: map[string]string{"Host": "www.example.com"},
}

const rawGETRequestComplex = `
GET /api/data/123?someValue=example HTTP/1.1
Host: www.example.com
Authorization: Bearer your_access_token
`

var getRequestComplex = &Request{
	Method:   "GET",
	Path:     "/api/data/123",
	Proto:    "HTTP/1.1",
	RawQuery: "someValue=example",
	Headers: map[string]string{
		"Host":          "www.example.com",
		"Authorization": "Bearer your_access_token",
	},
	Query: map[string]string{"someValue": "example"},
}

const rawPOSTRequest = `
POST /api/data HTTP/1.1
Host: www.example.com
Content-Type: application/json
Content-Length: 36

{"key1": "value1", "key2": "value2"}
`

var postRequest = &Request{
	Method: "POST",
	Path:   "/api/data",
	Proto:  "HTTP/1.1",
	Headers: map[string]string{
		"Host":           "www.example.com",
		"Content-Type":   "application/json",
		"Content-Length": "36",
	},
	Body: map[string]string{"key1": "value1", "key2": "value2"},
}
