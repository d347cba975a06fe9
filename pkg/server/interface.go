/*
Package server implements msgpack IPC for edit cost queries.

Clients write a stream of msgpack encoded requests to stdin and read one
response per request from stdout. Every request carries an ID that is echoed back.

A cost query names the origin and target words and optionally overrides the
configured cost vector (insert, delete, substitute, anagram):

	{"id": "q1", "o": "listen", "t": "silent", "c": [5, 5, 5, 1]}

The server answers with the minimum cost (-1 when unreachable), the number of
expanded search nodes and the time taken in microseconds:

	{"id": "q1", "v": 1, "n": 2, "t": 84}

Other actions:

	{"id": "h1", "action": "health"}
	{"id": "i1", "action": "info"}

Failures come back as ErrorResponse with an HTTP-like status code.
*/
package server

// Action names understood by the server. An empty action is a cost query.
const (
	ActionCost   = "cost"
	ActionHealth = "health"
	ActionInfo   = "info"
)

// Request is the single inbound message shape.
type Request struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"action,omitempty"`
	Origin string `msgpack:"o,omitempty"`
	Target string `msgpack:"t,omitempty"`
	Costs  []int  `msgpack:"c,omitempty"`
}

// CostResponse answers a cost query.
type CostResponse struct {
	ID        string `msgpack:"id"`
	Cost      int    `msgpack:"v"`
	Expanded  int    `msgpack:"n"`
	TimeTaken int64  `msgpack:"t"`
}

// HealthResponse answers a health check.
type HealthResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
}

// InfoResponse describes the loaded dictionary and default costs.
type InfoResponse struct {
	ID        string `msgpack:"id"`
	Words     int    `msgpack:"words"`
	MaxLength int    `msgpack:"max_length"`
	Buckets   int    `msgpack:"buckets"`
	Costs     []int  `msgpack:"costs"`
}

// ErrorResponse holds basic error information for a failed request
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
