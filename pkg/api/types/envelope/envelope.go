package envelope

// response envelopes of the JSON API.
//
// Handlers answer business-rule refusals with 200 and Status=false,
// keeping HTTP error codes for protocol and infrastructure failures.

type Status struct {
	Status bool   `json:"status"`
	Msg    string `json:"msg"`
}

func OK(msg string) Status {
	return Status{Status: true, Msg: msg}
}

func Refused(msg string) Status {
	return Status{Status: false, Msg: msg}
}

// Carrying is Status with a payload attached.
type Carrying[T any] struct {
	Status bool   `json:"status"`
	Msg    string `json:"msg"`
	Data   T      `json:"data"`
}

func Carry[T any](msg string, data T) Carrying[T] {
	return Carrying[T]{Status: true, Msg: msg, Data: data}
}

// Message is the bare {"msg": ...} shape used by delete operations
// reporting the cluster's outcome string.
type Message struct {
	Msg string `json:"msg"`
}

// Data is the bare {"data": ...} shape used by admin listings.
type Data[T any] struct {
	Data T `json:"data"`
}
