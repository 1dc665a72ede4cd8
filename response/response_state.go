package response

type writerState int

const (
	stateStatusLine writerState = iota
	stateHeaders
	stateBody
	stateDone
)

var stateNames = [...]string{
	stateStatusLine: "status line",
	stateHeaders:    "headers",
	stateBody:       "body",
	stateDone:       "done",
}

func (s writerState) String() string {
	return stateNames[s]
}

func (s writerState) advance() writerState {
	if s == stateDone {
		return s
	}
	return s + 1
}
