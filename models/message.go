package models

// MessageLogCap is the number of messages kept after a local append.
const MessageLogCap = 10

// Message is a single text line shown on the device display.
type Message string

// AppendCapped appends msg to log and evicts the oldest entries so that at
// most limit messages remain. The input slice is never modified in place.
// A non-positive limit disables the cap.
func AppendCapped(log []Message, msg Message, limit int) []Message {
	out := make([]Message, 0, len(log)+1)
	out = append(out, log...)
	out = append(out, msg)

	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out
}

// MessagesFromStrings converts wire strings to messages.
func MessagesFromStrings(in []string) []Message {
	out := make([]Message, len(in))
	for i, s := range in {
		out[i] = Message(s)
	}
	return out
}
