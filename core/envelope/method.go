package envelope

// Method names a hub API command.
type Method string

const (
	MethodPublish     Method = "publish"
	MethodBroadcast   Method = "broadcast"
	MethodPresence    Method = "presence"
	MethodHistory     Method = "history"
	MethodUnsubscribe Method = "unsubscribe"
	MethodDisconnect  Method = "disconnect"
	MethodChannels    Method = "channels"
	MethodStats       Method = "stats"
)

// Methods lists every command the hub API accepts.
var Methods = []Method{
	MethodPublish,
	MethodBroadcast,
	MethodPresence,
	MethodHistory,
	MethodUnsubscribe,
	MethodDisconnect,
	MethodChannels,
	MethodStats,
}

// String implements fmt.Stringer.
func (m Method) String() string {
	return string(m)
}

// Valid reports whether m is a known hub command.
func (m Method) Valid() bool {
	switch m {
	case MethodPublish, MethodBroadcast, MethodPresence, MethodHistory,
		MethodUnsubscribe, MethodDisconnect, MethodChannels, MethodStats:
		return true
	}
	return false
}

// QueueEligible reports whether m may be delivered through the Redis queue.
// Only commands whose reply the caller never inspects qualify, since the
// queue has no response channel.
func (m Method) QueueEligible() bool {
	switch m {
	case MethodPublish, MethodBroadcast, MethodUnsubscribe, MethodDisconnect:
		return true
	}
	return false
}
