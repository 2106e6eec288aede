package hub

import (
	"strconv"
	"strings"
)

// GenerateToken signs userOrClient, timestampOrChannel and info. With a user
// id and unix timestamp it is a connection token; with a client id and a
// channel name it is a private channel sign.
func (c *Client) GenerateToken(userOrClient, timestampOrChannel, info string) string {
	return c.signer.Token(userOrClient, timestampOrChannel, info)
}

// GenerateChannelSign signs a private channel subscription for a client
// connection.
func (c *Client) GenerateChannelSign(client, channel, info string) string {
	return c.signer.Token(client, channel, info)
}

// GenerateAPISign signs a serialized API request body.
func (c *Client) GenerateAPISign(data []byte) string {
	return c.signer.APISign(data)
}

// ConnectionSettings are the parameters a browser client needs to connect.
type ConnectionSettings struct {
	URL       string `json:"url"`
	User      string `json:"user"`
	Timestamp string `json:"timestamp"`
	Info      string `json:"info,omitempty"`
	Token     string `json:"token"`
}

type connectionOptions struct {
	sockJS bool
	info   string
}

// ConnectionOption configures Connection.
type ConnectionOption func(*connectionOptions)

// WithSockJS points the connection URL at the SockJS endpoint.
func WithSockJS() ConnectionOption {
	return func(o *connectionOptions) {
		o.sockJS = true
	}
}

// WithInfo attaches connection info, usually a JSON string, to the token.
func WithInfo(info string) ConnectionOption {
	return func(o *connectionOptions) {
		o.info = info
	}
}

// Connection returns signed connection settings for user, timestamped now.
// An empty user is an anonymous connection.
func (c *Client) Connection(user string, opts ...ConnectionOption) ConnectionSettings {
	o := &connectionOptions{}
	for _, opt := range opts {
		opt(o)
	}

	address := strings.TrimRight(c.cfg.URL, "/")
	if o.sockJS {
		address += "/connection"
	}

	timestamp := strconv.FormatInt(c.now().Unix(), 10)

	return ConnectionSettings{
		URL:       address,
		User:      user,
		Timestamp: timestamp,
		Info:      o.info,
		Token:     c.signer.Token(user, timestamp, o.info),
	}
}
